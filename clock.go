package main

// indexed by hour % 12
var clockFaces = [12]string{"🕛", "🕐", "🕑", "🕒", "🕓", "🕔", "🕕", "🕖", "🕗", "🕘", "🕙", "🕚"}

func clockFace(hour int) string {
	return clockFaces[hour%12]
}
