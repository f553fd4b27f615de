package main

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	day := time.Date(2024, time.May, 3, 14, 7, 0, 0, time.Local)
	tests := []struct {
		pattern string
		want    string
	}{
		{"YYYY-MM-DD", "2024-05-03"},
		{"YYYY/MM/DD", "2024/05/03"},
		{"DD-MM-YYYY", "03-05-2024"},
		{"DD.MM.YY", "03.05.24"},
		{"YYYYMMDD", "20240503"},
		{"YYYY_notes", "2024_notes"},
		{"YY-YYYY", "24-2024"},
		{"MMMDD", "05M03"},
		{"journal", "journal"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := formatDate(day, tt.pattern); got != tt.want {
			t.Errorf("formatDate(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestFormatDatePadsSmallYears(t *testing.T) {
	day := time.Date(7, time.January, 9, 0, 0, 0, 0, time.UTC)
	if got := formatDate(day, "YYYY-MM-DD YY"); got != "0007-01-09 07" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatDateLeavesOutputAlone(t *testing.T) {
	day := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.Local)
	once := formatDate(day, "YYYY-MM-DD")
	if twice := formatDate(day, once); twice != once {
		t.Fatalf("second pass changed %q to %q", once, twice)
	}
}
