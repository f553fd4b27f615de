package main

import (
	"fmt"
	"strings"
	"time"
)

// formatDate expands the YYYY, MM, DD and YY tokens in pattern.
// YYYY has to go before YY. Anything else is copied through.
func formatDate(t time.Time, pattern string) string {
	s := strings.ReplaceAll(pattern, "YYYY", fmt.Sprintf("%04d", t.Year()))
	s = strings.ReplaceAll(s, "MM", fmt.Sprintf("%02d", int(t.Month())))
	s = strings.ReplaceAll(s, "DD", fmt.Sprintf("%02d", t.Day()))
	return strings.ReplaceAll(s, "YY", fmt.Sprintf("%02d", t.Year()%100))
}
