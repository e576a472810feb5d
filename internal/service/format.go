package service

import "fmt"

// FormatFastingTime renders minutes as "16h 5m".
func FormatFastingTime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
