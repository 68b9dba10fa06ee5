package utils

import "time"

// DayBounds returns the inclusive bounds of t's calendar day, local
// 00:00:00.000 through 23:59:59.999, for same-day appointment lookups.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
