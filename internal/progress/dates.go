// Package progress holds the pure progress-tracking rules: date normalization,
// cursor advancement, override resolution, workout log transitions and streaks.
// Nothing in here performs I/O; every time-dependent function takes "now".
package progress

import "time"

const day = 24 * time.Hour

// StartOfDay truncates t to UTC midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole UTC calendar days from a to b.
// It is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	diff := StartOfDay(b).Sub(StartOfDay(a))
	// both operands sit on midnight, so the division is exact
	return int(diff / day)
}
