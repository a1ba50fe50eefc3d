package progress

import (
	"alcyxob/plan-tracker/internal/domain"
	"time"
)

// Cursor is a (week, day index) position inside a plan.
type Cursor struct {
	Week     int `json:"week"`
	DayIndex int `json:"dayIndex"`
}

// Day returns the weekday slot the cursor points at.
func (c Cursor) Day() domain.DayOfWeek {
	return domain.Weekdays[c.DayIndex]
}

// CursorAt maps elapsed time since startedAt to a plan position. ok is false
// when the plan has not started yet. When durationWeeks is positive the cursor
// is clamped to the last day of the last week.
func CursorAt(startedAt, now time.Time, durationWeeks int) (_ Cursor, ok bool) {
	elapsed := DaysBetween(startedAt, now)
	if elapsed < 0 {
		return Cursor{}, false
	}
	c := Cursor{
		Week:     elapsed/domain.DaysPerWeek + 1,
		DayIndex: elapsed % domain.DaysPerWeek,
	}
	if durationWeeks > 0 && c.Week > durationWeeks {
		c = Cursor{Week: durationWeeks, DayIndex: domain.DaysPerWeek - 1}
	}
	return c, true
}

// Advance returns the enrollment with its cursor synced to now, and whether
// the cursor moved. The input value is not modified. Inactive enrollments and
// plans that have not started keep their stored cursor.
func Advance(e domain.Enrollment, durationWeeks int, now time.Time) (domain.Enrollment, bool) {
	if !e.IsActive {
		return e, false
	}
	c, ok := CursorAt(e.StartedAt, now, durationWeeks)
	if !ok {
		return e, false
	}
	if c.Week == e.CurrentWeek && c.DayIndex == e.CurrentDayIndex {
		return e, false
	}
	next := e.Clone()
	next.CurrentWeek = c.Week
	next.CurrentDayIndex = c.DayIndex
	return next, true
}

// Finished reports whether every day of the plan has elapsed.
func Finished(e domain.Enrollment, durationWeeks int, now time.Time) bool {
	if durationWeeks <= 0 {
		return false
	}
	return DaysBetween(e.StartedAt, now) >= durationWeeks*domain.DaysPerWeek
}

// SlotDate returns the calendar day (UTC midnight) of the (week, day) slot of
// an enrollment started at startedAt.
func SlotDate(startedAt time.Time, week int, day domain.DayOfWeek) time.Time {
	offset := (week-1)*domain.DaysPerWeek + day.Index()
	return StartOfDay(startedAt).AddDate(0, 0, offset)
}

// Complete returns the enrollment marked as finished at now. Already inactive
// enrollments are returned unchanged.
func Complete(e domain.Enrollment, now time.Time) domain.Enrollment {
	if !e.IsActive {
		return e
	}
	next := e.Clone()
	completedAt := now.UTC()
	next.IsActive = false
	next.CompletedAt = &completedAt
	return next
}
