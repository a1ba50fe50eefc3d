package progress_test

import (
	"testing"
	"time"

	"alcyxob/plan-tracker/internal/domain"
	"alcyxob/plan-tracker/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeEnrollment(startedAt time.Time) domain.Enrollment {
	return domain.Enrollment{
		UserID:          "user-1",
		PlanID:          "plan-1",
		StartedAt:       startedAt,
		IsActive:        true,
		CurrentWeek:     1,
		CurrentDayIndex: 0,
	}
}

func TestCursorAt_ElapsedDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC) // Monday
	now := time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)

	c, ok := progress.CursorAt(start, now, 12)
	require.True(t, ok)
	assert.Equal(t, progress.Cursor{Week: 2, DayIndex: 2}, c)
	assert.Equal(t, domain.Wednesday, c.Day())
}

func TestCursorAt_NotStarted(t *testing.T) {
	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	_, ok := progress.CursorAt(start, start.AddDate(0, 0, -1), 4)
	assert.False(t, ok)
}

func TestCursorAt_ClampsToPlanEnd(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	c, ok := progress.CursorAt(start, start.AddDate(0, 0, 100), 4)
	require.True(t, ok)
	assert.Equal(t, progress.Cursor{Week: 4, DayIndex: 6}, c)

	c, ok = progress.CursorAt(start, start.AddDate(0, 0, 100), 0)
	require.True(t, ok)
	assert.Equal(t, 15, c.Week)
}

func TestAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	e := activeEnrollment(start)

	advanced, changed := progress.Advance(e, 8, now)
	require.True(t, changed)
	assert.Equal(t, 2, advanced.CurrentWeek)
	assert.Equal(t, 2, advanced.CurrentDayIndex)
	// input untouched
	assert.Equal(t, 1, e.CurrentWeek)
	assert.Equal(t, 0, e.CurrentDayIndex)

	again, changed := progress.Advance(advanced, 8, now)
	assert.False(t, changed)
	assert.Equal(t, advanced, again)
}

func TestAdvance_Idempotent(t *testing.T) {
	start := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)

	once, _ := progress.Advance(activeEnrollment(start), 6, now)
	twice, _ := progress.Advance(once, 6, now)
	assert.Equal(t, once.CurrentWeek, twice.CurrentWeek)
	assert.Equal(t, once.CurrentDayIndex, twice.CurrentDayIndex)
}

func TestAdvance_LeavesCursorBeforeStartAndWhenInactive(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	e := activeEnrollment(start)
	e.CurrentWeek, e.CurrentDayIndex = 1, 3

	got, changed := progress.Advance(e, 4, start.AddDate(0, 0, -2))
	assert.False(t, changed)
	assert.Equal(t, 3, got.CurrentDayIndex)

	e.IsActive = false
	got, changed = progress.Advance(e, 4, start.AddDate(0, 0, 20))
	assert.False(t, changed)
	assert.Equal(t, 1, got.CurrentWeek)
}

func TestFinished(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	e := activeEnrollment(start)

	assert.False(t, progress.Finished(e, 2, start.AddDate(0, 0, 13)))
	assert.True(t, progress.Finished(e, 2, start.AddDate(0, 0, 14)))
	assert.False(t, progress.Finished(e, 0, start.AddDate(1, 0, 0)))
}

func TestSlotDate(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), progress.SlotDate(start, 1, domain.Monday))
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), progress.SlotDate(start, 2, domain.Wednesday))
	assert.Equal(t, time.Date(2024, 2, 4, 0, 0, 0, 0, time.UTC), progress.SlotDate(start, 5, domain.Sunday))
}

func TestComplete(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e := activeEnrollment(start)

	done := progress.Complete(e, now)
	assert.False(t, done.IsActive)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, now, *done.CompletedAt)
	assert.True(t, e.IsActive)

	again := progress.Complete(done, now.Add(time.Hour))
	assert.Equal(t, now, *again.CompletedAt)
}
