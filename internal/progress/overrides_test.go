package progress_test

import (
	"errors"
	"testing"
	"time"

	"alcyxob/plan-tracker/internal/domain"
	"alcyxob/plan-tracker/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoWeekPlan() *domain.PlanTemplate {
	return &domain.PlanTemplate{
		ID:            "plan-1",
		DurationWeeks: 2,
		Weeks: []domain.PlanWeek{
			{
				WeekNumber: 1,
				Days: []domain.PlanDay{
					{DayOfWeek: domain.Monday, WorkoutTemplateID: "easy_run"},
					{DayOfWeek: domain.Tuesday, WorkoutTemplateID: domain.RestDayWorkoutID},
					{DayOfWeek: domain.Wednesday, WorkoutTemplateID: "intervals"},
				},
			},
			{
				WeekNumber: 2,
				Days: []domain.PlanDay{
					{DayOfWeek: domain.Monday, WorkoutTemplateID: "tempo"},
					{DayOfWeek: domain.Thursday, WorkoutTemplateID: "long_run"},
				},
			},
		},
	}
}

func TestEffectiveWorkout(t *testing.T) {
	plan := twoWeekPlan()
	overrides := []domain.Override{
		{WeekNumber: 1, DayOfWeek: domain.Wednesday, CustomWorkoutID: "hill_repeats"},
		{WeekNumber: 2, DayOfWeek: domain.Sunday, CustomWorkoutID: "recovery_swim"},
	}

	id, err := progress.EffectiveWorkout(plan, overrides, 1, domain.Monday)
	require.NoError(t, err)
	assert.Equal(t, "easy_run", id)

	id, err = progress.EffectiveWorkout(plan, overrides, 1, domain.Wednesday)
	require.NoError(t, err)
	assert.Equal(t, "hill_repeats", id)

	// an override wins even where the plan schedules nothing
	id, err = progress.EffectiveWorkout(plan, overrides, 2, domain.Sunday)
	require.NoError(t, err)
	assert.Equal(t, "recovery_swim", id)

	_, err = progress.EffectiveWorkout(plan, overrides, 2, domain.Friday)
	assert.ErrorIs(t, err, progress.ErrScheduleSlotNotFound)
	_, err = progress.EffectiveWorkout(plan, nil, 5, domain.Monday)
	assert.ErrorIs(t, err, progress.ErrScheduleSlotNotFound)
}

func TestApplyOverrides_ReplacesWholesale(t *testing.T) {
	e := activeEnrollment(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	e.Overrides = []domain.Override{
		{WeekNumber: 1, DayOfWeek: domain.Monday, CustomWorkoutID: "a"},
	}
	batch := []domain.Override{
		{WeekNumber: 2, DayOfWeek: domain.Monday, CustomWorkoutID: "b"},
	}

	got, err := progress.ApplyOverrides(e, batch)
	require.NoError(t, err)
	assert.Equal(t, batch, got.Overrides)
	assert.Len(t, e.Overrides, 1)
	assert.Equal(t, "a", e.Overrides[0].CustomWorkoutID)
}

func TestApplyOverrides_PastWeekRejectsWholeBatch(t *testing.T) {
	e := activeEnrollment(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	e.CurrentWeek = 3
	stored := []domain.Override{
		{WeekNumber: 3, DayOfWeek: domain.Friday, CustomWorkoutID: "stored"},
	}
	e.Overrides = stored

	batch := []domain.Override{
		{WeekNumber: 3, DayOfWeek: domain.Monday, CustomWorkoutID: "x"},
		{WeekNumber: 2, DayOfWeek: domain.Tuesday, CustomWorkoutID: "y"},
		{WeekNumber: 4, DayOfWeek: domain.Sunday, CustomWorkoutID: "z"},
	}

	got, err := progress.ApplyOverrides(e, batch)
	require.Error(t, err)
	assert.True(t, errors.Is(err, progress.ErrPastWeekOverrideRejected))
	assert.Contains(t, err.Error(), "week 2, tuesday")
	assert.Equal(t, stored, got.Overrides)
	assert.Equal(t, stored, e.Overrides)
}

func TestApplyOverrides_KeepsHistory(t *testing.T) {
	e := activeEnrollment(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	e.CurrentWeek = 2
	history := domain.Override{WeekNumber: 1, DayOfWeek: domain.Monday, CustomWorkoutID: "swim"}
	e.Overrides = []domain.Override{
		history,
		{WeekNumber: 2, DayOfWeek: domain.Friday, CustomWorkoutID: "dropped"},
	}

	got, err := progress.ApplyOverrides(e, []domain.Override{
		{WeekNumber: 2, DayOfWeek: domain.Monday, CustomWorkoutID: "bike"},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Override{
		history,
		{WeekNumber: 2, DayOfWeek: domain.Monday, CustomWorkoutID: "bike"},
	}, got.Overrides)

	// an empty batch clears the current and later weeks only
	got, err = progress.ApplyOverrides(e, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.Override{history}, got.Overrides)
}

func TestApplyOverrides_RejectsResubmittedHistory(t *testing.T) {
	e := activeEnrollment(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	e.CurrentWeek = 2
	history := domain.Override{WeekNumber: 1, DayOfWeek: domain.Monday, CustomWorkoutID: "swim"}
	e.Overrides = []domain.Override{history}

	got, err := progress.ApplyOverrides(e, []domain.Override{
		history,
		{WeekNumber: 2, DayOfWeek: domain.Monday, CustomWorkoutID: "bike"},
	})
	assert.ErrorIs(t, err, progress.ErrPastWeekOverrideRejected)
	assert.Equal(t, []domain.Override{history}, got.Overrides)

	changed := history
	changed.CustomWorkoutID = "rewritten"
	_, err = progress.ApplyOverrides(e, []domain.Override{changed})
	assert.ErrorIs(t, err, progress.ErrPastWeekOverrideRejected)
}

func TestApplyOverrides_Validation(t *testing.T) {
	e := activeEnrollment(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name  string
		batch []domain.Override
	}{
		{"zero week", []domain.Override{{WeekNumber: 0, DayOfWeek: domain.Monday, CustomWorkoutID: "a"}}},
		{"bad day", []domain.Override{{WeekNumber: 1, DayOfWeek: "funday", CustomWorkoutID: "a"}}},
		{"no workout", []domain.Override{{WeekNumber: 1, DayOfWeek: domain.Monday}}},
		{"duplicate slot", []domain.Override{
			{WeekNumber: 1, DayOfWeek: domain.Monday, CustomWorkoutID: "a"},
			{WeekNumber: 1, DayOfWeek: domain.Monday, CustomWorkoutID: "b"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := progress.ApplyOverrides(e, tt.batch)
			assert.ErrorIs(t, err, progress.ErrValidation)
		})
	}
}

func TestResetOverrides_KeepsHistory(t *testing.T) {
	e := activeEnrollment(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	e.CurrentWeek = 2
	e.Overrides = []domain.Override{
		{WeekNumber: 1, DayOfWeek: domain.Monday, CustomWorkoutID: "past"},
		{WeekNumber: 2, DayOfWeek: domain.Monday, CustomWorkoutID: "current"},
		{WeekNumber: 3, DayOfWeek: domain.Monday, CustomWorkoutID: "future"},
	}

	got := progress.ResetOverrides(e)
	require.Len(t, got.Overrides, 1)
	assert.Equal(t, "past", got.Overrides[0].CustomWorkoutID)
	assert.Len(t, e.Overrides, 3)
}

func TestSwapDays(t *testing.T) {
	plan := twoWeekPlan()
	e := activeEnrollment(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	e.Overrides = []domain.Override{
		{WeekNumber: 1, DayOfWeek: domain.Wednesday, CustomWorkoutID: "hill_repeats"},
		{WeekNumber: 2, DayOfWeek: domain.Monday, CustomWorkoutID: "fartlek"},
	}

	batch, err := progress.SwapDays(plan, e, 1, domain.Monday, domain.Wednesday)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Override{
		{WeekNumber: 2, DayOfWeek: domain.Monday, CustomWorkoutID: "fartlek"},
		{WeekNumber: 1, DayOfWeek: domain.Monday, CustomWorkoutID: "hill_repeats"},
		{WeekNumber: 1, DayOfWeek: domain.Wednesday, CustomWorkoutID: "easy_run"},
	}, batch)

	swapped, err := progress.ApplyOverrides(e, batch)
	require.NoError(t, err)
	id, err := progress.EffectiveWorkout(plan, swapped.Overrides, 1, domain.Monday)
	require.NoError(t, err)
	assert.Equal(t, "hill_repeats", id)

	_, err = progress.SwapDays(plan, e, 1, domain.Monday, domain.Sunday)
	assert.ErrorIs(t, err, progress.ErrScheduleSlotNotFound)
	_, err = progress.SwapDays(plan, e, 1, domain.Monday, domain.Monday)
	assert.ErrorIs(t, err, progress.ErrValidation)
}

func TestSwapDays_LeavesHistoryOutOfTheBatch(t *testing.T) {
	plan := twoWeekPlan()
	e := activeEnrollment(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	e.CurrentWeek = 2
	history := domain.Override{WeekNumber: 1, DayOfWeek: domain.Wednesday, CustomWorkoutID: "hill_repeats"}
	e.Overrides = []domain.Override{history}

	batch, err := progress.SwapDays(plan, e, 2, domain.Monday, domain.Thursday)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Override{
		{WeekNumber: 2, DayOfWeek: domain.Monday, CustomWorkoutID: "long_run"},
		{WeekNumber: 2, DayOfWeek: domain.Thursday, CustomWorkoutID: "tempo"},
	}, batch)

	swapped, err := progress.ApplyOverrides(e, batch)
	require.NoError(t, err)
	assert.Contains(t, swapped.Overrides, history)
	assert.Len(t, swapped.Overrides, 3)

	// swapping inside a past week is rejected as a whole
	pastBatch, err := progress.SwapDays(plan, e, 1, domain.Monday, domain.Wednesday)
	require.NoError(t, err)
	_, err = progress.ApplyOverrides(e, pastBatch)
	assert.ErrorIs(t, err, progress.ErrPastWeekOverrideRejected)
}
