package progress_test

import (
	"testing"
	"time"

	"alcyxob/plan-tracker/internal/domain"
	"alcyxob/plan-tracker/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func runCompletion() *domain.Completion {
	return &domain.Completion{
		Activity:     domain.ActivityEndurance,
		DurationMins: 50,
		HeartRate:    intPtr(148),
		Endurance:    &domain.EnduranceResult{DistanceKm: 10},
	}
}

func TestCreateLog_Completed(t *testing.T) {
	now := date(2024, 2, 3).Add(18 * time.Hour)
	e := activeEnrollment(date(2024, 1, 29))
	e.ProgressLog = completedOn(date(2024, 2, 1), date(2024, 2, 2))

	change, err := progress.CreateLog(e, "log-3", progress.LogInput{
		Date:              now,
		WorkoutTemplateID: "easy_run",
		Status:            domain.LogStatusCompleted,
		Notes:             "felt good",
		Completion:        runCompletion(),
	}, now)
	require.NoError(t, err)

	assert.Equal(t, "log-3", change.Log.ID)
	require.NotNil(t, change.Log.Completion)
	require.NotNil(t, change.Log.Completion.Endurance)
	assert.InDelta(t, 5.0, change.Log.Completion.Endurance.PaceMinPerKm, 0.0001)

	assert.Len(t, change.Enrollment.ProgressLog, 3)
	assert.Len(t, e.ProgressLog, 2)
	assert.Equal(t, 1, change.Stats.CompletedDelta)
	require.NotNil(t, change.Stats.Streaks)
	assert.Equal(t, 3, change.Stats.Streaks.CurrentStreak)
	assert.Equal(t, 3, change.Stats.Streaks.LongestStreak)
	assert.Equal(t, date(2024, 2, 3), *change.Stats.Streaks.LastWorkoutDate)

	got := change.Stats.ApplyTo(domain.UserStats{TotalWorkoutsCompleted: 2})
	assert.Equal(t, 3, got.TotalWorkoutsCompleted)
	assert.Equal(t, 3, got.CurrentStreak)
}

func TestCreateLog_NotCompletedLeavesStats(t *testing.T) {
	now := date(2024, 2, 3)
	stats := domain.UserStats{TotalWorkoutsCompleted: 4, CurrentStreak: 2, LongestStreak: 5}

	change, err := progress.CreateLog(activeEnrollment(date(2024, 1, 29)), "log-1", progress.LogInput{
		Date:              now,
		WorkoutTemplateID: "easy_run",
		Status:            domain.LogStatusSkipped,
	}, now)
	require.NoError(t, err)
	assert.Equal(t, domain.StatsUpdate{}, change.Stats)
	assert.Equal(t, stats, change.Stats.ApplyTo(stats))
	assert.Nil(t, change.Log.Completion)
}

func TestCreateLog_Validation(t *testing.T) {
	now := date(2024, 2, 3)
	e := activeEnrollment(date(2024, 1, 29))

	tests := []struct {
		name string
		in   progress.LogInput
	}{
		{"missing date", progress.LogInput{WorkoutTemplateID: "w", Status: domain.LogStatusSkipped}},
		{"missing workout", progress.LogInput{Date: now, Status: domain.LogStatusSkipped}},
		{"bad status", progress.LogInput{Date: now, WorkoutTemplateID: "w", Status: "done"}},
		{"completed without payload", progress.LogInput{Date: now, WorkoutTemplateID: "w", Status: domain.LogStatusCompleted}},
		{"skipped with payload", progress.LogInput{Date: now, WorkoutTemplateID: "w", Status: domain.LogStatusSkipped, Completion: runCompletion()}},
		{"endurance without distance", progress.LogInput{Date: now, WorkoutTemplateID: "w", Status: domain.LogStatusCompleted,
			Completion: &domain.Completion{Activity: domain.ActivityEndurance, DurationMins: 30, Endurance: &domain.EnduranceResult{}}}},
		{"strength without sets", progress.LogInput{Date: now, WorkoutTemplateID: "w", Status: domain.LogStatusCompleted,
			Completion: &domain.Completion{Activity: domain.ActivityStrength, DurationMins: 30, Strength: &domain.StrengthSession{}}}},
		{"mixed variants", progress.LogInput{Date: now, WorkoutTemplateID: "w", Status: domain.LogStatusCompleted,
			Completion: &domain.Completion{Activity: domain.ActivityDrill, DurationMins: 30,
				Drill:     &domain.DrillSession{Activities: []domain.DrillActivity{{Name: "A-skips"}}},
				Endurance: &domain.EnduranceResult{DistanceKm: 1}}}},
		{"effort out of range", progress.LogInput{Date: now, WorkoutTemplateID: "w", Status: domain.LogStatusCompleted,
			Completion: &domain.Completion{Activity: domain.ActivityDrill, DurationMins: 30, PerceivedEffort: intPtr(11),
				Drill: &domain.DrillSession{Activities: []domain.DrillActivity{{Name: "A-skips"}}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := progress.CreateLog(e, "id", tt.in, now)
			assert.ErrorIs(t, err, progress.ErrValidation)
		})
	}
}

func seededLog(status domain.LogStatus, completion *domain.Completion) domain.Enrollment {
	e := activeEnrollment(date(2024, 1, 29))
	e.ProgressLog = []domain.WorkoutLog{{
		ID:                "log-1",
		Date:              date(2024, 2, 1),
		WorkoutTemplateID: "easy_run",
		Status:            status,
		Completion:        completion,
	}}
	return e
}

func TestUpdateLog_NotFound(t *testing.T) {
	_, err := progress.UpdateLog(seededLog(domain.LogStatusSkipped, nil), "nope", progress.LogInput{}, date(2024, 2, 1))
	assert.ErrorIs(t, err, progress.ErrLogNotFound)
}

func TestUpdateLog_CompletedToSkippedClearsPayloadAndClampsTotal(t *testing.T) {
	now := date(2024, 2, 1)
	e := seededLog(domain.LogStatusCompleted, runCompletion())

	change, err := progress.UpdateLog(e, "log-1", progress.LogInput{
		Date:              now,
		WorkoutTemplateID: "easy_run",
		Status:            domain.LogStatusSkipped,
		Notes:             "sick",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, -1, change.Stats.CompletedDelta)
	assert.Nil(t, change.Log.Completion)
	assert.Equal(t, "sick", change.Log.Notes)

	got := change.Stats.ApplyTo(domain.UserStats{TotalWorkoutsCompleted: 0, CurrentStreak: 1, LongestStreak: 1})
	assert.Equal(t, 0, got.TotalWorkoutsCompleted)
	assert.Zero(t, got.CurrentStreak)
	assert.Zero(t, got.LongestStreak)
	assert.Nil(t, got.LastWorkoutDate)
	// the input enrollment still holds the completed log
	assert.NotNil(t, e.ProgressLog[0].Completion)
}

func TestUpdateLog_CompletedToSkippedDecrements(t *testing.T) {
	now := date(2024, 2, 1)
	change, err := progress.UpdateLog(seededLog(domain.LogStatusCompleted, runCompletion()), "log-1", progress.LogInput{
		Date:              now,
		WorkoutTemplateID: "easy_run",
		Status:            domain.LogStatusMissed,
	}, now)
	require.NoError(t, err)
	assert.Equal(t, 6, change.Stats.ApplyTo(domain.UserStats{TotalWorkoutsCompleted: 7}).TotalWorkoutsCompleted)
}

func TestUpdateLog_SkippedToCompletedIncrements(t *testing.T) {
	now := date(2024, 2, 1)
	change, err := progress.UpdateLog(seededLog(domain.LogStatusSkipped, nil), "log-1", progress.LogInput{
		Date:              now,
		WorkoutTemplateID: "easy_run",
		Status:            domain.LogStatusCompleted,
		Completion:        runCompletion(),
	}, now)
	require.NoError(t, err)
	assert.Equal(t, 1, change.Stats.CompletedDelta)
	require.NotNil(t, change.Log.Completion)
	require.NotNil(t, change.Stats.Streaks)
	assert.Equal(t, 1, change.Stats.Streaks.CurrentStreak)

	_, err = progress.UpdateLog(seededLog(domain.LogStatusSkipped, nil), "log-1", progress.LogInput{
		Date:              now,
		WorkoutTemplateID: "easy_run",
		Status:            domain.LogStatusCompleted,
	}, now)
	assert.ErrorIs(t, err, progress.ErrValidation)
}

func TestUpdateLog_CompletedToCompletedMergesPresentFields(t *testing.T) {
	now := date(2024, 2, 1)

	change, err := progress.UpdateLog(seededLog(domain.LogStatusCompleted, runCompletion()), "log-1", progress.LogInput{
		Date:              now,
		WorkoutTemplateID: "tempo",
		Status:            domain.LogStatusCompleted,
		Completion:        &domain.Completion{PerceivedEffort: intPtr(7)},
	}, now)
	require.NoError(t, err)
	assert.Zero(t, change.Stats.CompletedDelta)
	assert.NotNil(t, change.Stats.Streaks)
	assert.Equal(t, "tempo", change.Log.WorkoutTemplateID)

	c := change.Log.Completion
	require.NotNil(t, c)
	assert.Equal(t, domain.ActivityEndurance, c.Activity)
	assert.Equal(t, 50.0, c.DurationMins)
	assert.Equal(t, 148, *c.HeartRate)
	assert.Equal(t, 7, *c.PerceivedEffort)
	assert.Equal(t, 10.0, c.Endurance.DistanceKm)

	// no payload at all keeps the stored one
	change, err = progress.UpdateLog(seededLog(domain.LogStatusCompleted, runCompletion()), "log-1", progress.LogInput{
		Date:              now,
		WorkoutTemplateID: "easy_run",
		Status:            domain.LogStatusCompleted,
	}, now)
	require.NoError(t, err)
	assert.Equal(t, 50.0, change.Log.Completion.DurationMins)
}

func TestUpdateLog_CompletedToCompletedSwitchesVariant(t *testing.T) {
	now := date(2024, 2, 1)
	change, err := progress.UpdateLog(seededLog(domain.LogStatusCompleted, runCompletion()), "log-1", progress.LogInput{
		Date:              now,
		WorkoutTemplateID: "gym",
		Status:            domain.LogStatusCompleted,
		Completion: &domain.Completion{
			Activity:     domain.ActivityStrength,
			DurationMins: 45,
			Strength:     &domain.StrengthSession{Sets: []domain.StrengthSet{{ExerciseID: "squat", Reps: 5, WeightKg: 100}}},
		},
	}, now)
	require.NoError(t, err)
	c := change.Log.Completion
	assert.Equal(t, domain.ActivityStrength, c.Activity)
	assert.Nil(t, c.Endurance)
	assert.Nil(t, c.HeartRate)
	assert.Len(t, c.Strength.Sets, 1)
}

func TestUpdateLog_RejectedLeavesInputsUntouched(t *testing.T) {
	now := date(2024, 2, 1)
	e := seededLog(domain.LogStatusCompleted, runCompletion())

	change, err := progress.UpdateLog(e, "log-1", progress.LogInput{
		Date:              now,
		WorkoutTemplateID: "easy_run",
		Status:            domain.LogStatusCompleted,
		Completion:        &domain.Completion{PerceivedEffort: intPtr(0)},
	}, now)
	require.ErrorIs(t, err, progress.ErrValidation)
	assert.Equal(t, progress.LogChange{}, change)
	assert.Equal(t, 50.0, e.ProgressLog[0].Completion.DurationMins)
}

func TestLatestLog(t *testing.T) {
	d := date(2024, 2, 1)
	logs := []domain.WorkoutLog{
		{ID: "a", Date: d, WorkoutTemplateID: "w", UpdatedAt: d.Add(time.Hour)},
		{ID: "b", Date: d.Add(3 * time.Hour), WorkoutTemplateID: "w", UpdatedAt: d.Add(5 * time.Hour)},
		{ID: "c", Date: d, WorkoutTemplateID: "other", UpdatedAt: d.Add(9 * time.Hour)},
	}

	l, ok := progress.LatestLog(logs, d, "w")
	require.True(t, ok)
	assert.Equal(t, "b", l.ID)

	_, ok = progress.LatestLog(logs, d.AddDate(0, 0, 1), "w")
	assert.False(t, ok)
}

func TestStatsUpdate_ApplyTo(t *testing.T) {
	last := date(2024, 2, 1)
	stats := domain.UserStats{TotalWorkoutsCompleted: 1, CurrentStreak: 4, LongestStreak: 9, LastWorkoutDate: &last}

	// no streaks: only the total moves, clamped at zero
	got := domain.StatsUpdate{CompletedDelta: -3}.ApplyTo(stats)
	assert.Equal(t, 0, got.TotalWorkoutsCompleted)
	assert.Equal(t, 4, got.CurrentStreak)
	assert.Equal(t, &last, got.LastWorkoutDate)

	got = domain.StatsUpdate{CompletedDelta: 1, Streaks: &progress.Streaks{LongestStreak: 2}}.ApplyTo(stats)
	assert.Equal(t, 2, got.TotalWorkoutsCompleted)
	assert.Zero(t, got.CurrentStreak)
	assert.Equal(t, 2, got.LongestStreak)
	assert.Nil(t, got.LastWorkoutDate)
}
