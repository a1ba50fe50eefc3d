package progress

import (
	"alcyxob/plan-tracker/internal/domain"
	"sort"
	"time"
)

// Streaks is the result of a streak calculation over completed workouts.
type Streaks = domain.StreakStats

// ComputeStreaks derives streak statistics from the completed logs in logs.
// Several completions on one calendar day count once.
func ComputeStreaks(logs []domain.WorkoutLog, now time.Time) Streaks {
	days := completedDays(logs)
	if len(days) == 0 {
		return Streaks{}
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if DaysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	last := days[len(days)-1]
	res := Streaks{
		LongestStreak:   longest,
		LastWorkoutDate: &last,
	}
	if DaysBetween(last, StartOfDay(now)) > 1 {
		return res
	}

	current := 1
	for i := len(days) - 1; i > 0; i-- {
		if DaysBetween(days[i-1], days[i]) != 1 {
			break
		}
		current++
	}
	res.CurrentStreak = current
	return res
}

// completedDays returns the distinct UTC days with a completed log, ascending.
func completedDays(logs []domain.WorkoutLog) []time.Time {
	seen := make(map[time.Time]struct{})
	days := make([]time.Time, 0, len(logs))
	for _, l := range logs {
		if !l.IsCompleted() {
			continue
		}
		d := StartOfDay(l.Date)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
