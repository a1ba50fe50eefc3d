package domain

import (
	"time"
)

// UserStats are the aggregate workout statistics cached on the user.
type UserStats struct {
	TotalWorkoutsCompleted int        `bson:"totalWorkoutsCompleted" json:"totalWorkoutsCompleted"`
	CurrentStreak          int        `bson:"currentStreak" json:"currentStreak"`
	LongestStreak          int        `bson:"longestStreak" json:"longestStreak"`
	LastWorkoutDate        *time.Time `bson:"lastWorkoutDate,omitempty" json:"lastWorkoutDate,omitempty"`
}

// StreakStats are the streak fields of UserStats, derived from a log set.
type StreakStats struct {
	CurrentStreak   int
	LongestStreak   int
	LastWorkoutDate *time.Time
}

// StatsUpdate is a change to a user's stats. The completed total moves by
// CompletedDelta and never drops below zero; Streaks, when set, overwrites
// the streak fields.
type StatsUpdate struct {
	CompletedDelta int
	Streaks        *StreakStats
}

// ApplyTo returns stats with the update applied.
func (u StatsUpdate) ApplyTo(stats UserStats) UserStats {
	stats.TotalWorkoutsCompleted += u.CompletedDelta
	if stats.TotalWorkoutsCompleted < 0 {
		stats.TotalWorkoutsCompleted = 0
	}
	if u.Streaks != nil {
		stats.CurrentStreak = u.Streaks.CurrentStreak
		stats.LongestStreak = u.Streaks.LongestStreak
		stats.LastWorkoutDate = u.Streaks.LastWorkoutDate
	}
	return stats
}

// User is the owner of enrollments and of the aggregate stats.
// Identity and profile data are managed outside this service; ID is the opaque
// subject id carried in the caller's token.
type User struct {
	ID        string    `bson:"_id" json:"id"`
	Stats     UserStats `bson:"stats" json:"stats"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
