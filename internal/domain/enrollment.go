// internal/domain/enrollment.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Override substitutes the plan's default workout for one (week, day) slot.
type Override struct {
	WeekNumber      int       `bson:"weekNumber" json:"weekNumber"`
	DayOfWeek       DayOfWeek `bson:"dayOfWeek" json:"dayOfWeek"`
	CustomWorkoutID string    `bson:"customWorkoutId" json:"customWorkoutId"`
}

// Enrollment is a user's live progress state against one plan template.
// It is unique per (UserID, PlanID).
type Enrollment struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID string             `bson:"userId" json:"userId"`
	PlanID string             `bson:"planId" json:"planId"`

	StartedAt   time.Time  `bson:"startedAt" json:"startedAt"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	IsActive    bool       `bson:"isActive" json:"isActive"`

	CurrentWeek     int `bson:"currentWeek" json:"currentWeek"`         // 1-indexed
	CurrentDayIndex int `bson:"currentDayIndex" json:"currentDayIndex"` // 0-6, Monday = 0

	Overrides   []Override   `bson:"overrides" json:"overrides"`
	ProgressLog []WorkoutLog `bson:"progressLog" json:"progressLog"`

	// Version is bumped on every save; writes are conditional on the loaded value.
	Version   int64     `bson:"version" json:"version"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Clone returns a copy whose override and log slices can be modified independently.
func (e Enrollment) Clone() Enrollment {
	c := e
	if e.Overrides != nil {
		c.Overrides = append([]Override(nil), e.Overrides...)
	}
	if e.ProgressLog != nil {
		c.ProgressLog = append([]WorkoutLog(nil), e.ProgressLog...)
	}
	return c
}

// FindLog returns the index of the log with the given id, or -1.
func (e *Enrollment) FindLog(logID string) int {
	for i := range e.ProgressLog {
		if e.ProgressLog[i].ID == logID {
			return i
		}
	}
	return -1
}
