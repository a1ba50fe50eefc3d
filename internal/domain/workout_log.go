// internal/domain/workout_log.go
package domain

import "time"

// LogStatus tracks what happened to a scheduled workout.
type LogStatus string

const (
	LogStatusCompleted LogStatus = "completed"
	LogStatusSkipped   LogStatus = "skipped"
	LogStatusMissed    LogStatus = "missed"
)

func (s LogStatus) IsValid() bool {
	switch s {
	case LogStatusCompleted, LogStatusSkipped, LogStatusMissed:
		return true
	default:
		return false
	}
}

// ActivityType discriminates the Completion variants.
type ActivityType string

const (
	ActivityEndurance ActivityType = "endurance"
	ActivityStrength  ActivityType = "strength"
	ActivityDrill     ActivityType = "drill"
)

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityEndurance, ActivityStrength, ActivityDrill:
		return true
	default:
		return false
	}
}

// EnduranceResult is the endurance variant: distance covered and resulting pace.
type EnduranceResult struct {
	DistanceKm   float64 `bson:"distanceKm" json:"distanceKm"`
	PaceMinPerKm float64 `bson:"paceMinPerKm" json:"paceMinPerKm"`
}

type StrengthSet struct {
	ExerciseID string  `bson:"exerciseId,omitempty" json:"exerciseId,omitempty"`
	Reps       int     `bson:"reps" json:"reps"`
	WeightKg   float64 `bson:"weightKg" json:"weightKg"`
}

// StrengthSession is the strength variant: the performed sets.
type StrengthSession struct {
	Sets []StrengthSet `bson:"sets" json:"sets"`
}

type DrillActivity struct {
	Name         string  `bson:"name" json:"name"`
	DurationMins float64 `bson:"durationMins,omitempty" json:"durationMins,omitempty"`
	Reps         *int    `bson:"reps,omitempty" json:"reps,omitempty"`
}

// DrillSession is the drill variant: the performed activities.
type DrillSession struct {
	Activities []DrillActivity `bson:"activities" json:"activities"`
}

// Completion is the payload of a completed workout. Exactly one of Endurance,
// Strength or Drill is set, matching Activity. HeartRate and PerceivedEffort
// apply to every variant.
type Completion struct {
	Activity        ActivityType `bson:"activity" json:"activity"`
	DurationMins    float64      `bson:"durationMins" json:"durationMins"`
	HeartRate       *int         `bson:"heartRate,omitempty" json:"heartRate,omitempty"`
	PerceivedEffort *int         `bson:"perceivedEffort,omitempty" json:"perceivedEffort,omitempty"`

	Endurance *EnduranceResult `bson:"endurance,omitempty" json:"endurance,omitempty"`
	Strength  *StrengthSession `bson:"strength,omitempty" json:"strength,omitempty"`
	Drill     *DrillSession    `bson:"drill,omitempty" json:"drill,omitempty"`
}

// WorkoutLog records what actually happened on a given day.
// Completion is nil unless Status is LogStatusCompleted.
type WorkoutLog struct {
	ID                string      `bson:"id" json:"id"`
	Date              time.Time   `bson:"date" json:"date"`
	WorkoutTemplateID string      `bson:"workoutTemplateId" json:"workoutTemplateId"`
	Status            LogStatus   `bson:"status" json:"status"`
	Notes             string      `bson:"notes,omitempty" json:"notes,omitempty"`
	Completion        *Completion `bson:"completion,omitempty" json:"completion,omitempty"`
	CreatedAt         time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time   `bson:"updatedAt" json:"updatedAt"`
}

func (l *WorkoutLog) IsCompleted() bool {
	return l.Status == LogStatusCompleted
}
