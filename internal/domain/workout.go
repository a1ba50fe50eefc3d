// internal/domain/workout.go
package domain

// RestDayWorkoutID is the sentinel workout id meaning "nothing scheduled".
const RestDayWorkoutID = "rest_day"

// WorkoutMetrics holds the optional headline targets of a workout.
type WorkoutMetrics struct {
	DistanceKm   *float64 `bson:"distanceKm,omitempty" json:"distanceKm,omitempty"`
	DurationMins *int     `bson:"durationMins,omitempty" json:"durationMins,omitempty"`
}

// StructureItem is one exercise entry of a workout, in execution order.
type StructureItem struct {
	ExerciseID   string `bson:"exerciseId" json:"exerciseId"`
	Sets         *int   `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps         *int   `bson:"reps,omitempty" json:"reps,omitempty"`
	DurationMins *int   `bson:"durationMins,omitempty" json:"durationMins,omitempty"`
	DurationSecs *int   `bson:"durationSecs,omitempty" json:"durationSecs,omitempty"`
	RestSeconds  *int   `bson:"restSeconds,omitempty" json:"restSeconds,omitempty"`
	Notes        string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WorkoutTemplate is an immutable catalog workout referenced by plan days.
type WorkoutTemplate struct {
	ID        string          `bson:"_id" json:"id"`
	Name      string          `bson:"name,omitempty" json:"name,omitempty"`
	Sport     string          `bson:"sport" json:"sport"`
	Category  string          `bson:"category" json:"category"`
	Metrics   *WorkoutMetrics `bson:"metrics,omitempty" json:"metrics,omitempty"`
	Structure []StructureItem `bson:"structure" json:"structure"`
}

// ExerciseIDs returns the exercise ids referenced by the structure, in order, without duplicates.
func (w *WorkoutTemplate) ExerciseIDs() []string {
	seen := make(map[string]struct{}, len(w.Structure))
	ids := make([]string, 0, len(w.Structure))
	for _, item := range w.Structure {
		if _, ok := seen[item.ExerciseID]; ok {
			continue
		}
		seen[item.ExerciseID] = struct{}{}
		ids = append(ids, item.ExerciseID)
	}
	return ids
}
