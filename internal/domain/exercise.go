// internal/domain/exercise.go
package domain

// Exercise represents a single exercise definition in the catalog.
// Workouts reference exercises by ID only.
type Exercise struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	MuscleGroup      string   `bson:"muscleGroup,omitempty" json:"muscleGroup,omitempty"`           // e.g., "Chest", "Legs", "Back"
	ExecutionTechnic string   `bson:"executionTechnic,omitempty" json:"executionTechnic,omitempty"` // Detailed instructions
	Equipment        []string `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Difficulty       string   `bson:"difficulty,omitempty" json:"difficulty,omitempty"` // e.g., "Novice", "Medium", "Advanced"
	VideoURL         string   `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
}
