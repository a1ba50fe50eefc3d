package repository

import (
	"alcyxob/plan-tracker/internal/domain" // Import our defined domain models
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/repository_mocks.go -package=mocks

// Error constants for repository layer
var (
	ErrNotFound        = RepositoryError("not found")
	ErrConflict        = RepositoryError("already exists")
	ErrVersionConflict = RepositoryError("document was modified concurrently")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// CatalogRepository gives batch read access to the immutable plan catalog.
// Missing ids are simply absent from the results.
type CatalogRepository interface {
	GetPlanTemplates(ctx context.Context, ids []string) ([]domain.PlanTemplate, error)
	GetWorkoutTemplates(ctx context.Context, ids []string) ([]domain.WorkoutTemplate, error)
	GetExercises(ctx context.Context, ids []string) ([]domain.Exercise, error)
}

// EnrollmentRepository persists enrollment documents, one per (userID, planID).
type EnrollmentRepository interface {
	// Create returns ErrConflict if the pair is already enrolled.
	Create(ctx context.Context, enrollment *domain.Enrollment) (primitive.ObjectID, error)
	Get(ctx context.Context, userID, planID string) (*domain.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Enrollment, error)
	// Save writes the whole document if its stored version still matches
	// enrollment.Version, and bumps the version. A mismatch yields ErrVersionConflict.
	Save(ctx context.Context, enrollment *domain.Enrollment) error
}

// UserRepository manages the aggregate stats stored on user documents.
type UserRepository interface {
	// GetStats returns zero stats for users that have none recorded yet.
	GetStats(ctx context.Context, userID string) (domain.UserStats, error)
	// ApplyStats applies update to the stored stats in a single atomic write,
	// creating the user document if needed, and returns the resulting stats.
	ApplyStats(ctx context.Context, userID string, update domain.StatsUpdate) (domain.UserStats, error)
}
