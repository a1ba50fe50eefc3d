// internal/repository/mongo/catalog_repo.go
package mongo

import (
	"alcyxob/plan-tracker/internal/domain"
	"alcyxob/plan-tracker/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	planTemplateCollectionName    = "plan_templates"
	workoutTemplateCollectionName = "workout_templates"
	exerciseCollectionName        = "exercises"
)

// mongoCatalogRepository implements repository.CatalogRepository
type mongoCatalogRepository struct {
	plans     *mongo.Collection
	workouts  *mongo.Collection
	exercises *mongo.Collection
}

// NewMongoCatalogRepository creates a catalog repository over the plan, workout and exercise collections.
func NewMongoCatalogRepository(db *mongo.Database) repository.CatalogRepository {
	return &mongoCatalogRepository{
		plans:     db.Collection(planTemplateCollectionName),
		workouts:  db.Collection(workoutTemplateCollectionName),
		exercises: db.Collection(exerciseCollectionName),
	}
}

// GetPlanTemplates retrieves all plan templates whose IDs are in ids.
func (r *mongoCatalogRepository) GetPlanTemplates(ctx context.Context, ids []string) ([]domain.PlanTemplate, error) {
	plans := []domain.PlanTemplate{}
	if err := findByIDs(ctx, r.plans, ids, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// GetWorkoutTemplates retrieves all workout templates whose IDs are in ids.
func (r *mongoCatalogRepository) GetWorkoutTemplates(ctx context.Context, ids []string) ([]domain.WorkoutTemplate, error) {
	workouts := []domain.WorkoutTemplate{}
	if err := findByIDs(ctx, r.workouts, ids, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// GetExercises retrieves all exercises whose IDs are in ids.
func (r *mongoCatalogRepository) GetExercises(ctx context.Context, ids []string) ([]domain.Exercise, error) {
	exercises := []domain.Exercise{}
	if err := findByIDs(ctx, r.exercises, ids, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// findByIDs decodes every document whose _id is in ids into results, sorted by _id.
func findByIDs(ctx context.Context, collection *mongo.Collection, ids []string, results interface{}) error {
	if len(ids) == 0 {
		return nil
	}
	// Use $in operator to find documents where _id is in the provided array
	filter := bson.M{"_id": bson.M{"$in": ids}}
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, results); err != nil {
		return err
	}
	// Check for cursor errors after iteration
	return cursor.Err()
}

// EnsureCatalogIndexes creates the secondary indexes used for catalog browsing.
func EnsureCatalogIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(planTemplateCollectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sport", Value: 1}, {Key: "level", Value: 1}},
			Options: options.Index(),
		},
	})
	if err != nil {
		return err
	}
	_, err = db.Collection(workoutTemplateCollectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sport", Value: 1}, {Key: "category", Value: 1}},
			Options: options.Index(),
		},
	})
	if err != nil {
		return err
	}
	_, err = db.Collection(exerciseCollectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// text search over exercise names for catalog browsing
			Keys:    bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}},
			Options: options.Index().SetName("exercise_text_search"),
		},
		{
			Keys:    bson.D{{Key: "muscleGroup", Value: 1}},
			Options: options.Index(),
		},
	})
	return err
}
