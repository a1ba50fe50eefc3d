// internal/repository/mongo/enrollment_repo.go
package mongo

import (
	"alcyxob/plan-tracker/internal/domain"
	"alcyxob/plan-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const enrollmentCollectionName = "enrollments"

// mongoEnrollmentRepository implements repository.EnrollmentRepository
type mongoEnrollmentRepository struct {
	collection *mongo.Collection
}

// NewMongoEnrollmentRepository creates a new Enrollment repository backed by MongoDB.
func NewMongoEnrollmentRepository(db *mongo.Database) repository.EnrollmentRepository {
	return &mongoEnrollmentRepository{
		collection: db.Collection(enrollmentCollectionName),
	}
}

// Create inserts a new enrollment. The unique (userId, planId) index turns a
// second enrollment for the same pair into repository.ErrConflict.
func (r *mongoEnrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) (primitive.ObjectID, error) {
	if enrollment.UserID == "" || enrollment.PlanID == "" {
		return primitive.NilObjectID, errors.New("enrollment requires userId and planId")
	}

	enrollment.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	enrollment.CreatedAt = now
	enrollment.UpdatedAt = now
	enrollment.Version = 1
	if enrollment.Overrides == nil {
		enrollment.Overrides = []domain.Override{}
	}
	if enrollment.ProgressLog == nil {
		enrollment.ProgressLog = []domain.WorkoutLog{}
	}

	result, err := r.collection.InsertOne(ctx, enrollment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrConflict
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted enrollment ID")
	}
	return insertedID, nil
}

// Get retrieves the enrollment of a user in a plan.
func (r *mongoEnrollmentRepository) Get(ctx context.Context, userID, planID string) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	filter := bson.M{"userId": userID, "planId": planID}

	err := r.collection.FindOne(ctx, filter).Decode(&enrollment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

// ListByUser retrieves all enrollments of a user, newest first.
func (r *mongoEnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	enrollments := []domain.Enrollment{}
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "startedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// Save replaces the mutable part of the enrollment document, guarded by its version.
func (r *mongoEnrollmentRepository) Save(ctx context.Context, enrollment *domain.Enrollment) error {
	if enrollment.ID == primitive.NilObjectID {
		return errors.New("enrollment ID is required for save")
	}

	now := time.Now().UTC()
	filter := bson.M{"_id": enrollment.ID, "version": enrollment.Version}
	// UserID, PlanID and CreatedAt identify the document and never change.
	update := bson.M{
		"$set": bson.M{
			"startedAt":       enrollment.StartedAt,
			"completedAt":     enrollment.CompletedAt,
			"isActive":        enrollment.IsActive,
			"currentWeek":     enrollment.CurrentWeek,
			"currentDayIndex": enrollment.CurrentDayIndex,
			"overrides":       enrollment.Overrides,
			"progressLog":     enrollment.ProgressLog,
			"updatedAt":       now,
		},
		"$inc": bson.M{"version": 1},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": enrollment.ID})
		if err != nil {
			return err
		}
		if count == 0 {
			return repository.ErrNotFound
		}
		return repository.ErrVersionConflict
	}

	enrollment.Version++
	enrollment.UpdatedAt = now
	return nil
}

// EnsureEnrollmentIndexes creates necessary indexes for the enrollments collection.
func EnsureEnrollmentIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// One enrollment per user and plan
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "planId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Listing a user's enrollments, newest first
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "startedAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "isActive", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
