package mongo

import (
	"alcyxob/plan-tracker/internal/domain"
	"alcyxob/plan-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userCollectionName = "users"

// mongoUserRepository implements the repository.UserRepository interface using MongoDB.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new instance of mongoUserRepository.
// It expects a connected *mongo.Database instance.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(userCollectionName),
	}
}

// GetStats retrieves the aggregate stats of a user. A user without a document
// has zero stats.
func (r *mongoUserRepository) GetStats(ctx context.Context, userID string) (domain.UserStats, error) {
	var user domain.User
	filter := bson.M{"_id": userID}
	findOptions := options.FindOne().SetProjection(bson.M{"stats": 1})

	err := r.collection.FindOne(ctx, filter, findOptions).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.UserStats{}, nil
		}
		return domain.UserStats{}, err
	}
	return user.Stats, nil
}

// ApplyStats applies update to the user's stats in a single pipeline update,
// creating the user document if needed, and returns the stats as stored.
func (r *mongoUserRepository) ApplyStats(ctx context.Context, userID string, update domain.StatsUpdate) (domain.UserStats, error) {
	if userID == "" {
		return domain.UserStats{}, errors.New("user ID is required to apply stats")
	}

	set := bson.D{
		{Key: "stats.totalWorkoutsCompleted", Value: bson.M{"$max": bson.A{
			0,
			bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$stats.totalWorkoutsCompleted", 0}}, update.CompletedDelta}},
		}}},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}
	if s := update.Streaks; s != nil {
		var last interface{} = "$$REMOVE"
		if s.LastWorkoutDate != nil {
			last = s.LastWorkoutDate.UTC()
		}
		set = append(set,
			bson.E{Key: "stats.currentStreak", Value: s.CurrentStreak},
			bson.E{Key: "stats.longestStreak", Value: s.LongestStreak},
			bson.E{Key: "stats.lastWorkoutDate", Value: last},
		)
	}

	filter := bson.M{"_id": userID}
	pipeline := mongo.Pipeline{{{Key: "$set", Value: set}}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetProjection(bson.M{"stats": 1})

	var user domain.User
	if err := r.collection.FindOneAndUpdate(ctx, filter, pipeline, opts).Decode(&user); err != nil {
		return domain.UserStats{}, err
	}
	return user.Stats, nil
}
