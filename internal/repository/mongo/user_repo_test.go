package mongo

import (
	"context"
	"testing"

	"alcyxob/plan-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUserRepository_Stats(t *testing.T) {
	mt := newMockDB(t)

	mt.Run("missing user has zero stats", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plan_tracker.users", mtest.FirstBatch))

		stats, err := repo.GetStats(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, domain.UserStats{}, stats)
	})

	mt.Run("stored stats", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "plan_tracker.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "user-1"},
			{Key: "stats", Value: bson.D{
				{Key: "totalWorkoutsCompleted", Value: 7},
				{Key: "currentStreak", Value: 2},
				{Key: "longestStreak", Value: 5},
			}},
		}))

		stats, err := repo.GetStats(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, 7, stats.TotalWorkoutsCompleted)
		assert.Equal(t, 2, stats.CurrentStreak)
		assert.Equal(t, 5, stats.LongestStreak)
	})

	mt.Run("apply returns stored stats", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: "user-1"},
			{Key: "stats", Value: bson.D{
				{Key: "totalWorkoutsCompleted", Value: 8},
				{Key: "currentStreak", Value: 3},
				{Key: "longestStreak", Value: 5},
			}},
		}}))

		stats, err := repo.ApplyStats(context.Background(), "user-1", domain.StatsUpdate{
			CompletedDelta: 1,
			Streaks:        &domain.StreakStats{CurrentStreak: 3, LongestStreak: 5},
		})
		require.NoError(t, err)
		assert.Equal(t, 8, stats.TotalWorkoutsCompleted)
		assert.Equal(t, 3, stats.CurrentStreak)
		assert.Equal(t, 5, stats.LongestStreak)
	})

	mt.Run("apply command error", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 11000, Message: "duplicate key"}))

		_, err := repo.ApplyStats(context.Background(), "user-1", domain.StatsUpdate{CompletedDelta: -1})
		assert.Error(t, err)
	})

	mt.Run("apply requires user id", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		_, err := repo.ApplyStats(context.Background(), "", domain.StatsUpdate{})
		assert.Error(t, err)
	})
}
