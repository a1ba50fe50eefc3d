package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/advance_guard_mocks.go -package=mocks

const (
	advanceKeyPrefix = "plan-tracker::advance::"
	// keys outlive their calendar day so late requests around midnight still see them
	advanceKeyTTL = 48 * time.Hour
)

// AdvanceGuard lets at most one request per enrollment and calendar day
// persist a cursor move.
type AdvanceGuard interface {
	// TryAcquire reports whether the caller won the right to persist the cursor
	// of enrollmentID for day.
	TryAcquire(ctx context.Context, enrollmentID string, day time.Time) (bool, error)
	// Release gives the day back, e.g. after the save lost a version race.
	Release(ctx context.Context, enrollmentID string, day time.Time) error
}

type redisAdvanceGuard struct {
	redisClient *redis.Client
}

// NewRedisAdvanceGuard stores the last advancement day of each enrollment in Redis.
func NewRedisAdvanceGuard(redisClient *redis.Client) AdvanceGuard {
	return &redisAdvanceGuard{redisClient: redisClient}
}

func advanceKey(enrollmentID string, day time.Time) string {
	return fmt.Sprintf("%s%s::%s", advanceKeyPrefix, enrollmentID, day.UTC().Format("2006-01-02"))
}

func (g *redisAdvanceGuard) TryAcquire(ctx context.Context, enrollmentID string, day time.Time) (bool, error) {
	acquired, err := g.redisClient.SetNX(ctx, advanceKey(enrollmentID, day), 1, advanceKeyTTL).Result()
	if err != nil {
		return false, fmt.Errorf("acquire advance guard: %w", err)
	}
	return acquired, nil
}

func (g *redisAdvanceGuard) Release(ctx context.Context, enrollmentID string, day time.Time) error {
	if err := g.redisClient.Del(ctx, advanceKey(enrollmentID, day)).Err(); err != nil {
		return fmt.Errorf("release advance guard: %w", err)
	}
	return nil
}

type noopAdvanceGuard struct{}

// NewNoopAdvanceGuard returns a guard that never blocks. Cursor moves are then
// deduplicated only by the enrollment version check.
func NewNoopAdvanceGuard() AdvanceGuard {
	return noopAdvanceGuard{}
}

func (noopAdvanceGuard) TryAcquire(context.Context, string, time.Time) (bool, error) {
	return true, nil
}

func (noopAdvanceGuard) Release(context.Context, string, time.Time) error {
	return nil
}
