package catalog

import (
	"alcyxob/plan-tracker/internal/domain"
	"alcyxob/plan-tracker/internal/metrics"
	"alcyxob/plan-tracker/internal/repository"
	"context"
	"encoding/json"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

const (
	kindPlan     = "plan"
	kindWorkout  = "workout"
	kindExercise = "exercise"
)

// CachedRepository is a read-through cache in front of a catalog repository.
// Catalog entries are immutable, so entries are only evicted by TTL or size.
// Every batch call issues at most one call to the wrapped repository, covering
// all ids that were not cached.
type CachedRepository struct {
	next       repository.CatalogRepository
	cache      *freecache.Cache
	expireSecs int
	metrics    *metrics.Manager
}

// NewCachedRepository wraps next with a freecache of sizeMB megabytes. A zero
// ttl keeps entries until they are evicted for space.
func NewCachedRepository(next repository.CatalogRepository, sizeMB int, ttl time.Duration, metricsManager *metrics.Manager) *CachedRepository {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &CachedRepository{
		next:       next,
		cache:      freecache.NewCache(sizeMB * megabyte),
		expireSecs: int(ttl / time.Second),
		metrics:    metricsManager,
	}
}

func (r *CachedRepository) GetPlanTemplates(ctx context.Context, ids []string) ([]domain.PlanTemplate, error) {
	return readThrough(ctx, r, kindPlan, ids, r.next.GetPlanTemplates, func(p domain.PlanTemplate) string { return p.ID })
}

func (r *CachedRepository) GetWorkoutTemplates(ctx context.Context, ids []string) ([]domain.WorkoutTemplate, error) {
	return readThrough(ctx, r, kindWorkout, ids, r.next.GetWorkoutTemplates, func(w domain.WorkoutTemplate) string { return w.ID })
}

func (r *CachedRepository) GetExercises(ctx context.Context, ids []string) ([]domain.Exercise, error) {
	return readThrough(ctx, r, kindExercise, ids, r.next.GetExercises, func(e domain.Exercise) string { return e.ID })
}

func cacheKey(kind, id string) []byte {
	return []byte(kind + "::" + id)
}

func readThrough[T any](
	ctx context.Context,
	r *CachedRepository,
	kind string,
	ids []string,
	fetch func(context.Context, []string) ([]T, error),
	idOf func(T) string,
) ([]T, error) {
	res := make([]T, 0, len(ids))
	var misses []string
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		cached, err := r.cache.Get(cacheKey(kind, id))
		if err != nil {
			misses = append(misses, id)
			continue
		}
		var v T
		if err := json.Unmarshal(cached, &v); err != nil {
			log.Errorf("failed to unmarshal cached %s %s: %s", kind, id, err)
			misses = append(misses, id)
			continue
		}
		res = append(res, v)
	}
	r.metrics.CounterCatalogCache.WithLabelValues(kind, "hit").Add(float64(len(res)))
	if len(misses) == 0 {
		return res, nil
	}
	r.metrics.CounterCatalogCache.WithLabelValues(kind, "miss").Add(float64(len(misses)))

	fetched, err := fetch(ctx, misses)
	if err != nil {
		return nil, err
	}
	for _, v := range fetched {
		bytes, err := json.Marshal(v)
		if err != nil {
			log.Errorf("failed to marshal %s %s for cache: %s", kind, idOf(v), err)
			continue
		}
		if err := r.cache.Set(cacheKey(kind, idOf(v)), bytes, r.expireSecs); err != nil {
			log.Errorf("failed to cache %s %s: %s", kind, idOf(v), err)
		}
	}
	log.Tracef("catalog cache: %d %s hits, %d fetched", len(res), kind, len(fetched))
	return append(res, fetched...), nil
}
