// Package catalog provides the read side of the plan catalog: an in-memory
// catalog loaded from a JSON snapshot, and a cache in front of any catalog.
package catalog

import (
	"alcyxob/plan-tracker/internal/domain"
	"alcyxob/plan-tracker/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
)

// Snapshot is the serialized form of the whole catalog.
type Snapshot struct {
	Plans     []domain.PlanTemplate    `json:"plans"`
	Workouts  []domain.WorkoutTemplate `json:"workouts"`
	Exercises []domain.Exercise        `json:"exercises"`
}

// MemoryCatalog serves catalog reads from maps built once from a Snapshot.
// It is read-only after construction and safe for concurrent use.
type MemoryCatalog struct {
	plans     map[string]domain.PlanTemplate
	workouts  map[string]domain.WorkoutTemplate
	exercises map[string]domain.Exercise
}

// NewMemoryCatalog indexes the snapshot by id. Duplicate ids are an error.
func NewMemoryCatalog(s Snapshot) (*MemoryCatalog, error) {
	c := &MemoryCatalog{
		plans:     make(map[string]domain.PlanTemplate, len(s.Plans)),
		workouts:  make(map[string]domain.WorkoutTemplate, len(s.Workouts)),
		exercises: make(map[string]domain.Exercise, len(s.Exercises)),
	}
	for _, p := range s.Plans {
		if err := put(c.plans, p.ID, p, "plan"); err != nil {
			return nil, err
		}
	}
	for _, w := range s.Workouts {
		if err := put(c.workouts, w.ID, w, "workout"); err != nil {
			return nil, err
		}
	}
	for _, e := range s.Exercises {
		if err := put(c.exercises, e.ID, e, "exercise"); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func put[T any](m map[string]T, id string, v T, kind string) error {
	if id == "" {
		return fmt.Errorf("%s without id in catalog snapshot", kind)
	}
	if _, ok := m[id]; ok {
		return fmt.Errorf("duplicate %s id in catalog snapshot: %s", kind, id)
	}
	m[id] = v
	return nil
}

// LoadSnapshot reads and indexes the JSON catalog snapshot stored under key.
func LoadSnapshot(ctx context.Context, store storage.ObjectStorage, key string) (*MemoryCatalog, error) {
	content, err := store.GetObject(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get catalog snapshot: %w", err)
	}

	var s Snapshot
	if err := json.Unmarshal(content, &s); err != nil {
		return nil, fmt.Errorf("unmarshal catalog snapshot: %w", err)
	}
	if len(s.Plans) == 0 {
		return nil, errors.New("catalog snapshot contains no plans")
	}

	c, err := NewMemoryCatalog(s)
	if err != nil {
		return nil, err
	}
	log.Infof("catalog snapshot %s loaded: %d plans, %d workouts, %d exercises",
		key, len(c.plans), len(c.workouts), len(c.exercises))
	return c, nil
}

func (c *MemoryCatalog) GetPlanTemplates(_ context.Context, ids []string) ([]domain.PlanTemplate, error) {
	return lookup(c.plans, ids), nil
}

func (c *MemoryCatalog) GetWorkoutTemplates(_ context.Context, ids []string) ([]domain.WorkoutTemplate, error) {
	return lookup(c.workouts, ids), nil
}

func (c *MemoryCatalog) GetExercises(_ context.Context, ids []string) ([]domain.Exercise, error) {
	return lookup(c.exercises, ids), nil
}

// lookup returns the entries found for ids, sorted by id like the Mongo catalog.
func lookup[T any](m map[string]T, ids []string) []T {
	found := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := m[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		found = append(found, id)
	}
	sort.Strings(found)

	res := make([]T, 0, len(found))
	for _, id := range found {
		res = append(res, m[id])
	}
	return res
}
