package service

import (
	"alcyxob/plan-tracker/internal/domain"
	"alcyxob/plan-tracker/internal/repository"
	"context"
	"fmt"
)

// workoutResolver picks the workout id shown for a plan slot.
type workoutResolver func(plan *domain.PlanTemplate, week int, day domain.PlanDay) string

func scheduledWorkout(_ *domain.PlanTemplate, _ int, day domain.PlanDay) string {
	return day.WorkoutTemplateID
}

// idSet collects distinct ids in first-seen order.
type idSet struct {
	seen map[string]struct{}
	ids  []string
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[string]struct{})}
}

func (s *idSet) add(id string) {
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *idSet) list() []string {
	return s.ids
}

// joinPlans builds the display trees of plans. It always issues exactly one
// workout batch and one exercise batch, whatever the number of plans or weeks.
func joinPlans(ctx context.Context, catalog repository.CatalogRepository, plans []domain.PlanTemplate, resolve workoutResolver) ([]EnrichedPlan, error) {
	// 1. Distinct workout ids over every slot, the rest-day sentinel included
	workoutIDs := newIDSet()
	for pi := range plans {
		for _, week := range plans[pi].Weeks {
			for _, day := range week.Days {
				workoutIDs.add(resolve(&plans[pi], week.WeekNumber, day))
			}
		}
	}

	// 2. Single workout fetch
	workouts, err := catalog.GetWorkoutTemplates(ctx, workoutIDs.list())
	if err != nil {
		return nil, fmt.Errorf("get workout templates: %w", err)
	}

	// 3. Distinct exercise ids over every fetched workout
	exerciseIDs := newIDSet()
	for i := range workouts {
		for _, id := range workouts[i].ExerciseIDs() {
			exerciseIDs.add(id)
		}
	}

	// 4. Single exercise fetch
	exercises, err := catalog.GetExercises(ctx, exerciseIDs.list())
	if err != nil {
		return nil, fmt.Errorf("get exercises: %w", err)
	}
	exerciseByID := make(map[string]*domain.Exercise, len(exercises))
	for i := range exercises {
		exerciseByID[exercises[i].ID] = &exercises[i]
	}

	details := make(map[string]*WorkoutDetails, len(workouts))
	for i := range workouts {
		details[workouts[i].ID] = resolveWorkout(&workouts[i], exerciseByID)
	}

	// 5. Rebuild plan -> week -> day
	enriched := make([]EnrichedPlan, 0, len(plans))
	for pi := range plans {
		plan := &plans[pi]
		tree := EnrichedPlan{
			ID:            plan.ID,
			Name:          plan.Name,
			Sport:         plan.Sport,
			Level:         plan.Level,
			Description:   plan.Description,
			DurationWeeks: plan.DurationWeeks,
			Weeks:         make([]EnrichedWeek, 0, len(plan.Weeks)),
		}
		for _, week := range plan.Weeks {
			days := make([]EnrichedDay, 0, len(week.Days))
			for _, day := range week.Days {
				workoutID := resolve(plan, week.WeekNumber, day)
				days = append(days, EnrichedDay{
					DayOfWeek:         day.DayOfWeek,
					WorkoutTemplateID: workoutID,
					WorkoutDetails:    details[workoutID],
				})
			}
			tree.Weeks = append(tree.Weeks, EnrichedWeek{WeekNumber: week.WeekNumber, Days: days})
		}
		enriched = append(enriched, tree)
	}
	return enriched, nil
}

func resolveWorkout(w *domain.WorkoutTemplate, exercises map[string]*domain.Exercise) *WorkoutDetails {
	structure := make([]ResolvedStructureItem, 0, len(w.Structure))
	for _, item := range w.Structure {
		structure = append(structure, ResolvedStructureItem{
			StructureItem: item,
			Exercise:      exercises[item.ExerciseID],
		})
	}
	return &WorkoutDetails{
		ID:        w.ID,
		Name:      w.Name,
		Sport:     w.Sport,
		Category:  w.Category,
		Metrics:   w.Metrics,
		Structure: structure,
	}
}
