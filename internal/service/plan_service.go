package service

import (
	"alcyxob/plan-tracker/internal/domain"
	"alcyxob/plan-tracker/internal/progress"
	"alcyxob/plan-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/plan_service_mocks.go -package=mocks

// ResolvedStructureItem is a workout structure entry with its exercise
// attached. Exercise is nil when the id does not resolve.
type ResolvedStructureItem struct {
	domain.StructureItem
	Exercise *domain.Exercise `json:"exercise"`
}

// WorkoutDetails is a workout template with its exercises resolved.
type WorkoutDetails struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name,omitempty"`
	Sport     string                  `json:"sport"`
	Category  string                  `json:"category"`
	Metrics   *domain.WorkoutMetrics  `json:"metrics,omitempty"`
	Structure []ResolvedStructureItem `json:"structure"`
}

// EnrichedDay is one plan slot. WorkoutDetails is null exactly when the
// slot's workout id has no template, which covers rest days.
type EnrichedDay struct {
	DayOfWeek         domain.DayOfWeek `json:"dayOfWeek"`
	WorkoutTemplateID string           `json:"workoutTemplateId"`
	WorkoutDetails    *WorkoutDetails  `json:"workoutDetails"`

	// Progress overlay only
	ScheduledWorkoutID string             `json:"scheduledWorkoutId,omitempty"`
	IsOverridden       bool               `json:"isOverridden,omitempty"`
	IsCurrent          bool               `json:"isCurrent,omitempty"`
	Date               *time.Time         `json:"date,omitempty"`
	Log                *domain.WorkoutLog `json:"log,omitempty"`
}

type EnrichedWeek struct {
	WeekNumber int           `json:"weekNumber"`
	Days       []EnrichedDay `json:"days"`
}

// EnrichedPlan is the display tree of a plan template.
type EnrichedPlan struct {
	ID            string         `json:"id"`
	Name          string         `json:"name,omitempty"`
	Sport         string         `json:"sport,omitempty"`
	Level         string         `json:"level,omitempty"`
	Description   string         `json:"description,omitempty"`
	DurationWeeks int            `json:"durationWeeks"`
	Weeks         []EnrichedWeek `json:"weeks"`
}

// EnrichedProgress is a plan tree overlaid with a user's live enrollment.
type EnrichedProgress struct {
	Plan       EnrichedPlan      `json:"plan"`
	Enrollment domain.Enrollment `json:"enrollment"`
	Finished   bool              `json:"finished"`
}

type PlanService interface {
	// EnrichPlans returns the display trees of the found plans, in request
	// order. Unknown ids are skipped.
	EnrichPlans(ctx context.Context, planIDs []string) ([]EnrichedPlan, error)
	// EnrichProgress returns the plan tree of an enrollment with overrides applied.
	EnrichProgress(ctx context.Context, userID, planID string, now time.Time) (*EnrichedProgress, error)
}

type planService struct {
	catalog        repository.CatalogRepository
	enrollmentRepo repository.EnrollmentRepository
}

func NewPlanService(catalog repository.CatalogRepository, enrollmentRepo repository.EnrollmentRepository) PlanService {
	return &planService{
		catalog:        catalog,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *planService) EnrichPlans(ctx context.Context, planIDs []string) ([]EnrichedPlan, error) {
	ids := newIDSet()
	for _, id := range planIDs {
		ids.add(id)
	}

	// 1. Batch-fetch plans
	fetched, err := s.catalog.GetPlanTemplates(ctx, ids.list())
	if err != nil {
		return nil, fmt.Errorf("get plan templates: %w", err)
	}
	byID := make(map[string]domain.PlanTemplate, len(fetched))
	for _, p := range fetched {
		byID[p.ID] = p
	}
	plans := make([]domain.PlanTemplate, 0, len(fetched))
	for _, id := range ids.list() {
		if p, ok := byID[id]; ok {
			plans = append(plans, p)
		}
	}

	// 2. Resolve workouts and exercises in two more batches
	enriched, err := joinPlans(ctx, s.catalog, plans, scheduledWorkout)
	if err != nil {
		return nil, err
	}
	log.Debugf("enriched %d of %d requested plans", len(enriched), len(planIDs))
	return enriched, nil
}

func (s *planService) EnrichProgress(ctx context.Context, userID, planID string, now time.Time) (*EnrichedProgress, error) {
	if userID == "" || planID == "" {
		return nil, fmt.Errorf("%w: user ID and plan ID are required", ErrValidation)
	}

	// 1. Enrollment
	enrollment, err := s.enrollmentRepo.Get(ctx, userID, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}

	// 2. Plan, then the cursor as of now (read only, nothing is persisted here)
	plan, err := findPlan(ctx, s.catalog, planID)
	if err != nil {
		return nil, err
	}
	current, _ := progress.Advance(*enrollment, plan.DurationWeeks, now)
	plan = withOverrideSlots(plan, current.Overrides)

	// 3. Join on the effective workouts
	effective := func(p *domain.PlanTemplate, week int, day domain.PlanDay) string {
		if o, ok := progress.FindOverride(current.Overrides, week, day.DayOfWeek); ok {
			return o.CustomWorkoutID
		}
		return day.WorkoutTemplateID
	}
	enriched, err := joinPlans(ctx, s.catalog, []domain.PlanTemplate{*plan}, effective)
	if err != nil {
		return nil, err
	}

	// 4. Overlay the enrollment state
	tree := enriched[0]
	for wi := range tree.Weeks {
		week := &tree.Weeks[wi]
		for di := range week.Days {
			overlayDay(&week.Days[di], plan, week.WeekNumber, current)
		}
	}

	return &EnrichedProgress{
		Plan:       tree,
		Enrollment: current,
		Finished:   progress.Finished(current, plan.DurationWeeks, now),
	}, nil
}

// withOverrideSlots returns plan extended with a rest-day slot for every
// override that targets a day the plan does not schedule, so such overrides
// show up in the tree. plan itself is not modified.
func withOverrideSlots(plan *domain.PlanTemplate, overrides []domain.Override) *domain.PlanTemplate {
	var missing []domain.Override
	for _, o := range overrides {
		if o.WeekNumber < 1 || o.WeekNumber > plan.DurationWeeks {
			continue
		}
		if _, ok := plan.Slot(o.WeekNumber, o.DayOfWeek); !ok {
			missing = append(missing, o)
		}
	}
	if len(missing) == 0 {
		return plan
	}

	out := *plan
	out.Weeks = make([]domain.PlanWeek, len(plan.Weeks))
	for i, w := range plan.Weeks {
		out.Weeks[i] = domain.PlanWeek{WeekNumber: w.WeekNumber, Days: append([]domain.PlanDay(nil), w.Days...)}
	}
	touched := make(map[int]bool, len(missing))
	for _, o := range missing {
		touched[o.WeekNumber] = true
		wi := -1
		for i := range out.Weeks {
			if out.Weeks[i].WeekNumber == o.WeekNumber {
				wi = i
				break
			}
		}
		if wi < 0 {
			out.Weeks = append(out.Weeks, domain.PlanWeek{WeekNumber: o.WeekNumber})
			wi = len(out.Weeks) - 1
		}
		out.Weeks[wi].Days = append(out.Weeks[wi].Days, domain.PlanDay{DayOfWeek: o.DayOfWeek, WorkoutTemplateID: domain.RestDayWorkoutID})
	}

	sort.SliceStable(out.Weeks, func(i, j int) bool { return out.Weeks[i].WeekNumber < out.Weeks[j].WeekNumber })
	for i := range out.Weeks {
		if !touched[out.Weeks[i].WeekNumber] {
			continue
		}
		days := out.Weeks[i].Days
		sort.SliceStable(days, func(a, b int) bool { return days[a].DayOfWeek.Index() < days[b].DayOfWeek.Index() })
	}
	return &out
}

func overlayDay(day *EnrichedDay, plan *domain.PlanTemplate, week int, e domain.Enrollment) {
	if _, ok := progress.FindOverride(e.Overrides, week, day.DayOfWeek); ok {
		day.IsOverridden = true
		if slot, ok := plan.Slot(week, day.DayOfWeek); ok {
			day.ScheduledWorkoutID = slot.WorkoutTemplateID
		}
	}
	day.IsCurrent = week == e.CurrentWeek && day.DayOfWeek.Index() == e.CurrentDayIndex

	date := progress.SlotDate(e.StartedAt, week, day.DayOfWeek)
	day.Date = &date
	if l, ok := progress.LatestLog(e.ProgressLog, date, day.WorkoutTemplateID); ok {
		day.Log = &l
	}
}
