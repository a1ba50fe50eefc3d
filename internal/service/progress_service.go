package service

import (
	"alcyxob/plan-tracker/internal/domain"
	"alcyxob/plan-tracker/internal/metrics"
	"alcyxob/plan-tracker/internal/progress"
	"alcyxob/plan-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/progress_service_mocks.go -package=mocks

// ProgressView is an enrollment as of "now" together with today's schedule.
type ProgressView struct {
	Enrollment     domain.Enrollment `json:"enrollment"`
	TodayWeek      int               `json:"todayWeek"`
	TodayDay       domain.DayOfWeek  `json:"todayDay"`
	TodayWorkoutID string            `json:"todayWorkoutId"`
	// Finished is set once every day of the plan has elapsed; completing the
	// enrollment is still an explicit step.
	Finished bool             `json:"finished"`
	Stats    domain.UserStats `json:"stats"`
}

// LogResult is the outcome of a workout log write.
type LogResult struct {
	Log   domain.WorkoutLog `json:"log"`
	Stats domain.UserStats  `json:"stats"`
}

// ProgressService drives a user's enrollments: cursor advancement, overrides,
// workout logs and the aggregate stats derived from them.
type ProgressService interface {
	Enroll(ctx context.Context, userID, planID string, now time.Time) (*domain.Enrollment, error)
	GetProgress(ctx context.Context, userID, planID string, now time.Time) (*ProgressView, error)
	ListEnrollments(ctx context.Context, userID string) ([]domain.Enrollment, error)
	CompleteEnrollment(ctx context.Context, userID, planID string, now time.Time) (*domain.Enrollment, error)

	// Override management
	ApplyOverrides(ctx context.Context, userID, planID string, overrides []domain.Override, now time.Time) (*domain.Enrollment, error)
	SwapDays(ctx context.Context, userID, planID string, week int, dayA, dayB domain.DayOfWeek, now time.Time) (*domain.Enrollment, error)
	ResetOverrides(ctx context.Context, userID, planID string, now time.Time) (*domain.Enrollment, error)

	// Workout logs
	CreateLog(ctx context.Context, userID, planID string, in progress.LogInput, now time.Time) (*LogResult, error)
	UpdateLog(ctx context.Context, userID, planID, logID string, in progress.LogInput, now time.Time) (*LogResult, error)
}

// progressService implements the ProgressService interface.
type progressService struct {
	catalog        repository.CatalogRepository
	enrollmentRepo repository.EnrollmentRepository
	userRepo       repository.UserRepository
	guard          AdvanceGuard
	metrics        *metrics.Manager
	newLogID       func() string
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(
	catalog repository.CatalogRepository,
	enrollmentRepo repository.EnrollmentRepository,
	userRepo repository.UserRepository,
	guard AdvanceGuard,
	metricsManager *metrics.Manager,
) ProgressService {
	return &progressService{
		catalog:        catalog,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		guard:          guard,
		metrics:        metricsManager,
		newLogID:       uuid.NewString,
	}
}

// Enroll starts the user on the plan today, at week 1, Monday slot.
func (s *progressService) Enroll(ctx context.Context, userID, planID string, now time.Time) (*domain.Enrollment, error) {
	// 1. Validate input
	if userID == "" || planID == "" {
		return nil, fmt.Errorf("%w: user ID and plan ID are required", ErrValidation)
	}

	// 2. The plan must exist in the catalog
	if _, err := s.loadPlan(ctx, planID); err != nil {
		return nil, err
	}

	// 3. Create, relying on the unique (user, plan) constraint
	enrollment := &domain.Enrollment{
		UserID:          userID,
		PlanID:          planID,
		StartedAt:       progress.StartOfDay(now),
		IsActive:        true,
		CurrentWeek:     1,
		CurrentDayIndex: 0,
		Overrides:       []domain.Override{},
		ProgressLog:     []domain.WorkoutLog{},
	}
	id, err := s.enrollmentRepo.Create(ctx, enrollment)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrEnrollmentExists
		}
		return nil, fmt.Errorf("create enrollment: %w", err)
	}
	enrollment.ID = id

	s.metrics.CounterEnrollments.Inc()
	log.Infof("user %s enrolled in plan %s (enrollment %s)", userID, planID, id.Hex())
	return enrollment, nil
}

// GetProgress returns the enrollment with its cursor synced to now, persisting
// the move at most once per day, plus today's effective workout and the user's stats.
func (s *progressService) GetProgress(ctx context.Context, userID, planID string, now time.Time) (*ProgressView, error) {
	enrollment, err := s.loadEnrollment(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	current, moved := progress.Advance(*enrollment, plan.DurationWeeks, now)
	if moved {
		if err := s.persistAdvance(ctx, &current, now); err != nil {
			return nil, err
		}
	}

	day, err := domain.DayOfWeekFromIndex(current.CurrentDayIndex)
	if err != nil {
		return nil, fmt.Errorf("enrollment %s has a corrupt cursor: %w", current.ID.Hex(), err)
	}
	workoutID, err := progress.EffectiveWorkout(plan, current.Overrides, current.CurrentWeek, day)
	if err != nil {
		if !errors.Is(err, ErrScheduleSlotNotFound) {
			return nil, err
		}
		// plans may leave days out of a week; those are rest days
		workoutID = domain.RestDayWorkoutID
	}

	stats, err := s.userRepo.GetStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user stats: %w", err)
	}

	return &ProgressView{
		Enrollment:     current,
		TodayWeek:      current.CurrentWeek,
		TodayDay:       day,
		TodayWorkoutID: workoutID,
		Finished:       progress.Finished(current, plan.DurationWeeks, now),
		Stats:          stats,
	}, nil
}

// persistAdvance saves a cursor move if this request wins the day's guard.
// Losing the guard or the version race is not an error for a read: another
// request has stored the same or a newer cursor.
func (s *progressService) persistAdvance(ctx context.Context, enrollment *domain.Enrollment, now time.Time) error {
	guardKey := enrollment.ID.Hex()
	today := progress.StartOfDay(now)

	acquired, err := s.guard.TryAcquire(ctx, guardKey, today)
	if err != nil {
		// the version check still protects the document
		log.Errorf("advance guard for enrollment %s: %s", guardKey, err)
		acquired = true
	}
	if !acquired {
		log.Tracef("enrollment %s already advanced today", guardKey)
		return nil
	}

	if err := s.save(ctx, enrollment); err != nil {
		if releaseErr := s.guard.Release(ctx, guardKey, today); releaseErr != nil {
			log.Errorf("release advance guard for enrollment %s: %s", guardKey, releaseErr)
		}
		if errors.Is(err, ErrVersionConflict) {
			return nil
		}
		return err
	}

	s.metrics.CounterAdvancements.Inc()
	log.Debugf("enrollment %s advanced to week %d, day %d", guardKey, enrollment.CurrentWeek, enrollment.CurrentDayIndex)
	return nil
}

// ListEnrollments returns every enrollment of the user as stored.
func (s *progressService) ListEnrollments(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", ErrValidation)
	}
	enrollments, err := s.enrollmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

// CompleteEnrollment deactivates the enrollment. Completing an inactive
// enrollment is a no-op.
func (s *progressService) CompleteEnrollment(ctx context.Context, userID, planID string, now time.Time) (*domain.Enrollment, error) {
	enrollment, _, err := s.loadCurrent(ctx, userID, planID, now)
	if err != nil {
		return nil, err
	}
	if !enrollment.IsActive {
		return enrollment, nil
	}

	completed := progress.Complete(*enrollment, now)
	if err := s.save(ctx, &completed); err != nil {
		return nil, err
	}
	log.Infof("enrollment %s of user %s completed", completed.ID.Hex(), userID)
	return &completed, nil
}

// ApplyOverrides replaces the enrollment's override set with overrides.
func (s *progressService) ApplyOverrides(ctx context.Context, userID, planID string, overrides []domain.Override, now time.Time) (*domain.Enrollment, error) {
	enrollment, _, err := s.loadCurrent(ctx, userID, planID, now)
	if err != nil {
		return nil, err
	}
	return s.applyBatch(ctx, enrollment, overrides)
}

// SwapDays exchanges the effective workouts of two days of a week.
func (s *progressService) SwapDays(ctx context.Context, userID, planID string, week int, dayA, dayB domain.DayOfWeek, now time.Time) (*domain.Enrollment, error) {
	enrollment, plan, err := s.loadCurrent(ctx, userID, planID, now)
	if err != nil {
		return nil, err
	}
	batch, err := progress.SwapDays(plan, *enrollment, week, dayA, dayB)
	if err != nil {
		return nil, err
	}
	return s.applyBatch(ctx, enrollment, batch)
}

func (s *progressService) applyBatch(ctx context.Context, enrollment *domain.Enrollment, overrides []domain.Override) (*domain.Enrollment, error) {
	if !enrollment.IsActive {
		return nil, ErrEnrollmentInactive
	}

	next, err := progress.ApplyOverrides(*enrollment, overrides)
	if err != nil {
		s.metrics.CounterOverrideBatches.WithLabelValues("rejected").Inc()
		log.Debugf("override batch for enrollment %s rejected: %s", enrollment.ID.Hex(), err)
		return nil, err
	}
	if err := s.save(ctx, &next); err != nil {
		return nil, err
	}

	s.metrics.CounterOverrideBatches.WithLabelValues("accepted").Inc()
	log.Debugf("enrollment %s now has %d overrides", next.ID.Hex(), len(next.Overrides))
	return &next, nil
}

// ResetOverrides drops the overrides of the current and future weeks.
func (s *progressService) ResetOverrides(ctx context.Context, userID, planID string, now time.Time) (*domain.Enrollment, error) {
	enrollment, _, err := s.loadCurrent(ctx, userID, planID, now)
	if err != nil {
		return nil, err
	}

	next := progress.ResetOverrides(*enrollment)
	if err := s.save(ctx, &next); err != nil {
		return nil, err
	}
	log.Debugf("enrollment %s overrides reset, %d historical kept", next.ID.Hex(), len(next.Overrides))
	return &next, nil
}

// CreateLog records a workout outcome and refreshes the user's stats.
func (s *progressService) CreateLog(ctx context.Context, userID, planID string, in progress.LogInput, now time.Time) (*LogResult, error) {
	enrollment, _, err := s.loadCurrent(ctx, userID, planID, now)
	if err != nil {
		return nil, err
	}
	change, err := progress.CreateLog(*enrollment, s.newLogID(), in, now)
	if err != nil {
		return nil, err
	}
	stats, err := s.commitLogChange(ctx, userID, enrollment, change)
	if err != nil {
		return nil, err
	}

	s.metrics.CounterWorkoutLogs.WithLabelValues("create", string(change.Log.Status)).Inc()
	log.Debugf("log %s (%s) added to enrollment %s", change.Log.ID, change.Log.Status, change.Enrollment.ID.Hex())
	return &LogResult{Log: change.Log, Stats: stats}, nil
}

// UpdateLog rewrites an existing workout log and refreshes the user's stats.
func (s *progressService) UpdateLog(ctx context.Context, userID, planID, logID string, in progress.LogInput, now time.Time) (*LogResult, error) {
	enrollment, _, err := s.loadCurrent(ctx, userID, planID, now)
	if err != nil {
		return nil, err
	}
	change, err := progress.UpdateLog(*enrollment, logID, in, now)
	if err != nil {
		return nil, err
	}
	stats, err := s.commitLogChange(ctx, userID, enrollment, change)
	if err != nil {
		return nil, err
	}

	s.metrics.CounterWorkoutLogs.WithLabelValues("update", string(change.Log.Status)).Inc()
	log.Debugf("log %s of enrollment %s updated to %s", logID, change.Enrollment.ID.Hex(), change.Log.Status)
	return &LogResult{Log: change.Log, Stats: stats}, nil
}

// commitLogChange stores the enrollment first, so a lost version race leaves
// the stats untouched, then applies the stats update. When the stats update
// fails the enrollment is put back to prev so log and counter stay in step.
func (s *progressService) commitLogChange(ctx context.Context, userID string, prev *domain.Enrollment, change progress.LogChange) (domain.UserStats, error) {
	if err := s.save(ctx, &change.Enrollment); err != nil {
		return domain.UserStats{}, err
	}
	stats, err := s.userRepo.ApplyStats(ctx, userID, change.Stats)
	if err == nil {
		return stats, nil
	}
	err = fmt.Errorf("apply user stats: %w", err)

	restore := prev.Clone()
	restore.Version = change.Enrollment.Version
	if rbErr := s.save(ctx, &restore); rbErr != nil {
		log.Errorf("enrollment %s keeps log %s but stats of user %s were not updated: %s", change.Enrollment.ID.Hex(), change.Log.ID, userID, rbErr)
		return domain.UserStats{}, multierr.Combine(err, fmt.Errorf("roll back enrollment: %w", rbErr))
	}
	log.Warnf("stats of user %s not updated, log %s rolled back: %s", userID, change.Log.ID, err)
	return domain.UserStats{}, err
}

// loadCurrent loads the enrollment and its plan, with the cursor synced to now.
// Writes built on top of it persist the cursor together with their change.
func (s *progressService) loadCurrent(ctx context.Context, userID, planID string, now time.Time) (*domain.Enrollment, *domain.PlanTemplate, error) {
	enrollment, err := s.loadEnrollment(ctx, userID, planID)
	if err != nil {
		return nil, nil, err
	}
	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, nil, err
	}
	current, _ := progress.Advance(*enrollment, plan.DurationWeeks, now)
	return &current, plan, nil
}

func (s *progressService) loadEnrollment(ctx context.Context, userID, planID string) (*domain.Enrollment, error) {
	if userID == "" || planID == "" {
		return nil, fmt.Errorf("%w: user ID and plan ID are required", ErrValidation)
	}
	enrollment, err := s.enrollmentRepo.Get(ctx, userID, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return enrollment, nil
}

func (s *progressService) loadPlan(ctx context.Context, planID string) (*domain.PlanTemplate, error) {
	return findPlan(ctx, s.catalog, planID)
}

func (s *progressService) save(ctx context.Context, enrollment *domain.Enrollment) error {
	err := s.enrollmentRepo.Save(ctx, enrollment)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrVersionConflict):
		s.metrics.CounterVersionConflicts.Inc()
		log.Warnf("enrollment %s was modified concurrently (version %d)", enrollment.ID.Hex(), enrollment.Version)
		return err
	case errors.Is(err, repository.ErrNotFound):
		return ErrEnrollmentNotFound
	default:
		return fmt.Errorf("save enrollment: %w", err)
	}
}

// findPlan fetches a single plan template from the catalog.
func findPlan(ctx context.Context, catalog repository.CatalogRepository, planID string) (*domain.PlanTemplate, error) {
	plans, err := catalog.GetPlanTemplates(ctx, []string{planID})
	if err != nil {
		return nil, fmt.Errorf("get plan template: %w", err)
	}
	for i := range plans {
		if plans[i].ID == planID {
			return &plans[i], nil
		}
	}
	return nil, ErrPlanNotFound
}
