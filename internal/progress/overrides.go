package progress

import (
	"alcyxob/plan-tracker/internal/domain"
	"fmt"

	"go.uber.org/multierr"
)

type slotKey struct {
	week int
	day  domain.DayOfWeek
}

// FindOverride returns the override for (week, day), if any.
func FindOverride(overrides []domain.Override, week int, day domain.DayOfWeek) (domain.Override, bool) {
	for _, o := range overrides {
		if o.WeekNumber == week && o.DayOfWeek == day {
			return o, true
		}
	}
	return domain.Override{}, false
}

// EffectiveWorkout resolves the workout assigned to (week, day): the user's
// override when one exists, otherwise the plan's scheduled workout.
func EffectiveWorkout(plan *domain.PlanTemplate, overrides []domain.Override, week int, day domain.DayOfWeek) (string, error) {
	if o, ok := FindOverride(overrides, week, day); ok {
		return o.CustomWorkoutID, nil
	}
	slot, ok := plan.Slot(week, day)
	if !ok {
		return "", fmt.Errorf("%w: week %d, %s", ErrScheduleSlotNotFound, week, day)
	}
	return slot.WorkoutTemplateID, nil
}

// ApplyOverrides validates newOverrides as one batch and, on success, returns the
// enrollment whose overrides for the current and later weeks are replaced by
// them. Overrides of past weeks are kept as stored: any entry targeting a week
// before the current one rejects the whole batch. On error the input
// enrollment is returned as is.
func ApplyOverrides(e domain.Enrollment, newOverrides []domain.Override) (domain.Enrollment, error) {
	var pastErr error
	seen := make(map[slotKey]struct{}, len(newOverrides))
	for _, o := range newOverrides {
		if err := validateOverride(o); err != nil {
			return e, err
		}
		key := slotKey{week: o.WeekNumber, day: o.DayOfWeek}
		if _, dup := seen[key]; dup {
			return e, fmt.Errorf("%w: duplicate override for week %d, %s", ErrValidation, o.WeekNumber, o.DayOfWeek)
		}
		seen[key] = struct{}{}

		if o.WeekNumber < e.CurrentWeek {
			pastErr = multierr.Append(pastErr, fmt.Errorf("week %d, %s is before current week %d", o.WeekNumber, o.DayOfWeek, e.CurrentWeek))
		}
	}
	if pastErr != nil {
		return e, fmt.Errorf("%w: %v", ErrPastWeekOverrideRejected, pastErr)
	}

	next := ResetOverrides(e)
	next.Overrides = append(next.Overrides, newOverrides...)
	return next, nil
}

func validateOverride(o domain.Override) error {
	if o.WeekNumber < 1 {
		return fmt.Errorf("%w: override week must be >= 1, got %d", ErrValidation, o.WeekNumber)
	}
	if !o.DayOfWeek.IsValid() {
		return fmt.Errorf("%w: unknown day of week %q", ErrValidation, o.DayOfWeek)
	}
	if o.CustomWorkoutID == "" {
		return fmt.Errorf("%w: override for week %d, %s has no workout", ErrValidation, o.WeekNumber, o.DayOfWeek)
	}
	return nil
}

// ResetOverrides drops every override from the current week on. Overrides of
// past weeks stay, since completed history depends on them.
func ResetOverrides(e domain.Enrollment) domain.Enrollment {
	next := e.Clone()
	kept := make([]domain.Override, 0, len(e.Overrides))
	for _, o := range e.Overrides {
		if o.WeekNumber < e.CurrentWeek {
			kept = append(kept, o)
		}
	}
	next.Overrides = kept
	return next
}

// SwapDays builds the override batch that exchanges the effective workouts of
// two days of the same week. The batch also carries the other overrides of the
// current and later weeks, so submitting it to ApplyOverrides changes only the
// two swapped days. Swapping inside a past week yields a batch that
// ApplyOverrides rejects.
func SwapDays(plan *domain.PlanTemplate, e domain.Enrollment, week int, a, b domain.DayOfWeek) ([]domain.Override, error) {
	if !a.IsValid() || !b.IsValid() {
		return nil, fmt.Errorf("%w: unknown day of week in swap %q/%q", ErrValidation, a, b)
	}
	if a == b {
		return nil, fmt.Errorf("%w: cannot swap %s with itself", ErrValidation, a)
	}
	workoutA, err := EffectiveWorkout(plan, e.Overrides, week, a)
	if err != nil {
		return nil, err
	}
	workoutB, err := EffectiveWorkout(plan, e.Overrides, week, b)
	if err != nil {
		return nil, err
	}

	batch := make([]domain.Override, 0, len(e.Overrides)+2)
	for _, o := range e.Overrides {
		if o.WeekNumber < e.CurrentWeek {
			continue
		}
		if o.WeekNumber == week && (o.DayOfWeek == a || o.DayOfWeek == b) {
			continue
		}
		batch = append(batch, o)
	}
	batch = append(batch,
		domain.Override{WeekNumber: week, DayOfWeek: a, CustomWorkoutID: workoutB},
		domain.Override{WeekNumber: week, DayOfWeek: b, CustomWorkoutID: workoutA},
	)
	return batch, nil
}
