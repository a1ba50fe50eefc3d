package progress

import (
	"alcyxob/plan-tracker/internal/domain"
	"fmt"
)

// mergeCompletion overlays the fields set in patch onto base. A patch for a
// different activity replaces the payload outright.
func mergeCompletion(base *domain.Completion, patch domain.Completion) domain.Completion {
	if base == nil || (patch.Activity != "" && patch.Activity != base.Activity) {
		return patch
	}
	merged := *base
	if patch.DurationMins > 0 {
		merged.DurationMins = patch.DurationMins
	}
	if patch.HeartRate != nil {
		merged.HeartRate = patch.HeartRate
	}
	if patch.PerceivedEffort != nil {
		merged.PerceivedEffort = patch.PerceivedEffort
	}
	if patch.Endurance != nil {
		merged.Endurance = patch.Endurance
	}
	if patch.Strength != nil {
		merged.Strength = patch.Strength
	}
	if patch.Drill != nil {
		merged.Drill = patch.Drill
	}
	return merged
}

// normalizeCompletion validates c against its activity variant and fills a
// missing endurance pace from duration and distance.
func normalizeCompletion(c domain.Completion) (domain.Completion, error) {
	if !c.Activity.IsValid() {
		return c, fmt.Errorf("%w: unknown activity %q", ErrValidation, c.Activity)
	}
	if c.DurationMins <= 0 {
		return c, fmt.Errorf("%w: completion duration must be positive", ErrValidation)
	}
	if c.HeartRate != nil && (*c.HeartRate <= 0 || *c.HeartRate > 250) {
		return c, fmt.Errorf("%w: heart rate out of range: %d", ErrValidation, *c.HeartRate)
	}
	if c.PerceivedEffort != nil && (*c.PerceivedEffort < 1 || *c.PerceivedEffort > 10) {
		return c, fmt.Errorf("%w: perceived effort must be 1-10, got %d", ErrValidation, *c.PerceivedEffort)
	}

	switch c.Activity {
	case domain.ActivityEndurance:
		if c.Endurance == nil || c.Strength != nil || c.Drill != nil {
			return c, fmt.Errorf("%w: endurance completion requires only endurance data", ErrValidation)
		}
		if c.Endurance.DistanceKm <= 0 {
			return c, fmt.Errorf("%w: endurance distance must be positive", ErrValidation)
		}
		if c.Endurance.PaceMinPerKm < 0 {
			return c, fmt.Errorf("%w: pace cannot be negative", ErrValidation)
		}
		endurance := *c.Endurance
		if endurance.PaceMinPerKm == 0 {
			endurance.PaceMinPerKm = c.DurationMins / endurance.DistanceKm
		}
		c.Endurance = &endurance
	case domain.ActivityStrength:
		if c.Strength == nil || c.Endurance != nil || c.Drill != nil {
			return c, fmt.Errorf("%w: strength completion requires only strength data", ErrValidation)
		}
		if len(c.Strength.Sets) == 0 {
			return c, fmt.Errorf("%w: strength session has no sets", ErrValidation)
		}
		for i, s := range c.Strength.Sets {
			if s.Reps <= 0 || s.WeightKg < 0 {
				return c, fmt.Errorf("%w: invalid strength set %d", ErrValidation, i+1)
			}
		}
	case domain.ActivityDrill:
		if c.Drill == nil || c.Endurance != nil || c.Strength != nil {
			return c, fmt.Errorf("%w: drill completion requires only drill data", ErrValidation)
		}
		if len(c.Drill.Activities) == 0 {
			return c, fmt.Errorf("%w: drill session has no activities", ErrValidation)
		}
		for i, a := range c.Drill.Activities {
			if a.Name == "" {
				return c, fmt.Errorf("%w: drill activity %d has no name", ErrValidation, i+1)
			}
		}
	}
	return c, nil
}
