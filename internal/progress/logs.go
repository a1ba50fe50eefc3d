package progress

import (
	"alcyxob/plan-tracker/internal/domain"
	"fmt"
	"time"
)

// LogInput carries the user-editable fields of a workout log.
// Completion must be set for completed logs on creation and must be nil otherwise.
type LogInput struct {
	Date              time.Time
	WorkoutTemplateID string
	Status            domain.LogStatus
	Notes             string
	Completion        *domain.Completion
}

// LogChange is the outcome of a log mutation: the new enrollment to persist,
// the change to apply to the user's stats, and the affected log.
type LogChange struct {
	Enrollment domain.Enrollment
	Stats      domain.StatsUpdate
	Log        domain.WorkoutLog
}

// CreateLog appends a new log with the given id. A completed log increments the
// completed-workouts total and refreshes the streaks from the enrollment's logs.
func CreateLog(e domain.Enrollment, id string, in LogInput, now time.Time) (LogChange, error) {
	if err := validateLogInput(in); err != nil {
		return LogChange{}, err
	}
	var completion *domain.Completion
	if in.Status == domain.LogStatusCompleted {
		if in.Completion == nil {
			return LogChange{}, fmt.Errorf("%w: completed log requires a completion payload", ErrValidation)
		}
		c, err := normalizeCompletion(*in.Completion)
		if err != nil {
			return LogChange{}, err
		}
		completion = &c
	} else if in.Completion != nil {
		return LogChange{}, fmt.Errorf("%w: %s log cannot carry a completion payload", ErrValidation, in.Status)
	}

	log := domain.WorkoutLog{
		ID:                id,
		Date:              in.Date.UTC(),
		WorkoutTemplateID: in.WorkoutTemplateID,
		Status:            in.Status,
		Notes:             in.Notes,
		Completion:        completion,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	next := e.Clone()
	next.ProgressLog = append(next.ProgressLog, log)

	var update domain.StatsUpdate
	if log.IsCompleted() {
		update.CompletedDelta = 1
		update.Streaks = streaksOf(next.ProgressLog, now)
	}
	return LogChange{Enrollment: next, Stats: update, Log: log}, nil
}

// UpdateLog overwrites the log identified by logID. Date, workout, status and
// notes are always replaced; the completion payload and the completed total
// follow the status transition:
//
//	completed -> completed: completion fields present in the input are merged in
//	completed -> other:     completion cleared, total decremented (not below 0)
//	other -> completed:     completion taken from the input, total incremented
//	other -> other:         nothing else changes
//
// Streaks are recomputed whenever a completed log is involved.
func UpdateLog(e domain.Enrollment, logID string, in LogInput, now time.Time) (LogChange, error) {
	idx := e.FindLog(logID)
	if idx < 0 {
		return LogChange{}, fmt.Errorf("%w: %s", ErrLogNotFound, logID)
	}
	if err := validateLogInput(in); err != nil {
		return LogChange{}, err
	}

	prev := e.ProgressLog[idx]
	updated := prev
	updated.Date = in.Date.UTC()
	updated.WorkoutTemplateID = in.WorkoutTemplateID
	updated.Status = in.Status
	updated.Notes = in.Notes
	updated.UpdatedAt = now

	var update domain.StatsUpdate
	wasCompleted, isCompleted := prev.IsCompleted(), updated.IsCompleted()
	switch {
	case wasCompleted && isCompleted:
		if in.Completion != nil {
			merged, err := normalizeCompletion(mergeCompletion(prev.Completion, *in.Completion))
			if err != nil {
				return LogChange{}, err
			}
			updated.Completion = &merged
		}
	case wasCompleted && !isCompleted:
		if in.Completion != nil {
			return LogChange{}, fmt.Errorf("%w: %s log cannot carry a completion payload", ErrValidation, in.Status)
		}
		updated.Completion = nil
		update.CompletedDelta = -1
	case !wasCompleted && isCompleted:
		if in.Completion == nil {
			return LogChange{}, fmt.Errorf("%w: completed log requires a completion payload", ErrValidation)
		}
		c, err := normalizeCompletion(*in.Completion)
		if err != nil {
			return LogChange{}, err
		}
		updated.Completion = &c
		update.CompletedDelta = 1
	default:
		if in.Completion != nil {
			return LogChange{}, fmt.Errorf("%w: %s log cannot carry a completion payload", ErrValidation, in.Status)
		}
		updated.Completion = nil
	}

	next := e.Clone()
	next.ProgressLog[idx] = updated
	if wasCompleted || isCompleted {
		update.Streaks = streaksOf(next.ProgressLog, now)
	}
	return LogChange{Enrollment: next, Stats: update, Log: updated}, nil
}

func streaksOf(logs []domain.WorkoutLog, now time.Time) *domain.StreakStats {
	s := ComputeStreaks(logs, now)
	return &s
}

// LatestLog returns the most recently updated log for the given day and
// workout, which is the one shown when several exist.
func LatestLog(logs []domain.WorkoutLog, date time.Time, workoutTemplateID string) (domain.WorkoutLog, bool) {
	var (
		latest domain.WorkoutLog
		found  bool
	)
	target := StartOfDay(date)
	for _, l := range logs {
		if !StartOfDay(l.Date).Equal(target) || l.WorkoutTemplateID != workoutTemplateID {
			continue
		}
		if !found || !l.UpdatedAt.Before(latest.UpdatedAt) {
			latest, found = l, true
		}
	}
	return latest, found
}

func validateLogInput(in LogInput) error {
	if in.Date.IsZero() {
		return fmt.Errorf("%w: log date is required", ErrValidation)
	}
	if in.WorkoutTemplateID == "" {
		return fmt.Errorf("%w: workout template id is required", ErrValidation)
	}
	if !in.Status.IsValid() {
		return fmt.Errorf("%w: unknown log status %q", ErrValidation, in.Status)
	}
	return nil
}
