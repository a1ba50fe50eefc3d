package progress

import "errors"

var (
	ErrScheduleSlotNotFound     = errors.New("schedule slot not found")
	ErrLogNotFound              = errors.New("workout log not found")
	ErrPastWeekOverrideRejected = errors.New("override batch targets a past week")
	ErrValidation               = errors.New("validation failed")
)
