package service

import (
	"alcyxob/plan-tracker/internal/progress"
	"alcyxob/plan-tracker/internal/repository"
	"errors"
)

// --- Error Definitions ---
var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrEnrollmentExists   = errors.New("user is already enrolled in this plan")
	ErrPlanNotFound       = errors.New("plan template not found")
	ErrEnrollmentInactive = errors.New("enrollment is no longer active")

	// Re-exported so callers only need this package to classify failures.
	ErrLogNotFound              = progress.ErrLogNotFound
	ErrScheduleSlotNotFound     = progress.ErrScheduleSlotNotFound
	ErrPastWeekOverrideRejected = progress.ErrPastWeekOverrideRejected
	ErrValidation               = progress.ErrValidation
	ErrVersionConflict          = repository.ErrVersionConflict
)
