package api

import (
	"alcyxob/plan-tracker/internal/domain"
	"alcyxob/plan-tracker/internal/progress"
	"alcyxob/plan-tracker/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ProgressHandler exposes the enrollment operations of the authenticated user.
type ProgressHandler struct {
	progressService service.ProgressService
	planService     service.PlanService
	now             func() time.Time
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService, planService service.PlanService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		planService:     planService,
		now:             time.Now,
	}
}

// --- DTOs for API ---

type EnrollRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

type OverridesRequest struct {
	Overrides []domain.Override `json:"overrides"`
}

type SwapDaysRequest struct {
	WeekNumber int              `json:"weekNumber" binding:"required,min=1"`
	DayA       domain.DayOfWeek `json:"dayA" binding:"required"`
	DayB       domain.DayOfWeek `json:"dayB" binding:"required"`
}

// LogRequest carries a workout log. Completion is required for completed logs
// and must be omitted otherwise.
type LogRequest struct {
	Date              time.Time          `json:"date" binding:"required"`
	WorkoutTemplateID string             `json:"workoutTemplateId" binding:"required"`
	Status            domain.LogStatus   `json:"status" binding:"required"`
	Notes             string             `json:"notes"`
	Completion        *domain.Completion `json:"completion"`
}

func (r LogRequest) toInput() progress.LogInput {
	return progress.LogInput{
		Date:              r.Date,
		WorkoutTemplateID: r.WorkoutTemplateID,
		Status:            r.Status,
		Notes:             r.Notes,
		Completion:        r.Completion,
	}
}

// --- Handler Methods ---

// userOrAbort returns the caller's id, aborting the request when it is missing.
func userOrAbort(c *gin.Context) (string, bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return "", false
	}
	return userID, true
}

// Enroll handles POST /enrollments
func (h *ProgressHandler) Enroll(c *gin.Context) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	enrollment, err := h.progressService.Enroll(c.Request.Context(), userID, req.PlanID, h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

// ListEnrollments handles GET /enrollments
func (h *ProgressHandler) ListEnrollments(c *gin.Context) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}
	enrollments, err := h.progressService.ListEnrollments(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if enrollments == nil {
		enrollments = []domain.Enrollment{}
	}
	c.JSON(http.StatusOK, enrollments)
}

// GetProgress handles GET /enrollments/:planId/progress
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}
	view, err := h.progressService.GetProgress(c.Request.Context(), userID, c.Param("planId"), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetPlanProgress handles GET /enrollments/:planId/plan
func (h *ProgressHandler) GetPlanProgress(c *gin.Context) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}
	enriched, err := h.planService.EnrichProgress(c.Request.Context(), userID, c.Param("planId"), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enriched)
}

// CompleteEnrollment handles POST /enrollments/:planId/complete
func (h *ProgressHandler) CompleteEnrollment(c *gin.Context) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}
	enrollment, err := h.progressService.CompleteEnrollment(c.Request.Context(), userID, c.Param("planId"), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// ApplyOverrides handles PUT /enrollments/:planId/overrides
func (h *ProgressHandler) ApplyOverrides(c *gin.Context) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}
	var req OverridesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	enrollment, err := h.progressService.ApplyOverrides(c.Request.Context(), userID, c.Param("planId"), req.Overrides, h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// SwapDays handles POST /enrollments/:planId/overrides/swap
func (h *ProgressHandler) SwapDays(c *gin.Context) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}
	var req SwapDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	enrollment, err := h.progressService.SwapDays(c.Request.Context(), userID, c.Param("planId"), req.WeekNumber, req.DayA, req.DayB, h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// ResetOverrides handles DELETE /enrollments/:planId/overrides
func (h *ProgressHandler) ResetOverrides(c *gin.Context) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}
	enrollment, err := h.progressService.ResetOverrides(c.Request.Context(), userID, c.Param("planId"), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// CreateLog handles POST /enrollments/:planId/logs
func (h *ProgressHandler) CreateLog(c *gin.Context) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}
	var req LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	res, err := h.progressService.CreateLog(c.Request.Context(), userID, c.Param("planId"), req.toInput(), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateLog handles PUT /enrollments/:planId/logs/:logId
func (h *ProgressHandler) UpdateLog(c *gin.Context) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}
	var req LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	res, err := h.progressService.UpdateLog(c.Request.Context(), userID, c.Param("planId"), c.Param("logId"), req.toInput(), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
