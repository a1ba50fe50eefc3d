package api

import (
	"alcyxob/plan-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// statusForError maps service failures to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrEnrollmentNotFound),
		errors.Is(err, service.ErrLogNotFound),
		errors.Is(err, service.ErrScheduleSlotNotFound),
		errors.Is(err, service.ErrPlanNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEnrollmentExists),
		errors.Is(err, service.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrPastWeekOverrideRejected),
		errors.Is(err, service.ErrEnrollmentInactive):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError aborts with the mapped status. Internal errors are logged and
// not echoed to the client.
func respondError(c *gin.Context, err error) {
	code := statusForError(err)
	if code == http.StatusInternalServerError {
		log.Errorf("%s %s: %s", c.Request.Method, c.FullPath(), err)
		abortWithError(c, code, "Internal server error.")
		return
	}
	abortWithError(c, code, err.Error())
}
