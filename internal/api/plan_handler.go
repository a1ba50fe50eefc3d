package api

import (
	"alcyxob/plan-tracker/internal/service"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxPlansPerRequest bounds the ids accepted by a single catalog lookup.
const maxPlansPerRequest = 50

// PlanHandler serves the enriched plan catalog.
type PlanHandler struct {
	planService service.PlanService
}

func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// GetPlans handles GET /plans?ids=a,b,c
func (h *PlanHandler) GetPlans(c *gin.Context) {
	var ids []string
	for _, id := range strings.Split(c.Query("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'ids' is required")
		return
	}
	if len(ids) > maxPlansPerRequest {
		abortWithError(c, http.StatusBadRequest, "Too many plan ids requested")
		return
	}

	plans, err := h.planService.EnrichPlans(c.Request.Context(), ids)
	if err != nil {
		respondError(c, err)
		return
	}
	if plans == nil {
		plans = []service.EnrichedPlan{}
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlan handles GET /plans/:planId
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plans, err := h.planService.EnrichPlans(c.Request.Context(), []string{c.Param("planId")})
	if err != nil {
		respondError(c, err)
		return
	}
	if len(plans) == 0 {
		respondError(c, service.ErrPlanNotFound)
		return
	}
	c.JSON(http.StatusOK, plans[0])
}
