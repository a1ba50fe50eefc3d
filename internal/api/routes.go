package api

import (
	"alcyxob/plan-tracker/internal/metrics"
	"alcyxob/plan-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	progressService service.ProgressService,
	planService service.PlanService,
	metricsManager *metrics.Manager,
	gatherer prometheus.Gatherer,
) {
	progressHandler := NewProgressHandler(progressService, planService)
	planHandler := NewPlanHandler(planService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.Use(RequestMetrics(metricsManager))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	apiV1 := router.Group("/api/v1")
	{
		// Catalog browsing is public
		plansGroup := apiV1.Group("/plans")
		{
			plansGroup.GET("", planHandler.GetPlans)
			plansGroup.GET("/:planId", planHandler.GetPlan)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
		})

		enrollmentGroup := protected.Group("/enrollments")
		{
			enrollmentGroup.POST("", progressHandler.Enroll)
			enrollmentGroup.GET("", progressHandler.ListEnrollments)

			enrollmentGroup.GET("/:planId/progress", progressHandler.GetProgress)
			enrollmentGroup.GET("/:planId/plan", progressHandler.GetPlanProgress)
			enrollmentGroup.POST("/:planId/complete", progressHandler.CompleteEnrollment)

			// --- Overrides ---
			enrollmentGroup.PUT("/:planId/overrides", progressHandler.ApplyOverrides)
			enrollmentGroup.POST("/:planId/overrides/swap", progressHandler.SwapDays)
			enrollmentGroup.DELETE("/:planId/overrides", progressHandler.ResetOverrides)

			// --- Workout logs ---
			enrollmentGroup.POST("/:planId/logs", progressHandler.CreateLog)
			enrollmentGroup.PUT("/:planId/logs/:logId", progressHandler.UpdateLog)
		}
	}
}
