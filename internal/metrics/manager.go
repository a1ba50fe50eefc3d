package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests         *prometheus.CounterVec
	CounterEnrollments      prometheus.Counter
	CounterAdvancements     prometheus.Counter
	CounterWorkoutLogs      *prometheus.CounterVec
	CounterOverrideBatches  *prometheus.CounterVec
	CounterVersionConflicts prometheus.Counter
	CounterCatalogCache     *prometheus.CounterVec

	// histograms
	HistRequestDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("plan_tracker", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("plan_tracker", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterEnrollments := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "enrollments",
		Help:      "The total number of created enrollments",
	})
	counterAdvancements := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cursor_advancements",
		Help:      "The total number of persisted enrollment cursor moves",
	})
	counterWorkoutLogs := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_logs",
		Help:      "The total number of workout log writes",
	}, []string{"op", "status"})
	counterOverrideBatches := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "override_batches",
		Help:      "The total number of submitted override batches",
	}, []string{"result"})
	counterVersionConflicts := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "enrollment_version_conflicts",
		Help:      "The total number of enrollment saves lost to a concurrent write",
	})
	counterCatalogCache := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "catalog_cache_lookups",
		Help:      "Catalog cache lookups by entity kind and outcome",
	}, []string{"kind", "result"})

	histReqDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.0001, 0.0005, 0.001, 0.0025, 0.005,
				0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 10,
			},
			Name: "request_duration_seconds",
			Help: "Total duration of requests in seconds",
		},
	)

	return &Manager{
		CounterRequests:         counterRequests,
		CounterEnrollments:      counterEnrollments,
		CounterAdvancements:     counterAdvancements,
		CounterWorkoutLogs:      counterWorkoutLogs,
		CounterOverrideBatches:  counterOverrideBatches,
		CounterVersionConflicts: counterVersionConflicts,
		CounterCatalogCache:     counterCatalogCache,
		HistRequestDuration:     histReqDuration,
	}
}
