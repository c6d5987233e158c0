package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CalculationsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculations_completed_total",
			Help: "Total number of calculations completed by tool",
		},
		[]string{"tool_name"},
	)

	CalculationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculations_failed_total",
			Help: "Total number of calculations that returned an error result",
		},
		[]string{"tool_name", "error_code"},
	)

	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "calculation_duration_seconds",
			Help: "Duration of a single calculator invocation in seconds",
		},
		[]string{"tool_name"},
	)

	DispatchRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_rejected_total",
			Help: "Requests rejected before reaching a calculator (missing or unknown tool)",
		},
		[]string{"reason"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "result_cache_hits_total",
			Help: "Number of calculations served from the result cache",
		},
		[]string{"tool_name"},
	)
)
