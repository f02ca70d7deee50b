package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registry holds every client metric; exposed by officerctl --metrics-addr
	Registry = prometheus.NewRegistry()

	factory = promauto.With(Registry)

	// Buckets for API round trips, from a fast LAN call to a slow mobile link
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13}

	// Officer API client metrics
	APIRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "officer_api_client_request_duration_seconds",
			Help:    "Officer API request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	APIRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "officer_api_client_request_total",
			Help: "Total number of officer API requests",
		},
		[]string{"operation", "status"},
	)

	CircuitBreakerState = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "officer_api_client_circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"breaker"},
	)

	// Business Metrics
	FeedbackSubmissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "officer_feedback_submissions_total",
			Help: "Feedback submission attempts by outcome",
		},
		[]string{"status"},
	)

	DirectoryRefreshes = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "officer_directory_refreshes_total",
			Help: "Officer directory fetches by trigger",
		},
		[]string{"trigger"},
	)

	SearchResults = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "officer_directory_search_results",
			Help:    "Number of officers matching a search term",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 200, 500},
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
