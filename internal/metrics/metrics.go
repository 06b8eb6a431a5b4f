package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReviewSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_submissions_total",
			Help: "Total number of review submissions by outcome",
		},
		[]string{"outcome"},
	)

	ReviewRetractions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_retractions_total",
			Help: "Total number of review retractions by outcome",
		},
		[]string{"outcome"},
	)

	FavoriteChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorite_changes_total",
			Help: "Total number of favorite set/unset calls by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)
)

// RecordReviewSubmission counts one submit call.
func RecordReviewSubmission(outcome string) {
	ReviewSubmissions.WithLabelValues(outcome).Inc()
}

// RecordReviewRetraction counts one retract call.
func RecordReviewRetraction(outcome string) {
	ReviewRetractions.WithLabelValues(outcome).Inc()
}

// RecordFavoriteChange counts one favorite call; action is "add" or "remove".
func RecordFavoriteChange(action, outcome string) {
	FavoriteChanges.WithLabelValues(action, outcome).Inc()
}

// RecordHTTPRequest records an HTTP request's status and latency.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
