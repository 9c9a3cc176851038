// Package metrics holds the Prometheus collectors shared by the server and
// the client core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"jobboard-ads/internal/core/domain"
)

var (
	// Lifecycle transitions partitioned by origin, target and the side that
	// applied them ("client" or "server").
	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_transitions_total",
			Help: "Total number of campaign status transitions applied",
		},
		[]string{"from", "to", "side"},
	)

	// Remote calls that degraded to the local copy.
	syncFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_sync_failures_total",
			Help: "Total number of campaign API calls that failed and fell back to the local cache",
		},
		[]string{"op"},
	)

	// Total HTTP requests partitioned by method, route, and status code
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	// Request duration in seconds partitioned by method, route, and status code
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Transition records one status change.
func Transition(from, to domain.Status, side string) {
	if from == to {
		return
	}
	transitionsTotal.WithLabelValues(string(from), string(to), side).Inc()
}

// SyncFailure records a remote call that fell back to local state.
func SyncFailure(op string) {
	syncFailuresTotal.WithLabelValues(op).Inc()
}

// ObserveHTTP records one served request.
func ObserveHTTP(method, route, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}
