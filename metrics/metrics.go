// Package metrics provides Prometheus metrics for the Wikipedia edit tracker.
// It tracks lookup counts, API latencies, and error rates.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "wiki_edit_tracker"
)

var (
	// LookupsTotal counts page history lookups by outcome
	LookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "lookups_total",
		Help:      "Total number of page history lookups",
	}, []string{"status"})

	// LookupDuration measures end-to-end lookup latency
	LookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "lookup_duration_seconds",
		Help:      "Page history lookup latency distribution",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	})

	// APIRequestsTotal counts MediaWiki API requests by action and status
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "Total MediaWiki API requests by action and status",
	}, []string{"action", "status"})

	// APILatency measures MediaWiki API call latency by action
	APILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_latency_seconds",
		Help:      "MediaWiki API call latency by action",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action"})

	// RevisionsReturned tracks how many revisions each lookup yields
	RevisionsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "revisions_returned",
		Help:      "Revisions returned per lookup",
		Buckets:   []float64{0, 1, 5, 10, 15, 20, 25, 30},
	})

	// RequestInFlight tracks currently executing MCP tool calls
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// PanicsRecovered counts recovered panics in tool handlers
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordLookup records a completed lookup with its duration and outcome
func RecordLookup(duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	LookupsTotal.WithLabelValues(status).Inc()
	LookupDuration.Observe(duration)
}

// RecordAPICall records a single MediaWiki API request
func RecordAPICall(action string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	APIRequestsTotal.WithLabelValues(action, status).Inc()
	APILatency.WithLabelValues(action).Observe(duration)
}
