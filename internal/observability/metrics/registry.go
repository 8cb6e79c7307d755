// Package metrics provides centralized Prometheus metrics for the
// newsfeed pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track facade request patterns and performance.
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsfeed_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsfeed_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Pipeline metrics track the submit -> queue -> fetch -> index flow.
var (
	// SubmissionsTotal counts URL submissions by outcome
	// (inserted, duplicate, error).
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsfeed_submissions_total",
			Help: "Total number of URL submissions by outcome",
		},
		[]string{"outcome"},
	)

	// FeedsProcessedTotal counts consumed feed messages by terminal state
	// (processed, fetch_failed).
	FeedsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsfeed_feeds_processed_total",
			Help: "Total number of feed messages processed by terminal state",
		},
		[]string{"state"},
	)

	// FeedProcessDuration measures end-to-end processing time per feed message.
	FeedProcessDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsfeed_feed_process_duration_seconds",
			Help:    "Duration of per-feed message processing in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
	)

	// EntriesIndexedTotal counts per-entry sink writes by sink and result
	// (indexed, duplicate, error).
	EntriesIndexedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsfeed_entries_indexed_total",
			Help: "Total number of entry writes per sink and result",
		},
		[]string{"sink", "result"},
	)

	// SinkDivergenceTotal counts entries for which the two sinks disagreed
	// about prior presence. The dual-sink write is not transactional, so
	// divergence is possible and tracked rather than compensated.
	SinkDivergenceTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsfeed_sink_divergence_total",
			Help: "Total number of entries with diverging search/graph dedup outcomes",
		},
	)

	// BrokerRequeuesTotal counts broker-level redelivery decisions
	// (requeued, dead_lettered).
	BrokerRequeuesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsfeed_broker_requeues_total",
			Help: "Total number of negatively acknowledged deliveries by disposition",
		},
		[]string{"disposition"},
	)
)
