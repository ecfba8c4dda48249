package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rxscan_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rxscan_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Decode cascade metrics
	decodeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rxscan_decode_requests_total",
			Help: "Total number of decode requests",
		},
		[]string{"status"}, // succeeded, exhausted, error
	)

	decodeAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rxscan_decode_attempts_total",
			Help: "Per-strategy decode attempts",
		},
		[]string{"strategy", "outcome"}, // outcome: valid, miss, error
	)

	decodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rxscan_decode_duration_seconds",
			Help:    "Full cascade duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	// File upload metrics
	uploadSizeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rxscan_upload_size_bytes",
			Help:    "Size of uploaded images in bytes",
			Buckets: []float64{1024, 10 * 1024, 100 * 1024, 1024 * 1024, 10 * 1024 * 1024, 50 * 1024 * 1024},
		},
	)

	// WebSocket metrics
	websocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rxscan_websocket_active_connections",
			Help: "Number of active WebSocket connections",
		},
	)
)

// observeAttempt records one cascade attempt.
func observeAttempt(strategy string, valid bool, failed bool) {
	outcome := "miss"
	switch {
	case valid:
		outcome = "valid"
	case failed:
		outcome = "error"
	}
	decodeAttemptsTotal.WithLabelValues(strategy, outcome).Inc()
}
