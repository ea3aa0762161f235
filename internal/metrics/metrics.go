// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upstream movies API
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drcinema_upstream_requests_total",
			Help: "Total number of requests made to the movies API",
		},
		[]string{"endpoint", "status"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "drcinema_upstream_request_duration_seconds",
			Help:    "Duration of movies API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Circuit breaker, 0 = closed, 1 = half-open, 2 = open
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "drcinema_circuit_breaker_state",
			Help: "Current circuit breaker state",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drcinema_circuit_breaker_requests_total",
			Help: "Requests seen by the circuit breaker by outcome",
		},
		[]string{"name", "result"},
	)

	// HTTP API
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drcinema_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "drcinema_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	RateLimitHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drcinema_rate_limit_hits_total",
			Help: "Requests rejected by the rate limiter",
		},
	)

	// Persistence of the user's collections
	StorageWriteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drcinema_storage_write_failures_total",
			Help: "Failed writes of a persisted collection",
		},
		[]string{"key"},
	)

	CatalogRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drcinema_catalog_refreshes_total",
			Help: "Scheduled catalog refreshes by outcome",
		},
		[]string{"result"},
	)
)
