package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "utility_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "utility_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "utility_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	// RateLimitRejects counts requests refused by the rate limiter.
	RateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "utility_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
	)

	// PanicRecoveries counts handler panics turned into 500 responses.
	PanicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "utility_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)
)
