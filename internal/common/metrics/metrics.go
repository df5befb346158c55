// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	HTTPRequestsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_active",
			Help: "Number of in-flight HTTP requests",
		},
	)

	CopyGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "copy_generations_total",
			Help: "Total number of copy generations by resolved category and fallback taken",
		},
		[]string{"category", "fallback"},
	)

	SpellcheckRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spellcheck_requests_total",
			Help: "Total number of spell-check requests by result source",
		},
		[]string{"source"},
	)

	SpellcheckFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spellcheck_fallbacks_total",
			Help: "Total number of local rule fallbacks by reason",
		},
		[]string{"reason"},
	)

	SpellerUpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "speller_upstream_duration_seconds",
			Help:    "Duration of upstream speller calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	CacheOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache lookups by cache and result",
		},
		[]string{"cache", "result"},
	)
)
