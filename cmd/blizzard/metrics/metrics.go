// Package metrics provides Prometheus metrics instrumentation for the
// blizzard forecast service, exposed at /metrics for scraping.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	FitSeconds      prometheus.Histogram
	ForecastSeconds prometheus.Histogram
	CacheHitsTotal  prometheus.Counter
	CacheMissTotal  prometheus.Counter
	ErrorsTotal     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		FitSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "blizzard_fit_seconds",
			Help:    "Time spent fitting the ARIMA model",
			Buckets: prometheus.DefBuckets,
		}),

		ForecastSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "blizzard_forecast_seconds",
			Help:    "Time spent computing a forecast after fit",
			Buckets: prometheus.DefBuckets,
		}),

		CacheHitsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "blizzard_cache_hits_total",
			Help: "Total number of forecast cache hits",
		}),

		CacheMissTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "blizzard_cache_misses_total",
			Help: "Total number of forecast cache misses",
		}),

		ErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "blizzard_errors_total",
			Help: "Total number of errors by component and reason",
		}, []string{"component", "reason"}),
	}
}

// RecordFit records the time spent fitting the model.
func (m *Metrics) RecordFit(seconds float64) {
	m.FitSeconds.Observe(seconds)
}

// RecordForecast records the time spent computing a forecast.
func (m *Metrics) RecordForecast(seconds float64) {
	m.ForecastSeconds.Observe(seconds)
}

// RecordCacheHit increments the cache hit counter.
func (m *Metrics) RecordCacheHit() {
	m.CacheHitsTotal.Inc()
}

// RecordCacheMiss increments the cache miss counter.
func (m *Metrics) RecordCacheMiss() {
	m.CacheMissTotal.Inc()
}

// RecordError increments the error counter.
func (m *Metrics) RecordError(component, reason string) {
	m.ErrorsTotal.WithLabelValues(component, reason).Inc()
}
