package enhance

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the enhancement pipeline.
type Metrics struct {
	Registry             *prometheus.Registry
	RequestsTotal        *prometheus.CounterVec
	FallbackRecordsTotal *prometheus.CounterVec
	BackendDuration      prometheus.Histogram
}

// NewMetrics constructs and registers all pipeline metrics on a dedicated
// registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enhancer_requests_total",
			Help: "Total enhancement batches by outcome.",
		},
		[]string{"outcome"},
	)
	fallbacks := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enhancer_fallback_records_total",
			Help: "Total fallback records synthesized, by cause.",
		},
		[]string{"cause"},
	)
	backendDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "enhancer_backend_request_duration_seconds",
			Help:    "Latency of AI backend enhancement requests.",
			Buckets: prometheus.DefBuckets,
		},
	)

	registry.MustRegister(requests, fallbacks, backendDuration)

	return &Metrics{
		Registry:             registry,
		RequestsTotal:        requests,
		FallbackRecordsTotal: fallbacks,
		BackendDuration:      backendDuration,
	}
}

// IncRequest increments the batch counter for an outcome label.
func (m *Metrics) IncRequest(outcome string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(outcome).Inc()
}

// IncFallbacks adds n fallback records for a cause label.
func (m *Metrics) IncFallbacks(cause string, n int) {
	if m == nil {
		return
	}
	m.FallbackRecordsTotal.WithLabelValues(cause).Add(float64(n))
}

// ObserveBackendDuration records one backend round trip.
func (m *Metrics) ObserveBackendDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.BackendDuration.Observe(d.Seconds())
}
