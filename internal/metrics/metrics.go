// Package metrics provides the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "receipt_processor"

// Metrics bundles the service collectors on a private registry, so tests can
// create instances independently.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	receiptsProcessed prometheus.Counter
	receiptsRejected  prometheus.Counter
	receiptPoints     prometheus.Histogram
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "path"}),

		receiptsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "receipts",
			Name:      "processed_total",
			Help:      "Total number of receipts accepted and scored.",
		}),
		receiptsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "receipts",
			Name:      "rejected_total",
			Help:      "Total number of receipts rejected by validation.",
		}),
		receiptPoints: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "receipts",
			Name:      "points",
			Help:      "Distribution of points awarded per receipt.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1 to ~4k
		}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.receiptsProcessed,
		m.receiptsRejected,
		m.receiptPoints,
	)
	return m
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// IncInFlight marks a request as started.
func (m *Metrics) IncInFlight() { m.httpInFlight.Inc() }

// DecInFlight marks a request as finished.
func (m *Metrics) DecInFlight() { m.httpInFlight.Dec() }

// ObserveRequest records a completed HTTP request.
func (m *Metrics) ObserveRequest(method, path, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ReceiptProcessed records an accepted receipt and its score.
func (m *Metrics) ReceiptProcessed(points int64) {
	m.receiptsProcessed.Inc()
	m.receiptPoints.Observe(float64(points))
}

// ReceiptRejected records a validation failure.
func (m *Metrics) ReceiptRejected() {
	m.receiptsRejected.Inc()
}
