package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	GenerationRequests *prometheus.CounterVec
	GenerationLatency  prometheus.Histogram

	ProjectWrites *prometheus.CounterVec

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates all collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		GenerationRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "launchpad_generation_requests_total",
				Help: "Calls to the text generation service by outcome",
			},
			[]string{"outcome"},
		),
		GenerationLatency: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "launchpad_generation_duration_seconds",
				Help:    "Latency of text generation calls",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 9), // 250ms to 64s
			},
		),
		ProjectWrites: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "launchpad_project_writes_total",
				Help: "Aggregator writes into project documents",
			},
			[]string{"operation", "outcome"},
		),
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "launchpad_http_requests_total",
				Help: "HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "launchpad_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// ObserveGeneration records one generation call.
func (m *Metrics) ObserveGeneration(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.GenerationRequests.WithLabelValues(outcome(err)).Inc()
	m.GenerationLatency.Observe(d.Seconds())
}

// ObserveProjectWrite records one aggregator write.
func (m *Metrics) ObserveProjectWrite(operation string, err error) {
	if m == nil {
		return
	}
	m.ProjectWrites.WithLabelValues(operation, outcome(err)).Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
