package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the dealership backend
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Business Metrics
	CarsCreatedTotal   prometheus.Counter
	CarsDeletedTotal   prometheus.Counter
	LeadsCapturedTotal prometheus.CounterVec
	EmailsSentTotal    prometheus.CounterVec
	UploadsTotal       prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autokomis_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "autokomis_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "autokomis_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		CarsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "autokomis_cars_created_total",
				Help: "Total car listings created through the admin panel",
			},
		),
		CarsDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "autokomis_cars_deleted_total",
				Help: "Total car listings deleted through the admin panel",
			},
		),
		LeadsCapturedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autokomis_leads_captured_total",
				Help: "Total leads captured by kind (contact, newsletter)",
			},
			[]string{"kind"},
		),
		EmailsSentTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autokomis_emails_sent_total",
				Help: "Total notification emails by outcome",
			},
			[]string{"outcome"},
		),
		UploadsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autokomis_uploads_total",
				Help: "Total image uploads by outcome",
			},
			[]string{"outcome"},
		),
	}
}
