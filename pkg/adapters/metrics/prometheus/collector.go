package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records HTTP serving metrics using Prometheus
type Collector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	return &Collector{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hellosvc_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hellosvc_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"method", "path"},
		),
		requestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "hellosvc_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
	}
}

// IncRequests increments the count of served requests
func (c *Collector) IncRequests(method, path, status string) {
	c.requestsTotal.WithLabelValues(method, path, status).Inc()
}

// ObserveRequestDuration records the duration of a served request
func (c *Collector) ObserveRequestDuration(method, path string, duration time.Duration) {
	c.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncRequestsInFlight increments the in-flight request gauge
func (c *Collector) IncRequestsInFlight() {
	c.requestsInFlight.Inc()
}

// DecRequestsInFlight decrements the in-flight request gauge
func (c *Collector) DecRequestsInFlight() {
	c.requestsInFlight.Dec()
}
