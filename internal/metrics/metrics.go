// Package metrics exposes Prometheus collectors for the HTTP surface and
// the booking pipeline.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	BookingsCreated  *prometheus.CounterVec
	BookingsRejected *prometheus.CounterVec
}

// New registers the collectors on the default registry. Call it once per
// process.
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fitbook_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fitbook_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		BookingsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fitbook_bookings_created_total",
			Help: "Bookings committed, by class name",
		}, []string{"class_name"}),

		BookingsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fitbook_bookings_rejected_total",
			Help: "Booking requests rejected before commit, by reason",
		}, []string{"reason"}),
	}
}

// Middleware records per-request counters and latency. Route is the matched
// pattern, not the raw path, to keep cardinality bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}
