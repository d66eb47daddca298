package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebox_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipebox_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipebox_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	rateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipebox_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
	)

	panicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipebox_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)
)

// Metrics records request count, latency and in-flight gauge. Paths are
// labelled by route template so ids do not explode cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
