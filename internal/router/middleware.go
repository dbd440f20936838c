package router

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/quran-branch-manager/backend/internal/models"
)

var (
	requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "branch_manager_http_requests_total",
			Help: "Number of HTTP requests served, by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "branch_manager_http_request_duration_seconds",
			Help:    "Duration of HTTP requests, by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RegisterMetrics adds the HTTP metrics to the default prometheus
// registry. Calling it more than once panics, tests use their own
// registry.
func RegisterMetrics() {
	prometheus.MustRegister(requestCount, requestDuration)
}

// UnregisterMetrics removes the HTTP metrics from the default
// prometheus registry.
func UnregisterMetrics() {
	prometheus.Unregister(requestCount)
	prometheus.Unregister(requestDuration)
}

// MetricsMiddleware records request counts and latencies. Routes are
// labeled with the route pattern, not the full path, to keep the
// cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		requestCount.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// URLMiddleware stores the URL the API is reachable at in the request
// context so that handlers can render absolute links.
//
// The URL is configured with the API_URL environment variable and
// defaults to localhost for development setups.
func URLMiddleware() gin.HandlerFunc {
	url, ok := os.LookupEnv("API_URL")
	if !ok {
		url = "http://localhost:8080"
	}

	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), url)
	}
}
