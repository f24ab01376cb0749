package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	purchasesCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "purchases_completed_total",
		Help: "Total number of completed purchase transactions",
	})

	downloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "downloads_total",
		Help: "Total number of authorized downloads",
	}, []string{"type"})
)

// Metrics records request counts and latencies per route. The route template
// is used instead of the raw path to keep label cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
	}
}

// CountPurchaseCompleted bumps the completed-purchase counter
func CountPurchaseCompleted() {
	purchasesCompletedTotal.Inc()
}

// CountDownload bumps the download counter for the given type
func CountDownload(downloadType string) {
	downloadsTotal.WithLabelValues(downloadType).Inc()
}
