package http

import (
	"strconv"
	"time"

	"github.com/aescanero/hellosvc/pkg/adapters/metrics/prometheus"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request correlation ID
const RequestIDHeader = "X-Request-ID"

// requestID assigns a correlation ID to every request, honoring one
// supplied by the caller
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}

// requestLogger is a middleware for request logging
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("request_id", c.GetString("request_id")),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()))
	}
}

// requestMetrics observes request counts, latencies and in-flight requests.
// Unmatched routes are collapsed into a single label to bound cardinality.
func requestMetrics(collector *prometheus.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		collector.IncRequestsInFlight()

		c.Next()

		collector.DecRequestsInFlight()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		collector.IncRequests(c.Request.Method, path, strconv.Itoa(c.Writer.Status()))
		collector.ObserveRequestDuration(c.Request.Method, path, time.Since(start))
	}
}
