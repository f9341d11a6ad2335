package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/metrics"
)

// Metrics records request count and latency per matched route
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDurationMs.WithLabelValues(c.Request.Method, route).
			Observe(float64(time.Since(start).Microseconds()) / 1000)
	}
}
