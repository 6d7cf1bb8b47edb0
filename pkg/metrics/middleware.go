package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware records duration and count per route template and status.
// Labels use the registered route pattern, not the raw URL, to keep the
// cardinality fixed no matter how many orders pass through.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		handler := c.FullPath()
		if handler == "" {
			handler = "unknown"
		}

		HTTPRequestDuration.WithLabelValues(handler, c.Request.Method, status).Observe(duration)
		HTTPRequestsTotal.WithLabelValues(handler, c.Request.Method, status).Inc()
	}
}
