package middleware

import (
	"strconv"
	"time"

	"oficina-criativa/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records per-route counters and latency. The route template
// (not the raw path) is used as the label to keep cardinality bounded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
