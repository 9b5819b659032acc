package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taoyao-code/svc-health/internal/metrics"
)

// Metrics HTTP请求计数中间件
// path维度使用路由模板（避免按原始URL产生高基数标签）
func Metrics(m *metrics.ServiceMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
