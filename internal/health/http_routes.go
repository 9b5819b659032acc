package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHTTPRoutes 注册健康检查HTTP路由
func RegisterHTTPRoutes(r *gin.Engine, responder *Responder) {
	// 1. 综合健康检查
	// GET /health
	r.GET("/health", func(c *gin.Context) {
		report, code := responder.Comprehensive(c.Request.Context())
		c.JSON(code, report)
	})

	// 2. Readiness探针（K8s使用）
	// GET /health/ready
	// 传输层恒为200，就绪与否只体现在body的status字段
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, responder.Readiness(c.Request.Context()))
	})

	// 3. Liveness探针（K8s使用）
	// GET /health/live
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, responder.Liveness())
	})
}
