package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taoyao-code/svc-health/internal/api/middleware"
	"github.com/taoyao-code/svc-health/internal/health"
	"github.com/taoyao-code/svc-health/internal/metrics"
)

// RegisterRoutes 注册服务信息与功能面路由
// 健康探针与指标不在此注册，也不参与限流
func RegisterRoutes(
	r *gin.Engine,
	info health.ServiceInfo,
	rlCfg middleware.RateLimitConfig,
	m *metrics.ServiceMetrics,
	logger *zap.Logger,
) {
	if r == nil {
		return
	}

	// 服务自描述
	r.GET("/", NewInfoHandler(info).Info)

	// 功能面（限流保护）
	limited := middleware.RateLimit(rlCfg)

	apiGroup := r.Group("/api", limited)
	apiGroup.GET("/status", NewStatusHandler(info).Status)

	webhooks := r.Group("/webhooks", limited)
	webhooks.POST("/:source", NewWebhookHandler(logger, m).Receive)

	logger.Info("api routes registered",
		zap.Int("endpoints", 3),
		zap.Bool("rate_limit", rlCfg.Enabled))
}
