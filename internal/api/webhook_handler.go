package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taoyao-code/svc-health/internal/api/middleware"
	"github.com/taoyao-code/svc-health/internal/metrics"
)

// WebhookHandler Webhook接收处理器
type WebhookHandler struct {
	logger *zap.Logger
	m      *metrics.ServiceMetrics
}

// NewWebhookHandler 创建Webhook接收处理器
func NewWebhookHandler(logger *zap.Logger, m *metrics.ServiceMetrics) *WebhookHandler {
	return &WebhookHandler{logger: logger, m: m}
}

// Receive 接收Webhook投递
// POST /webhooks/:source
// 只做JSON校验、落日志与计数；业务消费由接入方自行扩展
func (h *WebhookHandler) Receive(c *gin.Context) {
	source := c.Param("source")

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, middleware.NewErrorReport(
			"invalid_payload",
			"request body must be a JSON object",
			middleware.GetRequestID(c),
		))
		return
	}

	deliveryID := uuid.New().String()
	h.logger.Info("webhook received",
		zap.String("source", source),
		zap.String("delivery_id", deliveryID),
		zap.Int("payload_fields", len(payload)),
		zap.String("request_id", middleware.GetRequestID(c)),
	)
	if h.m != nil {
		h.m.WebhooksReceived.WithLabelValues(source).Inc()
	}

	c.JSON(http.StatusAccepted, gin.H{
		"received":   true,
		"deliveryId": deliveryID,
		"requestId":  middleware.GetRequestID(c),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}
