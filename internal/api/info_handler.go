package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taoyao-code/svc-health/internal/api/middleware"
	"github.com/taoyao-code/svc-health/internal/health"
)

// InfoHandler 服务信息处理器
type InfoHandler struct {
	info health.ServiceInfo
}

// NewInfoHandler 创建服务信息处理器
func NewInfoHandler(info health.ServiceInfo) *InfoHandler {
	return &InfoHandler{info: info}
}

// Info 服务自描述端点
// GET /
func (h *InfoHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     h.info.Service,
		"version":     h.info.Version,
		"environment": h.info.Environment,
		"uptime":      h.info.Uptime(),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"endpoints":   middleware.EndpointCategories(),
	})
}
