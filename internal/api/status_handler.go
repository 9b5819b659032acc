package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taoyao-code/svc-health/internal/health"
)

// StatusHandler 运行时状态处理器
type StatusHandler struct {
	info health.ServiceInfo
}

// NewStatusHandler 创建运行时状态处理器
func NewStatusHandler(info health.ServiceInfo) *StatusHandler {
	return &StatusHandler{info: info}
}

// Status 进程运行时状态
// GET /api/status
func (h *StatusHandler) Status(c *gin.Context) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	c.JSON(http.StatusOK, gin.H{
		"service":    h.info.Service,
		"uptime":     h.info.Uptime(),
		"goroutines": runtime.NumGoroutine(),
		"memory": gin.H{
			"alloc_bytes": ms.Alloc,
			"sys_bytes":   ms.Sys,
			"gc_runs":     ms.NumGC,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
