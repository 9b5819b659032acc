package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taoyao-code/svc-health/internal/metrics"
)

// ErrorReport 错误响应wire格式
type ErrorReport struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"requestId,omitempty"`
}

// NotFoundReport 未匹配路由的发现式响应
// 附带端点类别清单，便于调用方自查路径拼写
type NotFoundReport struct {
	ErrorReport
	Endpoints map[string]string `json:"endpoints"`
}

// NewErrorReport 构造错误响应体（统一时间戳格式）
func NewErrorReport(category, message, requestID string) ErrorReport {
	return ErrorReport{
		Error:     category,
		Message:   message,
		Timestamp: timestamp(),
		RequestID: requestID,
	}
}

// EndpointCategories 已知端点类别（服务自描述）
func EndpointCategories() map[string]string {
	return map[string]string{
		"service-info": "GET /",
		"health":       "GET /health, GET /health/ready, GET /health/live",
		"api":          "GET /api/status",
		"webhooks":     "POST /webhooks/:source",
		"metrics":      "GET /metrics",
	}
}

// NoRoute 未匹配路由处理器
// 路由拼错属于调用方问题，不记operator级日志，只计数
func NoRoute(m *metrics.ServiceMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m != nil {
			m.NotFoundTotal.Inc()
		}

		c.JSON(http.StatusNotFound, NotFoundReport{
			ErrorReport: NewErrorReport(
				"not_found",
				"no route matches "+c.Request.Method+" "+c.Request.URL.Path,
				GetRequestID(c),
			),
			Endpoints: EndpointCategories(),
		})
	}
}

// ErrorHandler 请求管线最后一道错误处理
// 1. 恢复panic：完整上下文（方法/路径/调用方/堆栈）写操作日志
// 2. 收敛c.Errors：上游未自行响应的错误统一落日志
// 客户端只拿到通用错误体，堆栈与原始错误绝不过信任边界
func ErrorHandler(logger *zap.Logger, m *metrics.ServiceMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("remote_addr", c.ClientIP()),
					zap.String("request_id", GetRequestID(c)),
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				if m != nil {
					m.PanicsRecovered.Inc()
				}
				writeInternalError(c)
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			logger.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("remote_addr", c.ClientIP()),
				zap.String("request_id", GetRequestID(c)),
				zap.String("errors", c.Errors.String()),
			)
			writeInternalError(c)
		}
	}
}

// writeInternalError 输出通用500错误体（已有响应时不重复写）
func writeInternalError(c *gin.Context) {
	if c.Writer.Written() {
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, NewErrorReport(
		"internal_error",
		"an unexpected error occurred",
		GetRequestID(c),
	))
}

// timestamp 统一时间戳格式（ISO-8601 / RFC3339，UTC）
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
