// Package middleware 提供HTTP中间件
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求关联标识Header
const RequestIDHeader = "X-Request-ID"

// requestIDKey gin上下文中的请求标识键
const requestIDKey = "request_id"

// RequestID 请求关联标识中间件
// 透传调用方的 X-Request-ID，缺省时生成uuid；
// 同一标识写回响应Header，并供错误响应与操作日志关联使用
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID 读取当前请求的关联标识（未设置时返回空串）
func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get(requestIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
