package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Enabled        bool
	RequestsPerSec int
	Burst          int
}

// RateLimit 基于Token Bucket的限流中间件
// 只保护功能面（/api、/webhooks），健康探针与指标不限流
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	ratePerSec := cfg.RequestsPerSec
	if ratePerSec <= 0 {
		ratePerSec = 100 // 默认每秒100个请求
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = ratePerSec * 2 // 默认突发为稳定速率的2倍
	}

	limiter := rate.NewLimiter(rate.Limit(ratePerSec), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, NewErrorReport(
				"rate_limited",
				"too many requests",
				GetRequestID(c),
			))
			return
		}
		c.Next()
	}
}
