package health

import (
	"context"
	"time"
)

// CheckStatus 单项检查状态
type CheckStatus string

const (
	StatusReady         CheckStatus = "ready"          // 依赖可用
	StatusNotReady      CheckStatus = "not_ready"      // 依赖暂不可用
	StatusError         CheckStatus = "error"          // 依赖检查失败
	StatusNotConfigured CheckStatus = "not_configured" // 依赖未配置（不计入故障）
	StatusDegraded      CheckStatus = "degraded"       // 依赖降级（部分功能受损但仍可服务）
	StatusWarning       CheckStatus = "warning"        // 依赖告警
)

// OverallStatus 总体健康状态
type OverallStatus string

const (
	OverallHealthy  OverallStatus = "healthy"  // 健康
	OverallDegraded OverallStatus = "degraded" // 降级
	OverallError    OverallStatus = "error"    // 故障（无法服务）
)

// CheckResult 健康检查结果
// Message/Latency 仅用于日志与指标，不进入对外报告
type CheckResult struct {
	Status  CheckStatus   `json:"status"`
	Message string        `json:"message,omitempty"`
	Latency time.Duration `json:"latency"`
}

// Checker 健康检查器接口
// Check 必须尊重 ctx 超时；超时与panic由Registry统一兜底为error
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

// StaticChecker 静态检查器（固定返回同一状态）
type StaticChecker struct {
	name    string
	status  CheckStatus
	message string
}

// NewStaticChecker 创建静态检查器
func NewStaticChecker(name string, status CheckStatus, message string) *StaticChecker {
	return &StaticChecker{name: name, status: status, message: message}
}

// NewNotConfiguredChecker 创建未配置占位检查器
// 依赖在配置中被禁用时注册，报告中显式标记为 not_configured
func NewNotConfiguredChecker(name string) *StaticChecker {
	return NewStaticChecker(name, StatusNotConfigured, "dependency not configured")
}

// Name 返回检查器名称
func (c *StaticChecker) Name() string {
	return c.name
}

// Check 执行健康检查
func (c *StaticChecker) Check(ctx context.Context) CheckResult {
	return CheckResult{Status: c.status, Message: c.message}
}
