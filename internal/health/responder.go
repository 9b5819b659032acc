package health

import (
	"context"
	"net/http"
	"time"
)

// HealthReport 综合健康报告（对外wire格式）
type HealthReport struct {
	Status      OverallStatus          `json:"status"`
	Service     string                 `json:"service"`
	Version     string                 `json:"version"`
	Timestamp   string                 `json:"timestamp"`
	Environment string                 `json:"environment"`
	Uptime      float64                `json:"uptime"`
	Checks      map[string]CheckStatus `json:"checks"`
	Notes       string                 `json:"notes,omitempty"`
}

// ReadinessReport 就绪报告
// status 取值 "ready" / "not ready"，传输层恒为200，
// 编排器轮询时不应把业务层"未就绪"当作探针失败
type ReadinessReport struct {
	Status    string                 `json:"status"`
	Service   string                 `json:"service"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
}

// LivenessReport 存活报告
// 只反映进程是否在执行代码，与依赖健康无关
type LivenessReport struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

const (
	readinessReady    = "ready"
	readinessNotReady = "not ready"
	livenessAlive     = "alive"
)

// Responder 健康响应器：执行检查、归约状态并组装三种报告
type Responder struct {
	registry *Registry
	info     ServiceInfo
}

// NewResponder 创建健康响应器
func NewResponder(registry *Registry, info ServiceInfo) *Responder {
	return &Responder{registry: registry, info: info}
}

// Comprehensive 综合健康检查
// 并发执行全部检查并归约，返回报告与对应HTTP状态码（error→503，其余→200）
func (h *Responder) Comprehensive(ctx context.Context) (HealthReport, int) {
	statuses := Statuses(h.registry.RunAll(ctx))
	overall := Reduce(statuses)

	code := http.StatusOK
	if overall == OverallError {
		code = http.StatusServiceUnavailable
	}

	return HealthReport{
		Status:      overall,
		Service:     h.info.Service,
		Version:     h.info.Version,
		Timestamp:   now(),
		Environment: h.info.Environment,
		Uptime:      h.info.Uptime(),
		Checks:      statuses,
	}, code
}

// Readiness 就绪检查：只执行critical子集
// 降级仍视为就绪，只有归约结果为error才"not ready"
func (h *Responder) Readiness(ctx context.Context) ReadinessReport {
	results := h.registry.RunCritical(ctx)
	statuses := Statuses(results)

	status := readinessReady
	if Reduce(statuses) == OverallError {
		status = readinessNotReady
	}

	return ReadinessReport{
		Status:    status,
		Service:   h.info.Service,
		Timestamp: now(),
		Checks:    statuses,
	}
}

// Liveness 存活检查：不触碰注册表，能执行到这里即为alive
func (h *Responder) Liveness() LivenessReport {
	return LivenessReport{
		Status:    livenessAlive,
		Timestamp: now(),
		Uptime:    h.info.Uptime(),
	}
}

// now 统一时间戳格式（ISO-8601 / RFC3339，UTC）
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
