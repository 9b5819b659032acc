package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry 创建自定义 Prometheus Registry，并注册常用采集器
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler 返回 Prometheus 指标 HTTP 处理器
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// ServiceMetrics 服务自定义指标
type ServiceMetrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec   // labels: method, path, status
	HealthCheckDuration *prometheus.HistogramVec // labels: check
	HealthCheckStatus   *prometheus.GaugeVec     // labels: check; 0=ok 1=degraded 2=error
	PanicsRecovered     prometheus.Counter       // 请求处理中恢复的panic计数
	NotFoundTotal       prometheus.Counter       // 未匹配路由计数
	WebhooksReceived    *prometheus.CounterVec   // labels: source
}

// NewServiceMetrics 注册并返回服务指标
func NewServiceMetrics(reg *prometheus.Registry) *ServiceMetrics {
	m := &ServiceMetrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		HealthCheckDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "health_check_duration_seconds",
			Help:    "Health check execution time by check name.",
			Buckets: prometheus.DefBuckets,
		}, []string{"check"}),
		HealthCheckStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "health_check_status",
			Help: "Last observed check status severity (0=ok, 1=degraded, 2=error).",
		}, []string{"check"}),
		PanicsRecovered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "Panics recovered during request handling.",
		}),
		NotFoundTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "http_not_found_total",
			Help: "Requests that matched no route.",
		}),
		WebhooksReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "webhooks_received_total",
			Help: "Webhook deliveries accepted by source.",
		}, []string{"source"}),
	}
	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HealthCheckDuration,
		m.HealthCheckStatus,
		m.PanicsRecovered,
		m.NotFoundTotal,
		m.WebhooksReceived,
	)
	return m
}
