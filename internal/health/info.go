package health

import "time"

// ServiceInfo 进程级服务信息
// 启动时构造一次，之后只读；显式注入Responder与各Handler，避免包级可变状态
type ServiceInfo struct {
	Service     string
	Version     string
	Environment string
	StartTime   time.Time
}

// NewServiceInfo 创建服务信息
func NewServiceInfo(service, version, environment string) ServiceInfo {
	return ServiceInfo{
		Service:     service,
		Version:     version,
		Environment: environment,
		StartTime:   time.Now(),
	}
}

// Uptime 进程运行时长（秒）
func (i ServiceInfo) Uptime() float64 {
	return time.Since(i.StartTime).Seconds()
}
