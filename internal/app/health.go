package app

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	cfgpkg "github.com/taoyao-code/svc-health/internal/config"
	"github.com/taoyao-code/svc-health/internal/health"
	"github.com/taoyao-code/svc-health/internal/metrics"
	redisstorage "github.com/taoyao-code/svc-health/internal/storage/redis"
)

// BuildHealthRegistry 按配置组装健康检查注册表
// 检查集合完全由配置驱动：未启用的依赖显式注册为not_configured，
// 重名等配置错误在这里（启动阶段）暴露
func BuildHealthRegistry(
	cfg cfgpkg.HealthConfig,
	dbpool *pgxpool.Pool,
	redisClient *redisstorage.Client,
	m *metrics.ServiceMetrics,
	log *zap.Logger,
) (*health.Registry, error) {
	reg := health.NewRegistry()

	if dbpool != nil {
		if err := reg.Register(health.NewDatabaseChecker(dbpool), cfg.CheckTimeout, true); err != nil {
			return nil, err
		}
	} else {
		if err := reg.Register(health.NewNotConfiguredChecker("database"), cfg.CheckTimeout, false); err != nil {
			return nil, err
		}
	}

	if redisClient != nil {
		if err := reg.Register(health.NewRedisChecker(redisClient), cfg.CheckTimeout, true); err != nil {
			return nil, err
		}
	} else {
		if err := reg.Register(health.NewNotConfiguredChecker("redis"), cfg.CheckTimeout, false); err != nil {
			return nil, err
		}
	}

	for _, ep := range cfg.Endpoints {
		timeout := ep.Timeout
		if timeout <= 0 {
			timeout = cfg.CheckTimeout
		}
		if err := reg.Register(health.NewHTTPChecker(ep.Name, ep.URL), timeout, ep.Critical); err != nil {
			return nil, fmt.Errorf("register endpoint check %q: %w", ep.Name, err)
		}
	}

	// 单项结果进日志与指标，wire报告只带状态
	reg.SetObserver(func(name string, result health.CheckResult) {
		if m != nil {
			m.HealthCheckDuration.WithLabelValues(name).Observe(result.Latency.Seconds())
			m.HealthCheckStatus.WithLabelValues(name).Set(statusSeverity(result.Status))
		}
		if result.Status == health.StatusError {
			log.Warn("health check failed",
				zap.String("check", name),
				zap.String("message", result.Message),
				zap.Duration("latency", result.Latency))
		}
	})

	log.Info("health registry initialized", zap.Strings("checks", reg.Names()))
	return reg, nil
}

// statusSeverity 状态严重度（指标用）：0=ok 1=degraded 2=error
func statusSeverity(s health.CheckStatus) float64 {
	switch s {
	case health.StatusError:
		return 2
	case health.StatusDegraded, health.StatusWarning, health.StatusNotReady:
		return 1
	default:
		return 0
	}
}
