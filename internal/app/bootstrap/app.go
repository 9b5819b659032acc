package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taoyao-code/svc-health/internal/api"
	"github.com/taoyao-code/svc-health/internal/api/middleware"
	"github.com/taoyao-code/svc-health/internal/app"
	cfgpkg "github.com/taoyao-code/svc-health/internal/config"
	"github.com/taoyao-code/svc-health/internal/health"
	"github.com/taoyao-code/svc-health/internal/httpserver"
	"github.com/taoyao-code/svc-health/internal/metrics"
)

// Run 统一启动流程
// 配置在此读取一次后不再变化；依赖失败按启动错误直接返回
func Run(cfg *cfgpkg.Config, log *zap.Logger) error {
	info := health.NewServiceInfo(cfg.App.Name, cfg.App.Version, cfg.App.Env)
	log.Info("starting service",
		zap.String("service", info.Service),
		zap.String("version", info.Version),
		zap.String("env", info.Environment))

	// ========== 阶段1: 指标 ==========
	reg := metrics.NewRegistry()
	m := metrics.NewServiceMetrics(reg)

	// ========== 阶段2: 可选依赖（DB / Redis）==========
	dbpool, err := app.ConnectDB(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	if dbpool != nil {
		defer dbpool.Close()
	}

	redisClient, err := app.NewRedisClient(cfg.Redis, log)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	// ========== 阶段3: 健康检查注册表（配置错误在此暴露）==========
	healthReg, err := app.BuildHealthRegistry(cfg.Health, dbpool, redisClient, m, log)
	if err != nil {
		log.Error("health registry build failed", zap.Error(err))
		return err
	}
	responder := health.NewResponder(healthReg, info)

	// ========== 阶段4: HTTP服务与路由 ==========
	httpSrv := httpserver.New(cfg.HTTP, log, m)
	if cfg.Metrics.Enable {
		httpSrv.RegisterMetrics(cfg.Metrics.Path, metrics.Handler(reg))
	}
	httpSrv.Register(func(r *gin.Engine) {
		health.RegisterHTTPRoutes(r, responder)
		api.RegisterRoutes(r, info, middleware.RateLimitConfig{
			Enabled:        cfg.RateLimit.Enabled,
			RequestsPerSec: cfg.RateLimit.RequestsPerSec,
			Burst:          cfg.RateLimit.Burst,
		}, m, log)
	})

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.Start() }()
	log.Info("http server started", zap.String("addr", cfg.HTTP.Addr))

	// ========== 阶段5: 信号处理与优雅关闭 ==========
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("http server error", zap.Error(err))
		}
		return err
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error("http shutdown error", zap.Error(err))
		return err
	}

	log.Info("service stopped")
	return nil
}
