package httpserver

import (
	"context"
	"errors"
	"net/http"
	netpprof "net/http/pprof"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taoyao-code/svc-health/internal/api/middleware"
	cfgpkg "github.com/taoyao-code/svc-health/internal/config"
	"github.com/taoyao-code/svc-health/internal/metrics"
)

// Server HTTP 服务封装
type Server struct {
	engine *gin.Engine
	srv    *http.Server
}

// New 创建并配置 Gin + HTTP Server
// 中间件顺序：RequestID → Metrics → ErrorHandler；
// ErrorHandler必须位于业务处理之前注册，才能兜底整条请求管线
func New(cfg cfgpkg.HTTPConfig, logger *zap.Logger, m *metrics.ServiceMetrics) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.RequestID())
	if m != nil {
		r.Use(middleware.Metrics(m))
	}
	r.Use(middleware.ErrorHandler(logger, m))
	r.NoRoute(middleware.NoRoute(m))

	if cfg.Pprof.Enable {
		registerPprof(r, cfg.Pprof.Prefix)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return &Server{engine: r, srv: srv}
}

// Register 追加路由注册
func (s *Server) Register(fn func(r *gin.Engine)) {
	fn(s.engine)
}

// RegisterMetrics 暴露Prometheus指标端点
func (s *Server) RegisterMetrics(path string, handler http.Handler) {
	if path == "" {
		path = "/metrics"
	}
	if handler != nil {
		s.engine.GET(path, gin.WrapH(handler))
	}
}

// Start 启动 HTTP 服务（阻塞）
// 正常关闭返回nil，调用方无需区分ErrServerClosed
func (s *Server) Start() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown 优雅关闭：停止接收新请求，等待在途请求完成
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// registerPprof 按配置暴露pprof端点
func registerPprof(r *gin.Engine, prefix string) {
	if prefix == "" {
		prefix = "/debug/pprof"
	}
	g := r.Group(prefix)
	g.GET("/", gin.WrapF(netpprof.Index))
	g.GET("/cmdline", gin.WrapF(netpprof.Cmdline))
	g.GET("/profile", gin.WrapF(netpprof.Profile))
	g.GET("/symbol", gin.WrapF(netpprof.Symbol))
	g.GET("/trace", gin.WrapF(netpprof.Trace))
	for _, name := range []string{"heap", "goroutine", "allocs", "block", "mutex", "threadcreate"} {
		g.GET("/"+name, gin.WrapH(netpprof.Handler(name)))
	}
}
