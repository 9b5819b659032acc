package main

import (
	"os"

	"github.com/taoyao-code/svc-health/internal/app/bootstrap"
	cfgpkg "github.com/taoyao-code/svc-health/internal/config"
	"github.com/taoyao-code/svc-health/internal/logging"

	"go.uber.org/zap"
)

func main() {
	// 1) 加载配置
	cfg, err := cfgpkg.Load("")
	if err != nil {
		panic(err)
	}

	// 2) 初始化日志
	logger, err := logging.InitLogger(cfg.Logging)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	// 3) 启动服务（阻塞至退出信号）
	if err := bootstrap.Run(cfg, zap.L()); err != nil {
		os.Exit(1)
	}
}
