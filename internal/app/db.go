package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	cfgpkg "github.com/taoyao-code/svc-health/internal/config"
	pgstorage "github.com/taoyao-code/svc-health/internal/storage/pg"
)

// ConnectDB 建立数据库连接（未启用时返回nil）
func ConnectDB(ctx context.Context, cfg cfgpkg.DatabaseConfig, log *zap.Logger) (*pgxpool.Pool, error) {
	if !cfg.Enabled {
		log.Info("database is disabled, skipping initialization")
		return nil, nil
	}

	dbpool, err := pgstorage.NewPool(ctx, cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		log.Error("db connect error", zap.Error(err))
		return nil, err
	}

	log.Info("database ready",
		zap.Int32("max_conns", dbpool.Config().MaxConns))
	return dbpool, nil
}
