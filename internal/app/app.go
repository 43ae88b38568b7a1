package app

import (
	"context"
	"os"

	"go-timeclock/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func BuildApp(ctx context.Context, router *gin.Engine) error {
	logger := zap.L().Named("app")

	// 1. Infrastructure
	db, err := connection.ConnectGORMWithRetry(5)
	if err != nil {
		return err
	}
	logger.Info("database connection established",
		zap.String("driver", connection.ActiveDriver()),
	)

	if err := autoMigrate(db); err != nil {
		return err
	}
	if err := seedUsers(db, logger); err != nil {
		return err
	}

	// Redis is optional; without it the settings cache hits the DB directly.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		logger.Info("redis connection established", zap.String("addr", addr))
	}

	// 2. Modules & Routes
	return registerModules(ctx, router, db, rdb)
}
