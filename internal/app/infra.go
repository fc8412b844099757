package app

import (
	"context"
	"database/sql"

	"github.com/Lee0514/travel-app-backend/internal/config"
	"github.com/Lee0514/travel-app-backend/internal/db"
	"github.com/Lee0514/travel-app-backend/internal/logger"
	"github.com/Lee0514/travel-app-backend/internal/redis"

	_ "github.com/lib/pq"
)

type Infra struct {
	DB    *db.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	infra := &Infra{DB: &db.DB{DB: sqlDB}}

	// redis only backs the translation cache; run without it when unset
	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		infra.Redis = redisClient
		logger.Info("redis ready", nil)
	} else {
		logger.Warn("redis not configured, translation cache disabled", nil)
	}

	return infra, nil
}
