package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sangkips/restaurant-pos/internal/config"
	"github.com/sangkips/restaurant-pos/pkg/logger"
	"go.uber.org/zap"
)

// NewRedisClient connects to the local redis instance and verifies it answers
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig, log logger.ZapLogger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     4,
		MinIdleConns: 1,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr(), err)
	}
	log.Info("Redis connected", zap.String("addr", cfg.Addr()), zap.String("pong", pong))

	return rdb, nil
}
