package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
)

// NewRedis opens the redis client used as the district cache.
// Returns nil when redis is disabled; callers treat a nil client as a permanent cache miss.
// An unreachable redis is not fatal: lookups fall back to the database until it recovers.
func NewRedis(cfg *config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		slog.Info("redis 비활성화됨 - 행정 구역 좌표는 데이터베이스에서 조회합니다")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis 핑 실패 - 데이터베이스 조회로 대체됩니다", "addr", cfg.RedisAddr(), "error", err)
		return client
	}

	slog.Info("redis 연결 성공", "addr", cfg.RedisAddr(), "db", cfg.Redis.DB)
	return client
}
