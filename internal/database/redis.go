package database

import (
	"context"
	"fmt"
	"time"

	"classroom-market/config"
	"classroom-market/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newRedisOptions(cfg *config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:        fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: cfg.DialTimeout,
	}
}

// InitRedis connects the client shared by carts, teacher sessions and the
// reconcile stream.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	opts := newRedisOptions(cfg)
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}

	logger.WithComponent("redis").Info("redis client ready",
		zap.String("addr", opts.Addr),
		zap.Int("db", opts.DB),
		zap.Int("pool_size", opts.PoolSize))
	return rdb, nil
}
