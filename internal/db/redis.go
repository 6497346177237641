package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"nova-ads/internal/config/configs"
)

// NewRedisClient creates a Redis client from configuration and verifies
// connectivity by pinging with a 5 second timeout. The caller must close
// the returned client when it is no longer needed.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}
