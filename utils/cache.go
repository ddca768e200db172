package utils

import (
	"context"
	"fmt"
	"time"

	"urbanfix/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces auth session keys in Redis.
const AuthCachePrefix = "auth:"

// NewAuthCache constructs the Redis client used for auth session caching.
// The client is passed to whoever needs it; there is no ambient global.
func NewAuthCache(cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (auth cache): %w", err)
	}
	return client, nil
}
