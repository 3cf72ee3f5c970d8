// File: utils/cache.go
package utils

import (
	"context"
	"fmt"

	"puresakura/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the Redis client shared by every instance behind the
// load balancer. It stays nil when REDIS_ADDR is empty.
var CacheClient *redis.Client

// InitCache connects to Redis when REDIS_ADDR is set. A failed ping is
// returned so the caller can fall back to per-process state.
func InitCache() error {
	if config.AppConfig.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRateLimitDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), CachePingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to redis at %s: %w", config.AppConfig.RedisAddr, err)
	}
	CacheClient = client
	return nil
}

// GetCacheClient returns the shared client, or nil when Redis is not in use.
func GetCacheClient() *redis.Client {
	return CacheClient
}
