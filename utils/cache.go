package utils

import (
	"context"
	"time"

	"lstours/config"

	"github.com/go-redis/redis/v8"
)

// ViewCacheClient memoizes filtered catalog views. It stays nil when no
// Redis address is configured; callers must treat a nil client as a miss.
var ViewCacheClient *redis.Client

// InitViewCache connects the catalog view cache. The cache is optional:
// when REDIS_ADDR is empty, or the ping fails, the service computes every
// view in-process and logs a single notice.
func InitViewCache() error {
	if config.AppConfig.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return err
	}
	ViewCacheClient = client
	return nil
}

// GetViewCacheClient returns the view cache client, which may be nil.
func GetViewCacheClient() *redis.Client {
	return ViewCacheClient
}
