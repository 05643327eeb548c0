// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"sync"
	"time"

	"brightsmile/config"

	"github.com/go-redis/redis/v8"
)

var (
	rateLimitClient *redis.Client
	rateLimitOnce   sync.Once
)

// GetRateLimitClient returns the shared Redis client used by the rate
// limiter, building it on first use. Returns nil when REDIS_ADDR is not
// configured; callers fall back to the in-memory limiter.
func GetRateLimitClient() *redis.Client {
	rateLimitOnce.Do(func() {
		if config.AppConfig.RedisAddr == "" {
			return
		}
		client := redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if _, err := client.Ping(ctx).Result(); err != nil {
			log.Printf("Failed to connect to Redis, rate limiter falls back to in-memory: %v", err)
			return
		}
		rateLimitClient = client
	})
	return rateLimitClient
}
