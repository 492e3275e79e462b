package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"

	"github.com/harsoyo/notaris-web/internal/pkg/env"
)

var client *redis.Client

// Enabled reports whether a Redis/Dragonfly host is configured. Without one the
// app keeps sessions in process memory.
func Enabled() bool {
	return env.GetEnv("CACHE_HOST", "") != ""
}

// SetupCache initializes the connection to the Redis-compatible cache server
func SetupCache() {
	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0, // use default DB
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	pong, err := client.Ping(ctx).Result()
	if err != nil {
		log.Warnf("[Cache] Could not connect to cache: %v", err)
	} else {
		log.Infof("[Cache] Successfully connected to cache: %s", pong)
	}
}

// GetClient returns the Redis client instance, or nil when no cache is configured
func GetClient() *redis.Client {
	if client == nil && Enabled() {
		SetupCache()
	}
	return client
}

// Ping checks the cache. A missing cache is not an error.
func Ping(ctx context.Context) error {
	c := GetClient()
	if c == nil {
		return nil
	}
	return c.Ping(ctx).Err()
}
