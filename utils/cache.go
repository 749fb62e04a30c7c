// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"arakucamp/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient holds booking drafts and confirmation records for the
// wizard. Queue traffic (asynq) uses a separate DB configured on the worker.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client backing wizard sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
