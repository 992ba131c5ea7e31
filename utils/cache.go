// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"timegrid/config"

	"github.com/go-redis/redis/v8"
)

// ProjectionCacheClient is the dedicated client for projection caching.
var ProjectionCacheClient *redis.Client

// InitProjectionCache initializes the Redis client used to cache timetable
// projections (using DB from AppConfig).
func InitProjectionCache() {
	ProjectionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisProjectionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ProjectionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Projection Cache): %v", err)
	}
}

// GetProjectionCacheClient returns the projection cache client.
func GetProjectionCacheClient() *redis.Client {
	if ProjectionCacheClient == nil {
		InitProjectionCache()
	}
	return ProjectionCacheClient
}
