// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"shareit/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitCache initializes the generic Redis cache client. A failed ping leaves the
// client nil so callers fall back to the database.
func InitCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: failed to connect to Redis (Cache): %v. Running without cache.", err)
		_ = client.Close()
		return
	}
	CacheClient = client
}

// GetCacheClient returns the generic cache client, or nil if Redis is unreachable.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
