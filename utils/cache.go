// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"fittribe/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (trainer roster, specialties).
	CacheClient *redis.Client
	// DraftCacheClient is the dedicated client for booking draft storage.
	DraftCacheClient *redis.Client
	// ReminderQueueClient points at the reminder queue's Redis DB. asynq
	// manages its own connections; this client exists for health probing.
	ReminderQueueClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitDraftCache initializes the Redis client for booking draft storage.
func InitDraftCache() {
	DraftCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDraftDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := DraftCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Draft Cache): %v", err)
	}
}

// GetDraftCacheClient returns the Redis client for booking draft storage.
func GetDraftCacheClient() *redis.Client {
	if DraftCacheClient == nil {
		InitDraftCache()
	}
	return DraftCacheClient
}

// InitReminderQueue initializes the Redis client for the reminder queue DB.
func InitReminderQueue() {
	ReminderQueueClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ReminderQueueClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Reminder Queue): %v", err)
	}
}

// GetReminderQueueClient returns the Redis client for the reminder queue DB.
func GetReminderQueueClient() *redis.Client {
	if ReminderQueueClient == nil {
		InitReminderQueue()
	}
	return ReminderQueueClient
}

// InitRedis initializes all Redis clients eagerly at startup.
func InitRedis() {
	InitCache()
	InitDraftCache()
	InitReminderQueue()
}
