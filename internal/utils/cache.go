package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // Building paginated cache keys
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes a key from Redis
func DeleteCache(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err() // Delete key from Redis
}

// WallpaperListKey builds the cache key for one page of the public listing
func WallpaperListKey(skip, limit int64) string {
	return "wallpapers:skip:" + strconv.FormatInt(skip, 10) + ":limit:" + strconv.FormatInt(limit, 10)
}

// InvalidateWallpaperLists drops the cached first pages of the public
// listing after a mutation (simple version: default page size, first 5 pages)
func InvalidateWallpaperLists(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return // Caching disabled
	}
	// Delete cache entries for the default page size
	for page := 0; page < 5; page++ {
		_ = DeleteCache(ctx, rdb, WallpaperListKey(int64(page)*DefaultPageLimit, DefaultPageLimit))
	}
}

// DefaultPageLimit is the page size used when the client does not send one
const DefaultPageLimit int64 = 50
