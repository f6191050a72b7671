package config

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var cacheClient *redis.Client

const cacheTTL = 30 * time.Minute

// InitCache wires the entity cache. The cache is optional: when REDIS_ADDR
// is unset every cache call is a no-op and reads fall through to the store.
func InitCache() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, cache disabled")
		return
	}
	cacheClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := cacheClient.Ping(context.Background()).Err(); err != nil {
		log.Println("Redis unreachable, cache disabled:", err)
		cacheClient = nil
	}
}

func SetCache(ctx context.Context, key string, value interface{}) error {
	if cacheClient == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cacheClient.Set(ctx, key, payload, cacheTTL).Err()
}

// GetCache reports whether the key was present and, if so, unmarshals the
// cached document into dest.
func GetCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	if cacheClient == nil {
		return false, nil
	}
	payload, err := cacheClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(payload, dest)
}

func DeleteCache(ctx context.Context, key string) error {
	if cacheClient == nil {
		return nil
	}
	return cacheClient.Del(ctx, key).Err()
}
