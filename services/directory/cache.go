package directory

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"careindex/models"

	"github.com/go-redis/redis/v8"
)

// SearchCache stores rendered search pages keyed by a digest of the
// normalized filter.
type SearchCache interface {
	Get(ctx context.Context, key string) (*models.ProviderPage, error)
	Set(ctx context.Context, key string, page *models.ProviderPage) error
}

const searchCacheKeyPrefix = "directory:search:"

// searchCacheKey derives a stable key from the normalized filter.
func searchCacheKey(filter models.ProviderFilter) string {
	data, err := json.Marshal(filter)
	if err != nil {
		return searchCacheKeyPrefix + "invalid"
	}
	sum := sha256.Sum256(data)
	return searchCacheKeyPrefix + hex.EncodeToString(sum[:])
}

// RedisSearchCache is the Redis-backed SearchCache.
type RedisSearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSearchCache(client *redis.Client, ttl time.Duration) *RedisSearchCache {
	return &RedisSearchCache{client: client, ttl: ttl}
}

func (c *RedisSearchCache) Get(ctx context.Context, key string) (*models.ProviderPage, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var page models.ProviderPage
	if err := json.Unmarshal([]byte(val), &page); err != nil {
		return nil, fmt.Errorf("corrupt search cache entry: %w", err)
	}
	return &page, nil
}

func (c *RedisSearchCache) Set(ctx context.Context, key string, page *models.ProviderPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}
