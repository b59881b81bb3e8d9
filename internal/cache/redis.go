// Package cache provides a tiny Redis client wrapper for caching moderation
// verdicts keyed by the SHA-256 of the input content.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client for verdict storage. A nil *Cache is a valid
// no-op cache, so callers never branch on whether caching is configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Cache connected to the specified Redis address. Entries
// expire after ttl.
func New(addr string, ttl time.Duration) (*Cache, error) {
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

// Key builds the verdict cache key for one modality and content hash.
func Key(modality, sha256 string) string {
	return fmt.Sprintf("nsfw:%s:%s", modality, sha256)
}

// GetVerdict loads a cached verdict into out. The second return is false on a
// miss; out is untouched in that case.
func (c *Cache) GetVerdict(ctx context.Context, key string, out interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached verdict %s: %w", key, err)
	}
	return true, nil
}

// SetVerdict stores a verdict with the configured TTL.
func (c *Cache) SetVerdict(ctx context.Context, key string, verdict interface{}) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(verdict)
	if err != nil {
		return fmt.Errorf("failed to marshal verdict %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}
