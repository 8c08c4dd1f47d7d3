package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultInsightTTL = 24 * time.Hour

// InsightCache stores generated insights keyed by record content so repeated
// views do not re-invoke the external model.
type InsightCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInsightCache wraps the given Redis client. A non-positive ttl falls back
// to the default.
func NewInsightCache(client *redis.Client, ttl time.Duration) *InsightCache {
	if ttl <= 0 {
		ttl = defaultInsightTTL
	}
	return &InsightCache{client: client, ttl: ttl}
}

func (c *InsightCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("insight cache get: %w", err)
	}
	return value, true, nil
}

func (c *InsightCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}
