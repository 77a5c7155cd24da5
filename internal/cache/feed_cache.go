package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/Akanksha212004/twiller-2.0/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyFeed = "tweets:feed"

// FeedCache caches the global tweet feed in Redis.
type FeedCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewFeedCache returns a new FeedCache.
func NewFeedCache(rdb *redis.Client, ttl time.Duration) *FeedCache {
	return &FeedCache{rdb: rdb, ttl: ttl}
}

// GetFeed returns the cached feed or nil if miss.
func (c *FeedCache) GetFeed(ctx context.Context) ([]dom.Tweet, error) {
	b, err := c.rdb.Get(ctx, keyFeed).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Tweet
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetFeed stores the feed in cache.
func (c *FeedCache) SetFeed(ctx context.Context, list []dom.Tweet) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyFeed, b, c.ttl).Err()
}

// Invalidate removes the cached feed (cache invalidation on post).
func (c *FeedCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyFeed).Err()
}
