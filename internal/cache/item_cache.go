package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/bardleycoopster/todos/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyItems = "items:list:"

// ItemCache caches the ordered items of a list in Redis. Entries are
// invalidated on every mutation of the list, TTL is the safety net.
type ItemCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewItemCache returns a new ItemCache.
func NewItemCache(rdb *redis.Client, ttl time.Duration) *ItemCache {
	return &ItemCache{rdb: rdb, ttl: ttl}
}

func itemsKey(listID int64) string {
	return keyItems + strconv.FormatInt(listID, 10)
}

// GetItems returns the cached ordered items or nil if miss.
func (c *ItemCache) GetItems(ctx context.Context, listID int64) ([]dom.ListItem, error) {
	b, err := c.rdb.Get(ctx, itemsKey(listID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []dom.ListItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetItems stores the ordered items of a list.
func (c *ItemCache) SetItems(ctx context.Context, listID int64, items []dom.ListItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, itemsKey(listID), b, c.ttl).Err()
}

// Invalidate drops the cached items of a list (cache invalidation on write).
func (c *ItemCache) Invalidate(ctx context.Context, listID int64) error {
	return c.rdb.Del(ctx, itemsKey(listID)).Err()
}
