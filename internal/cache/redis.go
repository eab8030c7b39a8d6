package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/actuallystonmai/stream-aggregator/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL = 5 * time.Minute
	keyPrefix  = "search:"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// BuildKey returns the cache key for q. Requests that the engine treats the
// same map to the same key. limit must already be clamped.
func BuildKey(q domain.SearchQuery, limit int) string {
	platforms := make([]string, 0, len(q.Platforms))
	seen := make(map[string]bool)
	for _, p := range q.Platforms {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	v := url.Values{}
	v.Set("q", strings.ToLower(strings.TrimSpace(q.Query)))
	v["p"] = platforms
	v.Set("g", strings.ToLower(strings.TrimSpace(q.Genre)))
	v.Set("t", strings.TrimSpace(q.Type))
	v.Set("l", strconv.Itoa(limit))
	// Encode escapes every value, so no user text can forge a separator
	return keyPrefix + v.Encode()
}

// Get search result from cache
func (c *Cache) Get(ctx context.Context, q domain.SearchQuery, limit int) (*domain.SearchResult, bool, error) {
	key := BuildKey(q, limit)
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get search result from cache: %w", err)
	}

	var res domain.SearchResult
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal search result %s: %w", key, err)
	}
	return &res, true, nil
}

// Store search result in cache
func (c *Cache) Set(ctx context.Context, q domain.SearchQuery, limit int, res *domain.SearchResult) error {
	key := BuildKey(q, limit)
	val, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal search result: %w", err)
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set search result in cache: %w", err)
	}
	return nil
}

// Flush drops every cached search result, used after the catalog is reseeded
func (c *Cache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
