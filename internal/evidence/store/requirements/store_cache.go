package requirements

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"crime-evidence/internal/evidence/metrics"
)

// CachedStore fronts another Store with a Redis TTL cache. The underlying
// tables are reference data that changes rarely, so cached brackets and
// item lists tolerate a generous TTL. Cache failures degrade to the backing
// store rather than failing the lookup.
type CachedStore struct {
	next    Store
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewCached wraps next with a Redis cache.
func NewCached(next Store, client *redis.Client, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics) (*CachedStore, error) {
	if next == nil {
		return nil, fmt.Errorf("backing store is required")
	}
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &CachedStore{next: next, client: client, ttl: ttl, logger: logger, metrics: m}, nil
}

func (c *CachedStore) Find(ctx context.Context, key Key) (*Requirement, error) {
	cacheKey, err := c.findKey(key)
	if err == nil {
		if cached, hit := c.get(ctx, cacheKey); hit {
			var req Requirement
			if json.Unmarshal(cached, &req) == nil {
				return &req, nil
			}
		}
	}

	req, err := c.next.Find(ctx, key)
	if err != nil {
		return nil, err
	}
	c.put(ctx, cacheKey, req)
	return req, nil
}

func (c *CachedStore) RequiredItems(ctx context.Context, requirementID int) ([]RequiredItem, error) {
	cacheKey := fmt.Sprintf("crime-evidence:required-items:%d", requirementID)
	if cached, hit := c.get(ctx, cacheKey); hit {
		var items []RequiredItem
		if json.Unmarshal(cached, &items) == nil {
			return items, nil
		}
	}

	items, err := c.next.RequiredItems(ctx, requirementID)
	if err != nil {
		return nil, err
	}
	c.put(ctx, cacheKey, items)
	return items, nil
}

func (c *CachedStore) findKey(key Key) (string, error) {
	encoded, err := json.Marshal(key)
	if err != nil {
		return "", err
	}
	return "crime-evidence:requirement:" + string(encoded), nil
}

func (c *CachedStore) get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) && c.logger != nil {
			c.logger.WarnContext(ctx, "requirement cache read failed", "error", err.Error())
		}
		if c.metrics != nil {
			c.metrics.RequirementCacheMiss.Inc()
		}
		return nil, false
	}
	if c.metrics != nil {
		c.metrics.RequirementCacheHits.Inc()
	}
	return val, true
}

func (c *CachedStore) put(ctx context.Context, key string, value any) {
	if key == "" {
		return
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.WarnContext(ctx, "requirement cache write failed", "error", err.Error())
	}
}
