package viewcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/feral-file/ff-crm/internal/adapter"
	"github.com/feral-file/ff-crm/internal/metrics"
)

const (
	defaultKeyPrefix = "crm:view"

	// generationTTLFactor keeps a route generation alive much longer than
	// the views stored under it, so a lapsed counter cannot resurrect a
	// hash written for an older generation.
	generationTTLFactor = 12
)

// Invalidator marks the cached views of routes as stale for one owner
//
//go:generate mockgen -source=cache.go -destination=../mocks/viewcache.go -package=mocks -mock_names=Invalidator=MockInvalidator,Cache=MockViewCache
type Invalidator interface {
	Invalidate(ctx context.Context, ownerID string, routes ...string) error
}

// Lookup is the result of reading a cached view. Generation identifies the
// state of the route when it was read and must be passed back to Set.
type Lookup struct {
	Data       []byte
	Found      bool
	Generation int64
}

// Cache stores rendered views per owner and route. A route holds several
// variants, such as different query strings, which are purged together.
type Cache interface {
	Invalidator

	// Get returns the cached view of a variant along with the route generation
	Get(ctx context.Context, ownerID, route, variant string) (Lookup, error)
	// Set stores a view rendered after a Get that observed generation.
	// A view rendered before the latest invalidation is never served.
	Set(ctx context.Context, ownerID, route, variant string, generation int64, data []byte) error
}

type redisCache struct {
	client  adapter.RedisClient
	ttl     time.Duration
	prefix  string
	metrics *metrics.Metrics
}

// NewRedisCache creates a view cache backed by one Redis hash per owner, route
// and generation. Invalidation bumps the generation counter of the route.
func NewRedisCache(client adapter.RedisClient, ttl time.Duration, m *metrics.Metrics) Cache {
	return &redisCache{
		client:  client,
		ttl:     ttl,
		prefix:  defaultKeyPrefix,
		metrics: m,
	}
}

func (c *redisCache) generationKey(ownerID, route string) string {
	return fmt.Sprintf("%s:%s:%s:gen", c.prefix, ownerID, route)
}

func (c *redisCache) viewKey(ownerID, route string, generation int64) string {
	return fmt.Sprintf("%s:%s:%s:g%d", c.prefix, ownerID, route, generation)
}

func (c *redisCache) generation(ctx context.Context, ownerID, route string) (int64, error) {
	gen, err := c.client.Get(ctx, c.generationKey(ownerID, route)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return gen, nil
}

func (c *redisCache) Get(ctx context.Context, ownerID, route, variant string) (Lookup, error) {
	gen, err := c.generation(ctx, ownerID, route)
	if err != nil {
		c.metrics.IncrementViewCacheLookup("error")
		return Lookup{}, fmt.Errorf("failed to read view generation: %w", err)
	}

	data, err := c.client.HGet(ctx, c.viewKey(ownerID, route, gen), variant).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.metrics.IncrementViewCacheLookup("miss")
			return Lookup{Generation: gen}, nil
		}
		c.metrics.IncrementViewCacheLookup("error")
		return Lookup{}, fmt.Errorf("failed to read cached view: %w", err)
	}

	c.metrics.IncrementViewCacheLookup("hit")
	return Lookup{Data: data, Found: true, Generation: gen}, nil
}

func (c *redisCache) Set(ctx context.Context, ownerID, route, variant string, generation int64, data []byte) error {
	// A stale generation writes into a hash no reader looks up anymore
	key := c.viewKey(ownerID, route, generation)
	if err := c.client.HSet(ctx, key, variant, data).Err(); err != nil {
		return fmt.Errorf("failed to cache view: %w", err)
	}
	if c.ttl > 0 {
		if err := c.client.Expire(ctx, key, c.ttl).Err(); err != nil {
			return fmt.Errorf("failed to set view expiry: %w", err)
		}
	}
	return nil
}

func (c *redisCache) Invalidate(ctx context.Context, ownerID string, routes ...string) error {
	if len(routes) == 0 {
		return nil
	}

	stale := make([]string, 0, len(routes)*2)
	for _, route := range routes {
		genKey := c.generationKey(ownerID, route)
		gen, err := c.client.Incr(ctx, genKey).Result()
		if err != nil {
			return fmt.Errorf("failed to invalidate views: %w", err)
		}
		if c.ttl > 0 {
			if err := c.client.Expire(ctx, genKey, c.ttl*generationTTLFactor).Err(); err != nil {
				return fmt.Errorf("failed to set generation expiry: %w", err)
			}
		}
		stale = append(stale, c.viewKey(ownerID, route, gen-1), c.viewKey(ownerID, route, gen))
	}

	if err := c.client.Del(ctx, stale...).Err(); err != nil {
		return fmt.Errorf("failed to purge stale views: %w", err)
	}
	return nil
}

type nopCache struct{}

// NewNopCache creates a cache that never stores anything
func NewNopCache() Cache {
	return nopCache{}
}

func (nopCache) Get(context.Context, string, string, string) (Lookup, error) {
	return Lookup{}, nil
}

func (nopCache) Set(context.Context, string, string, string, int64, []byte) error {
	return nil
}

func (nopCache) Invalidate(context.Context, string, ...string) error {
	return nil
}
