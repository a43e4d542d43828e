package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	listKeyPrefix       = "records:list:"
	generationKeyPrefix = "records:gen:"

	redisOpTimeout = 2 * time.Second
)

// ListCache is a read-through cache of serialized record lists, keyed by
// resource name. Every list is stored under the resource's current
// generation; Invalidate bumps the generation, so a list read from the store
// before a concurrent create can never be served after it.
//
// Reads and stores fail open: cache errors are logged and reported as misses.
// Invalidate reports its error, since a failed invalidation leaves the cached
// list stale.
type ListCache interface {
	Lookup(ctx context.Context, resource string) (payload []byte, generation int64, hit bool)
	Store(ctx context.Context, resource string, generation int64, payload []byte)
	Invalidate(ctx context.Context, resource string) error
}

type redisListCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewRedisListCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) ListCache {
	return &redisListCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *redisListCache) Lookup(ctx context.Context, resource string) ([]byte, int64, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	generation, err := c.client.Get(ctx, generationKeyPrefix+resource).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.log.Warnf("Failed to read list generation for %s: %+v", resource, err)
		return nil, -1, false
	}

	payload, err := c.client.Get(ctx, listKey(resource, generation)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read cached list for %s: %+v", resource, err)
		}
		return nil, generation, false
	}

	c.log.Debugf("List cache hit for %s (generation %d)", resource, generation)
	return payload, generation, true
}

func (c *redisListCache) Store(ctx context.Context, resource string, generation int64, payload []byte) {
	if generation < 0 {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := c.client.Set(ctx, listKey(resource, generation), payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to cache list for %s: %+v", resource, err)
	}
}

// Invalidate bumps the resource generation. If that fails it still tries to
// drop the list cached under the current generation, and reports the failure
// so the caller stops trusting the cache.
func (c *redisListCache) Invalidate(ctx context.Context, resource string) error {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	err := c.client.Incr(ctx, generationKeyPrefix+resource).Err()
	if err == nil {
		return nil
	}
	c.log.Warnf("Failed to invalidate cached list for %s: %+v", resource, err)

	generation, getErr := c.client.Get(ctx, generationKeyPrefix+resource).Int64()
	if getErr == nil || errors.Is(getErr, redis.Nil) {
		if delErr := c.client.Del(ctx, listKey(resource, generation)).Err(); delErr != nil {
			c.log.Warnf("Failed to drop cached list for %s: %+v", resource, delErr)
		}
	}
	return fmt.Errorf("invalidate %s list: %w", resource, err)
}

func listKey(resource string, generation int64) string {
	return fmt.Sprintf("%s%s:%d", listKeyPrefix, resource, generation)
}

type noopListCache struct{}

// NewNoopListCache returns a ListCache that never hits.
func NewNoopListCache() ListCache {
	return noopListCache{}
}

func (noopListCache) Lookup(context.Context, string) ([]byte, int64, bool) { return nil, -1, false }
func (noopListCache) Store(context.Context, string, int64, []byte)         {}
func (noopListCache) Invalidate(context.Context, string) error             { return nil }
