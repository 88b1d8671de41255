package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Origin identifies where a loaded value came from
type Origin string

const (
	// OriginCache means the value was served from a live cache entry
	OriginCache Origin = "cache"
	// OriginSource means the value was produced by the upstream source
	OriginSource Origin = "source"
)

// ProduceFunc computes a value from the slow upstream source. It is invoked
// only on a cache miss and may block; its latency and failure modes are
// opaque to the cache.
type ProduceFunc func(ctx context.Context) (interface{}, error)

// Loader implements the cache-aside read path with stampede suppression.
//
// Policy: concurrent misses on the same key are deduplicated. The first
// caller runs the producer; everyone who misses while that call is in
// flight waits for it and shares its result, so exactly one upstream
// production happens per miss window. Every member of the flight reports
// OriginSource, including the waiters.
//
// The cache lock is never held across the producer call; only the map
// accesses themselves are critical sections.
type Loader struct {
	cache *Cache
	group singleflight.Group
}

// NewLoader creates a Loader over the given cache
func NewLoader(c *Cache) *Loader {
	return &Loader{cache: c}
}

// GetOrLoad returns the value for key from the cache, or produces and
// caches it with the given TTL on a miss.
//
// A producer failure is propagated to the caller unchanged and nothing is
// cached; the failed flight is not remembered beyond the callers already
// waiting on it. The context of the caller that starts the flight is the
// one the producer sees.
func (l *Loader) GetOrLoad(ctx context.Context, key string, ttl time.Duration, produce ProduceFunc) (interface{}, Origin, error) {
	if v, ok := l.cache.Get(key); ok {
		return v, OriginCache, nil
	}

	v, err, _ := l.group.Do(key, func() (interface{}, error) {
		// A flight that finished between our Get and Do may already have
		// populated the key; don't hit the upstream again in that case.
		if v, ok := l.cache.Get(key); ok {
			return v, nil
		}

		v, err := produce(ctx)
		if err != nil {
			return nil, err
		}

		l.cache.Set(key, v, ttl)
		return v, nil
	})
	if err != nil {
		return nil, "", err
	}

	return v, OriginSource, nil
}
