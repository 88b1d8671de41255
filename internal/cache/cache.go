package cache

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cachefront/backend/internal/logger"
)

// entry is a stored value with an optional absolute expiry instant.
// hasExpiry=false means "never expires".
type entry struct {
	value     interface{}
	expiresAt time.Time
	hasExpiry bool
}

// expired reports whether the entry is logically absent at the given
// instant. The check is strictly after: an entry is valid through its
// exact expiry instant and invalid immediately after.
func (e entry) expired(now time.Time) bool {
	return e.hasExpiry && now.After(e.expiresAt)
}

// Cache is a concurrency-safe in-memory key/value cache with per-entry TTL.
//
// The cache is an explicitly constructed and owned object: it is created
// once at startup and handed to the request-handling code, never accessed
// as a package-level global.
type Cache struct {
	mu     sync.RWMutex
	items  map[string]entry
	clock  clock.Clock
	logger logger.Logger
}

// New creates an empty cache using the given clock for expiry decisions
func New(clk clock.Clock, log logger.Logger) *Cache {
	return &Cache{
		items:  make(map[string]entry),
		clock:  clk,
		logger: log,
	}
}

// Set stores a value under key with the given TTL, replacing any previous
// entry for that key. The expiry instant is computed at call time.
//
// A zero or negative TTL stores an entry that is already expired, so the
// very next Get misses and reaps it. That is a valid degenerate state for
// callers, not an error.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	now := c.clock.Now()
	expiresAt := now.Add(ttl)
	if ttl <= 0 {
		// The expiry check is strictly after, so back off one tick to
		// make the entry stale even at this exact instant.
		expiresAt = now.Add(ttl - time.Nanosecond)
	}

	c.mu.Lock()
	c.items[key] = entry{value: value, expiresAt: expiresAt, hasExpiry: true}
	c.mu.Unlock()
}

// SetForever stores a value under key with no expiry, replacing any
// previous entry for that key.
func (c *Cache) SetForever(key string, value interface{}) {
	c.mu.Lock()
	c.items[key] = entry{value: value}
	c.mu.Unlock()
}

// Get returns the value stored under key if a live entry exists. A miss is
// reported as ok=false, never as an error.
//
// Get is a read-with-maybe-write operation: finding an expired entry
// lazily deletes it. Repeated Gets of an expired key are idempotent.
func (c *Cache) Get(key string) (interface{}, bool) {
	now := c.clock.Now()

	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if !e.expired(now) {
		return e.value, true
	}

	// Stale hit: reap under the write lock. Re-check first, a concurrent
	// Set may have replaced the entry with a live one in the meantime.
	c.mu.Lock()
	if cur, ok := c.items[key]; ok && cur.expired(now) {
		delete(c.items, key)
		c.logger.LogDebug("Expired cache entry removed", map[string]interface{}{
			"key": key,
		})
	}
	c.mu.Unlock()

	return nil, false
}

// Delete removes the entry for key if one exists. Deleting an absent key
// is a no-op.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Clear removes all entries unconditionally
func (c *Cache) Clear() {
	c.mu.Lock()
	removed := len(c.items)
	c.items = make(map[string]entry)
	c.mu.Unlock()

	c.logger.LogInfo("Cache cleared", map[string]interface{}{
		"entries_removed": removed,
	})
}

// Len returns the number of physically stored entries. The count may
// include expired entries that no Get has reaped yet.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
