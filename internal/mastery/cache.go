package mastery

import (
	"sync"
	"time"
)

// DefaultCacheTTL is how long an answered-index lookup stays cached.
const DefaultCacheTTL = 5 * time.Minute

// AnsweredCache caches the answered-item-ID set per (user, section). It is
// an explicit injected object rather than a package global so tests can
// construct isolated instances and observe invalidation directly.
type AnsweredCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]answeredEntry
}

type answeredEntry struct {
	ids       map[string]bool
	expiresAt time.Time
}

// NewAnsweredCache creates a cache with the given TTL.
// A non-positive TTL falls back to DefaultCacheTTL.
func NewAnsweredCache(ttl time.Duration) *AnsweredCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &AnsweredCache{
		ttl:     ttl,
		entries: make(map[string]answeredEntry),
	}
}

// Get returns the cached ID set for (user, section), or false if absent
// or expired.
func (c *AnsweredCache) Get(userID, section string, now time.Time) (map[string]bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[cacheKey(userID, section)]
	if !ok || now.After(e.expiresAt) {
		return nil, false
	}
	return e.ids, true
}

// Put stores the ID set for (user, section).
func (c *AnsweredCache) Put(userID, section string, ids map[string]bool, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(userID, section)] = answeredEntry{
		ids:       ids,
		expiresAt: now.Add(c.ttl),
	}
}

// Invalidate drops the cached entry for (user, section). Must be called
// synchronously whenever an answer is recorded there.
func (c *AnsweredCache) Invalidate(userID, section string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, cacheKey(userID, section))
}

func cacheKey(userID, section string) string {
	return userID + "\x00" + section
}
