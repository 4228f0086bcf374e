// Package feed_cache holds the single-slot in-memory store for the last
// successfully aggregated feed.
package feed_cache

import (
	"sync"
	"time"

	"pulse/domain"
)

// SlotCache is a one-entry cache guarded by a RWMutex. Replace swaps the
// entry pointer whole, so a reader holding the previous entry keeps a
// consistent view; no reader ever observes a partially written entry.
type SlotCache struct {
	mu    sync.RWMutex
	entry *domain.CacheEntry
	ttl   time.Duration
}

func NewSlotCache(ttl time.Duration) *SlotCache {
	return &SlotCache{ttl: ttl}
}

// Read returns the current entry, or false if the cache was never populated.
func (c *SlotCache) Read() (*domain.CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.entry == nil {
		return nil, false
	}
	return c.entry, true
}

// IsFresh reports whether entry is still inside its TTL at the given time.
func (c *SlotCache) IsFresh(entry *domain.CacheEntry, now time.Time) bool {
	if entry == nil {
		return false
	}
	return now.Sub(entry.FetchedAt) < c.ttl
}

// Replace installs a new entry, overwriting any previous one.
func (c *SlotCache) Replace(items []domain.FeedItem, now time.Time) {
	entry := &domain.CacheEntry{
		Items:     items,
		FetchedAt: now,
	}

	c.mu.Lock()
	c.entry = entry
	c.mu.Unlock()
}
