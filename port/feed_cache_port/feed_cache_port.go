package feed_cache_port

import (
	"time"

	"pulse/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_cache_port.go -destination=../../mocks/mock_feed_cache_port.go -package=mocks

// FeedCachePort is the single-slot store for the last aggregated feed.
// Replace must be atomic with respect to concurrent Read calls.
type FeedCachePort interface {
	Read() (*domain.CacheEntry, bool)
	IsFresh(entry *domain.CacheEntry, now time.Time) bool
	Replace(items []domain.FeedItem, now time.Time)
}
