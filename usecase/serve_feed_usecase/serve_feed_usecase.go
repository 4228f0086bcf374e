// Package serve_feed_usecase is the orchestration entry point for feed
// requests: cache check, aggregation trigger, and the degradation ladder
// fresh cache → freshly aggregated → stale cache → static fallback.
package serve_feed_usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/sync/singleflight"

	"pulse/domain"
	"pulse/port/feed_cache_port"
	"pulse/port/feed_source_port"
)

// FeedAggregator is the slice of the aggregation usecase this policy needs.
type FeedAggregator interface {
	Execute(ctx context.Context) ([]domain.FeedItem, error)
}

type ServeFeedUsecase struct {
	cache      feed_cache_port.FeedCachePort
	aggregator FeedAggregator
	sources    []feed_source_port.FeedSourcePort
	logger     *slog.Logger
	group      singleflight.Group
	now        func() time.Time
}

func NewServeFeedUsecase(cache feed_cache_port.FeedCachePort, aggregator FeedAggregator, sources []feed_source_port.FeedSourcePort, logger *slog.Logger) *ServeFeedUsecase {
	return &ServeFeedUsecase{
		cache:      cache,
		aggregator: aggregator,
		sources:    sources,
		logger:     logger,
		now:        time.Now,
	}
}

// Execute serves one feed request. It never returns an error: every rung of
// the ladder terminates in a concrete item list, and the returned state
// tells the transport layer which rung answered.
func (u *ServeFeedUsecase) Execute(ctx context.Context) ([]domain.FeedItem, domain.ServeState) {
	if entry, ok := u.cache.Read(); ok && u.cache.IsFresh(entry, u.now()) {
		u.logger.Info("serving feed from cache", "items", len(entry.Items), "fetched_at", entry.FetchedAt)
		return entry.Items, domain.ServedCache
	}

	items, err := u.refresh(ctx)
	if err == nil {
		return items, domain.ServedFresh
	}

	u.logger.Error("aggregation failed, degrading", "error", err)

	// Expired is better than nothing.
	if entry, ok := u.cache.Read(); ok {
		u.logger.Warn("serving stale cache entry", "items", len(entry.Items), "fetched_at", entry.FetchedAt)
		return entry.Items, domain.ServedStaleOnError
	}

	u.logger.Warn("no cache entry available, serving fallback content only")
	return u.fallbackFeed(), domain.ServedFallbackOnly
}

// refresh runs one aggregation, coalescing concurrent cache misses into a
// single in-flight pass. The cache is replaced inside the flight so it is
// installed exactly once. The flight must not inherit the triggering
// request's cancellation: other requests share its result, and the
// aggregator bounds its own run, so the first caller disconnecting must not
// degrade the shared pass or what gets installed.
func (u *ServeFeedUsecase) refresh(ctx context.Context) ([]domain.FeedItem, error) {
	flightCtx := context.WithoutCancel(ctx)

	result, err, shared := u.group.Do("feed", func() (result any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("aggregation panicked: %v", r)
			}
		}()

		items, err := u.aggregator.Execute(flightCtx)
		if err != nil {
			return nil, err
		}

		u.cache.Replace(items, u.now())
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		u.logger.Info("aggregation shared with concurrent request")
	}

	return result.([]domain.FeedItem), nil
}

// fallbackFeed concatenates every adapter's static fallback list, shuffled.
func (u *ServeFeedUsecase) fallbackFeed() []domain.FeedItem {
	items := make([]domain.FeedItem, 0, len(u.sources))
	for _, source := range u.sources {
		items = append(items, source.FallbackItems()...)
	}

	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	return items
}
