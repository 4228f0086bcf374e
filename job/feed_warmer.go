package job

import (
	"context"
	"log/slog"
	"time"

	"pulse/domain"
	"pulse/port/feed_cache_port"
	"pulse/utils/errors"
)

// Aggregator is the fan-out entry point the warmer drives.
type Aggregator interface {
	Execute(ctx context.Context) ([]domain.FeedItem, error)
}

// FeedWarmer proactively refreshes the feed cache so request-path refreshes
// become rare. It never serves anything itself; it only keeps the slot warm.
type FeedWarmer struct {
	cache      feed_cache_port.FeedCachePort
	aggregator Aggregator
	logger     *slog.Logger
	now        func() time.Time
}

func NewFeedWarmer(cache feed_cache_port.FeedCachePort, aggregator Aggregator, logger *slog.Logger) *FeedWarmer {
	return &FeedWarmer{
		cache:      cache,
		aggregator: aggregator,
		logger:     logger,
		now:        time.Now,
	}
}

// Run performs one warm-up pass. A failed pass leaves the existing cache
// entry untouched so stale content stays available to the serving policy.
func (w *FeedWarmer) Run(ctx context.Context) error {
	items, err := w.aggregator.Execute(ctx)
	if err != nil {
		return errors.AggregationError("feed warm-up aggregation failed", err, map[string]interface{}{
			"job": "feed_warmer",
		})
	}

	w.cache.Replace(items, w.now())
	w.logger.Info("feed cache warmed", "items", len(items))

	return nil
}
