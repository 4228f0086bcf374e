// Package aggregate_feed_usecase fans out to every configured source adapter
// concurrently, joins all outcomes, and merges them into one shuffled batch.
package aggregate_feed_usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"pulse/domain"
	"pulse/port/feed_source_port"
)

type AggregateFeedUsecase struct {
	sources []feed_source_port.FeedSourcePort
	timeout time.Duration
	logger  *slog.Logger
}

func NewAggregateFeedUsecase(sources []feed_source_port.FeedSourcePort, timeout time.Duration, logger *slog.Logger) *AggregateFeedUsecase {
	return &AggregateFeedUsecase{
		sources: sources,
		timeout: timeout,
		logger:  logger,
	}
}

// Execute runs every adapter concurrently and waits for all of them to
// settle; one adapter's failure or slowness never cancels the others. The
// whole pass is bounded by the configured aggregation timeout. The returned
// error is reserved for processing faults; source failures are absorbed
// into per-adapter fallback content and never surface here.
func (u *AggregateFeedUsecase) Execute(ctx context.Context) ([]domain.FeedItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("aggregation aborted: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	outcomes := make([]domain.SourceOutcome, len(u.sources))
	var wg sync.WaitGroup

	for i, source := range u.sources {
		wg.Add(1)
		go func(i int, source feed_source_port.FeedSourcePort) {
			defer wg.Done()
			outcomes[i] = u.settle(ctx, source)
		}(i, source)
	}
	wg.Wait()

	combined := make([]domain.FeedItem, 0, 32)
	seen := make(map[string]struct{})

	for i, outcome := range outcomes {
		source := u.sources[i]

		items := outcome.Items
		if outcome.Failed() {
			u.logger.Error("source settled with a failure, substituting fallback",
				"source", source.Name(), "error", outcome.Err)
			items = source.FallbackItems()
		}

		// Substitution keys off the post-filter contribution: an adapter whose
		// items all fail validation contributes its fallback, not nothing.
		kept := u.appendValid(&combined, seen, source.Name(), items)
		if kept == 0 && !outcome.Failed() {
			u.logger.Error("source settled without usable items, substituting fallback",
				"source", source.Name(), "error", outcome.Err)
			u.appendValid(&combined, seen, source.Name(), source.FallbackItems())
		}
	}

	// Shuffle so no single source dominates the top of the batch.
	rand.Shuffle(len(combined), func(i, j int) {
		combined[i], combined[j] = combined[j], combined[i]
	})

	u.logger.Info("aggregation completed", "sources", len(u.sources), "items", len(combined))

	return combined, nil
}

// appendValid filters one source's items, dedupes their ids against the
// batch, and appends the survivors. Returns how many passed the filter.
func (u *AggregateFeedUsecase) appendValid(combined *[]domain.FeedItem, seen map[string]struct{}, sourceName string, items []domain.FeedItem) int {
	kept := 0
	for _, item := range items {
		if !item.Valid() {
			u.logger.Warn("dropping invalid item", "source", sourceName, "id", item.ID)
			continue
		}
		*combined = append(*combined, uniqueItem(item, seen))
		kept++
	}
	return kept
}

// settle invokes one adapter and converts a panic into a Failure outcome so
// a broken adapter cannot poison its siblings.
func (u *AggregateFeedUsecase) settle(ctx context.Context, source feed_source_port.FeedSourcePort) (outcome domain.SourceOutcome) {
	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("source panicked", "source", source.Name(), "panic", r)
			outcome = domain.Failure(fmt.Errorf("source %s panicked: %v", source.Name(), r))
		}
	}()

	return source.Fetch(ctx)
}

// uniqueItem suffixes the id deterministically when it collides with one
// already in the batch.
func uniqueItem(item domain.FeedItem, seen map[string]struct{}) domain.FeedItem {
	id := item.ID
	for n := 2; ; n++ {
		if _, dup := seen[id]; !dup {
			break
		}
		id = fmt.Sprintf("%s_%d", item.ID, n)
	}
	seen[id] = struct{}{}
	item.ID = id
	return item
}
