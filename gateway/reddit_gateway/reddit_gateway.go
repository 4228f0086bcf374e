// Package reddit_gateway adapts the Reddit listing API into a feed source.
// Its fetch ladder is: per-endpoint retries with backoff, endpoint rotation,
// one relay attempt, then static fallback content. It never fails outward.
package reddit_gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pulse/config"
	"pulse/domain"
	"pulse/driver/reddit_api"
	"pulse/driver/relay_api"
	"pulse/retry"
	"pulse/utils/rate_limiter"
)

const sourceName = "Reddit"

type RedditGateway struct {
	client    *reddit_api.Client
	relay     *relay_api.Client
	limiter   *rate_limiter.HostRateLimiter
	retrier   *retry.Retrier
	logger    *slog.Logger
	subreddit string
	endpoints []string
}

func NewRedditGateway(cfg *config.Config, limiter *rate_limiter.HostRateLimiter, logger *slog.Logger) *RedditGateway {
	retrier := retry.NewRetrier(retry.RetryConfig{
		MaxAttempts:   cfg.Feed.FetchRetries,
		BaseDelay:     cfg.Feed.RetryBaseDelay,
		MaxDelay:      cfg.Feed.SourceTimeout,
		BackoffFactor: 2.0,
		JitterFactor:  0.1,
	}, retry.RetryAll, logger)

	return &RedditGateway{
		client:    reddit_api.NewClient(cfg),
		relay:     relay_api.NewClient(cfg),
		limiter:   limiter,
		retrier:   retrier,
		logger:    logger,
		subreddit: cfg.Feed.Subreddit,
		endpoints: listingEndpoints(cfg.Feed.Subreddit),
	}
}

// listingEndpoints returns the candidate listing views in preference order.
func listingEndpoints(subreddit string) []string {
	base := "https://www.reddit.com/r/" + subreddit
	return []string{
		base + "/best.json?limit=20",
		base + "/hot.json?limit=20",
		base + "/new.json?limit=20",
	}
}

func (g *RedditGateway) Name() string {
	return sourceName
}

// Fetch walks the fallback ladder and always settles into a Success outcome;
// upstream failure is absorbed here and only visible in the logs.
func (g *RedditGateway) Fetch(ctx context.Context) domain.SourceOutcome {
	for _, endpoint := range g.endpoints {
		items, err := g.fetchEndpoint(ctx, endpoint)
		if err == nil {
			g.logger.Info("reddit listing fetched", "endpoint", endpoint, "items", len(items))
			return domain.Success(items)
		}
		g.logger.Warn("reddit endpoint exhausted, rotating", "endpoint", endpoint, "error", err)
	}

	if items, err := g.fetchViaRelay(ctx); err == nil {
		g.logger.Info("reddit listing fetched via relay", "items", len(items))
		return domain.Success(items)
	} else {
		g.logger.Error("reddit relay attempt failed, serving fallback content", "error", err)
	}

	return domain.Success(g.FallbackItems())
}

func (g *RedditGateway) fetchEndpoint(ctx context.Context, endpoint string) ([]domain.FeedItem, error) {
	var items []domain.FeedItem

	err := g.retrier.Do(ctx, func() error {
		if err := g.limiter.WaitForHost(ctx, endpoint); err != nil {
			return fmt.Errorf("rate limiting failed: %w", err)
		}

		fetched, err := g.client.FetchListing(ctx, endpoint)
		if err != nil {
			return err
		}
		items = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// fetchViaRelay re-requests the primary endpoint's data through the relay.
// Exactly one attempt; the relay is a last resort, not another retry target.
func (g *RedditGateway) fetchViaRelay(ctx context.Context) ([]domain.FeedItem, error) {
	primary := g.endpoints[0]

	if err := g.limiter.WaitForHost(ctx, primary); err != nil {
		return nil, fmt.Errorf("rate limiting failed: %w", err)
	}

	body, err := g.relay.FetchThrough(ctx, primary)
	if err != nil {
		return nil, err
	}

	return reddit_api.ParseListing(body)
}

// FallbackItems returns hard-coded placeholder posts, clearly tagged as
// fallback content and stamped at call time. Never empty.
func (g *RedditGateway) FallbackItems() []domain.FeedItem {
	now := time.Now().UTC()
	fallbackSource := sourceName + " (Fallback)"
	base := "https://www.reddit.com/r/" + g.subreddit

	return []domain.FeedItem{
		{
			ID:        "reddit_fallback_1",
			Title:     "Reddit is unreachable right now, live posts will return shortly.",
			URL:       base + "/",
			Source:    fallbackSource,
			CreatedAt: now,
		},
		{
			ID:        "reddit_fallback_2",
			Title:     "Tip: the feed refreshes every five minutes once upstream recovers.",
			URL:       base + "/hot/",
			Source:    fallbackSource,
			CreatedAt: now,
		},
	}
}
