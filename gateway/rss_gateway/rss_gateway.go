// Package rss_gateway adapts an RSS/Atom feed into a feed source. Enabled
// only when a feed URL is configured.
package rss_gateway

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	rssFeed "github.com/mmcdole/gofeed"

	"pulse/config"
	"pulse/domain"
	"pulse/retry"
	apperrors "pulse/utils/errors"
	"pulse/utils/rate_limiter"
)

const sourceName = "RSS"

type RSSGateway struct {
	parser  *rssFeed.Parser
	feedURL string
	timeout time.Duration
	limiter *rate_limiter.HostRateLimiter
	retrier *retry.Retrier
	logger  *slog.Logger
}

func NewRSSGateway(cfg *config.Config, limiter *rate_limiter.HostRateLimiter, logger *slog.Logger) *RSSGateway {
	parser := rssFeed.NewParser()
	parser.Client = &http.Client{Timeout: cfg.Feed.SourceTimeout}
	parser.UserAgent = cfg.Feed.UserAgent

	retrier := retry.NewRetrier(retry.RetryConfig{
		MaxAttempts:   cfg.Feed.FetchRetries,
		BaseDelay:     cfg.Feed.RetryBaseDelay,
		MaxDelay:      cfg.Feed.SourceTimeout,
		BackoffFactor: 2.0,
		JitterFactor:  0.1,
	}, retry.RetryAll, logger)

	return &RSSGateway{
		parser:  parser,
		feedURL: cfg.Feed.RSSURL,
		timeout: cfg.Feed.SourceTimeout,
		limiter: limiter,
		retrier: retrier,
		logger:  logger,
	}
}

func (g *RSSGateway) Name() string {
	return sourceName
}

// Fetch retries the configured feed URL and degrades to fallback content.
// Like every adapter it never fails outward.
func (g *RSSGateway) Fetch(ctx context.Context) domain.SourceOutcome {
	var items []domain.FeedItem

	err := g.retrier.Do(ctx, func() error {
		if err := g.limiter.WaitForHost(ctx, g.feedURL); err != nil {
			return fmt.Errorf("rate limiting failed: %w", err)
		}

		attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		feed, err := g.parser.ParseURLWithContext(g.feedURL, attemptCtx)
		if err != nil {
			return fmt.Errorf("failed to parse feed: %w", err)
		}
		if len(feed.Items) == 0 {
			return fmt.Errorf("feed parsed but empty: %w", apperrors.ErrNoValidItems)
		}

		items = convertItems(feed)
		return nil
	})
	if err != nil {
		g.logger.Error("rss fetch exhausted, serving fallback content", "url", g.feedURL, "error", err)
		return domain.Success(g.FallbackItems())
	}

	g.logger.Info("rss feed fetched", "url", g.feedURL, "items", len(items))
	return domain.Success(items)
}

// convertItems maps gofeed items onto FeedItem, preserving source order.
func convertItems(feed *rssFeed.Feed) []domain.FeedItem {
	items := make([]domain.FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}

		converted := domain.FeedItem{
			ID:        itemID(item),
			Title:     item.Title,
			URL:       item.Link,
			Source:    sourceName,
			CreatedAt: time.Now().UTC(),
		}
		if item.PublishedParsed != nil {
			converted.CreatedAt = item.PublishedParsed.UTC()
		}
		if item.Image != nil && strings.HasPrefix(item.Image.URL, "http") {
			converted.Thumbnail = item.Image.URL
		}
		items = append(items, converted)
	}
	return items
}

// itemID derives a stable id from the item's GUID, falling back to its link.
func itemID(item *rssFeed.Item) string {
	key := item.GUID
	if key == "" {
		key = item.Link
	}
	sum := sha256.Sum256([]byte(key))
	return fmt.Sprintf("rss_%x", sum[:8])
}

// FallbackItems returns a placeholder entry tagged as fallback content.
func (g *RSSGateway) FallbackItems() []domain.FeedItem {
	return []domain.FeedItem{
		{
			ID:        "rss_fallback_1",
			Title:     "The RSS source is unreachable right now, live entries will return shortly.",
			URL:       g.feedURL,
			Source:    sourceName + " (Fallback)",
			CreatedAt: time.Now().UTC(),
		},
	}
}
