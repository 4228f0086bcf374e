package di

import (
	"pulse/config"
	"pulse/driver/feed_cache"
	"pulse/gateway/reddit_gateway"
	"pulse/gateway/rss_gateway"
	"pulse/gateway/social_gateway"
	"pulse/port/feed_source_port"
	"pulse/usecase/aggregate_feed_usecase"
	"pulse/usecase/serve_feed_usecase"
	"pulse/utils/logger"
	"pulse/utils/rate_limiter"
)

// ApplicationComponents holds the dependency graph of the service.
type ApplicationComponents struct {
	Config *config.Config

	FeedCache *feed_cache.SlotCache
	Sources   []feed_source_port.FeedSourcePort

	AggregateFeedUsecase *aggregate_feed_usecase.AggregateFeedUsecase
	ServeFeedUsecase     *serve_feed_usecase.ServeFeedUsecase
}

// NewApplicationComponents builds the full dependency graph from config.
// The RSS source only joins the fan-out when FEED_RSS_URL is set.
func NewApplicationComponents(cfg *config.Config) *ApplicationComponents {
	log := logger.Logger

	limiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.ExternalAPIInterval)

	sources := []feed_source_port.FeedSourcePort{
		reddit_gateway.NewRedditGateway(cfg, limiter, log),
		social_gateway.NewSocialGateway(),
	}
	if cfg.Feed.RSSURL != "" {
		sources = append(sources, rss_gateway.NewRSSGateway(cfg, limiter, log))
	}

	cache := feed_cache.NewSlotCache(cfg.Cache.FeedCacheExpiry)

	aggregator := aggregate_feed_usecase.NewAggregateFeedUsecase(sources, cfg.Feed.AggregateTimeout, log)
	server := serve_feed_usecase.NewServeFeedUsecase(cache, aggregator, sources, log)

	return &ApplicationComponents{
		Config:               cfg,
		FeedCache:            cache,
		Sources:              sources,
		AggregateFeedUsecase: aggregator,
		ServeFeedUsecase:     server,
	}
}
