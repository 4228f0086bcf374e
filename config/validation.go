package config

import "fmt"

func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Cache.FeedCacheExpiry <= 0 {
		return fmt.Errorf("feed cache expiry must be positive, got %v", config.Cache.FeedCacheExpiry)
	}

	if config.Feed.Subreddit == "" {
		return fmt.Errorf("feed subreddit must not be empty")
	}

	if config.Feed.FetchRetries < 1 {
		return fmt.Errorf("feed fetch retries must be at least 1, got %d", config.Feed.FetchRetries)
	}

	if config.Feed.SourceTimeout <= 0 {
		return fmt.Errorf("feed source timeout must be positive, got %v", config.Feed.SourceTimeout)
	}

	// The total ceiling has to leave room for at least one full attempt.
	if config.Feed.AggregateTimeout < config.Feed.SourceTimeout {
		return fmt.Errorf("feed aggregate timeout %v must not be shorter than source timeout %v",
			config.Feed.AggregateTimeout, config.Feed.SourceTimeout)
	}

	if config.RateLimit.ExternalAPIInterval < 0 {
		return fmt.Errorf("external API interval must not be negative, got %v", config.RateLimit.ExternalAPIInterval)
	}

	return nil
}
