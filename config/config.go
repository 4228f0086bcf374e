package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Cache     CacheConfig     `json:"cache"`
	Feed      FeedConfig      `json:"feed"`
	Auth      AuthConfig      `json:"auth"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	HTTP      HTTPConfig      `json:"http"`
	Logging   LoggingConfig   `json:"logging"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type CacheConfig struct {
	// FeedCacheExpiry is the TTL of the single-slot feed cache.
	FeedCacheExpiry time.Duration `json:"feed_cache_expiry" env:"CACHE_FEED_EXPIRY" default:"300s"`
}

type FeedConfig struct {
	// Subreddit is the upstream community whose listings are aggregated.
	Subreddit string `json:"subreddit" env:"FEED_SUBREDDIT" default:"developersIndia"`
	// SourceTimeout bounds one network attempt against one endpoint.
	SourceTimeout time.Duration `json:"source_timeout" env:"FEED_SOURCE_TIMEOUT" default:"10s"`
	// FetchRetries is the number of tries per endpoint before rotating.
	FetchRetries int `json:"fetch_retries" env:"FEED_FETCH_RETRIES" default:"2"`
	// RetryBaseDelay is the backoff base between tries on the same endpoint.
	RetryBaseDelay time.Duration `json:"retry_base_delay" env:"FEED_RETRY_BASE_DELAY" default:"500ms"`
	// RelayURL is the indirect fetch channel used after every endpoint
	// exhausts its retries. The relay wraps the original payload in an
	// envelope that needs one unwrap step.
	RelayURL string `json:"relay_url" env:"FEED_RELAY_URL" default:"https://api.allorigins.win/get"`
	// AggregateTimeout is the total ceiling for one aggregation pass across
	// all sources. The serving policy degrades to stale or fallback content
	// when it is exceeded.
	AggregateTimeout time.Duration `json:"aggregate_timeout" env:"FEED_AGGREGATE_TIMEOUT" default:"45s"`
	// RSSURL optionally enables an extra RSS-backed source.
	RSSURL string `json:"rss_url" env:"FEED_RSS_URL"`
	// WarmerEnabled turns on the background cache refresh job. Off by
	// default: the serving path already refreshes on demand.
	WarmerEnabled bool `json:"warmer_enabled" env:"FEED_WARMER_ENABLED" default:"false"`
	// UserAgent identifies this client to upstream sources.
	UserAgent string `json:"user_agent" env:"FEED_USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
}

type AuthConfig struct {
	TokenSecret     string `json:"token_secret" env:"AUTH_TOKEN_SECRET"`
	TokenSecretFile string `json:"-" env:"AUTH_TOKEN_SECRET_FILE"`
	TokenIssuer     string `json:"token_issuer" env:"AUTH_TOKEN_ISSUER"`
	TokenAudience   string `json:"token_audience" env:"AUTH_TOKEN_AUDIENCE"`
}

type RateLimitConfig struct {
	ExternalAPIInterval time.Duration `json:"external_api_interval" env:"RATE_LIMIT_EXTERNAL_API_INTERVAL" default:"5s"`
}

type HTTPConfig struct {
	DialTimeout         time.Duration `json:"dial_timeout" env:"HTTP_DIAL_TIMEOUT" default:"10s"`
	TLSHandshakeTimeout time.Duration `json:"tls_handshake_timeout" env:"HTTP_TLS_HANDSHAKE_TIMEOUT" default:"10s"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// NewConfig loads configuration from environment variables with fallback to
// the tagged defaults, then validates the result.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Load token secret from file if configured (Docker Secrets support)
	if config.Auth.TokenSecretFile != "" {
		content, err := os.ReadFile(config.Auth.TokenSecretFile)
		if err == nil {
			config.Auth.TokenSecret = strings.TrimSpace(string(content))
		}
		// If file read fails, we fall back to the env var value (if any)
	}

	if config.Auth.TokenIssuer == "" {
		config.Auth.TokenIssuer = "pulse-auth"
	}
	if config.Auth.TokenAudience == "" {
		config.Auth.TokenAudience = "pulse-backend"
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}
