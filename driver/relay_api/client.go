// Package relay_api re-requests an upstream URL through a public content
// relay. The relay wraps the original payload in an envelope that needs one
// unwrap step before normal decoding applies.
package relay_api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"pulse/config"
	apperrors "pulse/utils/errors"
)

const maxEnvelopeBytes = 8 << 20

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Feed.SourceTimeout},
		baseURL:    cfg.Feed.RelayURL,
		userAgent:  cfg.Feed.UserAgent,
	}
}

// envelope mirrors the relay's response: the original body as a string plus
// the upstream status it observed.
type envelope struct {
	Contents string `json:"contents"`
	Status   struct {
		URL      string `json:"url"`
		HTTPCode int    `json:"http_code"`
	} `json:"status"`
}

// FetchThrough requests targetURL via the relay and returns the unwrapped
// original payload.
func (c *Client) FetchThrough(ctx context.Context, targetURL string) ([]byte, error) {
	relayURL := c.baseURL + "?url=" + url.QueryEscape(targetURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, relayURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create relay request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("relay request failed: %w: %v", apperrors.ErrRelayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("relay returned status %d: %w", resp.StatusCode, apperrors.ErrRelayUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxEnvelopeBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read relay body: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode relay envelope: %w", err)
	}

	if env.Status.HTTPCode != 0 && env.Status.HTTPCode != http.StatusOK {
		return nil, fmt.Errorf("relay observed upstream status %d: %w", env.Status.HTTPCode, apperrors.ErrExternalServiceUnavailable)
	}

	if env.Contents == "" {
		return nil, fmt.Errorf("relay envelope empty: %w", apperrors.ErrNoValidItems)
	}

	return []byte(env.Contents), nil
}
