// Package reddit_api fetches and decodes Reddit listing endpoints.
package reddit_api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"pulse/config"
	"pulse/domain"
	apperrors "pulse/utils/errors"
)

const maxListingBytes = 4 << 20

// Client issues time-bounded GET requests against Reddit listing endpoints
// and maps the listing shape onto domain.FeedItem.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

func NewClient(cfg *config.Config) *Client {
	transport := &http.Transport{
		DialContext:         (&net.Dialer{Timeout: cfg.HTTP.DialTimeout}).DialContext,
		TLSHandshakeTimeout: cfg.HTTP.TLSHandshakeTimeout,
		IdleConnTimeout:     cfg.HTTP.IdleConnTimeout,
		MaxIdleConns:        100,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Feed.SourceTimeout,
		},
		userAgent: cfg.Feed.UserAgent,
	}
}

// FetchListing performs one attempt against endpointURL. A 200 response with
// an empty or malformed body is an error, not a success.
func (c *Client) FetchListing(ctx context.Context, endpointURL string) ([]domain.FeedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing request returned status %d: %w", resp.StatusCode, apperrors.ErrExternalServiceUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxListingBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read listing body: %w", err)
	}

	return ParseListing(body)
}

// listing mirrors the subset of Reddit's listing JSON this service consumes.
type listing struct {
	Data struct {
		Children []struct {
			Data post `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type post struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Permalink  string  `json:"permalink"`
	Score      int     `json:"score"`
	Thumbnail  string  `json:"thumbnail"`
	CreatedUTC float64 `json:"created_utc"`
}

// ParseListing decodes a Reddit listing body into feed items. It is shared
// with the relay path, whose unwrapped payload has the same shape. Returns
// ErrNoValidItems when the listing decodes but holds no usable posts.
func ParseListing(body []byte) ([]domain.FeedItem, error) {
	var l listing
	if err := json.Unmarshal(body, &l); err != nil {
		return nil, fmt.Errorf("failed to decode listing: %w", err)
	}

	items := make([]domain.FeedItem, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		p := child.Data
		if p.ID == "" || p.Title == "" || p.Permalink == "" {
			continue
		}

		score := p.Score
		item := domain.FeedItem{
			ID:        "reddit_" + p.ID,
			Title:     p.Title,
			URL:       "https://reddit.com" + p.Permalink,
			Source:    "Reddit",
			Score:     &score,
			CreatedAt: time.Unix(int64(p.CreatedUTC), 0).UTC(),
		}
		// Reddit uses placeholder values like "self" and "default" here;
		// only absolute URLs survive.
		if strings.HasPrefix(p.Thumbnail, "http") {
			item.Thumbnail = p.Thumbnail
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("listing decoded but empty: %w", apperrors.ErrNoValidItems)
	}

	return items, nil
}
