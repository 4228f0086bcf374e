package reddit_api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/config"
	apperrors "pulse/utils/errors"
)

const sampleListing = `{
	"data": {
		"children": [
			{"data": {"id": "abc", "title": "First post", "permalink": "/r/developersIndia/comments/abc/first/", "score": 42, "thumbnail": "https://b.thumbs.redditmedia.com/x.jpg", "created_utc": 1700000000}},
			{"data": {"id": "def", "title": "Second post", "permalink": "/r/developersIndia/comments/def/second/", "score": 7, "thumbnail": "self", "created_utc": 1700000100}}
		]
	}
}`

func testClient(t *testing.T) *Client {
	t.Helper()
	cfg, err := config.NewConfig()
	require.NoError(t, err)
	cfg.Feed.SourceTimeout = 2 * time.Second
	return NewClient(cfg)
}

func TestFetchListing(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleListing))
	}))
	defer server.Close()

	items, err := testClient(t).FetchListing(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.NotEmpty(t, gotUserAgent)

	first := items[0]
	assert.Equal(t, "reddit_abc", first.ID)
	assert.Equal(t, "First post", first.Title)
	assert.Equal(t, "https://reddit.com/r/developersIndia/comments/abc/first/", first.URL)
	assert.Equal(t, "Reddit", first.Source)
	require.NotNil(t, first.Score)
	assert.Equal(t, 42, *first.Score)
	assert.Equal(t, "https://b.thumbs.redditmedia.com/x.jpg", first.Thumbnail)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), first.CreatedAt)

	// "self" is a placeholder, not a URL
	assert.Empty(t, items[1].Thumbnail)
}

func TestFetchListingNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testClient(t).FetchListing(context.Background(), server.URL)
	assert.ErrorIs(t, err, apperrors.ErrExternalServiceUnavailable)
}

func TestFetchListingEmptyBodyIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"children": []}}`))
	}))
	defer server.Close()

	_, err := testClient(t).FetchListing(context.Background(), server.URL)
	assert.ErrorIs(t, err, apperrors.ErrNoValidItems)
}

func TestParseListingMalformed(t *testing.T) {
	_, err := ParseListing([]byte(`<html>rate limited</html>`))
	assert.Error(t, err)
}

func TestParseListingSkipsIncompletePosts(t *testing.T) {
	body := `{"data": {"children": [
		{"data": {"id": "", "title": "no id", "permalink": "/r/x/1/"}},
		{"data": {"id": "ok", "title": "fine", "permalink": "/r/x/2/", "score": 1, "created_utc": 1700000000}}
	]}}`

	items, err := ParseListing([]byte(body))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "reddit_ok", items[0].ID)
}
