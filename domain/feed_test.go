package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeedItemValid(t *testing.T) {
	tests := map[string]struct {
		item FeedItem
		want bool
	}{
		"complete item": {
			item: FeedItem{ID: "reddit_abc", Title: "t", URL: "https://example.com", Source: "Reddit", CreatedAt: time.Now()},
			want: true,
		},
		"missing id": {
			item: FeedItem{Title: "t", URL: "https://example.com", Source: "Reddit"},
			want: false,
		},
		"missing title": {
			item: FeedItem{ID: "x", URL: "https://example.com", Source: "Reddit"},
			want: false,
		},
		"missing url": {
			item: FeedItem{ID: "x", Title: "t", Source: "Reddit"},
			want: false,
		},
		"missing source": {
			item: FeedItem{ID: "x", Title: "t", URL: "https://example.com"},
			want: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.item.Valid())
		})
	}
}

func TestSourceOutcome(t *testing.T) {
	ok := Success([]FeedItem{{ID: "a"}})
	assert.False(t, ok.Failed())
	assert.Len(t, ok.Items, 1)

	bad := Failure(errors.New("upstream unreachable"))
	assert.True(t, bad.Failed())
	assert.Empty(t, bad.Items)
}
