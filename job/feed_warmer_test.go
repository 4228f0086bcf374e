package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pulse/domain"
	"pulse/mocks"
)

type stubAggregator struct {
	items []domain.FeedItem
	err   error
}

func (s *stubAggregator) Execute(ctx context.Context) ([]domain.FeedItem, error) {
	return s.items, s.err
}

func TestFeedWarmerRunReplacesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockFeedCachePort(ctrl)

	items := []domain.FeedItem{
		{ID: "reddit_abc", Title: "warm item", URL: "https://reddit.com/r/x", Source: "Reddit"},
	}
	cache.EXPECT().Replace(items, gomock.Any()).Times(1)

	warmer := NewFeedWarmer(cache, &stubAggregator{items: items}, discardLogger())
	warmer.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, warmer.Run(context.Background()))
}

func TestFeedWarmerRunLeavesCacheOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockFeedCachePort(ctrl)
	// no Replace expectation: a failed pass must not touch the slot

	warmer := NewFeedWarmer(cache, &stubAggregator{err: errors.New("all sources down")}, discardLogger())

	err := warmer.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warm-up")
}
