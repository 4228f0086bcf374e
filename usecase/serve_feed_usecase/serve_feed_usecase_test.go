package serve_feed_usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pulse/domain"
	"pulse/driver/feed_cache"
	"pulse/mocks"
	"pulse/port/feed_source_port"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func item(id string) domain.FeedItem {
	return domain.FeedItem{ID: id, Title: "t", URL: "https://example.com/" + id, Source: "s", CreatedAt: time.Now()}
}

// stubAggregator lets tests force aggregation results and count invocations.
type stubAggregator struct {
	items []domain.FeedItem
	err   error
	calls int32
	delay time.Duration
}

func (s *stubAggregator) Execute(ctx context.Context) ([]domain.FeedItem, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.items, s.err
}

func TestExecuteServesFreshCacheWithoutAggregating(t *testing.T) {
	cache := feed_cache.NewSlotCache(5 * time.Minute)
	cached := []domain.FeedItem{item("a"), item("b"), item("c"), item("d"), item("e")}
	cache.Replace(cached, time.Now())

	agg := &stubAggregator{items: []domain.FeedItem{item("new")}}
	u := NewServeFeedUsecase(cache, agg, nil, testLogger())

	items, state := u.Execute(context.Background())

	assert.Equal(t, domain.ServedCache, state)
	assert.Equal(t, cached, items)
	assert.Equal(t, int32(0), atomic.LoadInt32(&agg.calls), "no aggregation on fresh cache")
}

func TestExecuteJustBeforeAndAfterExpiry(t *testing.T) {
	ttl := 5 * time.Minute
	t0 := time.Now()

	cache := feed_cache.NewSlotCache(ttl)
	cache.Replace([]domain.FeedItem{item("old")}, t0)

	agg := &stubAggregator{items: []domain.FeedItem{item("fresh")}}
	u := NewServeFeedUsecase(cache, agg, nil, testLogger())

	// Just inside the TTL: cached entry, no aggregation.
	u.now = func() time.Time { return t0.Add(ttl - time.Millisecond) }
	items, state := u.Execute(context.Background())
	assert.Equal(t, domain.ServedCache, state)
	assert.Equal(t, "old", items[0].ID)
	assert.Equal(t, int32(0), atomic.LoadInt32(&agg.calls))

	// Just past the TTL: a new aggregation runs and is installed.
	u.now = func() time.Time { return t0.Add(ttl + time.Millisecond) }
	items, state = u.Execute(context.Background())
	assert.Equal(t, domain.ServedFresh, state)
	assert.Equal(t, "fresh", items[0].ID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&agg.calls))

	entry, ok := cache.Read()
	require.True(t, ok)
	assert.Equal(t, t0.Add(ttl+time.Millisecond), entry.FetchedAt)
}

func TestExecuteInstallsFreshResultOnColdStart(t *testing.T) {
	cache := feed_cache.NewSlotCache(5 * time.Minute)
	agg := &stubAggregator{items: []domain.FeedItem{item("first")}}
	u := NewServeFeedUsecase(cache, agg, nil, testLogger())

	items, state := u.Execute(context.Background())

	assert.Equal(t, domain.ServedFresh, state)
	require.Len(t, items, 1)

	entry, ok := cache.Read()
	require.True(t, ok)
	assert.Equal(t, items, entry.Items)
}

func TestExecuteServesStaleCacheOnAggregationFault(t *testing.T) {
	ttl := time.Minute
	cache := feed_cache.NewSlotCache(ttl)
	stale := []domain.FeedItem{item("stale")}
	cache.Replace(stale, time.Now().Add(-time.Hour))

	agg := &stubAggregator{err: errors.New("processing fault")}
	u := NewServeFeedUsecase(cache, agg, nil, testLogger())

	items, state := u.Execute(context.Background())

	assert.Equal(t, domain.ServedStaleOnError, state)
	assert.Equal(t, stale, items)
}

func TestExecuteServesFallbackOnlyOnColdFault(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockFeedSourcePort(ctrl)
	source.EXPECT().FallbackItems().Return([]domain.FeedItem{item("fb_1"), item("fb_2")})

	cache := feed_cache.NewSlotCache(time.Minute)
	agg := &stubAggregator{err: errors.New("processing fault")}
	u := NewServeFeedUsecase(cache, agg, []feed_source_port.FeedSourcePort{source}, testLogger())

	items, state := u.Execute(context.Background())

	assert.Equal(t, domain.ServedFallbackOnly, state)
	assert.Len(t, items, 2)
}

func TestExecuteRecoverFromAggregatorPanic(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockFeedSourcePort(ctrl)
	source.EXPECT().FallbackItems().Return([]domain.FeedItem{item("fb")})

	cache := feed_cache.NewSlotCache(time.Minute)
	u := NewServeFeedUsecase(cache, panickingAggregator{}, []feed_source_port.FeedSourcePort{source}, testLogger())

	items, state := u.Execute(context.Background())

	assert.Equal(t, domain.ServedFallbackOnly, state)
	require.NotEmpty(t, items)
}

type panickingAggregator struct{}

func (panickingAggregator) Execute(context.Context) ([]domain.FeedItem, error) {
	panic("malformed internal state")
}

// cancelSensitiveAggregator mimics adapters that settle into fallback
// content as soon as their context is cancelled.
type cancelSensitiveAggregator struct {
	live     []domain.FeedItem
	degraded []domain.FeedItem
	delay    time.Duration
}

func (a *cancelSensitiveAggregator) Execute(ctx context.Context) ([]domain.FeedItem, error) {
	select {
	case <-ctx.Done():
		return a.degraded, nil
	case <-time.After(a.delay):
		return a.live, nil
	}
}

func TestExecuteFlightSurvivesTriggeringRequestCancel(t *testing.T) {
	cache := feed_cache.NewSlotCache(time.Minute)
	agg := &cancelSensitiveAggregator{
		live:     []domain.FeedItem{item("live_1")},
		degraded: []domain.FeedItem{item("degraded_fb")},
		delay:    300 * time.Millisecond,
	}
	u := NewServeFeedUsecase(cache, agg, nil, testLogger())

	// First request starts the flight, then its client disconnects mid-run.
	ctxA, cancelA := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		u.Execute(ctxA)
	}()

	time.Sleep(50 * time.Millisecond)

	// Second request joins the same flight with a healthy context.
	var items []domain.FeedItem
	var state domain.ServeState
	wg.Add(1)
	go func() {
		defer wg.Done()
		items, state = u.Execute(context.Background())
	}()

	time.Sleep(50 * time.Millisecond)
	cancelA()
	wg.Wait()

	assert.Equal(t, domain.ServedFresh, state)
	require.Len(t, items, 1)
	assert.Equal(t, "live_1", items[0].ID, "coalesced request must get the live result, not degraded content")

	entry, ok := cache.Read()
	require.True(t, ok)
	require.Len(t, entry.Items, 1)
	assert.Equal(t, "live_1", entry.Items[0].ID, "cancellation must not poison the installed entry")
}

func TestExecuteCoalescesConcurrentMisses(t *testing.T) {
	cache := feed_cache.NewSlotCache(time.Minute)
	agg := &stubAggregator{items: []domain.FeedItem{item("shared")}, delay: 200 * time.Millisecond}
	u := NewServeFeedUsecase(cache, agg, nil, testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, state := u.Execute(context.Background())
			assert.Equal(t, domain.ServedFresh, state)
			assert.Len(t, items, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&agg.calls), "single aggregation in flight")
}
