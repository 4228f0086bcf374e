package feed_source_port

import (
	"context"

	"pulse/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_source_port.go -destination=../../mocks/mock_feed_source_port.go -package=mocks

// FeedSourcePort is one upstream source adapter. Fetch must settle into a
// SourceOutcome; adapters absorb their own failures (retry, endpoint
// rotation, relay, fallback) and are expected never to return a Failure,
// but callers still guard against one.
type FeedSourcePort interface {
	Name() string
	Fetch(ctx context.Context) domain.SourceOutcome
	FallbackItems() []domain.FeedItem
}
