package domain

import "time"

// FeedItem is the unit of aggregated output. The JSON field names are the
// wire contract consumed by the frontend; do not rename them.
type FeedItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Source    string    `json:"source"`
	Score     *int      `json:"score,omitempty"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Valid reports whether the item satisfies the aggregation invariant:
// id, title, url and source must all be non-empty.
func (i FeedItem) Valid() bool {
	return i.ID != "" && i.Title != "" && i.URL != "" && i.Source != ""
}

// CacheEntry is the last successfully aggregated feed plus the time the
// aggregation completed. Entries are replaced whole, never mutated.
type CacheEntry struct {
	Items     []FeedItem
	FetchedAt time.Time
}

// SourceOutcome is the settled result of one source adapter invocation.
// Exactly one of Items or Err is meaningful.
type SourceOutcome struct {
	Items []FeedItem
	Err   error
}

// Success wraps a fetched item list in an outcome.
func Success(items []FeedItem) SourceOutcome {
	return SourceOutcome{Items: items}
}

// Failure wraps an adapter error in an outcome.
func Failure(err error) SourceOutcome {
	return SourceOutcome{Err: err}
}

// Failed reports whether the adapter invocation resolved to a failure.
func (o SourceOutcome) Failed() bool {
	return o.Err != nil
}
