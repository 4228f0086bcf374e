// Package social_gateway simulates a social feed source. There is no live
// backing integration; the adapter returns a fixed post list stamped with
// fresh ids and timestamps on every call.
package social_gateway

import (
	"context"
	"fmt"
	"time"

	"pulse/domain"
)

const sourceName = "Twitter"

type simulatedPost struct {
	title string
	url   string
}

var simulatedPosts = []simulatedPost{
	{"VertxAI is hiring! 🚀 Join the future of AI.", "https://twitter.com/vertxai"},
	{"When you fix a bug after 6 hours... typo. 🤦‍♂️", "https://twitter.com/funnydev"},
	{"Shipping on Friday is a personality trait.", "https://twitter.com/deployfriday"},
	{"Me explaining to my code why it should work: 🧠💥", "https://twitter.com/codingstruggles"},
}

type SocialGateway struct{}

func NewSocialGateway() *SocialGateway {
	return &SocialGateway{}
}

func (g *SocialGateway) Name() string {
	return sourceName
}

// Fetch always succeeds: same content every call, fresh ids and timestamps.
func (g *SocialGateway) Fetch(ctx context.Context) domain.SourceOutcome {
	return domain.Success(g.FallbackItems())
}

func (g *SocialGateway) FallbackItems() []domain.FeedItem {
	now := time.Now().UTC()

	items := make([]domain.FeedItem, 0, len(simulatedPosts))
	for i, post := range simulatedPosts {
		items = append(items, domain.FeedItem{
			ID:        fmt.Sprintf("twitter_sim_%d", i),
			Title:     post.title,
			URL:       post.url,
			Source:    sourceName,
			CreatedAt: now,
		})
	}
	return items
}
