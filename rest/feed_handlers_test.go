package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/domain"
	"pulse/utils/logger"
)

type stubFeedServer struct {
	items []domain.FeedItem
	state domain.ServeState
}

func (s *stubFeedServer) Execute(ctx context.Context) ([]domain.FeedItem, domain.ServeState) {
	return s.items, s.state
}

func newFeedHandler(server FeedServer) *feedHandler {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return &feedHandler{
		server:    server,
		ctxLogger: logger.NewContextLogger(log),
	}
}

func TestGetFeedStatusByState(t *testing.T) {
	items := []domain.FeedItem{
		{ID: "reddit_a1", Title: "first", URL: "https://reddit.com/r/x/a1", Source: "Reddit"},
		{ID: "twitter_sim_1", Title: "second", URL: "https://example.com/t/1", Source: "Twitter"},
	}

	tests := map[string]struct {
		state      domain.ServeState
		wantStatus int
	}{
		"cache hit serves 200":      {state: domain.ServedCache, wantStatus: http.StatusOK},
		"fresh aggregation is 200":  {state: domain.ServedFresh, wantStatus: http.StatusOK},
		"stale on error is 200":     {state: domain.ServedStaleOnError, wantStatus: http.StatusOK},
		"fallback only is 500":      {state: domain.ServedFallbackOnly, wantStatus: http.StatusInternalServerError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := newFeedHandler(&stubFeedServer{items: items, state: tc.state})
			require.NoError(t, h.getFeed(c))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, string(tc.state), rec.Header().Get("X-Feed-State"))

			var body []domain.FeedItem
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Len(t, body, len(items))
		})
	}
}

func TestGetFeedBodyIsAlwaysAnArray(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := newFeedHandler(&stubFeedServer{items: []domain.FeedItem{}, state: domain.ServedFresh})
	require.NoError(t, h.getFeed(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, healthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
