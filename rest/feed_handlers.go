package rest

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse/domain"
	"pulse/utils/logger"
)

// FeedServer is the serving-policy entry point the handlers depend on.
type FeedServer interface {
	Execute(ctx context.Context) ([]domain.FeedItem, domain.ServeState)
}

type feedHandler struct {
	server    FeedServer
	ctxLogger *logger.ContextLogger
}

// getFeed returns the aggregated feed. The response body is always a JSON
// array of items; the status code reflects how degraded the response is:
// 200 for cache/fresh/stale, 500 when only hard-coded fallbacks remain.
func (h *feedHandler) getFeed(c echo.Context) error {
	ctx := c.Request().Context()

	items, state := h.server.Execute(ctx)

	log := h.ctxLogger.WithContext(ctx)
	log.Info("feed served", "state", string(state), "items", len(items))

	c.Response().Header().Set("X-Feed-State", string(state))
	c.Response().Header().Set("Cache-Control", "public, max-age=60")

	status := http.StatusOK
	if state == domain.ServedFallbackOnly {
		status = http.StatusInternalServerError
	}

	return c.JSON(status, items)
}

func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
