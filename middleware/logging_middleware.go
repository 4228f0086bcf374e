package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"pulse/utils/logger"
)

// LoggingMiddleware logs one line per request with the context-scoped logger,
// escalating the level with the response status.
func LoggingMiddleware(ctxLogger *logger.ContextLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status

			log := ctxLogger.WithContext(req.Context())
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
			}

			switch {
			case status >= 500:
				log.Error("request completed", attrs...)
			case status >= 400:
				log.Warn("request completed", attrs...)
			default:
				log.Info("request completed", attrs...)
			}

			return err
		}
	}
}
