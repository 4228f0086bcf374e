package rest

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"pulse/di"
	custommiddleware "pulse/middleware"
	"pulse/utils/logger"
)

// RegisterRoutes wires the middleware chain and the API routes onto the echo
// instance. /api/health stays unauthenticated so orchestration probes work
// without tokens.
func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents) {
	ctxLogger := logger.NewContextLogger(logger.Logger)

	e.Use(custommiddleware.RequestIDMiddleware())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID},
	}))
	e.Use(custommiddleware.LoggingMiddleware(ctxLogger))
	e.Use(echomiddleware.Gzip())

	feed := &feedHandler{
		server:    container.ServeFeedUsecase,
		ctxLogger: ctxLogger,
	}

	api := e.Group("/api")
	api.GET("/health", healthCheck)

	auth := custommiddleware.NewJWTAuthMiddleware(logger.Logger, container.Config)
	api.GET("/feed", feed.getFeed, auth.RequireJWT())
}
