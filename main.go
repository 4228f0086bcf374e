package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"pulse/config"
	"pulse/di"
	"pulse/job"
	"pulse/rest"
	"pulse/utils/logger"
)

func main() {
	logger.InitLogger()
	logger.Logger.Info("starting pulse feed service")

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	container := di.NewApplicationComponents(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := job.NewScheduler(logger.Logger)
	if cfg.Feed.WarmerEnabled {
		warmer := job.NewFeedWarmer(container.FeedCache, container.AggregateFeedUsecase, logger.Logger)
		scheduler.Add(job.Job{
			Name:     "feed_warmer",
			Interval: cfg.Cache.FeedCacheExpiry,
			Timeout:  cfg.Feed.AggregateTimeout,
			Fn:       warmer.Run,
		})
		logger.Logger.Info("feed warmer enabled", "interval", cfg.Cache.FeedCacheExpiry)
	}
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	rest.RegisterRoutes(e, container)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("server shutdown failed", "error", err)
	}
	scheduler.Shutdown()

	logger.Logger.Info("stopped")
}
