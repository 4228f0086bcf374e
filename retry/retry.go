// Package retry implements an exponential backoff retry policy with jitter.
// Every source adapter shares this one policy instead of hand-rolled loops.
package retry

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"
)

type RetryConfig struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	JitterFactor  float64
}

// ErrorClassifier decides whether a failed attempt should be retried.
type ErrorClassifier func(error) bool

// RetryAll treats every error as retryable.
func RetryAll(error) bool { return true }

type Retrier struct {
	config      RetryConfig
	isRetryable ErrorClassifier
	logger      *slog.Logger
}

func NewRetrier(config RetryConfig, classifier ErrorClassifier, logger *slog.Logger) *Retrier {
	if classifier == nil {
		classifier = RetryAll
	}
	return &Retrier{
		config:      config,
		isRetryable: classifier,
		logger:      logger,
	}
}

// Do runs operation up to MaxAttempts times. The operation itself validates
// its result and returns an error for anything unusable (a 200 with an empty
// body is still a failure for retry purposes). No wait happens after the
// final attempt; waits are cancellable through ctx.
func (r *Retrier) Do(ctx context.Context, operation func() error) error {
	var lastErr error
	attempts := 0

	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		attempts = attempt
		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				r.logger.Info("operation succeeded after retry", "attempt", attempt)
			}
			return nil
		}

		retryable := r.isRetryable(lastErr)
		r.logger.Warn("operation attempt failed",
			"attempt", attempt,
			"max_attempts", r.config.MaxAttempts,
			"error", lastErr,
			"retryable", retryable)

		if attempt == r.config.MaxAttempts || !retryable {
			break
		}

		delay := r.delayFor(attempt)
		select {
		case <-ctx.Done():
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", attempts, lastErr)
}

func (r *Retrier) delayFor(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.BackoffFactor, float64(attempt-1))
	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	// ジッター追加（サンダリングハード防止）
	jitter := 1.0 + (rand.Float64()-0.5)*r.config.JitterFactor
	delay *= jitter

	return time.Duration(delay)
}
