package logger

import (
	"context"
	"log/slog"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	SourceKey    ContextKey = "source"
)

// ContextLogger decorates log entries with request-scoped values.
type ContextLogger struct {
	logger *slog.Logger
}

func NewContextLogger(logger *slog.Logger) *ContextLogger {
	return &ContextLogger{logger: logger}
}

// WithContext returns a logger carrying whatever context values are present.
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	args := make([]any, 0, 4)

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		args = append(args, "request_id", requestID)
	}
	if source, ok := ctx.Value(SourceKey).(string); ok {
		args = append(args, "source", source)
	}

	return cl.logger.With(args...)
}
