// Package errors provides structured error handling for the pulse backend.
// It defines error types with codes, messages, causes, and contextual
// information shared across the application layers.
package errors

import (
	"fmt"
	"log/slog"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

// Error code constants for categorizing application errors.
const (
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeExternalAPI ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeTimeout     ErrorCode = "TIMEOUT_ERROR"
	ErrCodeRateLimit   ErrorCode = "RATE_LIMIT_ERROR"
	ErrCodeAggregation ErrorCode = "AGGREGATION_ERROR"
	ErrCodeUnknown     ErrorCode = "UNKNOWN_ERROR"
)

// AppError is a structured application error with code, message, cause, and
// context. It implements the error interface and supports unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Context: context}
}

// ExternalAPIError creates an AppError for upstream call failures.
func ExternalAPIError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeExternalAPI, Message: message, Cause: cause, Context: context}
}

// TimeoutError creates an AppError for timeout-related failures.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeTimeout, Message: message, Cause: cause, Context: context}
}

// RateLimitError creates an AppError for rate limiting violations.
func RateLimitError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeRateLimit, Message: message, Cause: cause, Context: context}
}

// AggregationError creates an AppError for processing faults inside the
// aggregation pipeline (as opposed to absorbed source failures).
func AggregationError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeAggregation, Message: message, Cause: cause, Context: context}
}

// UnknownError creates an AppError for unclassified errors.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeUnknown, Message: message, Cause: cause, Context: context}
}

// LogError logs an AppError with structured context.
func LogError(logger *slog.Logger, err error, operation string) {
	if logger == nil {
		return
	}

	if appErr, ok := err.(*AppError); ok {
		args := []any{"operation", operation, "code", appErr.Code, "message", appErr.Message}
		if appErr.Cause != nil {
			args = append(args, "cause", appErr.Cause)
		}
		for k, v := range appErr.Context {
			args = append(args, k, v)
		}
		logger.Error("application error", args...)
		return
	}

	logger.Error("unhandled error", "operation", operation, "error", err)
}
