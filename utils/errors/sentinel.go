package errors

import "errors"

// Sentinel errors usable with errors.Is() across layers.
var (
	ErrNoValidItems               = errors.New("response contained no valid items")
	ErrExternalServiceUnavailable = errors.New("external service unavailable")
	ErrOperationTimeout           = errors.New("operation timeout")
	ErrRelayUnavailable           = errors.New("relay unavailable")
)

// IsNoValidItems checks whether an upstream response parsed but held nothing usable.
func IsNoValidItems(err error) bool {
	return errors.Is(err, ErrNoValidItems)
}

// IsExternalServiceError checks whether an error represents an upstream outage.
func IsExternalServiceError(err error) bool {
	return errors.Is(err, ErrExternalServiceUnavailable)
}

// IsTimeoutError checks whether an error represents a timeout condition.
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrOperationTimeout)
}
