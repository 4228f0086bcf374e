package domain

// ServeState identifies which rung of the degradation ladder produced the
// response for a feed request.
type ServeState string

const (
	// ServedCache means the cached entry was still fresh.
	ServedCache ServeState = "cache"
	// ServedFresh means a new aggregation completed and was installed.
	ServedFresh ServeState = "fresh"
	// ServedStaleOnError means aggregation failed but an expired entry existed.
	ServedStaleOnError ServeState = "stale_on_error"
	// ServedFallbackOnly means aggregation failed with no prior entry; the
	// response carries static fallback content only.
	ServedFallbackOnly ServeState = "fallback_only"
)
