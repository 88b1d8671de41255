package errors

// Error code constants used in API responses
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeRateLimited = "RATE_LIMIT_EXCEEDED"
	CodeQueueFull   = "QUEUE_FULL"
	CodeUpstream    = "UPSTREAM_ERROR"
	CodeInternal    = "INTERNAL_ERROR"
)
