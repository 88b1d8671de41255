package errors

// ValidationError represents a validation error with a field and message
type ValidationError struct {
	Field   string
	Message string
}

// UpstreamError represents a failure while producing a value from the
// upstream source. A cache miss is not an error; only the production
// itself can fail.
type UpstreamError struct {
	Message string
	Cause   error
}
