package reembed

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when a retry is requested with
	// zero or negative attempts.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)
