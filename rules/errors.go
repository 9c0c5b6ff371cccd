package rules

import "errors"

var (
	// ErrUnknownJurisdiction indicates the requested jurisdiction code
	// has no row in the duration table.
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

	// ErrWorkRequired indicates Evaluate was called with a nil work.
	ErrWorkRequired = errors.New("work is required")
)
