package tag

import "errors"

var (
	// ErrEngineRequired is returned when a rule engine is not provided.
	ErrEngineRequired = errors.New("rule engine required")
)
