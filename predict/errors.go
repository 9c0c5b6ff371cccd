package predict

import "errors"

var (
	// ErrExtractorRequired indicates a constructor was called without a
	// feature extractor.
	ErrExtractorRequired = errors.New("feature extractor is required")

	// ErrPredictorRequired indicates a Trainer was created without a
	// predictor.
	ErrPredictorRequired = errors.New("predictor is required")

	// ErrIncompatibleState indicates a persisted model state does not
	// match the current feature schema.
	ErrIncompatibleState = errors.New("incompatible model state")
)
