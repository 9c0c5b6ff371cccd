package ingest

import "errors"

var (
	// ErrWorkRepositoryRequired is returned when a work repository is not provided.
	ErrWorkRepositoryRequired = errors.New("work repository required")

	// ErrEmbeddingMismatch is returned when the embedder yields a
	// different number of vectors than requested.
	ErrEmbeddingMismatch = errors.New("embedding result count mismatch")
)
