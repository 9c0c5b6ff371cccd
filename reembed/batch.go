package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/worklens/ai"
	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/storage"
)

// BatchProcessor handles embedding generation for batches of works.
type BatchProcessor struct {
	repo           storage.WorkRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.WorkRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process generates title embeddings for a batch of works and updates them
// in the database. Vectors are normalized after embedding to ensure
// compatibility with cosine similarity.
func (bp *BatchProcessor) Process(ctx context.Context, works []*core.Work) error {
	if len(works) == 0 {
		return nil
	}

	titles := make([]string, len(works))
	for i, work := range works {
		titles[i] = core.NormalizeTitle(work.Title)
	}

	// Generate embeddings with retry
	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, titles)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(works) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(works), len(embeddings))
	}

	for i := range works {
		works[i].Vector = NormalizeVector(embeddings[i])
	}

	_, err = bp.repo.UpdateWorks(ctx, works...)
	if err != nil {
		return fmt.Errorf("failed to update works: %w", err)
	}

	return nil
}
