package ingest

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/worklens/ai"
	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/storage"
)

// Pipeline orchestrates the ingestion of candidate works.
// Works are stored immediately; title embeddings are generated on a
// worker pool so callers never wait on the embedding backend.
type Pipeline struct {
	works         storage.WorkRepository
	embedder      ai.Embedder
	embeddingPool *ants.Pool
	inFlight      sync.WaitGroup
	logger        *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithEmbedder enables title embedding for ingested works.
// Without one, works are stored without vectors and similarity search
// falls back to lexical matching.
func WithEmbedder(embedder ai.Embedder) Option {
	return func(p *Pipeline) error {
		p.embedder = embedder
		return nil
	}
}

// WithPoolSize sets the worker pool size for embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.embeddingPool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger.With("component", "ingest")
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(works storage.WorkRepository, opts ...Option) (*Pipeline, error) {
	if works == nil {
		return nil, ErrWorkRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		works:         works,
		embeddingPool: pool,
		logger:        slog.Default().With("component", "ingest"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest stores works and schedules title embedding for them.
// Embedding errors are logged, not returned; the works stay usable
// through lexical matching.
func (p *Pipeline) Ingest(ctx context.Context, works ...*core.Work) ([]*core.Work, error) {
	added, err := p.works.AddWorks(ctx, works...)
	if err != nil {
		return nil, err
	}

	if len(added) == 0 || p.embedder == nil {
		return added, nil
	}

	ids := make([]core.ID, len(added))
	for i, work := range added {
		ids[i] = work.Id
	}

	p.inFlight.Add(1)
	task := func() {
		defer p.inFlight.Done()
		if err := p.embed(context.Background(), ids...); err != nil {
			p.logger.Error("error embedding titles", "err", err)
		}
	}
	if err := p.embeddingPool.Submit(task); err != nil {
		// Pool unavailable: embed inline rather than drop the batch.
		task()
	}

	return added, nil
}

// embed generates and stores title embeddings for the given works.
func (p *Pipeline) embed(ctx context.Context, ids ...core.ID) error {
	works, err := p.works.GetWorks(ctx, ids...)
	if err != nil {
		return err
	}
	if len(works) == 0 {
		return nil
	}

	titles := make([]string, len(works))
	for i, work := range works {
		titles[i] = core.NormalizeTitle(work.Title)
	}

	p.logger.Debug("generating title embeddings", "works", len(titles))
	embeddings, err := p.embedder.EmbedTexts(ctx, titles)
	if err != nil {
		return err
	}
	if len(embeddings) != len(works) {
		return ErrEmbeddingMismatch
	}

	for i := range embeddings {
		works[i].Vector = embeddings[i]
	}

	_, err = p.works.UpdateWorks(ctx, works...)
	return err
}

// Wait blocks until all scheduled embedding work has finished.
func (p *Pipeline) Wait() {
	p.inFlight.Wait()
}

// Release releases the worker pool after draining in-flight work.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	p.inFlight.Wait()
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
}
