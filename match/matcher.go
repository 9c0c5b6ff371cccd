package match

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/worklens/ai"
	"github.com/poiesic/worklens/core"
)

// embedBatchSize is the number of titles sent per embedding request
// during prewarming.
const embedBatchSize = 32

// Matcher scores the similarity between queries and work titles.
// It caches title embeddings in memory and falls back to lexical
// tf-idf vectors when no embedding backend is configured or a
// backend call fails.
type Matcher struct {
	embedder ai.Embedder // nil = lexical only
	lexical  *tfidf
	pool     *ants.Pool

	mu    sync.RWMutex
	cache map[string][]float32 // normalized title -> embedding

	logger *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithPoolSize sets the worker pool size for batch embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(m *Matcher) error {
		if size < 1 {
			size = 1
		}
		if m.pool != nil {
			m.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		m.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger.With("component", "matcher")
		return nil
	}
}

// NewMatcher creates a matcher. A nil embedder is allowed: the matcher
// then scores on lexical similarity alone.
func NewMatcher(embedder ai.Embedder, opts ...Option) (*Matcher, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	m := &Matcher{
		embedder: embedder,
		lexical:  newTFIDF(),
		pool:     pool,
		cache:    make(map[string][]float32),
		logger:   slog.Default().With("component", "matcher"),
	}

	for _, opt := range opts {
		if optErr := opt(m); optErr != nil {
			m.Release()
			return nil, optErr
		}
	}

	return m, nil
}

// SemanticAvailable reports whether an embedding backend is configured.
func (m *Matcher) SemanticAvailable() bool {
	return m.embedder != nil
}

// UpdateCorpus feeds titles into the lexical document frequency table.
// Call when works are added so fallback vectors stay informative.
func (m *Matcher) UpdateCorpus(titles ...string) {
	normalized := make([]string, len(titles))
	for i, t := range titles {
		normalized[i] = core.NormalizeTitle(t)
	}
	m.lexical.AddDocuments(normalized...)
}

// Semantic returns the semantic similarity between two texts in [0, 1].
// With an embedding backend the score is a cosine over cached
// embeddings; otherwise both texts are compared in tf-idf space. The
// two spaces are never mixed within one comparison.
func (m *Matcher) Semantic(ctx context.Context, a, b string) float64 {
	na := core.NormalizeTitle(a)
	nb := core.NormalizeTitle(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}

	if m.embedder != nil {
		va, okA := m.embedding(ctx, na)
		vb, okB := m.embedding(ctx, nb)
		if okA && okB {
			return cosineSimilarity(va, vb)
		}
		// fall through to lexical when either embedding failed
	}

	return cosineSimilarity(m.lexical.Vector(na), m.lexical.Vector(nb))
}

// Fuzzy returns the combined fuzzy similarity between two texts in [0, 1].
func (m *Matcher) Fuzzy(a, b string) float64 {
	return CombinedFuzzy(core.NormalizeTitle(a), core.NormalizeTitle(b))
}

// Score rates a title against a query in [0, 1].
func (m *Matcher) Score(ctx context.Context, query, title string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return m.Semantic(ctx, query, title), nil
}

// BatchScore rates every title against the query. Scores come back in
// title order.
func (m *Matcher) BatchScore(ctx context.Context, query string, titles []string) ([]float64, error) {
	m.PrewarmTitles(ctx, titles)

	scores := make([]float64, len(titles))
	for i, title := range titles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		scores[i] = m.Semantic(ctx, query, title)
	}
	return scores, nil
}

// embedding returns the cached embedding for a normalized text,
// requesting it from the backend on a cache miss.
func (m *Matcher) embedding(ctx context.Context, text string) ([]float32, bool) {
	m.mu.RLock()
	vec, ok := m.cache[text]
	m.mu.RUnlock()
	if ok {
		return vec, true
	}

	vec, err := m.embedder.EmbedText(ctx, text)
	if err != nil || len(vec) == 0 {
		m.logger.Warn("embedding failed, using lexical fallback", "text", text, "err", err)
		return nil, false
	}

	m.mu.Lock()
	m.cache[text] = vec
	m.mu.Unlock()
	return vec, true
}

// PrewarmTitles embeds titles in parallel batches and fills the cache.
// Failed batches are logged and skipped; prewarming is best-effort.
func (m *Matcher) PrewarmTitles(ctx context.Context, titles []string) {
	if m.embedder == nil || len(titles) == 0 {
		return
	}

	var missing []string
	m.mu.RLock()
	for _, t := range titles {
		norm := core.NormalizeTitle(t)
		if norm == "" {
			continue
		}
		if _, ok := m.cache[norm]; !ok {
			missing = append(missing, norm)
		}
	}
	m.mu.RUnlock()

	var wg sync.WaitGroup
	for start := 0; start < len(missing); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(missing) {
			end = len(missing)
		}
		batch := missing[start:end]

		wg.Add(1)
		err := m.pool.Submit(func() {
			defer wg.Done()
			vecs, err := m.embedder.EmbedTexts(ctx, batch)
			if err != nil || len(vecs) != len(batch) {
				m.logger.Warn("prewarm batch failed", "size", len(batch), "err", err)
				return
			}
			m.mu.Lock()
			for i, norm := range batch {
				m.cache[norm] = vecs[i]
			}
			m.mu.Unlock()
		})
		if err != nil {
			wg.Done()
			m.logger.Warn("prewarm submit failed", "err", err)
		}
	}
	wg.Wait()
}

// CacheSize returns the number of cached embeddings.
func (m *Matcher) CacheSize() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}

// Release releases the worker pool. The matcher should not be used
// after calling Release.
func (m *Matcher) Release() {
	if m.pool != nil {
		m.pool.Release()
	}
}
