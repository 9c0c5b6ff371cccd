// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package predict

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/features"
)

// defaultFlushThreshold is the buffer size that triggers a background
// training pass.
const defaultFlushThreshold = 100

// seedWork is one bootstrap example with a known status.
type seedWork struct {
	work   core.Work
	status core.CopyrightStatus
}

// bootstrapSeeds are well-known works with unambiguous statuses used
// to calibrate a fresh model.
var bootstrapSeeds = []seedWork{
	{core.Work{Title: "Pride and Prejudice", Creator: "Jane Austen", PublicationYear: 1813, CreatorDeathYear: 1817, ContentType: core.ContentTypeBook}, core.StatusPublicDomain},
	{core.Work{Title: "Romeo and Juliet", Creator: "William Shakespeare", PublicationYear: 1597, CreatorDeathYear: 1616, ContentType: core.ContentTypeBook}, core.StatusPublicDomain},
	{core.Work{Title: "Symphony No. 5", Creator: "Ludwig van Beethoven", PublicationYear: 1808, CreatorDeathYear: 1827, ContentType: core.ContentTypeMusic}, core.StatusPublicDomain},
	{core.Work{Title: "The Adventures of Sherlock Holmes", Creator: "Arthur Conan Doyle", PublicationYear: 1892, CreatorDeathYear: 1930, ContentType: core.ContentTypeBook}, core.StatusPublicDomain},
	{core.Work{Title: "A Tale of Two Cities", Creator: "Charles Dickens", PublicationYear: 1859, CreatorDeathYear: 1870, ContentType: core.ContentTypeBook}, core.StatusPublicDomain},
	{core.Work{Title: "Recent Fiction Novel", Creator: "Living Author", PublicationYear: 2015, ContentType: core.ContentTypeBook}, core.StatusActive},
	{core.Work{Title: "Modern Pop Song", Creator: "Current Artist", PublicationYear: 2020, ContentType: core.ContentTypeMusic}, core.StatusActive},
	{core.Work{Title: "Contemporary Film", Creator: "Studio Director", PublicationYear: 2018, ContentType: core.ContentTypeFilm}, core.StatusActive},
}

// TrainerStatus reports the trainer's buffer and model state.
type TrainerStatus struct {
	Pending  int
	Training bool
	Model    Stats
}

// Trainer accumulates labeled examples and feeds them to a Predictor
// in background batches.
type Trainer struct {
	predictor *Predictor
	extractor *features.Extractor

	mu        sync.Mutex
	pending   []core.TrainingExample
	threshold int
	training  bool

	pool   *ants.Pool
	logger *slog.Logger
}

// TrainerOption configures a Trainer.
type TrainerOption func(*Trainer) error

// WithFlushThreshold sets the buffer size that triggers a background
// flush.
func WithFlushThreshold(n int) TrainerOption {
	return func(t *Trainer) error {
		if n < 1 {
			return fmt.Errorf("flush threshold must be at least 1, got %d", n)
		}
		t.threshold = n
		return nil
	}
}

// WithTrainerLogger sets the logger used by the trainer.
func WithTrainerLogger(logger *slog.Logger) TrainerOption {
	return func(t *Trainer) error {
		t.logger = logger.With("component", "trainer")
		return nil
	}
}

// NewTrainer creates a trainer for the given predictor.
func NewTrainer(predictor *Predictor, extractor *features.Extractor, opts ...TrainerOption) (*Trainer, error) {
	if predictor == nil {
		return nil, ErrPredictorRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	// A single worker keeps flushes sequential.
	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, fmt.Errorf("failed to create trainer pool: %w", err)
	}

	t := &Trainer{
		predictor: predictor,
		extractor: extractor,
		threshold: defaultFlushThreshold,
		pool:      pool,
		logger:    slog.Default().With("component", "trainer"),
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			pool.Release()
			return nil, err
		}
	}
	return t, nil
}

// Add buffers one labeled example. Uncertain statuses carry no usable
// label and are dropped. A full buffer triggers an async flush.
func (t *Trainer) Add(work *core.Work, status core.CopyrightStatus, jurisdiction, source string) error {
	if work == nil {
		return fmt.Errorf("%w: work is nil", core.ErrInvalidWork)
	}

	label, ok := statusLabel(status)
	if !ok {
		t.logger.Debug("skipping uncertain label", "title", work.Title, "status", status)
		return nil
	}

	example := core.TrainingExample{
		Features:     t.extractor.Extract(work, jurisdiction),
		PublicDomain: label,
		Weight:       1.0,
		Source:       source,
	}

	t.mu.Lock()
	t.pending = append(t.pending, example)
	full := len(t.pending) >= t.threshold && !t.training
	if full {
		t.training = true
	}
	t.mu.Unlock()

	if full {
		if err := t.pool.Submit(t.flushPending); err != nil {
			t.mu.Lock()
			t.training = false
			t.mu.Unlock()
			return fmt.Errorf("failed to schedule training flush: %w", err)
		}
	}
	return nil
}

// Flush trains on all buffered examples synchronously.
func (t *Trainer) Flush() error {
	t.mu.Lock()
	batch := t.pending
	t.pending = nil
	t.mu.Unlock()

	return t.trainBatch(batch)
}

// flushPending is the background flush entry point.
func (t *Trainer) flushPending() {
	defer func() {
		t.mu.Lock()
		t.training = false
		t.mu.Unlock()
	}()

	if err := t.Flush(); err != nil {
		t.logger.Error("background training flush failed", "error", err)
	}
}

func (t *Trainer) trainBatch(batch []core.TrainingExample) error {
	if len(batch) == 0 {
		return nil
	}
	for _, example := range batch {
		if err := t.predictor.Train(example); err != nil {
			return fmt.Errorf("training failed: %w", err)
		}
	}
	t.logger.Info("trained batch", "examples", len(batch))
	return nil
}

// Bootstrap trains the model on a fixed set of well-known works with
// unambiguous statuses. Safe to call on a fresh model before any user
// feedback exists.
func (t *Trainer) Bootstrap() error {
	batch := make([]core.TrainingExample, 0, len(bootstrapSeeds))
	for _, seed := range bootstrapSeeds {
		label, _ := statusLabel(seed.status)
		batch = append(batch, core.TrainingExample{
			Features:     t.extractor.Extract(&seed.work, ""),
			PublicDomain: label,
			Weight:       1.0,
			Source:       "bootstrap",
		})
	}
	if err := t.trainBatch(batch); err != nil {
		return err
	}
	t.logger.Info("bootstrap complete", "seeds", len(batch))
	return nil
}

// Status reports the trainer's buffer and the model's statistics.
func (t *Trainer) Status() TrainerStatus {
	t.mu.Lock()
	pending := len(t.pending)
	training := t.training
	t.mu.Unlock()

	return TrainerStatus{
		Pending:  pending,
		Training: training,
		Model:    t.predictor.Stats(),
	}
}

// Release shuts down the background worker. Buffered examples that
// have not been flushed are discarded.
func (t *Trainer) Release() {
	t.pool.Release()
}

// statusLabel maps a copyright status to a binary training label.
// Uncertain statuses return ok=false and are not trained on.
func statusLabel(status core.CopyrightStatus) (publicDomain bool, ok bool) {
	switch status {
	case core.StatusPublicDomain, core.StatusExpired:
		return true, true
	case core.StatusActive, core.StatusLikelyActive:
		return false, true
	default:
		return false, false
	}
}
