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


package worklens

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/features"
	"github.com/poiesic/worklens/match"
	"github.com/poiesic/worklens/predict"
	"github.com/poiesic/worklens/rules"
	"github.com/poiesic/worklens/search"
	"github.com/poiesic/worklens/spell"
	"github.com/poiesic/worklens/tag"
)

const defaultMaxResults = 10

// ErrNoMatches indicates that a query resolved to an empty candidate
// pool or produced no results above the score floor.
var ErrNoMatches = errors.New("no matching works found")

// Engine wires the full resolution pipeline: spell correction,
// similarity matching, ranking, feature extraction, rule evaluation,
// prediction, and tag generation. Engines share the Database's
// repositories; the only mutable state is the spell vocabulary and
// the model snapshot, each safe for concurrent use.
type Engine struct {
	db           *Database
	speller      *spell.Corrector
	matcher      *match.Matcher
	ranker       *search.Ranker
	extractor    *features.Extractor
	rules        *rules.Engine
	predictor    *predict.Predictor
	trainer      *predict.Trainer
	generator    *tag.Generator
	jurisdiction string
	maxResults   int
	logger       *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine) error

// WithJurisdiction sets the default jurisdiction code for tag
// generation. Default is "US".
func WithJurisdiction(code string) EngineOption {
	return func(e *Engine) error {
		e.jurisdiction = code
		return nil
	}
}

// WithMaxResults bounds the number of ranked results per search.
func WithMaxResults(n int) EngineOption {
	return func(e *Engine) error {
		if n < 1 {
			return fmt.Errorf("max results must be at least 1, got %d", n)
		}
		e.maxResults = n
		return nil
	}
}

// WithEngineLogger sets a custom logger.
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger.With("component", "engine")
		return nil
	}
}

// NewEngine builds the pipeline on top of the database: restores
// persisted vocabulary and model state, loads the jurisdiction table
// (seeding defaults on first run), and warms the spelling and
// matching corpora from stored titles.
func (db *Database) NewEngine(ctx context.Context, opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		db:         db,
		maxResults: defaultMaxResults,
		logger:     slog.Default().With("component", "engine"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	e.speller = spell.NewCorrector()
	if snapshot, err := db.vocabularyRepo.LoadVocabulary(ctx); err != nil {
		return nil, err
	} else if snapshot != nil {
		e.speller.Restore(snapshot)
	}

	matcher, err := match.NewMatcher(db.embedder)
	if err != nil {
		return nil, err
	}
	e.matcher = matcher

	ranker, err := search.NewRanker(matcher, search.WithSpeller(e.speller))
	if err != nil {
		matcher.Release()
		return nil, err
	}
	e.ranker = ranker

	rows, err := db.jurisdictionRepo.ListJurisdictions(ctx)
	if err != nil {
		matcher.Release()
		return nil, err
	}
	if len(rows) == 0 {
		rows = rules.DefaultJurisdictions()
		if err := db.jurisdictionRepo.PutJurisdictions(ctx, rows...); err != nil {
			matcher.Release()
			return nil, err
		}
		e.logger.Info("seeded default jurisdiction table", "rows", len(rows))
	}
	e.rules = rules.NewEngine(rules.WithJurisdictions(rows...))

	e.extractor = features.NewExtractor()
	predictor, err := predict.NewPredictor(e.extractor)
	if err != nil {
		matcher.Release()
		return nil, err
	}
	e.predictor = predictor

	state, err := db.modelRepo.LoadModelState(ctx)
	if err != nil {
		matcher.Release()
		return nil, err
	}

	trainer, err := predict.NewTrainer(predictor, e.extractor)
	if err != nil {
		matcher.Release()
		return nil, err
	}
	e.trainer = trainer

	if state != nil {
		if err := predictor.Restore(state); err != nil {
			// Incompatible schema: start over from the bootstrap set.
			e.logger.Warn("stored model state incompatible, retraining from seeds", "error", err)
			state = nil
		}
	}
	if state == nil {
		if err := trainer.Bootstrap(); err != nil {
			trainer.Release()
			matcher.Release()
			return nil, err
		}
	}

	generator, err := tag.NewGenerator(e.rules, tag.WithPredictor(predictor))
	if err != nil {
		trainer.Release()
		matcher.Release()
		return nil, err
	}
	e.generator = generator

	// Warm the spelling vocabulary and match corpus from stored titles.
	titles, err := db.workRepo.ListTitles(ctx)
	if err != nil {
		e.Close()
		return nil, err
	}
	if len(titles) > 0 {
		e.speller.AddKnownTitles(titles...)
		e.matcher.UpdateCorpus(titles...)
	}

	return e, nil
}

// Close persists learned state and releases worker pools.
func (e *Engine) Close() error {
	err := e.SaveState(context.Background())
	e.generator.Release()
	e.trainer.Release()
	e.matcher.Release()
	return err
}

// SaveState persists the vocabulary and model snapshots.
func (e *Engine) SaveState(ctx context.Context) error {
	if err := e.db.vocabularyRepo.SaveVocabulary(ctx, e.speller.Snapshot()); err != nil {
		return err
	}
	return e.db.modelRepo.SaveModelState(ctx, e.predictor.State())
}

// Search ranks stored works against a free-text query.
func (e *Engine) Search(ctx context.Context, query string) (*search.Ranking, error) {
	return e.SearchQuery(ctx, core.Query{Text: query})
}

// SearchQuery ranks stored works against a structured query. An empty
// session ID gets a generated one; the content type filter narrows
// the candidate pool.
func (e *Engine) SearchQuery(ctx context.Context, q core.Query) (*search.Ranking, error) {
	if q.SessionID == "" {
		q.SessionID = uuid.NewString()
	}

	pool, err := e.db.workRepo.ListWorks(ctx, q.ContentType, 0)
	if err != nil {
		return nil, err
	}

	ranking, err := e.ranker.Rank(ctx, q.Text, pool, e.maxResults)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("search complete",
		"session", q.SessionID,
		"query", q.Text,
		"corrected", ranking.CorrectedQuery,
		"pool", len(pool),
		"results", len(ranking.Results))
	return ranking, nil
}

// GenerateTag produces a smart tag for the work. An empty jurisdiction
// uses the engine default.
func (e *Engine) GenerateTag(ctx context.Context, work *core.Work, jurisdiction string) (*core.SmartTag, error) {
	if jurisdiction == "" {
		jurisdiction = e.jurisdiction
	}
	return e.generator.Generate(ctx, work, jurisdiction)
}

// Resolve runs the full pipeline: search, take the best match, tag it.
func (e *Engine) Resolve(ctx context.Context, query string) (*core.SmartTag, error) {
	ranking, err := e.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(ranking.Results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatches, query)
	}
	return e.GenerateTag(ctx, ranking.Results[0].Work, "")
}

// Feedback folds a confirmed selection back into the system: the
// speller learns the query-to-title correction and, when the caller
// supplies a verified status, the work becomes a training example.
func (e *Engine) Feedback(ctx context.Context, query, selectedTitle string, status core.CopyrightStatus) error {
	e.speller.LearnFromSelection(query, selectedTitle)

	// Zero status means the caller confirmed the title only.
	if status != 0 {
		works, err := e.db.workRepo.FindByTitle(ctx, selectedTitle)
		if err != nil {
			return err
		}
		for _, work := range works {
			if err := e.trainer.Add(work, status, e.jurisdiction, "user_feedback"); err != nil {
				return err
			}
		}
	}

	return e.SaveState(ctx)
}

// ModelStatus reports training progress.
func (e *Engine) ModelStatus() predict.TrainerStatus {
	return e.trainer.Status()
}

// Speller exposes the spell corrector for direct suggestion queries.
func (e *Engine) Speller() *spell.Corrector {
	return e.speller
}
