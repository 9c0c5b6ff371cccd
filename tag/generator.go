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

package tag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/predict"
	"github.com/poiesic/worklens/rules"
)

// Fusion weights for blending rule and model probabilities.
const (
	ruleWeight = 0.6
	mlWeight   = 0.4

	// highCertainty is the rule confidence at which the rule status
	// wins outright and the model only informs confidence.
	highCertainty = 0.8
)

// statusProbabilities maps a rule status onto the public domain
// probability scale the model predicts on.
var statusProbabilities = map[core.CopyrightStatus]float64{
	core.StatusPublicDomain:  0.95,
	core.StatusExpired:       0.9,
	core.StatusLikelyExpired: 0.7,
	core.StatusUnknown:       0.5,
	core.StatusLikelyActive:  0.3,
	core.StatusActive:        0.1,
}

var titleCaser = cases.Title(language.English)

// Generator produces smart copyright tags from rule analysis and
// model predictions.
type Generator struct {
	engine    *rules.Engine
	predictor *predict.Predictor
	pool      *ants.Pool
	logger    *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator) error

// WithPredictor attaches the statistical predictor. Without one the
// generator produces rule-only tags.
func WithPredictor(predictor *predict.Predictor) Option {
	return func(g *Generator) error {
		g.predictor = predictor
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger.With("component", "tag-generator")
		return nil
	}
}

// NewGenerator creates a tag generator over the given rule engine.
func NewGenerator(engine *rules.Engine, opts ...Option) (*Generator, error) {
	if engine == nil {
		return nil, ErrEngineRequired
	}

	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		engine: engine,
		pool:   pool,
		logger: slog.Default().With("component", "tag-generator"),
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			pool.Release()
			return nil, err
		}
	}

	return g, nil
}

// Release frees the prediction worker pool.
func (g *Generator) Release() {
	g.pool.Release()
}

// Generate builds a complete smart tag for the work in the given
// jurisdiction. Unknown jurisdictions fall back to the default; a
// failing or missing predictor degrades to a rule-only tag.
func (g *Generator) Generate(ctx context.Context, work *core.Work, jurisdiction string) (*core.SmartTag, error) {
	if work == nil {
		return nil, fmt.Errorf("%w: work is nil", core.ErrInvalidWork)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	effective := g.resolveJurisdiction(jurisdiction)

	// Rule evaluation runs inline while the prediction runs on the
	// worker pool.
	var ml *predict.Prediction
	var wg sync.WaitGroup
	if g.predictor != nil {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			ml = g.predict(work, effective)
		}
		if err := g.pool.Submit(task); err != nil {
			task()
		}
	}

	analysis, err := g.engine.Evaluate(work, effective)
	wg.Wait()
	if err != nil {
		return nil, err
	}

	status, confidence := combine(analysis, ml)
	uses := rules.AllowedUses(status)
	display := displayFor(status)

	return &core.SmartTag{
		Title:              work.Title,
		Creator:            work.Creator,
		PublicationYear:    work.PublicationYear,
		ContentType:        core.CanonicalContentType(string(work.ContentType)),
		Status:             status,
		StatusEmoji:        display.Emoji,
		StatusText:         display.Text,
		StatusColor:        display.Color,
		ExpiryYear:         analysis.Expiry.Year,
		ExpiryTimeline:     expiryTimeline(analysis.Expiry),
		AllowedUses:        uses,
		AllowedUsesSummary: summarizeUses(uses),
		ConfidenceScore:    confidence,
		ConfidenceLevel:    confidenceLevel(confidence),
		RiskLevel:          riskLevel(display.Color),
		AIReasoning:        composeReasoning(work, analysis, ml),
		Disclaimer:         disclaimer(analysis.Jurisdiction),
		GeneratedAt:        time.Now().UTC(),
		Jurisdiction:       analysis.Jurisdiction,
	}, nil
}

// resolveJurisdiction maps an unknown code to the engine default so
// rule evaluation and prediction agree on the jurisdiction.
func (g *Generator) resolveJurisdiction(jurisdiction string) string {
	if jurisdiction == "" {
		return ""
	}
	if _, err := g.engine.Jurisdiction(jurisdiction); err != nil {
		g.logger.Warn("unknown jurisdiction, using default", "jurisdiction", jurisdiction)
		return ""
	}
	return jurisdiction
}

// predict runs the statistical model; a failure degrades to a
// rule-only tag.
func (g *Generator) predict(work *core.Work, jurisdiction string) *predict.Prediction {
	prediction, err := g.predictor.Predict(work, jurisdiction)
	if err != nil {
		g.logger.Warn("prediction unavailable, generating rule-only tag",
			"title", work.Title, "error", err)
		return nil
	}
	return prediction
}

// combine fuses the rule outcome with the model prediction.
func combine(analysis *rules.Analysis, ml *predict.Prediction) (core.CopyrightStatus, float64) {
	if ml == nil {
		return analysis.Status, analysis.Confidence
	}

	// At or above highCertainty the rule status stands on its own and
	// its confidence dominates the blend.
	status := analysis.Status
	if analysis.Confidence < highCertainty {
		probability := ruleWeight*statusProbability(analysis.Status) +
			mlWeight*ml.ProbabilityPublicDomain
		status = thresholdStatus(probability)
	}

	var confidence float64
	if analysis.Confidence >= highCertainty {
		confidence = 0.7*analysis.Confidence + 0.3*ml.Confidence
	} else {
		confidence = 0.5*analysis.Confidence + 0.5*ml.Confidence
	}
	return status, confidence
}

func statusProbability(status core.CopyrightStatus) float64 {
	if p, ok := statusProbabilities[status]; ok {
		return p
	}
	return 0.5
}

// thresholdStatus maps a public domain probability back to a status.
func thresholdStatus(probability float64) core.CopyrightStatus {
	switch {
	case probability >= 0.85:
		return core.StatusPublicDomain
	case probability >= 0.65:
		return core.StatusLikelyExpired
	case probability >= 0.35:
		return core.StatusUnknown
	case probability >= 0.15:
		return core.StatusLikelyActive
	default:
		return core.StatusActive
	}
}

// composeReasoning assembles the tag's narrative from both analyses.
func composeReasoning(work *core.Work, analysis *rules.Analysis, ml *predict.Prediction) string {
	var parts []string

	if work.HasCreator() {
		parts = append(parts, fmt.Sprintf("Analyzing %q by %s.", work.Title, work.Creator))
	} else {
		parts = append(parts, fmt.Sprintf("Analyzing %q.", work.Title))
	}

	if ml != nil && ml.Reasoning != "" {
		parts = append(parts, "ML Analysis: "+ml.Reasoning)
	}
	if analysis.Reasoning != "" {
		parts = append(parts, "Legal Analysis: "+analysis.Reasoning)
	}
	if len(analysis.Uncertainties) > 0 {
		parts = append(parts, "Uncertainties: "+strings.Join(analysis.Uncertainties, ", ")+".")
	}

	if ml != nil && len(ml.Contributions) > 0 {
		factors := make([]string, 0, 3)
		for i, c := range ml.Contributions {
			if i == 3 {
				break
			}
			factors = append(factors, titleCaser.String(strings.ReplaceAll(c.Feature, "_", " ")))
		}
		parts = append(parts, "Key factors considered: "+strings.Join(factors, ", ")+".")
	}

	switch {
	case analysis.Confidence >= 0.8:
		parts = append(parts, "Analysis confidence is high based on available data.")
	case analysis.Confidence >= 0.6:
		parts = append(parts, "Analysis confidence is moderate; some data may be incomplete.")
	default:
		parts = append(parts, "Analysis confidence is low due to limited or uncertain data.")
	}

	if ml == nil {
		parts = append(parts, "Statistical model unavailable; this tag is rule-based only.")
	}

	return strings.Join(parts, " ")
}
