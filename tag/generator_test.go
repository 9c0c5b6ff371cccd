package tag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/features"
	"github.com/poiesic/worklens/predict"
	"github.com/poiesic/worklens/rules"
)

func newTestGenerator(t *testing.T, withML bool) *Generator {
	t.Helper()
	engine := rules.NewEngine(rules.WithCurrentYear(2025))

	opts := []Option{}
	if withML {
		extractor := features.NewExtractor(features.WithCurrentYear(2025))
		predictor, err := predict.NewPredictor(extractor)
		require.NoError(t, err)
		opts = append(opts, WithPredictor(predictor))
	}

	g, err := NewGenerator(engine, opts...)
	require.NoError(t, err)
	t.Cleanup(g.Release)
	return g
}

func TestNewGenerator_RequiresEngine(t *testing.T) {
	_, err := NewGenerator(nil)
	assert.Equal(t, ErrEngineRequired, err)
}

func TestGenerate_PublicDomainWork(t *testing.T) {
	g := newTestGenerator(t, true)

	smartTag, err := g.Generate(context.Background(), &core.Work{
		Title:            "Pride and Prejudice",
		Creator:          "Jane Austen",
		PublicationYear:  1813,
		CreatorDeathYear: 1817,
		ContentType:      core.ContentTypeBook,
	}, "US")
	require.NoError(t, err)

	assert.Equal(t, core.StatusPublicDomain, smartTag.Status)
	assert.Equal(t, "🌍", smartTag.StatusEmoji)
	assert.Equal(t, "Public Domain - Free to Use", smartTag.StatusText)
	assert.Equal(t, "green", smartTag.StatusColor)
	assert.Equal(t, "Low", smartTag.RiskLevel)
	assert.GreaterOrEqual(t, smartTag.ConfidenceScore, 0.9)
	assert.Equal(t, "High", smartTag.ConfidenceLevel)
	assert.Equal(t, "US", smartTag.Jurisdiction)
	assert.False(t, smartTag.GeneratedAt.IsZero())

	// Everything is allowed for public domain works.
	require.Len(t, smartTag.AllowedUses, len(core.UseTypes))
	for _, u := range smartTag.AllowedUses {
		assert.True(t, u.Allowed)
	}
	for _, line := range smartTag.AllowedUsesSummary {
		assert.True(t, strings.HasPrefix(line, "✓"), "line %q", line)
	}

	assert.Contains(t, smartTag.AIReasoning, "Legal Analysis:")
	assert.Contains(t, smartTag.AIReasoning, "ML Analysis:")
	assert.Contains(t, smartTag.Disclaimer, "US copyright law")
}

func TestGenerate_ActiveWork(t *testing.T) {
	g := newTestGenerator(t, true)

	smartTag, err := g.Generate(context.Background(), &core.Work{
		Title:            "Modern Novel",
		Creator:          "Living Author",
		PublicationYear:  2015,
		CreatorDeathYear: 2020,
	}, "EU")
	require.NoError(t, err)

	// High-certainty rule outcome keeps its status regardless of the
	// model's probability.
	assert.Equal(t, core.StatusActive, smartTag.Status)
	assert.Equal(t, "❌", smartTag.StatusEmoji)
	assert.Equal(t, "red", smartTag.StatusColor)
	assert.Equal(t, "Very High", smartTag.RiskLevel)
	assert.Contains(t, smartTag.ExpiryTimeline, "Expires in")

	byUse := make(map[core.UseType]core.AllowedUse)
	for _, u := range smartTag.AllowedUses {
		byUse[u.Use] = u
	}
	assert.False(t, byUse[core.UseCommercial].Allowed)
	assert.True(t, byUse[core.UsePersonal].Allowed)
}

func TestGenerate_ExpiredTimeline(t *testing.T) {
	g := newTestGenerator(t, false)

	smartTag, err := g.Generate(context.Background(), &core.Work{
		Title:            "Collected Poems",
		CreatorDeathYear: 1900,
		PublicationYear:  1950,
	}, "EU")
	require.NoError(t, err)

	assert.Equal(t, core.StatusExpired, smartTag.Status)
	// Died 1900, 70-year term: expired 1970, 55 years before 2025.
	assert.Equal(t, "Expired 55 years ago", smartTag.ExpiryTimeline)
	assert.Equal(t, 1970, smartTag.ExpiryYear)
}

func TestGenerate_RuleOnlyWithoutPredictor(t *testing.T) {
	g := newTestGenerator(t, false)

	smartTag, err := g.Generate(context.Background(), &core.Work{
		Title:           "Mystery Manuscript",
		PublicationYear: 1950,
	}, "US")
	require.NoError(t, err)

	assert.Equal(t, core.StatusUnknown, smartTag.Status)
	assert.Contains(t, smartTag.AIReasoning, "rule-based only")
	assert.NotContains(t, smartTag.AIReasoning, "ML Analysis:")
}

func TestGenerate_BlendsWhenRulesUncertain(t *testing.T) {
	g := newTestGenerator(t, true)

	// Publication-only 1910 work: rules say likely_expired at 0.65,
	// below the certainty bar, so the model participates in the status.
	smartTag, err := g.Generate(context.Background(), &core.Work{
		Title:           "Edwardian Stories",
		PublicationYear: 1910,
	}, "US")
	require.NoError(t, err)

	assert.Contains(t, []core.CopyrightStatus{
		core.StatusPublicDomain, core.StatusLikelyExpired,
	}, smartTag.Status)
	assert.Contains(t, smartTag.AIReasoning, "Key factors considered:")
}

func TestGenerate_UnknownJurisdictionFallsBack(t *testing.T) {
	g := newTestGenerator(t, false)

	smartTag, err := g.Generate(context.Background(), &core.Work{
		Title:           "Some Work",
		PublicationYear: 1800,
	}, "ZZ")
	require.NoError(t, err)
	assert.Equal(t, "US", smartTag.Jurisdiction)
}

func TestGenerate_NilWork(t *testing.T) {
	g := newTestGenerator(t, false)

	_, err := g.Generate(context.Background(), nil, "US")
	assert.True(t, errors.Is(err, core.ErrInvalidWork))
}

func TestCombine_StatusProbabilityLadder(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		want        core.CopyrightStatus
	}{
		{"public domain", 0.9, core.StatusPublicDomain},
		{"likely expired", 0.7, core.StatusLikelyExpired},
		{"unknown", 0.5, core.StatusUnknown},
		{"likely active", 0.2, core.StatusLikelyActive},
		{"active", 0.05, core.StatusActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, thresholdStatus(tt.probability))
		})
	}
}

func TestCombine_HighCertaintyBoundary(t *testing.T) {
	// Exactly at the certainty bar the rule status must stand on its
	// own and its confidence must dominate, the same as above the bar.
	analysis := &rules.Analysis{Status: core.StatusLikelyActive, Confidence: 0.8}
	ml := &predict.Prediction{ProbabilityPublicDomain: 0.95, Confidence: 0.4}

	status, confidence := combine(analysis, ml)

	assert.Equal(t, core.StatusLikelyActive, status)
	assert.InDelta(t, 0.7*0.8+0.3*0.4, confidence, 1e-9)
}

func TestCompact(t *testing.T) {
	g := newTestGenerator(t, false)

	smartTag, err := g.Generate(context.Background(), &core.Work{
		Title:            "Romeo and Juliet",
		Creator:          "William Shakespeare",
		PublicationYear:  1597,
		CreatorDeathYear: 1616,
	}, "US")
	require.NoError(t, err)

	line := Compact(smartTag)
	assert.Contains(t, line, smartTag.StatusEmoji)
	assert.Contains(t, line, smartTag.StatusText)
	assert.Contains(t, line, smartTag.ExpiryTimeline)
	assert.Contains(t, line, "█")
	assert.Contains(t, line, "US")
	assert.NotContains(t, line, "\n")
}

func TestConfidenceBar(t *testing.T) {
	assert.Equal(t, "█████", confidenceBar(1.0))
	assert.Equal(t, "██░░░", confidenceBar(0.5))
	assert.Equal(t, "░░░░░", confidenceBar(0.1))
}
