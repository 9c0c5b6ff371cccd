package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/match"
	"github.com/poiesic/worklens/spell"
)

func testPool() []*core.Work {
	return []*core.Work{
		{Title: "Pride and Prejudice", Creator: "Jane Austen", PublicationYear: 1813, ContentType: core.ContentTypeBook, SourceConfidence: 0.9},
		{Title: "Pride and Prejudice and Zombies", Creator: "Seth Grahame-Smith", PublicationYear: 2009, ContentType: core.ContentTypeBook, SourceConfidence: 0.8},
		{Title: "Sense and Sensibility", Creator: "Jane Austen", PublicationYear: 1811, ContentType: core.ContentTypeBook, SourceConfidence: 0.9},
		{Title: "Romeo and Juliet", Creator: "William Shakespeare", PublicationYear: 1597, ContentType: core.ContentTypeBook, SourceConfidence: 0.95},
		{Title: "Symphony No. 5", Creator: "Ludwig van Beethoven", PublicationYear: 1808, ContentType: core.ContentTypeMusic, SourceConfidence: 0.85},
	}
}

func newTestRanker(t *testing.T, opts ...Option) *Ranker {
	t.Helper()
	matcher, err := match.NewMatcher(nil)
	require.NoError(t, err)
	t.Cleanup(matcher.Release)

	titles := make([]string, 0)
	for _, w := range testPool() {
		titles = append(titles, w.Title)
	}
	matcher.UpdateCorpus(titles...)

	ranker, err := NewRanker(matcher, opts...)
	require.NoError(t, err)
	return ranker
}

func TestNewRanker(t *testing.T) {
	t.Run("nil matcher rejected", func(t *testing.T) {
		_, err := NewRanker(nil)
		assert.Equal(t, ErrMatcherRequired, err)
	})

	t.Run("valid configuration", func(t *testing.T) {
		ranker := newTestRanker(t)
		assert.NotNil(t, ranker)
	})
}

func TestRank_ExactMatchFirst(t *testing.T) {
	ranker := newTestRanker(t)

	ranking, err := ranker.Rank(context.Background(), "Pride and Prejudice", testPool(), 10)
	require.NoError(t, err)
	require.NotEmpty(t, ranking.Results)

	assert.Equal(t, "Pride and Prejudice", ranking.Results[0].Work.Title)
	assert.Equal(t, 1.0, ranking.Results[0].Score)

	// Scores never increase down the list.
	for i := 1; i < len(ranking.Results); i++ {
		assert.GreaterOrEqual(t, ranking.Results[i-1].Score, ranking.Results[i].Score)
	}
}

func TestRank_PhraseOverlapBeatsSharedWord(t *testing.T) {
	ranker := newTestRanker(t)
	pool := []*core.Work{
		{Title: "Sense and Sensibility", SourceConfidence: 0.9},
		{Title: "A Dictionary of Sense", SourceConfidence: 0.9},
	}

	ranking, err := ranker.Rank(context.Background(), "sense and sensibility", pool, 10)
	require.NoError(t, err)
	require.NotEmpty(t, ranking.Results)
	assert.Equal(t, "Sense and Sensibility", ranking.Results[0].Work.Title)
}

func TestRank_MinScoreFloor(t *testing.T) {
	ranker := newTestRanker(t)
	pool := []*core.Work{
		{Title: "Completely Unrelated Technical Manual", SourceConfidence: 0.1},
	}

	ranking, err := ranker.Rank(context.Background(), "symphony", pool, 10)
	require.NoError(t, err)
	assert.Empty(t, ranking.Results)
	assert.Contains(t, ranking.Explanation, "couldn't find")
}

func TestRank_EmptyPool(t *testing.T) {
	ranker := newTestRanker(t)

	ranking, err := ranker.Rank(context.Background(), "anything", nil, 10)
	require.NoError(t, err)
	assert.Empty(t, ranking.Results)
	assert.NotEmpty(t, ranking.Explanation)
}

func TestRank_EmptyQueryRejected(t *testing.T) {
	ranker := newTestRanker(t)

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := ranker.Rank(context.Background(), query, testPool(), 10)
		assert.True(t, errors.Is(err, core.ErrInvalidQuery), "query %q should be rejected", query)
	}
}

func TestRank_DeduplicatesByNormalizedTitle(t *testing.T) {
	ranker := newTestRanker(t)
	pool := []*core.Work{
		{Title: "Romeo and Juliet", SourceConfidence: 0.9},
		{Title: "Romeo And Juliet", SourceConfidence: 0.5},
		{Title: "ROMEO AND JULIET", SourceConfidence: 0.7},
	}

	ranking, err := ranker.Rank(context.Background(), "romeo and juliet", pool, 10)
	require.NoError(t, err)
	assert.Len(t, ranking.Results, 1)
}

func TestRank_Truncation(t *testing.T) {
	ranker := newTestRanker(t)

	ranking, err := ranker.Rank(context.Background(), "pride and prejudice", testPool(), 1)
	require.NoError(t, err)
	assert.Len(t, ranking.Results, 1)
}

func TestRank_SpellCorrection(t *testing.T) {
	speller := spell.NewCorrector()
	speller.AddKnownTitles("Pride and Prejudice")
	ranker := newTestRanker(t, WithSpeller(speller))

	ranking, err := ranker.Rank(context.Background(), "pride and prejudise", testPool(), 10)
	require.NoError(t, err)

	assert.Equal(t, "pride and prejudice", ranking.CorrectedQuery)
	assert.Contains(t, ranking.Explanation, "corrected from")
	require.NotEmpty(t, ranking.Results)
	assert.Equal(t, "Pride and Prejudice", ranking.Results[0].Work.Title)
}

func TestRank_Suggestions(t *testing.T) {
	ranker := newTestRanker(t)

	ranking, err := ranker.Rank(context.Background(), "pride and prejudice", testPool(), 10)
	require.NoError(t, err)

	assert.Contains(t, ranking.Suggestions, "Works by Jane Austen")
	assert.Contains(t, ranking.Suggestions, "More books")
	assert.LessOrEqual(t, len(ranking.Suggestions), maxSuggestions)
}

func TestRank_Explanation(t *testing.T) {
	ranker := newTestRanker(t)

	ranking, err := ranker.Rank(context.Background(), "pride and prejudice", testPool(), 10)
	require.NoError(t, err)
	assert.Contains(t, ranking.Explanation, "Best match:")
	assert.Contains(t, ranking.Explanation, "relevance")
}

func TestRank_MonitorCallbacks(t *testing.T) {
	ranker := newTestRanker(t)
	monitor := &recordingMonitor{}

	_, err := ranker.RankWithMonitor(context.Background(), "pride and prejudice", testPool(), 10, monitor)
	require.NoError(t, err)

	assert.Equal(t, "pride and prejudice", monitor.started)
	assert.NotZero(t, monitor.scored)
	assert.True(t, monitor.finished)
}

type recordingMonitor struct {
	started  string
	scored   int
	dropped  int
	finished bool
}

func (m *recordingMonitor) Start(query string)                 { m.started = query }
func (m *recordingMonitor) AfterCorrection(_, _ string)        {}
func (m *recordingMonitor) Scored(_ *core.Work, _ float64)     { m.scored++ }
func (m *recordingMonitor) Dropped(_ *core.Work, _ float64)    { m.dropped++ }
func (m *recordingMonitor) Finish(_ []core.Match)              { m.finished = true }
