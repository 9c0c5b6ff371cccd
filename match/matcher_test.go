package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/worklens/ai/mock"
)

func TestNewMatcher_NilEmbedder(t *testing.T) {
	m, err := NewMatcher(nil)
	require.NoError(t, err)
	defer m.Release()

	assert.False(t, m.SemanticAvailable())
}

func TestMatcher_LexicalFallback(t *testing.T) {
	m, err := NewMatcher(nil)
	require.NoError(t, err)
	defer m.Release()

	m.UpdateCorpus("The Great Gatsby", "Pride and Prejudice", "Moby Dick")

	ctx := context.Background()

	t.Run("identical titles", func(t *testing.T) {
		assert.Equal(t, 1.0, m.Semantic(ctx, "The Great Gatsby", "the great gatsby"))
	})

	t.Run("shared words beat disjoint", func(t *testing.T) {
		related := m.Semantic(ctx, "great gatsby", "the great gatsby")
		unrelated := m.Semantic(ctx, "great gatsby", "pride and prejudice")
		assert.Greater(t, related, unrelated)
	})

	t.Run("empty text scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, m.Semantic(ctx, "", "the great gatsby"))
	})
}

func TestMatcher_SemanticWithEmbedder(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	m, err := NewMatcher(embedder)
	require.NoError(t, err)
	defer m.Release()

	require.True(t, m.SemanticAvailable())

	ctx := context.Background()
	score := m.Semantic(ctx, "the great gatsby", "pride and prejudice")
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)

	// Both titles should now be cached.
	assert.Equal(t, 2, m.CacheSize())

	// A repeat comparison is served from cache.
	calls := embedder.CallCount()
	_ = m.Semantic(ctx, "the great gatsby", "pride and prejudice")
	assert.Equal(t, calls, embedder.CallCount())
}

func TestMatcher_EmbedderFailureFallsBack(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("backend down")
	}

	m, err := NewMatcher(embedder)
	require.NoError(t, err)
	defer m.Release()

	m.UpdateCorpus("the great gatsby")

	score := m.Semantic(context.Background(), "great gatsby", "the great gatsby")
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
	assert.Equal(t, 0, m.CacheSize())
}

func TestMatcher_PrewarmTitles(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	m, err := NewMatcher(embedder, WithPoolSize(2))
	require.NoError(t, err)
	defer m.Release()

	m.PrewarmTitles(context.Background(), []string{
		"The Great Gatsby", "Pride and Prejudice", "Moby Dick",
	})

	assert.Equal(t, 3, m.CacheSize())

	// Comparisons between prewarmed titles need no further backend calls.
	calls := embedder.CallCount()
	_ = m.Semantic(context.Background(), "The Great Gatsby", "Moby Dick")
	assert.Equal(t, calls, embedder.CallCount())
}

func TestMatcher_PrewarmWithoutEmbedder(t *testing.T) {
	m, err := NewMatcher(nil)
	require.NoError(t, err)
	defer m.Release()

	m.PrewarmTitles(context.Background(), []string{"The Great Gatsby"})
	assert.Equal(t, 0, m.CacheSize())
}

func TestMatcher_Fuzzy(t *testing.T) {
	m, err := NewMatcher(nil)
	require.NoError(t, err)
	defer m.Release()

	assert.InDelta(t, 1.0, m.Fuzzy("The Great Gatsby!", "the great gatsby"), 1e-9)
	assert.Greater(t, m.Fuzzy("hary potter", "harry potter"), m.Fuzzy("hary potter", "moby dick"))
}
