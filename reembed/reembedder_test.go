package reembed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/worklens/ai/mock"
	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/storage"
	"github.com/poiesic/worklens/storage/badger"
)

func setupTestRepo(t *testing.T) storage.WorkRepository {
	t.Helper()
	repos, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		repos.Close()
		backend.Close()
	})
	return repos.Works
}

func addTestWorks(t *testing.T, repo storage.WorkRepository, count int) []*core.Work {
	t.Helper()
	works := make([]*core.Work, count)
	for i := 0; i < count; i++ {
		works[i] = &core.Work{
			Title:           fmt.Sprintf("Collected Essays Volume %d", i+1),
			Creator:         "George Orwell",
			PublicationYear: 1940 + i,
			ContentType:     core.ContentTypeBook,
		}
	}
	added, err := repo.AddWorks(context.Background(), works...)
	require.NoError(t, err)
	require.Len(t, added, count)
	return added
}

func TestReembedder_Run(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	added := addTestWorks(t, repo, 10)

	var buf bytes.Buffer
	embedder := mock.NewMockEmbedder()
	config := &Config{
		BatchSize:      3,
		ReportInterval: 3,
		MaxRetries:     3,
		RetryDelay:     10 * time.Millisecond,
	}

	reembedder := NewReembedder(repo, embedder, config, &buf)
	err := reembedder.Run(ctx)
	require.NoError(t, err)

	// Every work ends up with a unit-length title vector
	for _, work := range added {
		updated, err := repo.GetWork(ctx, work.Id)
		require.NoError(t, err)
		require.NotEmpty(t, updated.Vector, "work %d should have embedding", updated.Id)

		var magnitude float32
		for _, v := range updated.Vector {
			magnitude += v * v
		}
		assert.InDelta(t, 1.0, magnitude, 0.01, "vector should be normalized")
	}

	output := buf.String()
	assert.Contains(t, output, "10/10", "should show completion")
}

func TestReembedder_EmptyCatalog(t *testing.T) {
	repo := setupTestRepo(t)

	var buf bytes.Buffer
	reembedder := NewReembedder(repo, mock.NewMockEmbedder(), DefaultConfig(), &buf)
	err := reembedder.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "0 works", "should report an empty catalog")
}

func TestReembedder_ContextCancellation(t *testing.T) {
	repo := setupTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())

	addTestWorks(t, repo, 10)

	// Cancel after the second batch hits the embedder
	callCount := 0
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		callCount++
		if callCount == 2 {
			cancel()
		}
		result := make([][]float32, len(texts))
		for i := range result {
			result[i] = []float32{1.0, 0.0, 0.0}
		}
		return result, nil
	}

	var buf bytes.Buffer
	config := &Config{
		BatchSize:      3,
		ReportInterval: 3,
		MaxRetries:     3,
		RetryDelay:     10 * time.Millisecond,
	}

	reembedder := NewReembedder(repo, embedder, config, &buf)
	err := reembedder.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReembedder_EmbeddingError(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	addTestWorks(t, repo, 1)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("persistent error")
	}

	var buf bytes.Buffer
	config := &Config{
		BatchSize:      1,
		ReportInterval: 1,
		MaxRetries:     2,
		RetryDelay:     10 * time.Millisecond,
	}

	reembedder := NewReembedder(repo, embedder, config, &buf)
	err := reembedder.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persistent error")
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Greater(t, config.BatchSize, 0, "batch size should be positive")
	assert.Greater(t, config.ReportInterval, 0, "report interval should be positive")
	assert.Greater(t, config.MaxRetries, 0, "max retries should be positive")
	assert.Greater(t, config.RetryDelay, time.Duration(0), "retry delay should be positive")
}

func TestReembedder_ProgressTracking(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	addTestWorks(t, repo, 25)

	var buf bytes.Buffer
	config := &Config{
		BatchSize:      5,
		ReportInterval: 10,
		MaxRetries:     3,
		RetryDelay:     10 * time.Millisecond,
	}

	reembedder := NewReembedder(repo, mock.NewMockEmbedder(), config, &buf)
	err := reembedder.Run(ctx)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Progress:", "should show progress")
	assert.Contains(t, output, "25/25", "should show final count")
}
