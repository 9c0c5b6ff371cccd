package reembed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/worklens/core"
)

func TestWorkIterator_ForEach(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	addTestWorks(t, repo, 7)

	iterator := NewWorkIterator(repo, 3)

	var batches [][]*core.Work
	err := iterator.ForEach(ctx, func(works []*core.Work) error {
		batches = append(batches, works)
		return nil
	})
	require.NoError(t, err)

	// 7 works with batch size 3 yields batches of 3, 3, 1
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 3)
	assert.Len(t, batches[1], 3)
	assert.Len(t, batches[2], 1)

	total := 0
	for _, batch := range batches {
		total += len(batch)
	}
	assert.Equal(t, 7, total)
}

func TestWorkIterator_Empty(t *testing.T) {
	repo := setupTestRepo(t)

	iterator := NewWorkIterator(repo, 10)

	calls := 0
	err := iterator.ForEach(context.Background(), func(works []*core.Work) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, calls, "callback should not run for an empty catalog")
}

func TestWorkIterator_CallbackError(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	addTestWorks(t, repo, 5)

	iterator := NewWorkIterator(repo, 2)

	expectedErr := errors.New("batch failed")
	calls := 0
	err := iterator.ForEach(ctx, func(works []*core.Work) error {
		calls++
		return expectedErr
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 1, calls, "iteration should stop on first error")
}

func TestWorkIterator_ContextCancellation(t *testing.T) {
	repo := setupTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())

	addTestWorks(t, repo, 6)

	iterator := NewWorkIterator(repo, 2)

	calls := 0
	err := iterator.ForEach(ctx, func(works []*core.Work) error {
		calls++
		cancel()
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "cancellation should stop iteration between batches")
}

func TestNewWorkIterator_DefaultBatchSize(t *testing.T) {
	repo := setupTestRepo(t)

	iterator := NewWorkIterator(repo, 0)
	assert.Equal(t, DefaultBatchSize, iterator.batchSize)

	iterator = NewWorkIterator(repo, -5)
	assert.Equal(t, DefaultBatchSize, iterator.batchSize)
}
