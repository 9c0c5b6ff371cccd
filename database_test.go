package worklens

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/worklens/core"
)

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		db, err := NewDatabase(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		// Verify components are initialized
		assert.NotNil(t, db.WorkRepository())
		assert.NotNil(t, db.VocabularyRepository())
		assert.NotNil(t, db.ModelRepository())
		assert.NotNil(t, db.JurisdictionRepository())
		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.logger)
	})

	t.Run("in-memory database", func(t *testing.T) {
		db, err := NewDatabase("", WithInMemory())
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		assert.Nil(t, db.embedder)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a database at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		db, err := NewDatabase(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDatabase_Close(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := NewDatabase(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, db)

	err = db.Close()
	assert.NoError(t, err)
}

func TestDatabase_StatePersistsAcrossEngines(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "worklens_db")
	ctx := context.Background()

	db, err := NewDatabase(tmpDir)
	require.NoError(t, err)

	_, err = db.WorkRepository().AddWorks(ctx, &core.Work{
		Title:           "Pride and Prejudice",
		Creator:         "Jane Austen",
		PublicationYear: 1813,
		ContentType:     core.ContentTypeBook,
	})
	require.NoError(t, err)

	engine, err := db.NewEngine(ctx)
	require.NoError(t, err)

	// Teach the speller a correction, then persist on close
	require.NoError(t, engine.Feedback(ctx, "pryde and prejudice", "Pride and Prejudice", 0))
	require.NoError(t, engine.Close())
	require.NoError(t, db.Close())

	// Reopen: the learned correction survives
	db, err = NewDatabase(tmpDir)
	require.NoError(t, err)
	defer db.Close()

	engine, err = db.NewEngine(ctx)
	require.NoError(t, err)
	defer engine.Close()

	ranking, err := engine.Search(ctx, "pryde and prejudice")
	require.NoError(t, err)
	require.NotEmpty(t, ranking.Results)
	assert.Equal(t, "Pride and Prejudice", ranking.Results[0].Work.Title)
}
