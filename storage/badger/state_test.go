package badger

import (
	"context"
	"testing"

	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyRoundTrip(t *testing.T) {
	repos, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { repos.Close(); backend.Close() }()

	ctx := context.Background()

	// No snapshot yet
	loaded, err := repos.Vocabulary.LoadVocabulary(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	snapshot := &core.VocabularySnapshot{
		Corrections: map[string]string{"harry poter": "harry potter"},
		KnownTitles: []string{"harry potter", "pride and prejudice"},
		WordFreq:    map[string]uint64{"harry": 3, "potter": 3},
	}
	require.NoError(t, repos.Vocabulary.SaveVocabulary(ctx, snapshot))

	loaded, err = repos.Vocabulary.LoadVocabulary(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snapshot.Corrections, loaded.Corrections)
	assert.Equal(t, snapshot.KnownTitles, loaded.KnownTitles)
	assert.Equal(t, snapshot.WordFreq, loaded.WordFreq)
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestVocabularyReplacesPrevious(t *testing.T) {
	repos, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { repos.Close(); backend.Close() }()

	ctx := context.Background()

	require.NoError(t, repos.Vocabulary.SaveVocabulary(ctx, &core.VocabularySnapshot{
		KnownTitles: []string{"old title"},
	}))
	require.NoError(t, repos.Vocabulary.SaveVocabulary(ctx, &core.VocabularySnapshot{
		KnownTitles: []string{"new title"},
	}))

	loaded, err := repos.Vocabulary.LoadVocabulary(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, []string{"new title"}, loaded.KnownTitles)
}

func TestModelStateRoundTrip(t *testing.T) {
	repos, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { repos.Close(); backend.Close() }()

	ctx := context.Background()

	// No state yet
	loaded, err := repos.Model.LoadModelState(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	weights := make([]float64, core.FeatureCount)
	weights[0] = 0.3
	weights[8] = -0.2
	state := &core.ModelState{
		Weights:         weights,
		Bias:            0.05,
		SampleCount:     42,
		RollingAccuracy: 0.91,
	}
	require.NoError(t, repos.Model.SaveModelState(ctx, state))

	loaded, err = repos.Model.LoadModelState(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, state.Weights, loaded.Weights)
	assert.Equal(t, state.Bias, loaded.Bias)
	assert.Equal(t, state.SampleCount, loaded.SampleCount)
	assert.Equal(t, state.RollingAccuracy, loaded.RollingAccuracy)
}

func TestJurisdictionRepository(t *testing.T) {
	repos, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { repos.Close(); backend.Close() }()

	ctx := context.Background()

	rows := []*core.JurisdictionRule{
		{Code: "US", Name: "United States", StandardDuration: 70, CorporateDuration: 95, PublicDomainBefore: 1929},
		{Code: "EU", Name: "European Union", StandardDuration: 70, CorporateDuration: 70},
		{Code: "CA", Name: "Canada", StandardDuration: 70, CorporateDuration: 75},
	}
	require.NoError(t, repos.Jurisdictions.PutJurisdictions(ctx, rows...))

	got, err := repos.Jurisdictions.GetJurisdiction(ctx, "US")
	require.NoError(t, err)
	assert.Equal(t, "United States", got.Name)
	assert.Equal(t, 1929, got.PublicDomainBefore)

	_, err = repos.Jurisdictions.GetJurisdiction(ctx, "ZZ")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	all, err := repos.Jurisdictions.ListJurisdictions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Ordered by code
	assert.Equal(t, "CA", all[0].Code)
	assert.Equal(t, "EU", all[1].Code)
	assert.Equal(t, "US", all[2].Code)

	// Put with an existing code replaces the row
	require.NoError(t, repos.Jurisdictions.PutJurisdictions(ctx, &core.JurisdictionRule{
		Code: "CA", Name: "Canada", StandardDuration: 50, CorporateDuration: 75,
	}))
	got, err = repos.Jurisdictions.GetJurisdiction(ctx, "CA")
	require.NoError(t, err)
	assert.Equal(t, 50, got.StandardDuration)
}
