package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/worklens/core"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"content-based ID", core.IDFromContent("pride and prejudice|jane austen")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Empty(t *testing.T) {
	_, err := UnmarshalID(nil)
	assert.Error(t, err)
}

func TestMarshalUnmarshalWork(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	work := &core.Work{
		Id:               core.IDFromContent("symphony no 5|ludwig van beethoven"),
		Title:            "Symphony No. 5",
		Creator:          "Ludwig van Beethoven",
		PublicationYear:  1808,
		CreatorDeathYear: 1827,
		ContentType:      core.ContentTypeMusic,
		SourceName:       "seed",
		SourceConfidence: 0.95,
		Vector:           []float32{0.1, -0.2, 0.3},
		InsertedAt:       now,
		UpdatedAt:        now,
	}

	decoded, err := UnmarshalWork(MarshalWork(work))
	require.NoError(t, err)
	assert.Equal(t, work, decoded)
}

func TestMarshalUnmarshalModelState(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	state := &core.ModelState{
		Weights:         []float64{0.3, -0.1, 0.5},
		Bias:            0.02,
		SampleCount:     240,
		RollingAccuracy: 0.87,
		LastTrained:     now,
	}

	decoded, err := UnmarshalModelState(MarshalModelState(state))
	require.NoError(t, err)
	assert.Equal(t, state, decoded)
}

func TestMarshalUnmarshalVocabularySnapshot(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	snapshot := &core.VocabularySnapshot{
		Corrections: map[string]string{"harry poter": "harry potter"},
		KnownTitles: []string{"pride and prejudice", "romeo and juliet"},
		WordFreq:    map[string]uint64{"the": 100, "symphony": 12},
		UpdatedAt:   now,
	}

	decoded, err := UnmarshalVocabularySnapshot(MarshalVocabularySnapshot(snapshot))
	require.NoError(t, err)
	assert.Equal(t, snapshot, decoded)
}

func TestMarshalUnmarshalJurisdictionRule(t *testing.T) {
	rule := &core.JurisdictionRule{
		Code:               "US",
		Name:               "United States",
		StandardDuration:   70,
		CorporateDuration:  95,
		AnonymousDuration:  95,
		PublicDomainBefore: 1929,
		Notes:              "Life + 70 years for works after 1978",
	}

	decoded, err := UnmarshalJurisdictionRule(MarshalJurisdictionRule(rule))
	require.NoError(t, err)
	assert.Equal(t, rule, decoded)
}
