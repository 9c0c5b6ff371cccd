package reembed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVector(t *testing.T) {
	invSqrt2 := float32(1.0 / math.Sqrt(2))

	tests := []struct {
		name     string
		input    []float32
		expected []float32
	}{
		{
			name:     "unit vector unchanged",
			input:    []float32{1.0, 0.0, 0.0},
			expected: []float32{1.0, 0.0, 0.0},
		},
		{
			name:     "3-4-5 triangle",
			input:    []float32{3.0, 4.0},
			expected: []float32{0.6, 0.8},
		},
		{
			name:     "negative components",
			input:    []float32{-1.0, 1.0},
			expected: []float32{-invSqrt2, invSqrt2},
		},
		{
			name:     "small magnitude",
			input:    []float32{0.001, 0.002, 0.003},
			expected: nil, // checked by the magnitude assertion only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeVector(tt.input)
			require.Len(t, result, len(tt.input))

			if tt.expected != nil {
				for i := range result {
					assert.InDelta(t, tt.expected[i], result[i], 1e-6, "element %d", i)
				}
			}

			var magnitude float64
			for _, v := range result {
				magnitude += float64(v) * float64(v)
			}
			assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-6, "magnitude should be 1.0")
		})
	}
}

func TestNormalizeVector_ZeroVector(t *testing.T) {
	result := NormalizeVector([]float32{0.0, 0.0, 0.0})

	require.Len(t, result, 3)
	for i, v := range result {
		assert.Equal(t, float32(0.0), v, "element %d should be 0", i)
	}
}

func TestNormalizeVector_EmptyVector(t *testing.T) {
	assert.Empty(t, NormalizeVector([]float32{}))
}
