package reembed

import "math"

// NormalizeVector scales a vector to unit length so stored title
// vectors compare correctly under cosine similarity. Returns a new
// vector; a zero vector comes back as a zero vector of the same length.
func NormalizeVector(v []float32) []float32 {
	if len(v) == 0 {
		return v
	}

	var sumSquares float64
	for _, val := range v {
		sumSquares += float64(val) * float64(val)
	}
	magnitude := math.Sqrt(sumSquares)

	result := make([]float32, len(v))
	if magnitude == 0 {
		return result
	}

	for i, val := range v {
		result[i] = float32(float64(val) / magnitude)
	}
	return result
}
