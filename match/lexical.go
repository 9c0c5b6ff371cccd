package match

import (
	"hash/fnv"
	"math"
	"strings"
	"sync"
)

// vectorDim is the dimensionality of lexical fallback vectors. It
// matches the typical dimensionality of small embedding models so the
// two vector spaces behave comparably under cosine similarity.
const vectorDim = 384

// tfidf builds hashed bag-of-words vectors weighted by inverse document
// frequency. It serves as the lexical fallback when no embedding
// backend is available. Safe for concurrent use.
type tfidf struct {
	mu       sync.RWMutex
	docCount int
	docFreq  map[string]int
}

func newTFIDF() *tfidf {
	return &tfidf{docFreq: make(map[string]int)}
}

// AddDocuments updates document frequencies with the given texts.
// Each text counts once per distinct word.
func (t *tfidf) AddDocuments(texts ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, text := range texts {
		seen := make(map[string]bool)
		for _, w := range strings.Fields(text) {
			if !seen[w] {
				seen[w] = true
				t.docFreq[w]++
			}
		}
		t.docCount++
	}
}

// Vector returns the L2-normalized tf-idf vector for a text. Words hash
// into fixed buckets, so vectors are comparable without a shared
// vocabulary index.
func (t *tfidf) Vector(text string) []float32 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return make([]float32, vectorDim)
	}

	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	t.mu.RLock()
	vec := make([]float64, vectorDim)
	for w, c := range counts {
		tf := float64(c) / float64(len(words))
		idf := math.Log1p(float64(t.docCount) / float64(1+t.docFreq[w]))
		if t.docCount == 0 {
			idf = 1
		}
		vec[bucket(w)] += tf * idf
	}
	t.mu.RUnlock()

	var sumSquares float64
	for _, v := range vec {
		sumSquares += v * v
	}
	out := make([]float32, vectorDim)
	if sumSquares == 0 {
		return out
	}
	norm := math.Sqrt(sumSquares)
	for i, v := range vec {
		out[i] = float32(v / norm)
	}
	return out
}

func bucket(word string) int {
	h := fnv.New32a()
	h.Write([]byte(word))
	return int(h.Sum32() % vectorDim)
}

// cosineSimilarity returns the cosine of the angle between two vectors,
// clamped to [0, 1]. Mismatched or empty vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if cos < 0 {
		return 0
	}
	if cos > 1 {
		return 1
	}
	return cos
}
