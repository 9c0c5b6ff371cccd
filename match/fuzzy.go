package match

import (
	"strings"

	"github.com/xrash/smetrics"
)

// Weights for CombinedFuzzy. Character-level similarity dominates;
// token overlap and partial containment refine it.
const (
	levenshteinWeight = 0.4
	tokenSetWeight    = 0.3
	partialWeight     = 0.3
)

// LevenshteinRatio returns a normalized edit distance similarity in [0, 1].
func LevenshteinRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	d := smetrics.WagnerFischer(a, b, 1, 1, 1)
	return 1 - float64(d)/float64(maxLen)
}

// TokenSetRatio returns the Jaccard similarity of the word sets of a and b.
func TokenSetRatio(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// PartialRatio returns the best Levenshtein ratio of the shorter string
// against any equal-length window of the longer. A short query fully
// contained in a long title scores close to 1.
func PartialRatio(a, b string) float64 {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 1
		}
		return 0
	}
	if len(shorter) == len(longer) {
		return LevenshteinRatio(shorter, longer)
	}

	best := 0.0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := longer[i : i+len(shorter)]
		if r := LevenshteinRatio(shorter, window); r > best {
			best = r
			if best == 1 {
				break
			}
		}
	}
	return best
}

// CombinedFuzzy blends the three fuzzy similarities into one score in [0, 1].
func CombinedFuzzy(a, b string) float64 {
	return levenshteinWeight*LevenshteinRatio(a, b) +
		tokenSetWeight*TokenSetRatio(a, b) +
		partialWeight*PartialRatio(a, b)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}
