package search

import "strings"

// Short function words that keep a multi-word query from counting as a
// specific phrase.
var functionWords = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "for": true,
	"and": true, "or": true, "in": true, "on": true, "at": true,
	"to": true, "by": true,
}

// queryAnalysis captures the matching strategy for one query.
type queryAnalysis struct {
	words      []string
	multiWord  bool
	phrase     bool
	minOverlap float64
}

// analyzeQuery decides how strictly candidates must cover the query
// words. A phrase query (multi-word, no short function words) demands
// 70% coverage; anything else accepts 30%.
func analyzeQuery(normalizedQuery string) queryAnalysis {
	words := strings.Fields(normalizedQuery)
	multiWord := len(words) > 1

	phrase := multiWord
	for _, w := range words {
		if len(w) < 4 && functionWords[w] {
			phrase = false
			break
		}
	}

	minOverlap := 0.3
	if phrase {
		minOverlap = 0.7
	}

	return queryAnalysis{
		words:      words,
		multiWord:  multiWord,
		phrase:     phrase,
		minOverlap: minOverlap,
	}
}

// wordOverlap returns the fraction of query words that appear in the
// normalized title.
func wordOverlap(queryWords []string, normalizedTitle string) float64 {
	if len(queryWords) == 0 {
		return 0
	}
	matching := 0
	for _, w := range queryWords {
		if strings.Contains(normalizedTitle, w) {
			matching++
		}
	}
	return float64(matching) / float64(len(queryWords))
}

// consecutiveBigrams counts adjacent query word pairs that appear
// verbatim in the normalized title.
func consecutiveBigrams(queryWords []string, normalizedTitle string) int {
	matches := 0
	for i := 0; i < len(queryWords)-1; i++ {
		if strings.Contains(normalizedTitle, queryWords[i]+" "+queryWords[i+1]) {
			matches++
		}
	}
	return matches
}

// containsWord reports whether word appears as a whole token in words.
func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
