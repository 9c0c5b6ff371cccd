package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/match"
	"github.com/poiesic/worklens/spell"
)

// Component weights for the composite relevance score.
const (
	exactWeight    = 0.35
	phraseWeight   = 0.25
	semanticWeight = 0.25
	fuzzyWeight    = 0.15

	// confidenceBoostFactor scales the source confidence boost.
	confidenceBoostFactor = 0.05

	// minScore drops candidates below this relevance.
	minScore = 0.15

	// lowOverlapPenalty is applied when a multi-word query's word
	// coverage falls below the analysis minimum.
	lowOverlapPenalty = 0.2

	// maxSuggestions caps the follow-up suggestion list.
	maxSuggestions = 5
)

// Ranking is the outcome of ranking a candidate pool against a query.
type Ranking struct {
	Query          string
	CorrectedQuery string // empty when no correction was applied
	Results        []core.Match
	Explanation    string
	Suggestions    []string
}

// Ranker scores and orders candidate works for a query.
type Ranker struct {
	matcher *match.Matcher
	speller *spell.Corrector
	logger  *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithSpeller attaches a spell corrector. Queries are corrected before
// matching and spelling variants feed the suggestion list.
func WithSpeller(speller *spell.Corrector) Option {
	return func(r *Ranker) error {
		r.speller = speller
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger.With("component", "ranker")
		return nil
	}
}

// NewRanker creates a ranker over the given similarity matcher.
func NewRanker(matcher *match.Matcher, opts ...Option) (*Ranker, error) {
	if matcher == nil {
		return nil, ErrMatcherRequired
	}

	r := &Ranker{
		matcher: matcher,
		logger:  slog.Default().With("component", "ranker"),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Rank scores the candidate pool against the query and returns up to
// maxResults matches. An empty pool or a pool with no candidate above
// the relevance floor yields empty results, not an error.
func (r *Ranker) Rank(ctx context.Context, query string, works []*core.Work, maxResults int) (*Ranking, error) {
	return r.RankWithMonitor(ctx, query, works, maxResults, nil)
}

// RankWithMonitor ranks with per-stage monitoring callbacks.
func (r *Ranker) RankWithMonitor(ctx context.Context, query string, works []*core.Work, maxResults int, monitor RankMonitor) (*Ranking, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	if err := core.ValidateQuery(&core.Query{Text: query}); err != nil {
		return nil, err
	}
	if maxResults < 1 {
		maxResults = 10
	}

	searchQuery, corrected := r.correct(query)
	if corrected {
		monitor.AfterCorrection(query, searchQuery)
		r.logger.Info("corrected query", "from", query, "to", searchQuery)
	}

	normalizedQuery := core.NormalizeTitle(searchQuery)
	analysis := analyzeQuery(normalizedQuery)

	scored := make([]core.Match, 0, len(works))
	for _, work := range works {
		if work == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		score := r.score(ctx, normalizedQuery, analysis, work)
		if score < minScore {
			monitor.Dropped(work, score)
			continue
		}
		monitor.Scored(work, score)
		scored = append(scored, core.Match{Work: work, Score: score})
	}

	results := rankAndDeduplicate(scored, maxResults)
	monitor.Finish(results)

	ranking := &Ranking{
		Query:       query,
		Results:     results,
		Explanation: r.explain(query, searchQuery, corrected, results),
		Suggestions: r.suggest(searchQuery, results),
	}
	if corrected {
		ranking.CorrectedQuery = searchQuery
	}
	return ranking, nil
}

// correct runs the query through the spell corrector when one is
// attached.
func (r *Ranker) correct(query string) (string, bool) {
	if r.speller == nil {
		return query, false
	}
	corrected := r.speller.Correct(query)
	return corrected, corrected != core.NormalizeTitle(query)
}

// score computes the composite relevance of one work for the query.
func (r *Ranker) score(ctx context.Context, normalizedQuery string, analysis queryAnalysis, work *core.Work) float64 {
	normalizedTitle := core.NormalizeTitle(work.Title)
	if normalizedTitle == "" {
		return 0
	}
	// Exact normalized equality is a perfect match regardless of the
	// other signals.
	if normalizedQuery == normalizedTitle {
		return 1.0
	}

	exactScore := 0.0
	switch {
	case strings.Contains(normalizedTitle, normalizedQuery):
		exactScore = 0.85
	case strings.Contains(normalizedQuery, normalizedTitle):
		exactScore = 0.6
	}

	phraseScore := r.phraseScore(normalizedQuery, normalizedTitle, analysis)
	fuzzyScore := r.matcher.Fuzzy(normalizedQuery, normalizedTitle)
	semanticScore := r.matcher.Semantic(ctx, normalizedQuery, normalizedTitle)

	sourceConfidence := work.SourceConfidence
	if sourceConfidence == 0 {
		sourceConfidence = 0.5
	}
	confidenceBoost := sourceConfidence * confidenceBoostFactor

	// Character-level similarity misleads on phrases, so its weight is
	// halved for multi-word queries.
	effectiveFuzzy := fuzzyScore
	if analysis.multiWord {
		effectiveFuzzy *= 0.5
	}

	combined := exactWeight*exactScore +
		phraseWeight*phraseScore +
		semanticWeight*semanticScore +
		fuzzyWeight*effectiveFuzzy +
		confidenceBoost

	if combined > 1.0 {
		combined = 1.0
	}
	return combined
}

// phraseScore measures how much of the query the title covers.
func (r *Ranker) phraseScore(normalizedQuery, normalizedTitle string, analysis queryAnalysis) float64 {
	if !analysis.multiWord {
		titleWords := strings.Fields(normalizedTitle)
		if containsWord(titleWords, normalizedQuery) {
			return 0.8
		}
		if strings.Contains(normalizedTitle, normalizedQuery) {
			return 0.5
		}
		return 0
	}

	overlap := wordOverlap(analysis.words, normalizedTitle)
	score := overlap * 0.7

	if matches := consecutiveBigrams(analysis.words, normalizedTitle); matches > 0 {
		score += 0.3 * float64(matches) / float64(len(analysis.words)-1)
	}

	// Candidates missing most of a phrase query should not surface on
	// one shared word.
	if overlap < analysis.minOverlap {
		score *= lowOverlapPenalty
	}
	return score
}

// rankAndDeduplicate drops duplicate titles, orders by score with
// deterministic tie-breaks, and truncates to maxResults.
func rankAndDeduplicate(scored []core.Match, maxResults int) []core.Match {
	best := make(map[string]int, len(scored))
	unique := make([]core.Match, 0, len(scored))
	for _, m := range scored {
		key := core.NormalizeTitle(m.Work.Title)
		if i, seen := best[key]; seen {
			if m.Score > unique[i].Score {
				unique[i] = m
			}
			continue
		}
		best[key] = len(unique)
		unique = append(unique, m)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		if unique[i].Score != unique[j].Score {
			return unique[i].Score > unique[j].Score
		}
		if unique[i].Work.SourceConfidence != unique[j].Work.SourceConfidence {
			return unique[i].Work.SourceConfidence > unique[j].Work.SourceConfidence
		}
		return unique[i].Work.Completeness() > unique[j].Work.Completeness()
	})

	if len(unique) > maxResults {
		unique = unique[:maxResults]
	}
	return unique
}

// explain builds the human-readable account of the search.
func (r *Ranker) explain(original, corrected string, wasCorrected bool, results []core.Match) string {
	var parts []string

	if wasCorrected {
		parts = append(parts, fmt.Sprintf("I understood you were looking for %q (corrected from %q).", corrected, original))
	} else {
		parts = append(parts, fmt.Sprintf("Searching for %q.", original))
	}

	switch {
	case len(results) == 0:
		parts = append(parts, "I couldn't find any matching works. Try a different search term or check the spelling.")
	case len(results) == 1:
		m := results[0]
		confidence := "low"
		if m.Score > 0.8 {
			confidence = "high"
		} else if m.Score > 0.6 {
			confidence = "moderate"
		}
		contentType := string(core.CanonicalContentType(string(m.Work.ContentType)))
		parts = append(parts, fmt.Sprintf("Found 1 result with %s confidence. Best match: %q (%s).", confidence, m.Work.Title, contentType))
	default:
		best := results[0]
		parts = append(parts, fmt.Sprintf("Found %d results. Best match: %q with %.0f%% relevance.", len(results), best.Work.Title, best.Score*100))
	}

	return strings.Join(parts, " ")
}

// suggest builds follow-up search suggestions from spelling variants
// and the top results.
func (r *Ranker) suggest(query string, results []core.Match) []string {
	var suggestions []string
	seen := make(map[string]bool)
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			suggestions = append(suggestions, s)
		}
	}

	if r.speller != nil {
		for _, variant := range r.speller.Suggestions(query, 2) {
			add(variant)
		}
	}

	if len(results) > 0 {
		creators := 0
		for _, m := range results {
			if creators == 2 {
				break
			}
			if m.Work.HasCreator() {
				add("Works by " + m.Work.Creator)
				creators++
			}
		}

		if t := results[0].Work.ContentType; t != "" && t != core.ContentTypeUnknown {
			add(fmt.Sprintf("More %ss", t))
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
