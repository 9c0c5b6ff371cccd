package spell

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/poiesic/worklens/core"
	"github.com/xrash/smetrics"
)

const (
	// minCorrectableLength is the shortest word the per-word corrector
	// will touch. Shorter words are too ambiguous to correct safely.
	minCorrectableLength = 3

	// maxEditDistance bounds the per-word candidate search.
	maxEditDistance = 2

	// titleMatchRatio is the minimum similarity for snapping a whole
	// query to a known title.
	titleMatchRatio = 0.8

	// minSplitLength is the shortest single token the splitter will
	// attempt to break apart.
	minSplitLength = 6

	// minSplitPrefix is the shortest vocabulary prefix the greedy
	// splitter accepts.
	minSplitPrefix = 2
)

// Corrector fixes misspelled queries using a learned vocabulary.
// All methods are safe for concurrent use.
type Corrector struct {
	mu          sync.RWMutex
	corrections map[string]string // seeded phrase corrections
	learned     map[string]string // corrections learned from selections
	titles      map[string]bool   // known titles, normalized
	wordFreq    map[string]uint64

	logger *slog.Logger
}

// Option configures a Corrector.
type Option func(*Corrector)

// WithLogger sets the logger used by the corrector.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Corrector) {
		c.logger = logger.With("component", "spell-corrector")
	}
}

// NewCorrector creates a corrector seeded with common misspellings and
// a small word frequency prior.
func NewCorrector(opts ...Option) *Corrector {
	c := &Corrector{
		corrections: make(map[string]string, len(seedCorrections)),
		learned:     make(map[string]string),
		titles:      make(map[string]bool),
		wordFreq:    make(map[string]uint64, len(seedWords)),
		logger:      slog.Default().With("component", "spell-corrector"),
	}

	for k, v := range seedCorrections {
		c.corrections[k] = v
	}
	for k, v := range seedWords {
		c.wordFreq[k] = v
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Correct returns the corrected form of a query. Queries that need no
// correction come back unchanged (in normalized form).
func (c *Corrector) Correct(query string) string {
	q := core.NormalizeTitle(query)
	if q == "" {
		return q
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	// Whole-phrase lookups are the most reliable signal.
	if fixed, ok := c.corrections[q]; ok {
		return fixed
	}
	if fixed, ok := c.learned[q]; ok {
		return fixed
	}
	if c.titles[q] {
		return q
	}

	// Snap to a known title when the query is one typo away.
	if title, ok := c.closestTitle(q); ok {
		c.logger.Debug("query snapped to known title", "query", q, "title", title)
		return title
	}

	// Run-together single token.
	if !strings.Contains(q, " ") {
		if split, ok := c.trySplit(q); ok {
			return split
		}
	}

	// Per-word correction.
	words := strings.Fields(q)
	changed := false
	for i, w := range words {
		if fixed, ok := c.correctWord(w); ok {
			words[i] = fixed
			changed = true
		}
	}
	if changed {
		corrected := strings.Join(words, " ")
		c.logger.Debug("query corrected per-word", "query", q, "corrected", corrected)
		return corrected
	}

	return q
}

// closestTitle finds a known title within titleMatchRatio of the query.
// Caller must hold at least a read lock.
func (c *Corrector) closestTitle(q string) (string, bool) {
	best := ""
	bestRatio := 0.0
	for title := range c.titles {
		r := similarityRatio(q, title)
		if r > bestRatio || (r == bestRatio && title < best) {
			best, bestRatio = title, r
		}
	}
	if bestRatio >= titleMatchRatio {
		return best, true
	}
	return "", false
}

// correctWord finds the vocabulary word within maxEditDistance of w,
// preferring smaller distances, then closer lengths, then higher
// frequency. The length tiebreak keeps a transposition like "grate"
// from losing to a shorter, more frequent word at the same distance.
// Words already in the vocabulary, or too short to correct safely, are
// left alone. Caller must hold at least a read lock.
func (c *Corrector) correctWord(w string) (string, bool) {
	if len(w) < minCorrectableLength {
		return "", false
	}
	if _, ok := c.wordFreq[w]; ok {
		return "", false
	}

	best := ""
	bestDist := maxEditDistance + 1
	bestLenDiff := 0
	var bestFreq uint64
	for cand, freq := range c.wordFreq {
		d := smetrics.WagnerFischer(w, cand, 1, 1, 1)
		if d > maxEditDistance {
			continue
		}
		lenDiff := abs(len(w) - len(cand))
		switch {
		case d < bestDist,
			d == bestDist && lenDiff < bestLenDiff,
			d == bestDist && lenDiff == bestLenDiff && freq > bestFreq,
			d == bestDist && lenDiff == bestLenDiff && freq == bestFreq && cand < best:
			best, bestDist, bestLenDiff, bestFreq = cand, d, lenDiff, freq
		}
	}
	if best != "" {
		return best, true
	}

	// Phonetic fallback: same Soundex code, highest frequency.
	code := smetrics.Soundex(w)
	for cand, freq := range c.wordFreq {
		if smetrics.Soundex(cand) != code {
			continue
		}
		if freq > bestFreq || (freq == bestFreq && (best == "" || cand < best)) {
			best, bestFreq = cand, freq
		}
	}
	if best != "" {
		return best, true
	}

	return "", false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// trySplit breaks a run-together token into known words. Seeded splits
// are checked first, then a greedy longest-prefix walk over the
// vocabulary. Caller must hold at least a read lock.
func (c *Corrector) trySplit(q string) (string, bool) {
	if split, ok := seedSplits[q]; ok {
		return split, true
	}

	if len(q) < minSplitLength {
		return "", false
	}
	if _, ok := c.wordFreq[q]; ok {
		return "", false
	}

	var parts []string
	rest := q
	for len(rest) > 0 {
		prefix := ""
		for end := len(rest); end >= minSplitPrefix; end-- {
			if _, ok := c.wordFreq[rest[:end]]; ok {
				prefix = rest[:end]
				break
			}
		}
		if prefix == "" {
			return "", false
		}
		parts = append(parts, prefix)
		rest = rest[len(prefix):]
	}

	if len(parts) < 2 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

// LearnFromSelection records that a query resolved to a title the user
// accepted. Future queries with the same misspelling correct directly
// to the selected title.
func (c *Corrector) LearnFromSelection(query, selectedTitle string) {
	q := core.NormalizeTitle(query)
	title := core.NormalizeTitle(selectedTitle)
	if q == "" || title == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if q != title {
		c.learned[q] = title
	}
	c.addTitleLocked(title)
}

// AddKnownTitles seeds the corrector with titles from the work
// collection. Titles are normalized and their words added to the
// frequency table.
func (c *Corrector) AddKnownTitles(titles ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range titles {
		if norm := core.NormalizeTitle(t); norm != "" {
			c.addTitleLocked(norm)
		}
	}
}

// addTitleLocked registers a normalized title. Caller must hold the
// write lock.
func (c *Corrector) addTitleLocked(title string) {
	c.titles[title] = true
	for _, w := range strings.Fields(title) {
		c.wordFreq[w]++
	}
}

// Suggestions returns known titles similar to the query, most similar
// first, for "did you mean" prompts. Exact matches are excluded.
func (c *Corrector) Suggestions(query string, limit int) []string {
	q := core.NormalizeTitle(query)
	if q == "" || limit <= 0 {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	type scored struct {
		title string
		ratio float64
	}
	var candidates []scored
	for title := range c.titles {
		if title == q {
			continue
		}
		if r := similarityRatio(q, title); r >= 0.6 {
			candidates = append(candidates, scored{title, r})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].ratio != candidates[j].ratio {
			return candidates[i].ratio > candidates[j].ratio
		}
		return candidates[i].title < candidates[j].title
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, cand := range candidates {
		out[i] = cand.title
	}
	return out
}

// Snapshot exports the learned state for persistence. Seeded
// corrections are not included; they are compiled in.
func (c *Corrector) Snapshot() *core.VocabularySnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := &core.VocabularySnapshot{
		Corrections: make(map[string]string, len(c.learned)),
		KnownTitles: make([]string, 0, len(c.titles)),
		WordFreq:    make(map[string]uint64, len(c.wordFreq)),
		UpdatedAt:   time.Now(),
	}
	for k, v := range c.learned {
		snap.Corrections[k] = v
	}
	for t := range c.titles {
		snap.KnownTitles = append(snap.KnownTitles, t)
	}
	sort.Strings(snap.KnownTitles)
	for w, f := range c.wordFreq {
		snap.WordFreq[w] = f
	}
	return snap
}

// Restore merges a persisted snapshot into the corrector. Seeded state
// is kept; snapshot frequencies win on conflict.
func (c *Corrector) Restore(snap *core.VocabularySnapshot) {
	if snap == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for k, v := range snap.Corrections {
		c.learned[k] = v
	}
	for _, t := range snap.KnownTitles {
		c.titles[t] = true
	}
	for w, f := range snap.WordFreq {
		c.wordFreq[w] = f
	}
}

// similarityRatio is a normalized edit distance in [0, 1].
func similarityRatio(a, b string) float64 {
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
