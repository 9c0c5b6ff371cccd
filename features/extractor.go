package features

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/poiesic/worklens/core"
)

// defaultCopyrightDuration is the post-mortem term assumed when
// computing likelihood features. The rule engine carries the real
// per-jurisdiction table; features only need a broad prior.
const defaultCopyrightDuration = 70

// publicDomainThresholds gives the publication-year cutoff used for
// threshold features, keyed by jurisdiction code.
var publicDomainThresholds = map[string]int{
	"US": 1928,
	"EU": 1900,
}

const fallbackThreshold = 1928

var yearInTitle = regexp.MustCompile(`\b(19|20)\d{2}\b`)

var editionKeywords = []string{"edition", "volume", "revised"}
var editionTokens = map[string]bool{"ed": true, "vol": true}

var corporateKeywords = []string{"inc", "corp", "llc", "ltd", "company", "studio", "production"}

var classicalNames = []string{
	"shakespeare", "mozart", "beethoven", "bach", "dickens",
	"austen", "twain", "poe", "homer", "plato", "aristotle",
}

// Extractor encodes work metadata into feature vectors.
// Extraction is deterministic for a fixed reference year.
type Extractor struct {
	currentYear int
	logger      *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithCurrentYear pins the reference year used for age features.
// Default is the current calendar year; tests pin it for determinism.
func WithCurrentYear(year int) Option {
	return func(e *Extractor) {
		e.currentYear = year
	}
}

// WithLogger sets the logger used by the extractor.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger.With("component", "feature-extractor")
	}
}

// NewExtractor creates an extractor with the current year as reference.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		currentYear: time.Now().Year(),
		logger:      slog.Default().With("component", "feature-extractor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract encodes a work into the 33-slot feature vector.
// Always returns a full-length vector, never an error: missing
// metadata encodes as neutral slot values.
func (e *Extractor) Extract(work *core.Work, jurisdiction string) core.FeatureVector {
	v := make(core.FeatureVector, 0, core.FeatureCount)

	v = append(v, e.yearFeatures(work, jurisdiction)...)
	v = append(v, e.titleFeatures(work.Title)...)
	v = append(v, e.creatorFeatures(work)...)
	v = append(v, typeFeatures(work.ContentType)...)
	v = append(v, e.likelihoodFeatures(work, jurisdiction)...)

	return v
}

// yearFeatures covers slots 0-10: publication age, threshold and range
// indicators, then creator death features.
func (e *Extractor) yearFeatures(work *core.Work, jurisdiction string) []float64 {
	var v []float64

	if work.HasYear() {
		year := work.PublicationYear
		age := float64(e.currentYear - year)

		v = append(v, clamp01(age/200))
		v = append(v, clamp01(age/10/20))

		threshold := pdThreshold(jurisdiction)
		v = append(v, boolFeature(year < threshold))

		v = append(v, boolFeature(year < 1900))
		v = append(v, boolFeature(year >= 1900 && year < 1950))
		v = append(v, boolFeature(year >= 1950 && year < 1980))
		v = append(v, boolFeature(year >= 1980 && year < 2000))
		v = append(v, boolFeature(year >= 2000))
	} else {
		v = append(v, 0.5, 0.5, 0, 0, 0, 0, 0, 0)
	}

	if work.CreatorDeathYear != 0 {
		since := e.currentYear - work.CreatorDeathYear
		v = append(v, clamp01(float64(since)/150))
		v = append(v, boolFeature(since >= 70))
		v = append(v, boolFeature(since >= 95))
	} else {
		v = append(v, 0.5, 0, 0)
	}

	return v
}

// titleFeatures covers slots 11-16.
func (e *Extractor) titleFeatures(title string) []float64 {
	if title == "" {
		return []float64{0, 0, 0, 0, 0, 0}
	}

	normalized := core.NormalizeTitle(title)
	words := strings.Fields(normalized)

	hasEdition := false
	for _, kw := range editionKeywords {
		if strings.Contains(normalized, kw) {
			hasEdition = true
			break
		}
	}
	if !hasEdition {
		for _, w := range words {
			if editionTokens[w] {
				hasEdition = true
				break
			}
		}
	}

	nonASCII := 0
	for _, r := range title {
		if r > 127 {
			nonASCII++
		}
	}
	titleLen := len([]rune(title))
	if titleLen == 0 {
		titleLen = 1
	}

	return []float64{
		clamp01(float64(len(normalized)) / 100),
		clamp01(float64(len(words)) / 20),
		boolFeature(hasEdition),
		boolFeature(yearInTitle.MatchString(title)),
		boolFeature(strings.HasPrefix(normalized, "the ")),
		float64(nonASCII) / float64(titleLen),
	}
}

// creatorFeatures covers slots 17-20.
func (e *Extractor) creatorFeatures(work *core.Work) []float64 {
	if !work.HasCreator() {
		return []float64{0, 0, 0, 0.5}
	}

	normalized := core.NormalizeCreator(work.Creator)

	isCorporate := work.Corporate
	if !isCorporate {
		for _, kw := range corporateKeywords {
			if strings.Contains(normalized, kw) {
				isCorporate = true
				break
			}
		}
	}

	isClassical := false
	for _, name := range classicalNames {
		if strings.Contains(normalized, name) {
			isClassical = true
			break
		}
	}

	aliveProb := 0.5
	if work.CreatorDeathYear != 0 {
		aliveProb = 0
	}

	return []float64{
		boolFeature(isCorporate),
		clamp01(float64(len(strings.Fields(normalized))) / 5),
		boolFeature(isClassical),
		aliveProb,
	}
}

// typeFeatures covers slots 21-28, a one-hot over core.ContentTypes.
func typeFeatures(ct core.ContentType) []float64 {
	v := make([]float64, len(core.ContentTypes))
	canonical := core.CanonicalContentType(string(ct))
	for i, t := range core.ContentTypes {
		if t == canonical {
			v[i] = 1
			break
		}
	}
	return v
}

// likelihoodFeatures covers slots 29-32: coarse public domain priors.
func (e *Extractor) likelihoodFeatures(work *core.Work, jurisdiction string) []float64 {
	pdProb := 0.5
	if work.HasYear() {
		switch {
		case work.PublicationYear < pdThreshold(jurisdiction):
			pdProb = 0.95
		case work.PublicationYear < 1950:
			pdProb = 0.7
		case work.PublicationYear < 1980:
			pdProb = 0.3
		default:
			pdProb = 0.1
		}
	}

	deathProb := 0.4
	if work.CreatorDeathYear != 0 {
		since := e.currentYear - work.CreatorDeathYear
		switch {
		case since >= defaultCopyrightDuration:
			deathProb = 0.9
		case since >= defaultCopyrightDuration-10:
			deathProb = 0.6
		default:
			deathProb = 0.2
		}
	}

	var combined float64
	switch {
	case work.HasYear() && work.CreatorDeathYear != 0:
		combined = (pdProb + deathProb) / 2
	case work.HasYear():
		combined = pdProb
	case work.CreatorDeathYear != 0:
		combined = deathProb
	default:
		combined = 0.5
	}

	adjustment := 0.0
	if work.ContentType == core.ContentTypeSoftware {
		adjustment = 0.1
	} else if work.ContentType == core.ContentTypeBook && work.HasYear() && work.PublicationYear < 1950 {
		adjustment = 0.2
	}

	return []float64{pdProb, deathProb, combined, adjustment}
}

// Names returns the canonical feature names in slot order.
func Names() []string {
	return []string{
		"normalized_age", "decades_since_pub", "before_pd_threshold",
		"pre_1900", "year_1900_1950", "year_1950_1980", "year_1980_2000", "post_2000",
		"years_since_death_normalized", "death_70_plus", "death_95_plus",

		"title_length", "word_count", "has_edition", "has_year_in_title",
		"starts_with_the", "non_ascii_ratio",

		"is_corporate", "creator_word_count", "is_classical", "creator_alive_prob",

		"type_book", "type_music", "type_film", "type_article",
		"type_image", "type_software", "type_artwork", "type_unknown",

		"pd_probability", "death_pd_probability", "combined_probability", "type_adjustment",
	}
}

func pdThreshold(jurisdiction string) int {
	if t, ok := publicDomainThresholds[jurisdiction]; ok {
		return t
	}
	return fallbackThreshold
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
