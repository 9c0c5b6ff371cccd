package rules

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/poiesic/worklens/core"
)

// likelyExpiredWindow is how close to the end of the term a work must
// be before it is called likely expired rather than active.
const likelyExpiredWindow = 5

// estimatedAuthorshipSpan is added to the publication year to estimate
// a missing creator death year (author assumed 30 at publication,
// living to 75).
const estimatedAuthorshipSpan = 45

// Expiry describes when protection runs out.
type Expiry struct {
	Year           int // 0 = unknown or pre-threshold
	YearsRemaining int // negative when already expired
	Expired        bool
	Basis          string
}

// ExpiryDate returns the last day of the expiry year, or the zero time
// when no expiry year is known.
func (e Expiry) ExpiryDate() time.Time {
	if e.Year == 0 {
		return time.Time{}
	}
	return time.Date(e.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// Analysis is the result of a rule evaluation.
type Analysis struct {
	Status           core.CopyrightStatus
	Confidence       float64
	Reasoning        string
	Expiry           Expiry
	AllowedUses      []core.AllowedUse
	Uncertainties    []string
	Jurisdiction     string
	JurisdictionName string
	RulesApplied     []string
}

// Engine evaluates works against jurisdiction duration tables.
// Safe for concurrent use.
type Engine struct {
	currentYear int

	mu    sync.RWMutex
	table map[string]*core.JurisdictionRule

	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCurrentYear pins the reference year used for term arithmetic.
// Default is the current calendar year; tests pin it for determinism.
func WithCurrentYear(year int) Option {
	return func(e *Engine) {
		e.currentYear = year
	}
}

// WithLogger sets the logger used by the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger.With("component", "rule-engine")
	}
}

// WithJurisdictions adds or replaces rows in the duration table.
// Rows with codes already present win over the built-in seed.
func WithJurisdictions(rows ...*core.JurisdictionRule) Option {
	return func(e *Engine) {
		for _, row := range rows {
			if row != nil && row.Code != "" {
				e.table[row.Code] = row
			}
		}
	}
}

// NewEngine creates an engine seeded with the built-in jurisdiction table.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		currentYear: time.Now().Year(),
		table:       make(map[string]*core.JurisdictionRule),
		logger:      slog.Default().With("component", "rule-engine"),
	}
	for _, row := range DefaultJurisdictions() {
		e.table[row.Code] = row
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Jurisdiction returns the duration table row for a code.
func (e *Engine) Jurisdiction(code string) (*core.JurisdictionRule, error) {
	if code == "" {
		code = DefaultJurisdiction
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	row, ok := e.table[strings.ToUpper(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJurisdiction, code)
	}
	return row, nil
}

// Jurisdictions lists all table rows sorted by code.
func (e *Engine) Jurisdictions() []*core.JurisdictionRule {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rows := make([]*core.JurisdictionRule, 0, len(e.table))
	for _, row := range e.table {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Code < rows[j].Code })
	return rows
}

// Evaluate determines the copyright status of a work in a jurisdiction.
// An empty jurisdiction code evaluates under DefaultJurisdiction; an
// unrecognized code returns ErrUnknownJurisdiction.
func (e *Engine) Evaluate(work *core.Work, jurisdiction string) (*Analysis, error) {
	if work == nil {
		return nil, ErrWorkRequired
	}
	row, err := e.Jurisdiction(jurisdiction)
	if err != nil {
		return nil, err
	}

	status, confidence, reasoning := e.determineStatus(work, row)

	analysis := &Analysis{
		Status:           status,
		Confidence:       confidence,
		Reasoning:        reasoning,
		Expiry:           e.calculateExpiry(work, row),
		AllowedUses:      AllowedUses(status),
		Uncertainties:    identifyUncertainties(work),
		Jurisdiction:     row.Code,
		JurisdictionName: row.Name,
		RulesApplied:     rulesApplied(work, row),
	}

	e.logger.Debug("rule evaluation complete",
		"title", work.Title,
		"jurisdiction", row.Code,
		"status", status.String(),
		"confidence", confidence)

	return analysis, nil
}

// determineStatus walks the decision ladder.
func (e *Engine) determineStatus(work *core.Work, row *core.JurisdictionRule) (core.CopyrightStatus, float64, string) {
	// Public domain cutoff year.
	if work.HasYear() && row.PublicDomainBefore != 0 && work.PublicationYear < row.PublicDomainBefore {
		return core.StatusPublicDomain, 0.95, fmt.Sprintf(
			"Work published in %d, before %d (public domain threshold for %s)",
			work.PublicationYear, row.PublicDomainBefore, row.Code)
	}

	// Creator death plus standard duration.
	if work.CreatorDeathYear != 0 && !work.Corporate {
		since := e.currentYear - work.CreatorDeathYear
		switch {
		case since >= row.StandardDuration:
			return core.StatusExpired, 0.9, fmt.Sprintf(
				"Creator died in %d, %d years ago. Copyright expired after %d years.",
				work.CreatorDeathYear, since, row.StandardDuration)
		case since >= row.StandardDuration-likelyExpiredWindow:
			return core.StatusLikelyExpired, 0.7, fmt.Sprintf(
				"Creator died in %d. Copyright likely expiring within %d years.",
				work.CreatorDeathYear, likelyExpiredWindow)
		default:
			return core.StatusActive, 0.85, fmt.Sprintf(
				"Creator died in %d. Copyright protected for approximately %d more years.",
				work.CreatorDeathYear, row.StandardDuration-since)
		}
	}

	// Corporate and anonymous works run from publication.
	if work.Corporate || work.Anonymous {
		duration := row.AnonymousDuration
		kind := "Anonymous"
		if work.Corporate {
			duration = row.CorporateDuration
			kind = "Corporate"
		}
		if work.HasYear() {
			since := e.currentYear - work.PublicationYear
			if since >= duration {
				return core.StatusExpired, 0.85, fmt.Sprintf(
					"%s work published in %d. Copyright expired after %d years.",
					kind, work.PublicationYear, duration)
			}
			return core.StatusActive, 0.8, fmt.Sprintf(
				"Work published in %d. Protected for approximately %d more years.",
				work.PublicationYear, duration-since)
		}
	}

	// Publication age heuristics when death data is missing.
	if work.HasYear() {
		since := e.currentYear - work.PublicationYear
		switch {
		case since > 150:
			return core.StatusPublicDomain, 0.8, fmt.Sprintf(
				"Work published %d years ago. Highly likely to be in public domain.", since)
		case since > 100:
			return core.StatusLikelyExpired, 0.65, fmt.Sprintf(
				"Work published %d years ago. Likely in public domain, but creator death year unknown.", since)
		case since > 70:
			return core.StatusUnknown, 0.5, fmt.Sprintf(
				"Work published %d years ago. Status uncertain without creator death information.", since)
		case since < 50:
			return core.StatusLikelyActive, 0.7, fmt.Sprintf(
				"Work published in %d. Likely still under copyright protection.", work.PublicationYear)
		}
	}

	return core.StatusUnknown, 0.3,
		"Insufficient data to determine copyright status. Publication year and/or creator death year unknown."
}

// calculateExpiry estimates when protection runs out.
func (e *Engine) calculateExpiry(work *core.Work, row *core.JurisdictionRule) Expiry {
	// Pre-threshold works are already out of term.
	if work.HasYear() && row.PublicDomainBefore != 0 && work.PublicationYear < row.PublicDomainBefore {
		return Expiry{Expired: true, Basis: "public_domain_threshold"}
	}

	if work.CreatorDeathYear != 0 && !work.Corporate && !work.Anonymous {
		expiryYear := work.CreatorDeathYear + row.StandardDuration
		return Expiry{
			Year:           expiryYear,
			YearsRemaining: expiryYear - e.currentYear,
			Expired:        expiryYear <= e.currentYear,
			Basis:          fmt.Sprintf("creator_death + %d years", row.StandardDuration),
		}
	}

	if work.HasYear() && (work.Corporate || work.Anonymous) {
		duration := row.AnonymousDuration
		if work.Corporate {
			duration = row.CorporateDuration
		}
		expiryYear := work.PublicationYear + duration
		return Expiry{
			Year:           expiryYear,
			YearsRemaining: expiryYear - e.currentYear,
			Expired:        expiryYear <= e.currentYear,
			Basis:          fmt.Sprintf("publication + %d years", duration),
		}
	}

	if work.HasYear() {
		estimatedDeath := work.PublicationYear + estimatedAuthorshipSpan
		expiryYear := estimatedDeath + row.StandardDuration
		return Expiry{
			Year:           expiryYear,
			YearsRemaining: expiryYear - e.currentYear,
			Expired:        expiryYear <= e.currentYear,
			Basis:          "estimated (publication year only)",
		}
	}

	return Expiry{Basis: "unknown"}
}

// AllowedUses maps a status to per-use-type permissions.
func AllowedUses(status core.CopyrightStatus) []core.AllowedUse {
	uses := make([]core.AllowedUse, 0, len(core.UseTypes))
	for _, use := range core.UseTypes {
		allowed, conditions, confidence := checkUse(use, status)
		uses = append(uses, core.AllowedUse{
			Use:        use,
			Allowed:    allowed,
			Conditions: conditions,
			Confidence: confidence,
		})
	}
	return uses
}

func checkUse(use core.UseType, status core.CopyrightStatus) (bool, string, float64) {
	switch status {
	case core.StatusPublicDomain:
		return true, "", 0.95
	case core.StatusExpired:
		return true, "", 0.9
	case core.StatusLikelyExpired:
		return true, "Verify expiry before commercial use", 0.7
	case core.StatusActive:
		switch use {
		case core.UsePersonal:
			return true, "Personal use typically permitted", 0.8
		case core.UseEducational:
			return true, "Fair use for educational purposes may apply", 0.6
		default:
			return false, "Requires permission from rights holder", 0.8
		}
	case core.StatusLikelyActive:
		if use == core.UsePersonal || use == core.UseEducational {
			return true, "Likely permitted under fair use", 0.6
		}
		return false, "Likely requires permission", 0.7
	default:
		return false, "Copyright status unclear; obtain permission to be safe", 0.4
	}
}

// identifyUncertainties lists the metadata gaps that weaken the result.
func identifyUncertainties(work *core.Work) []string {
	var out []string
	if !work.HasYear() {
		out = append(out, "Publication year unknown")
	}
	if work.CreatorDeathYear == 0 && !work.Corporate {
		out = append(out, "Creator death year unknown")
	}
	if !work.HasCreator() {
		out = append(out, "Creator/author unknown")
	}
	if work.Corporate {
		out = append(out, "Corporate authorship may have special rules")
	}
	return out
}

// rulesApplied lists the table rows that drove the determination.
func rulesApplied(work *core.Work, row *core.JurisdictionRule) []string {
	applied := []string{fmt.Sprintf("Jurisdiction: %s (%s)", row.Name, row.Code)}

	switch {
	case work.Corporate:
		applied = append(applied, fmt.Sprintf("Corporate work rule: %d years from publication", row.CorporateDuration))
	case work.Anonymous:
		applied = append(applied, fmt.Sprintf("Anonymous work rule: %d years from publication", row.AnonymousDuration))
	default:
		applied = append(applied, fmt.Sprintf("Standard rule: %d years after creator death", row.StandardDuration))
	}

	if row.PublicDomainBefore != 0 {
		applied = append(applied, fmt.Sprintf("Works published before %d are public domain", row.PublicDomainBefore))
	}
	return applied
}
