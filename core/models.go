package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ContentType categorizes a creative work.
type ContentType string

// Supported content types. Unrecognized values map to ContentTypeUnknown.
const (
	ContentTypeBook     ContentType = "book"
	ContentTypeMusic    ContentType = "music"
	ContentTypeFilm     ContentType = "film"
	ContentTypeArticle  ContentType = "article"
	ContentTypeImage    ContentType = "image"
	ContentTypeSoftware ContentType = "software"
	ContentTypeArtwork  ContentType = "artwork"
	ContentTypeUnknown  ContentType = "unknown"
)

// ContentTypes lists the supported content types in one-hot encoding order.
// The order is part of the feature schema and must not change.
var ContentTypes = []ContentType{
	ContentTypeBook,
	ContentTypeMusic,
	ContentTypeFilm,
	ContentTypeArticle,
	ContentTypeImage,
	ContentTypeSoftware,
	ContentTypeArtwork,
	ContentTypeUnknown,
}

// CanonicalContentType maps an arbitrary type string to a supported
// content type, falling back to ContentTypeUnknown.
func CanonicalContentType(s string) ContentType {
	for _, ct := range ContentTypes {
		if string(ct) == s {
			return ct
		}
	}
	return ContentTypeUnknown
}

// CopyrightStatus is the inferred protection status of a work.
type CopyrightStatus int

const (
	// StatusPublicDomain means the work predates the jurisdiction's
	// public domain cutoff or its protection ended long ago.
	StatusPublicDomain CopyrightStatus = iota + 1
	// StatusExpired means the protection term has run out.
	StatusExpired
	// StatusLikelyExpired means the term has probably run out but key
	// metadata is missing or expiry is within the near horizon.
	StatusLikelyExpired
	// StatusUnknown means available metadata cannot support a determination.
	StatusUnknown
	// StatusLikelyActive means the work is probably still protected.
	StatusLikelyActive
	// StatusActive means the work is under protection.
	StatusActive
)

// String returns the canonical wire name of the status.
func (s CopyrightStatus) String() string {
	switch s {
	case StatusPublicDomain:
		return "public_domain"
	case StatusExpired:
		return "expired"
	case StatusLikelyExpired:
		return "likely_expired"
	case StatusUnknown:
		return "unknown"
	case StatusLikelyActive:
		return "likely_active"
	case StatusActive:
		return "active"
	default:
		return "unknown"
	}
}

// ParseStatus converts a wire name back to a CopyrightStatus.
// Unrecognized names map to StatusUnknown.
func ParseStatus(s string) CopyrightStatus {
	switch s {
	case "public_domain":
		return StatusPublicDomain
	case "expired":
		return StatusExpired
	case "likely_expired":
		return StatusLikelyExpired
	case "likely_active":
		return StatusLikelyActive
	case "active":
		return StatusActive
	default:
		return StatusUnknown
	}
}

// UseType is a category of use a caller may want to make of a work.
type UseType int

const (
	UsePersonal UseType = iota + 1
	UseEducational
	UseCommercial
	UseRemix
	UseDerivative
	UseDistribution
)

// UseTypes lists all use types in display order.
var UseTypes = []UseType{
	UsePersonal, UseEducational, UseCommercial,
	UseRemix, UseDerivative, UseDistribution,
}

// String returns the canonical wire name of the use type.
func (u UseType) String() string {
	switch u {
	case UsePersonal:
		return "personal"
	case UseEducational:
		return "educational"
	case UseCommercial:
		return "commercial"
	case UseRemix:
		return "remix"
	case UseDerivative:
		return "derivative"
	case UseDistribution:
		return "distribution"
	default:
		return "unknown"
	}
}

// Query is a title search request.
type Query struct {
	Text         string
	ContentType  ContentType // optional filter, empty = any
	Jurisdiction string      // optional, empty = engine default
	SessionID    string      // optional, generated when empty
}

// Work is a candidate creative work supplied by a collection source.
// Search and inference score works but never mutate source metadata.
type Work struct {
	Id               ID
	Title            string
	Creator          string // empty = unknown
	PublicationYear  int    // 0 = unknown
	CreatorDeathYear int    // 0 = unknown or alive
	ContentType      ContentType
	SourceName       string
	SourceConfidence float64   // 0-1 trust in the source metadata
	Corporate        bool      // corporate authorship
	Anonymous        bool      // anonymous or pseudonymous work
	Vector           []float32 // cached title embedding (populated lazily)
	InsertedAt       time.Time
	UpdatedAt        time.Time
}

// HasCreator reports whether creator metadata is present.
func (w *Work) HasCreator() bool { return w.Creator != "" }

// HasYear reports whether a publication year is present.
func (w *Work) HasYear() bool { return w.PublicationYear != 0 }

// Completeness returns the fraction of optional metadata fields present.
func (w *Work) Completeness() float64 {
	n := 0.0
	if w.HasCreator() {
		n++
	}
	if w.HasYear() {
		n++
	}
	if w.ContentType != "" && w.ContentType != ContentTypeUnknown {
		n++
	}
	return n / 3
}

// Match is a work resolved from a query with its relevance score.
// Matches live for the duration of one search and are not persisted.
type Match struct {
	Work        *Work
	Score       float64
	Explanation string
}

// FeatureCount is the length of the feature schema. The schema is an
// external contract: changing the count or the order of slots
// invalidates stored model weights.
const FeatureCount = 33

// FeatureVector is a fixed-length numeric encoding of a work's metadata.
// A valid vector has exactly FeatureCount entries and no NaN values.
type FeatureVector []float64

// JurisdictionRule is a row of the jurisdiction duration table.
// Rows are read-only at inference time.
type JurisdictionRule struct {
	Code                 string
	Name                 string
	StandardDuration     int // years after creator death
	CorporateDuration    int // years from publication for corporate works
	AnonymousDuration    int // years from publication for anonymous works
	PublicDomainBefore   int // works published before this year are PD, 0 = none
	RequiresRegistration bool
	Notes                string
}

// ModelState is the persistent state of the incremental predictor.
// It is owned by the predictor and mutated only through training.
type ModelState struct {
	Weights         []float64
	Bias            float64
	SampleCount     int64
	RollingAccuracy float64
	LastTrained     time.Time
}

// TrainingExample is a labeled observation consumed by incremental training.
type TrainingExample struct {
	Features     FeatureVector
	PublicDomain bool
	Weight       float64 // source weight, 0 means 1.0
	Source       string  // e.g. "rule_based", "user_feedback", "verified_data"
}

// VocabularySnapshot is the persistent form of the spell corrector's
// learned state.
type VocabularySnapshot struct {
	Corrections map[string]string
	KnownTitles []string
	WordFreq    map[string]uint64
	UpdatedAt   time.Time
}

// AllowedUse is a per-use-type decision with conditions and confidence.
type AllowedUse struct {
	Use        UseType
	Allowed    bool
	Conditions string // empty = unconditional
	Confidence float64
}

// SmartTag is the externally visible result of status inference.
// A fresh tag is generated per request; tags are immutable once produced.
type SmartTag struct {
	Title              string
	Creator            string
	PublicationYear    int
	ContentType        ContentType
	Status             CopyrightStatus
	StatusEmoji        string
	StatusText         string
	StatusColor        string
	ExpiryYear         int // 0 = unknown or not applicable
	ExpiryTimeline     string
	AllowedUses        []AllowedUse
	AllowedUsesSummary []string
	ConfidenceScore    float64
	ConfidenceLevel    string
	RiskLevel          string
	AIReasoning        string
	Disclaimer         string
	GeneratedAt        time.Time
	Jurisdiction       string
}
