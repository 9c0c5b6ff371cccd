// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Years outside this range are treated as data errors rather than
// legitimately ancient or future works.
const (
	MinYear = 1000
	MaxYear = 2100
)

// ValidateQuery validates a Query according to domain rules.
//
// Validation rules:
//   - Text must contain at least one non-whitespace character
//
// NOT validated (optional, normalized downstream):
//   - ContentType (unrecognized values map to unknown)
//   - Jurisdiction (resolved against the rule table at evaluation time)
//   - SessionID (generated when empty)
func ValidateQuery(query *Query) error {
	if query == nil {
		return fmt.Errorf("%w: query is nil", ErrInvalidQuery)
	}

	if strings.TrimSpace(query.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, ErrEmptyQueryText)
	}

	return nil
}

// ValidateWork validates a Work according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - PublicationYear, when set, must be in [MinYear, MaxYear]
//   - CreatorDeathYear, when set, must be in [MinYear, MaxYear]
//
// NOT validated (populated lazily or legitimately absent):
//   - Creator, Vector, SourceConfidence
//   - ID (0 is valid until assigned)
func ValidateWork(work *Work) error {
	if work == nil {
		return fmt.Errorf("%w: work is nil", ErrInvalidWork)
	}

	if work.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidWork, ErrEmptyTitle)
	}

	if work.PublicationYear != 0 && !IsValidYear(work.PublicationYear) {
		return fmt.Errorf("%w: %w: publication year %d", ErrInvalidWork, ErrInvalidYear, work.PublicationYear)
	}

	if work.CreatorDeathYear != 0 && !IsValidYear(work.CreatorDeathYear) {
		return fmt.Errorf("%w: %w: creator death year %d", ErrInvalidWork, ErrInvalidYear, work.CreatorDeathYear)
	}

	return nil
}

// ValidateStatus validates that a CopyrightStatus has a valid value.
func ValidateStatus(status CopyrightStatus) error {
	if status < StatusPublicDomain || status > StatusActive {
		return fmt.Errorf("%w: value %d", ErrInvalidStatus, status)
	}
	return nil
}

// ValidateFeatures validates a FeatureVector according to the schema.
//
// Validation rules:
//   - Exactly FeatureCount entries
//   - No NaN or infinite values
func ValidateFeatures(features FeatureVector) error {
	if len(features) != FeatureCount {
		return fmt.Errorf("%w: got %d features, want %d", ErrInvalidFeatures, len(features), FeatureCount)
	}

	for i, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: feature %d is %v", ErrInvalidFeatures, i, v)
		}
	}

	return nil
}

// ValidateJurisdictionRule validates a JurisdictionRule table row.
func ValidateJurisdictionRule(rule *JurisdictionRule) error {
	if rule == nil {
		return fmt.Errorf("%w: rule is nil", ErrInvalidJurisdictionRule)
	}

	if rule.Code == "" {
		return fmt.Errorf("%w: code cannot be empty", ErrInvalidJurisdictionRule)
	}

	if rule.StandardDuration <= 0 || rule.CorporateDuration <= 0 || rule.AnonymousDuration <= 0 {
		return fmt.Errorf("%w: durations must be positive", ErrInvalidJurisdictionRule)
	}

	return nil
}

// IsValidYear checks that a year is within the plausible range.
func IsValidYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
