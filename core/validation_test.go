package core

import (
	"errors"
	"math"
	"testing"
)

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   *Query
		wantErr error
	}{
		{
			name:    "valid query",
			query:   &Query{Text: "pride and prejudice"},
			wantErr: nil,
		},
		{
			name:    "valid query with filters",
			query:   &Query{Text: "hamlet", ContentType: ContentTypeBook, Jurisdiction: "UK"},
			wantErr: nil,
		},
		{
			name:    "nil query",
			query:   nil,
			wantErr: ErrInvalidQuery,
		},
		{
			name:    "empty text",
			query:   &Query{},
			wantErr: ErrEmptyQueryText,
		},
		{
			name:    "whitespace-only text",
			query:   &Query{Text: "   \t\n"},
			wantErr: ErrEmptyQueryText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.query)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateQuery() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateQuery() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateWork(t *testing.T) {
	tests := []struct {
		name    string
		work    *Work
		wantErr error
	}{
		{
			name: "valid work",
			work: &Work{
				Title:            "Pride and Prejudice",
				Creator:          "Jane Austen",
				PublicationYear:  1813,
				CreatorDeathYear: 1817,
				ContentType:      ContentTypeBook,
			},
			wantErr: nil,
		},
		{
			name:    "valid work with unknown years",
			work:    &Work{Title: "Anonymous Ballad"},
			wantErr: nil,
		},
		{
			name:    "nil work",
			work:    nil,
			wantErr: ErrInvalidWork,
		},
		{
			name:    "empty title",
			work:    &Work{Creator: "Jane Austen"},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "publication year too early",
			work:    &Work{Title: "Scroll", PublicationYear: 400},
			wantErr: ErrInvalidYear,
		},
		{
			name:    "death year in the far future",
			work:    &Work{Title: "Novel", CreatorDeathYear: 3000},
			wantErr: ErrInvalidYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWork(tt.work)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateWork() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateWork() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateStatus(t *testing.T) {
	for _, s := range []CopyrightStatus{
		StatusPublicDomain, StatusExpired, StatusLikelyExpired,
		StatusUnknown, StatusLikelyActive, StatusActive,
	} {
		if err := ValidateStatus(s); err != nil {
			t.Errorf("ValidateStatus(%v) = %v, want nil", s, err)
		}
	}

	if err := ValidateStatus(CopyrightStatus(0)); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("ValidateStatus(0) = %v, want ErrInvalidStatus", err)
	}
	if err := ValidateStatus(CopyrightStatus(99)); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("ValidateStatus(99) = %v, want ErrInvalidStatus", err)
	}
}

func TestValidateFeatures(t *testing.T) {
	valid := make(FeatureVector, FeatureCount)
	if err := ValidateFeatures(valid); err != nil {
		t.Errorf("ValidateFeatures(zero vector) = %v, want nil", err)
	}

	short := make(FeatureVector, FeatureCount-1)
	if err := ValidateFeatures(short); !errors.Is(err, ErrInvalidFeatures) {
		t.Errorf("ValidateFeatures(short) = %v, want ErrInvalidFeatures", err)
	}

	withNaN := make(FeatureVector, FeatureCount)
	withNaN[7] = math.NaN()
	if err := ValidateFeatures(withNaN); !errors.Is(err, ErrInvalidFeatures) {
		t.Errorf("ValidateFeatures(NaN) = %v, want ErrInvalidFeatures", err)
	}
}

func TestValidateJurisdictionRule(t *testing.T) {
	valid := &JurisdictionRule{
		Code: "US", Name: "United States",
		StandardDuration: 70, CorporateDuration: 95, AnonymousDuration: 95,
		PublicDomainBefore: 1929,
	}
	if err := ValidateJurisdictionRule(valid); err != nil {
		t.Errorf("ValidateJurisdictionRule(valid) = %v, want nil", err)
	}

	if err := ValidateJurisdictionRule(nil); !errors.Is(err, ErrInvalidJurisdictionRule) {
		t.Errorf("ValidateJurisdictionRule(nil) = %v, want ErrInvalidJurisdictionRule", err)
	}

	noCode := &JurisdictionRule{StandardDuration: 70, CorporateDuration: 70, AnonymousDuration: 70}
	if err := ValidateJurisdictionRule(noCode); !errors.Is(err, ErrInvalidJurisdictionRule) {
		t.Errorf("ValidateJurisdictionRule(no code) = %v, want ErrInvalidJurisdictionRule", err)
	}

	badDuration := &JurisdictionRule{Code: "XX", StandardDuration: 0, CorporateDuration: 70, AnonymousDuration: 70}
	if err := ValidateJurisdictionRule(badDuration); !errors.Is(err, ErrInvalidJurisdictionRule) {
		t.Errorf("ValidateJurisdictionRule(zero duration) = %v, want ErrInvalidJurisdictionRule", err)
	}
}
