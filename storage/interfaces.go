package storage

import (
	"context"

	"github.com/poiesic/worklens/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}

// WorkRepository provides operations for managing works and their
// cached title embeddings.
type WorkRepository interface {
	Repository

	// AddWorks adds one or more works to storage.
	// IDs are content-based (IDFromContent of normalized title and
	// creator), so re-adding the same work overwrites it in place.
	// Sets InsertedAt timestamp if not already set.
	// Returns the works with IDs and timestamps populated.
	AddWorks(ctx context.Context, works ...*core.Work) ([]*core.Work, error)

	// UpdateWorks updates existing works.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any work doesn't exist.
	UpdateWorks(ctx context.Context, works ...*core.Work) ([]*core.Work, error)

	// DeleteWorks removes works by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any work doesn't exist.
	DeleteWorks(ctx context.Context, ids ...core.ID) error

	// GetWork retrieves a single work by ID.
	// Returns ErrNotFound if the work doesn't exist.
	GetWork(ctx context.Context, id core.ID) (*core.Work, error)

	// GetWorks retrieves multiple works by their IDs.
	// Returns only the works that exist (no error for missing works).
	GetWorks(ctx context.Context, ids ...core.ID) ([]*core.Work, error)

	// FindByTitle retrieves works whose normalized title matches
	// exactly. Multiple works can share a title (different creators).
	FindByTitle(ctx context.Context, title string) ([]*core.Work, error)

	// ListWorks retrieves up to limit works, optionally filtered by
	// content type (empty = all types). Ordering is unspecified but
	// stable for a given store.
	ListWorks(ctx context.Context, contentType core.ContentType, limit int) ([]*core.Work, error)

	// ListTitles retrieves every stored title. Used to seed the spell
	// corrector vocabulary and the lexical match corpus.
	ListTitles(ctx context.Context) ([]string, error)

	// FindSimilar finds works whose cached title vectors are similar
	// to the given vector. Returns matches with similarity >=
	// minSimilarity, up to limit, ordered by score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]core.Match, error)
}

// VocabularyRepository persists the spell corrector's learned state.
type VocabularyRepository interface {
	Repository

	// SaveVocabulary persists a vocabulary snapshot, replacing any
	// previous one.
	SaveVocabulary(ctx context.Context, snapshot *core.VocabularySnapshot) error

	// LoadVocabulary retrieves the stored vocabulary snapshot.
	// Returns nil, nil when no snapshot has been saved.
	LoadVocabulary(ctx context.Context) (*core.VocabularySnapshot, error)
}

// ModelRepository persists predictor model state.
type ModelRepository interface {
	Repository

	// SaveModelState persists a model state snapshot, replacing any
	// previous one.
	SaveModelState(ctx context.Context, state *core.ModelState) error

	// LoadModelState retrieves the stored model state.
	// Returns nil, nil when no state has been saved.
	LoadModelState(ctx context.Context) (*core.ModelState, error)
}

// JurisdictionRepository persists jurisdiction duration tables.
type JurisdictionRepository interface {
	Repository

	// PutJurisdictions inserts or replaces jurisdiction rows, keyed
	// by code.
	PutJurisdictions(ctx context.Context, rows ...*core.JurisdictionRule) error

	// GetJurisdiction retrieves one jurisdiction row by code.
	// Returns ErrNotFound if the code is not stored.
	GetJurisdiction(ctx context.Context, code string) (*core.JurisdictionRule, error)

	// ListJurisdictions retrieves all stored jurisdiction rows,
	// ordered by code.
	ListJurisdictions(ctx context.Context) ([]*core.JurisdictionRule, error)
}
