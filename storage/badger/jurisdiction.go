package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/storage"
)

// JurisdictionRepository implements storage.JurisdictionRepository for BadgerDB.
type JurisdictionRepository struct {
	backend *Backend
}

var _ storage.JurisdictionRepository = (*JurisdictionRepository)(nil)

// NewJurisdictionRepository creates a new JurisdictionRepository.
func NewJurisdictionRepository(backend *Backend) *JurisdictionRepository {
	return &JurisdictionRepository{
		backend: backend,
	}
}

// Close releases resources. JurisdictionRepository has no resources to release.
func (r *JurisdictionRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *JurisdictionRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutJurisdictions inserts or replaces jurisdiction rows, keyed by code.
func (r *JurisdictionRepository) PutJurisdictions(ctx context.Context, rows ...*core.JurisdictionRule) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, row := range rows {
			key := makeJurisdictionKey(row.Code)
			value := storage.MarshalJurisdictionRule(row)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetJurisdiction retrieves one jurisdiction row by code.
func (r *JurisdictionRepository) GetJurisdiction(ctx context.Context, code string) (*core.JurisdictionRule, error) {
	var result *core.JurisdictionRule
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeJurisdictionKey(code))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalJurisdictionRule(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// ListJurisdictions retrieves all stored jurisdiction rows, ordered by
// code. Key order is code order, so no explicit sort is needed.
func (r *JurisdictionRepository) ListJurisdictions(ctx context.Context) ([]*core.JurisdictionRule, error) {
	var results []*core.JurisdictionRule
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(jurisdictionPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var row *core.JurisdictionRule
			err := iter.Item().Value(func(val []byte) error {
				var err error
				row, err = storage.UnmarshalJurisdictionRule(val)
				return err
			})
			if err != nil {
				return err
			}
			if row != nil {
				results = append(results, row)
			}
		}
		return nil
	}, false)

	return results, err
}
