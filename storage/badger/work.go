package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/storage"
)

// WorkRepository implements storage.WorkRepository for BadgerDB.
type WorkRepository struct {
	backend *Backend
}

var _ storage.WorkRepository = (*WorkRepository)(nil)

// NewWorkRepository creates a new WorkRepository.
func NewWorkRepository(backend *Backend) (*WorkRepository, error) {
	return &WorkRepository{
		backend: backend,
	}, nil
}

// Close releases resources. WorkRepository has no resources to release.
func (r *WorkRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *WorkRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// FindSimilar delegates to the backend.
func (r *WorkRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]core.Match, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// workID derives the content-based ID for a work. Identical title and
// creator pairs always map to the same ID, so re-adding a work
// overwrites it in place.
func workID(work *core.Work) core.ID {
	return core.IDFromContent(core.NormalizeTitle(work.Title) + "|" + core.NormalizeCreator(work.Creator))
}

// AddWorks adds one or more works to storage.
func (r *WorkRepository) AddWorks(ctx context.Context, works ...*core.Work) ([]*core.Work, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, work := range works {
			work.Id = workID(work)

			now := time.Now().UTC()
			if work.InsertedAt.IsZero() {
				work.InsertedAt = now
			}
			work.UpdatedAt = now

			// Store primary record
			key := makeWorkKey(work.Id)
			value := storage.MarshalWork(work)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update title index
			titleKey := makeWorkTitleKey(core.NormalizeTitle(work.Title), work.Id)
			if err := tx.Set(titleKey, storage.MarshalID(work.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return works, err
}

// UpdateWorks updates existing works. The ID stays fixed even when the
// title changes, so the title index entry may move.
func (r *WorkRepository) UpdateWorks(ctx context.Context, works ...*core.Work) ([]*core.Work, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, work := range works {
			key := makeWorkKey(work.Id)

			// Read old record to detect changes
			old, err := readWork(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			work.InsertedAt = old.InsertedAt
			work.UpdatedAt = time.Now().UTC()

			// Store updated record
			value := storage.MarshalWork(work)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update title index if the normalized title changed
			oldTitle := core.NormalizeTitle(old.Title)
			newTitle := core.NormalizeTitle(work.Title)
			if oldTitle != newTitle {
				if err := tx.Delete(makeWorkTitleKey(oldTitle, work.Id)); err != nil {
					return err
				}
				if err := tx.Set(makeWorkTitleKey(newTitle, work.Id), storage.MarshalID(work.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return works, err
}

// DeleteWorks removes works by their IDs.
func (r *WorkRepository) DeleteWorks(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeWorkKey(id)

			// Read record to get metadata for index cleanup
			work, err := readWork(tx, key)
			if err != nil {
				return err
			}
			if work == nil {
				return storage.ErrNotFound
			}

			// Delete from title index
			titleKey := makeWorkTitleKey(core.NormalizeTitle(work.Title), work.Id)
			if err := tx.Delete(titleKey); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetWork retrieves a single work by ID.
func (r *WorkRepository) GetWork(ctx context.Context, id core.ID) (*core.Work, error) {
	var result *core.Work
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeWorkKey(id)
		var err error
		result, err = readWork(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetWorks retrieves multiple works by their IDs.
func (r *WorkRepository) GetWorks(ctx context.Context, ids ...core.ID) ([]*core.Work, error) {
	var result []*core.Work
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeWorkKey(id)
			work, err := readWork(tx, key)
			if err != nil {
				return err
			}
			if work != nil {
				result = append(result, work)
			}
		}
		return nil
	}, false)
	return result, err
}

// FindByTitle retrieves works whose normalized title matches exactly.
func (r *WorkRepository) FindByTitle(ctx context.Context, title string) ([]*core.Work, error) {
	var results []*core.Work
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialWorkTitleKey(core.NormalizeTitle(title))
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			// Read the ID from the index
			var workID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				workID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			work, err := readWork(tx, makeWorkKey(workID))
			if err != nil {
				return err
			}
			if work != nil {
				results = append(results, work)
			}
		}
		return nil
	}, false)

	return results, err
}

// ListWorks retrieves up to limit works, optionally filtered by content
// type. A non-positive limit means no limit.
func (r *WorkRepository) ListWorks(ctx context.Context, contentType core.ContentType, limit int) ([]*core.Work, error) {
	var results []*core.Work
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(workRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if limit > 0 && len(results) >= limit {
				break
			}

			var work *core.Work
			err := iter.Item().Value(func(val []byte) error {
				var err error
				work, err = storage.UnmarshalWork(val)
				return err
			})
			if err != nil {
				return err
			}
			if work == nil {
				continue
			}
			if contentType != "" && work.ContentType != contentType {
				continue
			}
			results = append(results, work)
		}
		return nil
	}, false)

	return results, err
}

// ListTitles retrieves every stored title.
func (r *WorkRepository) ListTitles(ctx context.Context) ([]string, error) {
	var titles []string
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(workRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var work *core.Work
			err := iter.Item().Value(func(val []byte) error {
				var err error
				work, err = storage.UnmarshalWork(val)
				return err
			})
			if err != nil {
				return err
			}
			if work != nil {
				titles = append(titles, work.Title)
			}
		}
		return nil
	}, false)

	return titles, err
}

// readWork reads a work record from the transaction.
// Returns nil, nil when the key is absent.
func readWork(tx *badger.Txn, key []byte) (*core.Work, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var work *core.Work
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		work, unmarshalErr = storage.UnmarshalWork(val)
		return unmarshalErr
	})
	return work, err
}
