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


package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/storage"
)

// VocabularyRepository implements storage.VocabularyRepository for BadgerDB.
// The vocabulary is a singleton snapshot; each save replaces the
// previous one.
type VocabularyRepository struct {
	backend *Backend
}

var _ storage.VocabularyRepository = (*VocabularyRepository)(nil)

// NewVocabularyRepository creates a new VocabularyRepository.
func NewVocabularyRepository(backend *Backend) *VocabularyRepository {
	return &VocabularyRepository{
		backend: backend,
	}
}

// Close releases resources. VocabularyRepository has no resources to release.
func (r *VocabularyRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *VocabularyRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveVocabulary persists a vocabulary snapshot.
func (r *VocabularyRepository) SaveVocabulary(ctx context.Context, snapshot *core.VocabularySnapshot) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		snapshot.UpdatedAt = time.Now().UTC()
		value := storage.MarshalVocabularySnapshot(snapshot)
		if err := tx.Set([]byte(vocabularyKey), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadVocabulary retrieves the stored vocabulary snapshot.
// Returns nil, nil if no snapshot has been saved.
func (r *VocabularyRepository) LoadVocabulary(ctx context.Context) (*core.VocabularySnapshot, error) {
	var snapshot *core.VocabularySnapshot
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(vocabularyKey))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			snapshot, unmarshalErr = storage.UnmarshalVocabularySnapshot(val)
			return unmarshalErr
		})
	}, false)

	return snapshot, err
}
