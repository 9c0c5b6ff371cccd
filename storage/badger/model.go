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

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/storage"
)

// ModelRepository implements storage.ModelRepository for BadgerDB.
// Model state is a singleton snapshot; each save replaces the previous
// one.
type ModelRepository struct {
	backend *Backend
}

var _ storage.ModelRepository = (*ModelRepository)(nil)

// NewModelRepository creates a new ModelRepository.
func NewModelRepository(backend *Backend) *ModelRepository {
	return &ModelRepository{
		backend: backend,
	}
}

// Close releases resources. ModelRepository has no resources to release.
func (r *ModelRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ModelRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveModelState persists a model state snapshot.
func (r *ModelRepository) SaveModelState(ctx context.Context, state *core.ModelState) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		value := storage.MarshalModelState(state)
		if err := tx.Set([]byte(modelStateKey), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadModelState retrieves the stored model state.
// Returns nil, nil if no state has been saved.
func (r *ModelRepository) LoadModelState(ctx context.Context) (*core.ModelState, error) {
	var state *core.ModelState
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(modelStateKey))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			state, unmarshalErr = storage.UnmarshalModelState(val)
			return unmarshalErr
		})
	}, false)

	return state, err
}
