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

package reembed

import (
	"context"

	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/storage"
)

const (
	// DefaultBatchSize is the default number of works to process in each batch
	DefaultBatchSize = 100
)

// WorkIterator iterates over all stored works in batches.
type WorkIterator struct {
	repo      storage.WorkRepository
	batchSize int
}

// NewWorkIterator creates a new work iterator.
// batchSize: number of works to process in each batch (must be > 0)
func NewWorkIterator(repo storage.WorkRepository, batchSize int) *WorkIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &WorkIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all works, calling fn for each batch.
// Iteration stops on first error from fn or when all works are processed.
// Context cancellation is checked between batches.
func (it *WorkIterator) ForEach(ctx context.Context, fn func([]*core.Work) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	works, err := it.repo.ListWorks(ctx, "", 0)
	if err != nil {
		return err
	}

	if len(works) == 0 {
		return nil
	}

	for i := 0; i < len(works); i += it.batchSize {
		end := i + it.batchSize
		if end > len(works) {
			end = len(works)
		}

		if err := fn(works[i:end]); err != nil {
			return err
		}

		// Check context after each batch
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
