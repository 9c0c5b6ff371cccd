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


package worklens

import (
	"log/slog"

	"github.com/poiesic/worklens/ai"
	"github.com/poiesic/worklens/ai/openai"
	"github.com/poiesic/worklens/storage"
	"github.com/poiesic/worklens/storage/badger"
)

// Database owns the storage backend, its repositories, and the
// optional embedding provider. Engines are created from a Database
// and share its repositories.
type Database struct {
	backend          *badger.Backend
	workRepo         storage.WorkRepository
	vocabularyRepo   storage.VocabularyRepository
	modelRepo        storage.ModelRepository
	jurisdictionRepo storage.JurisdictionRepository
	embedder         ai.Embedder
	logger           *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config // nil = no embedding backend, lexical matching only
	inMemory bool
}

// WithAIConfig enables semantic matching through the configured
// embedding endpoint. Without it, matching falls back to lexical
// scoring.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithInMemory opens the backend in memory. Nothing is persisted;
// intended for tests and experimentation.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	repos, err := badger.NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Embeddings are optional; without them the matcher degrades to
	// lexical scoring.
	var embedder ai.Embedder
	if options.aiConfig != nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			repos.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:          backend,
		workRepo:         repos.Works,
		vocabularyRepo:   repos.Vocabulary,
		modelRepo:        repos.Model,
		jurisdictionRepo: repos.Jurisdictions,
		embedder:         embedder,
		logger:           slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.vocabularyRepo.Close(); err != nil {
		db.logger.Error("error closing vocabulary repository", "err", err)
		return err
	}
	if err := db.modelRepo.Close(); err != nil {
		db.logger.Error("error closing model repository", "err", err)
		return err
	}
	if err := db.jurisdictionRepo.Close(); err != nil {
		db.logger.Error("error closing jurisdiction repository", "err", err)
		return err
	}
	if err := db.workRepo.Close(); err != nil {
		db.logger.Error("error closing work repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) WorkRepository() storage.WorkRepository {
	return db.workRepo
}

func (db *Database) VocabularyRepository() storage.VocabularyRepository {
	return db.vocabularyRepo
}

func (db *Database) ModelRepository() storage.ModelRepository {
	return db.modelRepo
}

func (db *Database) JurisdictionRepository() storage.JurisdictionRepository {
	return db.jurisdictionRepo
}

// Embedder returns the configured embedding provider, or nil when the
// database was opened without one.
func (db *Database) Embedder() ai.Embedder {
	return db.embedder
}
