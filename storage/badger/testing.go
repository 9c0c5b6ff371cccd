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

import "github.com/poiesic/worklens/storage"

// Repositories bundles the four repository implementations that share
// one backend.
type Repositories struct {
	Works         storage.WorkRepository
	Vocabulary    storage.VocabularyRepository
	Model         storage.ModelRepository
	Jurisdictions storage.JurisdictionRepository
}

// Close closes every repository. The shared backend is closed
// separately.
func (r *Repositories) Close() error {
	r.Works.Close()
	r.Vocabulary.Close()
	r.Model.Close()
	return r.Jurisdictions.Close()
}

// NewRepositories creates all repositories on top of an open backend.
func NewRepositories(backend *Backend) (*Repositories, error) {
	works, err := NewWorkRepository(backend)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Works:         works,
		Vocabulary:    NewVocabularyRepository(backend),
		Model:         NewModelRepository(backend),
		Jurisdictions: NewJurisdictionRepository(backend),
	}, nil
}

// NewMemoryRepositories creates in-memory repositories for testing.
// Caller must close the repositories and the backend when done.
func NewMemoryRepositories() (*Repositories, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}

	repos, err := NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	return repos, backend, nil
}
