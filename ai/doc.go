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


// Package ai provides abstractions for AI services used in Worklens.
//
// This package defines the Embedder interface for text embeddings used by
// semantic title matching. It follows the dependency inversion principle,
// allowing the matching and search layers to depend on an abstraction
// rather than a concrete embedding backend.
//
// # Implementation Packages
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewEmbedder) return the INTERFACE type to
// enforce abstraction and prevent accidental coupling to a concrete
// backend:
//
//	embedder, err := openai.NewEmbedder(config)  // returns ai.Embedder
//
// Test utility constructors (mock.NewMockEmbedder) return CONCRETE types
// to enable test assertions and behavior injection via function fields:
//
//	mockEmbed := mock.NewMockEmbedder()  // returns *mock.MockEmbedder
//	mockEmbed.EmbedTextFunc = ...        // needs concrete type
//	count := mockEmbed.CallCount()       // test assertion
//
// # Degraded Mode
//
// An embedding backend is optional. Callers construct the matcher with a
// nil Embedder to run on lexical similarity alone; see the match package.
package ai
