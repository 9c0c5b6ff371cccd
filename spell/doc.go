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


// Package spell corrects misspelled title queries before matching.
//
// The corrector combines several strategies, tried in order of
// reliability:
//
//  1. Seeded phrase corrections for common misspellings
//  2. Corrections learned from user selections
//  3. Closest known title within a small edit distance
//  4. Per-word correction against the learned vocabulary, using
//     edit distance first and Soundex phonetic matching as a fallback
//  5. Splitting run-together words ("harrypotter" -> "harry potter")
//
// The corrector never invents words: every correction resolves to a
// phrase or word it has been seeded with or has observed. Correction
// is idempotent: correcting an already-correct query returns it
// unchanged.
//
// All methods are safe for concurrent use. Learned state can be
// exported as a core.VocabularySnapshot for persistence and restored
// on startup.
package spell
