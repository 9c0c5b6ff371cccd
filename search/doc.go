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


// Package search ranks candidate works against a user query.
//
// The Ranker combines four signals per candidate:
//   - Exact matching on normalized titles
//   - Phrase matching with word overlap and consecutive-bigram bonus
//   - Semantic similarity via the match package
//   - Fuzzy character-level similarity
//
// Multi-word queries are treated as phrases: candidates that miss most
// of the query words are penalized harshly rather than surfacing on a
// single shared word. The ranking carries a human-readable explanation
// and follow-up suggestions alongside the scored results.
package search
