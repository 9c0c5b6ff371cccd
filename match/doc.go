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


// Package match scores the similarity between query text and work titles.
//
// Two families of similarity are provided:
//
//   - Semantic: cosine similarity over title embeddings, with an
//     in-process vector cache. When no embedding backend is configured
//     (or a backend call fails) the matcher degrades to a TF-IDF
//     bag-of-words cosine so search keeps working offline.
//   - Fuzzy: character and token level string similarity (Levenshtein
//     ratio, token set ratio, partial window ratio) combined into a
//     single score.
//
// The search package composes both families with exact and phrase
// matching into a final relevance score.
//
// All Matcher methods are safe for concurrent use.
package match
