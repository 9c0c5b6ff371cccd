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


// Package rules determines copyright status from jurisdiction duration
// tables and work metadata.
//
// The engine walks a fixed decision ladder: public domain cutoff year,
// creator death plus standard duration, corporate/anonymous publication
// duration, then publication-age heuristics when death data is missing.
// Each determination carries a confidence, human-readable reasoning,
// an expiry estimate, per-use-type permissions and a list of the
// uncertainties that weakened the result.
//
// Jurisdiction rows are seeded from a built-in table and may be
// replaced or extended at construction time (for example from
// persisted storage). Evaluation never mutates the work.
package rules
