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


// Package tag produces smart copyright status tags.
//
// The Generator fuses the rule engine's deterministic analysis with the
// statistical predictor's probability. A high-certainty rule outcome
// keeps its status and the model only feeds reasoning and confidence;
// when the rules are uncertain, the two signals are blended 60/40 and
// re-thresholded. Without a predictor the generator degrades to a
// rule-only tag with an uncertainty note rather than failing.
//
// A tag is a complete, display-ready unit: status with emoji and color,
// expiry timeline, per-use permissions, confidence, composite
// reasoning, and a jurisdiction-specific disclaimer.
package tag
