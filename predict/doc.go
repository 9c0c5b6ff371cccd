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


// Package predict provides an incrementally trained logistic model
// over work feature vectors.
//
// The predictor starts from hand-set weights that encode coarse
// copyright priors (old works lean public domain, recent works lean
// protected) and refines them online from labeled examples. It is not
// a pre-trained model: it learns entirely from the examples this
// deployment feeds it.
//
// Prediction reads an immutable state snapshot, so reads never block
// behind training. Training serializes through a single writer, keeps
// weights bounded, and tracks a smoothed rolling accuracy.
//
// The Trainer buffers labeled examples and flushes them into the
// predictor in the background once a batch threshold is reached.
// Uncertain labels are dropped rather than trained on.
package predict
