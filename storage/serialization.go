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


package storage

import (
	"github.com/poiesic/worklens/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalWork serializes a Work to bytes.
func MarshalWork(work *core.Work) []byte {
	buf := make([]byte, core.WorkMUS.Size(*work))
	core.WorkMUS.Marshal(*work, buf)
	return buf
}

// UnmarshalWork deserializes a Work from bytes.
func UnmarshalWork(data []byte) (*core.Work, error) {
	work, _, err := core.WorkMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &work, nil
}

// MarshalJurisdictionRule serializes a JurisdictionRule to bytes.
func MarshalJurisdictionRule(rule *core.JurisdictionRule) []byte {
	buf := make([]byte, core.JurisdictionRuleMUS.Size(*rule))
	core.JurisdictionRuleMUS.Marshal(*rule, buf)
	return buf
}

// UnmarshalJurisdictionRule deserializes a JurisdictionRule from bytes.
func UnmarshalJurisdictionRule(data []byte) (*core.JurisdictionRule, error) {
	rule, _, err := core.JurisdictionRuleMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// MarshalModelState serializes a ModelState to bytes.
func MarshalModelState(state *core.ModelState) []byte {
	buf := make([]byte, core.ModelStateMUS.Size(*state))
	core.ModelStateMUS.Marshal(*state, buf)
	return buf
}

// UnmarshalModelState deserializes a ModelState from bytes.
func UnmarshalModelState(data []byte) (*core.ModelState, error) {
	state, _, err := core.ModelStateMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// MarshalVocabularySnapshot serializes a VocabularySnapshot to bytes.
func MarshalVocabularySnapshot(snapshot *core.VocabularySnapshot) []byte {
	buf := make([]byte, core.VocabularySnapshotMUS.Size(*snapshot))
	core.VocabularySnapshotMUS.Marshal(*snapshot, buf)
	return buf
}

// UnmarshalVocabularySnapshot deserializes a VocabularySnapshot from bytes.
func UnmarshalVocabularySnapshot(data []byte) (*core.VocabularySnapshot, error) {
	snapshot, _, err := core.VocabularySnapshotMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
