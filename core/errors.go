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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidQuery indicates a Query failed validation.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidWork indicates a Work failed validation.
	ErrInvalidWork = errors.New("invalid work")

	// ErrEmptyQueryText indicates the query Text field is empty.
	ErrEmptyQueryText = errors.New("query text cannot be empty")

	// ErrEmptyTitle indicates the work Title field is empty.
	ErrEmptyTitle = errors.New("work title cannot be empty")

	// ErrInvalidYear indicates a year is outside the plausible range.
	ErrInvalidYear = errors.New("year out of range")

	// ErrInvalidStatus indicates an invalid CopyrightStatus value.
	ErrInvalidStatus = errors.New("invalid copyright status")

	// ErrInvalidFeatures indicates a FeatureVector failed validation.
	ErrInvalidFeatures = errors.New("invalid feature vector")

	// ErrInvalidJurisdictionRule indicates a JurisdictionRule failed validation.
	ErrInvalidJurisdictionRule = errors.New("invalid jurisdiction rule")
)
