// Copyright 2024 The Cockroach Authors
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

package chained

import "errors"

var (
	// ErrInvalidArgument is returned for nil callbacks, operations on a
	// table or set that has not been initialized (or has been closed), and
	// malformed arguments to the utility helpers.
	ErrInvalidArgument = errors.New("chained: invalid argument")

	// ErrNotFound is returned when removing a key that is not present, or
	// when a list removal has nothing to unlink.
	ErrNotFound = errors.New("chained: not found")
)
