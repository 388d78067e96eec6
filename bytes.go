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

import "math/rand"

// SwapBytes exchanges the contents of two equal-length buffers byte by
// byte. The buffers must be non-overlapping or identical; nil, empty, or
// length-mismatched buffers return ErrInvalidArgument.
func SwapBytes(a, b []byte) error {
	if len(a) == 0 || len(a) != len(b) {
		return ErrInvalidArgument
	}
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
	return nil
}

// RandRange returns a uniformly distributed integer in [lo, hi]. It
// panics when lo > hi.
func RandRange(lo, hi int) int {
	return lo + rand.Intn(hi-lo+1)
}
