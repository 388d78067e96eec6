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

import "bytes"

// HashFn hashes a key to a 32-bit value. A hash function must be pure and
// deterministic for the lifetime of any table it is installed in: if the
// hash of a stored key changes, the key silently becomes unreachable.
type HashFn[K any] func(key K) uint32

// EqualsFn reports whether two keys are equal. It must be an equivalence
// relation consistent with the table's hash function: equal keys must have
// equal hashes.
type EqualsFn[K any] func(a, b K) bool

// DestroyFn releases a key or value owned by a table. A nil DestroyFn means
// the corresponding slot is caller-managed and the table never releases it.
type DestroyFn[T any] func(v T)

const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619

	// Knuth's multiplicative constant, 2^32 / phi.
	fibMix32 uint32 = 2654435761
)

// StringHash is the default byte-string hash: unseeded 32-bit FNV-1a over
// the bytes of s. It is deterministic across runs; callers that want
// DoS-resistant hashing should install their own seeded HashFn.
func StringHash(s string) uint32 {
	h := fnvOffset32
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime32
	}
	return h
}

// BytesHash hashes a byte slice with the same function as StringHash.
func BytesHash(p []byte) uint32 {
	h := fnvOffset32
	for _, c := range p {
		h ^= uint32(c)
		h *= fnvPrime32
	}
	return h
}

// Uint32Hash mixes a 32-bit integer key.
func Uint32Hash(x uint32) uint32 {
	return x * fibMix32
}

// IntHash mixes an integer key, folding the high half into the low half
// before the multiplicative mix so that 64-bit keys differing only above
// bit 31 still spread.
func IntHash(x int) uint32 {
	v := uint64(int64(x))
	return Uint32Hash(uint32(v ^ (v >> 32)))
}

// StringEqual reports a == b.
func StringEqual(a, b string) bool {
	return a == b
}

// BytesEqual reports byte-wise equality of a and b.
func BytesEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Equals is an EqualsFn for any comparable key type.
func Equals[K comparable](a, b K) bool {
	return a == b
}
