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

// Set is a keys-only projection of Table: a Table[K, struct{}] with the
// value slot permanently empty. The zero value is uninitialized, as with
// Table.
//
// The algebra functions (Intersection, Union, Difference) populate their
// output with the key values already held by the inputs. When keys carry
// heap resources and the inputs own them (destroy-key configured), the
// output must be configured with a nil destroy-key, or the shared keys
// will be released twice.
type Set[K any] struct {
	tbl Table[K, struct{}]
}

// NewSet constructs a live set. Options apply to the underlying table;
// WithDestroyValue is meaningless here.
func NewSet[K any](hash HashFn[K], equals EqualsFn[K], options ...Option[K, struct{}]) (*Set[K], error) {
	var s Set[K]
	if err := s.Init(hash, equals, options...); err != nil {
		return nil, err
	}
	return &s, nil
}

// NewStringSet constructs a set of strings using the default byte-string
// hash and equality.
func NewStringSet(options ...Option[string, struct{}]) *Set[string] {
	s, err := NewSet[string](StringHash, StringEqual, options...)
	if err != nil {
		panic(err)
	}
	return s
}

// Init makes the set live. See Table.Init.
func (s *Set[K]) Init(hash HashFn[K], equals EqualsFn[K], options ...Option[K, struct{}]) error {
	if s == nil {
		return ErrInvalidArgument
	}
	return s.tbl.Init(hash, equals, options...)
}

// Close releases every member, running the destroy-key callback if one is
// configured.
func (s *Set[K]) Close() {
	if s != nil {
		s.tbl.Close()
	}
}

// Insert adds key to the set. Inserting a key that is already a member is
// a successful no-op and the set keeps its original key; a caller that
// owns heap keys must release the duplicate itself.
func (s *Set[K]) Insert(key K) error {
	if s == nil {
		return ErrInvalidArgument
	}
	return s.tbl.Insert(key, struct{}{})
}

// Remove deletes key from the set, destroying the stored key if a
// destroy-key callback is configured. Returns ErrNotFound when absent.
func (s *Set[K]) Remove(key K) error {
	if s == nil {
		return ErrInvalidArgument
	}
	return s.tbl.Remove(key)
}

// Contains reports membership.
func (s *Set[K]) Contains(key K) bool {
	return s != nil && s.tbl.Contains(key)
}

// Clear removes and destroys every member, keeping the directory.
func (s *Set[K]) Clear() {
	if s != nil {
		s.tbl.Clear()
	}
}

// Len returns the number of members.
func (s *Set[K]) Len() int {
	if s == nil {
		return 0
	}
	return s.tbl.Len()
}

// Empty reports whether the set has no members.
func (s *Set[K]) Empty() bool {
	return s.Len() == 0
}

// All calls yield for each member until yield returns false. Order is
// unspecified; the set must not be mutated during iteration.
func (s *Set[K]) All(yield func(key K) bool) {
	if s == nil {
		return
	}
	s.tbl.All(func(k K, _ struct{}) bool {
		return yield(k)
	})
}

// live reports whether the set has a directory to operate on.
func (s *Set[K]) live() bool {
	return s != nil && s.tbl.dir != nil
}

// prepare clears out and re-keys it with a's hash and equality, which
// every algebra operation does before repopulating. out keeps its own
// destroy callbacks: they encode the caller's ownership choice for the
// result.
func prepare[K any](out, a *Set[K]) {
	out.Clear()
	out.tbl.hash = a.tbl.hash
	out.tbl.equals = a.tbl.equals
}

// Intersection clears out and fills it with every key of a that is also
// in b. The inserted keys are a's key values, never b's.
func Intersection[K any](out, a, b *Set[K]) error {
	if !out.live() || !a.live() || !b.live() {
		return ErrInvalidArgument
	}
	prepare(out, a)
	var err error
	a.All(func(k K) bool {
		if b.Contains(k) {
			err = out.Insert(k)
		}
		return err == nil
	})
	return err
}

// Union clears out and fills it with every key of a, then every key of b
// that is not already present. Keys present in both sets are taken from a.
func Union[K any](out, a, b *Set[K]) error {
	if !out.live() || !a.live() || !b.live() {
		return ErrInvalidArgument
	}
	prepare(out, a)
	var err error
	a.All(func(k K) bool {
		err = out.Insert(k)
		return err == nil
	})
	if err != nil {
		return err
	}
	b.All(func(k K) bool {
		if !out.Contains(k) {
			err = out.Insert(k)
		}
		return err == nil
	})
	return err
}

// Difference clears out and fills it with every key of a that is not in
// b.
func Difference[K any](out, a, b *Set[K]) error {
	if !out.live() || !a.live() || !b.live() {
		return ErrInvalidArgument
	}
	prepare(out, a)
	var err error
	a.All(func(k K) bool {
		if !b.Contains(k) {
			err = out.Insert(k)
		}
		return err == nil
	})
	return err
}

// Subset reports whether every key of a is in b. False when either set is
// nil.
func Subset[K any](a, b *Set[K]) bool {
	if a == nil || b == nil {
		return false
	}
	ok := true
	a.All(func(k K) bool {
		ok = b.Contains(k)
		return ok
	})
	return ok
}

// SetEqual reports whether a and b hold the same keys. False when either
// set is nil.
func SetEqual[K any](a, b *Set[K]) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Len() == b.Len() && Subset(a, b)
}
