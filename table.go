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

// Package chained is a family of generic in-memory containers built around
// a chained hash table. Unlike Go's builtin map the table gives the caller
// explicit control over key/value lifetimes: per-instance destroy callbacks
// let the table own heap resources held by its keys and values, and the
// remove-with-handoff and update-in-place paths are specified precisely
// enough that a counting destructor can verify each owned key and value is
// released exactly once.
//
// # Design
//
// Collisions are handled by chaining rather than open addressing. Each
// bucket of the directory is the head of a singly-linked chain of entry
// cells; insert, lookup, and removal hash the key, index the directory
// modulo its length, and scan the chain. Chaining keeps the ownership story
// per entry trivial (a cell is either linked or it isn't), lets entry
// pointers handed out by Lookup survive unrelated removals, and lets a
// rehash move cells between directories without reallocating or destroying
// anything.
//
// The directory grows by doubling when an insert pushes the load factor
// (entries per bucket) above the configured threshold, giving amortized
// O(1) insertion. The directory never shrinks on its own; Resize shrinks
// explicitly.
//
// A Table is NOT goroutine-safe. Distinct tables may be used from distinct
// goroutines concurrently; there is no process-wide state.
package chained

// Directory sizing and load-factor defaults.
const (
	// MinBuckets is the smallest directory length a live table will use.
	// Requested capacities below it are clamped up.
	MinBuckets = 8

	// DefaultMaxLoad is the default load-factor threshold above which an
	// insert triggers a growth rehash.
	DefaultMaxLoad = 0.75
)

// Table is a chained hash table from keys of type K to values of type V.
// The zero value is an uninitialized table: accessors return zeros and
// mutating operations fail with ErrInvalidArgument until Init is called.
//
// If a destroy-key callback is configured the table exclusively owns every
// key it holds, and likewise for destroy-value and values. A nil callback
// leaves the corresponding slot caller-managed.
type Table[K, V any] struct {
	hash         HashFn[K]
	equals       EqualsFn[K]
	destroyKey   DestroyFn[K]
	destroyValue DestroyFn[V]
	// dir is the bucket directory. dir == nil means the table is
	// uninitialized or closed.
	dir []chain[K, V]
	// used is the number of entries reachable from all chain heads.
	used int
	// maxLoad is the load-factor threshold, in (0, 1].
	maxLoad float64
	// reqBuckets is the directory length requested via WithBuckets,
	// consumed by Init.
	reqBuckets int
}

// New constructs a live table. The hash and equals callbacks are required;
// passing nil for either returns ErrInvalidArgument. NewStrings supplies
// the byte-string defaults for string keys.
func New[K, V any](hash HashFn[K], equals EqualsFn[K], options ...Option[K, V]) (*Table[K, V], error) {
	var t Table[K, V]
	if err := t.Init(hash, equals, options...); err != nil {
		return nil, err
	}
	return &t, nil
}

// NewStrings constructs a table keyed by strings using the default
// byte-string hash and equality.
func NewStrings[V any](options ...Option[string, V]) *Table[string, V] {
	t, err := New[string, V](StringHash, StringEqual, options...)
	if err != nil {
		// Only nil callbacks make New fail, and both are supplied here.
		panic(err)
	}
	return t
}

// Init makes the table live, replacing whatever configuration it had. On a
// zero-value or closed table this is the normal construction path; calling
// it on a live table leaks that table's entries (use Close first).
func (t *Table[K, V]) Init(hash HashFn[K], equals EqualsFn[K], options ...Option[K, V]) error {
	if t == nil || hash == nil || equals == nil {
		return ErrInvalidArgument
	}
	*t = Table[K, V]{
		hash:    hash,
		equals:  equals,
		maxLoad: DefaultMaxLoad,
	}
	for _, op := range options {
		op.apply(t)
	}
	n := t.reqBuckets
	if n < MinBuckets {
		n = MinBuckets
	}
	t.dir = make([]chain[K, V], n)
	return nil
}

// Close releases every entry, invoking the destroy callbacks on each key
// and value, and drops the directory. The table returns to the closed
// state: accessors report zero, mutating operations fail, and Init revives
// it. Close on a zero-value or already-closed table is a no-op.
func (t *Table[K, V]) Close() {
	if t == nil || t.dir == nil {
		return
	}
	t.destroyAll()
	t.dir = nil
	t.used = 0
}

// Insert adds the key/value pair, or updates the value in place when an
// equal key is already present. On the update path the table keeps its
// original key: the old value is destroyed (if a destroy-value callback is
// configured) and the supplied key is NOT adopted, so a caller that owns
// heap keys must release the duplicate itself. A new-key insert that pushes
// the load factor above the threshold grows the directory to twice its
// length.
func (t *Table[K, V]) Insert(key K, value V) error {
	return t.insert(key, value, false)
}

// Upsert is Insert with the opposite key discipline on the update path: the
// stored key and value are both destroyed and replaced by the supplied
// pair.
func (t *Table[K, V]) Upsert(key K, value V) error {
	return t.insert(key, value, true)
}

func (t *Table[K, V]) insert(key K, value V, adoptKey bool) error {
	if t == nil || t.dir == nil {
		return ErrInvalidArgument
	}
	i := t.bucket(key)
	for e := t.dir[i].head; e != nil; e = e.next {
		if t.equals(e.Key, key) {
			if adoptKey {
				if t.destroyKey != nil {
					t.destroyKey(e.Key)
				}
				e.Key = key
			}
			if t.destroyValue != nil {
				t.destroyValue(e.Value)
			}
			e.Value = value
			return nil
		}
	}
	t.dir[i].pushFront(&Entry[K, V]{Key: key, Value: value})
	t.used++
	if float64(t.used) > t.maxLoad*float64(len(t.dir)) {
		t.rehash(2 * len(t.dir))
	}
	return nil
}

// Get returns the value stored for key. The boolean disambiguates an
// absent key from a present key holding the zero value.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if e := t.Lookup(key); e != nil {
		return e.Value, true
	}
	var zero V
	return zero, false
}

// Lookup returns a pointer to the entry for key, or nil if the key is
// absent. The pointer stays valid across updates and removals of other
// keys, but is invalidated by any operation that may rehash: a new-key
// Insert, Resize, Clear, or Close.
func (t *Table[K, V]) Lookup(key K) *Entry[K, V] {
	if t == nil || t.dir == nil {
		return nil
	}
	for e := t.dir[t.bucket(key)].head; e != nil; e = e.next {
		if t.equals(e.Key, key) {
			return e
		}
	}
	return nil
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	return t.Lookup(key) != nil
}

// Remove unlinks the entry for key and destroys its key and value via the
// configured callbacks. Returns ErrNotFound when the key is absent.
func (t *Table[K, V]) Remove(key K) error {
	e, err := t.Take(key)
	if err != nil {
		return err
	}
	t.destroyEntry(e)
	return nil
}

// Take unlinks and returns the entry for key without running any destroy
// callback: ownership of the key and value transfers to the caller.
// Returns ErrNotFound when the key is absent.
func (t *Table[K, V]) Take(key K) (*Entry[K, V], error) {
	if t == nil || t.dir == nil {
		return nil, ErrInvalidArgument
	}
	c := &t.dir[t.bucket(key)]
	var prev *Entry[K, V]
	for e := c.head; e != nil; prev, e = e, e.next {
		if t.equals(e.Key, key) {
			c.removeAfter(prev)
			t.used--
			return e, nil
		}
	}
	return nil, ErrNotFound
}

// Clear destroys every entry but keeps the directory at its current
// length. A no-op on an uninitialized or closed table.
func (t *Table[K, V]) Clear() {
	if t == nil || t.dir == nil {
		return
	}
	t.destroyAll()
	for i := range t.dir {
		t.dir[i].head = nil
	}
	t.used = 0
}

// Resize rehashes the table into a directory of length max(n, MinBuckets).
// Every entry is preserved and no destroy callback runs. Resizing to the
// current length is a successful no-op. Resize is the only way the
// directory shrinks.
func (t *Table[K, V]) Resize(n int) error {
	if t == nil || t.dir == nil {
		return ErrInvalidArgument
	}
	if n < MinBuckets {
		n = MinBuckets
	}
	if n == len(t.dir) {
		return nil
	}
	t.rehash(n)
	return nil
}

// SetMaxLoad sets the load-factor threshold, clamped to (0, 1]:
// non-positive values are ignored and values above 1 are clamped to 1. The
// new threshold does not trigger a rehash by itself even if the current
// load already exceeds it; the next insert that crosses it will.
func (t *Table[K, V]) SetMaxLoad(f float64) {
	if t == nil || f <= 0 {
		return
	}
	if f > 1 {
		f = 1
	}
	t.maxLoad = f
}

// Load returns the current load factor, entries per bucket. Zero when the
// table is uninitialized or closed.
func (t *Table[K, V]) Load() float64 {
	if t == nil || len(t.dir) == 0 {
		return 0
	}
	return float64(t.used) / float64(len(t.dir))
}

// Len returns the number of entries in the table.
func (t *Table[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.used
}

// Buckets returns the directory length, zero when uninitialized or closed.
func (t *Table[K, V]) Buckets() int {
	if t == nil {
		return 0
	}
	return len(t.dir)
}

// All calls yield for each key and value until yield returns false.
// Iteration order is unspecified and changes across rehashes. The table
// must not be mutated during iteration.
func (t *Table[K, V]) All(yield func(key K, value V) bool) {
	if t == nil {
		return
	}
	for i := range t.dir {
		for e := t.dir[i].head; e != nil; e = e.next {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func (t *Table[K, V]) bucket(key K) int {
	return int(t.hash(key) % uint32(len(t.dir)))
}

// rehash moves every entry cell into a fresh directory of length n by
// head-splice. Cells are reused verbatim: keys and values move by
// assignment of the cell pointer and no destroy callback runs.
func (t *Table[K, V]) rehash(n int) {
	if n < MinBuckets {
		n = MinBuckets
	}
	dir := make([]chain[K, V], n)
	for i := range t.dir {
		for e := t.dir[i].head; e != nil; {
			next := e.next
			dir[t.hash(e.Key)%uint32(n)].pushFront(e)
			e = next
		}
	}
	t.dir = dir
}

func (t *Table[K, V]) destroyAll() {
	if t.destroyKey == nil && t.destroyValue == nil {
		return
	}
	for i := range t.dir {
		for e := t.dir[i].head; e != nil; e = e.next {
			t.destroyEntry(e)
		}
	}
}

func (t *Table[K, V]) destroyEntry(e *Entry[K, V]) {
	if t.destroyKey != nil {
		t.destroyKey(e.Key)
	}
	if t.destroyValue != nil {
		t.destroyValue(e.Value)
	}
}
