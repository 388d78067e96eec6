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

// Option configures a Table (or the table inside a Set) during Init.
type Option[K, V any] interface {
	apply(t *Table[K, V])
}

type bucketsOption[K, V any] struct {
	n int
}

func (op bucketsOption[K, V]) apply(t *Table[K, V]) {
	t.reqBuckets = op.n
}

// WithBuckets requests an initial directory length. Values below
// MinBuckets are clamped up.
func WithBuckets[K, V any](n int) Option[K, V] {
	return bucketsOption[K, V]{n}
}

type maxLoadOption[K, V any] struct {
	f float64
}

func (op maxLoadOption[K, V]) apply(t *Table[K, V]) {
	t.SetMaxLoad(op.f)
}

// WithMaxLoad sets the load-factor threshold, with the same clamping as
// SetMaxLoad.
func WithMaxLoad[K, V any](f float64) Option[K, V] {
	return maxLoadOption[K, V]{f}
}

type destroyKeyOption[K, V any] struct {
	fn DestroyFn[K]
}

func (op destroyKeyOption[K, V]) apply(t *Table[K, V]) {
	t.destroyKey = op.fn
}

// WithDestroyKey installs the callback the table uses to release keys it
// owns. With it set, the table guarantees at-most-one call per owned key.
func WithDestroyKey[K, V any](fn DestroyFn[K]) Option[K, V] {
	return destroyKeyOption[K, V]{fn}
}

type destroyValueOption[K, V any] struct {
	fn DestroyFn[V]
}

func (op destroyValueOption[K, V]) apply(t *Table[K, V]) {
	t.destroyValue = op.fn
}

// WithDestroyValue installs the callback the table uses to release values
// it owns.
func WithDestroyValue[K, V any](fn DestroyFn[V]) Option[K, V] {
	return destroyValueOption[K, V]{fn}
}
