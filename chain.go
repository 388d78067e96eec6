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

// Entry holds a key and value and links to the next entry in the same
// bucket chain. Entries are the unit of allocation owned by a Table: an
// entry cell is allocated when a new key is inserted and reused verbatim
// across rehashes.
//
// The Key and Value fields are exported so that Lookup and Take can hand
// the cell to the caller. Mutating Key through a Lookup pointer corrupts
// the table; mutating Value is the point of Lookup.
type Entry[K, V any] struct {
	Key   K
	Value V
	next  *Entry[K, V]
}

// chain is one bucket: a singly-linked sequence of entries with a head
// pointer. The zero value is an empty chain. In-chain order is not
// observable through the Table API, which is what allows both the insert
// path and rehash to splice at the head in O(1) without a tail pointer.
type chain[K, V any] struct {
	head *Entry[K, V]
}

func (c *chain[K, V]) empty() bool {
	return c.head == nil
}

// pushFront splices e at the head of the chain. The chain takes ownership
// of the cell, not of the key or value it carries.
func (c *chain[K, V]) pushFront(e *Entry[K, V]) {
	e.next = c.head
	c.head = e
}

// removeAfter unlinks and returns the successor of prev, with prev == nil
// meaning the head. Returns nil if there is nothing to unlink. The caller
// disposes of the returned cell; its next link is cleared.
func (c *chain[K, V]) removeAfter(prev *Entry[K, V]) *Entry[K, V] {
	var e *Entry[K, V]
	if prev == nil {
		e = c.head
		if e == nil {
			return nil
		}
		c.head = e.next
	} else {
		e = prev.next
		if e == nil {
			return nil
		}
		prev.next = e.next
	}
	e.next = nil
	return e
}
