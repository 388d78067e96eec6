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

// ListNode is one cell of a List. Value may be read and written freely;
// the link is managed by the list.
type ListNode[T any] struct {
	Value T
	next  *ListNode[T]
}

// Next returns the successor node, nil at the end of the list.
func (n *ListNode[T]) Next() *ListNode[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// List is a singly-linked sequence with O(1) insertion at both ends and
// O(1) removal of a node's successor. It is the general form of the
// chain storage the hash table uses per bucket. The zero value is an
// empty list with no destroy callback.
//
// A List is NOT goroutine-safe.
type List[T any] struct {
	head, tail *ListNode[T]
	length     int
	destroy    DestroyFn[T]
}

// NewList constructs an empty list. destroy, which may be nil, is run on
// each element by Clear.
func NewList[T any](destroy DestroyFn[T]) *List[T] {
	return &List[T]{destroy: destroy}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.Len() == 0
}

// Front returns the first node, nil when empty.
func (l *List[T]) Front() *ListNode[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// Back returns the last node, nil when empty.
func (l *List[T]) Back() *ListNode[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// PushFront inserts v at the head and returns its node.
func (l *List[T]) PushFront(v T) *ListNode[T] {
	n := &ListNode[T]{Value: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.length++
	return n
}

// PushBack appends v and returns its node.
func (l *List[T]) PushBack(v T) *ListNode[T] {
	n := &ListNode[T]{Value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
	return n
}

// InsertAfter inserts v after prev and returns its node. A nil prev
// inserts at the head. prev must be a node of this list.
func (l *List[T]) InsertAfter(prev *ListNode[T], v T) *ListNode[T] {
	if prev == nil {
		return l.PushFront(v)
	}
	if prev == l.tail {
		return l.PushBack(v)
	}
	n := &ListNode[T]{Value: v, next: prev.next}
	prev.next = n
	l.length++
	return n
}

// RemoveAfter unlinks and returns the value of the node after prev, with
// nil prev meaning the head. Returns ErrNotFound when there is nothing to
// unlink. The list's destroy callback does not run; the value is handed
// to the caller.
func (l *List[T]) RemoveAfter(prev *ListNode[T]) (T, error) {
	var zero T
	if l == nil {
		return zero, ErrInvalidArgument
	}
	var n *ListNode[T]
	if prev == nil {
		n = l.head
		if n == nil {
			return zero, ErrNotFound
		}
		l.head = n.next
	} else {
		n = prev.next
		if n == nil {
			return zero, ErrNotFound
		}
		prev.next = n.next
	}
	if n == l.tail {
		l.tail = prev
	}
	n.next = nil
	l.length--
	return n.Value, nil
}

// Clear removes every element, running the destroy callback on each value
// if one is configured.
func (l *List[T]) Clear() {
	if l == nil {
		return
	}
	if l.destroy != nil {
		for n := l.head; n != nil; n = n.next {
			l.destroy(n.Value)
		}
	}
	l.head, l.tail, l.length = nil, nil, 0
}
