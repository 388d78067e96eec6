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

// Queue is a FIFO adaptor over List. The zero value is an empty queue.
type Queue[T any] struct {
	list List[T]
}

// Enqueue appends v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.list.PushBack(v)
}

// Dequeue removes and returns the front element, ErrNotFound when empty.
func (q *Queue[T]) Dequeue() (T, error) {
	return q.list.RemoveAfter(nil)
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if n := q.list.Front(); n != nil {
		return n.Value, true
	}
	var zero T
	return zero, false
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int {
	return q.list.Len()
}

// Empty reports whether the queue has no elements.
func (q *Queue[T]) Empty() bool {
	return q.list.Empty()
}

// Clear removes every element.
func (q *Queue[T]) Clear() {
	q.list.Clear()
}
