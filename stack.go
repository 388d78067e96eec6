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

// Stack is a LIFO adaptor over List. The zero value is an empty stack.
type Stack[T any] struct {
	list List[T]
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.list.PushFront(v)
}

// Pop removes and returns the top element, ErrNotFound when empty.
func (s *Stack[T]) Pop() (T, error) {
	return s.list.RemoveAfter(nil)
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if n := s.list.Front(); n != nil {
		return n.Value, true
	}
	var zero T
	return zero, false
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int {
	return s.list.Len()
}

// Empty reports whether the stack has no elements.
func (s *Stack[T]) Empty() bool {
	return s.list.Empty()
}

// Clear removes every element.
func (s *Stack[T]) Clear() {
	s.list.Clear()
}
