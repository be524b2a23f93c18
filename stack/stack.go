// Package stack implements a LIFO stack over [container/list].
package stack

import (
	"container/list"
	"iter"
)

// Stack is a last-in first-out stack. The zero value is an empty stack.
type Stack[T any] struct {
	items list.List
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push puts val on top.
func (s *Stack[T]) Push(val T) {
	s.items.PushFront(val)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) { //nolint:ireturn
	e := s.items.Front()
	if e == nil {
		var zero T
		return zero, false
	}

	return s.items.Remove(e).(T), true //nolint:forcetypeassert
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) { //nolint:ireturn
	e := s.items.Front()
	if e == nil {
		var zero T
		return zero, false
	}

	return e.Value.(T), true //nolint:forcetypeassert
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int {
	return s.items.Len()
}

// All returns an iterator from the top of the stack down.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := s.items.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(T)) { //nolint:forcetypeassert
				return
			}
		}
	}
}
