// Package queue implements a FIFO queue over [container/list].
package queue

import (
	"container/list"
	"iter"
)

// Queue is a first-in first-out queue. The zero value is an empty queue.
type Queue[T any] struct {
	items list.List
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue adds val to the back.
func (q *Queue[T]) Enqueue(val T) {
	q.items.PushBack(val)
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, bool) { //nolint:ireturn
	e := q.items.Front()
	if e == nil {
		var zero T
		return zero, false
	}

	return q.items.Remove(e).(T), true //nolint:forcetypeassert
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int {
	return q.items.Len()
}

// All returns an iterator from front to back.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := q.items.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(T)) { //nolint:forcetypeassert
				return
			}
		}
	}
}
