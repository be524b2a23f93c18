// Package ring implements a fixed-capacity circular buffer.
package ring

import (
	"iter"

	"github.com/percona/percona-compsci/errors"
)

// ErrFull is returned when pushing onto a full buffer.
var ErrFull = errors.New("ring buffer is full")

// Buffer is a circular buffer with room for exactly Cap() elements.
// Storage is allocated once by [New]; pushes and pops at either end are O(1).
type Buffer[T any] struct {
	items []T
	front int
	size  int
}

// New returns an empty buffer with capacity n. n must be positive.
func New[T any](n int) *Buffer[T] {
	if n <= 0 {
		errors.Violation(errors.Wrapf(errors.ErrOutOfBounds, "ring: capacity %d", n))
	}

	return &Buffer[T]{items: make([]T, n)}
}

// Len returns the number of elements.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.items)
}

// PushFront adds val before the first element.
func (b *Buffer[T]) PushFront(val T) error {
	if b.size == len(b.items) {
		return ErrFull
	}

	b.front = b.prev(b.front)
	b.items[b.front] = val
	b.size++

	return nil
}

// PushBack adds val after the last element.
func (b *Buffer[T]) PushBack(val T) error {
	if b.size == len(b.items) {
		return ErrFull
	}

	b.items[b.index(b.size)] = val
	b.size++

	return nil
}

// PopFront removes and returns the first element.
func (b *Buffer[T]) PopFront() (T, bool) { //nolint:ireturn
	var zero T
	if b.size == 0 {
		return zero, false
	}

	val := b.items[b.front]
	b.items[b.front] = zero
	b.front = b.next(b.front)
	b.size--

	return val, true
}

// PopBack removes and returns the last element.
func (b *Buffer[T]) PopBack() (T, bool) { //nolint:ireturn
	var zero T
	if b.size == 0 {
		return zero, false
	}

	i := b.index(b.size - 1)
	val := b.items[i]
	b.items[i] = zero
	b.size--

	return val, true
}

// All returns an iterator over the elements from front to back.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range b.size {
			if !yield(b.items[b.index(i)]) {
				return
			}
		}
	}
}

// Drain returns a sequence that pops elements from the front until the buffer
// is empty. Elements not consumed before breaking out of the loop are dropped.
func (b *Buffer[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer b.reset()

		for {
			val, ok := b.PopFront()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

func (b *Buffer[T]) reset() {
	clear(b.items)
	b.front = 0
	b.size = 0
}

// index maps the i-th element to its slot.
func (b *Buffer[T]) index(i int) int {
	return (b.front + i) % len(b.items)
}

func (b *Buffer[T]) next(i int) int {
	if i == len(b.items)-1 {
		return 0
	}

	return i + 1
}

func (b *Buffer[T]) prev(i int) int {
	if i == 0 {
		return len(b.items) - 1
	}

	return i - 1
}
