package dynarray

import (
	"iter"

	"github.com/percona/percona-compsci/alloc"
)

// Iter consumes an [Array] from front to back.
//
// It owns the array's storage: exhausting it or calling Close releases the
// region, including any elements that were never consumed.
type Iter[T any] struct {
	array Array[T]
	index int
	done  bool
}

// IntoIter hands the array's storage to a new iterator.
// The array is released and must not be used afterwards.
func (a *Array[T]) IntoIter() *Iter[T] {
	a.checkLive("into iter")

	it := &Iter[T]{array: *a}
	*a = Array[T]{released: true}

	return it
}

// Drain returns a single-use sequence that consumes the array.
// Breaking out of the loop early still releases the remaining elements.
// The array must not be used afterwards.
func (a *Array[T]) Drain() iter.Seq[T] {
	it := a.IntoIter()

	return func(yield func(T) bool) {
		defer it.Close()

		for {
			val, ok := it.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// Next returns the next element, or false once the array is exhausted.
func (it *Iter[T]) Next() (T, bool) { //nolint:ireturn
	if it.done || it.index == it.array.length {
		it.Close()

		var zero T
		return zero, false
	}

	val := it.array.region.Take(it.index)
	it.index++

	return val, true
}

// Close releases the storage and every element not yet consumed.
// Calling Close more than once is a no-op.
func (it *Iter[T]) Close() {
	if it.done {
		return
	}

	it.array.region.Release()
	it.array.length = 0
	it.done = true
}

// Stats returns the allocation accounting of the consumed storage.
func (it *Iter[T]) Stats() alloc.Stats {
	return it.array.region.Stats()
}
