package list

import (
	"iter"

	"github.com/percona/percona-compsci/alloc"
)

// Iter consumes a [List] from head to tail, freeing each node as it goes.
// Closing it frees whatever was not consumed.
type Iter[T any] struct {
	list List[T]
	done bool
}

// IntoIter hands the list's nodes to a new iterator.
// The list is released and must not be used afterwards.
func (l *List[T]) IntoIter() *Iter[T] {
	l.checkLive("into iter")

	it := &Iter[T]{list: *l}
	*l = List[T]{released: true}

	return it
}

// Drain returns a single-use sequence that consumes the list.
// Breaking out of the loop early still frees the remaining nodes.
// The list must not be used afterwards.
func (l *List[T]) Drain() iter.Seq[T] {
	it := l.IntoIter()

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

// Next returns the next element, or false once the list is exhausted.
func (it *Iter[T]) Next() (T, bool) { //nolint:ireturn
	if it.done || it.list.head == nil {
		it.Close()

		var zero T
		return zero, false
	}

	return it.list.unlink(it.list.head), true
}

// Close frees every node not yet consumed. Calling Close more than once is a no-op.
func (it *Iter[T]) Close() {
	if it.done {
		return
	}

	it.list.Clear()
	it.done = true
}

// Stats returns the node allocation accounting of the consumed list.
func (it *Iter[T]) Stats() alloc.Stats {
	return it.list.tr.Stats()
}
