// Package dynarray implements a growable contiguous buffer on top of [alloc.Region].
package dynarray

import (
	"iter"

	"github.com/percona/percona-compsci/alloc"
	"github.com/percona/percona-compsci/config"
	"github.com/percona/percona-compsci/errors"
	"github.com/percona/percona-compsci/log"
)

// Array is a growable contiguous buffer.
//
// Slots [0, Len()) hold live elements; slots [Len(), Cap()) hold the zero value
// and are never read. Capacity doubles from 1 and never shrinks.
//
// The zero value is an empty array with no allocation.
// An Array is not safe for concurrent use.
type Array[T any] struct {
	region   alloc.Region[T]
	length   int
	released bool
}

// New returns an empty array. It does not allocate.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return a.length
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	return a.region.Cap()
}

// Stats returns the allocation accounting of the underlying region.
func (a *Array[T]) Stats() alloc.Stats {
	return a.region.Stats()
}

// Push appends val.
func (a *Array[T]) Push(val T) {
	a.checkLive("push")

	if a.length == a.region.Cap() {
		a.grow()
	}

	a.region.Store(a.length, val)
	a.length++

	a.verify()
}

// Pop removes and returns the last element.
// It returns false if the array is empty.
func (a *Array[T]) Pop() (T, bool) { //nolint:ireturn
	a.checkLive("pop")

	if a.length == 0 {
		var zero T
		return zero, false
	}

	a.length--
	val := a.region.Take(a.length)

	a.verify()

	return val, true
}

// Insert places val at index, shifting the elements at [index, Len()) one slot
// forward. Index must be in [0, Len()].
func (a *Array[T]) Insert(val T, index int) {
	a.checkLive("insert")
	errors.CheckIndex("insert", index, a.length+1)

	if a.length == a.region.Cap() {
		a.grow()
	}

	a.region.Move(index+1, index, a.length-index)
	a.region.Store(index, val)
	a.length++

	a.verify()
}

// Remove removes and returns the element at index, shifting the elements at
// [index+1, Len()) one slot back. Index must be in [0, Len()).
func (a *Array[T]) Remove(index int) T { //nolint:ireturn
	a.checkLive("remove")
	errors.CheckIndex("remove", index, a.length)

	val := a.region.Load(index)
	a.region.Move(index, index+1, a.length-index-1)
	a.length--
	a.region.Clear(a.length)

	a.verify()

	return val
}

// At returns the element at index. Index must be in [0, Len()).
func (a *Array[T]) At(index int) T { //nolint:ireturn
	a.checkLive("at")
	errors.CheckIndex("at", index, a.length)

	return a.region.Load(index)
}

// All returns an iterator over the index and value of each element.
// The array must not be modified during iteration.
func (a *Array[T]) All() iter.Seq2[int, T] {
	a.checkLive("all")

	return func(yield func(int, T) bool) {
		for i := range a.length {
			if !yield(i, a.region.Load(i)) {
				return
			}
		}
	}
}

// Free releases the array's storage. The array must not be used afterwards.
func (a *Array[T]) Free() {
	a.checkLive("free")

	log.New("dynarray").With(log.Op("free"), log.Int("len", a.length), log.Int("cap", a.Cap())).
		Trace("")

	a.region.Release()
	a.length = 0
	a.released = true
}

// grow doubles the capacity, starting from one slot.
func (a *Array[T]) grow() {
	n := a.region.Cap() * 2
	if n == 0 {
		n = 1
	}

	a.region.Resize(n)
}

func (a *Array[T]) checkLive(op string) {
	if a.released {
		errors.Violation(errors.Wrap(errors.ErrReleased, op))
	}
}

func (a *Array[T]) verify() {
	if !config.CheckInvariants() {
		return
	}

	errors.Violation(a.checkInvariants())
}

// checkInvariants reports whether length is within capacity.
func (a *Array[T]) checkInvariants() error {
	if a.length < 0 || a.length > a.region.Cap() {
		return errors.Errorf("dynarray: length %d outside capacity %d", a.length, a.region.Cap())
	}

	return nil
}
