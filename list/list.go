// Package list implements a doubly linked list whose nodes are individually
// allocated through [alloc.New] and freed through [alloc.Free].
package list

import (
	"iter"

	"github.com/percona/percona-compsci/alloc"
	"github.com/percona/percona-compsci/config"
	"github.com/percona/percona-compsci/errors"
	"github.com/percona/percona-compsci/log"
)

// List is a doubly linked list.
//
// The list owns every element; prev/next links between elements are
// navigational only. The zero value is an empty list.
// A List is not safe for concurrent use.
type List[T any] struct {
	head   *listElem[T]
	tail   *listElem[T]
	length int

	tr       alloc.Tracker
	released bool

	// visit is called for every element walked by elemAt.
	visit func()
}

// listElem is an element in the doubly linked list.
type listElem[T any] struct {
	prev *listElem[T]
	next *listElem[T]
	val  T
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty checks if the list is empty.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Stats returns the node allocation accounting.
func (l *List[T]) Stats() alloc.Stats {
	return l.tr.Stats()
}

// PushFront adds a new element to the front of the list.
func (l *List[T]) PushFront(val T) {
	l.Insert(val, 0)
}

// PushBack adds a new element to the end of the list.
func (l *List[T]) PushBack(val T) {
	l.Insert(val, l.length)
}

// PopFront removes and returns the first element from the list.
func (l *List[T]) PopFront() (T, bool) { //nolint:ireturn
	l.checkLive("pop front")

	if l.length == 0 {
		var zero T
		return zero, false
	}

	return l.unlink(l.head), true
}

// PopBack removes and returns the last element from the list.
func (l *List[T]) PopBack() (T, bool) { //nolint:ireturn
	l.checkLive("pop back")

	if l.length == 0 {
		var zero T
		return zero, false
	}

	return l.unlink(l.tail), true
}

// Front returns the first element without removing it.
func (l *List[T]) Front() (T, bool) { //nolint:ireturn
	l.checkLive("front")

	if l.head == nil {
		var zero T
		return zero, false
	}

	return l.head.val, true
}

// Back returns the last element without removing it.
func (l *List[T]) Back() (T, bool) { //nolint:ireturn
	l.checkLive("back")

	if l.tail == nil {
		var zero T
		return zero, false
	}

	return l.tail.val, true
}

// Insert places val at index. Index must be in [0, Len()]; Len() appends.
func (l *List[T]) Insert(val T, index int) {
	l.checkLive("insert")
	errors.CheckIndex("insert", index, l.length+1)

	var prev, next *listElem[T]
	if index == l.length {
		prev = l.tail
	} else {
		next = l.elemAt(index)
		prev = next.prev
	}

	elem := alloc.New(&l.tr, listElem[T]{prev: prev, next: next, val: val})

	if prev == nil {
		l.head = elem
	} else {
		prev.next = elem
	}

	if next == nil {
		l.tail = elem
	} else {
		next.prev = elem
	}

	l.length++

	l.verify()
}

// Remove removes and returns the element at index. Index must be in [0, Len()).
func (l *List[T]) Remove(index int) T { //nolint:ireturn
	l.checkLive("remove")
	errors.CheckIndex("remove", index, l.length)

	return l.unlink(l.elemAt(index))
}

// At returns the element at index. Index must be in [0, Len()).
func (l *List[T]) At(index int) T { //nolint:ireturn
	l.checkLive("at")
	errors.CheckIndex("at", index, l.length)

	return l.elemAt(index).val
}

// Clear removes all elements from the list, freeing every node.
func (l *List[T]) Clear() {
	l.checkLive("clear")

	n := l.length
	for e := l.head; e != nil; {
		next := e.next
		alloc.Free(&l.tr, e)
		e = next
	}

	l.head = nil
	l.tail = nil
	l.length = 0

	log.New("list").With(log.Op("clear"), log.Int("freed", n)).Trace("")
}

// Free clears the list and releases it. The list must not be used afterwards.
func (l *List[T]) Free() {
	l.Clear()
	l.released = true
}

// All returns an iterator for all elements in the list.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.val) {
				return
			}
		}
	}
}

// Backward returns an iterator for all elements in the list in reverse order.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.tail; e != nil; e = e.prev {
			if !yield(e.val) {
				return
			}
		}
	}
}

// elemAt walks to the element at index from whichever end is nearer:
// backward from the tail when index >= Len()/2, forward from the head otherwise.
func (l *List[T]) elemAt(index int) *listElem[T] {
	if index >= l.length/2 {
		e := l.tail
		for i := l.length - 1; ; i-- {
			l.visited()
			if i == index {
				return e
			}
			e = e.prev
		}
	}

	e := l.head
	for i := 0; ; i++ {
		l.visited()
		if i == index {
			return e
		}
		e = e.next
	}
}

func (l *List[T]) visited() {
	if l.visit != nil {
		l.visit()
	}
}

// unlink bypasses e, frees it and returns its value.
func (l *List[T]) unlink(e *listElem[T]) T { //nolint:ireturn
	if e.prev == nil {
		l.head = e.next
	} else {
		e.prev.next = e.next
	}

	if e.next == nil {
		l.tail = e.prev
	} else {
		e.next.prev = e.prev
	}

	l.length--

	val := e.val
	alloc.Free(&l.tr, e)

	l.verify()

	return val
}

func (l *List[T]) checkLive(op string) {
	if l.released {
		errors.Violation(errors.Wrap(errors.ErrReleased, op))
	}
}

func (l *List[T]) verify() {
	if !config.CheckInvariants() {
		return
	}

	errors.Violation(l.checkInvariants())
}

// checkInvariants walks the chain and reports the first broken link.
func (l *List[T]) checkInvariants() error {
	if (l.head == nil) != (l.length == 0) || (l.tail == nil) != (l.length == 0) {
		return errors.Errorf("list: head/tail presence disagrees with length %d", l.length)
	}

	if l.head != nil && l.head.prev != nil {
		return errors.New("list: head has a predecessor")
	}

	n := 0
	var prev *listElem[T]
	for e := l.head; e != nil; e = e.next {
		if e.prev != prev {
			return errors.Errorf("list: element %d has a stale prev link", n)
		}

		prev = e
		n++

		if n > l.length {
			return errors.Errorf("list: chain longer than length %d", l.length)
		}
	}

	if n != l.length {
		return errors.Errorf("list: chain has %d elements, length is %d", n, l.length)
	}

	if prev != l.tail {
		return errors.New("list: chain does not end at tail")
	}

	return nil
}
