package alloc

import (
	"github.com/percona/percona-compsci/errors"
	"github.com/percona/percona-compsci/log"
	"github.com/percona/percona-compsci/metrics"
)

// Region is one owned contiguous block of Cap() slots of T.
//
// The zero value holds no allocation. Slots hold the zero value of T until
// written, so a region never exposes uninitialized memory; it is up to the
// owner to track which prefix is live.
type Region[T any] struct {
	slots []T
	tr    Tracker
}

// Cap returns the number of allocated slots.
func (r *Region[T]) Cap() int {
	return len(r.slots)
}

// Stats returns the region's allocation accounting.
func (r *Region[T]) Stats() Stats {
	return r.tr.Stats()
}

// Resize grows the region to n slots, keeping the contents of the existing slots.
// The first call acquires a block; later calls acquire a larger block, move the
// slots over and release the old one.
func (r *Region[T]) Resize(n int) {
	old := len(r.slots)
	if n <= old {
		errors.Violation(errors.Wrapf(errors.ErrOutOfBounds,
			"resize: %d slots does not exceed capacity %d", n, old))
	}

	bytes := SizeOf[T](n)

	if old == 0 {
		r.slots = make([]T, n)
		r.acquired(bytes)

		log.New("alloc").With(log.Op("acquire"), log.Int("cap", n), log.Int("bytes", bytes)).
			Trace("")

		return
	}

	slots := make([]T, n)
	copy(slots, r.slots)
	r.acquired(bytes)

	oldBytes := SizeOf[T](old)
	clear(r.slots)
	r.slots = slots
	r.released(oldBytes)

	r.tr.stats.Resized++
	metrics.AddRegionResize()

	log.New("alloc").With(log.Op("resize"),
		log.Int("from", old), log.Int("to", n), log.Int("bytes", bytes)).
		Trace("")
}

// Release frees the block. Releasing a region without a block is a no-op.
func (r *Region[T]) Release() {
	n := len(r.slots)
	if n == 0 {
		return
	}

	clear(r.slots)
	r.slots = nil
	r.released(SizeOf[T](n))
}

// Load returns the value at slot i.
func (r *Region[T]) Load(i int) T {
	return r.slots[i]
}

// Store writes v to slot i.
func (r *Region[T]) Store(i int, v T) {
	r.slots[i] = v
}

// Take returns the value at slot i and clears the slot.
func (r *Region[T]) Take(i int) T {
	v := r.slots[i]
	r.Clear(i)

	return v
}

// Clear zeroes slot i.
func (r *Region[T]) Clear(i int) {
	var zero T
	r.slots[i] = zero
}

// Move copies n slots starting at src to dst. The ranges may overlap.
func (r *Region[T]) Move(dst, src, n int) {
	if n == 0 {
		return
	}

	copy(r.slots[dst:dst+n], r.slots[src:src+n])
}

func (r *Region[T]) acquired(bytes int) {
	r.tr.acquire(bytes)
	metrics.AddRegionAcquired(bytes)
}

func (r *Region[T]) released(bytes int) {
	r.tr.release(bytes)
	metrics.AddRegionReleased(bytes)
}
