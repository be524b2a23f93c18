package alloc

import (
	"github.com/percona/percona-compsci/errors"
	"github.com/percona/percona-compsci/metrics"
)

// New allocates a single T holding v and records it in t.
func New[T any](t *Tracker, v T) *T {
	p := new(T)
	*p = v

	bytes := SizeOf[T](1)
	t.acquire(bytes)
	metrics.AddNodeAllocated(bytes)

	return p
}

// Free zeroes the T at p and records its release in t.
// The caller must not use p afterwards.
func Free[T any](t *Tracker, p *T) {
	if p == nil {
		errors.Violation(errors.Wrap(errors.ErrReleased, "free nil object"))
	}

	var zero T
	*p = zero

	bytes := SizeOf[T](1)
	t.release(bytes)
	metrics.AddNodeFreed(bytes)
}
