package alloc

import (
	"math"
	"unsafe"

	"github.com/percona/percona-compsci/errors"
)

// MaxAllocBytes is the largest byte size a single allocation may request.
const MaxAllocBytes = math.MaxInt

// SizeOf returns the byte size of n values of T.
// It raises [errors.ErrAllocTooLarge] when the size overflows [MaxAllocBytes].
func SizeOf[T any](n int) int {
	var zero T

	elem := int(unsafe.Sizeof(zero))

	bytes, ok := mulOverflowSafe(n, elem)
	if !ok {
		errors.Violation(errors.Wrapf(errors.ErrAllocTooLarge,
			"%d slots of %d bytes", n, elem))
	}

	return bytes
}

// mulOverflowSafe multiplies two non-negative ints, returning ok = false when
// either is negative or the product exceeds MaxAllocBytes.
func mulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}

	if a == 0 || b == 0 {
		return 0, true
	}

	if a > MaxAllocBytes/b {
		return 0, false
	}

	return a * b, true
}
