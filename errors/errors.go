package errors

import (
	"errors"
	"fmt"
)

// Contract violations. These are raised with [Violation] and never returned: they
// signal a programmer error, not a runtime condition.
var (
	// ErrOutOfBounds is raised when an index falls outside the valid range of an operation.
	ErrOutOfBounds = New("out of bounds index")
	// ErrReleased is raised when a container is used after it was freed or
	// handed to a destructive iterator.
	ErrReleased = New("use of released container")
	// ErrAllocTooLarge is raised when a requested allocation cannot be represented.
	ErrAllocTooLarge = New("allocation too large")
)

type wrappedError struct {
	cause error
	msg   string
}

func (w *wrappedError) Error() string { return w.msg + ": " + w.cause.Error() }
func (w *wrappedError) Unwrap() error { return w.cause }

// New calls [errors.New].
func New(text string) error {
	return errors.New(text) //nolint:err113
}

// Errorf calls [fmt.Errorf].
func Errorf(format string, vals ...any) error {
	return fmt.Errorf(format, vals...) //nolint:err113
}

func Wrap(cause error, text string) error {
	if cause == nil {
		return nil
	}

	return &wrappedError{cause: cause, msg: text}
}

func Wrapf(cause error, format string, vals ...any) error {
	if cause == nil {
		return nil
	}

	return &wrappedError{cause: cause, msg: fmt.Sprintf(format, vals...)}
}

// Unwrap calls [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join calls [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Is calls [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As calls [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Violation halts the calling operation by panicking with err.
// A nil err is a no-op.
func Violation(err error) {
	if err != nil {
		panic(err)
	}
}

// CheckIndex raises [ErrOutOfBounds] unless 0 <= index < limit.
func CheckIndex(op string, index, limit int) {
	if index < 0 || index >= limit {
		Violation(Wrapf(ErrOutOfBounds, "%s: index %d, length %d", op, index, limit))
	}
}

// Recover converts a panic raised by [Violation] back into an error.
// Panics carrying anything other than an error are re-raised.
//
//	defer errors.Recover(&err)
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	err, ok := r.(error)
	if !ok {
		panic(r)
	}

	*errp = err
}
