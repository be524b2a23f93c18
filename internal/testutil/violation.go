package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/percona/percona-compsci/errors"
)

// RequireViolation runs fn and fails the test unless it panics with an error
// matching target.
//
// Example:
//
//	testutil.RequireViolation(t, errors.ErrOutOfBounds, func() {
//		arr.Remove(0)
//	})
func RequireViolation(t *testing.T, target error, fn func()) {
	t.Helper()

	err := catch(fn)
	require.Error(t, err, "expected a contract violation")
	require.ErrorIs(t, err, target)
}

func catch(fn func()) (err error) {
	defer errors.Recover(&err)

	fn()

	return nil
}
