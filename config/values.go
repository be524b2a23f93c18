package config

import (
	"os"
	"sync"
)

//nolint:gochecknoglobals
var checkInvariants = sync.OnceValue(func() bool {
	return os.Getenv("PCS_CHECK_INVARIANTS") == "1"
})

// CheckInvariants determines whether containers verify their structural invariants
// after every mutation.
// Enabled when the PCS_CHECK_INVARIANTS environment variable is set to "1".
func CheckInvariants() bool {
	return checkInvariants()
}
