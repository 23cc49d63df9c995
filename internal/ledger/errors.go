package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderingViolation matches any *OrderingViolation via errors.Is.
	ErrOrderingViolation = errors.New("api version ordering violation")

	// ErrEmptyLedger is returned when no ceiling can be derived.
	ErrEmptyLedger = errors.New("no API version step available")
)

// OrderingViolation reports the first pair of adjacent steps whose versions
// are not strictly increasing. Current is the offending step.
type OrderingViolation struct {
	Index    int
	Previous Version
	Current  Version
}

func (e *OrderingViolation) Error() string {
	return fmt.Sprintf("api_version %q (position %d) must be greater than the preceding %q",
		e.Current, e.Index, e.Previous)
}

// Is implements error matching for errors.Is() checks.
func (e *OrderingViolation) Is(target error) bool {
	return target == ErrOrderingViolation
}
