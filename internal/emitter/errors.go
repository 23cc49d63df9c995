package emitter

import (
	"errors"
	"fmt"
)

// ErrEmptyGuard matches any *EmptyGuard via errors.Is.
var ErrEmptyGuard = errors.New("guarded entry has an empty symbol")

// EmptyGuard reports a GuardedBy entry whose symbol is empty. It has no
// conditional block to be emitted in.
type EmptyGuard struct {
	Kind  string // "api_version" or "extension"
	Name  string
	Index int
}

func (e *EmptyGuard) Error() string {
	return fmt.Sprintf("%s %q (position %d): guard symbol must not be empty", e.Kind, e.Name, e.Index)
}

// Is implements error matching for errors.Is() checks.
func (e *EmptyGuard) Is(target error) bool {
	return target == ErrEmptyGuard
}
