package extregistry

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName matches any *DuplicateName via errors.Is.
	ErrDuplicateName = errors.New("duplicate extension name")

	// ErrInvalidSpecVersion matches any *InvalidSpecVersion via errors.Is.
	ErrInvalidSpecVersion = errors.New("invalid extension spec version")

	// ErrInvalidName is returned for a record with an empty name.
	ErrInvalidName = errors.New("extension name must not be empty")
)

// DuplicateName reports a name that was already declared earlier.
type DuplicateName struct {
	Name       string
	Index      int
	FirstIndex int
}

func (e *DuplicateName) Error() string {
	return fmt.Sprintf("extension %q at position %d duplicates the declaration at position %d",
		e.Name, e.Index, e.FirstIndex)
}

// Is implements error matching for errors.Is() checks.
func (e *DuplicateName) Is(target error) bool {
	return target == ErrDuplicateName
}

// InvalidSpecVersion reports a non-positive spec version.
type InvalidSpecVersion struct {
	Name  string
	Value int
}

func (e *InvalidSpecVersion) Error() string {
	return fmt.Sprintf("extension %q: spec_version must be a positive integer, got %d", e.Name, e.Value)
}

// Is implements error matching for errors.Is() checks.
func (e *InvalidSpecVersion) Is(target error) bool {
	return target == ErrInvalidSpecVersion
}
