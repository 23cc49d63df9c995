package registrysource

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownExtension matches any *UnknownExtension via errors.Is.
	ErrUnknownExtension = errors.New("unknown extension")

	// ErrUnknownVersion matches any *UnknownVersion via errors.Is.
	ErrUnknownVersion = errors.New("unknown extension version")
)

// UnknownExtension is returned when the registry has no entry for Name.
type UnknownExtension struct {
	Name string
}

func (e *UnknownExtension) Error() string {
	return fmt.Sprintf("extension %q is not defined in the registry", e.Name)
}

// Is implements error matching for errors.Is() checks.
func (e *UnknownExtension) Is(target error) bool {
	return target == ErrUnknownExtension
}

// UnknownVersion is returned when the registry knows Name but not at the
// requested revision.
type UnknownVersion struct {
	Name        string
	SpecVersion int
	Available   int
}

func (e *UnknownVersion) Error() string {
	return fmt.Sprintf("extension %q: spec_version %d is not published in the registry (latest is %d)",
		e.Name, e.SpecVersion, e.Available)
}

// Is implements error matching for errors.Is() checks.
func (e *UnknownVersion) Is(target error) bool {
	return target == ErrUnknownVersion
}
