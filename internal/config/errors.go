package config

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredInput matches any *MissingRequiredInput via errors.Is.
var ErrMissingRequiredInput = errors.New("missing required input")

// MissingRequiredInput reports an input the run cannot proceed without: an
// unset flag, or a location that resolves to no file.
type MissingRequiredInput struct {
	Input  string
	Detail string
}

func (e *MissingRequiredInput) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("missing required input: %s", e.Input)
	}
	return fmt.Sprintf("missing required input: %s (%s)", e.Input, e.Detail)
}

// Is implements error matching for errors.Is() checks.
func (e *MissingRequiredInput) Is(target error) bool {
	return target == ErrMissingRequiredInput
}
