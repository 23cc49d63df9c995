package pipeline

import "fmt"

// State is a stage of the pipeline.
type State int

const (
	StateLoaded State = iota
	StateValidated
	StateResolved
	StateEmitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateValidated:
		return "validated"
	case StateResolved:
		return "resolved"
	case StateEmitted:
		return "emitted"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateEmitted || s == StateFailed
}

// canTransition reports whether from → to is a legal step.
func canTransition(from, to State) bool {
	if from.Terminal() {
		return false
	}
	if to == StateFailed {
		return true
	}
	return to == from+1
}
