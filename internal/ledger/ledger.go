package ledger

import (
	"fmt"

	"github.com/specialistvlad/vkcapgen/internal/predicate"
)

// Step is one supported API version ceiling together with the condition
// under which it is available.
type Step struct {
	Version    Version
	Enablement predicate.Predicate
}

// Ledger is an ordered, immutable sequence of steps.
type Ledger struct {
	steps []Step
}

// New builds a ledger from steps in declaration order. The input slice is
// copied.
func New(steps ...Step) Ledger {
	return Ledger{steps: append([]Step(nil), steps...)}
}

// Append returns a new ledger with step added at the end. The receiver is
// left untouched.
func (l Ledger) Append(step Step) Ledger {
	next := make([]Step, len(l.steps), len(l.steps)+1)
	copy(next, l.steps)
	return Ledger{steps: append(next, step)}
}

// Len returns the number of steps.
func (l Ledger) Len() int { return len(l.steps) }

// Steps returns a copy of the steps in declaration order.
func (l Ledger) Steps() []Step {
	return append([]Step(nil), l.steps...)
}

// Validate checks that versions are strictly increasing and returns the
// first violation found.
func (l Ledger) Validate() error {
	for i := 1; i < len(l.steps); i++ {
		prev, cur := l.steps[i-1].Version, l.steps[i].Version
		if cur.Compare(prev) <= 0 {
			return &OrderingViolation{Index: i, Previous: prev, Current: cur}
		}
	}
	return nil
}

// CeilingPolicy selects how ResolveCeiling treats step enablement.
type CeilingPolicy int

const (
	// CeilingLastDeclared reports the last declared step regardless of its
	// enablement. Enablement is still carried into the emitted table.
	CeilingLastDeclared CeilingPolicy = iota

	// CeilingEnabledPrefix reports the last step of the leading run of
	// always-enabled steps. A guarded step ends the run because its guard
	// cannot be evaluated at generation time.
	CeilingEnabledPrefix
)

var policyNames = map[CeilingPolicy]string{
	CeilingLastDeclared:  "last_declared",
	CeilingEnabledPrefix: "enabled_prefix",
}

func (p CeilingPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("CeilingPolicy(%d)", int(p))
}

// ParseCeilingPolicy maps a config value onto a CeilingPolicy. An empty
// string selects CeilingLastDeclared.
func ParseCeilingPolicy(s string) (CeilingPolicy, error) {
	switch s {
	case "", "last_declared":
		return CeilingLastDeclared, nil
	case "enabled_prefix":
		return CeilingEnabledPrefix, nil
	default:
		return 0, fmt.Errorf("unknown ceiling policy %q: must be 'last_declared' or 'enabled_prefix'", s)
	}
}

// ResolveCeiling returns the maximum supported API version under policy.
// The ledger is expected to have passed Validate.
func (l Ledger) ResolveCeiling(policy CeilingPolicy) (Version, error) {
	if len(l.steps) == 0 {
		return Version{}, ErrEmptyLedger
	}

	switch policy {
	case CeilingLastDeclared:
		return l.steps[len(l.steps)-1].Version, nil
	case CeilingEnabledPrefix:
		last := -1
		for i, s := range l.steps {
			if s.Enablement.Kind() != predicate.KindAlwaysEnabled {
				break
			}
			last = i
		}
		if last < 0 {
			return Version{}, fmt.Errorf("%w: first step %s is not always enabled", ErrEmptyLedger, l.steps[0].Version)
		}
		return l.steps[last].Version, nil
	default:
		return Version{}, fmt.Errorf("unsupported ceiling policy %s", policy)
	}
}
