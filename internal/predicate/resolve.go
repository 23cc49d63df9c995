package predicate

import "fmt"

// Resolve maps an authored enablement value onto a Predicate. A bool becomes
// one of the unconditional variants; anything else names a platform guard.
// Resolve never fails.
func Resolve(v any) Predicate {
	switch val := v.(type) {
	case Predicate:
		return val
	case bool:
		if val {
			return AlwaysEnabled()
		}
		return AlwaysDisabled()
	case string:
		return GuardedBy(val)
	case fmt.Stringer:
		return GuardedBy(val.String())
	default:
		return GuardedBy(fmt.Sprint(val))
	}
}
