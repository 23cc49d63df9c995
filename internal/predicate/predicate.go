package predicate

import "fmt"

// Kind identifies which of the three predicate variants a Predicate holds.
type Kind int

const (
	// kindInvalid is the zero value. It is never produced by Resolve.
	kindInvalid Kind = iota
	KindAlwaysEnabled
	KindAlwaysDisabled
	KindGuardedBy
)

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	switch k {
	case KindAlwaysEnabled:
		return "always_enabled"
	case KindAlwaysDisabled:
		return "always_disabled"
	case KindGuardedBy:
		return "guarded_by"
	default:
		return "invalid"
	}
}

// Predicate is the resolved availability condition of a version step or an
// extension. Values are comparable and safe to copy.
type Predicate struct {
	kind   Kind
	symbol string
}

// AlwaysEnabled returns a predicate that is unconditionally true.
func AlwaysEnabled() Predicate { return Predicate{kind: KindAlwaysEnabled} }

// AlwaysDisabled returns a predicate that is unconditionally false.
func AlwaysDisabled() Predicate { return Predicate{kind: KindAlwaysDisabled} }

// GuardedBy returns a predicate that holds only when the consumer's build
// defines symbol. The symbol is never evaluated here.
func GuardedBy(symbol string) Predicate {
	return Predicate{kind: KindGuardedBy, symbol: symbol}
}

// Kind returns the variant of p.
func (p Predicate) Kind() Kind { return p.kind }

// Symbol returns the guard symbol, or "" for the unconditional variants.
func (p Predicate) Symbol() string { return p.symbol }

// IsGuarded reports whether p is a GuardedBy predicate.
func (p Predicate) IsGuarded() bool { return p.kind == KindGuardedBy }

// IsValid reports whether p is one of the three variants.
func (p Predicate) IsValid() bool {
	return p.kind == KindAlwaysEnabled || p.kind == KindAlwaysDisabled || p.kind == KindGuardedBy
}

// Literal returns the boolean literal for an unconditional predicate. For a
// guarded predicate it returns true, the value that applies inside the guard.
func (p Predicate) Literal() bool {
	return p.kind != KindAlwaysDisabled
}

func (p Predicate) String() string {
	if p.kind == KindGuardedBy {
		return fmt.Sprintf("guarded_by(%s)", p.symbol)
	}
	return p.kind.String()
}
