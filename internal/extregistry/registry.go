package extregistry

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/vkcapgen/internal/predicate"
)

// Record is one declared extension.
type Record struct {
	Name        string
	SpecVersion int
	Enablement  predicate.Predicate
}

// Registry is an immutable, declaration-ordered list of records.
type Registry struct {
	records []Record
}

// New builds a registry from records in declaration order. The input slice
// is copied.
func New(records ...Record) Registry {
	return Registry{records: append([]Record(nil), records...)}
}

// Append returns a new registry with record added at the end.
func (r Registry) Append(record Record) Registry {
	next := make([]Record, len(r.records), len(r.records)+1)
	copy(next, r.records)
	return Registry{records: append(next, record)}
}

// Len returns the number of records.
func (r Registry) Len() int { return len(r.records) }

// Records returns a copy of the records in declaration order.
func (r Registry) Records() []Record {
	return append([]Record(nil), r.records...)
}

type indexedName struct {
	name  string
	index int
}

// sortedNames returns every declared name paired with its declaration
// position, sorted by name and then by position.
func (r Registry) sortedNames() []indexedName {
	view := make([]indexedName, len(r.records))
	for i, rec := range r.records {
		view[i] = indexedName{name: rec.Name, index: i}
	}
	sort.SliceStable(view, func(i, j int) bool {
		return view[i].name < view[j].name
	})
	return view
}

// SortedNames returns the declared names in lexical order. Duplicates are
// kept.
func (r Registry) SortedNames() []string {
	view := r.sortedNames()
	names := make([]string, len(view))
	for i, v := range view {
		names[i] = v.name
	}
	return names
}

// Validate checks every record and returns the first failure in
// declaration order.
func (r Registry) Validate() error {
	// firstSeen maps each repeated occurrence to the position of its first
	// declaration, computed over the sorted view.
	firstSeen := make([]int, len(r.records))
	for i := range firstSeen {
		firstSeen[i] = -1
	}
	view := r.sortedNames()
	for i := 1; i < len(view); i++ {
		if view[i].name != view[i-1].name {
			continue
		}
		first := view[i-1].index
		if f := firstSeen[view[i-1].index]; f >= 0 {
			first = f
		}
		firstSeen[view[i].index] = first
	}

	for i, rec := range r.records {
		if rec.Name == "" {
			return fmt.Errorf("%w (position %d)", ErrInvalidName, i)
		}
		if rec.SpecVersion <= 0 {
			return &InvalidSpecVersion{Name: rec.Name, Value: rec.SpecVersion}
		}
		if firstSeen[i] >= 0 {
			return &DuplicateName{Name: rec.Name, Index: i, FirstIndex: firstSeen[i]}
		}
	}
	return nil
}
