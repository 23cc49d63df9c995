package registrysource

import (
	"sort"
	"sync"
)

// Source answers canonical metadata lookups.
type Source interface {
	// Lookup returns the canonical entry for name if the registry publishes
	// it at specVersion. It fails with *UnknownExtension or *UnknownVersion.
	Lookup(name string, specVersion int) (CanonicalEntry, error)
}

// Store is an in-memory Source. The zero value is not usable; call NewStore.
type Store struct {
	entries map[string]CanonicalEntry
}

// NewStore creates a store holding entries. When two entries share a name the
// first one is kept.
func NewStore(entries ...CanonicalEntry) *Store {
	s := &Store{entries: make(map[string]CanonicalEntry, len(entries))}
	for _, e := range entries {
		s.Add(e)
	}
	return s
}

// Add inserts e unless an entry with the same name exists. It reports whether
// e was inserted.
func (s *Store) Add(e CanonicalEntry) bool {
	if _, exists := s.entries[e.Name]; exists {
		return false
	}
	e.Requires = append([]string(nil), e.Requires...)
	s.entries[e.Name] = e
	return true
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// Entries returns all entries sorted by name.
func (s *Store) Entries() []CanonicalEntry {
	out := make([]CanonicalEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup implements Source. Any revision between 1 and the published one is
// accepted.
func (s *Store) Lookup(name string, specVersion int) (CanonicalEntry, error) {
	e, ok := s.entries[name]
	if !ok {
		return CanonicalEntry{}, &UnknownExtension{Name: name}
	}
	if specVersion < 1 || specVersion > e.Version {
		return CanonicalEntry{}, &UnknownVersion{Name: name, SpecVersion: specVersion, Available: e.Version}
	}
	e.Requires = append([]string(nil), e.Requires...)
	return e, nil
}

// CountingSource wraps a Source and records every lookup.
type CountingSource struct {
	Source Source

	mu    sync.Mutex
	calls map[string]int
	order []string
}

// Lookup implements Source.
func (c *CountingSource) Lookup(name string, specVersion int) (CanonicalEntry, error) {
	c.mu.Lock()
	if c.calls == nil {
		c.calls = make(map[string]int)
	}
	c.calls[name]++
	c.order = append(c.order, name)
	c.mu.Unlock()
	return c.Source.Lookup(name, specVersion)
}

// Calls returns how many times name was looked up.
func (c *CountingSource) Calls(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[name]
}

// Order returns the looked-up names in call order.
func (c *CountingSource) Order() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.order...)
}
