package cpd

import (
	"fmt"
	"sort"
	"sync"
)

// Store is an ordered collection of CPDs. It deliberately keeps duplicates
// for the same owner: the model validator reports them instead of silently
// keeping one.
type Store struct {
	mu   sync.RWMutex
	cpds []*Tabular
}

// NewStore returns a Store holding cpds in order. Nil entries are rejected by Add.
func NewStore(cpds ...*Tabular) (*Store, error) {
	s := &Store{}
	if err := s.Add(cpds...); err != nil {
		return nil, err
	}

	return s, nil
}

// Add appends cpds. Either all are added or, on a nil entry, none.
func (s *Store) Add(cpds ...*Tabular) error {
	for i, c := range cpds {
		if c == nil {
			return fmt.Errorf("%w: nil CPD at position %d", ErrValue, i)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cpds = append(s.cpds, cpds...)

	return nil
}

// For returns every CPD whose owner is name, in insertion order.
func (s *Store) For(name string) []*Tabular {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Tabular
	for _, c := range s.cpds {
		if c.variable == name {
			out = append(out, c)
		}
	}

	return out
}

// All returns all CPDs in insertion order.
func (s *Store) All() []*Tabular {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*Tabular(nil), s.cpds...)
}

// Len returns the number of stored CPDs, duplicates included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.cpds)
}

// Owners returns the distinct owner names, sorted.
func (s *Store) Owners() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := make(map[string]struct{}, len(s.cpds))
	for _, c := range s.cpds {
		set[c.variable] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
