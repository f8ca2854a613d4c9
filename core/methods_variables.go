// File: methods_variables.go
// Role: Variable lifecycle & queries: AddVariable/HasVariable/Variable/Variables/
//       VariableNames/VariableCount/Card.
// Determinism:
//   - Variables() and VariableNames() return results sorted by name asc.
// Concurrency:
//   - Mutations under muVar write lock (plus muEdge for index bootstrap).
//   - Read queries under muVar read lock.

package core

import (
	"fmt"
	"sort"
)

// AddVariable declares a new Variable with the given name and cardinality.
//
// Steps:
//  1. Validate name, cardinality and optional state labels.
//  2. Lock muVar, reject duplicates with ErrDuplicateVariable.
//  3. Store a private copy and bootstrap the parent/child indexes.
//
// Unlike an idempotent vertex insert, redeclaring a variable is an error:
// two declarations could disagree on cardinality.
//
// Complexity: O(len(States)).
func (g *Graph) AddVariable(name string, card int, opts ...VariableOption) error {
	// 1) Input validation
	if name == "" {
		return ErrEmptyName
	}
	if card <= 0 {
		return fmt.Errorf("%w: %q has cardinality %d", ErrBadCardinality, name, card)
	}
	v := &Variable{Name: name, Card: card}
	for _, opt := range opts {
		opt(v)
	}
	if err := checkStates(v); err != nil {
		return err
	}

	// 2) Register in the catalog
	g.muVar.Lock()
	defer g.muVar.Unlock()
	if _, exists := g.variables[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
	}
	g.variables[name] = v

	// 3) Bootstrap index buckets so ParentsOf/ChildrenOf never see nil maps
	g.muEdge.Lock()
	g.parents[name] = make(map[string]bool)
	g.children[name] = make(map[string]bool)
	g.muEdge.Unlock()

	return nil
}

// checkStates enforces len(States) ∈ {0, Card} and unique labels.
func checkStates(v *Variable) error {
	if len(v.States) == 0 {
		return nil
	}
	if len(v.States) != v.Card {
		return fmt.Errorf("%w: %q has %d labels for cardinality %d",
			ErrStateNames, v.Name, len(v.States), v.Card)
	}
	seen := make(map[string]struct{}, len(v.States))
	for _, s := range v.States {
		if _, dup := seen[s]; dup {
			return fmt.Errorf("%w: %q repeats label %q", ErrStateNames, v.Name, s)
		}
		seen[s] = struct{}{}
	}

	return nil
}

// HasVariable reports whether a variable with the given name exists (empty name ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVariable(name string) bool {
	if name == "" {
		return false
	}
	g.muVar.RLock()
	defer g.muVar.RUnlock()
	_, ok := g.variables[name]

	return ok
}

// Variable returns a copy of the named Variable or ErrVariableNotFound.
// Complexity: O(len(States)) for the label copy.
func (g *Graph) Variable(name string) (Variable, error) {
	g.muVar.RLock()
	defer g.muVar.RUnlock()
	v, ok := g.variables[name]
	if !ok {
		return Variable{}, fmt.Errorf("%w: %q", ErrVariableNotFound, name)
	}

	return v.Clone(), nil
}

// Card returns the cardinality of the named variable.
// Complexity: O(1).
func (g *Graph) Card(name string) (int, error) {
	g.muVar.RLock()
	defer g.muVar.RUnlock()
	v, ok := g.variables[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVariableNotFound, name)
	}

	return v.Card, nil
}

// Variables returns copies of all variables sorted by name.
// Complexity: O(V log V).
func (g *Graph) Variables() []Variable {
	g.muVar.RLock()
	defer g.muVar.RUnlock()
	out := make([]Variable, 0, len(g.variables))
	for _, v := range g.variables {
		out = append(out, v.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// VariableNames returns all variable names sorted ascending.
// Complexity: O(V log V).
func (g *Graph) VariableNames() []string {
	g.muVar.RLock()
	defer g.muVar.RUnlock()
	names := make([]string, 0, len(g.variables))
	for name := range g.variables {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// VariableCount returns the number of declared variables.
func (g *Graph) VariableCount() int {
	g.muVar.RLock()
	defer g.muVar.RUnlock()

	return len(g.variables)
}
