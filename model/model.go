// Package model cross-checks a network structure against its CPDs and
// produces an immutable, validated Model that samplers can trust.
//
// Check accepts a structure only if:
//
//	(a) every variable has exactly one CPD;
//	(b) no CPD mentions a variable absent from the structure;
//	(c) each CPD's evidence set equals the owner's parent set (order-independent),
//	    with cardinalities matching the declared variables;
//	(d) every CPD passes its own shape and normalization checks.
//
// The first violation is reported, wrapped in ErrValidation; no partial
// Model is ever returned.
package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/core"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/cpd"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/dfs"
)

// ErrValidation indicates that a structure and its CPDs are inconsistent, or
// that an operation was attempted on a Model that did not pass Check.
var ErrValidation = errors.New("model: validation failed")

// Model is a validated Bayesian network. The zero value is not valid; obtain
// Models from Check or Build. A Model is read-only and safe for concurrent use.
type Model struct {
	graph     *core.Graph             // private clone of the checked structure
	cpds      map[string]*cpd.Tabular // owner → its single CPD
	variables map[string]core.Variable
	order     []string // cached topological order
	validated bool
}

// Check validates g against store and returns an immutable Model.
//
// Steps:
//  1. Reject nil inputs.
//  2. Topologically sort a private clone of g (cycles ⇒ ErrValidation + core.ErrCycle).
//  3. (a) exactly one CPD per variable.
//  4. (b) no CPD owner or evidence outside g.
//  5. (c) evidence set == parent set, cardinalities agree; (d) CPD self-check.
//
// Variables are visited in name order, so the reported violation is deterministic.
// Complexity: O(V + E + Σ CPD sizes).
func Check(g *core.Graph, store *cpd.Store) (*Model, error) {
	// 1) Inputs
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrValidation)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: CPD store is nil", ErrValidation)
	}

	// 2) Private structure and its order
	graph := g.Clone()
	order, err := dfs.TopologicalSort(graph)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	vars := graph.Variables()
	byName := make(map[string]core.Variable, len(vars))
	for _, v := range vars {
		byName[v.Name] = v
	}

	// 3) (a) exactly one CPD per variable
	owned := make(map[string]*cpd.Tabular, len(vars))
	for _, v := range vars {
		list := store.For(v.Name)
		switch len(list) {
		case 0:
			return nil, fmt.Errorf("%w: variable %s has no CPD", ErrValidation, v.Name)
		case 1:
			owned[v.Name] = list[0]
		default:
			return nil, fmt.Errorf("%w: variable %s has %d CPDs", ErrValidation, v.Name, len(list))
		}
	}

	// 4) (b) orphans
	for _, c := range store.All() {
		if _, ok := byName[c.Variable()]; !ok {
			return nil, fmt.Errorf("%w: CPD for unknown variable %s", ErrValidation, c.Variable())
		}
		for _, e := range c.Evidence() {
			if _, ok := byName[e]; !ok {
				return nil, fmt.Errorf("%w: CPD %s references unknown evidence %s", ErrValidation, c.Variable(), e)
			}
		}
	}

	// 5) (c) + (d) per variable
	for _, v := range vars {
		if err = checkCPD(graph, v, owned[v.Name], byName); err != nil {
			return nil, err
		}
	}

	return &Model{
		graph:     graph,
		cpds:      owned,
		variables: byName,
		order:     order,
		validated: true,
	}, nil
}

// checkCPD applies rules (c) and (d) to the CPD owned by v.
func checkCPD(g *core.Graph, v core.Variable, c *cpd.Tabular, byName map[string]core.Variable) error {
	parents, err := g.ParentsOf(v.Name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	evidence := c.Evidence()
	sorted := append([]string(nil), evidence...)
	sort.Strings(sorted)
	if !equalStrings(sorted, parents) {
		return fmt.Errorf("%w: CPD %s declares evidence {%s} but graph parents are {%s}",
			ErrValidation, v.Name, strings.Join(sorted, ", "), strings.Join(parents, ", "))
	}
	if c.Card() != v.Card {
		return fmt.Errorf("%w: CPD %s has cardinality %d, variable declares %d",
			ErrValidation, v.Name, c.Card(), v.Card)
	}
	for i, k := range c.EvidenceCard() {
		if want := byName[evidence[i]].Card; k != want {
			return fmt.Errorf("%w: CPD %s gives evidence %s cardinality %d, variable declares %d",
				ErrValidation, v.Name, evidence[i], k, want)
		}
	}
	if err = c.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Build constructs a structure from variables and edges, collects cpds, and
// runs Check. Structural failures (duplicate variables, unknown endpoints,
// cycles) are wrapped in ErrValidation and keep their core sentinel, so
// errors.Is(err, core.ErrCycle) holds for a cyclic edge list.
func Build(variables []core.Variable, edges []core.Edge, cpds []*cpd.Tabular) (*Model, error) {
	g := core.NewGraph()
	for _, v := range variables {
		var opts []core.VariableOption
		if len(v.States) > 0 {
			opts = append(opts, core.WithStates(v.States...))
		}
		if err := g.AddVariable(v.Name, v.Card, opts...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}
	store, err := cpd.NewStore(cpds...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return Check(g, store)
}
