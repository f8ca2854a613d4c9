// Package core defines the central Graph, Variable, and Edge types of a
// discrete Bayesian network structure, and provides thread-safe primitives
// for building, querying, and cloning it.
//
// All core APIs use separate sync.RWMutex locks internally (muVar for
// variables, muEdge for edges and the parent/child indexes), so graphs can be
// assembled from several goroutines with minimal contention.
//
// This file declares Variable, Edge, Graph, GraphOption, VariableOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyName         - variable name is the empty string.
//	ErrBadCardinality    - cardinality is not a positive integer.
//	ErrStateNames        - state labels do not match the cardinality.
//	ErrDuplicateVariable - a variable with the same name already exists.
//	ErrVariableNotFound  - requested variable does not exist.
//	ErrDuplicateEdge     - the parent→child edge already exists.
//	ErrCycle             - the edge set is (or would become) cyclic.
package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyName indicates that a Variable was declared with an empty name.
	ErrEmptyName = errors.New("core: variable name is empty")

	// ErrBadCardinality indicates a cardinality that is zero or negative.
	ErrBadCardinality = errors.New("core: cardinality must be > 0")

	// ErrStateNames indicates state labels whose count differs from the cardinality,
	// or that repeat a label.
	ErrStateNames = errors.New("core: state names do not match cardinality")

	// ErrDuplicateVariable indicates a second declaration of an existing variable.
	ErrDuplicateVariable = errors.New("core: duplicate variable")

	// ErrVariableNotFound indicates an operation referenced a non-existent variable.
	ErrVariableNotFound = errors.New("core: variable not found")

	// ErrDuplicateEdge indicates an attempt to add a parent→child edge twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrCycle indicates that the edge set contains a directed cycle,
	// or that adding an edge would create one (self-loops included).
	ErrCycle = errors.New("core: directed cycle")
)

// Variable is a categorical random variable: a node of the network.
//
// Name uniquely identifies the Variable within its Graph.
// Card is the number of discrete states, indexed 0..Card-1.
// States optionally labels each state; when set, len(States) == Card.
type Variable struct {
	// Name is the unique identifier for this Variable.
	Name string

	// Card is the number of discrete states (cardinality).
	Card int

	// States holds optional human-readable state labels.
	States []string
}

// StateName returns the label of state s, or its decimal index when no labels exist.
func (v Variable) StateName(s int) string {
	if s >= 0 && s < len(v.States) {
		return v.States[s]
	}

	return strconv.Itoa(s)
}

// Clone returns a copy of v whose States slice is not shared with v.
func (v Variable) Clone() Variable {
	out := Variable{Name: v.Name, Card: v.Card}
	if len(v.States) > 0 {
		out.States = append([]string(nil), v.States...)
	}

	return out
}

// Edge is a directed dependency From (parent) → To (child).
type Edge struct {
	// From is the parent variable name.
	From string

	// To is the child variable name.
	To string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithoutCycleCheck disables the eager reachability probe in AddEdge.
// Cycles are then only reported by a later topological sort, which makes
// bulk loading of large structures O(V+E) instead of O(E·(V+E)).
func WithoutCycleCheck() GraphOption {
	return func(g *Graph) { g.lazyAcyclic = true }
}

// VariableOption configures properties of an individual Variable when added.
type VariableOption func(*Variable)

// WithStates attaches state labels to the Variable being added.
func WithStates(names ...string) VariableOption {
	return func(v *Variable) { v.States = append([]string(nil), names...) }
}

// Graph is the directed structure of a Bayesian network.
//
// muVar protects the variables map; muEdge protects the edge catalog and the
// parents/children indexes. Lock order is always muVar -> muEdge.
type Graph struct {
	muVar  sync.RWMutex // guards variables
	muEdge sync.RWMutex // guards edges, parents, children

	// Configuration flags
	lazyAcyclic bool // skip reachability probe in AddEdge

	// Storage
	variables map[string]*Variable       // name → Variable
	parents   map[string]map[string]bool // child → set of parents
	children  map[string]map[string]bool // parent → set of children
	edgeCount int                        // number of stored edges
}

// NewGraph creates an empty Graph with the given options.
// By default AddEdge rejects any edge that would close a directed cycle.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		variables: make(map[string]*Variable),
		parents:   make(map[string]map[string]bool),
		children:  make(map[string]map[string]bool),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
