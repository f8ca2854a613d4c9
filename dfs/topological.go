// Package dfs provides depth-first algorithms on the directed structure of a
// Bayesian network, including topological sort.
//
// TopologicalSort computes a linear ordering of variables such that for
// every edge parent→child, parent appears before child.
// If the graph contains a cycle, an error matching both ErrCycleDetected and
// core.ErrCycle is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each variable and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"fmt"
	"strings"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph    // the graph being sorted
	opts  topoOptions    // traversal options (cancellation)
	state map[string]int // visitation state: 0=White,1=Gray,2=Black
	stack []string       // current Gray path, for cycle reporting
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all variables in g.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns an error wrapping ErrCycleDetected and core.ErrCycle
// whose message spells out the offending path.
// If child lookup fails, returns ErrNeighborFetch.
// You may pass WithCancelContext(ctx) to enable cancellation.
//
// The order is deterministic for a given graph: the DFS starts from variables
// in name order and explores children in name order, and the result is the
// reversed post-order. Independent variables therefore do not come out in
// name order (A and B without edges yield [B A]).
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	names := g.VariableNames() // sorted list of variable names
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(names)), // all variables start as White (0)
		order: make([]string, 0, len(names)),    // capacity hint for post-order
	}
	// 4. Drive DFS from every unvisited variable
	for _, v := range names {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting back-edges.
func (t *topoSorter) visit(id string) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Cycle detection: if already Gray, we found a back-edge
	if t.state[id] == Gray {
		idx := IndexOf(t.stack, id)
		loop := append(append([]string(nil), t.stack[idx:]...), id)
		return fmt.Errorf("%w: %w: %s", ErrCycleDetected, core.ErrCycle, strings.Join(loop, " → "))
	}
	// 3. Already fully processed (Black)? then skip
	if t.state[id] == Black {
		return nil
	}
	// 4. Mark as in-progress (Gray)
	t.state[id] = Gray
	t.stack = append(t.stack, id)

	// 5. Retrieve children
	children, err := t.graph.ChildrenOf(id)
	if err != nil {
		// Wrap in sentinel ErrNeighborFetch so callers can check via errors.Is
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	// 6. Recurse into each child
	for _, c := range children {
		if err = t.visit(c); err != nil {
			return err
		}
	}

	// 7. Mark as fully explored (Black) and pop the path
	t.state[id] = Black
	t.stack = t.stack[:len(t.stack)-1]
	// 8. Record in post-order list
	t.order = append(t.order, id)

	return nil
}
