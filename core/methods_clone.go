// File: methods_clone.go
// Role: Cloning graph instances and structural snapshots.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, variables, and edges.
// The clone shares no mutable state with g.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVar.RLock()
	defer g.muVar.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	// Copy configuration via options
	var opts []GraphOption
	if g.lazyAcyclic {
		opts = append(opts, WithoutCycleCheck())
	}
	clone := NewGraph(opts...)

	// Copy variables and index buckets
	for name, v := range g.variables {
		cp := v.Clone()
		clone.variables[name] = &cp
		clone.parents[name] = make(map[string]bool, len(g.parents[name]))
		clone.children[name] = make(map[string]bool, len(g.children[name]))
	}
	// Copy edges
	for from, kids := range g.children {
		for to := range kids {
			clone.children[from][to] = true
			clone.parents[to][from] = true
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// GraphStats is a read-only snapshot of structural sizes.
type GraphStats struct {
	Variables  int // number of variables
	Edges      int // number of parent→child edges
	Roots      int // variables without parents
	Leaves     int // variables without children
	MaxParents int // largest in-degree
	// Columns is the total number of CPD columns the structure implies:
	// Σ_v Π_{p∈parents(v)} card(p).
	Columns int
}

// Stats produces a deterministic snapshot of structural sizes.
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.muVar.RLock()
	defer g.muVar.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	s := &GraphStats{Variables: len(g.variables), Edges: g.edgeCount}
	for name := range g.variables {
		ps := g.parents[name]
		if len(ps) == 0 {
			s.Roots++
		}
		if len(g.children[name]) == 0 {
			s.Leaves++
		}
		if len(ps) > s.MaxParents {
			s.MaxParents = len(ps)
		}
		cols := 1
		for p := range ps {
			cols *= g.variables[p].Card
		}
		s.Columns += cols
	}

	return s
}
