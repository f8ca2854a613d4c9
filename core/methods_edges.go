// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/ParentsOf/ChildrenOf,
//       plus the reachability probe that keeps the structure acyclic.
// Determinism:
//   - Edges() is sorted by (From, To); ParentsOf/ChildrenOf are sorted by name.
// Concurrency:
//   - Mutations under muEdge write lock (endpoint lookup under muVar read lock first).
//   - Read queries under muEdge read lock.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// AddEdge records the dependency parent → child.
//
// Steps:
//  1. Validate names; both endpoints must already be declared.
//  2. Reject self-loops with ErrCycle.
//  3. Lock muEdge, reject duplicates with ErrDuplicateEdge.
//  4. Unless WithoutCycleCheck was given, probe whether child already reaches
//     parent; if so the new edge would close a cycle ⇒ ErrCycle (graph unchanged).
//  5. Link both indexes.
//
// Complexity: O(V+E) for the probe, O(1) otherwise.
func (g *Graph) AddEdge(parent, child string) error {
	// 1) Input validation
	if parent == "" || child == "" {
		return ErrEmptyName
	}
	g.muVar.RLock()
	_, okP := g.variables[parent]
	_, okC := g.variables[child]
	g.muVar.RUnlock()
	if !okP {
		return fmt.Errorf("%w: parent %q", ErrVariableNotFound, parent)
	}
	if !okC {
		return fmt.Errorf("%w: child %q", ErrVariableNotFound, child)
	}
	// 2) Self-loop is the shortest possible cycle
	if parent == child {
		return fmt.Errorf("%w: %s → %s", ErrCycle, parent, child)
	}

	// 3) Insert under lock
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	if g.children[parent][child] {
		return fmt.Errorf("%w: %s → %s", ErrDuplicateEdge, parent, child)
	}

	// 4) Reachability probe: child ⇝ parent means parent → child closes a loop
	if !g.lazyAcyclic {
		if path := g.pathLocked(child, parent); path != nil {
			path = append(path, child)
			return fmt.Errorf("%w: %s", ErrCycle, strings.Join(path, " → "))
		}
	}

	// 5) Link adjacency in both directions
	g.children[parent][child] = true
	g.parents[child][parent] = true
	g.edgeCount++

	return nil
}

// pathLocked returns a directed path from → … → to following child links,
// or nil if to is unreachable. Caller must hold muEdge.
// Breadth-first, so the reported path is a shortest one.
func (g *Graph) pathLocked(from, to string) []string {
	prev := map[string]string{from: ""}
	queue := []string{from}
	var cur string
	for len(queue) > 0 {
		cur, queue = queue[0], queue[1:]
		if cur == to {
			// Walk predecessor links back to the source
			var path []string
			for n := to; n != ""; n = prev[n] {
				path = append(path, n)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}

			return path
		}
		for _, next := range sortedKeys(g.children[cur]) {
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = cur
			queue = append(queue, next)
		}
	}

	return nil
}

// Reaches reports whether a directed path from → … → to exists (from == to ⇒ true).
// Complexity: O(V+E).
func (g *Graph) Reaches(from, to string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return g.pathLocked(from, to) != nil
}

// HasEdge reports whether the edge parent → child exists.
// Complexity: O(1).
func (g *Graph) HasEdge(parent, child string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return g.children[parent][child]
}

// ParentsOf returns the parents of v, sorted by name.
// The result is a set; callers must not rely on the order for semantics.
// Complexity: O(p log p) for p parents.
func (g *Graph) ParentsOf(v string) ([]string, error) {
	if !g.HasVariable(v) {
		return nil, fmt.Errorf("%w: %q", ErrVariableNotFound, v)
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return sortedKeys(g.parents[v]), nil
}

// ChildrenOf returns the children of v, sorted by name.
// Complexity: O(c log c) for c children.
func (g *Graph) ChildrenOf(v string) ([]string, error) {
	if !g.HasVariable(v) {
		return nil, fmt.Errorf("%w: %q", ErrVariableNotFound, v)
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return sortedKeys(g.children[v]), nil
}

// Roots returns the variables without parents, sorted by name.
// Complexity: O(V log V).
func (g *Graph) Roots() []string {
	names := g.VariableNames()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	roots := make([]string, 0, len(names))
	for _, n := range names {
		if len(g.parents[n]) == 0 {
			roots = append(roots, n)
		}
	}

	return roots
}

// Edges returns all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for from, kids := range g.children {
		for to := range kids {
			out = append(out, Edge{From: from, To: to})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return g.edgeCount
}

// sortedKeys returns the keys of a set in ascending order.
func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
