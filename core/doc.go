// Package core provides the in-memory structure of a discrete Bayesian
// network: categorical variables joined by directed parent → child edges.
//
// The Graph G = (V,E) guarantees:
//
//   - Unique, non-empty variable names with positive cardinality.
//   - Optional per-variable state labels (WithStates).
//   - No self-loops and no duplicate edges.
//   - Acyclicity by construction: AddEdge probes reachability and returns
//     ErrCycle instead of closing a loop. WithoutCycleCheck defers the check
//     to dfs.TopologicalSort for bulk loading.
//   - Deterministic iteration: Variables(), VariableNames(), Edges(),
//     ParentsOf() and ChildrenOf() all return sorted results.
//   - Separate sync.RWMutex for variables (muVar) and edges (muEdge).
//
// Core Methods:
//
//	// Variable lifecycle
//	AddVariable(name string, card int, opts ...VariableOption) error // O(1)
//	HasVariable(name string) bool                                    // O(1)
//	Variable(name string) (Variable, error)                          // O(1)
//	Card(name string) (int, error)                                   // O(1)
//
//	// Edge lifecycle
//	AddEdge(parent, child string) error       // O(V+E) with cycle probe
//	HasEdge(parent, child string) bool        // O(1)
//	ParentsOf(v string) ([]string, error)     // O(p log p)
//	ChildrenOf(v string) ([]string, error)    // O(c log c)
//	Reaches(from, to string) bool             // O(V+E)
//
//	// Snapshots
//	Clone() *Graph                            // O(V+E)
//	Stats() *GraphStats                       // O(V+E)
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddVariable("Smoking", 2)
//	_ = g.AddVariable("LungCancer", 2)
//	_ = g.AddEdge("Smoking", "LungCancer")
//	parents, _ := g.ParentsOf("LungCancer") // ["Smoking"]
package core
