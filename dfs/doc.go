// Package dfs implements depth-first algorithms on a core.Graph: topological
// sort and directed cycle enumeration.
//
// What:
//
//   - TopologicalSort: computes a linear ordering of variables in a DAG so
//     that every parent precedes each of its children. Used once per
//     validated model to fix the ancestral sampling order.
//   - DetectCycles: enumerates every simple directed cycle with Johnson's
//     circuit search, each reported once from its smallest variable name,
//     for diagnostics.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - TopoOption: functional options for TopologicalSort (WithCancelContext)
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O((V+E)·(C+1)), Memory O(V+E+C·L)
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrCycleDetected   cycle discovered (also matches core.ErrCycle)
//   - ErrNeighborFetch   child lookup failed
//   - context.Canceled   sort canceled via context
package dfs
