// Package dfs implements depth-first cycle finding and topological sort over
// small integer-indexed graphs, directed or undirected.
//
// What:
//
//   - Graph: n vertices 0..n-1 with adjacency lists. In undirected mode
//     AddEdge(u, v) also stores v→u.
//   - FindCycle: three-color DFS (White, Gray, Black). The first edge that
//     reaches a Gray vertex closes a cycle, which is rebuilt from DFS parent
//     links as [start, ..., end, start]. In undirected mode the edge back to
//     the DFS parent is skipped, so u–v–u is never reported.
//   - TopologicalSort: reverse DFS post-order of a directed graph, or
//     ErrCycleDetected.
//
// Why:
//   - Reject cyclic dependency sets before scheduling them
//   - Find a concrete witness cycle to report to the user
//   - Order a DAG so every edge points forward
//
// Determinism:
//
//	DFS roots are tried in ascending vertex order and neighbors in insertion
//	order, so results are stable for a given sequence of AddEdge calls.
//
// Complexity:
//
//   - FindCycle:       Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrInvalidSize     negative vertex count
//   - ErrVertexNotFound  edge endpoint outside [0, n-1]
//   - ErrCycleDetected   TopologicalSort met a back edge
//   - ErrUndirected      TopologicalSort called on an undirected graph
//   - context.Canceled   traversal cancelled via WithContext
//   - hook errors        propagated from OnVisit
//
// A Graph is not safe for concurrent mutation; concurrent FindCycle calls on
// a graph that is no longer being modified are safe.
package dfs
