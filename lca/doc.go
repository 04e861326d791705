// Package lca answers lowest-common-ancestor queries on a rooted tree using
// binary lifting.
//
// What:
//
//	New validates an undirected edge list as a tree over vertices 0..n-1,
//	roots it, and precomputes depth[v] and up[v][i], the 2^i-th ancestor of v
//	(the root is its own ancestor at every level). LCA(u, v) first lifts the
//	deeper vertex to the other's depth, then lifts both in lockstep while
//	their ancestors differ; the answer is the parent of the final pair.
//
// Complexity:
//
//   - New:                     Time O(N log N), Memory O(N log N)
//   - LCA / KthAncestor / Distance: Time O(log N)
//   - Depth / Parent:          Time O(1)
//
// Errors:
//
//   - ErrInvalidSize      n <= 0
//   - ErrOutOfRange       vertex or root outside [0, n-1]
//   - ErrNotTree          edge list is not a spanning tree (wrong edge count,
//     self-loop, or disconnected)
//   - ErrInvalidArgument  negative k in KthAncestor
//   - ErrNoAncestor       k exceeds the depth of v
//
// An LCA is immutable after New and may be queried from several goroutines.
package lca
