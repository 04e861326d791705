// Package lvalgo is a small set of classic in-memory algorithms, each in its
// own package and usable on its own.
//
// 🚀 What is inside?
//
//	segtree/ - generic point-update segment tree: range sum, min, max, gcd,
//	           xor or any associative Monoid in O(log N)
//	dsu/     - disjoint-set union with path compression and union by size
//	lca/     - lowest common ancestor by binary lifting
//	dfs/     - three-color DFS cycle finding and topological sort
//
// ✨ Conventions shared by every package:
//
//   - Indices are 0-based ints; out-of-range input returns a sentinel error
//     (matched with errors.Is), never a panic
//   - Optional behavior is configured with functional options (WithX)
//   - No global state and no built-in locking; serialise writers yourself
//
// Quick example:
//
//	st, _ := segtree.New([]int{1, 2, 3, 4, 5}, segtree.Sum[int]())
//	s, _ := st.Query(1, 3) // 9
//	_ = st.Update(2, 10)
//	s, _ = st.Query(1, 3)  // 16
//
//	go get github.com/katalvlaran/lvalgo
package lvalgo
