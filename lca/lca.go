// SPDX-License-Identifier: MIT

package lca

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrInvalidSize is returned when the tree has no vertices.
	ErrInvalidSize = errors.New("lca: tree must have at least one vertex")

	// ErrOutOfRange indicates a vertex outside [0, n-1].
	ErrOutOfRange = errors.New("lca: vertex out of range")

	// ErrNotTree indicates that the edge list does not form a spanning tree.
	ErrNotTree = errors.New("lca: edges do not form a tree")

	// ErrInvalidArgument indicates a malformed query argument.
	ErrInvalidArgument = errors.New("lca: invalid argument")

	// ErrNoAncestor indicates that the requested ancestor lies above the root.
	ErrNoAncestor = errors.New("lca: ancestor does not exist")
)

// LCA holds the binary-lifting tables of a rooted tree.
type LCA struct {
	n     int
	log   int     // number of lifting levels; 2^(log-1) >= max depth
	root  int
	depth []int   // depth[v]: edges from root to v
	up    [][]int // up[v][i]: 2^i-th ancestor of v
}

// New builds the lifting tables for the tree on vertices 0..n-1 described by
// the undirected edges, rooted at root.
//
// Steps:
//  1. Validate n, root and every endpoint; require exactly n-1 non-loop edges.
//  2. Build the adjacency list.
//  3. Iterative DFS from root assigning depth and up[v][0]; up[root][0] = root.
//  4. Fill up[v][i] = up[up[v][i-1]][i-1] in discovery order, so ancestors
//     are always complete first.
//  5. Any vertex left unvisited means the graph is disconnected → ErrNotTree.
//
// Complexity: O(N log N).
func New(n int, edges [][2]int, root int) (*LCA, error) {
	if n <= 0 {
		return nil, fmt.Errorf("lca: New(n=%d): %w", n, ErrInvalidSize)
	}
	if root < 0 || root >= n {
		return nil, fmt.Errorf("lca: New: root %d with n=%d: %w", root, n, ErrOutOfRange)
	}
	if len(edges) != n-1 {
		return nil, fmt.Errorf("lca: New: %d edges for %d vertices: %w", len(edges), n, ErrNotTree)
	}

	adj := make([][]int, n)
	for i, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("lca: New: edges[%d] = (%d, %d): %w", i, u, v, ErrOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("lca: New: edges[%d] is a self-loop on %d: %w", i, u, ErrNotTree)
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	t := &LCA{
		n:     n,
		log:   max(1, bits.Len(uint(n))),
		root:  root,
		depth: make([]int, n),
		up:    make([][]int, n),
	}

	visited := make([]bool, n)
	order := make([]int, 0, n) // discovery order; parents precede children
	stack := []int{root}
	visited[root] = true
	t.up[root] = make([]int, t.log)
	t.up[root][0] = root
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, v)
		for _, c := range adj[v] {
			if visited[c] {
				continue
			}
			visited[c] = true
			t.depth[c] = t.depth[v] + 1
			t.up[c] = make([]int, t.log)
			t.up[c][0] = v
			stack = append(stack, c)
		}
	}
	if len(order) != n {
		return nil, fmt.Errorf("lca: New: reached %d of %d vertices from root %d: %w", len(order), n, root, ErrNotTree)
	}

	for _, v := range order {
		for i := 1; i < t.log; i++ {
			t.up[v][i] = t.up[t.up[v][i-1]][i-1]
		}
	}

	return t, nil
}

// Len returns the number of vertices.
func (t *LCA) Len() int {
	return t.n
}

// Root returns the root vertex.
func (t *LCA) Root() int {
	return t.root
}

// Depth returns the number of edges between the root and v.
func (t *LCA) Depth(v int) (int, error) {
	if err := t.validate("Depth", v); err != nil {
		return 0, err
	}

	return t.depth[v], nil
}

// Parent returns the parent of v; the root is its own parent.
func (t *LCA) Parent(v int) (int, error) {
	if err := t.validate("Parent", v); err != nil {
		return -1, err
	}

	return t.up[v][0], nil
}

// LCA returns the lowest common ancestor of u and v.
func (t *LCA) LCA(u, v int) (int, error) {
	if err := t.validate("LCA", u, v); err != nil {
		return -1, err
	}

	return t.lca(u, v), nil
}

// KthAncestor returns the ancestor k edges above v; k == 0 yields v.
func (t *LCA) KthAncestor(v, k int) (int, error) {
	if err := t.validate("KthAncestor", v); err != nil {
		return -1, err
	}
	if k < 0 {
		return -1, fmt.Errorf("lca: KthAncestor(%d, %d): negative k: %w", v, k, ErrInvalidArgument)
	}
	if k > t.depth[v] {
		return -1, fmt.Errorf("lca: KthAncestor(%d, %d): depth is %d: %w", v, k, t.depth[v], ErrNoAncestor)
	}

	return t.lift(v, k), nil
}

// Distance returns the number of edges on the path between u and v.
func (t *LCA) Distance(u, v int) (int, error) {
	if err := t.validate("Distance", u, v); err != nil {
		return 0, err
	}
	a := t.lca(u, v)

	return t.depth[u] + t.depth[v] - 2*t.depth[a], nil
}

// lca assumes validated vertices.
func (t *LCA) lca(u, v int) int {
	if t.depth[u] < t.depth[v] {
		u, v = v, u
	}
	// 1) bring u up to v's depth
	u = t.lift(u, t.depth[u]-t.depth[v])
	if u == v {
		return u
	}
	// 2) lift both while their ancestors differ
	for i := t.log - 1; i >= 0; i-- {
		if t.up[u][i] != t.up[v][i] {
			u = t.up[u][i]
			v = t.up[v][i]
		}
	}

	return t.up[u][0]
}

// lift climbs k edges from v following the set bits of k; k <= depth[v].
func (t *LCA) lift(v, k int) int {
	for i := 0; k > 0; i++ {
		if k&1 == 1 {
			v = t.up[v][i]
		}
		k >>= 1
	}

	return v
}

// validate checks that every vertex lies in [0, n-1].
func (t *LCA) validate(op string, vs ...int) error {
	for _, v := range vs {
		if v < 0 || v >= t.n {
			return fmt.Errorf("lca: %s(%d) with n=%d: %w", op, v, t.n, ErrOutOfRange)
		}
	}

	return nil
}
