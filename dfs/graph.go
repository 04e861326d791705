// SPDX-License-Identifier: MIT

package dfs

import "fmt"

// Graph is a fixed-size graph over vertices 0..n-1 stored as adjacency lists.
type Graph struct {
	n    int
	adj  [][]int
	opts Options
}

// NewGraph returns an edgeless graph with n vertices.
func NewGraph(n int, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("dfs: NewGraph(%d): %w", n, ErrInvalidSize)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph{n: n, adj: make([][]int, n), opts: o}, nil
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return g.n
}

// Undirected reports whether the graph was built WithUndirected.
func (g *Graph) Undirected() bool {
	return g.opts.Undirected
}

// AddEdge adds the edge u→v, and v→u as well in undirected mode.
// Self-loops and parallel edges are kept.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("dfs: AddEdge(%d, %d) with n=%d: %w", u, v, g.n, ErrVertexNotFound)
	}
	g.adj[u] = append(g.adj[u], v)
	if g.opts.Undirected {
		g.adj[v] = append(g.adj[v], u)
	}

	return nil
}

// Neighbors returns a copy of the adjacency list of v.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("dfs: Neighbors(%d) with n=%d: %w", v, g.n, ErrVertexNotFound)
	}

	return append([]int(nil), g.adj[v]...), nil
}
