// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"slices"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	g     *Graph
	color []int
	order []int // post-order
}

// TopologicalSort returns an ordering of all vertices in which every edge
// u→v has u before v. It requires a directed graph.
//
// Errors:
//   - ErrUndirected    : g was built WithUndirected.
//   - ErrCycleDetected : g has a directed cycle (use FindCycle for a witness).
//
// Complexity: O(V + E).
func (g *Graph) TopologicalSort() ([]int, error) {
	if g.opts.Undirected {
		return nil, fmt.Errorf("dfs: TopologicalSort: %w", ErrUndirected)
	}
	t := &topoSorter{
		g:     g,
		color: make([]int, g.n),
		order: make([]int, 0, g.n),
	}
	for v := 0; v < g.n; v++ {
		if t.color[v] == White {
			if err := t.visit(v); err != nil {
				return nil, fmt.Errorf("dfs: TopologicalSort: %w", err)
			}
		}
	}
	slices.Reverse(t.order)

	return t.order, nil
}

// visit appends v to the post-order after all of its descendants.
func (t *topoSorter) visit(v int) error {
	if err := t.g.opts.Ctx.Err(); err != nil {
		return err
	}
	t.color[v] = Gray
	if t.g.opts.OnVisit != nil {
		if err := t.g.opts.OnVisit(v); err != nil {
			return err
		}
	}
	for _, u := range t.g.adj[v] {
		switch t.color[u] {
		case White:
			if err := t.visit(u); err != nil {
				return err
			}
		case Gray:
			return fmt.Errorf("edge %d→%d: %w", v, u, ErrCycleDetected)
		}
	}
	t.color[v] = Black
	t.order = append(t.order, v)

	return nil
}
