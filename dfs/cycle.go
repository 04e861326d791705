// SPDX-License-Identifier: MIT

// Package dfs finds a single cycle with three-color depth-first search.
// A back edge v→u to a Gray vertex u closes the cycle u → ... → v → u,
// recovered by following DFS parent links from v up to u.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) (recursion stack + color and parent slices)
package dfs

import (
	"fmt"
	"slices"
)

// cycleSearch holds the state of one FindCycle run.
type cycleSearch struct {
	g      *Graph
	color  []int // White, Gray or Black per vertex
	parent []int // DFS parent; -1 for roots
	start  int   // Gray vertex closing the cycle, -1 if none
	end    int   // vertex whose edge reached start
}

// FindCycle returns one cycle of g as a closed walk [start, ..., end, start],
// or nil if g is acyclic. A self-loop on v is reported as [v, v].
//
// In undirected mode every edge back to the DFS parent is skipped, so the
// trivial u–v–u walk is never reported (parallel u–v edges included).
//
// Steps:
//  1. Paint every vertex White; parents -1.
//  2. For v = 0..n-1 still White, visit(v, -1).
//  3. visit paints Gray, then for each neighbor u: skip the parent edge in
//     undirected mode; recurse into White; a Gray u is a back edge → stop.
//  4. Paint Black on exit.
//  5. Rebuild the cycle from end through parent links back to start.
func (g *Graph) FindCycle() ([]int, error) {
	s := &cycleSearch{
		g:      g,
		color:  make([]int, g.n),
		parent: make([]int, g.n),
		start:  -1,
		end:    -1,
	}
	for i := range s.parent {
		s.parent[i] = -1
	}

	for v := 0; v < g.n; v++ {
		if s.color[v] != White {
			continue
		}
		found, err := s.visit(v, -1)
		if err != nil {
			return nil, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		if found {
			break
		}
	}
	if s.start == -1 {
		return nil, nil
	}

	cycle := []int{s.start}
	for v := s.end; v != s.start; v = s.parent[v] {
		cycle = append(cycle, v)
	}
	cycle = append(cycle, s.start)
	slices.Reverse(cycle)

	return cycle, nil
}

// HasCycle reports whether g contains a cycle.
func (g *Graph) HasCycle() (bool, error) {
	cycle, err := g.FindCycle()
	if err != nil {
		return false, err
	}

	return cycle != nil, nil
}

// visit explores v, reached from p, and reports whether a cycle was closed.
func (s *cycleSearch) visit(v, p int) (bool, error) {
	if err := s.g.opts.Ctx.Err(); err != nil {
		return false, err
	}
	s.color[v] = Gray
	s.parent[v] = p
	if s.g.opts.OnVisit != nil {
		if err := s.g.opts.OnVisit(v); err != nil {
			return false, err
		}
	}

	for _, u := range s.g.adj[v] {
		// the edge we arrived by is not a cycle in an undirected graph
		if s.g.opts.Undirected && u == p {
			continue
		}
		switch s.color[u] {
		case White:
			found, err := s.visit(u, v)
			if err != nil || found {
				return found, err
			}
		case Gray:
			s.start, s.end = u, v
			return true, nil
		}
	}
	s.color[v] = Black

	return false, nil
}
