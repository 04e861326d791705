package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgo/dfs"
)

// TestTopologicalSort_DAG checks the exact order and the edge property.
func TestTopologicalSort_DAG(t *testing.T) {
	edges := [][2]int{{5, 2}, {5, 0}, {4, 0}, {4, 1}, {2, 3}, {3, 1}}
	g := buildGraph(t, 6, edges)

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 2, 3, 1, 0}, order)

	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range edges {
		assert.Less(t, pos[e[0]], pos[e[1]], "edge %d→%d", e[0], e[1])
	}
}

// TestTopologicalSort_Cycle returns ErrCycleDetected.
func TestTopologicalSort_Cycle(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 1}})

	order, err := g.TopologicalSort()
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Nil(t, order)
}

// TestTopologicalSort_Undirected is rejected.
func TestTopologicalSort_Undirected(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}}, dfs.WithUndirected())

	_, err := g.TopologicalSort()
	assert.ErrorIs(t, err, dfs.ErrUndirected)
}

// TestTopologicalSort_Isolated covers vertices without edges.
func TestTopologicalSort_Isolated(t *testing.T) {
	g := buildGraph(t, 3, nil)

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, order)
}
