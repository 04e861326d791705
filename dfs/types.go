// Package dfs defines vertex states, options and sentinel errors shared by
// cycle finding and topological sort.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrInvalidSize is returned by NewGraph for a negative vertex count.
	ErrInvalidSize = errors.New("dfs: vertex count must be non-negative")

	// ErrVertexNotFound indicates that an edge endpoint lies outside [0, n-1].
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirected indicates an operation that requires a directed graph.
	ErrUndirected = errors.New("dfs: operation requires a directed graph")
)

// Option configures a Graph. Use with NewGraph(n, opts...).
type Option func(*Options)

// Options holds configurable parameters of a Graph and its traversals.
type Options struct {
	// Undirected, if true, makes AddEdge store both directions and makes
	// FindCycle ignore the edge back to the DFS parent.
	Undirected bool

	// Ctx allows cancellation; defaults to context.Background().
	// It is checked once per discovered vertex.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex turns Gray.
	// Returning an error aborts the traversal with that error.
	OnVisit func(v int) error
}

// DefaultOptions returns Options with:
//   - Directed edges
//   - Background context
//   - No visit hook
func DefaultOptions() Options {
	return Options{
		Undirected: false,
		Ctx:        context.Background(),
		OnVisit:    nil,
	}
}

// WithUndirected returns an Option that makes the graph undirected.
func WithUndirected() Option {
	return func(o *Options) {
		o.Undirected = true
	}
}

// WithContext returns an Option that sets the traversal Context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
