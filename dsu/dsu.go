// SPDX-License-Identifier: MIT

package dsu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned by New for a negative element count.
	ErrInvalidSize = errors.New("dsu: size must be non-negative")

	// ErrOutOfRange indicates an element outside [0, n-1].
	ErrOutOfRange = errors.New("dsu: element out of range")
)

// DSU maintains a partition of 0..n-1 into disjoint sets.
type DSU struct {
	parent []int // parent[v] == v iff v is a root
	size   []int // size[r] is valid only for roots
	count  int   // number of disjoint sets
}

// New returns a DSU of n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) (*DSU, error) {
	if n < 0 {
		return nil, fmt.Errorf("dsu: New(%d): %w", n, ErrInvalidSize)
	}
	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Len returns the number of elements.
func (d *DSU) Len() int {
	return len(d.parent)
}

// Count returns the number of disjoint sets.
func (d *DSU) Count() int {
	return d.count
}

// Find returns the representative of the set containing v.
func (d *DSU) Find(v int) (int, error) {
	if err := d.validate("Find", v); err != nil {
		return -1, err
	}

	return d.find(v), nil
}

// Union merges the sets containing a and b. It reports whether two distinct
// sets were merged; false means a and b were already together.
func (d *DSU) Union(a, b int) (bool, error) {
	if err := d.validate("Union", a, b); err != nil {
		return false, err
	}
	a, b = d.find(a), d.find(b)
	if a == b {
		return false, nil
	}
	// attach the smaller tree under the larger root
	if d.size[a] < d.size[b] {
		a, b = b, a
	}
	d.parent[b] = a
	d.size[a] += d.size[b]
	d.count--

	return true, nil
}

// Same reports whether a and b belong to the same set.
func (d *DSU) Same(a, b int) (bool, error) {
	if err := d.validate("Same", a, b); err != nil {
		return false, err
	}

	return d.find(a) == d.find(b), nil
}

// Size returns the number of elements in the set containing v.
func (d *DSU) Size(v int) (int, error) {
	if err := d.validate("Size", v); err != nil {
		return 0, err
	}

	return d.size[d.find(v)], nil
}

// Sets returns every set as a sorted slice of its elements. Sets are ordered
// by their smallest element.
func (d *DSU) Sets() [][]int {
	byRoot := make(map[int]int, d.count) // root -> index into out
	out := make([][]int, 0, d.count)
	// ascending v keeps each set sorted and creates sets in order of smallest member
	for v := range d.parent {
		r := d.find(v)
		idx, ok := byRoot[r]
		if !ok {
			idx = len(out)
			byRoot[r] = idx
			out = append(out, make([]int, 0, d.size[r]))
		}
		out[idx] = append(out[idx], v)
	}

	return out
}

// find walks to the root, then re-points the whole path at it.
func (d *DSU) find(v int) int {
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for v != root {
		v, d.parent[v] = d.parent[v], root
	}

	return root
}

// validate checks that every element lies in [0, n-1].
func (d *DSU) validate(op string, vs ...int) error {
	for _, v := range vs {
		if v < 0 || v >= len(d.parent) {
			return fmt.Errorf("dsu: %s(%d) with n=%d: %w", op, v, len(d.parent), ErrOutOfRange)
		}
	}

	return nil
}
