// SPDX-License-Identifier: MIT

// Package segtree implements the recursive build, query and point-update
// engine over an implicit 1-based binary tree stored in a 4N slice.
// Node v covers [tl, tr]; its children 2v and 2v+1 cover [tl, tm] and
// [tm+1, tr] with tm = tl + (tr-tl)/2.
package segtree

import "fmt"

// Tree maintains an array of N values under point updates and answers
// range-aggregate queries according to its Monoid.
type Tree[T any] struct {
	n    int       // number of array elements
	t    []T       // 4n aggregate slots, root at index 1
	m    Monoid[T] // aggregation policy
	opts Options[T]
}

// New builds a Tree over values using monoid m.
// The values slice is copied into the tree and not retained.
//
// Error Conditions:
//   - ErrEmptyInput   : len(values) == 0.
//   - ErrNilMerge     : m.Merge == nil.
//   - ErrInvalidValue : a value was rejected by WithValueCheck.
//
// Complexity: O(N) time, O(4N) memory.
func New[T any](values []T, m Monoid[T], opts ...Option[T]) (*Tree[T], error) {
	if m.Merge == nil {
		return nil, ErrNilMerge
	}

	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	st := &Tree[T]{m: m, opts: o}
	if err := st.Rebuild(values); err != nil {
		return nil, err
	}

	return st, nil
}

// Rebuild replaces the contents of the tree with values; N may change.
// Validation matches New. On error the tree is left unchanged.
func (st *Tree[T]) Rebuild(values []T) error {
	if len(values) == 0 {
		return ErrEmptyInput
	}
	for i, v := range values {
		if err := st.check(v); err != nil {
			return fmt.Errorf("segtree: Rebuild: values[%d]: %w", i, err)
		}
	}

	st.n = len(values)
	st.t = make([]T, 4*st.n)
	st.build(values, 1, 0, st.n-1)

	return nil
}

// Len returns the number of array elements N.
func (st *Tree[T]) Len() int {
	return st.n
}

// All returns the aggregate of the whole array in O(1).
func (st *Tree[T]) All() T {
	return st.t[1]
}

// Query returns Merge folded left-to-right over the elements in [l, r].
//
// Both bounds must lie in [0, N-1]. A query with l > r is an empty range and
// returns the monoid Identity, unless WithStrictRanges is set, in which case
// it returns ErrInvalidRange.
//
// Complexity: O(log N).
func (st *Tree[T]) Query(l, r int) (T, error) {
	if l < 0 || l >= st.n || r < 0 || r >= st.n {
		return st.m.Identity, fmt.Errorf("segtree: Query(%d, %d) with N=%d: %w", l, r, st.n, ErrOutOfRange)
	}
	if l > r {
		if st.opts.StrictRanges {
			return st.m.Identity, fmt.Errorf("segtree: Query(%d, %d): %w", l, r, ErrInvalidRange)
		}

		return st.m.Identity, nil
	}

	return st.query(1, 0, st.n-1, l, r), nil
}

// At returns the current value at pos.
func (st *Tree[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= st.n {
		var zero T
		return zero, fmt.Errorf("segtree: At(%d) with N=%d: %w", pos, st.n, ErrOutOfRange)
	}

	v, tl, tr := 1, 0, st.n-1
	for tl != tr {
		tm := tl + (tr-tl)/2
		if pos <= tm {
			v, tr = v*2, tm
		} else {
			v, tl = v*2+1, tm+1
		}
	}

	return st.t[v], nil
}

// Update sets the element at pos to value and repairs every ancestor
// aggregate. On error the tree is left unchanged.
//
// Complexity: O(log N).
func (st *Tree[T]) Update(pos int, value T) error {
	if pos < 0 || pos >= st.n {
		return fmt.Errorf("segtree: Update(%d) with N=%d: %w", pos, st.n, ErrOutOfRange)
	}
	if err := st.check(value); err != nil {
		return fmt.Errorf("segtree: Update(%d): %w", pos, err)
	}
	st.update(1, 0, st.n-1, pos, value)

	return nil
}

// Values returns a fresh copy of the current array, left to right.
func (st *Tree[T]) Values() []T {
	out := make([]T, 0, st.n)
	st.collect(1, 0, st.n-1, &out)

	return out
}

// build fills node v covering [tl, tr] from a.
func (st *Tree[T]) build(a []T, v, tl, tr int) {
	if tl == tr {
		st.t[v] = a[tl]
		return
	}
	tm := tl + (tr-tl)/2 // no overflow for large tr
	st.build(a, v*2, tl, tm)
	st.build(a, v*2+1, tm+1, tr)
	st.t[v] = st.m.Merge(st.t[v*2], st.t[v*2+1])
}

// query folds [l, r] inside node v covering [tl, tr].
// A clamped sub-range with l > r contributes Identity.
func (st *Tree[T]) query(v, tl, tr, l, r int) T {
	if l > r {
		return st.m.Identity
	}
	// canonical node: use the cached aggregate
	if l == tl && r == tr {
		return st.t[v]
	}
	tm := tl + (tr-tl)/2
	left := st.query(v*2, tl, tm, l, min(r, tm))
	right := st.query(v*2+1, tm+1, tr, max(l, tm+1), r)

	return st.m.Merge(left, right)
}

// update writes value at pos below node v and re-merges on the way back up.
func (st *Tree[T]) update(v, tl, tr, pos int, value T) {
	if tl == tr {
		st.t[v] = value
		return
	}
	tm := tl + (tr-tl)/2
	if pos <= tm {
		st.update(v*2, tl, tm, pos, value)
	} else {
		st.update(v*2+1, tm+1, tr, pos, value)
	}
	st.t[v] = st.m.Merge(st.t[v*2], st.t[v*2+1])
}

// collect appends the leaves below node v in index order.
func (st *Tree[T]) collect(v, tl, tr int, out *[]T) {
	if tl == tr {
		*out = append(*out, st.t[v])
		return
	}
	tm := tl + (tr-tl)/2
	st.collect(v*2, tl, tm, out)
	st.collect(v*2+1, tm+1, tr, out)
}

// check applies the configured value check, wrapping rejections in ErrInvalidValue.
func (st *Tree[T]) check(v T) error {
	if st.opts.ValueCheck == nil {
		return nil
	}
	if err := st.opts.ValueCheck(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	return nil
}
