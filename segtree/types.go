// SPDX-License-Identifier: MIT

// Package segtree defines the aggregation policy, options and sentinel errors
// shared by the segment tree operations.
package segtree

import "errors"

var (
	// ErrEmptyInput is returned when a tree is built from an empty array.
	ErrEmptyInput = errors.New("segtree: input array must be non-empty")

	// ErrNilMerge is returned when the supplied Monoid has no Merge function.
	ErrNilMerge = errors.New("segtree: monoid merge function is nil")

	// ErrOutOfRange indicates that a position or range bound lies outside [0, N-1].
	ErrOutOfRange = errors.New("segtree: index out of range")

	// ErrInvalidRange indicates an empty range (l > r) while strict ranges are enabled.
	ErrInvalidRange = errors.New("segtree: invalid range, l > r")

	// ErrInvalidValue wraps a rejection reported by the configured value check.
	ErrInvalidValue = errors.New("segtree: invalid value")
)

// Monoid is the aggregation policy of a Tree.
//
// Merge must be associative: Merge(Merge(a, b), c) == Merge(a, Merge(b, c)).
// It need not be commutative. Identity must satisfy
// Merge(Identity, x) == Merge(x, Identity) == x for every x.
type Monoid[T any] struct {
	// Identity is the aggregate of an empty range.
	Identity T

	// Merge combines the aggregate of a left range with the aggregate of the
	// range immediately to its right.
	Merge func(a, b T) T
}

// Option configures optional behavior of a Tree.
// Use with New(values, monoid, opts...).
type Option[T any] func(*Options[T])

// Options holds configurable parameters of a Tree.
type Options[T any] struct {
	// StrictRanges, if true, makes Query reject l > r with ErrInvalidRange
	// instead of answering the empty range with the monoid Identity.
	StrictRanges bool

	// ValueCheck, if non-nil, is called for every value entering the tree
	// (New, Update, Rebuild). A non-nil result rejects the value.
	ValueCheck func(v T) error
}

// DefaultOptions returns Options with:
//   - Lenient ranges (l > r yields Identity)
//   - No value check
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		StrictRanges: false,
		ValueCheck:   nil,
	}
}

// WithStrictRanges returns an Option that rejects empty ranges (l > r)
// in Query with ErrInvalidRange.
func WithStrictRanges[T any]() Option[T] {
	return func(o *Options[T]) {
		o.StrictRanges = true
	}
}

// WithValueCheck returns an Option that validates every value written into
// the tree. Passing nil removes any previously installed check.
func WithValueCheck[T any](fn func(v T) error) Option[T] {
	return func(o *Options[T]) {
		o.ValueCheck = fn
	}
}
