// Package segtree implements a generic point-update segment tree answering
// associative range-aggregate queries (sum, min, max, gcd, xor, ...) in
// logarithmic time.
//
// What:
//
//   - Tree[T]: a balanced binary decomposition over the index range [0, N-1].
//     Each leaf holds one array element; each internal node covering [tl, tr]
//     stores Merge(left, right) of its two halves, split at tm = tl + (tr-tl)/2.
//   - Monoid[T]: the aggregation policy, an Identity value plus an associative
//     Merge function. Merge need not be commutative: partial results are
//     always combined left-to-right.
//   - Ready-made monoids: Sum, Product, Min, Max, Xor, GCD.
//
// Why:
//   - Answer "aggregate of a[l..r]" questions while the array keeps changing
//   - Replace an O(N) rescan per query with an O(log N) walk over cached
//     canonical node ranges
//   - One traversal engine for any associative operator, chosen per instance
//
// Empty ranges:
//
//	Query(l, r) with l > r is a valid empty-range query and returns the
//	monoid Identity. WithStrictRanges turns this into ErrInvalidRange.
//
// Complexity:
//
//   - New / Rebuild: Time O(N),     Memory O(4N)
//   - Query:         Time O(log N), Memory O(log N) recursion
//   - Update:        Time O(log N), Memory O(log N) recursion
//   - All:           Time O(1)
//
// Errors:
//
//   - ErrEmptyInput    the input array has no elements
//   - ErrNilMerge      the monoid carries no Merge function
//   - ErrOutOfRange    an index lies outside [0, N-1]
//   - ErrInvalidRange  l > r under WithStrictRanges
//   - ErrInvalidValue  a value was rejected by WithValueCheck
//
// Concurrency:
//
//	A Tree is not safe for concurrent use. Queries read ancestor aggregates
//	that Update rewrites, so callers must serialise a single writer with
//	any readers.
//
// Functions:
//
//   - New[T](values []T, m Monoid[T], opts ...Option[T]) (*Tree[T], error)
//   - (*Tree[T]).Query(l, r int) (T, error)
//   - (*Tree[T]).Update(pos int, value T) error
//   - (*Tree[T]).At, All, Len, Values, Rebuild
//   - DefaultOptions[T](), WithStrictRanges[T](), WithValueCheck[T]()
package segtree
