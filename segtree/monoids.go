// SPDX-License-Identifier: MIT

package segtree

import "cmp"

// Integer is the set of built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is the set of built-in integer and floating-point types.
type Number interface {
	Integer | ~float32 | ~float64
}

// Sum returns the additive monoid (Identity 0).
func Sum[T Number]() Monoid[T] {
	return Monoid[T]{
		Identity: 0,
		Merge:    func(a, b T) T { return a + b },
	}
}

// Product returns the multiplicative monoid (Identity 1).
func Product[T Number]() Monoid[T] {
	return Monoid[T]{
		Identity: 1,
		Merge:    func(a, b T) T { return a * b },
	}
}

// Min returns the minimum monoid. sentinel must be greater than or equal to
// every value the tree will hold (e.g. math.MaxInt64 or +Inf); it is the
// answer for an empty range.
func Min[T cmp.Ordered](sentinel T) Monoid[T] {
	return Monoid[T]{
		Identity: sentinel,
		Merge:    func(a, b T) T { return min(a, b) },
	}
}

// Max returns the maximum monoid. sentinel must be less than or equal to
// every value the tree will hold.
func Max[T cmp.Ordered](sentinel T) Monoid[T] {
	return Monoid[T]{
		Identity: sentinel,
		Merge:    func(a, b T) T { return max(a, b) },
	}
}

// Xor returns the bitwise exclusive-or monoid (Identity 0).
func Xor[T Integer]() Monoid[T] {
	return Monoid[T]{
		Identity: 0,
		Merge:    func(a, b T) T { return a ^ b },
	}
}

// GCD returns the greatest-common-divisor monoid (Identity 0).
// Merged results are non-negative (gcd(-4, 6) == 2), so the identity law
// only holds for trees holding non-negative values.
func GCD[T Integer]() Monoid[T] {
	return Monoid[T]{
		Identity: 0,
		Merge:    gcd[T],
	}
}

// gcd computes the Euclidean gcd of |a| and |b|.
func gcd[T Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
