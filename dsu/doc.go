// Package dsu provides a disjoint-set union (union-find) structure over the
// integer elements 0..n-1.
//
// What:
//
//   - Find with full path compression: every vertex on the walk to the root is
//     re-pointed directly at the root.
//   - Union by size: the root of the smaller set is attached under the root of
//     the larger one, keeping trees shallow.
//   - Size, Same, Count and Sets queries for set bookkeeping.
//
// Complexity:
//
//   - Find / Union / Same / Size: amortised O(α(N)) (inverse Ackermann)
//   - Sets:                      O(N)
//   - Memory:                    O(N)
//
// Errors:
//
//   - ErrInvalidSize  negative element count
//   - ErrOutOfRange   element outside [0, n-1]
//
// A DSU is not safe for concurrent use: Find mutates parent links.
package dsu
