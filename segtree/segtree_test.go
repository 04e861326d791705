package segtree_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgo/segtree"
)

// foldNaive folds m.Merge left-to-right over a[l..r].
func foldNaive[T any](a []T, m segtree.Monoid[T], l, r int) T {
	acc := m.Identity
	for i := l; i <= r; i++ {
		acc = m.Merge(acc, a[i])
	}

	return acc
}

// TestNew_Errors verifies that invalid inputs are rejected.
func TestNew_Errors(t *testing.T) {
	// empty array
	_, err := segtree.New([]int{}, segtree.Sum[int]())
	assert.ErrorIs(t, err, segtree.ErrEmptyInput)

	_, err = segtree.New[int](nil, segtree.Sum[int]())
	assert.ErrorIs(t, err, segtree.ErrEmptyInput)

	// missing merge
	_, err = segtree.New([]int{1}, segtree.Monoid[int]{Identity: 0})
	assert.ErrorIs(t, err, segtree.ErrNilMerge)

	// value check rejects NaN
	noNaN := segtree.WithValueCheck(func(v float64) error {
		if math.IsNaN(v) {
			return errors.New("NaN")
		}
		return nil
	})
	_, err = segtree.New([]float64{1, math.NaN()}, segtree.Sum[float64](), noNaN)
	assert.ErrorIs(t, err, segtree.ErrInvalidValue)
	assert.Contains(t, err.Error(), "values[1]")
}

// TestSumScenario covers the [1,2,3,4,5] sum example before and after an update.
func TestSumScenario(t *testing.T) {
	st, err := segtree.New([]int64{1, 2, 3, 4, 5}, segtree.Sum[int64]())
	require.NoError(t, err)

	got, err := st.Query(1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got)

	require.NoError(t, st.Update(2, 10))
	got, err = st.Query(1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(16), got)
	assert.Equal(t, []int64{1, 2, 10, 4, 5}, st.Values())
	assert.Equal(t, int64(22), st.All())
}

// TestMinScenario covers the min aggregate with a large sentinel identity.
func TestMinScenario(t *testing.T) {
	st, err := segtree.New([]int{1, 2, 3, 4, 5}, segtree.Min(math.MaxInt))
	require.NoError(t, err)

	got, err := st.Query(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	require.NoError(t, st.Update(0, 100))
	got, err = st.Query(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

// TestSingleElement covers N = 1.
func TestSingleElement(t *testing.T) {
	st, err := segtree.New([]int{7}, segtree.Sum[int]())
	require.NoError(t, err)
	assert.Equal(t, 1, st.Len())

	got, err := st.Query(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	require.NoError(t, st.Update(0, 3))
	got, err = st.Query(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Equal(t, 3, st.All())
}

// TestQuery_Bounds verifies out-of-range rejection and the empty-range convention.
func TestQuery_Bounds(t *testing.T) {
	st, err := segtree.New([]int{1, 2, 3}, segtree.Sum[int]())
	require.NoError(t, err)

	for _, c := range []struct{ l, r int }{{-1, 1}, {0, 3}, {3, 3}, {0, -1}, {5, 1}} {
		_, err = st.Query(c.l, c.r)
		assert.ErrorIs(t, err, segtree.ErrOutOfRange, "Query(%d, %d)", c.l, c.r)
	}

	// l > r inside bounds is an empty range
	got, err := st.Query(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	strict, err := segtree.New([]int{1, 2, 3}, segtree.Sum[int](), segtree.WithStrictRanges[int]())
	require.NoError(t, err)
	_, err = strict.Query(2, 1)
	assert.ErrorIs(t, err, segtree.ErrInvalidRange)
	got, err = strict.Query(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

// TestEmptyRange_ReturnsIdentity checks that the sentinel identity comes back for min.
func TestEmptyRange_ReturnsIdentity(t *testing.T) {
	st, err := segtree.New([]int{4, 8}, segtree.Min(1000))
	require.NoError(t, err)

	got, err := st.Query(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1000, got)
}

// TestUpdate_Errors verifies that rejected updates leave the tree unchanged.
func TestUpdate_Errors(t *testing.T) {
	nonNeg := segtree.WithValueCheck(func(v int) error {
		if v < 0 {
			return errors.New("negative")
		}
		return nil
	})
	st, err := segtree.New([]int{1, 2, 3}, segtree.Sum[int](), nonNeg)
	require.NoError(t, err)

	assert.ErrorIs(t, st.Update(-1, 5), segtree.ErrOutOfRange)
	assert.ErrorIs(t, st.Update(3, 5), segtree.ErrOutOfRange)
	assert.ErrorIs(t, st.Update(1, -5), segtree.ErrInvalidValue)
	assert.Equal(t, []int{1, 2, 3}, st.Values())
	assert.Equal(t, 6, st.All())
}

// TestUpdate_ThenPointQuery checks Update(pos, v) followed by Query(pos, pos) == v.
func TestUpdate_ThenPointQuery(t *testing.T) {
	st, err := segtree.New(make([]int, 37), segtree.Sum[int]())
	require.NoError(t, err)

	for pos := 0; pos < st.Len(); pos++ {
		require.NoError(t, st.Update(pos, pos*pos+1))
		got, err := st.Query(pos, pos)
		require.NoError(t, err)
		assert.Equal(t, pos*pos+1, got)
		at, err := st.At(pos)
		require.NoError(t, err)
		assert.Equal(t, got, at)
	}
}

// TestSequentialUpdates checks that updates at distinct positions both persist.
func TestSequentialUpdates(t *testing.T) {
	st, err := segtree.New([]int{0, 0, 0, 0, 0, 0}, segtree.Max(math.MinInt))
	require.NoError(t, err)

	require.NoError(t, st.Update(1, 9))
	require.NoError(t, st.Update(4, 5))

	got, err := st.Query(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, got)
	got, err = st.Query(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
	got, err = st.Query(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
	assert.Equal(t, 9, st.All())
}

// TestAt_OutOfRange verifies At bounds checks.
func TestAt_OutOfRange(t *testing.T) {
	st, err := segtree.New([]int{1}, segtree.Sum[int]())
	require.NoError(t, err)

	_, err = st.At(1)
	assert.ErrorIs(t, err, segtree.ErrOutOfRange)
	_, err = st.At(-1)
	assert.ErrorIs(t, err, segtree.ErrOutOfRange)
}

// TestRebuild verifies resizing and that a failed rebuild keeps the old contents.
func TestRebuild(t *testing.T) {
	st, err := segtree.New([]int{1, 2, 3}, segtree.Sum[int]())
	require.NoError(t, err)

	assert.ErrorIs(t, st.Rebuild(nil), segtree.ErrEmptyInput)
	assert.Equal(t, 3, st.Len())
	assert.Equal(t, 6, st.All())

	require.NoError(t, st.Rebuild([]int{10, 20, 30, 40, 50, 60}))
	assert.Equal(t, 6, st.Len())
	got, err := st.Query(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 180, got)
}

// TestNew_DoesNotRetainInput verifies the input slice is copied.
func TestNew_DoesNotRetainInput(t *testing.T) {
	in := []int{1, 2, 3}
	st, err := segtree.New(in, segtree.Sum[int]())
	require.NoError(t, err)

	in[0] = 100
	got, err := st.Query(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	out := st.Values()
	out[1] = 100
	got, err = st.Query(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

// TestMonoidsCoexist checks that instances with different policies are independent.
func TestMonoidsCoexist(t *testing.T) {
	a := []int{6, 3, 9, 12}
	sum, err := segtree.New(a, segtree.Sum[int]())
	require.NoError(t, err)
	g, err := segtree.New(a, segtree.GCD[int]())
	require.NoError(t, err)

	require.NoError(t, sum.Update(0, 1))
	assert.Equal(t, 25, sum.All())
	assert.Equal(t, 3, g.All())
}

// TestRandomRanges_MatchNaiveFold cross-checks many random ranges and updates
// against an O(N) fold, for several sizes including odd lengths.
func TestRandomRanges_MatchNaiveFold(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	monoids := map[string]segtree.Monoid[int64]{
		"sum": segtree.Sum[int64](),
		"min": segtree.Min[int64](math.MaxInt64),
		"max": segtree.Max[int64](math.MinInt64),
		"xor": segtree.Xor[int64](),
		"gcd": segtree.GCD[int64](),
	}

	for name, m := range monoids {
		for _, n := range []int{1, 2, 3, 7, 16, 33, 100} {
			// gcd is only a monoid over non-negative values
			draw := func() int64 {
				v := rng.Int63n(1000)
				if name != "gcd" {
					v -= 500
				}
				return v
			}
			a := make([]int64, n)
			for i := range a {
				a[i] = draw()
			}
			st, err := segtree.New(a, m)
			require.NoError(t, err)
			assert.Equal(t, foldNaive(a, m, 0, n-1), st.All(), "%s n=%d: All", name, n)

			for step := 0; step < 200; step++ {
				if step%4 == 0 {
					pos := rng.Intn(n)
					a[pos] = draw()
					require.NoError(t, st.Update(pos, a[pos]))
				}
				l := rng.Intn(n)
				r := l + rng.Intn(n-l)
				got, err := st.Query(l, r)
				require.NoError(t, err)
				require.Equal(t, foldNaive(a, m, l, r), got, "%s n=%d: Query(%d, %d)", name, n, l, r)
			}
			assert.Equal(t, a, st.Values())
		}
	}
}

// affine is x -> a*x + b; composition is associative but not commutative.
type affine struct{ a, b int64 }

// TestNonCommutative_AffineComposition verifies left-to-right merge order.
func TestNonCommutative_AffineComposition(t *testing.T) {
	const mod = 1_000_000_007
	// Merge(f, g) applies f first, then g: g(f(x)).
	compose := segtree.Monoid[affine]{
		Identity: affine{1, 0},
		Merge: func(f, g affine) affine {
			return affine{f.a * g.a % mod, (g.a*f.b + g.b) % mod}
		},
	}

	rng := rand.New(rand.NewSource(7))
	fs := make([]affine, 50)
	for i := range fs {
		fs[i] = affine{rng.Int63n(100) + 1, rng.Int63n(100)}
	}
	st, err := segtree.New(fs, compose)
	require.NoError(t, err)

	for step := 0; step < 300; step++ {
		l := rng.Intn(len(fs))
		r := l + rng.Intn(len(fs)-l)
		got, err := st.Query(l, r)
		require.NoError(t, err)
		require.Equal(t, foldNaive(fs, compose, l, r), got, "Query(%d, %d)", l, r)
	}
}

// TestNonCommutative_Concat uses string concatenation to expose ordering errors.
func TestNonCommutative_Concat(t *testing.T) {
	concat := segtree.Monoid[string]{
		Identity: "",
		Merge:    func(a, b string) string { return a + b },
	}
	st, err := segtree.New([]string{"a", "b", "c", "d", "e"}, concat)
	require.NoError(t, err)

	got, err := st.Query(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "bcd", got)
	assert.Equal(t, "abcde", st.All())

	require.NoError(t, st.Update(2, "X"))
	got, err = st.Query(0, 4)
	require.NoError(t, err)
	assert.Equal(t, "abXde", got)
}
