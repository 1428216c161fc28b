package minla_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treemetrics/linarr/core"
	"github.com/treemetrics/linarr/linarr"
	"github.com/treemetrics/linarr/minla"
)

func pathFreeTree(t *testing.T, n int) *core.FreeTree {
	t.Helper()
	ft := core.NewFreeTree(n)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, ft.AddEdge(i, i+1))
	}
	return ft
}

func starFreeTree(t *testing.T, n int) *core.FreeTree {
	t.Helper()
	ft := core.NewFreeTree(n)
	for i := 1; i < n; i++ {
		require.NoError(t, ft.AddEdge(0, i))
	}
	return ft
}

func randomTree(t *testing.T, n int, rng *rand.Rand) *core.FreeTree {
	t.Helper()
	ft := core.NewFreeTree(n)
	perm := rng.Perm(n)
	for i := 1; i < n; i++ {
		require.NoError(t, ft.AddEdge(perm[i], perm[rng.Intn(i)]))
	}
	return ft
}

// forEachPermutation visits every permutation of 0..n-1 (Heap's order).
func forEachPermutation(n int, fn func(perm []int)) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	var rec func(k int)
	rec = func(k int) {
		if k == 1 {
			fn(perm)
			return
		}
		for i := 0; i < k; i++ {
			rec(k - 1)
			if k%2 == 0 {
				perm[i], perm[k-1] = perm[k-1], perm[i]
			} else {
				perm[0], perm[k-1] = perm[k-1], perm[0]
			}
		}
	}
	rec(n)
}

// bruteMin scans all arrangements, keeping the cheapest among those
// accepted by keep.
func bruteMin(t *testing.T, g core.Graph, keep func(*core.Arrangement) bool) uint64 {
	t.Helper()
	best := uint64(math.MaxUint64)
	forEachPermutation(g.NumVertices(), func(perm []int) {
		arr, err := core.FromPositions(perm)
		require.NoError(t, err)
		if keep != nil && !keep(arr) {
			return
		}
		d, err := linarr.SumEdgeLengths(g, arr)
		require.NoError(t, err)
		if d < best {
			best = d
		}
	})
	return best
}

func TestUnconstrainedKnownValues(t *testing.T) {
	t.Run("path", func(t *testing.T) {
		cost, arr, err := minla.Unconstrained(pathFreeTree(t, 5))
		require.NoError(t, err)
		assert.Equal(t, uint64(4), cost)
		d, err := linarr.SumEdgeLengths(pathFreeTree(t, 5), arr)
		require.NoError(t, err)
		assert.Equal(t, cost, d)
	})

	t.Run("star", func(t *testing.T) {
		cost, _, err := minla.Unconstrained(starFreeTree(t, 6))
		require.NoError(t, err)
		assert.Equal(t, uint64(9), cost)
	})

	t.Run("trivial sizes", func(t *testing.T) {
		cost, arr, err := minla.Unconstrained(core.NewFreeTree(0))
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cost)
		assert.Equal(t, 0, arr.N())

		cost, arr, err = minla.Unconstrained(core.NewFreeTree(1))
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cost)
		assert.True(t, arr.IsIdentity())
	})

	t.Run("invalid input", func(t *testing.T) {
		_, _, err := minla.Unconstrained(nil)
		assert.ErrorIs(t, err, minla.ErrTreeNil)

		_, _, err = minla.Unconstrained(core.NewFreeTree(3))
		assert.ErrorIs(t, err, core.ErrNotATree)

		_, _, err = minla.Unconstrained(pathFreeTree(t, 3), minla.WithStrategy(minla.Strategy(99)))
		assert.ErrorIs(t, err, minla.ErrUnknownStrategy)
	})
}

func TestUnconstrainedMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	for n := 2; n <= 7; n++ {
		for iter := 0; iter < 6; iter++ {
			ft := randomTree(t, n, rng)
			want := bruteMin(t, ft, nil)
			for _, s := range []minla.Strategy{minla.Shiloach, minla.Chung} {
				cost, arr, err := minla.Unconstrained(ft, minla.WithStrategy(s))
				require.NoError(t, err)
				assert.Equal(t, want, cost, "n=%d strategy=%s", n, s)

				d, err := linarr.SumEdgeLengths(ft, arr)
				require.NoError(t, err)
				assert.Equal(t, cost, d, "arrangement does not realize the cost")
			}
		}
	}
}

func TestStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for iter := 0; iter < 25; iter++ {
		n := 2 + rng.Intn(20)
		ft := randomTree(t, n, rng)
		cs, _, err := minla.Unconstrained(ft, minla.WithStrategy(minla.Shiloach))
		require.NoError(t, err)
		cc, _, err := minla.Unconstrained(ft, minla.WithStrategy(minla.Chung))
		require.NoError(t, err)
		assert.Equal(t, cs, cc, "n=%d", n)

		costOnly, err := minla.UnconstrainedCost(ft)
		require.NoError(t, err)
		assert.Equal(t, cs, costOnly)
	}
}

func TestPlanar(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		cost, _, err := minla.Planar(pathFreeTree(t, 5))
		require.NoError(t, err)
		assert.Equal(t, uint64(4), cost)

		cost, _, err = minla.Planar(starFreeTree(t, 6))
		require.NoError(t, err)
		assert.Equal(t, uint64(9), cost)
	})

	t.Run("matches brute force", func(t *testing.T) {
		rng := rand.New(rand.NewSource(37))
		for n := 2; n <= 7; n++ {
			for iter := 0; iter < 4; iter++ {
				ft := randomTree(t, n, rng)
				want := bruteMin(t, ft, func(arr *core.Arrangement) bool {
					planar, err := linarr.IsPlanar(ft, arr)
					require.NoError(t, err)
					return planar
				})
				cost, arr, err := minla.Planar(ft)
				require.NoError(t, err)
				assert.Equal(t, want, cost, "n=%d", n)

				planar, err := linarr.IsPlanar(ft, arr)
				require.NoError(t, err)
				assert.True(t, planar)
				d, err := linarr.SumEdgeLengths(ft, arr)
				require.NoError(t, err)
				assert.Equal(t, cost, d)
			}
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		_, _, err := minla.Planar(nil)
		assert.ErrorIs(t, err, minla.ErrTreeNil)
		_, _, err = minla.Planar(core.NewFreeTree(4))
		assert.ErrorIs(t, err, core.ErrNotATree)
	})
}

func TestProjective(t *testing.T) {
	t.Run("star rooted at hub", func(t *testing.T) {
		rt, err := starFreeTree(t, 6).ToRooted(0)
		require.NoError(t, err)
		cost, _, err := minla.Projective(rt)
		require.NoError(t, err)
		assert.Equal(t, uint64(9), cost)
	})

	t.Run("matches brute force", func(t *testing.T) {
		rng := rand.New(rand.NewSource(41))
		for n := 2; n <= 7; n++ {
			for iter := 0; iter < 4; iter++ {
				ft := randomTree(t, n, rng)
				rt, err := ft.ToRooted(rng.Intn(n))
				require.NoError(t, err)

				want := bruteMin(t, rt, func(arr *core.Arrangement) bool {
					proj, err := linarr.IsProjective(rt, arr)
					require.NoError(t, err)
					return proj
				})
				cost, arr, err := minla.Projective(rt)
				require.NoError(t, err)
				assert.Equal(t, want, cost, "n=%d root=%d", n, rt.Root())

				proj, err := linarr.IsProjective(rt, arr)
				require.NoError(t, err)
				assert.True(t, proj)
				d, err := linarr.SumEdgeLengths(rt, arr)
				require.NoError(t, err)
				assert.Equal(t, cost, d)
			}
		}
	})

	t.Run("invalid orientation", func(t *testing.T) {
		rt := core.NewRootedTree(3, 0)
		require.NoError(t, rt.AddEdge(0, 1))
		require.NoError(t, rt.AddEdge(2, 1))
		_, _, err := minla.Projective(rt)
		assert.ErrorIs(t, err, core.ErrNotATree)
	})
}

func TestVariantCostsAreOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	for iter := 0; iter < 30; iter++ {
		n := 2 + rng.Intn(25)
		ft := randomTree(t, n, rng)
		rt, err := ft.ToRooted(rng.Intn(n))
		require.NoError(t, err)

		unc, _, err := minla.Unconstrained(ft)
		require.NoError(t, err)
		pl, _, err := minla.Planar(ft)
		require.NoError(t, err)
		pr, _, err := minla.Projective(rt)
		require.NoError(t, err)

		assert.LessOrEqual(t, unc, pl, "n=%d", n)
		assert.LessOrEqual(t, pl, pr, "n=%d root=%d", n, rt.Root())
	}
}
