package generate_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treemetrics/linarr/core"
	"github.com/treemetrics/linarr/generate"
	"github.com/treemetrics/linarr/linarr"
)

func factorial(k int) int64 {
	r := int64(1)
	for i := 2; i <= k; i++ {
		r *= int64(i)
	}
	return r
}

func rootedFromEdges(t *testing.T, n, root int, es []core.Edge) *core.RootedTree {
	t.Helper()
	rt := core.NewRootedTree(n, root)
	require.NoError(t, rt.AddEdges(es))
	require.True(t, rt.ValidateOrientation())
	return rt
}

func freeFromEdges(t *testing.T, n int, es []core.Edge) *core.FreeTree {
	t.Helper()
	ft := core.NewFreeTree(n)
	require.NoError(t, ft.SetEdges(es))
	return ft
}

// numProjective is the product over vertices of (children+1)!.
func numProjective(rt *core.RootedTree) int64 {
	r := int64(1)
	for u := 0; u < rt.NumVertices(); u++ {
		r *= factorial(len(rt.Children(u)) + 1)
	}
	return r
}

// numPlanar is n times the product over vertices of degree!.
func numPlanar(t *testing.T, ft *core.FreeTree) int64 {
	t.Helper()
	n := ft.NumVertices()
	r := int64(n)
	for u := 0; u < n; u++ {
		d, err := ft.Degree(u)
		require.NoError(t, err)
		r *= factorial(d)
	}
	return r
}

func TestAllProjectiveCounts(t *testing.T) {
	cases := []struct {
		name string
		n    int
		root int
		es   []core.Edge
	}{
		{"single", 1, 0, nil},
		{"edge", 2, 0, []core.Edge{{From: 0, To: 1}}},
		{"path5", 5, 0, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}}},
		{"star5", 5, 0, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3}, {From: 0, To: 4}}},
		{"caterpillar6", 6, 0, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 1, To: 3}, {From: 3, To: 4}, {From: 3, To: 5}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rt := rootedFromEdges(t, tc.n, tc.root, tc.es)
			g, err := generate.NewAllProjective(rt)
			require.NoError(t, err)

			seen := make(map[string]bool)
			for !g.End() {
				arr, err := g.YieldArrangement()
				require.NoError(t, err)
				require.Equal(t, tc.n, arr.N())
				proj, err := linarr.IsProjective(rt, arr)
				require.NoError(t, err)
				assert.True(t, proj, "non-projective: %v", arr.Inverse())
				k := fmt.Sprint(arr.Inverse())
				assert.False(t, seen[k], "duplicate arrangement %s", k)
				seen[k] = true
			}
			assert.Equal(t, numProjective(rt), int64(len(seen)))

			_, err = g.Arrangement()
			assert.ErrorIs(t, err, generate.ErrExhausted)

			g.Reset()
			assert.False(t, g.End())
		})
	}
}

func TestAllPlanarCounts(t *testing.T) {
	cases := []struct {
		name string
		n    int
		es   []core.Edge
	}{
		{"single", 1, nil},
		{"edge", 2, []core.Edge{{From: 0, To: 1}}},
		{"path4", 4, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}},
		{"star4", 4, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3}}},
		{"spider6", 6, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3}, {From: 3, To: 4}, {From: 3, To: 5}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ft := freeFromEdges(t, tc.n, tc.es)
			g, err := generate.NewAllPlanar(ft)
			require.NoError(t, err)

			seen := make(map[string]bool)
			for !g.End() {
				arr, err := g.YieldArrangement()
				require.NoError(t, err)
				require.Equal(t, tc.n, arr.N())
				pl, err := linarr.IsPlanar(ft, arr)
				require.NoError(t, err)
				assert.True(t, pl, "non-planar: %v", arr.Inverse())
				k := fmt.Sprint(arr.Inverse())
				assert.False(t, seen[k], "duplicate arrangement %s", k)
				seen[k] = true
			}
			assert.Equal(t, numPlanar(t, ft), int64(len(seen)))
		})
	}
}

func TestAllProjectiveEmptyTree(t *testing.T) {
	rt := core.NewRootedTree(0, 0)
	g, err := generate.NewAllProjective(rt)
	require.NoError(t, err)
	require.False(t, g.End())
	arr, err := g.Arrangement()
	require.NoError(t, err)
	assert.Equal(t, 0, arr.N())
}

func TestArrangementGeneratorsRejectNil(t *testing.T) {
	_, err := generate.NewAllProjective(nil)
	assert.ErrorIs(t, err, generate.ErrTreeNil)
	_, err = generate.NewAllPlanar(nil)
	assert.ErrorIs(t, err, generate.ErrTreeNil)
	_, err = generate.NewRandProjective(nil, 1)
	assert.ErrorIs(t, err, generate.ErrTreeNil)
	_, err = generate.NewRandPlanar(nil, 1)
	assert.ErrorIs(t, err, generate.ErrTreeNil)
}

func TestArrangementGeneratorsRejectIncompleteTree(t *testing.T) {
	rt := core.NewRootedTree(4, 0)
	require.NoError(t, rt.AddEdge(0, 1))
	_, err := generate.NewAllProjective(rt)
	assert.ErrorIs(t, err, core.ErrNotATree)

	ft := core.NewFreeTree(3)
	require.NoError(t, ft.AddEdge(0, 1))
	_, err = generate.NewAllPlanar(ft)
	assert.ErrorIs(t, err, core.ErrNotATree)
}

func TestRandProjective(t *testing.T) {
	rt := rootedFromEdges(t, 7, 0, []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3},
		{From: 1, To: 4}, {From: 2, To: 5}, {From: 5, To: 6},
	})
	g, err := generate.NewRandProjective(rt, 31)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		arr, err := g.Arrangement()
		require.NoError(t, err)
		proj, err := linarr.IsProjective(rt, arr)
		require.NoError(t, err)
		assert.True(t, proj)
	}
}

func TestRandProjectiveCoverage(t *testing.T) {
	// star with two leaves: 3! = 6 projective arrangements
	rt := rootedFromEdges(t, 3, 0, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}})
	g, err := generate.NewRandProjective(rt, 4)
	require.NoError(t, err)
	seen := make(map[string]bool)
	for i := 0; i < 300; i++ {
		arr, err := g.Arrangement()
		require.NoError(t, err)
		seen[fmt.Sprint(arr.Inverse())] = true
	}
	assert.Len(t, seen, 6)
}

func TestRandPlanar(t *testing.T) {
	ft := freeFromEdges(t, 7, []core.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3},
		{From: 2, To: 4}, {From: 4, To: 5}, {From: 4, To: 6},
	})
	g, err := generate.NewRandPlanar(ft, 17)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		arr, err := g.Arrangement()
		require.NoError(t, err)
		pl, err := linarr.IsPlanar(ft, arr)
		require.NoError(t, err)
		assert.True(t, pl)
	}
}

func TestRandPlanarCoverage(t *testing.T) {
	// P3 has 3 * 1!·2!·1! = 6 planar arrangements
	ft := freeFromEdges(t, 3, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	g, err := generate.NewRandPlanar(ft, 6)
	require.NoError(t, err)
	seen := make(map[string]bool)
	for i := 0; i < 300; i++ {
		arr, err := g.Arrangement()
		require.NoError(t, err)
		seen[fmt.Sprint(arr.Inverse())] = true
	}
	assert.Len(t, seen, 6)
}

func TestRandArrangementSeedDeterminism(t *testing.T) {
	rt := rootedFromEdges(t, 6, 0, []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 1, To: 4}, {From: 2, To: 5},
	})
	a, err := generate.NewRandProjective(rt, 99)
	require.NoError(t, err)
	b, err := generate.NewRandProjective(rt, 99)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		x, err := a.Arrangement()
		require.NoError(t, err)
		y, err := b.Arrangement()
		require.NoError(t, err)
		assert.True(t, x.Equal(y))
	}
}
