package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treemetrics/linarr/core"
)

func TestUndirectedBasics(t *testing.T) {
	g := core.NewUndirected(5)
	require.Equal(t, 5, g.NumVertices())
	require.Equal(t, 0, g.NumEdges())
	assert.True(t, g.IsNormalized())

	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(3, 1))
	require.NoError(t, g.AddEdge(2, 4))
	assert.Equal(t, 3, g.NumEdges())
	assert.True(t, g.HasEdge(3, 0))
	assert.True(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(0, 4))

	d, err := g.Degree(3)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	t.Run("error cases", func(t *testing.T) {
		assert.ErrorIs(t, g.AddEdge(0, 3), core.ErrInvalidEdge)
		assert.ErrorIs(t, g.AddEdge(1, 1), core.ErrInvalidEdge)
		assert.ErrorIs(t, g.AddEdge(0, 5), core.ErrIndexOutOfRange)
		assert.ErrorIs(t, g.AddEdge(-1, 0), core.ErrIndexOutOfRange)
		assert.ErrorIs(t, g.RemoveEdge(0, 4), core.ErrInvalidEdge)
		_, err := g.Degree(9)
		assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	})

	t.Run("remove edge", func(t *testing.T) {
		require.NoError(t, g.RemoveEdge(3, 0))
		assert.False(t, g.HasEdge(0, 3))
		assert.Equal(t, 2, g.NumEdges())
		require.NoError(t, g.AddEdge(0, 3))
	})
}

func TestNormalization(t *testing.T) {
	g := core.NewUndirected(6)
	edges := []core.Edge{{From: 5, To: 0}, {From: 3, To: 5}, {From: 1, To: 5}, {From: 2, To: 1}, {From: 4, To: 2}}

	t.Run("bulk insert without normalize clears the flag", func(t *testing.T) {
		require.NoError(t, g.AddEdges(edges, core.WithNormalize(false)))
		assert.False(t, g.IsNormalized())
	})

	t.Run("normalize is idempotent", func(t *testing.T) {
		g.Normalize()
		assert.True(t, g.IsNormalized())
		assert.Equal(t, []int{0, 1, 3}, g.Neighbours(5))
		g.Normalize()
		assert.Equal(t, []int{0, 1, 3}, g.Neighbours(5))
		assert.True(t, g.CheckNormalized())
	})

	t.Run("check without normalize recomputes the flag", func(t *testing.T) {
		h := core.NewUndirected(4)
		// inserting ascending pairs keeps adjacencies sorted even unnormalized
		require.NoError(t, h.AddEdges(
			[]core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3}},
			core.WithNormalize(false), core.WithCheckNormalized(true),
		))
		assert.True(t, h.IsNormalized())
	})
}

func TestDisjointUnion(t *testing.T) {
	g := core.NewUndirected(3)
	require.NoError(t, g.AddEdges([]core.Edge{{From: 0, To: 1}, {From: 1, To: 2}}))
	h := core.NewUndirected(2)
	require.NoError(t, h.AddEdge(0, 1))

	mg, mh := g.NumEdges(), h.NumEdges()
	g.DisjointUnion(h)
	assert.Equal(t, 5, g.NumVertices())
	assert.Equal(t, mg+mh, g.NumEdges())
	// vertices of h shifted by |V(g)| = 3
	assert.True(t, g.HasEdge(3, 4))
	assert.False(t, g.HasEdge(2, 3))
}

func TestDirected(t *testing.T) {
	g := core.NewDirected(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 1)) // opposite orientation is distinct
	assert.Equal(t, 3, g.NumEdges())
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1))
	assert.False(t, g.HasEdge(1, 0))

	od, err := g.OutDegree(1)
	require.NoError(t, err)
	id, err := g.InDegree(1)
	require.NoError(t, err)
	assert.Equal(t, 1, od)
	assert.Equal(t, 2, id)

	t.Run("to undirected merges opposing edges", func(t *testing.T) {
		u := g.ToUndirected()
		assert.Equal(t, 2, u.NumEdges())
		assert.True(t, u.HasEdge(1, 2))
		assert.True(t, u.IsNormalized())
	})
}

func TestArrangement(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		a := core.Identity(4)
		assert.True(t, a.IsIdentity())
		for u := 0; u < 4; u++ {
			assert.Equal(t, u, a.PositionOf(u))
			assert.Equal(t, u, a.VertexAt(u))
		}
	})

	t.Run("pos and inv stay consistent", func(t *testing.T) {
		a, err := core.FromPositions([]int{2, 0, 3, 1})
		require.NoError(t, err)
		for u := 0; u < a.N(); u++ {
			assert.Equal(t, u, a.VertexAt(a.PositionOf(u)))
		}
		a.SwapVertices(0, 2)
		for u := 0; u < a.N(); u++ {
			assert.Equal(t, u, a.VertexAt(a.PositionOf(u)))
		}
	})

	t.Run("round trip through inverse", func(t *testing.T) {
		a, err := core.FromPositions([]int{1, 3, 0, 2})
		require.NoError(t, err)
		b, err := core.FromInverse(a.Inverse())
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})

	t.Run("non-bijections rejected", func(t *testing.T) {
		_, err := core.FromPositions([]int{0, 0, 1})
		assert.ErrorIs(t, err, core.ErrNotBijection)
		_, err = core.FromPositions([]int{0, 3, 1})
		assert.ErrorIs(t, err, core.ErrNotBijection)
	})

	t.Run("empty means identity", func(t *testing.T) {
		var a *core.Arrangement
		assert.True(t, a.IsEmpty())
		r := core.Resolve(a, 3)
		assert.True(t, r.IsIdentity())
		assert.Equal(t, 3, r.N())
	})

	t.Run("mirror", func(t *testing.T) {
		a := core.Identity(4)
		a.Mirror()
		assert.Equal(t, []int{3, 2, 1, 0}, a.Positions())
	})
}

func TestFreeTree(t *testing.T) {
	t.Run("cycle rejection", func(t *testing.T) {
		ft := core.NewFreeTree(3)
		require.NoError(t, ft.AddEdge(0, 1))
		require.NoError(t, ft.AddEdge(1, 2))
		assert.True(t, ft.IsTree())
		assert.ErrorIs(t, ft.AddEdge(0, 2), core.ErrNotATree)
	})

	t.Run("bulk cycle rejection leaves tree untouched", func(t *testing.T) {
		ft := core.NewFreeTree(4)
		err := ft.AddEdges([]core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}})
		assert.ErrorIs(t, err, core.ErrNotATree)
		assert.Equal(t, 0, ft.NumEdges())
	})

	t.Run("from undirected validates", func(t *testing.T) {
		g := core.NewUndirected(3)
		require.NoError(t, g.AddEdge(0, 1))
		_, err := core.FreeTreeFromUndirected(g)
		assert.ErrorIs(t, err, core.ErrNotATree)

		require.NoError(t, g.AddEdge(1, 2))
		ft, err := core.FreeTreeFromUndirected(g)
		require.NoError(t, err)
		assert.True(t, ft.IsTree())
	})
}

func pathTree(t *testing.T, n int) *core.FreeTree {
	t.Helper()
	ft := core.NewFreeTree(n)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, ft.AddEdge(i, i+1))
	}
	return ft
}

func starTree(t *testing.T, n int) *core.FreeTree {
	t.Helper()
	ft := core.NewFreeTree(n)
	for i := 1; i < n; i++ {
		require.NoError(t, ft.AddEdge(0, i))
	}
	return ft
}

func TestAnnotations(t *testing.T) {
	t.Run("path", func(t *testing.T) {
		p := pathTree(t, 5)
		typ, err := p.Type()
		require.NoError(t, err)
		assert.Equal(t, core.TypeLinear, typ)

		c, err := p.Centre()
		require.NoError(t, err)
		assert.Equal(t, []int{2}, c)

		cd, err := p.Centroid()
		require.NoError(t, err)
		assert.Equal(t, []int{2}, cd)

		d, err := p.Diameter()
		require.NoError(t, err)
		assert.Equal(t, 4, d)
	})

	t.Run("even path has two centres and centroids", func(t *testing.T) {
		p := pathTree(t, 6)
		c, err := p.Centre()
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, c)
		cd, err := p.Centroid()
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, cd)
	})

	t.Run("star", func(t *testing.T) {
		s := starTree(t, 6)
		typ, err := s.Type()
		require.NoError(t, err)
		assert.Equal(t, core.TypeStar, typ)
		c, err := s.Centre()
		require.NoError(t, err)
		assert.Equal(t, []int{0}, c)
		d, err := s.Diameter()
		require.NoError(t, err)
		assert.Equal(t, 2, d)
	})

	t.Run("quasistar", func(t *testing.T) {
		ft := core.NewFreeTree(5)
		require.NoError(t, ft.AddEdges([]core.Edge{
			{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3}, {From: 3, To: 4},
		}))
		typ, err := ft.Type()
		require.NoError(t, err)
		assert.Equal(t, core.TypeQuasistar, typ)
	})

	t.Run("bistar", func(t *testing.T) {
		ft := core.NewFreeTree(6)
		require.NoError(t, ft.AddEdges([]core.Edge{
			{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3},
			{From: 3, To: 4}, {From: 3, To: 5},
		}))
		typ, err := ft.Type()
		require.NoError(t, err)
		assert.Equal(t, core.TypeBistar, typ)
	})

	t.Run("caterpillar", func(t *testing.T) {
		// spine 1-2-3 with legs 0 and 4 on 1, 5 on 2 and 6 on 3
		ft := core.NewFreeTree(7)
		require.NoError(t, ft.AddEdges([]core.Edge{
			{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3},
			{From: 1, To: 4}, {From: 2, To: 5}, {From: 3, To: 6},
		}))
		typ, err := ft.Type()
		require.NoError(t, err)
		assert.Equal(t, core.TypeCaterpillar, typ)
	})

	t.Run("spider", func(t *testing.T) {
		// three legs of length 2 from vertex 0
		ft := core.NewFreeTree(7)
		require.NoError(t, ft.AddEdges([]core.Edge{
			{From: 0, To: 1}, {From: 1, To: 2},
			{From: 0, To: 3}, {From: 3, To: 4},
			{From: 0, To: 5}, {From: 5, To: 6},
		}))
		typ, err := ft.Type()
		require.NoError(t, err)
		assert.Equal(t, core.TypeSpider, typ)
	})

	t.Run("mutation invalidates the cache", func(t *testing.T) {
		p := pathTree(t, 4)
		typ, err := p.Type()
		require.NoError(t, err)
		assert.Equal(t, core.TypeLinear, typ)

		require.NoError(t, p.RemoveEdge(2, 3))
		require.NoError(t, p.AddEdge(1, 3))
		typ, err = p.Type()
		require.NoError(t, err)
		assert.Equal(t, core.TypeStar, typ)
	})
}

func TestRootedTree(t *testing.T) {
	t.Run("to rooted orients away from the root", func(t *testing.T) {
		p := pathTree(t, 4)
		r, err := p.ToRooted(1)
		require.NoError(t, err)
		assert.Equal(t, 1, r.Root())
		assert.True(t, r.IsArborescence())
		assert.ElementsMatch(t, []int{0, 2}, r.Children(1))
		assert.Equal(t, -1, r.Parent(1))
		assert.Equal(t, 2, r.Parent(3))
	})

	t.Run("subtree sizes", func(t *testing.T) {
		p := pathTree(t, 5)
		r, err := p.ToRooted(0)
		require.NoError(t, err)

		_, err = r.SizeSubtree(0)
		assert.ErrorIs(t, err, core.ErrNoSubtreeSizes)

		require.NoError(t, r.ComputeSizeSubtrees())
		for u := 0; u < 5; u++ {
			s, err := r.SizeSubtree(u)
			require.NoError(t, err)
			assert.Equal(t, 5-u, s)
		}
	})

	t.Run("set root invalidates sizes", func(t *testing.T) {
		p := pathTree(t, 3)
		r, err := p.ToRooted(0)
		require.NoError(t, err)
		require.NoError(t, r.ComputeSizeSubtrees())
		require.NoError(t, r.SetRoot(2))
		assert.False(t, r.HasSizeSubtrees())
		assert.False(t, r.IsArborescence())
	})

	t.Run("to free tree", func(t *testing.T) {
		s := starTree(t, 4)
		r, err := s.ToRooted(2)
		require.NoError(t, err)
		ft, err := r.ToFreeTree()
		require.NoError(t, err)
		assert.True(t, ft.IsTree())
		typ, err := ft.Type()
		require.NoError(t, err)
		assert.Equal(t, core.TypeStar, typ)
	})
}

func TestHeadVector(t *testing.T) {
	t.Run("decode the worked example", func(t *testing.T) {
		h := core.HeadVector{0, 3, 4, 1, 6, 3}
		r, err := h.ToRootedTree()
		require.NoError(t, err)
		assert.Equal(t, 0, r.Root())
		assert.Equal(t, 6, r.NumVertices())
		assert.Equal(t, 5, r.NumEdges())
		// parents: node 2's head is 3, so vertex 1's parent is vertex 2
		assert.Equal(t, 2, r.Parent(1))
		assert.Equal(t, 3, r.Parent(2))
		assert.Equal(t, 0, r.Parent(3))
		assert.Equal(t, 5, r.Parent(4))
		assert.Equal(t, 2, r.Parent(5))
	})

	t.Run("round trip", func(t *testing.T) {
		h := core.HeadVector{3, 0, 2, 2, 3}
		r, err := h.ToRootedTree()
		require.NoError(t, err)
		back, err := core.HeadVectorOf(r)
		require.NoError(t, err)
		assert.Equal(t, h, back)
	})

	t.Run("malformed vectors rejected", func(t *testing.T) {
		cases := map[string]core.HeadVector{
			"two roots":    {2, 0, 0},
			"no root":      {2, 3, 1},
			"self parent":  {0, 2, 2, 2, 2, 2},
			"out of range": {0, 9, 1},
			"cycle":        {0, 3, 4, 3},
		}
		for name, h := range cases {
			_, err := h.ToRootedTree()
			assert.ErrorIs(t, err, core.ErrInvalidHeads, name)
		}
	})
}
