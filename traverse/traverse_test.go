package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treemetrics/linarr/core"
	"github.com/treemetrics/linarr/traverse"
)

func lineGraph(t *testing.T, n int) *core.Undirected {
	t.Helper()
	g := core.NewUndirected(n)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}
	return g
}

func TestBFSOrder(t *testing.T) {
	// star with centre 0: BFS from 0 visits the leaves in adjacency order
	g := core.NewUndirected(5)
	for i := 1; i < 5; i++ {
		require.NoError(t, g.AddEdge(0, i))
	}
	var order []int
	tr, err := traverse.New(g, traverse.BFS,
		traverse.WithProcessCurrent(func(_ *traverse.Traversal, u int) {
			order = append(order, u)
		}),
	)
	require.NoError(t, err)
	require.NoError(t, tr.StartAt(0))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	assert.True(t, tr.AllVisited())
}

func TestDFSOrder(t *testing.T) {
	g := lineGraph(t, 5)
	var order []int
	tr, err := traverse.New(g, traverse.DFS,
		traverse.WithProcessCurrent(func(_ *traverse.Traversal, u int) {
			order = append(order, u)
		}),
	)
	require.NoError(t, err)
	require.NoError(t, tr.StartAt(2))
	// frontier is LIFO: 2, then 3 (pushed last), 4, back to 1, 0
	assert.Equal(t, []int{2, 3, 4, 1, 0}, order)
}

func TestEarlyTermination(t *testing.T) {
	g := lineGraph(t, 10)
	visited := 0
	tr, err := traverse.New(g, traverse.BFS,
		traverse.WithProcessCurrent(func(_ *traverse.Traversal, _ int) { visited++ }),
		traverse.WithShouldTerminate(func(_ *traverse.Traversal, u int) bool {
			return u == 4
		}),
	)
	require.NoError(t, err)
	require.NoError(t, tr.StartAt(0))
	assert.True(t, tr.Stopped())
	// termination checked after processing: node 4 was processed
	assert.Equal(t, 5, visited)
	assert.False(t, tr.Visited(9))
}

func TestEdgeHooks(t *testing.T) {
	g := lineGraph(t, 4)

	t.Run("each tree edge reported once by default", func(t *testing.T) {
		var edges [][2]int
		tr, err := traverse.New(g, traverse.BFS,
			traverse.WithProcessNeighbour(func(_ *traverse.Traversal, u, v int, _ bool) {
				edges = append(edges, [2]int{u, v})
			}),
		)
		require.NoError(t, err)
		require.NoError(t, tr.StartAt(0))
		assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, edges)
	})

	t.Run("visited neighbours reported when enabled", func(t *testing.T) {
		count := 0
		tr, err := traverse.New(g, traverse.BFS,
			traverse.WithProcessVisitedNeighbours(true),
			traverse.WithProcessNeighbour(func(_ *traverse.Traversal, _, _ int, _ bool) {
				count++
			}),
		)
		require.NoError(t, err)
		require.NoError(t, tr.StartAt(0))
		// every adjacency entry is examined exactly once: 2m = 6
		assert.Equal(t, 6, count)
	})

	t.Run("should-add filter prunes the frontier", func(t *testing.T) {
		tr, err := traverse.New(g, traverse.BFS,
			traverse.WithShouldAdd(func(_ *traverse.Traversal, _, v int) bool {
				return v != 2
			}),
		)
		require.NoError(t, err)
		require.NoError(t, tr.StartAt(0))
		assert.True(t, tr.Visited(1))
		assert.False(t, tr.Visited(2))
		assert.False(t, tr.Visited(3))
	})
}

func TestDirectedReverseEdges(t *testing.T) {
	g := core.NewDirected(3)
	require.NoError(t, g.AddEdge(1, 0))
	require.NoError(t, g.AddEdge(1, 2))

	t.Run("forward only from a sink", func(t *testing.T) {
		tr, err := traverse.New(g, traverse.BFS)
		require.NoError(t, err)
		require.NoError(t, tr.StartAt(0))
		assert.False(t, tr.Visited(1))
	})

	t.Run("reverse edges reach the source", func(t *testing.T) {
		var unnatural int
		tr, err := traverse.New(g, traverse.BFS,
			traverse.WithReverseEdges(true),
			traverse.WithProcessNeighbour(func(_ *traverse.Traversal, _, _ int, natural bool) {
				if !natural {
					unnatural++
				}
			}),
		)
		require.NoError(t, err)
		require.NoError(t, tr.StartAt(0))
		assert.True(t, tr.AllVisited())
		assert.Equal(t, 1, unnatural)
	})
}

func TestMultiSourceAndReset(t *testing.T) {
	g := lineGraph(t, 6)
	tr, err := traverse.New(g, traverse.BFS)
	require.NoError(t, err)
	require.NoError(t, tr.StartAtAll([]int{0, 5}))
	assert.True(t, tr.AllVisited())

	tr.Reset()
	assert.False(t, tr.Visited(0))
	assert.ErrorIs(t, tr.StartAt(6), traverse.ErrSourceOutOfRange)
}
