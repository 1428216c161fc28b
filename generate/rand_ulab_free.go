package generate

import (
	"github.com/treemetrics/linarr/core"
	"github.com/treemetrics/linarr/numeric"
)

// RandUnlabelledFree samples unlabelled free trees on n vertices
// uniformly at random, following Wilf's split of the free trees by
// their centroid. A free tree either has one centroidal vertex, or (for
// even n) two adjacent ones splitting it into halves of n/2 vertices.
//
//   - Bicentroidal case, chosen with probability t(t+1)/2 / f_n where
//     t = t_{n/2}: two rooted trees of n/2 vertices joined at the roots.
//   - Unicentroidal case: rooted trees are drawn with ranrut until the
//     root is the centroid (every root subtree smaller than n/2), which
//     maps one-to-one onto the unicentroidal free trees.
//
// The t_n table is shared with the rooted sampler machinery and grows
// on demand; Clear releases it.
type RandUnlabelledFree struct {
	Postprocess
	ranrutState
}

// NewRandUnlabelledFree creates the sampler. Seed 0 draws OS entropy;
// any other seed fixes the stream. Complexity: O(n).
func NewRandUnlabelledFree(n int, seed uint64) (*RandUnlabelledFree, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	return &RandUnlabelledFree{
		Postprocess: defaultPostprocess(),
		ranrutState: newRanrutState(n, seed),
	}, nil
}

// Clear releases the grown t_n table, keeping only the constant prefix.
// Init must be called before the next draw.
func (g *RandUnlabelledFree) Clear() { g.rn.clear() }

// Init re-targets the sampler at n vertices and re-seeds the random
// stream. The t_n table, if still grown, is reused. Complexity: O(n).
func (g *RandUnlabelledFree) Init(n int, seed uint64) error {
	if n < 0 {
		return ErrInvalidSize
	}
	g.init(n, seed)
	return nil
}

// Tree draws one uniform unlabelled free tree. Expected complexity is
// O(n) per draw once the t_n table is warm; the unicentroidal rejection
// accepts with constant probability.
func (g *RandUnlabelledFree) Tree() (*core.FreeTree, error) {
	n := g.n
	if n <= 1 {
		return core.NewFreeTree(n), nil
	}
	if n == 2 {
		t := core.NewFreeTree(2)
		if err := t.AddEdge(0, 1); err != nil {
			return nil, err
		}
		return t, nil
	}

	if n%2 == 0 && g.drawBicentroidal(n) {
		t, err := g.joinHalves(n)
		if err != nil {
			return nil, err
		}
		g.applyFree(t)
		return t, nil
	}

	size := make([]int, n)
	for {
		g.ranrut(n, 0, 0)
		if g.rootIsCentroid(n, size) {
			break
		}
	}
	t := core.NewFreeTree(n)
	es := make([]core.Edge, 0, n-1)
	for u := 1; u < n; u++ {
		es = append(es, core.Edge{From: g.heads[u], To: u})
	}
	if err := t.SetEdges(es); err != nil {
		return nil, err
	}
	g.applyFree(t)
	return t, nil
}

// drawBicentroidal decides the centroid case for even n: there are
// t(t+1)/2 bicentroidal free trees among the f_n free trees.
func (g *RandUnlabelledFree) drawBicentroidal(n int) bool {
	t := g.rn.get(n / 2)
	bic := t.Mul(t.Add(numeric.NewInteger(1)))
	half, _ := bic.Div(numeric.NewInteger(2))
	fn := numFreeFrom(g.rn, n)
	prob, err := numeric.RationalFromIntegers(half, fn)
	if err != nil {
		return false
	}
	return g.rng.r.Float64() < prob.Float64()
}

// joinHalves builds a bicentroidal tree: two rooted trees of n/2
// vertices, roots joined by an edge. The second half repeats the first
// with probability 1/(t+1), t = t_{n/2}, and is drawn independently
// otherwise, so every unordered pair of halves, equal or not, has
// probability 2/(t(t+1)).
func (g *RandUnlabelledFree) joinHalves(n int) (*core.FreeTree, error) {
	m := n / 2
	es := make([]core.Edge, 0, n-1)
	g.ranrut(m, 0, 0)
	for u := 1; u < m; u++ {
		es = append(es, core.Edge{From: g.heads[u], To: u})
	}
	if g.rng.r.Float64()*(g.rn.get(m).Float64()+1) >= 1 {
		g.ranrut(m, 0, 0)
	}
	for u := 1; u < m; u++ {
		es = append(es, core.Edge{From: g.heads[u] + m, To: u + m})
	}
	es = append(es, core.Edge{From: 0, To: m})
	t := core.NewFreeTree(n)
	if err := t.SetEdges(es); err != nil {
		return nil, err
	}
	return t, nil
}

// rootIsCentroid reports whether every subtree hanging off vertex 0 of
// the head vector has fewer than n/2 vertices, i.e. the root is the
// unique centroid. size is caller-provided scratch.
func (g *RandUnlabelledFree) rootIsCentroid(n int, size []int) bool {
	for i := range size {
		size[i] = 1
	}
	// heads point backwards, so one reverse sweep accumulates sizes
	for v := n - 1; v >= 1; v-- {
		size[g.heads[v]] += size[v]
	}
	for v := 1; v < n; v++ {
		if g.heads[v] == 0 && 2*size[v] >= n {
			return false
		}
	}
	return true
}
