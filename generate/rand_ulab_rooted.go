package generate

import (
	"github.com/treemetrics/linarr/core"
	"github.com/treemetrics/linarr/numeric"
)

// ranrutState is the machinery shared by the unlabelled samplers: the
// growing t_n table, the head-vector scratch buffer the trees are built
// in, and the random stream.
type ranrutState struct {
	n     int
	rng   rngState
	rn    *rnTable
	heads []int
}

func newRanrutState(n int, seed uint64) ranrutState {
	return ranrutState{
		n:     n,
		rng:   newRngState(seed),
		rn:    newRnTable(),
		heads: make([]int, n),
	}
}

// init re-targets the state at n vertices and re-seeds the stream,
// keeping whatever t_n table has been grown.
func (g *ranrutState) init(n int, seed uint64) {
	g.n = n
	g.rng = newRngState(seed)
	if cap(g.heads) < n {
		g.heads = make([]int, n)
	} else {
		g.heads = g.heads[:n]
	}
}

// ranrut writes a uniform unlabelled rooted tree of n vertices into
// heads[nt:nt+n]. lr is the position of the root of the previously
// generated tree (the one this tree's root attaches to) and nt the
// first free slot. It returns the position of the new tree's root and
// the next free slot.
//
// The recursion is Nijenhuis and Wilf's: pick a pair (j,d) with
// probability d·t_{n-jd}·t_d / ((n-1)·t_n), generate T' on n-jd
// vertices and T'' on d vertices hanging from T''s root, then attach
// j-1 further copies of T'' by translating its head slice.
func (g *ranrutState) ranrut(n, lr, nt int) (int, int) {
	if n == 0 {
		return lr, nt
	}
	if n == 1 {
		g.heads[nt] = lr
		return nt, nt + 1
	}
	if n == 2 {
		g.heads[nt] = lr
		g.heads[nt+1] = nt
		return nt, nt + 2
	}

	j, d := g.chooseJD(n)

	rootTp, storeTpp := g.ranrut(n-j*d, lr, nt)
	rootTpp, nt2 := g.ranrut(d, rootTp, storeTpp)

	nt = nt2
	for c := 1; c < j; c++ {
		g.heads[nt] = rootTp
		for v := nt + 1; v < nt+d; v++ {
			// heads[v-c*d] is the corresponding vertex of the first copy;
			// shift its offset from that copy's root onto the new root
			g.heads[v] = nt + g.heads[v-c*d] - rootTpp
		}
		nt += d
	}
	return rootTp, nt
}

// chooseJD draws the pair (j,d) of the ranrut recursion. One uniform
// double is consumed; pairs are walked in order of increasing d,
// subtracting each pair's weight d·t_{n-jd}·t_d until the draw is
// exhausted.
func (g *ranrutState) chooseJD(n int) (int, int) {
	r := g.rng.r.Float64()
	weight := g.rn.get(n).Mul(numeric.NewInteger(int64(n-1))).Float64() * r

	j, d := 1, 1
	for weight > 0 {
		if n <= j*d {
			d++
			j = 1
		} else {
			weight -= g.rn.get(n - j*d).Mul(g.rn.get(d)).Mul(numeric.NewInteger(int64(d))).Float64()
			if weight > 0 {
				j++
			}
		}
	}
	return j, d
}

// headsToRooted builds the arborescence for heads[0:n] with root 0.
func (g *ranrutState) headsToRooted(n int) (*core.RootedTree, error) {
	t := core.NewRootedTree(n, 0)
	if n <= 1 {
		return t, nil
	}
	es := make([]core.Edge, 0, n-1)
	for u := 1; u < n; u++ {
		es = append(es, core.Edge{From: g.heads[u], To: u})
	}
	if err := t.AddEdges(es); err != nil {
		return nil, err
	}
	t.ValidateOrientation()
	return t, nil
}

// RandUnlabelledRooted samples unlabelled rooted trees on n vertices
// uniformly at random with the ranrut procedure. The t_n table grows on
// demand and is retained across calls; Clear releases it back to the
// constant-initialized prefix.
type RandUnlabelledRooted struct {
	Postprocess
	ranrutState
}

// NewRandUnlabelledRooted creates the sampler. Seed 0 draws OS entropy;
// any other seed fixes the stream. Complexity: O(n).
func NewRandUnlabelledRooted(n int, seed uint64) (*RandUnlabelledRooted, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	return &RandUnlabelledRooted{
		Postprocess: defaultPostprocess(),
		ranrutState: newRanrutState(n, seed),
	}, nil
}

// Clear releases the grown t_n table, keeping only the constant prefix.
// Init must be called before the next draw.
func (g *RandUnlabelledRooted) Clear() { g.rn.clear() }

// Init re-targets the sampler at n vertices and re-seeds the random
// stream. The t_n table, if still grown, is reused. Complexity: O(n).
func (g *RandUnlabelledRooted) Init(n int, seed uint64) error {
	if n < 0 {
		return ErrInvalidSize
	}
	g.init(n, seed)
	return nil
}

// Tree draws one uniform unlabelled rooted tree, rooted at vertex 0.
// Complexity: O(n) once the t_n table is warm.
func (g *RandUnlabelledRooted) Tree() (*core.RootedTree, error) {
	if g.n <= 1 {
		return core.NewRootedTree(g.n, 0), nil
	}
	g.ranrut(g.n, 0, 0)
	t, err := g.headsToRooted(g.n)
	if err != nil {
		return nil, err
	}
	g.applyRooted(t)
	return t, nil
}
