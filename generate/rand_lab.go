package generate

import "github.com/treemetrics/linarr/core"

// RandLabelledFree samples labelled free trees on n vertices uniformly
// at random by decoding a uniform Prüfer sequence. Each call to Tree
// consumes n-2 integer draws from the stream.
type RandLabelledFree struct {
	Postprocess

	n   int
	rng rngState
	seq []int
}

type rngState struct {
	seed uint64
	r    randSource
}

// randSource is the slice of *rand.Rand the samplers consume; a named
// interface keeps test fixtures able to script the draws.
type randSource interface {
	Intn(n int) int
	Float64() float64
}

func newRngState(seed uint64) rngState {
	return rngState{seed: seed, r: rngFromSeed(seed)}
}

// NewRandLabelledFree creates the sampler. Seed 0 draws OS entropy;
// any other seed fixes the stream. Complexity: O(n).
func NewRandLabelledFree(n int, seed uint64) (*RandLabelledFree, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	m := 0
	if n > 2 {
		m = n - 2
	}
	return &RandLabelledFree{
		Postprocess: defaultPostprocess(),
		n:           n,
		rng:         newRngState(seed),
		seq:         make([]int, m),
	}, nil
}

// Tree draws one uniform labelled free tree. Complexity: O(n).
func (g *RandLabelledFree) Tree() (*core.FreeTree, error) {
	for i := range g.seq {
		g.seq[i] = g.rng.r.Intn(g.n)
	}
	t, err := pruferDecode(g.seq, g.n)
	if err != nil {
		return nil, err
	}
	g.applyFree(t)
	return t, nil
}

// RandLabelledRooted samples labelled rooted trees on n vertices
// uniformly at random: a uniform labelled free tree plus an independent
// uniform root. Each call to Tree consumes n-1 integer draws.
type RandLabelledRooted struct {
	Postprocess

	free *RandLabelledFree
}

// NewRandLabelledRooted creates the sampler. Seed 0 draws OS entropy;
// any other seed fixes the stream. Complexity: O(n).
func NewRandLabelledRooted(n int, seed uint64) (*RandLabelledRooted, error) {
	free, err := NewRandLabelledFree(n, seed)
	if err != nil {
		return nil, err
	}
	free.DeactivateAll()
	return &RandLabelledRooted{Postprocess: defaultPostprocess(), free: free}, nil
}

// Tree draws one uniform labelled rooted tree. Complexity: O(n).
func (g *RandLabelledRooted) Tree() (*core.RootedTree, error) {
	ft, err := g.free.Tree()
	if err != nil {
		return nil, err
	}
	n := ft.NumVertices()
	if n == 0 {
		return core.NewRootedTree(0, 0), nil
	}
	t, err := ft.ToRooted(g.free.rng.r.Intn(n))
	if err != nil {
		return nil, err
	}
	g.applyRooted(t)
	return t, nil
}
