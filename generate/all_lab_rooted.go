package generate

import "github.com/treemetrics/linarr/core"

// AllLabelledRooted enumerates every labelled rooted tree on n
// vertices: the cartesian product of the labelled free trees with every
// choice of root. There are n^(n-1) trees; for each free tree the n
// rootings come out consecutively, root 0 first.
type AllLabelledRooted struct {
	Postprocess

	free *AllLabelledFree
	cur  *core.FreeTree
	root int
}

// NewAllLabelledRooted creates the enumerator positioned on the first
// tree. Complexity: O(n).
func NewAllLabelledRooted(n int) (*AllLabelledRooted, error) {
	free, err := NewAllLabelledFree(n)
	if err != nil {
		return nil, err
	}
	// rooting is the only post-processing the wrapper delegates; the
	// inner enumerator hands trees over raw
	free.DeactivateAll()
	g := &AllLabelledRooted{Postprocess: defaultPostprocess(), free: free}
	if err := g.fetch(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *AllLabelledRooted) fetch() error {
	if g.free.End() {
		g.cur = nil
		return nil
	}
	t, err := g.free.Tree()
	if err != nil {
		return err
	}
	g.cur = t
	return nil
}

// Reset repositions the enumerator on the first tree. Complexity: O(n).
func (g *AllLabelledRooted) Reset() {
	g.free.Reset()
	g.root = 0
	_ = g.fetch()
}

// End reports whether the enumeration is over. Complexity: O(1).
func (g *AllLabelledRooted) End() bool { return g.cur == nil }

// Next advances to the next rooting, rolling over to the next free
// tree after root n-1. Amortized O(1) plus the roll-over decode.
func (g *AllLabelledRooted) Next() {
	if g.cur == nil {
		return
	}
	g.root++
	if g.root < g.cur.NumVertices() {
		return
	}
	g.root = 0
	g.free.Next()
	_ = g.fetch()
}

// Tree materializes the current rooted tree and applies the
// post-processing actions. Fails with ErrExhausted past the end.
// Complexity: O(n).
func (g *AllLabelledRooted) Tree() (*core.RootedTree, error) {
	if g.cur == nil {
		return nil, ErrExhausted
	}
	n := g.cur.NumVertices()
	if n == 0 {
		return core.NewRootedTree(0, 0), nil
	}
	t, err := g.cur.ToRooted(g.root)
	if err != nil {
		return nil, err
	}
	g.applyRooted(t)
	return t, nil
}

// YieldTree returns the current tree and advances.
func (g *AllLabelledRooted) YieldTree() (*core.RootedTree, error) {
	t, err := g.Tree()
	if err != nil {
		return nil, err
	}
	g.Next()
	return t, nil
}
