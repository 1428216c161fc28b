package generate

import "github.com/treemetrics/linarr/core"

// AllUnlabelledRooted enumerates every unlabelled rooted tree on n
// vertices, exactly once, by walking canonical level sequences from the
// path 1,2,...,n down to the star 1,2,2,...,2. A sequence is canonical
// when every subtree's level block is lexicographically no smaller than
// its next sibling's; each canonical sequence names one isomorphism
// class, rooted at vertex 0. The number of trees is t_n (OEIS A000081).
type AllUnlabelledRooted struct {
	Postprocess

	n    int
	L    []int // 1-based level sequence
	past bool
}

// NewAllUnlabelledRooted creates the enumerator positioned on the first
// tree. n == 0 yields an immediately exhausted enumerator.
// Complexity: O(n).
func NewAllUnlabelledRooted(n int) (*AllUnlabelledRooted, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	g := &AllUnlabelledRooted{Postprocess: defaultPostprocess(), n: n}
	g.Reset()
	return g, nil
}

// Reset repositions the enumerator on the path sequence 1,2,...,n.
// Complexity: O(n).
func (g *AllUnlabelledRooted) Reset() {
	g.past = g.n == 0
	g.L = make([]int, g.n+1)
	for i := 1; i <= g.n; i++ {
		g.L[i] = i
	}
}

// End reports whether the enumeration is over. Complexity: O(1).
func (g *AllUnlabelledRooted) End() bool { return g.past }

// Next advances to the next canonical sequence: locate the rightmost
// position p deeper than level 2, its nearest ancestor position q one
// level up, and tile the block q..p-1 over the tail. When no such p
// exists the star has been reached and the enumeration ends.
// Complexity: O(n).
func (g *AllUnlabelledRooted) Next() {
	if g.past {
		return
	}
	p := g.n
	for p >= 2 && g.L[p] <= 2 {
		p--
	}
	if p < 2 {
		g.past = true
		return
	}
	q := p - 1
	for g.L[q] != g.L[p]-1 {
		q--
	}
	d := p - q
	for i := p; i <= g.n; i++ {
		g.L[i] = g.L[i-d]
	}
}

// Tree materializes the current tree, rooted at vertex 0, and applies
// the post-processing actions. Fails with ErrExhausted past the end.
// Complexity: O(n).
func (g *AllUnlabelledRooted) Tree() (*core.RootedTree, error) {
	if g.past {
		return nil, ErrExhausted
	}
	t, err := levelSequenceToRootedTree(g.L, g.n)
	if err != nil {
		return nil, err
	}
	g.applyRooted(t)
	return t, nil
}

// YieldTree returns the current tree and advances.
func (g *AllUnlabelledRooted) YieldTree() (*core.RootedTree, error) {
	t, err := g.Tree()
	if err != nil {
		return nil, err
	}
	g.Next()
	return t, nil
}
