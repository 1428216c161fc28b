package generate

import "github.com/treemetrics/linarr/core"

// AllLabelledFree enumerates every labelled free tree on n vertices,
// exactly once, by walking the Prüfer sequences of length n-2 in
// lexicographic order and decoding each. There are n^(n-2) trees.
type AllLabelledFree struct {
	Postprocess

	n    int
	seq  []int
	past bool
}

// NewAllLabelledFree creates the enumerator positioned on the first
// tree. Complexity: O(n).
func NewAllLabelledFree(n int) (*AllLabelledFree, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	g := &AllLabelledFree{Postprocess: defaultPostprocess(), n: n}
	g.Reset()
	return g, nil
}

// Reset repositions the enumerator on the first tree, the one decoded
// from the all-zero sequence. Complexity: O(n).
func (g *AllLabelledFree) Reset() {
	m := 0
	if g.n > 2 {
		m = g.n - 2
	}
	g.seq = make([]int, m)
	g.past = false
}

// End reports whether the enumeration is over. Complexity: O(1).
func (g *AllLabelledFree) End() bool { return g.past }

// Next advances to the next Prüfer sequence. Amortized O(1); O(n) in
// the worst case.
func (g *AllLabelledFree) Next() {
	if g.past {
		return
	}
	if g.n <= 2 {
		g.past = true
		return
	}
	i := len(g.seq) - 1
	for i >= 0 && g.seq[i] == g.n-1 {
		i--
	}
	if i < 0 {
		g.past = true
		return
	}
	g.seq[i]++
	for j := i + 1; j < len(g.seq); j++ {
		g.seq[j] = 0
	}
}

// Tree decodes the current sequence into an owned tree and applies the
// post-processing actions. Fails with ErrExhausted past the end.
// Complexity: O(n).
func (g *AllLabelledFree) Tree() (*core.FreeTree, error) {
	if g.past {
		return nil, ErrExhausted
	}
	t, err := pruferDecode(g.seq, g.n)
	if err != nil {
		return nil, err
	}
	g.applyFree(t)
	return t, nil
}

// YieldTree returns the current tree and advances.
func (g *AllLabelledFree) YieldTree() (*core.FreeTree, error) {
	t, err := g.Tree()
	if err != nil {
		return nil, err
	}
	g.Next()
	return t, nil
}

// pruferDecode builds the labelled tree encoded by a Prüfer sequence of
// length n-2 over the labels 0..n-1, in O(n) by the pointer-and-leaf
// scan of Alonso. The last edge always attaches to vertex n-1.
func pruferDecode(seq []int, n int) (*core.FreeTree, error) {
	t := core.NewFreeTree(n)
	if n <= 1 {
		return t, nil
	}
	if n == 2 {
		if err := t.AddEdge(0, 1); err != nil {
			return nil, err
		}
		return t, nil
	}

	deg := make([]int, n)
	for i := range deg {
		deg[i] = 1
	}
	for _, v := range seq {
		deg[v]++
	}

	es := make([]core.Edge, 0, n-1)
	ptr := 0
	for deg[ptr] != 1 {
		ptr++
	}
	leaf := ptr
	for _, v := range seq {
		es = append(es, core.Edge{From: leaf, To: v})
		deg[v]--
		if deg[v] == 1 && v < ptr {
			leaf = v
		} else {
			ptr++
			for deg[ptr] != 1 {
				ptr++
			}
			leaf = ptr
		}
	}
	es = append(es, core.Edge{From: leaf, To: n - 1})
	if err := t.SetEdges(es); err != nil {
		return nil, err
	}
	return t, nil
}
