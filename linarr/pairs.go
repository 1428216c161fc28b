package linarr

import "github.com/treemetrics/linarr/core"

// PairIterator enumerates every unordered pair of independent edges
// (edges sharing no vertex) exactly once, in the order induced by the
// graph's edge iteration: the pair with the smaller first edge comes
// first. The crossing algorithms do not go through it; Brute checks
// the same independence condition inline.
//
//	it := linarr.NewPairIterator(g)
//	for it.Next() {
//		e, f := it.Pair()
//		...
//	}
type PairIterator struct {
	edges []core.Edge
	i, j  int
}

// NewPairIterator creates an iterator over the independent edge pairs
// of g. Complexity: O(n + m) setup, O(1) amortized per pair.
func NewPairIterator(g core.Graph) *PairIterator {
	return &PairIterator{edges: g.Edges(), i: 0, j: 0}
}

// Next advances to the following independent pair, reporting false on
// exhaustion.
func (it *PairIterator) Next() bool {
	for {
		it.j++
		if it.j >= len(it.edges) {
			it.i++
			it.j = it.i + 1
		}
		if it.j >= len(it.edges) {
			return false
		}
		if independent(it.edges[it.i], it.edges[it.j]) {
			return true
		}
	}
}

// Pair returns the current pair; valid only after Next returned true.
func (it *PairIterator) Pair() (core.Edge, core.Edge) {
	return it.edges[it.i], it.edges[it.j]
}

func independent(a, b core.Edge) bool {
	return a.From != b.From && a.From != b.To && a.To != b.From && a.To != b.To
}
