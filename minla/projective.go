package minla

import (
	"github.com/treemetrics/linarr/core"
	"github.com/treemetrics/linarr/sorting"
)

// place says where a vertex sits relative to its parent's interval:
// the whole-tree root, or attached from the left or the right.
type place int8

const (
	placeRoot place = iota
	placeLeft
	placeRight
)

// Projective computes the minimum of D over arrangements that are
// planar and leave the root uncovered, together with an arrangement
// realizing it. Subtree sizes are computed on the tree if missing.
// Complexity: O(n).
func Projective(t *core.RootedTree) (uint64, *core.Arrangement, error) {
	if t == nil {
		return 0, nil, ErrTreeNil
	}
	n := t.NumVertices()
	if n == 0 {
		return 0, core.Identity(0), nil
	}
	if !t.IsTree() {
		return 0, nil, core.ErrNotATree
	}
	if n == 1 {
		return 0, core.Identity(1), nil
	}
	if !t.HasSizeSubtrees() {
		if err := t.ComputeSizeSubtrees(); err != nil {
			return 0, nil, err
		}
	}

	e := newEmbedder(t)
	d := e.intervalOf(t.Root(), placeRoot)

	inv := make([]int, n)
	next := 0
	e.flatten(t.Root(), inv, &next)
	arr, err := core.FromInverse(inv)
	if err != nil {
		return 0, nil, err
	}
	return d, arr, nil
}

// embedder carries the children of every vertex sorted increasingly by
// subtree size, and the interval each vertex's block flattens into.
type embedder struct {
	children  [][]subtree
	intervals [][]int
}

func newEmbedder(t *core.RootedTree) *embedder {
	n := t.NumVertices()
	e := &embedder{
		children:  make([][]subtree, n),
		intervals: make([][]int, n),
	}
	// one global counting pass orders every adjacency list at once
	all := make([]core.Edge, 0, n-1)
	for u := 0; u < n; u++ {
		for _, v := range t.Children(u) {
			all = append(all, core.Edge{From: u, To: v})
		}
	}
	sz := func(v int) int {
		s, _ := t.SizeSubtree(v)
		return s
	}
	sorting.Counting(all, n, sorting.Increasing, func(e core.Edge) int { return sz(e.To) })
	for _, ed := range all {
		e.children[ed.From] = append(e.children[ed.From], subtree{root: ed.To, size: sz(ed.To)})
	}
	return e
}

// intervalOf lays out r and its descendants as one contiguous block.
// Children go alternately left and right of r, smallest nearest, the
// starting side chosen so the lighter flank faces the parent edge.
// Returns the sum of the lengths of the edges inside the block plus
// the anchor of the parent edge: the vertices between r and the block
// end the parent attaches to.
func (e *embedder) intervalOf(r int, pl place) uint64 {
	kids := e.children[r]
	iv := make([]int, len(kids)+1)
	e.intervals[r] = iv

	if len(kids) == 0 {
		iv[0] = r
		return 0
	}
	if len(kids) == 1 {
		vi := kids[0].root
		if pl == placeLeft {
			iv[0], iv[1] = vi, r
			return e.intervalOf(vi, placeLeft) + 1
		}
		iv[0], iv[1] = r, vi
		return e.intervalOf(vi, placeRight) + 1
	}

	rootPos := posInInterval(len(iv), pl)
	iv[rootPos] = r
	leftPos, rightPos := rootPos-1, rootPos+1
	toLeft := startLeft(len(iv), pl)

	var accLeft, accRight uint64
	var dSub, dRoot uint64
	for _, k := range kids {
		if toLeft {
			dSub += e.intervalOf(k.root, placeLeft)
			dRoot += accLeft + 1
			iv[leftPos] = k.root
			leftPos--
			accLeft += uint64(k.size)
		} else {
			dSub += e.intervalOf(k.root, placeRight)
			dRoot += accRight + 1
			iv[rightPos] = k.root
			rightPos++
			accRight += uint64(k.size)
		}
		toLeft = !toLeft
	}

	switch pl {
	case placeLeft:
		dSub += accRight
	case placeRight:
		dSub += accLeft
	}
	return dSub + dRoot
}

// flatten writes the preorder expansion of r's interval into inv.
func (e *embedder) flatten(r int, inv []int, next *int) {
	for _, v := range e.intervals[r] {
		if v == r {
			inv[*next] = r
			*next++
		} else {
			e.flatten(v, inv, next)
		}
	}
}

func posInInterval(size int, pl place) int {
	if size == 1 {
		return 0
	}
	switch pl {
	case placeLeft:
		return size / 2
	case placeRight:
		if size%2 == 1 {
			return size / 2
		}
		return size/2 - 1
	default:
		return size / 2
	}
}

// startLeft reports whether the first child goes to the left of r.
func startLeft(size int, pl place) bool {
	switch pl {
	case placeLeft:
		return size%2 == 0
	case placeRight:
		return size%2 == 1
	default:
		return true
	}
}
