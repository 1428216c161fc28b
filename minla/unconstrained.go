package minla

import (
	"math"

	"github.com/treemetrics/linarr/core"
)

// anchor tells the recursion how the current component attaches to the
// rest of the arrangement: not at all, or through an edge leaving the
// block towards the left or the right.
type anchor int8

const (
	noAnchor anchor = iota
	leftAnchor
	rightAnchor
)

// Unconstrained computes the minimum of D over all arrangements of the
// tree, together with an arrangement realizing it. The strategy
// selected by WithStrategy defaults to Shiloach.
// Complexity: O(n^2.2) under Chung; Shiloach sweeps every straddle
// width and is cubic in the worst case.
func Unconstrained(t *core.FreeTree, opts ...Option) (uint64, *core.Arrangement, error) {
	o := buildOptions(opts)
	if o.strategy != Shiloach && o.strategy != Chung {
		return 0, nil, ErrUnknownStrategy
	}
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

	f := newForest(t)
	var pos []int
	if !o.costOnly {
		pos = make([]int, n)
	}
	var cost uint64
	if o.strategy == Chung {
		cost = f.chung(noAnchor, 0, 0, n-1, pos)
	} else {
		cost = f.shiloach(noAnchor, 0, 0, n-1, pos)
	}
	if o.costOnly {
		return cost, nil, nil
	}
	arr, err := core.FromPositions(pos)
	if err != nil {
		return 0, nil, err
	}
	return cost, arr, nil
}

// UnconstrainedCost is Unconstrained without materializing the
// arrangement, skipping the candidate buffer copies of the search.
func UnconstrainedCost(t *core.FreeTree, opts ...Option) (uint64, error) {
	cost, _, err := Unconstrained(t, append(opts, withCostOnly())...)
	return cost, err
}

func withCostOnly() Option {
	return func(o *options) { o.costOnly = true }
}

// chung arranges the component of v into positions [start,end], writing
// vertex positions into pos (nil when only the cost is wanted) and
// returning the minimum cost. The component is split around a centroid
// (unanchored) or around the anchor vertex: the q or p search decides
// how many of the largest subtrees are peeled off and scheduled on the
// two sides of the remaining central tree; when no feasible split
// index exists the largest subtree alone is detached.
func (f *forest) chung(a anchor, v, start, end int, pos []int) uint64 {
	size := end - start + 1
	if size == 1 {
		if pos != nil {
			pos[v] = start
		}
		return 0
	}
	if a == noAnchor {
		return f.chungFree(v, start, end, size, pos)
	}
	return f.chungAnchored(a, v, start, end, size, pos)
}

func (f *forest) chungFree(v, start, end, size int, pos []int) uint64 {
	u := f.centroid(v)
	_, ord := f.ordering(u)

	q, ok := calculateQ(size, ord)
	if !ok {
		// peel the largest subtree off and anchor both halves to the
		// single edge between them
		n0, t0 := ord[0].size, ord[0].root
		f.removeEdge(u, t0)
		c1 := f.chung(rightAnchor, t0, start, start+n0-1, pos)
		c2 := f.chung(leftAnchor, u, start+n0, end, pos)
		f.addEdge(u, t0)
		return c1 + c2 + 1
	}

	for i := 0; i <= 2*q; i++ {
		f.removeEdge(u, ord[i].root)
	}
	sizeRest := 0
	for i := 2*q + 1; i < len(ord); i++ {
		sizeRest += ord[i].size
	}

	best := uint64(math.MaxUint64)
	var bestPos []int
	for i := 0; i <= 2*q; i++ {
		sched := schedule(2*q+1, i, 2*q)
		f.addEdge(u, ord[i].root)

		var posAux []int
		if pos != nil {
			posAux = append([]int(nil), pos...)
		}
		var ci uint64
		startAux := start
		for j := 1; j <= q; j++ {
			sub := ord[sched[j]]
			ci += f.chung(rightAnchor, sub.root, startAux, startAux+sub.size-1, posAux)
			startAux += sub.size
		}
		endHere := startAux + ord[i].size + sizeRest
		ci += f.chung(noAnchor, u, startAux, endHere, posAux)
		startAux = endHere + 1
		for j := q + 1; j <= 2*q; j++ {
			sub := ord[sched[j]]
			ci += f.chung(leftAnchor, sub.root, startAux, startAux+sub.size-1, posAux)
			startAux += sub.size
		}

		// anchors of the side trees span everything between them and
		// the central block
		ci += uint64(size) * uint64(q)
		var over uint64
		for j := 1; j <= q; j++ {
			over += uint64(q-j+1) * uint64(ord[sched[j]].size+ord[sched[2*q-j+1]].size)
		}
		ci -= over
		ci += uint64(q)

		if ci < best {
			best = ci
			bestPos = posAux
		}
		f.removeEdge(u, ord[i].root)
	}
	for i := 0; i <= 2*q; i++ {
		f.addEdge(u, ord[i].root)
	}
	if pos != nil {
		copy(pos, bestPos)
	}
	return best
}

func (f *forest) chungAnchored(a anchor, v, start, end, size int, pos []int) uint64 {
	_, ord := f.ordering(v)

	p, ok := calculateP(size, ord)
	if !ok {
		n0, t0 := ord[0].size, ord[0].root
		f.removeEdge(v, t0)
		var c1, c2 uint64
		if a == leftAnchor {
			c1 = f.chung(noAnchor, v, start, end-n0, pos)
			c2 = f.chung(leftAnchor, t0, end-n0+1, end, pos)
		} else {
			c1 = f.chung(rightAnchor, t0, start, start+n0-1, pos)
			c2 = f.chung(noAnchor, v, start+n0, end, pos)
		}
		f.addEdge(v, t0)
		return c1 + c2 + uint64(size-n0)
	}

	for i := 0; i <= 2*p+1; i++ {
		f.removeEdge(v, ord[i].root)
	}
	sizeRest := 0
	for i := 2*p + 2; i < len(ord); i++ {
		sizeRest += ord[i].size
	}

	best := uint64(math.MaxUint64)
	var bestPos []int
	for i := 0; i <= 2*p+1; i++ {
		sched := schedule(2*p+2, i, 2*p+1)
		f.addEdge(v, ord[i].root)

		var posAux []int
		if pos != nil {
			posAux = append([]int(nil), pos...)
		}
		var ci uint64
		if a == leftAnchor {
			startAux := start
			for j := 1; j <= p; j++ {
				sub := ord[sched[j]]
				ci += f.chung(rightAnchor, sub.root, startAux, startAux+sub.size-1, posAux)
				startAux += sub.size
			}
			ci += f.chung(noAnchor, v, startAux, startAux+ord[i].size+sizeRest, posAux)
			startAux += ord[i].size + 1 + sizeRest
			for j := p + 1; j <= 2*p+1; j++ {
				sub := ord[sched[j]]
				ci += f.chung(leftAnchor, sub.root, startAux, startAux+sub.size-1, posAux)
				startAux += sub.size
			}
		} else {
			endAux := end
			for j := 1; j <= p; j++ {
				sub := ord[sched[j]]
				ci += f.chung(leftAnchor, sub.root, endAux-sub.size+1, endAux, posAux)
				endAux -= sub.size
			}
			ci += f.chung(noAnchor, v, endAux-ord[i].size-sizeRest, endAux, posAux)
			endAux -= ord[i].size + 1 + sizeRest
			for j := p + 1; j <= 2*p+1; j++ {
				sub := ord[sched[j]]
				ci += f.chung(rightAnchor, sub.root, endAux-sub.size+1, endAux, posAux)
				endAux -= sub.size
			}
		}

		ci += uint64(size) * uint64(p+1)
		ci -= uint64(p+1) * uint64(ord[sched[2*p+1]].size)
		var over uint64
		for j := 1; j <= p; j++ {
			over += uint64(p-j+1) * uint64(ord[sched[j]].size+ord[sched[2*p-j+1]].size)
		}
		ci -= over
		ci += uint64(p)

		if ci < best {
			best = ci
			bestPos = posAux
		}
		f.removeEdge(v, ord[i].root)
	}
	for i := 0; i <= 2*p+1; i++ {
		f.addEdge(v, ord[i].root)
	}
	if pos != nil {
		copy(pos, bestPos)
	}
	return best
}

// calculateQ searches for the split index q of an unanchored tree of
// the given size with subtrees ord, largest first. It reports false
// when no feasible index exists, which is distinct from a valid q of 0.
func calculateQ(size int, ord []subtree) (int, bool) {
	k := len(ord) - 1
	t0 := ord[0].size

	q := k / 2
	sum := 0
	for i := 0; i <= 2*q; i++ {
		sum += ord[i].size
	}
	z := size - sum
	threshold := (t0+2)/2 + (z+2)/2
	t2q := ord[2*q].size

	for t2q <= threshold {
		z += ord[2*q].size
		if q > 0 {
			z += ord[2*q-1].size
		}
		threshold = (t0+2)/2 + (z+2)/2
		if q == 0 {
			return 0, false
		}
		q--
		t2q = ord[2*q].size
	}
	return q, true
}

// calculateP is the anchored counterpart of calculateQ.
func calculateP(size int, ord []subtree) (int, bool) {
	if len(ord) < 2 {
		return 0, false
	}
	k := len(ord) - 1
	t0 := ord[0].size

	p := (k - 1) / 2
	sum := 0
	for i := 0; i <= 2*p+1; i++ {
		sum += ord[i].size
	}
	y := size - sum
	threshold := (t0+2)/2 + (y+2)/2
	tp := ord[2*p+1].size

	for tp <= threshold {
		y += ord[2*p+1].size + ord[2*p].size
		threshold = (t0+2)/2 + (y+2)/2
		if p == 0 {
			return 0, false
		}
		p--
		tp = ord[2*p+1].size
	}
	return p, true
}

// schedule fills the placement slots 1..slots-1 with the subtree
// indices 0..last minus skip, outside-in: the largest remaining
// subtree lands on the outermost free slot, alternating ends. Slot 0
// is never used.
func schedule(slots, skip, last int) []int {
	v := make([]int, slots)
	pos := slots - 1
	rightPos, leftPos := pos, 1
	for j := 0; j <= last; j++ {
		if j == skip {
			continue
		}
		v[pos] = j
		if pos > leftPos {
			rightPos--
			pos = leftPos
		} else {
			leftPos++
			pos = rightPos
		}
	}
	return v
}
