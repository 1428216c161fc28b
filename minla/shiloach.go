package minla

import "math"

// shiloach arranges the component of v into positions [start,end] by
// Shiloach's divide and conquer, writing vertex positions into pos
// (nil when only the cost is wanted) and returning the minimum cost.
// Where Chung's recursion derives a single straddle width from the
// subtree sizes and searches which subtree joins the central block,
// Shiloach's sweeps every width: for each p the p largest subtrees are
// detached onto each flank, largest outermost, and the remainder stays
// central. The unbalanced split that detaches only the largest subtree
// is always a candidate too.
func (f *forest) shiloach(a anchor, v, start, end int, pos []int) uint64 {
	size := end - start + 1
	if size == 1 {
		if pos != nil {
			pos[v] = start
		}
		return 0
	}
	if a == noAnchor {
		return f.shiloachFree(v, start, end, size, pos)
	}
	return f.shiloachAnchored(a, v, start, end, size, pos)
}

func (f *forest) shiloachFree(v, start, end, size int, pos []int) uint64 {
	u := f.centroid(v)
	_, ord := f.ordering(u)
	k := len(ord)

	best := uint64(math.MaxUint64)
	var bestPos []int

	// unbalanced split: the largest subtree against everything else,
	// both halves anchored to the edge between them
	{
		n0, t0 := ord[0].size, ord[0].root
		f.removeEdge(u, t0)
		var posAux []int
		if pos != nil {
			posAux = append([]int(nil), pos...)
		}
		c := f.shiloach(rightAnchor, t0, start, start+n0-1, posAux)
		c += f.shiloach(leftAnchor, u, start+n0, end, posAux)
		c++
		f.addEdge(u, t0)
		if c < best {
			best, bestPos = c, posAux
		}
	}

	// straddles: for each p, the 2p largest subtrees flank the central
	// tree, p per side, largest outermost, each anchored inward
	for p := 1; 2*p <= k; p++ {
		for i := 0; i < 2*p; i++ {
			f.removeEdge(u, ord[i].root)
		}
		sched := schedule(2*p+1, 2*p, 2*p)
		sizeRest := 0
		for i := 2 * p; i < k; i++ {
			sizeRest += ord[i].size
		}

		var posAux []int
		if pos != nil {
			posAux = append([]int(nil), pos...)
		}
		var ci uint64
		startAux := start
		for j := 1; j <= p; j++ {
			sub := ord[sched[j]]
			ci += f.shiloach(rightAnchor, sub.root, startAux, startAux+sub.size-1, posAux)
			startAux += sub.size
		}
		ci += f.shiloach(noAnchor, u, startAux, startAux+sizeRest, posAux)
		startAux += sizeRest + 1
		for j := p + 1; j <= 2*p; j++ {
			sub := ord[sched[j]]
			ci += f.shiloach(leftAnchor, sub.root, startAux, startAux+sub.size-1, posAux)
			startAux += sub.size
		}

		// anchors of the flank trees span everything between them and
		// the central block; the two sides cancel around the centroid
		ci += uint64(size) * uint64(p)
		var over uint64
		for j := 1; j <= p; j++ {
			over += uint64(p-j+1) * uint64(ord[sched[j]].size+ord[sched[2*p-j+1]].size)
		}
		ci -= over
		ci += uint64(p)

		for i := 0; i < 2*p; i++ {
			f.addEdge(u, ord[i].root)
		}
		if ci < best {
			best, bestPos = ci, posAux
		}
	}

	if pos != nil {
		copy(pos, bestPos)
	}
	return best
}

func (f *forest) shiloachAnchored(a anchor, v, start, end, size int, pos []int) uint64 {
	_, ord := f.ordering(v)
	k := len(ord)

	best := uint64(math.MaxUint64)
	var bestPos []int

	// unbalanced split: the largest subtree detaches past the central
	// tree, on the side away from the anchor edge
	{
		n0, t0 := ord[0].size, ord[0].root
		f.removeEdge(v, t0)
		var posAux []int
		if pos != nil {
			posAux = append([]int(nil), pos...)
		}
		var c uint64
		if a == leftAnchor {
			c = f.shiloach(noAnchor, v, start, end-n0, posAux)
			c += f.shiloach(leftAnchor, t0, end-n0+1, end, posAux)
		} else {
			c = f.shiloach(rightAnchor, t0, start, start+n0-1, posAux)
			c += f.shiloach(noAnchor, v, start+n0, end, posAux)
		}
		c += uint64(size - n0)
		f.addEdge(v, t0)
		if c < best {
			best, bestPos = c, posAux
		}
	}

	// straddles: 2p+1 largest subtrees flank the central tree, the odd
	// one out on the side away from the anchor edge so that its span
	// pairs with the anchor's
	for p := 0; 2*p+1 <= k; p++ {
		for i := 0; i <= 2*p; i++ {
			f.removeEdge(v, ord[i].root)
		}
		sched := schedule(2*p+2, 2*p+1, 2*p+1)
		sizeRest := 0
		for i := 2*p + 1; i < k; i++ {
			sizeRest += ord[i].size
		}

		var posAux []int
		if pos != nil {
			posAux = append([]int(nil), pos...)
		}
		var ci uint64
		if a == leftAnchor {
			startAux := start
			for j := 1; j <= p; j++ {
				sub := ord[sched[j]]
				ci += f.shiloach(rightAnchor, sub.root, startAux, startAux+sub.size-1, posAux)
				startAux += sub.size
			}
			ci += f.shiloach(noAnchor, v, startAux, startAux+sizeRest, posAux)
			startAux += sizeRest + 1
			for j := p + 1; j <= 2*p+1; j++ {
				sub := ord[sched[j]]
				ci += f.shiloach(leftAnchor, sub.root, startAux, startAux+sub.size-1, posAux)
				startAux += sub.size
			}
		} else {
			endAux := end
			for j := 1; j <= p; j++ {
				sub := ord[sched[j]]
				ci += f.shiloach(leftAnchor, sub.root, endAux-sub.size+1, endAux, posAux)
				endAux -= sub.size
			}
			ci += f.shiloach(noAnchor, v, endAux-sizeRest, endAux, posAux)
			endAux -= sizeRest + 1
			for j := p + 1; j <= 2*p+1; j++ {
				sub := ord[sched[j]]
				ci += f.shiloach(rightAnchor, sub.root, endAux-sub.size+1, endAux, posAux)
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

		for i := 0; i <= 2*p; i++ {
			f.addEdge(v, ord[i].root)
		}
		if ci < best {
			best, bestPos = ci, posAux
		}
	}

	if pos != nil {
		copy(pos, bestPos)
	}
	return best
}
