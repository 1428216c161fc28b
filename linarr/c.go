package linarr

import "github.com/treemetrics/linarr/core"

// Crossings computes C, the number of unordered pairs of independent
// edges whose endpoints interleave under the arrangement. The empty
// arrangement stands for the identity; WithAlgorithm selects the
// implementation (default Stack).
func Crossings(g core.Graph, arr *core.Arrangement, opts ...Option) (uint64, error) {
	o := buildOptions(opts)
	pos, err := positions(g, arr)
	if err != nil {
		return 0, err
	}
	es := positionEdges(g, pos)
	switch o.alg {
	case Brute:
		return crossingsBrute(es), nil
	case DP:
		return crossingsDP(g, pos, es), nil
	case Ladder:
		return crossingsLadder(g, pos, es), nil
	default:
		return crossingsStack(g, pos), nil
	}
}

// positionEdges maps every edge to its endpoint positions (l, r) with
// l < r, ordered by the graph's edge iteration.
func positionEdges(g core.Graph, pos []int) [][2]int {
	edges := g.Edges()
	es := make([][2]int, len(edges))
	for i, e := range edges {
		l, r := pos[e.From], pos[e.To]
		if l > r {
			l, r = r, l
		}
		es[i] = [2]int{l, r}
	}
	return es
}

// crossingsBrute checks every pair of edges. Two edges cross iff their
// position intervals properly interleave; edges sharing an endpoint
// position share a vertex and are skipped. Complexity: O(m^2).
func crossingsBrute(es [][2]int) uint64 {
	var c uint64
	for i := 0; i < len(es); i++ {
		for j := i + 1; j < len(es); j++ {
			a, b := es[i], es[j]
			if a[0] == b[0] || a[0] == b[1] || a[1] == b[0] || a[1] == b[1] {
				continue
			}
			if (a[0] < b[0] && b[0] < a[1] && a[1] < b[1]) ||
				(b[0] < a[0] && a[0] < b[1] && b[1] < a[1]) {
				c++
			}
		}
	}
	return c
}

// crossingsDP tabulates, for every position pair (i,j), the number of
// neighbours of the vertex at position i lying at positions greater
// than j, plus prefix sums of that table over i. Each edge (l,r) then
// contributes the edges opening strictly inside (l,r) and closing
// beyond r, in O(1). Complexity: O(n^2 + m) time, O(n^2) memory.
func crossingsDP(g core.Graph, pos []int, es [][2]int) uint64 {
	n := g.NumVertices()
	if n == 0 {
		return 0
	}
	inv := invertPositions(pos)

	// prefix[i][j] = sum over positions k <= i of R[k][j], where
	// R[k][j] counts neighbours of inv[k] at positions > j
	prefix := make([][]int, n)
	row := make([]int, n)
	for i := 0; i < n; i++ {
		for j := range row {
			row[j] = 0
		}
		for _, v := range neighboursAll(g, inv[i]) {
			row[pos[v]]++
		}
		suffix := make([]int, n)
		acc := 0
		for j := n - 1; j >= 0; j-- {
			suffix[j] = acc
			acc += row[j]
		}
		if i > 0 {
			for j := 0; j < n; j++ {
				suffix[j] += prefix[i-1][j]
			}
		}
		prefix[i] = suffix
	}

	var c uint64
	for _, e := range es {
		l, r := e[0], e[1]
		if r-l < 2 {
			continue
		}
		c += uint64(prefix[r-1][r] - prefix[l][r])
	}
	return c
}

// crossingsLadder recomputes, for one inner position at a time, the
// suffix neighbour counts of its vertex, then charges every edge
// spanning that position. Complexity: O(n*(n+m)) time, O(n) memory.
func crossingsLadder(g core.Graph, pos []int, es [][2]int) uint64 {
	n := g.NumVertices()
	if n == 0 {
		return 0
	}
	inv := invertPositions(pos)

	var c uint64
	suffix := make([]int, n+1)
	for i := 1; i < n-1; i++ {
		for j := range suffix {
			suffix[j] = 0
		}
		for _, v := range neighboursAll(g, inv[i]) {
			if pos[v] > i {
				suffix[pos[v]]++
			}
		}
		for j := n - 1; j >= 0; j-- {
			suffix[j] += suffix[j+1]
		}
		for _, e := range es {
			if e[0] < i && i < e[1] {
				// neighbours of inv[i] strictly beyond the right endpoint
				c += uint64(suffix[e[1]+1])
			}
		}
	}
	return c
}

// crossingsStack sweeps positions left to right over a Fenwick tree of
// open edges keyed by opening position. Closing an edge counts the
// still-open edges that opened strictly inside it; all edges closing
// at the same position are unmarked first so pairs sharing the current
// vertex are never counted. Complexity: O(m log n) time, O(n) memory.
func crossingsStack(g core.Graph, pos []int) uint64 {
	n := g.NumVertices()
	if n == 0 {
		return 0
	}
	inv := invertPositions(pos)
	ft := newFenwick(n)

	var c uint64
	for p := 0; p < n; p++ {
		u := inv[p]
		nb := neighboursAll(g, u)
		for _, v := range nb {
			if pos[v] < p {
				ft.add(pos[v], -1)
			}
		}
		for _, v := range nb {
			if q := pos[v]; q < p {
				c += uint64(ft.rangeSum(q+1, p-1))
			}
		}
		opens := 0
		for _, v := range nb {
			if pos[v] > p {
				opens++
			}
		}
		if opens > 0 {
			ft.add(p, opens)
		}
	}
	return c
}

// neighboursAll returns all neighbours of u regardless of direction,
// so directed trees are measured on their underlying undirected edges.
func neighboursAll(g core.Graph, u int) []int {
	out := g.Neighbours(u)
	dg, ok := g.(interface{ InNeighbours(int) []int })
	if !ok {
		return out
	}
	in := dg.InNeighbours(u)
	if len(in) == 0 {
		return out
	}
	all := make([]int, 0, len(out)+len(in))
	all = append(all, out...)
	all = append(all, in...)
	return all
}

func invertPositions(pos []int) []int {
	inv := make([]int, len(pos))
	for u, p := range pos {
		inv[p] = u
	}
	return inv
}

// fenwick is a 0-indexed binary indexed tree over positions.
type fenwick struct {
	tree []int
}

func newFenwick(n int) *fenwick { return &fenwick{tree: make([]int, n+1)} }

func (f *fenwick) add(i, delta int) {
	for i++; i < len(f.tree); i += i & (-i) {
		f.tree[i] += delta
	}
}

// prefixSum returns the sum over [0, i].
func (f *fenwick) prefixSum(i int) int {
	s := 0
	for i++; i > 0; i -= i & (-i) {
		s += f.tree[i]
	}
	return s
}

// rangeSum returns the sum over [lo, hi]; empty when lo > hi.
func (f *fenwick) rangeSum(lo, hi int) int {
	if lo > hi {
		return 0
	}
	if lo == 0 {
		return f.prefixSum(hi)
	}
	return f.prefixSum(hi) - f.prefixSum(lo-1)
}
