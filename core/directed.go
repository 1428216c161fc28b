package core

import (
	"sort"

	"github.com/treemetrics/linarr/sorting"
)

// Directed is an adjacency-list directed graph over the vertex set
// 0..n-1. Every edge is stored twice: in the out-list of its tail and
// the in-list of its head. No self-loops, no parallel edges (opposite
// orientations of the same pair are two distinct edges).
type Directed struct {
	out        [][]int
	in         [][]int
	m          int
	normalized bool
}

// NewDirected creates a directed graph with n isolated vertices.
// Complexity: O(n).
func NewDirected(n int) *Directed {
	return &Directed{out: make([][]int, n), in: make([][]int, n), normalized: true}
}

// NumVertices returns the number of vertices. Complexity: O(1).
func (g *Directed) NumVertices() int { return len(g.out) }

// NumEdges returns the number of edges. Complexity: O(1).
func (g *Directed) NumEdges() int { return g.m }

// IsDirected reports true: edges are ordered (tail, head) pairs.
func (g *Directed) IsDirected() bool { return true }

// IsNormalized reports whether every adjacency list (in and out) is
// strictly ascending. Complexity: O(1).
func (g *Directed) IsNormalized() bool { return g.normalized }

// OutDegree returns the number of out-neighbours of u. Complexity: O(1).
func (g *Directed) OutDegree(u int) (int, error) {
	if u < 0 || u >= len(g.out) {
		return 0, ErrIndexOutOfRange
	}
	return len(g.out[u]), nil
}

// InDegree returns the number of in-neighbours of u. Complexity: O(1).
func (g *Directed) InDegree(u int) (int, error) {
	if u < 0 || u >= len(g.in) {
		return 0, ErrIndexOutOfRange
	}
	return len(g.in[u]), nil
}

// Neighbours returns the out-neighbours of u. The slice is owned by the
// graph; callers must not mutate it. Complexity: O(1).
func (g *Directed) Neighbours(u int) []int { return g.out[u] }

// InNeighbours returns the in-neighbours of u. The slice is owned by
// the graph; callers must not mutate it. Complexity: O(1).
func (g *Directed) InNeighbours(u int) []int { return g.in[u] }

// HasEdge reports whether the directed edge (u,v) exists.
// Complexity: O(log d) on normalized graphs, O(d) otherwise.
func (g *Directed) HasEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= len(g.out) || v >= len(g.out) {
		return false
	}
	return containsNeighbour(g.out[u], v, g.normalized)
}

// AddEdge inserts the directed edge (u,v). Self-loops and duplicates
// fail with ErrInvalidEdge; out-of-range endpoints fail with
// ErrIndexOutOfRange. Options control renormalization.
func (g *Directed) AddEdge(u, v int, opts ...EdgeOption) error {
	o := buildEdgeOpts(opts)
	if err := g.validateNewEdge(u, v); err != nil {
		return err
	}
	g.out[u] = append(g.out[u], v)
	g.in[v] = append(g.in[v], u)
	g.m++
	g.finishMutation(o, [][]int{g.out[u], g.in[v]})
	return nil
}

// AddEdges inserts every edge in es. The whole batch is validated
// first; on any invalid edge nothing is inserted.
func (g *Directed) AddEdges(es []Edge, opts ...EdgeOption) error {
	o := buildEdgeOpts(opts)
	if err := g.validateNewEdges(es); err != nil {
		return err
	}
	for _, e := range es {
		g.out[e.From] = append(g.out[e.From], e.To)
		g.in[e.To] = append(g.in[e.To], e.From)
	}
	g.m += len(es)
	g.finishMutation(o, nil)
	return nil
}

// SetEdges replaces the whole edge set with es.
func (g *Directed) SetEdges(es []Edge, opts ...EdgeOption) error {
	o := buildEdgeOpts(opts)
	fresh := NewDirected(len(g.out))
	if err := fresh.validateNewEdges(es); err != nil {
		return err
	}
	for _, e := range es {
		fresh.out[e.From] = append(fresh.out[e.From], e.To)
		fresh.in[e.To] = append(fresh.in[e.To], e.From)
	}
	g.out, g.in, g.m = fresh.out, fresh.in, len(es)
	g.normalized = false
	g.finishMutation(o, nil)
	return nil
}

// RemoveEdge deletes the directed edge (u,v). A missing edge fails with
// ErrInvalidEdge. Order of the remaining neighbours is preserved.
func (g *Directed) RemoveEdge(u, v int) error {
	if u < 0 || v < 0 || u >= len(g.out) || v >= len(g.out) {
		return ErrIndexOutOfRange
	}
	if !g.HasEdge(u, v) {
		return ErrInvalidEdge
	}
	g.out[u] = removeNeighbour(g.out[u], v)
	g.in[v] = removeNeighbour(g.in[v], u)
	g.m--
	return nil
}

// RemoveVertex deletes u together with its incident edges, relabelling
// vertices above u down by one. Complexity: O(n + m).
func (g *Directed) RemoveVertex(u int) error {
	if u < 0 || u >= len(g.out) {
		return ErrIndexOutOfRange
	}
	g.m -= len(g.out[u]) + len(g.in[u])
	g.out = append(g.out[:u], g.out[u+1:]...)
	g.in = append(g.in[:u], g.in[u+1:]...)
	for i := range g.out {
		g.out[i] = relabelAfterRemoval(g.out[i], u)
		g.in[i] = relabelAfterRemoval(g.in[i], u)
	}
	return nil
}

// Normalize sorts every in- and out-list strictly ascending and sets
// the normalized flag. Idempotent. Complexity: O(n + m).
func (g *Directed) Normalize() {
	bs := sorting.NewBitSorter(len(g.out))
	for u := range g.out {
		bs.Sort(g.out[u])
		bs.Sort(g.in[u])
	}
	g.normalized = true
}

// CheckNormalized recomputes the normalized flag with a linear scan and
// returns it. Complexity: O(n + m).
func (g *Directed) CheckNormalized() bool {
	g.normalized = scanNormalized(g.out) && scanNormalized(g.in)
	return g.normalized
}

// Edges returns every directed edge once, grouped by tail.
// Complexity: O(n + m).
func (g *Directed) Edges() []Edge {
	es := make([]Edge, 0, g.m)
	for u := range g.out {
		for _, v := range g.out[u] {
			es = append(es, Edge{From: u, To: v})
		}
	}
	return es
}

// DisjointUnion appends a copy of other to g, relabelling other's
// vertices by +n. Complexity: O(n' + m').
func (g *Directed) DisjointUnion(other *Directed) {
	shift := len(g.out)
	g.out = appendShifted(g.out, other.out, shift)
	g.in = appendShifted(g.in, other.in, shift)
	g.m += other.m
	g.normalized = g.normalized && other.normalized
}

// ToUndirected drops edge orientation, merging opposite edges into one.
// Complexity: O(n + m).
func (g *Directed) ToUndirected() *Undirected {
	u := NewUndirected(len(g.out))
	// rows fill out of order, so membership tests must scan linearly
	u.normalized = false
	for t := range g.out {
		for _, h := range g.out[t] {
			if !u.HasEdge(t, h) {
				u.adj[t] = append(u.adj[t], h)
				u.adj[h] = append(u.adj[h], t)
				u.m++
			}
		}
	}
	u.Normalize()
	return u
}

// Clone returns a deep copy of g. Complexity: O(n + m).
func (g *Directed) Clone() *Directed {
	return &Directed{out: cloneAdj(g.out), in: cloneAdj(g.in), m: g.m, normalized: g.normalized}
}

func (g *Directed) validateNewEdge(u, v int) error {
	if u < 0 || v < 0 || u >= len(g.out) || v >= len(g.out) {
		return ErrIndexOutOfRange
	}
	if u == v || g.HasEdge(u, v) {
		return ErrInvalidEdge
	}
	return nil
}

func (g *Directed) validateNewEdges(es []Edge) error {
	seen := make(map[Edge]struct{}, len(es))
	for _, e := range es {
		if err := g.validateNewEdge(e.From, e.To); err != nil {
			return err
		}
		if _, dup := seen[e]; dup {
			return ErrInvalidEdge
		}
		seen[e] = struct{}{}
	}
	return nil
}

func (g *Directed) finishMutation(o edgeOpts, touched [][]int) {
	switch {
	case o.normalize && touched != nil:
		for _, row := range touched {
			sort.Ints(row)
		}
		if !g.normalized {
			g.CheckNormalized()
		}
	case o.normalize:
		g.Normalize()
	case o.check:
		g.CheckNormalized()
	default:
		g.normalized = false
	}
}

func appendShifted(dst, src [][]int, shift int) [][]int {
	for _, nb := range src {
		row := make([]int, len(nb))
		for i, v := range nb {
			row[i] = v + shift
		}
		dst = append(dst, row)
	}
	return dst
}
