package core

import (
	"sort"

	"github.com/treemetrics/linarr/sorting"
)

// Undirected is an adjacency-list undirected graph over the vertex set
// 0..n-1. No self-loops, no parallel edges. The zero value is the empty
// graph on zero vertices; use NewUndirected for a sized graph.
type Undirected struct {
	adj        [][]int
	m          int
	normalized bool
}

// NewUndirected creates an undirected graph with n isolated vertices.
// A graph without edges is trivially normalized.
// Complexity: O(n).
func NewUndirected(n int) *Undirected {
	return &Undirected{adj: make([][]int, n), normalized: true}
}

// NumVertices returns the number of vertices. Complexity: O(1).
func (g *Undirected) NumVertices() int { return len(g.adj) }

// NumEdges returns the number of edges. Complexity: O(1).
func (g *Undirected) NumEdges() int { return g.m }

// IsDirected reports false: edges are unordered pairs.
func (g *Undirected) IsDirected() bool { return false }

// IsNormalized reports whether every adjacency list is strictly
// ascending. Complexity: O(1).
func (g *Undirected) IsNormalized() bool { return g.normalized }

// Degree returns the number of neighbours of u.
// Complexity: O(1).
func (g *Undirected) Degree(u int) (int, error) {
	if u < 0 || u >= len(g.adj) {
		return 0, ErrIndexOutOfRange
	}
	return len(g.adj[u]), nil
}

// Neighbours returns the adjacency sequence of u. The slice is owned by
// the graph; callers must not mutate it. Complexity: O(1).
func (g *Undirected) Neighbours(u int) []int { return g.adj[u] }

// HasEdge reports whether the edge (u,v) exists, in either orientation.
// Complexity: O(log d) on normalized graphs, O(d) otherwise, with d the
// smaller of the two endpoint degrees.
func (g *Undirected) HasEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= len(g.adj) || v >= len(g.adj) {
		return false
	}
	// probe the smaller adjacency
	if len(g.adj[u]) > len(g.adj[v]) {
		u, v = v, u
	}
	return containsNeighbour(g.adj[u], v, g.normalized)
}

// AddEdge inserts the undirected edge (u,v). Inserting a self-loop or a
// duplicate edge fails with ErrInvalidEdge; out-of-range endpoints fail
// with ErrIndexOutOfRange. Options control renormalization.
// Complexity: O(d log d) when normalizing, O(d) otherwise.
func (g *Undirected) AddEdge(u, v int, opts ...EdgeOption) error {
	o := buildEdgeOpts(opts)
	if err := g.validateNewEdge(u, v); err != nil {
		return err
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.m++
	g.finishMutation(o, []int{u, v})
	g.invalidateCaches()
	return nil
}

// AddEdges inserts every edge in es. The whole batch is validated first;
// on any invalid edge nothing is inserted. Normalization, when
// requested, happens once at the end.
// Complexity: O(|es| + normalization).
func (g *Undirected) AddEdges(es []Edge, opts ...EdgeOption) error {
	o := buildEdgeOpts(opts)
	if err := g.validateNewEdges(es); err != nil {
		return err
	}
	for _, e := range es {
		g.adj[e.From] = append(g.adj[e.From], e.To)
		g.adj[e.To] = append(g.adj[e.To], e.From)
	}
	g.m += len(es)
	g.finishMutation(o, nil)
	g.invalidateCaches()
	return nil
}

// SetEdges replaces the whole edge set with es.
// Complexity: O(n + |es| + normalization).
func (g *Undirected) SetEdges(es []Edge, opts ...EdgeOption) error {
	o := buildEdgeOpts(opts)
	fresh := NewUndirected(len(g.adj))
	if err := fresh.validateNewEdges(es); err != nil {
		return err
	}
	for _, e := range es {
		fresh.adj[e.From] = append(fresh.adj[e.From], e.To)
		fresh.adj[e.To] = append(fresh.adj[e.To], e.From)
	}
	g.adj = fresh.adj
	g.m = len(es)
	g.normalized = false
	g.finishMutation(o, nil)
	g.invalidateCaches()
	return nil
}

// RemoveEdge deletes the edge (u,v). A missing edge fails with
// ErrInvalidEdge. Removal preserves the relative order of the remaining
// neighbours, so a normalized graph stays normalized.
// Complexity: O(d).
func (g *Undirected) RemoveEdge(u, v int) error {
	if u < 0 || v < 0 || u >= len(g.adj) || v >= len(g.adj) {
		return ErrIndexOutOfRange
	}
	if !g.HasEdge(u, v) {
		return ErrInvalidEdge
	}
	g.adj[u] = removeNeighbour(g.adj[u], v)
	g.adj[v] = removeNeighbour(g.adj[v], u)
	g.m--
	g.invalidateCaches()
	return nil
}

// RemoveVertex deletes u together with its incident edges. Vertices
// above u are relabelled down by one so the vertex set stays dense.
// Complexity: O(n + m).
func (g *Undirected) RemoveVertex(u int) error {
	if u < 0 || u >= len(g.adj) {
		return ErrIndexOutOfRange
	}
	g.m -= len(g.adj[u])
	g.adj = append(g.adj[:u], g.adj[u+1:]...)
	for i := range g.adj {
		g.adj[i] = relabelAfterRemoval(g.adj[i], u)
	}
	g.invalidateCaches()
	return nil
}

// Normalize sorts every adjacency list in strictly ascending order and
// sets the normalized flag. Idempotent.
// Complexity: O(n + m) using a shared bitset.
func (g *Undirected) Normalize() {
	bs := sorting.NewBitSorter(len(g.adj))
	for u := range g.adj {
		bs.Sort(g.adj[u])
	}
	g.normalized = true
}

// CheckNormalized recomputes the normalized flag with a linear scan and
// returns it. Complexity: O(n + m).
func (g *Undirected) CheckNormalized() bool {
	g.normalized = scanNormalized(g.adj)
	return g.normalized
}

// Edges returns every edge once, in canonical (min,max) form, ordered by
// the smaller endpoint. Complexity: O(n + m).
func (g *Undirected) Edges() []Edge {
	es := make([]Edge, 0, g.m)
	for u := range g.adj {
		for _, v := range g.adj[u] {
			if u < v {
				es = append(es, Edge{From: u, To: v})
			}
		}
	}
	return es
}

// DisjointUnion appends a copy of other to g, relabelling other's
// vertices by +n. Complexity: O(n' + m').
func (g *Undirected) DisjointUnion(other *Undirected) {
	shift := len(g.adj)
	for _, nb := range other.adj {
		row := make([]int, len(nb))
		for i, v := range nb {
			row[i] = v + shift
		}
		g.adj = append(g.adj, row)
	}
	g.m += other.m
	g.normalized = g.normalized && other.normalized
	g.invalidateCaches()
}

// Clone returns a deep copy of g. Complexity: O(n + m).
func (g *Undirected) Clone() *Undirected {
	c := &Undirected{adj: cloneAdj(g.adj), m: g.m, normalized: g.normalized}
	return c
}

// invalidateCaches is a hook for embedding types (FreeTree) that attach
// lazily computed annotations. The plain graph has none.
func (g *Undirected) invalidateCaches() {}

func (g *Undirected) validateNewEdge(u, v int) error {
	if u < 0 || v < 0 || u >= len(g.adj) || v >= len(g.adj) {
		return ErrIndexOutOfRange
	}
	if u == v || g.HasEdge(u, v) {
		return ErrInvalidEdge
	}
	return nil
}

func (g *Undirected) validateNewEdges(es []Edge) error {
	seen := make(map[Edge]struct{}, len(es))
	for _, e := range es {
		if err := g.validateNewEdge(e.From, e.To); err != nil {
			return err
		}
		c := e.Canonical()
		if _, dup := seen[c]; dup {
			return ErrInvalidEdge
		}
		seen[c] = struct{}{}
	}
	return nil
}

func (g *Undirected) finishMutation(o edgeOpts, touched []int) {
	switch {
	case o.normalize && touched != nil:
		for _, u := range touched {
			sort.Ints(g.adj[u])
		}
		// sorting the touched rows is enough only if the rest already were
		if g.normalized || scanNormalized(g.adj) {
			g.normalized = true
		}
	case o.normalize:
		g.Normalize()
	case o.check:
		g.CheckNormalized()
	default:
		g.normalized = false
	}
}

// containsNeighbour reports membership of v in row, binary-searching
// when the row is known to be sorted.
func containsNeighbour(row []int, v int, sorted bool) bool {
	if sorted {
		i := sort.SearchInts(row, v)
		return i < len(row) && row[i] == v
	}
	for _, w := range row {
		if w == v {
			return true
		}
	}
	return false
}

// removeNeighbour deletes the first occurrence of v, keeping order.
func removeNeighbour(row []int, v int) []int {
	for i, w := range row {
		if w == v {
			return append(row[:i], row[i+1:]...)
		}
	}
	return row
}

// relabelAfterRemoval drops u from row and shifts ids above u down.
func relabelAfterRemoval(row []int, u int) []int {
	out := row[:0]
	for _, v := range row {
		switch {
		case v == u:
			// dropped with the vertex
		case v > u:
			out = append(out, v-1)
		default:
			out = append(out, v)
		}
	}
	return out
}

func scanNormalized(adj [][]int) bool {
	for _, row := range adj {
		for i := 1; i < len(row); i++ {
			if row[i-1] >= row[i] {
				return false
			}
		}
	}
	return true
}

func cloneAdj(adj [][]int) [][]int {
	c := make([][]int, len(adj))
	for i, row := range adj {
		c[i] = append([]int(nil), row...)
	}
	return c
}
