package core

// FreeTree is an undirected graph constrained to stay a forest: edge
// insertions that would close a cycle fail with ErrNotATree. A fully
// built tree has exactly n-1 edges; IsTree reports that state.
//
// FreeTree lazily caches structural annotations (tree type, centre,
// centroid, diameter). Every structural mutation invalidates the whole
// cache; annotation accessors recompute on demand.
type FreeTree struct {
	Undirected
	cache treeCache
}

type treeCache struct {
	valid    uint8
	treeType TreeType
	centre   []int
	centroid []int
	diameter int
}

const (
	cacheTreeType uint8 = 1 << iota
	cacheCentre
	cacheCentroid
	cacheDiameter
)

// NewFreeTree creates a free tree under construction with n vertices
// and no edges. Complexity: O(n).
func NewFreeTree(n int) *FreeTree {
	return &FreeTree{Undirected: Undirected{adj: make([][]int, n), normalized: true}}
}

// FreeTreeFromUndirected validates that g is a tree (connected, m=n-1)
// and wraps a deep copy of it. Fails with ErrNotATree otherwise.
// Complexity: O(n + m).
func FreeTreeFromUndirected(g *Undirected) (*FreeTree, error) {
	if !isConnectedTree(g.adj, g.m) {
		return nil, ErrNotATree
	}
	return &FreeTree{Undirected: Undirected{adj: cloneAdj(g.adj), m: g.m, normalized: g.normalized}}, nil
}

// IsTree reports whether the forest is a single spanning tree:
// m = n-1 (connectivity follows from acyclicity). Complexity: O(1).
func (t *FreeTree) IsTree() bool {
	n := len(t.adj)
	return n > 0 && t.m == n-1
}

// AddEdge inserts the edge (u,v), rejecting with ErrNotATree any edge
// that would close a cycle. Complexity: O(n) for the cycle check.
func (t *FreeTree) AddEdge(u, v int, opts ...EdgeOption) error {
	if err := t.validateNewEdge(u, v); err != nil {
		return err
	}
	if sameComponent(t.adj, u, v) {
		return ErrNotATree
	}
	t.invalidate()
	return t.Undirected.AddEdge(u, v, opts...)
}

// AddEdges inserts every edge in es, validating the whole batch first:
// on any invalid or cycle-closing edge nothing is inserted.
// Complexity: O(n + |es| α(n)) for the union-find validation.
func (t *FreeTree) AddEdges(es []Edge, opts ...EdgeOption) error {
	if err := t.validateNewEdges(es); err != nil {
		return err
	}
	if err := t.checkAcyclicWith(es); err != nil {
		return err
	}
	t.invalidate()
	return t.Undirected.AddEdges(es, opts...)
}

// SetEdges replaces the whole edge set with es, which must form a
// forest. Complexity: O(n + |es|).
func (t *FreeTree) SetEdges(es []Edge, opts ...EdgeOption) error {
	fresh := NewFreeTree(len(t.adj))
	if err := fresh.validateNewEdges(es); err != nil {
		return err
	}
	if err := fresh.checkAcyclicWith(es); err != nil {
		return err
	}
	t.invalidate()
	return t.Undirected.SetEdges(es, opts...)
}

// RemoveEdge deletes the edge (u,v), leaving a two-component forest
// when the tree was complete. Complexity: O(d).
func (t *FreeTree) RemoveEdge(u, v int) error {
	t.invalidate()
	return t.Undirected.RemoveEdge(u, v)
}

// RemoveVertex deletes u and its incident edges, relabelling vertices
// above u down by one. Complexity: O(n + m).
func (t *FreeTree) RemoveVertex(u int) error {
	t.invalidate()
	return t.Undirected.RemoveVertex(u)
}

// DisjointUnion appends a copy of other, relabelling its vertices by
// +n. The result is a forest of (at least) two components.
func (t *FreeTree) DisjointUnion(other *FreeTree) {
	t.invalidate()
	t.Undirected.DisjointUnion(&other.Undirected)
}

// Clone returns a deep copy, cached annotations included.
func (t *FreeTree) Clone() *FreeTree {
	c := &FreeTree{
		Undirected: Undirected{adj: cloneAdj(t.adj), m: t.m, normalized: t.normalized},
		cache:      t.cache,
	}
	c.cache.centre = append([]int(nil), t.cache.centre...)
	c.cache.centroid = append([]int(nil), t.cache.centroid...)
	return c
}

// ToRooted orients the tree away from root in one BFS, producing an
// arborescence. Fails with ErrNotATree on an incomplete forest and
// with ErrIndexOutOfRange on a bad root. Complexity: O(n).
func (t *FreeTree) ToRooted(root int) (*RootedTree, error) {
	if root < 0 || root >= len(t.adj) {
		return nil, ErrIndexOutOfRange
	}
	if !t.IsTree() {
		return nil, ErrNotATree
	}
	n := len(t.adj)
	r := NewRootedTree(n, root)
	parent := make([]int, n)
	parent[root] = -1
	queue := make([]int, 0, n)
	queue = append(queue, root)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range t.adj[u] {
			if v == parent[u] {
				continue
			}
			parent[v] = u
			r.out[u] = append(r.out[u], v)
			r.in[v] = append(r.in[v], u)
			r.m++
			queue = append(queue, v)
		}
	}
	r.normalized = t.normalized
	r.orientationValid = true
	return r, nil
}

func (t *FreeTree) invalidate() { t.cache = treeCache{} }

func (t *FreeTree) checkAcyclicWith(es []Edge) error {
	dsu := newUnionFind(len(t.adj))
	for u := range t.adj {
		for _, v := range t.adj[u] {
			if u < v {
				dsu.union(u, v)
			}
		}
	}
	for _, e := range es {
		if !dsu.union(e.From, e.To) {
			return ErrNotATree
		}
	}
	return nil
}

// sameComponent reports whether v is reachable from u.
func sameComponent(adj [][]int, u, v int) bool {
	if u == v {
		return true
	}
	visited := make([]bool, len(adj))
	visited[u] = true
	stack := []int{u}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, y := range adj[x] {
			if y == v {
				return true
			}
			if !visited[y] {
				visited[y] = true
				stack = append(stack, y)
			}
		}
	}
	return false
}

// isConnectedTree reports whether adj with m edges is a single tree.
func isConnectedTree(adj [][]int, m int) bool {
	n := len(adj)
	if n == 0 || m != n-1 {
		return false
	}
	visited := make([]bool, n)
	visited[0] = true
	count := 1
	stack := []int{0}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				count++
				stack = append(stack, v)
			}
		}
	}
	return count == n
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p, rank: make([]int, n)}
}

func (d *unionFind) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// union merges the components of a and b, reporting false when they
// already coincide.
func (d *unionFind) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	return true
}
