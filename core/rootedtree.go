package core

// RootedTree is a directed graph whose underlying undirected graph is a
// tree, together with a designated root. When the arborescence
// orientation holds, every edge points from parent to child and every
// non-root vertex has exactly one in-neighbour.
//
// Per-vertex subtree sizes are computed on demand and cached; any
// structural mutation or root change invalidates them.
type RootedTree struct {
	Directed
	root             int
	orientationValid bool
	sizes            []int
}

// NewRootedTree creates a rooted tree under construction with n
// vertices, no edges, and the given root. Complexity: O(n).
func NewRootedTree(n, root int) *RootedTree {
	return &RootedTree{
		Directed:         Directed{out: make([][]int, n), in: make([][]int, n), normalized: true},
		root:             root,
		orientationValid: n <= 1,
	}
}

// Root returns the designated root vertex. Complexity: O(1).
func (t *RootedTree) Root() int { return t.root }

// SetRoot changes the designated root. The arborescence orientation
// and cached subtree sizes no longer apply and are invalidated.
func (t *RootedTree) SetRoot(root int) error {
	if root < 0 || root >= len(t.out) {
		return ErrIndexOutOfRange
	}
	t.root = root
	t.invalidate()
	return nil
}

// IsTree reports whether the underlying undirected graph is a single
// spanning tree. Complexity: O(1).
func (t *RootedTree) IsTree() bool {
	n := len(t.out)
	return n > 0 && t.m == n-1
}

// IsArborescence reports whether the orientation "every edge points
// from parent to child, away from the root" has been established
// (either by construction or by a ValidateOrientation call).
func (t *RootedTree) IsArborescence() bool { return t.orientationValid }

// ValidateOrientation recomputes the arborescence flag: the tree is an
// arborescence iff the root has in-degree 0 and every other vertex has
// in-degree exactly 1 with all vertices reachable from the root.
// Complexity: O(n).
func (t *RootedTree) ValidateOrientation() bool {
	n := len(t.out)
	if n == 0 || t.m != n-1 {
		t.orientationValid = false
		return false
	}
	if len(t.in[t.root]) != 0 {
		t.orientationValid = false
		return false
	}
	for u := 0; u < n; u++ {
		if u != t.root && len(t.in[u]) != 1 {
			t.orientationValid = false
			return false
		}
	}
	reached := 1
	queue := []int{t.root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range t.out[u] {
			reached++
			queue = append(queue, v)
		}
	}
	t.orientationValid = reached == n
	return t.orientationValid
}

// Children returns the out-neighbours of u under the arborescence
// orientation. The slice is owned by the tree. Complexity: O(1).
func (t *RootedTree) Children(u int) []int { return t.out[u] }

// Parent returns the parent of u, or -1 for the root. Requires the
// arborescence orientation. Complexity: O(1).
func (t *RootedTree) Parent(u int) int {
	if u == t.root || len(t.in[u]) == 0 {
		return -1
	}
	return t.in[u][0]
}

// AddEdge inserts the directed edge (u,v), rejecting with ErrNotATree
// any edge that would close an undirected cycle.
func (t *RootedTree) AddEdge(u, v int, opts ...EdgeOption) error {
	if err := t.Directed.validateNewEdge(u, v); err != nil {
		return err
	}
	if undirectedSameComponent(t.out, t.in, u, v) {
		return ErrNotATree
	}
	t.invalidate()
	return t.Directed.AddEdge(u, v, opts...)
}

// AddEdges inserts every edge in es after validating the whole batch,
// including acyclicity of the underlying undirected graph.
func (t *RootedTree) AddEdges(es []Edge, opts ...EdgeOption) error {
	if err := t.Directed.validateNewEdges(es); err != nil {
		return err
	}
	dsu := newUnionFind(len(t.out))
	for u := range t.out {
		for _, v := range t.out[u] {
			dsu.union(u, v)
		}
	}
	for _, e := range es {
		if !dsu.union(e.From, e.To) {
			return ErrNotATree
		}
	}
	t.invalidate()
	return t.Directed.AddEdges(es, opts...)
}

// RemoveEdge deletes the directed edge (u,v).
func (t *RootedTree) RemoveEdge(u, v int) error {
	t.invalidate()
	return t.Directed.RemoveEdge(u, v)
}

// ToFreeTree drops orientation and the root, returning the underlying
// free tree. Fails with ErrNotATree on an incomplete forest.
// Complexity: O(n).
func (t *RootedTree) ToFreeTree() (*FreeTree, error) {
	if !t.IsTree() {
		return nil, ErrNotATree
	}
	u := t.ToUndirected()
	return FreeTreeFromUndirected(u)
}

// ComputeSizeSubtrees fills the per-vertex subtree size cache under
// the arborescence orientation: size[u] counts u and its descendants.
// Fails with ErrNotATree unless the tree is a valid arborescence.
// Complexity: O(n).
func (t *RootedTree) ComputeSizeSubtrees() error {
	if !t.orientationValid && !t.ValidateOrientation() {
		return ErrNotATree
	}
	n := len(t.out)
	t.sizes = make([]int, n)
	// children before parents: post-order over an explicit stack
	order := make([]int, 0, n)
	stack := []int{t.root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)
		stack = append(stack, t.out[u]...)
	}
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		t.sizes[u] = 1
		for _, v := range t.out[u] {
			t.sizes[u] += t.sizes[v]
		}
	}
	return nil
}

// HasSizeSubtrees reports whether the subtree size cache is filled.
func (t *RootedTree) HasSizeSubtrees() bool { return t.sizes != nil }

// SizeSubtree returns the cached size of the subtree rooted at u.
// Fails with ErrNoSubtreeSizes when ComputeSizeSubtrees has not run.
func (t *RootedTree) SizeSubtree(u int) (int, error) {
	if t.sizes == nil {
		return 0, ErrNoSubtreeSizes
	}
	if u < 0 || u >= len(t.sizes) {
		return 0, ErrIndexOutOfRange
	}
	return t.sizes[u], nil
}

// Clone returns a deep copy, size cache included.
func (t *RootedTree) Clone() *RootedTree {
	return &RootedTree{
		Directed:         Directed{out: cloneAdj(t.out), in: cloneAdj(t.in), m: t.m, normalized: t.normalized},
		root:             t.root,
		orientationValid: t.orientationValid,
		sizes:            append([]int(nil), t.sizes...),
	}
}

func (t *RootedTree) invalidate() {
	t.orientationValid = false
	t.sizes = nil
}

func undirectedSameComponent(out, in [][]int, u, v int) bool {
	if u == v {
		return true
	}
	visited := make([]bool, len(out))
	visited[u] = true
	stack := []int{u}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, rows := range [2][][]int{out, in} {
			for _, y := range rows[x] {
				if y == v {
					return true
				}
				if !visited[y] {
					visited[y] = true
					stack = append(stack, y)
				}
			}
		}
	}
	return false
}
