package minla

import (
	"github.com/treemetrics/linarr/core"
	"github.com/treemetrics/linarr/sorting"
)

// subtree records a child vertex together with the number of vertices
// hanging from it (the child included).
type subtree struct {
	root int
	size int
}

// forest is the mutable scratch graph the unconstrained solver works
// on: subtrees are detached and reattached as the recursion explores
// split candidates, so the structure must tolerate being a forest.
type forest struct {
	adj [][]int

	// reusable per-call scratch, sized once
	parent []int
	size   []int
	order  []int
}

func newForest(t *core.FreeTree) *forest {
	n := t.NumVertices()
	f := &forest{
		adj:    make([][]int, n),
		parent: make([]int, n),
		size:   make([]int, n),
		order:  make([]int, 0, n),
	}
	for u := 0; u < n; u++ {
		f.adj[u] = append([]int(nil), t.Neighbours(u)...)
	}
	return f
}

func (f *forest) addEdge(u, v int) {
	f.adj[u] = append(f.adj[u], v)
	f.adj[v] = append(f.adj[v], u)
}

func (f *forest) removeEdge(u, v int) {
	f.adj[u] = deleteNeighbour(f.adj[u], v)
	f.adj[v] = deleteNeighbour(f.adj[v], u)
}

func deleteNeighbour(ns []int, v int) []int {
	for i, x := range ns {
		if x == v {
			return append(ns[:i], ns[i+1:]...)
		}
	}
	return ns
}

// rootedSizes walks the component of root, filling f.parent and
// f.size (subtree sizes under the rooting at root) and returning the
// component's vertices in a preorder whose reverse is a postorder.
// The scratch arrays are only valid for the returned vertices.
func (f *forest) rootedSizes(root int) []int {
	f.order = f.order[:0]
	f.parent[root] = -1
	stack := []int{root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f.order = append(f.order, u)
		for _, v := range f.adj[u] {
			if v != f.parent[u] {
				f.parent[v] = u
				stack = append(stack, v)
			}
		}
	}
	order := f.order
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		f.size[u] = 1
		for _, v := range f.adj[u] {
			if v != f.parent[u] {
				f.size[u] += f.size[v]
			}
		}
	}
	return order
}

// centroid returns a centroidal vertex of the component containing v:
// start anywhere, descend into any subtree holding more than half the
// component.
func (f *forest) centroid(v int) int {
	comp := len(f.rootedSizes(v))
	u := v
	for {
		moved := false
		for _, w := range f.adj[u] {
			if w != f.parent[u] && 2*f.size[w] > comp {
				u, moved = w, true
				break
			}
		}
		if !moved {
			return u
		}
	}
}

// ordering returns the component size of u and the subtrees hanging
// from u, largest first; equal sizes keep ascending vertex order.
func (f *forest) ordering(u int) (int, []subtree) {
	comp := len(f.rootedSizes(u))
	kids := append([]int(nil), f.adj[u]...)
	sorting.Ints(kids)
	ord := make([]subtree, len(kids))
	for i, v := range kids {
		ord[i] = subtree{root: v, size: f.size[v]}
	}
	sorting.Counting(ord, comp, sorting.Decreasing, func(s subtree) int { return s.size })
	return comp, ord
}
