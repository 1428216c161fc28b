package core

import "github.com/treemetrics/linarr/sorting"

// TreeType is the structural class of a free tree. Classes overlap (a
// star is also a caterpillar); Type reports the most specific class
// under the precedence Empty, Singleton, Linear, Star, Quasistar,
// Bistar, Caterpillar, Spider, TwoLinear, Unknown.
type TreeType int

const (
	// TypeEmpty is the tree on zero vertices.
	TypeEmpty TreeType = iota
	// TypeSingleton is the tree on one vertex.
	TypeSingleton
	// TypeLinear is a path: every degree at most 2.
	TypeLinear
	// TypeStar has one hub adjacent to every other vertex.
	TypeStar
	// TypeQuasistar is a star with exactly one of its edges subdivided.
	TypeQuasistar
	// TypeBistar has two adjacent hubs and otherwise only leaves.
	TypeBistar
	// TypeCaterpillar reduces to a path when its leaves are removed.
	TypeCaterpillar
	// TypeSpider has exactly one vertex of degree at least 3; the rest
	// form paths hanging from it.
	TypeSpider
	// TypeTwoLinear has exactly two vertices of degree at least 3.
	TypeTwoLinear
	// TypeUnknown is any tree matching none of the above.
	TypeUnknown
)

// String returns the class name.
func (t TreeType) String() string {
	switch t {
	case TypeEmpty:
		return "empty"
	case TypeSingleton:
		return "singleton"
	case TypeLinear:
		return "linear"
	case TypeStar:
		return "star"
	case TypeQuasistar:
		return "quasistar"
	case TypeBistar:
		return "bistar"
	case TypeCaterpillar:
		return "caterpillar"
	case TypeSpider:
		return "spider"
	case TypeTwoLinear:
		return "two-linear"
	default:
		return "unknown"
	}
}

// Type classifies the tree, caching the answer until the next
// structural mutation. Fails with ErrNotATree on an incomplete forest
// (the empty tree classifies as TypeEmpty). Complexity: O(n).
func (t *FreeTree) Type() (TreeType, error) {
	if len(t.adj) == 0 {
		return TypeEmpty, nil
	}
	if t.cache.valid&cacheTreeType != 0 {
		return t.cache.treeType, nil
	}
	if !t.IsTree() {
		return TypeUnknown, ErrNotATree
	}
	t.cache.treeType = classify(t.adj)
	t.cache.valid |= cacheTreeType
	return t.cache.treeType, nil
}

// Centre returns the one or two vertices of minimum eccentricity,
// ascending, computed by iterated leaf peeling and cached.
// Complexity: O(n).
func (t *FreeTree) Centre() ([]int, error) {
	if t.cache.valid&cacheCentre != 0 {
		return t.cache.centre, nil
	}
	if !t.IsTree() {
		return nil, ErrNotATree
	}
	t.cache.centre = treeCentre(t.adj)
	t.cache.valid |= cacheCentre
	return t.cache.centre, nil
}

// Centroid returns the one or two vertices whose heaviest component
// after removal is smallest, ascending, cached. Complexity: O(n).
func (t *FreeTree) Centroid() ([]int, error) {
	if t.cache.valid&cacheCentroid != 0 {
		return t.cache.centroid, nil
	}
	if !t.IsTree() {
		return nil, ErrNotATree
	}
	t.cache.centroid = treeCentroid(t.adj)
	t.cache.valid |= cacheCentroid
	return t.cache.centroid, nil
}

// Diameter returns the number of edges on a longest path, computed by
// double BFS and cached. Complexity: O(n).
func (t *FreeTree) Diameter() (int, error) {
	if t.cache.valid&cacheDiameter != 0 {
		return t.cache.diameter, nil
	}
	if !t.IsTree() {
		return 0, ErrNotATree
	}
	far, _ := bfsFarthest(t.adj, 0)
	_, d := bfsFarthest(t.adj, far)
	t.cache.diameter = d
	t.cache.valid |= cacheDiameter
	return d, nil
}

func classify(adj [][]int) TreeType {
	n := len(adj)
	if n == 1 {
		return TypeSingleton
	}

	maxDeg, hubs := 0, 0
	internal := 0 // vertices of degree >= 2
	for u := range adj {
		d := len(adj[u])
		if d > maxDeg {
			maxDeg = d
		}
		if d >= 3 {
			hubs++
		}
		if d >= 2 {
			internal++
		}
	}

	switch {
	case maxDeg <= 2:
		return TypeLinear
	case maxDeg == n-1:
		return TypeStar
	case isQuasistar(adj, n):
		return TypeQuasistar
	case internal == 2 && adjacentInternal(adj):
		return TypeBistar
	case isCaterpillar(adj):
		return TypeCaterpillar
	case hubs == 1:
		return TypeSpider
	case hubs == 2:
		return TypeTwoLinear
	default:
		return TypeUnknown
	}
}

// isQuasistar: one hub of degree n-2, one bridge of degree 2, the rest
// leaves. In a tree this degree sequence forces the bridge onto the
// hub, so the sequence alone decides.
func isQuasistar(adj [][]int, n int) bool {
	if n < 5 {
		// subdividing an edge of the smallest star already yields n = 5
		return false
	}
	hub, bridge, leaves := 0, 0, 0
	for u := range adj {
		switch len(adj[u]) {
		case n - 2:
			hub++
		case 1:
			leaves++
		case 2:
			bridge++
		}
	}
	return hub == 1 && bridge == 1 && leaves == n-2
}

func adjacentInternal(adj [][]int) bool {
	a, b := -1, -1
	for u := range adj {
		if len(adj[u]) >= 2 {
			if a == -1 {
				a = u
			} else {
				b = u
			}
		}
	}
	for _, v := range adj[a] {
		if v == b {
			return true
		}
	}
	return false
}

// isCaterpillar: removing all leaves leaves a path (every surviving
// vertex keeps at most two surviving neighbours).
func isCaterpillar(adj [][]int) bool {
	for u := range adj {
		if len(adj[u]) == 1 {
			continue
		}
		spineDeg := 0
		for _, v := range adj[u] {
			if len(adj[v]) > 1 {
				spineDeg++
			}
		}
		if spineDeg > 2 {
			return false
		}
	}
	return true
}

// treeCentre peels leaves layer by layer; the last one or two
// surviving vertices are the centre.
func treeCentre(adj [][]int) []int {
	n := len(adj)
	if n <= 2 {
		return allVertices(n)
	}
	deg := make([]int, n)
	layer := make([]int, 0, n)
	for u := range adj {
		deg[u] = len(adj[u])
		if deg[u] == 1 {
			layer = append(layer, u)
		}
	}
	remaining := n
	for remaining > 2 {
		remaining -= len(layer)
		next := layer[:0:0]
		for _, u := range layer {
			for _, v := range adj[u] {
				deg[v]--
				if deg[v] == 1 {
					next = append(next, v)
				}
			}
			deg[u] = 0
		}
		layer = next
	}
	sorting.Insertion(layer)
	return layer
}

// treeCentroid runs the subtree-size DP rooted at 0, then descends
// towards the heaviest component until no neighbour's component
// exceeds n/2.
func treeCentroid(adj [][]int) []int {
	n := len(adj)
	if n <= 2 {
		return allVertices(n)
	}
	parent := make([]int, n)
	order := make([]int, 0, n)
	parent[0] = -1
	stack := []int{0}
	visited := make([]bool, n)
	visited[0] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				parent[v] = u
				stack = append(stack, v)
			}
		}
	}
	size := make([]int, n)
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		size[u] = 1
		for _, v := range adj[u] {
			if v != parent[u] {
				size[u] += size[v]
			}
		}
	}

	// heaviest component when u is removed
	heaviest := func(u int) int {
		h := n - size[u]
		for _, v := range adj[u] {
			if v != parent[u] && size[v] > h {
				h = size[v]
			}
		}
		return h
	}

	u := 0
	for {
		moved := false
		for _, v := range adj[u] {
			if v != parent[u] && size[v] > n/2 {
				u = v
				moved = true
				break
			}
		}
		if !moved {
			break
		}
	}

	c := []int{u}
	hu := heaviest(u)
	for _, v := range adj[u] {
		if heaviest(v) == hu {
			c = append(c, v)
		}
	}
	sorting.Insertion(c)
	return c
}

func bfsFarthest(adj [][]int, src int) (far, dist int) {
	n := len(adj)
	depth := make([]int, n)
	for i := range depth {
		depth[i] = -1
	}
	depth[src] = 0
	queue := []int{src}
	far = src
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if depth[v] == -1 {
				depth[v] = depth[u] + 1
				if depth[v] > dist {
					dist, far = depth[v], v
				}
				queue = append(queue, v)
			}
		}
	}
	return far, dist
}

func allVertices(n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = i
	}
	return vs
}
