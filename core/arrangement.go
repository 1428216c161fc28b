package core

import "errors"

// ErrNotBijection indicates position data that is not a bijection onto
// [0,n).
var ErrNotBijection = errors.New("core: arrangement is not a bijection")

// Arrangement materializes a bijection from vertices to positions as
// the two mutually inverse arrays pos[u] and inv[p]. Both views are
// kept consistent at all times; mutation goes through the methods.
//
// The zero value is the empty arrangement (n = 0), which functions
// accepting an optional arrangement interpret as "use the identity".
type Arrangement struct {
	pos []int
	inv []int
}

// Identity returns the arrangement pos[u] = u on n vertices.
// Complexity: O(n).
func Identity(n int) *Arrangement {
	a := &Arrangement{pos: make([]int, n), inv: make([]int, n)}
	for u := 0; u < n; u++ {
		a.pos[u] = u
		a.inv[u] = u
	}
	return a
}

// FromPositions builds an arrangement from pos, where pos[u] is the
// position of vertex u. Fails with ErrNotBijection unless pos is a
// bijection onto [0,len(pos)). The slice is copied.
// Complexity: O(n).
func FromPositions(pos []int) (*Arrangement, error) {
	n := len(pos)
	inv := make([]int, n)
	for i := range inv {
		inv[i] = -1
	}
	for u, p := range pos {
		if p < 0 || p >= n || inv[p] != -1 {
			return nil, ErrNotBijection
		}
		inv[p] = u
	}
	return &Arrangement{pos: append([]int(nil), pos...), inv: inv}, nil
}

// FromInverse builds an arrangement from inv, where inv[p] is the
// vertex at position p. Fails with ErrNotBijection unless inv is a
// bijection onto [0,len(inv)). The slice is copied.
// Complexity: O(n).
func FromInverse(inv []int) (*Arrangement, error) {
	n := len(inv)
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	for p, u := range inv {
		if u < 0 || u >= n || pos[u] != -1 {
			return nil, ErrNotBijection
		}
		pos[u] = p
	}
	return &Arrangement{pos: pos, inv: append([]int(nil), inv...)}, nil
}

// N returns the number of vertices (and positions). Complexity: O(1).
func (a *Arrangement) N() int { return len(a.pos) }

// IsEmpty reports whether the arrangement is the empty value n = 0.
// A nil *Arrangement counts as empty.
func (a *Arrangement) IsEmpty() bool { return a == nil || len(a.pos) == 0 }

// PositionOf returns the position of vertex u. Complexity: O(1).
func (a *Arrangement) PositionOf(u int) int { return a.pos[u] }

// VertexAt returns the vertex at position p. Complexity: O(1).
func (a *Arrangement) VertexAt(p int) int { return a.inv[p] }

// Positions returns a copy of the pos array. Complexity: O(n).
func (a *Arrangement) Positions() []int { return append([]int(nil), a.pos...) }

// Inverse returns a copy of the inv array. Complexity: O(n).
func (a *Arrangement) Inverse() []int { return append([]int(nil), a.inv...) }

// SwapVertices exchanges the positions of vertices u and v, updating
// both views. Complexity: O(1).
func (a *Arrangement) SwapVertices(u, v int) {
	a.inv[a.pos[u]], a.inv[a.pos[v]] = v, u
	a.pos[u], a.pos[v] = a.pos[v], a.pos[u]
}

// Mirror reverses the arrangement: position p becomes n-1-p.
// Complexity: O(n).
func (a *Arrangement) Mirror() {
	n := len(a.pos)
	for u := range a.pos {
		a.pos[u] = n - 1 - a.pos[u]
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		a.inv[i], a.inv[j] = a.inv[j], a.inv[i]
	}
}

// IsIdentity reports whether pos[u] == u for every vertex.
// Complexity: O(n).
func (a *Arrangement) IsIdentity() bool {
	for u, p := range a.pos {
		if p != u {
			return false
		}
	}
	return true
}

// Equal reports elementwise equality. Complexity: O(n).
func (a *Arrangement) Equal(b *Arrangement) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	if len(a.pos) != len(b.pos) {
		return false
	}
	for u := range a.pos {
		if a.pos[u] != b.pos[u] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy. Complexity: O(n).
func (a *Arrangement) Clone() *Arrangement {
	return &Arrangement{
		pos: append([]int(nil), a.pos...),
		inv: append([]int(nil), a.inv...),
	}
}

// Resolve maps the "empty means identity" convention: it returns a
// itself when non-empty, and the identity on n vertices otherwise.
func Resolve(a *Arrangement, n int) *Arrangement {
	if a.IsEmpty() {
		return Identity(n)
	}
	return a
}
