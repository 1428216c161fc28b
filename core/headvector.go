package core

// HeadVector is the parent-array encoding of a rooted tree used by
// treebank files. Nodes are numbered 1..n; h[i] refers to node i+1:
// h[i] == 0 marks it as the root, h[i] == j > 0 makes node j its
// parent. In memory everything else in this library is 0-based; the
// translation happens only here and in the treebank parsers.
type HeadVector []int

// Validate checks that the vector encodes a rooted tree: every value
// in [0,n], exactly one zero, no self-parents, and an acyclic,
// connected parent graph. Complexity: O(n).
func (h HeadVector) Validate() error {
	n := len(h)
	root := -1
	for i, v := range h {
		if v < 0 || v > n {
			return ErrInvalidHeads
		}
		if v == 0 {
			if root != -1 {
				return ErrInvalidHeads
			}
			root = i
		} else if v-1 == i {
			return ErrInvalidHeads
		}
	}
	if root == -1 {
		return ErrInvalidHeads
	}
	// walk each node towards the root; a cycle revisits a node before
	// reaching it
	state := make([]int8, n) // 0 unseen, 1 on current walk, 2 settled
	state[root] = 2
	for i := 0; i < n; i++ {
		u := i
		for state[u] == 0 {
			state[u] = 1
			u = h[u] - 1
		}
		if state[u] == 1 {
			return ErrInvalidHeads
		}
		u = i
		for state[u] == 1 {
			state[u] = 2
			u = h[u] - 1
		}
	}
	return nil
}

// ToRootedTree decodes the vector into a rooted tree on the vertex set
// 0..n-1 (node i+1 becomes vertex i), oriented from parent to child.
// Fails with ErrInvalidHeads on any malformed vector. Complexity: O(n).
func (h HeadVector) ToRootedTree() (*RootedTree, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	n := len(h)
	root := 0
	for i, v := range h {
		if v == 0 {
			root = i
			break
		}
	}
	t := NewRootedTree(n, root)
	for i, v := range h {
		if v == 0 {
			continue
		}
		p := v - 1
		t.out[p] = append(t.out[p], i)
		t.in[i] = append(t.in[i], p)
		t.m++
	}
	t.normalized = false
	t.Normalize()
	t.orientationValid = true
	return t, nil
}

// HeadVectorOf encodes a rooted tree as a head vector. Requires the
// arborescence orientation. Complexity: O(n).
func HeadVectorOf(t *RootedTree) (HeadVector, error) {
	if !t.IsArborescence() && !t.ValidateOrientation() {
		return nil, ErrNotATree
	}
	n := t.NumVertices()
	h := make(HeadVector, n)
	for u := 0; u < n; u++ {
		if p := t.Parent(u); p >= 0 {
			h[u] = p + 1
		}
	}
	return h, nil
}
