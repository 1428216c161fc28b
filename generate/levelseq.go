package generate

import "github.com/treemetrics/linarr/core"

// levelSequenceEdges decodes a level sequence into tree edges. L is
// 1-based: L[i] is the depth of the vertex at preorder position i, with
// L[1] == 1 for the root. Position i becomes vertex i-1; its parent is
// the latest earlier position one level up. Complexity: O(n).
func levelSequenceEdges(L []int, n int) []core.Edge {
	if n <= 1 {
		return nil
	}
	last := make([]int, n+2)
	es := make([]core.Edge, 0, n-1)
	for i := 1; i <= n; i++ {
		l := L[i]
		if l > 1 {
			es = append(es, core.Edge{From: last[l-1] - 1, To: i - 1})
		}
		last[l] = i
	}
	return es
}

func levelSequenceToFreeTree(L []int, n int) (*core.FreeTree, error) {
	t := core.NewFreeTree(n)
	if err := t.SetEdges(levelSequenceEdges(L, n)); err != nil {
		return nil, err
	}
	return t, nil
}

func levelSequenceToRootedTree(L []int, n int) (*core.RootedTree, error) {
	t := core.NewRootedTree(n, 0)
	if err := t.AddEdges(levelSequenceEdges(L, n)); err != nil {
		return nil, err
	}
	t.ValidateOrientation()
	return t, nil
}
