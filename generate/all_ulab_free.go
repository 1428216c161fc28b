package generate

import (
	"math"

	"github.com/treemetrics/linarr/core"
)

// unset marks the indices p and c of the level-sequence successor as
// holding no position.
const unset = math.MaxInt

// AllUnlabelledFree enumerates every unlabelled free tree on n
// vertices, exactly once, by the Wright–Richmond–Odlyzko–McKay
// successor over canonical level sequences. The first sequence encodes
// two near-equal paths hanging off the root; the last one is the star
// 1,2,2,...,2. Each advance costs O(n).
type AllUnlabelledFree struct {
	Postprocess

	n int
	// L and W are 1-based: L[i] is the level of preorder position i, W[i]
	// the companion pointer the successor reads its copy source from
	L, W               []int
	p, q, h1, h2, r, c int
	isLast             bool
	past               bool
}

// NewAllUnlabelledFree creates the enumerator positioned on the first
// tree. n == 0 yields an immediately exhausted enumerator.
// Complexity: O(n).
func NewAllUnlabelledFree(n int) (*AllUnlabelledFree, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	g := &AllUnlabelledFree{Postprocess: defaultPostprocess(), n: n}
	g.Reset()
	return g, nil
}

// Reset repositions the enumerator on the first canonical sequence.
// Complexity: O(n).
func (g *AllUnlabelledFree) Reset() {
	n := g.n
	g.past = n == 0
	g.isLast = n >= 1 && n <= 2
	g.L = make([]int, n+1)
	g.W = make([]int, n+1)
	if n <= 2 {
		return
	}

	k := n/2 + 1
	if n == 4 {
		g.p = 3
	} else {
		g.p = n
	}
	g.q = n - 1
	g.h1 = k
	g.h2 = n
	g.r = k
	if n%2 == 0 {
		g.c = n + 1
	} else {
		g.c = unset
	}

	for i := 1; i <= k; i++ {
		g.W[i] = i - 1
		g.L[i] = i
	}
	g.W[k+1] = 1
	g.L[k+1] = 2
	for i := k + 2; i <= n; i++ {
		g.W[i] = i - 1
		g.L[i] = i - k + 1
	}

	// n = 3 needs one successor step to land on its single canonical
	// sequence
	if n == 3 {
		g.successor()
	}
}

// End reports whether the enumeration is over. Complexity: O(1).
func (g *AllUnlabelledFree) End() bool { return g.past }

// Next advances to the next canonical sequence. Complexity: O(n).
func (g *AllUnlabelledFree) Next() {
	if g.past {
		return
	}
	if g.n <= 2 || g.isLast {
		g.past = true
		return
	}
	g.successor()
}

// Tree materializes the current tree and applies the post-processing
// actions. Fails with ErrExhausted past the end. Complexity: O(n).
func (g *AllUnlabelledFree) Tree() (*core.FreeTree, error) {
	if g.past {
		return nil, ErrExhausted
	}
	if g.n <= 1 {
		return core.NewFreeTree(g.n), nil
	}
	if g.n == 2 {
		t := core.NewFreeTree(2)
		if err := t.AddEdge(0, 1); err != nil {
			return nil, err
		}
		return t, nil
	}
	t, err := levelSequenceToFreeTree(g.L, g.n)
	if err != nil {
		return nil, err
	}
	g.applyFree(t)
	return t, nil
}

// YieldTree returns the current tree and advances.
func (g *AllUnlabelledFree) YieldTree() (*core.FreeTree, error) {
	t, err := g.Tree()
	if err != nil {
		return nil, err
	}
	g.Next()
	return t, nil
}

// successor replaces the current sequence with the next one, keeping
// the bookkeeping indices p, q, h1, h2, r and c consistent. The update
// follows Wright, Richmond, Odlyzko and McKay's constant-amortized
// algorithm; q reaching 0 marks the final sequence.
func (g *AllUnlabelledFree) successor() {
	n := g.n
	L, W := g.L, g.W

	fixit := false
	if g.c == n+1 ||
		(g.p == g.h2 &&
			((L[g.h1] == L[g.h2]+1 && n-g.h2 > g.r-g.h1) ||
				(L[g.h1] == L[g.h2] && n-g.h2+1 < g.r-g.h1))) {
		if L[g.r] > 3 {
			g.p = g.r
			g.q = W[g.r]
			if g.h1 == g.r {
				g.h1--
			}
			fixit = true
		} else {
			g.p = g.r
			g.r--
			g.q = 2
		}
	}

	var needr, needc, needh2 bool
	if g.p <= g.h1 {
		g.h1 = g.p - 1
	}
	if g.p <= g.r {
		needr = true
	} else if g.p <= g.h2 {
		needh2 = true
	} else if L[g.h2] == L[g.h1]-1 && n-g.h2 == g.r-g.h1 {
		if g.p <= g.c {
			needc = true
		}
	} else {
		g.c = unset
	}

	oldp := g.p
	delta := g.q - g.p
	oldLq := L[g.q]
	oldWq := W[g.q]
	g.p = unset

	for i := oldp; i <= n; i++ {
		L[i] = L[i+delta]
		if L[i] == 2 {
			W[i] = 1
		} else {
			g.p = i
			if L[i] == oldLq {
				g.q = oldWq
			} else {
				g.q = W[i+delta] - delta
			}
			W[i] = g.q
		}
		if needr && L[i] == 2 {
			needr = false
			needh2 = true
			g.r = i - 1
		}
		if needh2 && L[i] <= L[i-1] && i > g.r+1 {
			needh2 = false
			g.h2 = i - 1
			if L[g.h2] == L[g.h1]-1 && n-g.h2 == g.r-g.h1 {
				needc = true
			} else {
				g.c = unset
			}
		}
		if needc {
			if L[i] != L[g.h1-g.h2+i]-1 {
				needc = false
				g.c = i
			} else {
				g.c = i + 1
			}
		}
	}

	if fixit {
		g.r = n - g.h1 + 1
		for i := g.r + 1; i <= n; i++ {
			L[i] = i - g.r + 1
			W[i] = i - 1
		}
		W[g.r+1] = 1
		g.h2 = n
		g.p = n
		g.q = g.p - 1
		g.c = unset
	} else {
		if g.p == unset {
			if L[oldp-1] != 2 {
				g.p = oldp - 1
			} else {
				g.p = oldp - 2
			}
			g.q = W[g.p]
		}
		if needh2 {
			g.h2 = n
			if L[g.h2] == L[g.h1]-1 && g.h1 == g.r {
				g.c = n + 1
			} else {
				g.c = unset
			}
		}
	}

	g.isLast = g.q == 0
}
