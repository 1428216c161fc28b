package generate

import "github.com/treemetrics/linarr/numeric"

// a000081 holds the first 31 values of t_n, the number of unlabelled
// rooted trees on n vertices (OEIS A000081).
var a000081 = []int64{
	0, 1, 1, 2, 4, 9, 20, 48, 115, 286,
	719, 1842, 4766, 12486, 32973, 87811, 235381, 634847, 1721159, 4688676,
	12826228, 35221832, 97055181, 268282855, 743724984, 2067174645,
	5759636510, 16083734329, 45007066269, 126186554308, 354426847597,
}

// rnTable is the monotonically growing cache of t_n used by the
// unlabelled samplers. The first 31 entries are constant-initialized;
// later entries are computed on demand and retained until clear.
type rnTable struct {
	rn []numeric.Integer
}

func newRnTable() *rnTable {
	t := &rnTable{}
	t.clear()
	return t
}

// clear drops every computed entry and restores the constant prefix.
func (t *rnTable) clear() {
	t.rn = make([]numeric.Integer, len(a000081))
	for i, v := range a000081 {
		t.rn[i] = numeric.NewInteger(v)
	}
}

// get returns t_n, growing the cache if needed with the recurrence
//
//	k·t_{k+1} = Σ_{d=1..k} d·t_d · Σ_{j≥1, k+1-jd > 0} t_{k+1-jd}
//
// Complexity: O((n - cached)·n·log n) integer operations to grow, O(1)
// after that.
func (t *rnTable) get(n int) numeric.Integer {
	if n < len(t.rn) {
		return t.rn[n]
	}
	k := len(t.rn) - 1
	for k <= n+1 {
		s := numeric.NewInteger(0)
		for d := 1; d <= k; d++ {
			td := t.rn[d].Mul(numeric.NewInteger(int64(d)))
			i := k + 1
			for j := 1; j <= k && i > 0; j++ {
				i -= d
				if i > 0 {
					s = s.Add(t.rn[i].Mul(td))
				}
			}
		}
		q, _ := s.Div(numeric.NewInteger(int64(k)))
		t.rn = append(t.rn, q)
		k++
	}
	return t.rn[n]
}

// NumUnlabelledRootedTrees returns t_n, the number of unlabelled rooted
// trees on n vertices (OEIS A000081).
func NumUnlabelledRootedTrees(n int) (numeric.Integer, error) {
	if n < 0 {
		return numeric.Integer{}, ErrInvalidSize
	}
	return newRnTable().get(n), nil
}

// NumUnlabelledFreeTrees returns the number of unlabelled free trees on
// n vertices (OEIS A000055) via Otter's identity
//
//	f_n = t_n - (Σ_{i=1..n-1} t_i·t_{n-i} - [n even]·t_{n/2}) / 2.
func NumUnlabelledFreeTrees(n int) (numeric.Integer, error) {
	if n < 0 {
		return numeric.Integer{}, ErrInvalidSize
	}
	tbl := newRnTable()
	return numFreeFrom(tbl, n), nil
}

func numFreeFrom(tbl *rnTable, n int) numeric.Integer {
	if n == 0 {
		return numeric.NewInteger(0)
	}
	sum := numeric.NewInteger(0)
	for i := 1; i < n; i++ {
		sum = sum.Add(tbl.get(i).Mul(tbl.get(n - i)))
	}
	if n%2 == 0 {
		sum = sum.Sub(tbl.get(n / 2))
	}
	half, _ := sum.Div(numeric.NewInteger(2))
	return tbl.get(n).Sub(half)
}

// NumLabelledFreeTrees returns n^(n-2), the number of labelled free
// trees on n vertices (Cayley). Trees with fewer than three vertices
// are unique, so the count is 1 for n <= 2.
func NumLabelledFreeTrees(n int) (numeric.Integer, error) {
	if n < 0 {
		return numeric.Integer{}, ErrInvalidSize
	}
	if n <= 2 {
		return numeric.NewInteger(1), nil
	}
	return numeric.NewInteger(int64(n)).Pow(uint(n - 2)), nil
}

// NumLabelledRootedTrees returns n^(n-1), the number of labelled rooted
// trees on n vertices.
func NumLabelledRootedTrees(n int) (numeric.Integer, error) {
	if n < 0 {
		return numeric.Integer{}, ErrInvalidSize
	}
	if n == 0 {
		return numeric.NewInteger(1), nil
	}
	return numeric.NewInteger(int64(n)).Pow(uint(n - 1)), nil
}
