package sorting_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treemetrics/linarr/sorting"
)

func TestInsertion(t *testing.T) {
	t.Run("empty and singleton", func(t *testing.T) {
		var empty []int
		sorting.Insertion(empty)
		assert.Empty(t, empty)

		one := []int{7}
		sorting.Insertion(one)
		assert.Equal(t, []int{7}, one)
	})

	t.Run("small slices match sort.Ints", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for iter := 0; iter < 200; iter++ {
			n := rng.Intn(15)
			a := make([]int, n)
			for i := range a {
				a[i] = rng.Intn(50)
			}
			want := append([]int{}, a...)
			sort.Ints(want)
			sorting.Insertion(a)
			assert.Equal(t, want, a)
		}
	})
}

func TestBitSorter(t *testing.T) {
	t.Run("distinct values across all dispatch tiers", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		bs := sorting.NewBitSorter(1000)
		for _, n := range []int{0, 1, 2, 13, 14, 15, 30, 31, 100, 500} {
			a := rng.Perm(1000)[:n]
			want := append([]int{}, a...)
			sort.Ints(want)
			bs.Sort(a)
			assert.Equal(t, want, a, "n=%d", n)
		}
	})

	t.Run("sorter is reusable", func(t *testing.T) {
		bs := sorting.NewBitSorter(64)
		first := []int{63, 0, 31, 32, 1, 62, 2, 61, 3, 60, 4, 59, 5, 58, 6, 57,
			7, 56, 8, 55, 9, 54, 10, 53, 11, 52, 12, 51, 13, 50, 14, 49}
		bs.Sort(first)
		require.True(t, sort.IntsAreSorted(first))

		// a second sort over overlapping values must not see stale bits
		second := []int{40, 20, 30, 10, 45, 25, 35, 15, 41, 21, 31, 11, 46, 26,
			36, 16, 42, 22, 32, 12, 47, 27, 37, 17, 43, 23, 33, 13, 48, 28, 38, 18}
		bs.Sort(second)
		assert.True(t, sort.IntsAreSorted(second))
		assert.Len(t, second, 32)
	})
}

func TestInts(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 50; iter++ {
		n := rng.Intn(200)
		a := rng.Perm(500)[:n]
		want := append([]int(nil), a...)
		sort.Ints(want)
		sorting.Ints(a)
		assert.Equal(t, want, a)
	}
}

func TestCounting(t *testing.T) {
	type item struct {
		key int
		tag string
	}

	t.Run("increasing", func(t *testing.T) {
		a := []item{{3, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {0, "e"}}
		sorting.Counting(a, 3, sorting.Increasing, func(x item) int { return x.key })
		assert.Equal(t, []item{{0, "e"}, {1, "b"}, {1, "d"}, {2, "c"}, {3, "a"}}, a)
	})

	t.Run("decreasing is stable", func(t *testing.T) {
		a := []item{{1, "b"}, {3, "a"}, {1, "d"}, {2, "c"}, {3, "z"}}
		sorting.Counting(a, 3, sorting.Decreasing, func(x item) int { return x.key })
		assert.Equal(t, []item{{3, "a"}, {3, "z"}, {2, "c"}, {1, "b"}, {1, "d"}}, a)
	})

	t.Run("random agreement with sort.SliceStable", func(t *testing.T) {
		rng := rand.New(rand.NewSource(4))
		for iter := 0; iter < 100; iter++ {
			n := rng.Intn(100)
			a := make([]item, n)
			for i := range a {
				a[i] = item{key: rng.Intn(10), tag: string(rune('a' + i%26))}
			}
			want := append([]item{}, a...)
			sort.SliceStable(want, func(i, j int) bool { return want[i].key < want[j].key })
			sorting.Counting(a, 9, sorting.Increasing, func(x item) int { return x.key })
			assert.Equal(t, want, a)
		}
	})
}
