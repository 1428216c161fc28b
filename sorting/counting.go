package sorting

// Direction selects the output order of Counting.
type Direction int

const (
	// Increasing sorts by ascending key.
	Increasing Direction = iota
	// Decreasing sorts by descending key.
	Decreasing
)

// Counting stably sorts a in place by the integer key extracted from
// each element. Keys must lie in [0,maxKey]. Stability is what the
// arrangement solvers rely on: children with equal subtree sizes keep
// their relative (vertex id) order.
//
// Complexity: O(k + maxKey) time, O(k + maxKey) scratch, k = len(a).
func Counting[T any](a []T, maxKey int, dir Direction, key func(T) int) {
	if len(a) <= 1 {
		return
	}
	count := make([]int, maxKey+2)
	for _, x := range a {
		count[keyFor(key(x), maxKey, dir)+1]++
	}
	for i := 1; i < len(count); i++ {
		count[i] += count[i-1]
	}
	out := make([]T, len(a))
	for _, x := range a {
		k := keyFor(key(x), maxKey, dir)
		out[count[k]] = x
		count[k]++
	}
	copy(a, out)
}

// keyFor flips the key for decreasing order so one pass serves both
// directions while preserving stability.
func keyFor(k, maxKey int, dir Direction) int {
	if dir == Decreasing {
		return maxKey - k
	}
	return k
}
