package sorting

// insertionThreshold is the slice length up to which insertion sort wins
// over the alternatives for small integer keys.
const insertionThreshold = 14

// stdSortThreshold is the slice length up to which the generic
// comparison sort is preferred over the bitset sweep.
const stdSortThreshold = 30

// Insertion sorts a ascending in place. Intended for tiny ranges (at
// most insertionThreshold elements); correct for any length.
//
// Complexity: O(k^2) time, O(1) space, with k = len(a).
func Insertion(a []int) {
	for i := 1; i < len(a); i++ {
		x := a[i]
		j := i - 1
		for j >= 0 && a[j] > x {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = x
	}
}
