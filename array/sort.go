package array

// partition data[i..j] around the value at i. The pivot is parked at j while
// smaller values are packed to the left, then dropped into its final slot.
// Returns the pivot's final index.
func (u *Array) partition(i, j int) int {
	pivot := u.data[i]
	u.data[i], u.data[j] = u.data[j], u.data[i]
	l := i
	for k := i; k < j; k++ {
		if u.data[k] < pivot {
			u.data[k], u.data[l] = u.data[l], u.data[k]
			l++
		}
	}
	u.data[l], u.data[j] = u.data[j], u.data[l]
	return l
}

func (u *Array) quickSort(i, j int) {
	if i >= j {
		return
	}
	p := u.partition(i, j)
	u.quickSort(i, p-1)
	u.quickSort(p+1, j)
}

// QuickSort sorts the values ascending in place. Not stable. Recursive.
// The leftmost value of each range is the pivot, so sorted or reversed input
// hits the quadratic case.
// Time: average O(n log n), worst O(n^2)
func (u *Array) QuickSort() {
	u.quickSort(0, u.sz-1)
}
