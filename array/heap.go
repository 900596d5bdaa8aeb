package array

// The heap operations treat the live values as an implicit binary max-heap:
// the parent of i is (i-1)/2, its children are 2i+1 and 2i+2.

func parent(i int) int {
	return (i - 1) / 2
}

func left(i int) int {
	return 2*i + 1
}

// siftUp moves the value at i toward the root while it exceeds its parent.
func (u *Array) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if u.data[i] <= u.data[p] {
			return
		}
		u.data[i], u.data[p] = u.data[p], u.data[i]
		i = p
	}
}

// siftDown moves the value at i toward the leaves of the heap data[:n],
// always swapping with the larger child.
func (u *Array) siftDown(i, n int) {
	for {
		c := left(i)
		if c >= n {
			return
		}
		if r := c + 1; r < n && u.data[r] > u.data[c] {
			c = r
		}
		if u.data[i] >= u.data[c] {
			return
		}
		u.data[i], u.data[c] = u.data[c], u.data[i]
		i = c
	}
}

// HeapAdd appends v and restores the heap property.
// Time: O(log n)
func (u *Array) HeapAdd(v int) {
	u.PushBack(v)
	u.siftUp(u.sz - 1)
}

// HeapTop returns the largest value without removing it.
// Returns ErrEmpty on an empty heap.
// Time: O(1)
func (u *Array) HeapTop() (int, error) {
	if u.sz == 0 {
		return 0, ErrEmpty
	}
	return u.data[0], nil
}

// HeapRemoveTop removes and returns the largest value. The last value takes
// its place and sinks. Returns ErrEmpty on an empty heap.
// Time: O(log n)
func (u *Array) HeapRemoveTop() (int, error) {
	if u.sz == 0 {
		return 0, ErrEmpty
	}
	top := u.data[0]
	u.sz--
	u.data[0] = u.data[u.sz]
	u.data[u.sz] = 0
	u.siftDown(0, u.sz)
	return top, nil
}

// Heapify rearranges arbitrary contents into a max-heap in place.
// Time: O(n)
func (u *Array) Heapify() {
	for i := u.sz/2 - 1; i >= 0; i-- {
		u.siftDown(i, u.sz)
	}
}

// HeapSort sorts the values ascending. The values are fed into a scratch heap
// and the maxima are written back from the tail.
// Time: O(n log n); Space: O(n)
func (u *Array) HeapSort() {
	scratch := New(WithCapacity(max(u.sz, 1)), WithGrowthFactor(u.growth))
	for _, v := range u.data[:u.sz] {
		scratch.HeapAdd(v)
	}
	for i := u.sz - 1; i >= 0; i-- {
		u.data[i], _ = scratch.HeapRemoveTop()
	}
}

func (u *Array) isHeap(i int) bool {
	for c := left(i); c <= left(i)+1 && c < u.sz; c++ {
		if u.data[i] < u.data[c] || !u.isHeap(c) {
			return false
		}
	}
	return true
}

// IsHeap reports whether every parent is at least as large as its children.
// Recursive.
// Time: O(n)
func (u *Array) IsHeap() bool {
	return u.isHeap(0)
}
