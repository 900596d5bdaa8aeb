package array

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*Array)(nil)

// Array is a growable contiguous sequence of ints. Indices [0, Size()) hold
// live values; the backing slice is the capacity and never shrinks.
// The zero value is not ready to use, create one with New or From.
type Array struct {
	data   []int // len(data) is the capacity.
	sz     int
	growth int
}

// New returns an empty Array with DefaultCapacity slots unless opts say otherwise.
func New(opts ...Option) *Array {
	o := gatherOptions(opts)
	return &Array{data: make([]int, o.capacity), growth: o.growth}
}

// From returns an Array holding a copy of s with capacity equal to len(s).
func From(s []int) *Array {
	return &Array{data: slices.Clone(s), sz: len(s), growth: DefaultGrowthFactor}
}

// Empty reports whether the array holds no values.
func (u *Array) Empty() bool {
	return u.sz == 0
}

// Size returns the number of live values.
func (u *Array) Size() int {
	return u.sz
}

// Cap returns the number of allocated slots.
func (u *Array) Cap() int {
	return len(u.data)
}

// Clear drops every value. The capacity is kept.
func (u *Array) Clear() {
	clear(u.data[:u.sz])
	u.sz = 0
}

// Values returns the live values as a fresh slice of interface{}.
func (u *Array) Values() []interface{} {
	vs := make([]interface{}, u.sz)
	for i, v := range u.data[:u.sz] {
		vs[i] = v
	}
	return vs
}

// Slice returns a copy of the live values.
func (u *Array) Slice() []int {
	return slices.Clone(u.data[:u.sz])
}

func (u *Array) String() string {
	strs := make([]string, u.sz)
	for i, v := range u.data[:u.sz] {
		strs[i] = fmt.Sprint(v)
	}
	return "Array\n" + strings.Join(strs, ", ")
}

// Equals reports whether the array holds exactly s, element by element.
func (u *Array) Equals(s []int) bool {
	return slices.Equal(u.data[:u.sz], s)
}

// All iterates index/value pairs in order. The array must not be modified
// during iteration.
func (u *Array) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < u.sz; i++ {
			if !yield(i, u.data[i]) {
				return
			}
		}
	}
}

// grow multiplies the capacity by the growth factor and moves the live values.
// Time: O(n)
func (u *Array) grow() {
	nc := make([]int, max(len(u.data)*u.growth, 1))
	copy(nc, u.data[:u.sz])
	u.data = nc
}

// PushBack appends v, growing first only when the array is full.
// Time: amortized O(1)
func (u *Array) PushBack(v int) {
	if u.sz == len(u.data) {
		u.grow()
	}
	u.data[u.sz] = v
	u.sz++
}

// PopBack removes and returns the last value. Returns ErrEmpty on an empty array.
// Time: O(1)
func (u *Array) PopBack() (int, error) {
	if u.sz == 0 {
		return 0, ErrEmpty
	}
	u.sz--
	v := u.data[u.sz]
	u.data[u.sz] = 0
	return v, nil
}

// Insert v at index i, shifting the values at and after i one slot right.
// i == Size() appends. Any other i outside [0, Size()] leaves the array
// untouched and returns an *IndexError.
// Time: O(n)
func (u *Array) Insert(v, i int) error {
	if i < 0 || i > u.sz {
		return &IndexError{i, u.sz}
	}
	if u.sz == len(u.data) {
		u.grow()
	}
	copy(u.data[i+1:u.sz+1], u.data[i:u.sz])
	u.data[i] = v
	u.sz++
	return nil
}

// Remove the value at index i, shifting the later values one slot left.
// An i outside [0, Size()) leaves the array untouched and returns an *IndexError.
// Time: O(n)
func (u *Array) Remove(i int) error {
	if i < 0 || i >= u.sz {
		return &IndexError{i, u.sz}
	}
	copy(u.data[i:u.sz-1], u.data[i+1:u.sz])
	u.sz--
	u.data[u.sz] = 0
	return nil
}

// Get returns the value at index i, or 0 when i is out of range.
// Use At to tell a stored 0 from a miss.
func (u *Array) Get(i int) int {
	if i < 0 || i >= u.sz {
		return 0
	}
	return u.data[i]
}

// At returns the value at index i, or an *IndexError when i is out of range.
func (u *Array) At(i int) (int, error) {
	if i < 0 || i >= u.sz {
		return 0, &IndexError{i, u.sz}
	}
	return u.data[i], nil
}

// Set the value at index i. Out of range writes change nothing; the returned
// *IndexError may be ignored by callers relying on that.
func (u *Array) Set(i, v int) error {
	if i < 0 || i >= u.sz {
		return &IndexError{i, u.sz}
	}
	u.data[i] = v
	return nil
}

// Swap the values at i and j. Out of range indices are ignored.
func (u *Array) Swap(i, j int) {
	if i < 0 || j < 0 || i >= u.sz || j >= u.sz {
		return
	}
	u.data[i], u.data[j] = u.data[j], u.data[i]
}

// Search returns the index of the first occurrence of v, or Size() if absent.
// Time: O(n)
func (u *Array) Search(v int) int {
	for i, x := range u.data[:u.sz] {
		if x == v {
			return i
		}
	}
	return u.sz
}

// SearchSorted returns the index of some occurrence of v, or Size() if absent.
// The array must be sorted ascending, otherwise the result is meaningless.
// Time: O(log n)
func (u *Array) SearchSorted(v int) int {
	for start, end := 0, u.sz; start < end; {
		mid := int(uint(start+end) >> 1)
		if v < u.data[mid] {
			end = mid
		} else if u.data[mid] < v {
			start = mid + 1
		} else {
			return mid
		}
	}
	return u.sz
}

// SearchSortedChecked is SearchSorted preceded by an IsSorted check, returning
// ErrNotSorted instead of a meaningless index.
// Time: O(n)
func (u *Array) SearchSortedChecked(v int) (int, error) {
	if !u.IsSorted() {
		return u.sz, ErrNotSorted
	}
	return u.SearchSorted(v), nil
}

// IsSorted reports whether the values are in ascending order.
func (u *Array) IsSorted() bool {
	for i := 1; i < u.sz; i++ {
		if u.data[i-1] > u.data[i] {
			return false
		}
	}
	return true
}
