// Package array provides Array, a growable contiguous sequence of ints with
// linear and binary search, an in-place quicksort, and an implicit binary
// max-heap sharing the same storage.
//
// Capacity:
//
//   - New allocates DefaultCapacity slots (10), From allocates exactly len(s).
//   - A full array multiplies its capacity by the growth factor (DefaultGrowthFactor,
//     2) before an append or insert. Capacity never shrinks.
//
// Error policy:
//
//   - Get is total and returns 0 for an index out of range; At returns an *IndexError.
//   - Set, Insert and Remove leave the array untouched on a bad index and report an
//     *IndexError, which unwraps to ErrIndexOutOfRange.
//   - PopBack, HeapTop and HeapRemoveTop return ErrEmpty on an empty array.
//   - SearchSorted trusts its sorted precondition; SearchSortedChecked verifies it
//     and returns ErrNotSorted.
//
// An Array is not safe for concurrent use.
package array
