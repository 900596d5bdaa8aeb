// Package list provides List, a doubly linked list of ints with O(1) work at
// both ends, positional access by walking, split into halves, sorted merge and
// a recursive merge sort.
//
// Split, SplitLegacy and Merge move nodes between lists instead of copying
// values, so every node belongs to exactly one list at a time.
//
// Positional operations share one policy with package array: Get returns 0 past
// the end, At, Set, Insert and Remove report an *IndexError and change nothing.
// PopFront and PopBack return ErrEmpty on an empty list.
//
// A List is not safe for concurrent use.
package list
