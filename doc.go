// Package fundamentals is the root of three independent containers of ints:
//
//   - array: a growable array with linear and binary search, quicksort and an
//     implicit binary max-heap over the same storage;
//   - list: a doubly linked list with split, sorted merge and merge sort;
//   - tree: an unbalanced binary search tree with successor-promoting removal
//     and pre-, in- and post-order traversals.
//
// Every container implements github.com/emirpasic/gods/containers.Container.
// None of them is safe for concurrent use; callers sharing one must serialize
// access to it.
package fundamentals
