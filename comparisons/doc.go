// Package comparisons holds benchmarks only. They measure the containers of
// this module against third-party containers doing the same job:
//
//   - array search against hash lookups in https://github.com/alphadose/haxmap
//     and https://github.com/cornelk/hashmap;
//   - the array heap against github.com/emirpasic/gods/trees/binaryheap;
//   - the list against github.com/emirpasic/gods/lists/doublylinkedlist;
//   - the unbalanced tree against https://github.com/google/btree and
//     https://github.com/petar/GoLLRB.
//
// Run with go test -bench=. ./comparisons
package comparisons
