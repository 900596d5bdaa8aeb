// Package tree provides Tree, an unbalanced binary search tree of distinct ints.
//
// Insert descends by comparison and hangs a new leaf; a value already present
// is not stored twice. Remove replaces a node that has two children by its
// in-order successor, the minimum of the right subtree, and moves that node
// rather than copying its value. No rebalancing happens, so D, the height of
// the tree, is O(n) in the worst case.
//
// Traversals come in two forms: PreOrder, InOrder and PostOrder return
// iter.Seq values that stop when the loop body breaks, and WalkPreOrder,
// WalkInOrder and WalkPostOrder call a Visitor for every value.
//
// A Tree is not safe for concurrent use.
package tree
