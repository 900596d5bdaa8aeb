package tree

import "iter"

// Each traversal helper stops and returns false as soon as yield does.

func (n *node) preOrder(yield func(int) bool) bool {
	return n == nil || (yield(n.v) && n.l.preOrder(yield) && n.r.preOrder(yield))
}

func (n *node) inOrder(yield func(int) bool) bool {
	return n == nil || (n.l.inOrder(yield) && yield(n.v) && n.r.inOrder(yield))
}

func (n *node) postOrder(yield func(int) bool) bool {
	return n == nil || (n.l.postOrder(yield) && n.r.postOrder(yield) && yield(n.v))
}

// PreOrder iterates root, left subtree, right subtree. Recursive.
// The tree must not be modified during the iteration.
func (u *Tree) PreOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		u.root.preOrder(yield)
	}
}

// InOrder iterates the values in ascending order. Recursive.
// The tree must not be modified during the iteration.
func (u *Tree) InOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		u.root.inOrder(yield)
	}
}

// PostOrder iterates left subtree, right subtree, root. Recursive.
// The tree must not be modified during the iteration.
func (u *Tree) PostOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		u.root.postOrder(yield)
	}
}

// Visitor receives one stored value per call. Any accumulator lives in the
// closure.
type Visitor func(v int)

func walk(seq iter.Seq[int], f Visitor) {
	for v := range seq {
		f(v)
	}
}

// WalkPreOrder calls f on every value, root before its subtrees.
func (u *Tree) WalkPreOrder(f Visitor) {
	walk(u.PreOrder(), f)
}

// WalkInOrder calls f on every value in ascending order.
func (u *Tree) WalkInOrder(f Visitor) {
	walk(u.InOrder(), f)
}

// WalkPostOrder calls f on every value, subtrees before their root.
func (u *Tree) WalkPostOrder(f Visitor) {
	walk(u.PostOrder(), f)
}
