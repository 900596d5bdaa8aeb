package tree

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*Tree)(nil)

// A node in the Tree. l holds strictly smaller values, r strictly larger.
type node struct {
	v    int
	l, r *node
}

// Tree is an unbalanced binary search tree of distinct ints. Its height
// depends on insertion order: sorted input degrades it to a list.
// The zero value is an empty tree ready to use.
type Tree struct {
	root *node
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// From inserts the values of s in order. Repeated values are dropped.
func From(s []int) *Tree {
	u := &Tree{}
	for _, v := range s {
		u.Insert(v)
	}
	return u
}

// BuildSorted builds a balanced tree from s, which must be strictly ascending,
// by making each midpoint the root of its range. Returns ErrUnsortedInput
// otherwise.
// Time: O(n)
func BuildSorted(s []int) (*Tree, error) {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return nil, fmt.Errorf("%w: s[%d]=%d, s[%d]=%d", ErrUnsortedInput, i-1, s[i-1], i, s[i])
		}
	}
	var build func([]int) *node
	build = func(s []int) *node {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		return &node{s[mid], build(s[:mid]), build(s[mid+1:])}
	}
	return &Tree{build(s)}, nil
}

// Empty reports whether the tree holds no values.
func (u *Tree) Empty() bool {
	return u.root == nil
}

// Clear drops every node.
func (u *Tree) Clear() {
	u.root = nil
}

func (n *node) size() int {
	if n == nil {
		return 0
	}
	return 1 + n.l.size() + n.r.size()
}

// Size counts the nodes. Recursive.
// Time: O(n)
func (u *Tree) Size() int {
	return u.root.size()
}

func (n *node) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.l.height(), n.r.height())
}

// Height is the number of nodes on the longest root-to-leaf path: 0 for an
// empty tree, 1 for a single node. Recursive.
// Time: O(n)
func (u *Tree) Height() int {
	return u.root.height()
}

// Contains reports whether v is stored.
// Time: O(D); Space: O(1)
func (u *Tree) Contains(v int) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// insert v into the subtree at *curPtr. curPtr is passed by reference so the
// new leaf can be hung in place.
func insert(curPtr **node, v int) bool {
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if v < cur.v {
			curPtr = &cur.l
		} else if v == cur.v {
			return false
		} else {
			curPtr = &cur.r
		}
	}
	*curPtr = &node{v: v}
	return true
}

// Insert v. Returns false if v is already stored, in which case the tree is unchanged.
// Time: O(D)
func (u *Tree) Insert(v int) bool {
	return insert(&u.root, v)
}

// detachMin unhooks the smallest node of the subtree at *curPtr, moving its
// right subtree into the vacated slot, and returns it with no children.
func detachMin(curPtr **node) *node {
	for (*curPtr).l != nil {
		curPtr = &(*curPtr).l
	}
	m := *curPtr
	*curPtr = m.r
	m.r = nil
	return m
}

// remove v from the subtree at *curPtr recursively. A node with two children
// is replaced by its in-order successor node, which takes over both subtrees.
func remove(curPtr **node, v int) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if v < cur.v {
		return remove(&cur.l, v)
	} else if v > cur.v {
		return remove(&cur.r, v)
	}
	if cur.l == nil {
		*curPtr = cur.r
	} else if cur.r == nil {
		*curPtr = cur.l
	} else {
		s := detachMin(&cur.r)
		s.l, s.r = cur.l, cur.r
		*curPtr = s
	}
	cur.l, cur.r = nil, nil
	return true
}

// Remove v. Returns false if v was not stored. Recursive.
// Time: O(D)
func (u *Tree) Remove(v int) bool {
	return remove(&u.root, v)
}

// Root returns the value at the root, false for an empty tree.
func (u *Tree) Root() (int, bool) {
	if u.root == nil {
		return 0, false
	}
	return u.root.v, true
}

// Minimum returns the smallest value, false for an empty tree.
// Time: O(D); Space: O(1)
func (u *Tree) Minimum() (int, bool) {
	cur := u.root
	if cur == nil {
		return 0, false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum returns the largest value, false for an empty tree.
// Time: O(D); Space: O(1)
func (u *Tree) Maximum() (int, bool) {
	cur := u.root
	if cur == nil {
		return 0, false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// corrupt reports whether a value of the subtree falls outside (lo, hi).
// A nil bound is open.
func (n *node) corrupt(lo, hi *int) bool {
	if n == nil {
		return false
	}
	if (lo != nil && n.v <= *lo) || (hi != nil && n.v >= *hi) {
		return true
	}
	return n.l.corrupt(lo, &n.v) || n.r.corrupt(&n.v, hi)
}

// Corrupt reports whether some node breaks the ordering: a left descendant not
// strictly smaller, or a right descendant not strictly larger. Recursive.
// Time: O(n)
func (u *Tree) Corrupt() bool {
	return u.root.corrupt(nil, nil)
}

// Values returns the values in ascending order.
func (u *Tree) Values() []interface{} {
	vs := []interface{}{}
	for v := range u.InOrder() {
		vs = append(vs, v)
	}
	return vs
}

func (u *Tree) String() string {
	var strs []string
	for v := range u.InOrder() {
		strs = append(strs, fmt.Sprint(v))
	}
	return "Tree\n" + strings.Join(strs, ", ")
}
