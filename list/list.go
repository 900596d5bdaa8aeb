package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*List)(nil)

type node struct {
	v          int
	prev, next *node
}

// List is a doubly linked list of ints. first owns the chain, last points at
// its tail. Both are nil exactly when the list is empty.
// The zero value is an empty list ready to use.
type List struct {
	first, last *node
}

// New returns an empty List.
func New() *List {
	return &List{}
}

// From returns a List holding the values of s in order.
func From(s []int) *List {
	u := &List{}
	for _, v := range s {
		u.PushBack(v)
	}
	return u
}

// Empty reports whether the list holds no values.
func (u *List) Empty() bool {
	return u.first == nil
}

// Size counts the values by walking the chain.
// Time: O(n)
func (u *List) Size() int {
	sz := 0
	for cur := u.first; cur != nil; cur = cur.next {
		sz++
	}
	return sz
}

// Clear drops every node.
func (u *List) Clear() {
	u.first, u.last = nil, nil
}

// Values returns the values front to back as interface{}.
func (u *List) Values() []interface{} {
	vs := []interface{}{}
	for cur := u.first; cur != nil; cur = cur.next {
		vs = append(vs, cur.v)
	}
	return vs
}

// Slice returns the values front to back.
func (u *List) Slice() []int {
	var s []int
	for cur := u.first; cur != nil; cur = cur.next {
		s = append(s, cur.v)
	}
	return s
}

func (u *List) String() string {
	var strs []string
	for cur := u.first; cur != nil; cur = cur.next {
		strs = append(strs, fmt.Sprint(cur.v))
	}
	return "List\n" + strings.Join(strs, ", ")
}

// Equals reports whether the list holds exactly s, element by element.
func (u *List) Equals(s []int) bool {
	cur := u.first
	for _, v := range s {
		if cur == nil || cur.v != v {
			return false
		}
		cur = cur.next
	}
	return cur == nil
}

// All iterates the values front to back. The list must not be modified during
// iteration.
func (u *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for cur := u.first; cur != nil; cur = cur.next {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// Backward iterates the values back to front.
func (u *List) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		for cur := u.last; cur != nil; cur = cur.prev {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// Front returns the first value, false if the list is empty.
func (u *List) Front() (int, bool) {
	if u.first == nil {
		return 0, false
	}
	return u.first.v, true
}

// Back returns the last value, false if the list is empty.
func (u *List) Back() (int, bool) {
	if u.last == nil {
		return 0, false
	}
	return u.last.v, true
}

func (u *List) pushFrontNode(n *node) {
	n.prev, n.next = nil, u.first
	if u.first != nil {
		u.first.prev = n
	} else {
		u.last = n
	}
	u.first = n
}

func (u *List) pushBackNode(n *node) {
	n.prev, n.next = u.last, nil
	if u.last != nil {
		u.last.next = n
	} else {
		u.first = n
	}
	u.last = n
}

// unlink splices n out of the chain, fixing the ends when n is one of them.
func (u *List) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		u.first = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		u.last = n.prev
	}
	n.prev, n.next = nil, nil
}

// nodeAt walks to position i. Returns nil when i is out of range.
func (u *List) nodeAt(i int) *node {
	if i < 0 {
		return nil
	}
	cur := u.first
	for ; cur != nil && i > 0; i-- {
		cur = cur.next
	}
	return cur
}

// PushFront inserts v before the first value.
// Time: O(1)
func (u *List) PushFront(v int) {
	u.pushFrontNode(&node{v: v})
}

// PushBack appends v after the last value.
// Time: O(1)
func (u *List) PushBack(v int) {
	u.pushBackNode(&node{v: v})
}

// PopFront removes and returns the first value. Returns ErrEmpty on an empty list.
// Time: O(1)
func (u *List) PopFront() (int, error) {
	n := u.first
	if n == nil {
		return 0, ErrEmpty
	}
	u.unlink(n)
	return n.v, nil
}

// PopBack removes and returns the last value. Returns ErrEmpty on an empty list.
// Time: O(1)
func (u *List) PopBack() (int, error) {
	n := u.last
	if n == nil {
		return 0, ErrEmpty
	}
	u.unlink(n)
	return n.v, nil
}

// Insert v so that it ends up at position i. i == 0 is PushFront, i == Size()
// appends. A position past the end changes nothing and returns an *IndexError.
// Time: O(i)
func (u *List) Insert(v, i int) error {
	if i == 0 {
		u.PushFront(v)
		return nil
	}
	prev := u.nodeAt(i - 1)
	if prev == nil {
		return &IndexError{i, u.Size()}
	}
	n := &node{v: v, prev: prev, next: prev.next}
	if n.next != nil {
		n.next.prev = n
	} else {
		u.last = n
	}
	prev.next = n
	return nil
}

// Remove the value at position i. A position past the end changes nothing and
// returns an *IndexError.
// Time: O(i)
func (u *List) Remove(i int) error {
	n := u.nodeAt(i)
	if n == nil {
		return &IndexError{i, u.Size()}
	}
	u.unlink(n)
	return nil
}

// Get returns the value at position i, or 0 when i is out of range.
// Use At to tell a stored 0 from a miss.
// Time: O(i)
func (u *List) Get(i int) int {
	if n := u.nodeAt(i); n != nil {
		return n.v
	}
	return 0
}

// At returns the value at position i, or an *IndexError when i is out of range.
// Time: O(i)
func (u *List) At(i int) (int, error) {
	if n := u.nodeAt(i); n != nil {
		return n.v, nil
	}
	return 0, &IndexError{i, u.Size()}
}

// Set the value at position i. Out of range writes change nothing; the returned
// *IndexError may be ignored by callers relying on that.
// Time: O(i)
func (u *List) Set(i, v int) error {
	n := u.nodeAt(i)
	if n == nil {
		return &IndexError{i, u.Size()}
	}
	n.v = v
	return nil
}

// Search returns the position of the first occurrence of v, or Size() if absent.
// Time: O(n)
func (u *List) Search(v int) int {
	i := 0
	for cur := u.first; cur != nil; cur = cur.next {
		if cur.v == v {
			break
		}
		i++
	}
	return i
}

// IsSorted reports whether the values are in ascending order.
// Time: O(n)
func (u *List) IsSorted() bool {
	for cur := u.first; cur != nil && cur.next != nil; cur = cur.next {
		if cur.v > cur.next.v {
			return false
		}
	}
	return true
}
