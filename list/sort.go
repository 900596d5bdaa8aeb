package list

// cut moves the nodes up to and including at into lo and the rest into hi,
// leaving u empty. at must be a node of u.
func (u *List) cut(at *node) (lo, hi *List) {
	lo, hi = &List{u.first, at}, &List{at.next, u.last}
	if at.next != nil {
		at.next.prev = nil
		at.next = nil
	} else {
		hi.last = nil
	}
	u.first, u.last = nil, nil
	return
}

// Split moves the first Size()/2 nodes into lo and the remaining nodes into
// hi. u is left empty. For fewer than two values lo is empty.
// Time: O(n)
func (u *List) Split() (lo, hi *List) {
	k := u.Size() / 2
	if k == 0 {
		hi = &List{u.first, u.last}
		u.first, u.last = nil, nil
		return &List{}, hi
	}
	return u.cut(u.nodeAt(k - 1))
}

// SplitLegacy splits like the historical implementation did: with k = Size()/2,
// decremented when odd, lo receives the first k+1 nodes and hi the rest. This
// gives uneven halves for some sizes (6 splits 3/3 but 4 splits 3/1).
// u is left empty.
// Time: O(n)
func (u *List) SplitLegacy() (lo, hi *List) {
	if u.first == nil {
		return &List{}, &List{}
	}
	k := u.Size() / 2
	if k%2 == 1 {
		k--
	}
	return u.cut(u.nodeAt(k))
}

// Merge appends to u the values of the ascending lists a and b in ascending
// order, taking from a on ties. Nodes are moved, a and b are left empty.
// a, b and u must be distinct lists.
// Time: O(len(a)+len(b))
func (u *List) Merge(a, b *List) {
	for a.first != nil || b.first != nil {
		src := b
		if b.first == nil || (a.first != nil && a.first.v <= b.first.v) {
			src = a
		}
		n := src.first
		src.unlink(n)
		u.pushBackNode(n)
	}
}

// MergeSort sorts the values ascending. Stable. Recursive: each call splits
// the list, sorts both halves and merges them back.
// Time: O(n log n); Space: O(log n) stack
func (u *List) MergeSort() {
	if u.first == nil || u.first.next == nil {
		return
	}
	if u.first.next == u.last {
		if u.first.v > u.last.v {
			u.first.v, u.last.v = u.last.v, u.first.v
		}
		return
	}
	lo, hi := u.Split()
	lo.MergeSort()
	hi.MergeSort()
	u.Merge(lo, hi)
}
