package TreeSet

// A node in the TreeSet.
// l and r own their subtrees; parent is only a back reference. The sentinel
// node is the only node whose parent is nil, its l is the root of the tree
// and its r is always nil.
type node[T any] struct {
	v      T
	l, r   *node[T]
	parent *node[T]
}

// isEnd reports whether n is the sentinel.
func (n *node[T]) isEnd() bool {
	return n.parent == nil
}

// erased reports whether n was unlinked from its tree.
func (n *node[T]) erased() bool {
	return n.parent == n
}

// min of the subtree rooting at n.
// Time: O(D); Space: O(1)
func (n *node[T]) min() *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// max of the subtree rooting at n.
// Time: O(D); Space: O(1)
func (n *node[T]) max() *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// next node in in-order. Walking up past the root lands on the sentinel,
// and the sentinel's next is itself.
// Time: O(D); Space: O(1)
func (n *node[T]) next() *node[T] {
	if n.r != nil {
		return n.r.min()
	}
	p := n.parent
	for p != nil && n == p.r {
		n, p = p, p.parent
	}
	if p == nil {
		return n
	}
	return p
}

// prev node in in-order, the mirror of next. The sentinel's prev is the
// maximum; prev of the minimum wraps to the sentinel.
// Time: O(D); Space: O(1)
func (n *node[T]) prev() *node[T] {
	if n.l != nil {
		return n.l.max()
	}
	p := n.parent
	for p != nil && n == p.l {
		n, p = p, p.parent
	}
	if p == nil {
		return n
	}
	return p
}

// unlink clears the links of an erased n so a stale Iterator can't reach the
// tree through it. parent points to n itself so n isn't taken for a sentinel.
func (n *node[T]) unlink() {
	n.l, n.r, n.parent = nil, nil, n
}
