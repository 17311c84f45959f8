package TreeSet

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// TreeSet is a set of unique values kept in a binary search tree. The tree is
// never rebalanced, so its height D depends on the order of insertions and
// removals, and D is O(n) in the worst case (for example sorted insertions).
// The tree is anchored at a sentinel node owned by the TreeSet which doubles
// as the End position of iterators.
// The zero value is an empty set ready to use. A TreeSet mustn't be copied by
// value after first use since iterators point into it; use Clone, Assign or
// Swap instead.
// TreeSet isn't safe for concurrent use. Readers are unsafe next to a writer as
// well since removals relink nodes in place. See Locked.
type TreeSet[T constraints.Ordered] struct {
	end node[T] //sentinel. end.l is the root.
	sz  uint
}

// New empty TreeSet.
func New[T constraints.Ordered]() *TreeSet[T] {
	return new(TreeSet[T])
}

// From creates a TreeSet by inserting vs in the given order. Repeated values are
// inserted once. The shape of the tree follows the order of vs.
// Time: O(n*D)
func From[T constraints.Ordered](vs ...T) *TreeSet[T] {
	u := New[T]()
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// FromSorted builds a balanced TreeSet from sli in O(n), which is faster than
// repeated inserts and gives a tree of height log2(n+1) rounded up. sli must be
// sorted in strictly ascending order. If safe is true the order is checked
// first and FromSorted panics with InvalidSliceError when it's broken;
// otherwise it's up to the caller, and a wrong order gives a corrupt tree.
// Time: O(n)
func FromSorted[T constraints.Ordered](sli []T, safe bool) *TreeSet[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if !(sli[i-1] < sli[i]) {
				panic(InvalidSliceError[T]{sli[i-1], sli[i]})
			}
		}
	}
	u := New[T]()
	var build func(s []T, p *node[T]) *node[T]
	build = func(s []T, p *node[T]) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &node[T]{v: s[mid], parent: p}
		n.l, n.r = build(s[:mid], n), build(s[mid+1:], n)
		return n
	}
	u.end.l, u.sz = build(sli, &u.end), uint(len(sli))
	return u
}

// Size of the set.
// Time: O(1)
func (u *TreeSet[T]) Size() uint {
	return u.sz
}

// Empty returns true if the set has no element.
func (u *TreeSet[T]) Empty() bool {
	return u.end.l == nil
}

// Begin position, the smallest element. Equals End when the set is empty.
// Time: O(D)
func (u *TreeSet[T]) Begin() Iterator[T] {
	return Iterator[T]{u.end.min()}
}

// End position. It's past the last element and holds no value.
func (u *TreeSet[T]) End() Iterator[T] {
	return Iterator[T]{&u.end}
}

// RBegin is the first position of the reverse order, Reverse(End()).
func (u *TreeSet[T]) RBegin() ReverseIterator[T] {
	return Reverse(u.End())
}

// REnd is the position past the smallest element in reverse order, Reverse(Begin()).
func (u *TreeSet[T]) REnd() ReverseIterator[T] {
	return Reverse(u.Begin())
}

// Insert v into the set. The second return value reports whether v was
// already present: when it's true the set is unchanged and the Iterator points
// to the existing element, otherwise it points to the new element.
// Time: O(D)
func (u *TreeSet[T]) Insert(v T) (Iterator[T], bool) {
	p, cur, left := &u.end, u.end.l, true
	for cur != nil {
		if v < cur.v {
			p, cur, left = cur, cur.l, true
		} else if cur.v < v {
			p, cur, left = cur, cur.r, false
		} else {
			return Iterator[T]{cur}, true
		}
	}
	n := &node[T]{v: v, parent: p}
	if left {
		p.l = n
	} else {
		p.r = n
	}
	u.sz++
	return Iterator[T]{n}, false
}

// Put v into the set. Returns true if v wasn't present before.
// Time: O(D)
func (u *TreeSet[T]) Put(v T) bool {
	_, in := u.Insert(v)
	return !in
}

func (u *TreeSet[T]) find(v T) *node[T] {
	for cur := u.end.l; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if cur.v < v {
			cur = cur.r
		} else {
			return cur
		}
	}
	return &u.end
}

// Find the position of v. Returns End if v isn't in the set.
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Find(v T) Iterator[T] {
	return Iterator[T]{u.find(v)}
}

// Has v in the set.
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Has(v T) bool {
	return !u.find(v).isEnd()
}

// LowerBound returns the first position whose element is not less than v, or
// End if there's none.
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) LowerBound(v T) Iterator[T] {
	best := &u.end
	for cur := u.end.l; cur != nil; {
		if cur.v < v {
			cur = cur.r
		} else {
			best, cur = cur, cur.l
		}
	}
	return Iterator[T]{best}
}

// UpperBound returns the first position whose element is greater than v, or
// End if there's none.
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) UpperBound(v T) Iterator[T] {
	best := &u.end
	for cur := u.end.l; cur != nil; {
		if v < cur.v {
			best, cur = cur, cur.l
		} else {
			cur = cur.r
		}
	}
	return Iterator[T]{best}
}

// Minimum element of the set.
// Time: O(D)
func (u *TreeSet[T]) Minimum() (T, bool) {
	n := u.end.min()
	return n.v, !n.isEnd()
}

// Maximum element of the set.
// Time: O(D)
func (u *TreeSet[T]) Maximum() (T, bool) {
	if u.end.l == nil {
		return u.end.v, false
	}
	return u.end.l.max().v, true
}

// Erase the element at it. Returns the position of the element following it
// in order, or End if it was the largest. Only iterators pointing to the erased
// element are invalidated.
// Returns ErrEraseEnd if it is an End position and ErrInvalidIterator if it's
// the zero Iterator or an already erased position; nothing changes in both cases.
// Time: O(D)
func (u *TreeSet[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	if it.n == nil || it.n.erased() {
		return u.End(), errors.WithStack(ErrInvalidIterator)
	}
	if it.n.isEnd() {
		return u.End(), errors.WithStack(ErrEraseEnd)
	}
	nx := it.n.next()
	u.erase(it.n)
	return Iterator[T]{nx}, nil
}

// Remove v from the set. Returns true if v was present.
// Time: O(D)
func (u *TreeSet[T]) Remove(v T) bool {
	if n := u.find(v); !n.isEnd() {
		u.erase(n)
		return true
	}
	return false
}

// Take removes and returns the smallest element. Returns the zero value if the
// set is empty.
// Time: O(D)
func (u *TreeSet[T]) Take() (v T) {
	if n := u.end.min(); !n.isEnd() {
		v = n.v
		u.erase(n)
	}
	return
}

// names of the relink cases of erase, used in logs.
const (
	eraseLeaf     = "leaf"
	eraseOneChild = "one child"
	eraseTwo      = "two children"
)

// erase relinks the neighbors of n so that the in-order of the rest of the
// tree is kept, then unlinks n.
// Time: O(D)
func (u *TreeSet[T]) erase(n *node[T]) {
	var c string
	switch {
	case n.l == nil && n.r == nil:
		c = eraseLeaf
		transplant(n, nil)
	case n.l == nil:
		c = eraseOneChild
		transplant(n, n.r)
	case n.r == nil:
		c = eraseOneChild
		transplant(n, n.l)
	default:
		c = eraseTwo
		s := n.r.min() // has no left child.
		if s.parent != n {
			transplant(s, s.r)
			s.r = n.r
			s.r.parent = s
		}
		transplant(n, s)
		s.l = n.l
		s.l.parent = s
	}
	if debugEnabled() {
		Log.WithFields(logrus.Fields{"value": n.v, "case": c, "size": u.sz - 1}).Debug("treeset: erase")
	}
	n.unlink()
	u.sz--
}

// transplant puts the subtree b (possibly nil) in the place of a under a's parent.
// a's own links are left untouched.
func transplant[T any](a, b *node[T]) {
	if p := a.parent; p.l == a {
		p.l = b
	} else {
		p.r = b
	}
	if b != nil {
		b.parent = a.parent
	}
}

// Clear removes every element and unlinks every node, so iterators to them
// become invalid. The sentinel stays usable.
// Time: O(n); Space: O(D)
func (u *TreeSet[T]) Clear() {
	var st []*node[T]
	if u.end.l != nil {
		st = append(st, u.end.l)
	}
	for len(st) > 0 {
		n := st[len(st)-1]
		st = st[:len(st)-1]
		if n.l != nil {
			st = append(st, n.l)
		}
		if n.r != nil {
			st = append(st, n.r)
		}
		n.unlink()
	}
	u.end.l, u.sz = nil, 0
}

// Clone returns a TreeSet with the same elements in independent storage. The
// clone has the same shape as u.
// Time: O(n); Space: O(D)
func (u *TreeSet[T]) Clone() *TreeSet[T] {
	c := &TreeSet[T]{sz: u.sz}
	if u.end.l == nil {
		return c
	}
	c.end.l = &node[T]{v: u.end.l.v, parent: &c.end}
	st := [][2]*node[T]{{u.end.l, c.end.l}} //[source, copy]
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if src, dst := top[0], top[1]; src.l != nil {
			dst.l = &node[T]{v: src.l.v, parent: dst}
			st = append(st, [2]*node[T]{src.l, dst.l})
		}
		if src, dst := top[0], top[1]; src.r != nil {
			dst.r = &node[T]{v: src.r.v, parent: dst}
			st = append(st, [2]*node[T]{src.r, dst.r})
		}
	}
	return c
}

// Swap the contents of u and o. Iterators to elements follow the elements into
// the other set; End positions stay with their own set.
// Time: O(1)
func (u *TreeSet[T]) Swap(o *TreeSet[T]) {
	u.end.l, o.end.l = o.end.l, u.end.l
	u.sz, o.sz = o.sz, u.sz
	if u.end.l != nil {
		u.end.l.parent = &u.end
	}
	if o.end.l != nil {
		o.end.l.parent = &o.end
	}
}

// Assign replaces the contents of u with a copy of o. The copy is built
// before u is touched; the old elements of u are cleared afterward.
// Time: O(n+m)
func (u *TreeSet[T]) Assign(o *TreeSet[T]) {
	if u == o {
		return
	}
	c := o.Clone()
	u.Swap(c)
	c.Clear()
}

// Equal returns true if u and o hold the same elements.
// Time: O(n)
func (u *TreeSet[T]) Equal(o *TreeSet[T]) bool {
	if u.sz != o.sz {
		return false
	}
	for a, b := u.end.min(), o.end.min(); !a.isEnd() && !b.isEnd(); a, b = a.next(), b.next() {
		if a.v != b.v {
			return false
		}
	}
	return true
}

// Range calls f on the elements in ascending order. Stops when f returns false.
// The set mustn't be modified during Range.
// Time: amortized O(1) per element
func (u *TreeSet[T]) Range(f func(T) bool) {
	for n := u.end.min(); !n.isEnd(); n = n.next() {
		if !f(n.v) {
			return
		}
	}
}

// All elements in ascending order.
func (u *TreeSet[T]) All() iter.Seq[T] {
	return u.Range
}

// Backward returns the elements in descending order.
func (u *TreeSet[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := u.end.prev(); !n.isEnd(); n = n.prev() {
			if !yield(n.v) {
				return
			}
		}
	}
}

// InOrder returns a closure f acting like an iterator over the elements in
// ascending order: val, valid = f(). val is meaningful only if valid is true,
// and valid can't turn true after it first became false.
func (u *TreeSet[T]) InOrder() func() (T, bool) {
	cur := u.end.min()
	return func() (v T, has bool) {
		if cur.isEnd() {
			return
		}
		v, has, cur = cur.v, true, cur.next()
		return
	}
}

// Values of the set in ascending order.
func (u *TreeSet[T]) Values() []T {
	vs := make([]T, 0, u.sz)
	for n := u.end.min(); !n.isEnd(); n = n.next() {
		vs = append(vs, n.v)
	}
	return vs
}

// Height of the tree, 0 for an empty set.
// Time: O(n); Space: O(D)
func (u *TreeSet[T]) Height() (h int) {
	type entry struct {
		n *node[T]
		d int
	}
	var st []entry
	if u.end.l != nil {
		st = append(st, entry{u.end.l, 1})
	}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		h = max(h, top.d)
		if top.n.l != nil {
			st = append(st, entry{top.n.l, top.d + 1})
		}
		if top.n.r != nil {
			st = append(st, entry{top.n.r, top.d + 1})
		}
	}
	return
}

// Corrupt returns whether the tree has corrupt structures: broken parent links,
// elements out of order, a misplaced sentinel or a wrong size. The first
// violation found is logged at warn level.
// Time: O(n); Space: O(D)
func (u *TreeSet[T]) Corrupt() bool {
	report := func(msg string, n *node[T]) bool {
		Log.WithFields(logrus.Fields{"value": n.v, "size": u.sz}).Warn("treeset: corrupt: " + msg)
		return true
	}
	if u.end.parent != nil || u.end.r != nil {
		return report("sentinel has parent or right child", &u.end)
	}
	if u.end.l != nil && u.end.l.parent != &u.end {
		return report("root isn't linked to sentinel", u.end.l)
	}
	var (
		st    []*node[T]
		prev  *node[T]
		count uint
	)
	for cur := u.end.l; cur != nil || len(st) > 0; {
		for ; cur != nil; cur = cur.l {
			if cur.l != nil && cur.l.parent != cur || cur.r != nil && cur.r.parent != cur {
				return report("child isn't linked to parent", cur)
			}
			st = append(st, cur)
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if prev != nil && !(prev.v < cur.v) {
			return report("elements out of order", cur)
		}
		prev = cur
		count++
		cur = cur.r
	}
	if count != u.sz {
		return report("size mismatch", &u.end)
	}
	return false
}
