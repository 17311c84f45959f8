package TreeSet

import "github.com/g-m-twostay/go-treeset/Sets"

// PutAll elements of s. Returns the number of elements that were new to u.
// Time: O(m*D)
func (u *TreeSet[T]) PutAll(s Sets.Set[T]) (n uint) {
	s.Range(func(v T) bool {
		if u.Put(v) {
			n++
		}
		return true
	})
	return
}

// RemoveAll elements of s from u. Returns the number of elements removed.
// s may be u itself.
// Time: O(m*D)
func (u *TreeSet[T]) RemoveAll(s Sets.Set[T]) (n uint) {
	if o, ok := s.(*TreeSet[T]); ok && o == u {
		n = u.sz
		u.Clear()
		return
	}
	s.Range(func(v T) bool {
		if u.Remove(v) {
			n++
		}
		return true
	})
	return
}

// Eq returns true if u and s hold the same elements.
// Time: O(n*D), O(n) if s is a *TreeSet.
func (u *TreeSet[T]) Eq(s Sets.Set[T]) bool {
	if o, ok := s.(*TreeSet[T]); ok {
		return u.Equal(o)
	}
	if u.sz != s.Size() {
		return false
	}
	eq := true
	s.Range(func(v T) bool {
		eq = u.Has(v)
		return eq
	})
	return eq
}

// Union puts every element of s into u.
func (u *TreeSet[T]) Union(s Sets.Set[T]) {
	u.PutAll(s)
}

// Intersect removes from u the elements that aren't in s.
// Time: O(n*D)
func (u *TreeSet[T]) Intersect(s Sets.Set[T]) {
	for n := u.end.min(); !n.isEnd(); {
		nx := n.next()
		if !s.Has(n.v) {
			u.erase(n)
		}
		n = nx
	}
}

// Filter returns a new TreeSet with the elements of u for which f is true. The
// new tree is balanced.
// Time: O(n)
func (u *TreeSet[T]) Filter(f func(T) bool) Sets.ExtendedSet[T] {
	vs := make([]T, 0, u.sz)
	for n := u.end.min(); !n.isEnd(); n = n.next() {
		if f(n.v) {
			vs = append(vs, n.v)
		}
	}
	return FromSorted(vs, false)
}
