package TreeSet

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Locked is a TreeSet guarded by a sync.RWMutex, for callers that share a set
// between goroutines. Writers are serialized and readers run together.
// Positions can't leave the lock, so Locked works with values only.
// The zero value is an empty set ready to use.
type Locked[T constraints.Ordered] struct {
	mu sync.RWMutex
	s  TreeSet[T]
}

func NewLocked[T constraints.Ordered]() *Locked[T] {
	return new(Locked[T])
}

func (u *Locked[T]) Put(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.s.Put(v)
}

func (u *Locked[T]) Has(v T) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.s.Has(v)
}

func (u *Locked[T]) Remove(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.s.Remove(v)
}

func (u *Locked[T]) Size() uint {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.s.Size()
}

// Take removes and returns the smallest element, the zero value if empty.
func (u *Locked[T]) Take() T {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.s.Take()
}

// Range holds the read lock while calling f, so f mustn't modify u.
func (u *Locked[T]) Range(f func(T) bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	u.s.Range(f)
}

func (u *Locked[T]) Minimum() (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.s.Minimum()
}

func (u *Locked[T]) Maximum() (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.s.Maximum()
}

// Ceiling returns the smallest element not less than v.
func (u *Locked[T]) Ceiling(v T) (r T, ok bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if it := u.s.LowerBound(v); !it.IsEnd() {
		r, ok = it.Value(), true
	}
	return
}

// Higher returns the smallest element greater than v.
func (u *Locked[T]) Higher(v T) (r T, ok bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if it := u.s.UpperBound(v); !it.IsEnd() {
		r, ok = it.Value(), true
	}
	return
}

func (u *Locked[T]) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.s.Clear()
}

// Snapshot returns an unguarded copy of the current contents.
func (u *Locked[T]) Snapshot() *TreeSet[T] {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.s.Clone()
}
