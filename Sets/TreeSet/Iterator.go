package TreeSet

// Iterator is a position in a TreeSet: either an element or End. Iterators are
// compared with ==. An Iterator stays valid until its element is erased,
// regardless of other insertions and removals.
type Iterator[T any] struct {
	n *node[T]
}

// Value at the position. Panics with ErrDerefEnd on an End position.
func (it Iterator[T]) Value() T {
	if it.n.isEnd() {
		panic(ErrDerefEnd)
	}
	return it.n.v
}

// IsEnd returns true if it is the End position of its set.
func (it Iterator[T]) IsEnd() bool {
	return it.n.isEnd()
}

// Next position in ascending order. The Next of the largest element is End and
// the Next of End is End.
// Time: amortized O(1), O(D) worst case.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{it.n.next()}
}

// Prev position in ascending order. The Prev of End is the largest element and
// the Prev of the smallest element is End.
// Time: amortized O(1), O(D) worst case.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{it.n.prev()}
}

// ReverseIterator walks a TreeSet in descending order. It holds a base Iterator
// one position after the element it refers to, so Reverse(End()) refers to the
// largest element and Reverse(Begin()) is past the smallest one.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Reverse wraps it.
func Reverse[T any](it Iterator[T]) ReverseIterator[T] {
	return ReverseIterator[T]{it}
}

// Base Iterator, the position after the referred element in ascending order.
func (it ReverseIterator[T]) Base() Iterator[T] {
	return it.base
}

// Value referred by it, the element before Base.
func (it ReverseIterator[T]) Value() T {
	return it.base.Prev().Value()
}

// Next position in descending order.
func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{it.base.Prev()}
}

// Prev position in descending order.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{it.base.Next()}
}
