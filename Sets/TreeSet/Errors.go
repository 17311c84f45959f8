package TreeSet

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEraseEnd is returned by Erase when it's given an End position. The set is left unchanged.
	ErrEraseEnd = errors.New("erase of End iterator")

	// ErrInvalidIterator is returned by Erase when it's given the zero Iterator or
	// the position of an element that was already erased.
	ErrInvalidIterator = errors.New("invalid iterator")

	// ErrDerefEnd is the panic value of Iterator.Value on an End position.
	ErrDerefEnd = errors.New("dereference of End iterator")
)

// InvalidSliceError is the panic value of FromSorted when the slice isn't
// strictly ascending. Prev and Next are the first adjacent pair out of order.
type InvalidSliceError[T any] struct {
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending: %v is followed by %v", e.Prev, e.Next)
}
