package Trees

import "fmt"

// InvalidSliceError is returned by FromChecked when the input isn't strictly
// ascending. Prev and Next are the first adjacent pair out of order, At is the
// index of Next.
type InvalidSliceError[T any] struct {
	Prev, Next T
	At         int
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice not strictly ascending at index %d: %v followed by %v", e.At, e.Prev, e.Next)
}
