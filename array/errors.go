package array

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates a pop or heap read on an array holding no elements.
	ErrEmpty = errors.New("array: empty")
	// ErrIndexOutOfRange indicates an index outside the live range.
	ErrIndexOutOfRange = errors.New("array: index out of range")
	// ErrNotSorted indicates a binary search on contents that are not ascending.
	ErrNotSorted = errors.New("array: not sorted")
)

// IndexError carries the offending index and the size at the time of the call.
// It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Index, Size int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("array: index %d out of range for size %d", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
