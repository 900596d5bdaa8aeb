package list

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates a pop from a list holding no elements.
	ErrEmpty = errors.New("list: empty")
	// ErrIndexOutOfRange indicates a position past the end of the list.
	ErrIndexOutOfRange = errors.New("list: index out of range")
)

// IndexError carries the offending index and the list size at the time of the call.
// It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Index, Size int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("list: index %d out of range for size %d", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
