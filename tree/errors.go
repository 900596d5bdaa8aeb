package tree

import "errors"

// ErrUnsortedInput indicates BuildSorted got a slice that is not strictly ascending.
var ErrUnsortedInput = errors.New("tree: input must be strictly ascending")
