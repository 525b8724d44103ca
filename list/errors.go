package list

import "errors"

var (
	// ErrIndexOutOfBounds indicates an index past the end of the list.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrAllocationFailure indicates that no node storage could be obtained.
	ErrAllocationFailure = errors.New("allocation failure")
)
