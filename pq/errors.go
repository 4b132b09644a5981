package pq

import "errors"

var (
	// ErrDuplicate is returned by Enqueue on a UniqueQueue when an element
	// with the same key is already present.
	ErrDuplicate = errors.New("pq: element already present")
	// ErrNotPresent is returned by Update/Remove on a UniqueQueue when no
	// element with the given key exists.
	ErrNotPresent = errors.New("pq: element not present")
)
