package obj

import "errors"

// Sentinel errors returned by the package-level operations.
var (
	// ErrNilCallback is returned when an operation is handed a nil callback.
	// It is reported before any entry is visited, even on an empty object.
	ErrNilCallback = errors.New("obj: callback is nil")

	// ErrEmptyReduce is returned by Reduce when the object is empty and no
	// initial accumulator value was supplied, so there is nothing to seed
	// the accumulator with.
	ErrEmptyReduce = errors.New("obj: reduce of empty object with no initial value")

	// ErrTooManyInitials is returned by Reduce when more than one initial
	// accumulator value is passed.
	ErrTooManyInitials = errors.New("obj: reduce accepts at most one initial value")
)
