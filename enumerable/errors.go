package enumerable

import "errors"

// Sentinel errors for conditions discovered while enumerating.
var (
	// ErrEmptySequence is returned when an operation needs at least one
	// element but the sequence produced none.
	ErrEmptySequence = errors.New("enumerable: sequence contains no elements")

	// ErrIndexOutOfRange is returned when an [Indexed] source reports a
	// count but cannot serve the drawn position.
	ErrIndexOutOfRange = errors.New("enumerable: index out of range")
)
