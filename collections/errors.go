package collections

import (
	"fmt"

	"github.com/hasbyte1/go-enumerable-utils/enumerable"
)

// Sentinel errors returned by Collection operations.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty. It also matches
	// [enumerable.ErrEmptySequence].
	ErrEmptyCollection = fmt.Errorf("collections: operation on empty collection: %w", enumerable.ErrEmptySequence)
)
