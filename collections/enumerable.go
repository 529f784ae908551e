package collections

import (
	"iter"

	"github.com/hasbyte1/go-enumerable-utils/enumerable"
)

// Enumerable is the read-only surface of [Collection][T].
//
// Accept Enumerable in your own functions so that callers can pass any
// countable, indexable source without depending on *Collection. It embeds
// [enumerable.Indexed], so every Enumerable can be handed to
// [enumerable.RandomIndexed].
type Enumerable[T any] interface {
	enumerable.Indexed[T]

	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Values returns an iterator over the items in order.
	Values() iter.Seq[T]

	// IsEmpty reports whether there are no items.
	IsEmpty() bool
}

var _ Enumerable[int] = (*Collection[int])(nil)
