package enumerable

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-enumerable-utils/guard"
)

// Rand is the source of randomness used by [RandomElement], [RandomIndexed]
// and [Shuffle]. *rand.Rand from math/rand/v2 satisfies it.
//
// IntN must return a value in [0, n) for n > 0.
type Rand interface {
	IntN(n int) int
}

// Indexed is a source whose length is known without enumerating it and whose
// items can be addressed by position.
type Indexed[T any] interface {
	Count() int
	At(index int) T
}

// List adapts a plain slice to [Indexed].
type List[T any] []T

// Count returns len(l).
func (l List[T]) Count() int { return len(l) }

// At returns l[index].
func (l List[T]) At(index int) T { return l[index] }

// RandomElement returns one element of source chosen uniformly at random.
//
// It makes a single pass and holds one candidate: the k-th element replaces
// the candidate when r.IntN(k) == 0, which leaves every element with
// probability 1/n for a sequence of n elements. The length does not need to
// be known in advance.
//
// A nil source or nil r is reported as a guard error. An empty source
// returns [ErrEmptySequence].
func RandomElement[T any](source iter.Seq[T], r Rand) (T, error) {
	var chosen T
	if err := guard.Begin().
		IsNotNil(source, "source").
		IsNotNil(r, "random").
		Check(); err != nil {
		return chosen, err
	}

	seen := 0
	for v := range source {
		seen++
		if seen == 1 || r.IntN(seen) == 0 {
			chosen = v
		}
	}
	if seen == 0 {
		return chosen, ErrEmptySequence
	}
	return chosen, nil
}

// RandomIndexed returns one element of source chosen uniformly at random
// with a single draw and a single indexed access.
func RandomIndexed[T any](source Indexed[T], r Rand) (T, error) {
	var zero T
	if err := guard.Begin().
		IsNotNil(source, "source").
		IsNotNil(r, "random").
		Check(); err != nil {
		return zero, err
	}

	n := source.Count()
	if n == 0 {
		return zero, ErrEmptySequence
	}
	i := r.IntN(n)
	if i < 0 || i >= n {
		return zero, fmt.Errorf("%w: drew %d for count %d", ErrIndexOutOfRange, i, n)
	}
	return source.At(i), nil
}

// Shuffle returns a sequence yielding the elements of source in a uniformly
// random order.
//
// Arguments are validated immediately. Each time the result is ranged over,
// source is read into a private buffer and a Fisher–Yates pass runs from the
// last index down: for i = n-1 … 0 it draws j = r.IntN(i+1), yields buf[j]
// and moves buf[i] into slot j. Elements are yielded as they are drawn, so
// stopping early also stops drawing from r.
//
// Two sources seeded identically produce identical output for the same input.
func Shuffle[T any](source iter.Seq[T], r Rand) (iter.Seq[T], error) {
	if err := guard.Begin().
		IsNotNil(source, "source").
		IsNotNil(r, "random").
		Check(); err != nil {
		return nil, err
	}

	return func(yield func(T) bool) {
		var buf []T
		for v := range source {
			buf = append(buf, v)
		}
		for i := len(buf) - 1; i >= 0; i-- {
			j := r.IntN(i + 1)
			if !yield(buf[j]) {
				return
			}
			buf[j] = buf[i]
		}
	}, nil
}
