package enumerable

import (
	"iter"

	"github.com/hasbyte1/go-enumerable-utils/guard"
	"spheric.cloud/xiter"
)

// IsEmpty reports whether source yields no element. At most one element is
// pulled. A nil source is empty.
func IsEmpty[T any](source iter.Seq[T]) bool {
	if source == nil {
		return true
	}
	return !xiter.Any(source, func(T) bool { return true })
}

// ForEach calls action for every element of source, in order.
func ForEach[T any](source iter.Seq[T], action func(T)) error {
	if err := guard.Begin().
		IsNotNil(source, "source").
		IsNotNil(action, "action").
		Check(); err != nil {
		return err
	}
	for v := range source {
		action(v)
	}
	return nil
}

// Wrap returns a sequence yielding value exactly once.
func Wrap[T any](value T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(value)
	}
}

// Append returns source followed by element.
func Append[T any](source iter.Seq[T], element T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range orEmpty(source) {
			if !yield(v) {
				return
			}
		}
		yield(element)
	}
}

// Prepend returns element followed by source.
func Prepend[T any](source iter.Seq[T], element T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(element) {
			return
		}
		for v := range orEmpty(source) {
			if !yield(v) {
				return
			}
		}
	}
}

// ContainsExactly reports whether exactly n elements of source satisfy
// predicate. It stops reading as soon as an (n+1)-th match is seen.
func ContainsExactly[T any](source iter.Seq[T], n int, predicate func(T) bool) (bool, error) {
	if err := guard.Begin().
		IsNotNil(source, "source").
		IsNonNegative(n, "n").
		IsNotNil(predicate, "predicate").
		Check(); err != nil {
		return false, err
	}

	matches := 0
	for v := range source {
		if predicate(v) {
			matches++
			if matches > n {
				return false, nil
			}
		}
	}
	return matches == n, nil
}

// ContainsOnlyOne reports whether exactly one element satisfies predicate.
func ContainsOnlyOne[T any](source iter.Seq[T], predicate func(T) bool) (bool, error) {
	return ContainsExactly(source, 1, predicate)
}

// ContainsNone reports whether no element satisfies predicate.
func ContainsNone[T any](source iter.Seq[T], predicate func(T) bool) (bool, error) {
	return ContainsExactly(source, 0, predicate)
}
