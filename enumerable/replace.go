package enumerable

import (
	"iter"

	"github.com/hasbyte1/go-enumerable-utils/guard"
)

// Replace returns source with every element equal (==) to element swapped
// for replacement.
func Replace[T comparable](source iter.Seq[T], element, replacement T) iter.Seq[T] {
	return replace(orEmpty(source), element, func(T) T { return replacement })
}

// ReplaceFunc returns source with every element equal to element swapped for
// projection(element). projection runs once per match.
func ReplaceFunc[T comparable](source iter.Seq[T], element T, projection func(T) T) (iter.Seq[T], error) {
	if err := guard.Begin().
		IsNotNil(source, "source").
		IsNotNil(projection, "projection").
		Check(); err != nil {
		return nil, err
	}
	return replace(source, element, projection), nil
}

func replace[T comparable](source iter.Seq[T], element T, projection func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range source {
			if v == element {
				v = projection(v)
			}
			if !yield(v) {
				return
			}
		}
	}
}
