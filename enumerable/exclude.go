package enumerable

import (
	"iter"

	"github.com/hasbyte1/go-enumerable-utils/guard"
	"spheric.cloud/xiter"
)

// Exclude returns source without the elements equal (==) to element. The
// order of the remaining elements is preserved.
func Exclude[T comparable](source iter.Seq[T], element T) iter.Seq[T] {
	return xiter.Filter(orEmpty(source), func(v T) bool { return v != element })
}

// ExcludeFunc returns source without the elements for which predicate
// returns true.
func ExcludeFunc[T any](source iter.Seq[T], predicate func(T) bool) (iter.Seq[T], error) {
	if err := guard.Begin().
		IsNotNil(source, "source").
		IsNotNil(predicate, "predicate").
		Check(); err != nil {
		return nil, err
	}
	return xiter.Filter(source, func(v T) bool { return !predicate(v) }), nil
}

// ExcludeAll returns source without any element that also occurs in others.
// Duplicates in source that are not excluded are kept. others is read once,
// the first time the result is ranged over.
func ExcludeAll[T comparable](source, others iter.Seq[T]) iter.Seq[T] {
	return excludeKeys(orEmpty(source), orEmpty(others), identity[T])
}

// ExcludeAllBy is [ExcludeAll] for element types that are not comparable:
// two elements are equal when key returns the same value for both.
func ExcludeAllBy[T any, K comparable](source, others iter.Seq[T], key func(T) K) (iter.Seq[T], error) {
	if err := guard.Begin().
		IsNotNil(source, "source").
		IsNotNil(others, "others").
		IsNotNil(key, "key").
		Check(); err != nil {
		return nil, err
	}
	return excludeKeys(source, others, key), nil
}

func excludeKeys[T any, K comparable](source, others iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		set := make(map[K]struct{})
		for v := range others {
			set[key(v)] = struct{}{}
		}
		for v := range source {
			if _, found := set[key(v)]; found {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

func identity[T any](v T) T { return v }

func orEmpty[T any](source iter.Seq[T]) iter.Seq[T] {
	if source == nil {
		return func(func(T) bool) {}
	}
	return source
}
