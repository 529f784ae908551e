package arr

import (
	"cmp"
	"iter"
	"slices"

	"github.com/hasbyte1/go-enumerable-utils/enumerable"
	"github.com/hasbyte1/go-enumerable-utils/guard"
	"github.com/hasbyte1/go-enumerable-utils/numeric"
)

// ─────────────────────────────────────────────────────────────────────────────
// Exclusion & replacement
// ─────────────────────────────────────────────────────────────────────────────

// Exclude returns items without the elements equal to element.
func Exclude[T comparable](items []T, element T) []T {
	return collect(enumerable.Exclude(slices.Values(items), element))
}

// ExcludeFunc returns items without the elements for which fn returns true.
func ExcludeFunc[T any](items []T, fn func(T) bool) ([]T, error) {
	seq, err := enumerable.ExcludeFunc(slices.Values(items), fn)
	if err != nil {
		return nil, err
	}
	return collect(seq), nil
}

// ExcludeAll returns the elements of a that do not occur in b.
func ExcludeAll[T comparable](a, b []T) []T {
	return collect(enumerable.ExcludeAll(slices.Values(a), slices.Values(b)))
}

// Replace returns a copy of items with every element equal to element
// swapped for replacement.
func Replace[T comparable](items []T, element, replacement T) []T {
	return collect(enumerable.Replace(slices.Values(items), element, replacement))
}

// DistinctBy returns items with duplicates removed using a key function.
// The first element for each key is kept.
func DistinctBy[T any, K comparable](items []T, fn func(T) K) ([]T, error) {
	seq, err := enumerable.DistinctBy(slices.Values(items), fn)
	if err != nil {
		return nil, err
	}
	return collect(seq), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Wrap wraps value in a one-element slice.
func Wrap[T any](value T) []T {
	return collect(enumerable.Wrap(value))
}

// Append returns a copy of items with value added at the end.
func Append[T any](items []T, value T) []T {
	return collect(enumerable.Append(slices.Values(items), value))
}

// Prepend returns a copy of items with value added at the front.
func Prepend[T any](items []T, value T) []T {
	return collect(enumerable.Prepend(slices.Values(items), value))
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T, r enumerable.Rand) ([]T, error) {
	seq, err := enumerable.Shuffle(slices.Values(items), r)
	if err != nil {
		return nil, err
	}
	return collect(seq), nil
}

// Random returns n randomly selected items (without replacement).
// If n >= len(items), a shuffled copy of all items is returned.
func Random[T any](items []T, n int, r enumerable.Rand) ([]T, error) {
	if err := guard.Begin().
		IsNonNegative(n, "n").
		IsNotNil(r, "random").
		Check(); err != nil {
		return nil, err
	}
	seq, err := enumerable.Shuffle(slices.Values(items), r)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, min(n, len(items)))
	for v := range seq {
		if len(out) == n {
			break
		}
		out = append(out, v)
	}
	return out, nil
}

// RandomElement returns one element of items picked with a single draw
// from r, or [enumerable.ErrEmptySequence] when items is empty.
func RandomElement[T any](items []T, r enumerable.Rand) (T, error) {
	return enumerable.RandomIndexed(enumerable.List[T](items), r)
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// AverageOrDefault returns the mean of items, or defaultValue[0] (0 when
// omitted) when items is empty.
func AverageOrDefault[T numeric.Number](items []T, defaultValue ...float64) float64 {
	return numeric.AverageOrDefault(slices.Values(items), defaultValue...)
}

// MinOrDefault returns the smallest element, or defaultValue[0] (the zero
// value when omitted) when items is empty.
func MinOrDefault[T cmp.Ordered](items []T, defaultValue ...T) T {
	return numeric.MinOrDefault(slices.Values(items), defaultValue...)
}

// MaxOrDefault returns the largest element, or defaultValue[0] (the zero
// value when omitted) when items is empty.
func MaxOrDefault[T cmp.Ordered](items []T, defaultValue ...T) T {
	return numeric.MaxOrDefault(slices.Values(items), defaultValue...)
}

// collect drains seq into a non-nil slice.
func collect[T any](seq iter.Seq[T]) []T {
	return slices.AppendSeq(make([]T, 0), seq)
}
