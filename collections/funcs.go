package collections

import (
	"cmp"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-enumerable-utils/enumerable"
	"github.com/hasbyte1/go-enumerable-utils/numeric"
)

// This file contains package-level generic functions for operations that
// either change the element type or need a tighter constraint than the
// Collection's `any`.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with method
// chains:
//
//	names := collections.Exclude(
//	    collections.Map(users, func(u User, _ int) string { return u.Name }),
//	    "root",
//	)

// Map applies fn to every item and returns a new Collection[U].
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	return &Collection[U]{items: lo.Map(c.items, fn)}
}

// Exclude returns a new collection without the items equal to element.
func Exclude[T comparable](c *Collection[T], element T) *Collection[T] {
	return Collect(enumerable.Exclude(c.Values(), element))
}

// ExcludeAll returns a new collection without the items that occur in other.
func ExcludeAll[T comparable](c *Collection[T], other Enumerable[T]) *Collection[T] {
	if lo.IsNil(other) {
		return From(c.items)
	}
	return Collect(enumerable.ExcludeAll(c.Values(), other.Values()))
}

// Replace returns a new collection with every item equal to element swapped
// for replacement.
func Replace[T comparable](c *Collection[T], element, replacement T) *Collection[T] {
	return Collect(enumerable.Replace(c.Values(), element, replacement))
}

// ReplaceFunc returns a new collection with every item equal to element
// swapped for projection(element).
func ReplaceFunc[T comparable](c *Collection[T], element T, projection func(T) T) (*Collection[T], error) {
	seq, err := enumerable.ReplaceFunc(c.Values(), element, projection)
	if err != nil {
		return nil, err
	}
	return Collect(seq), nil
}

// AverageOrDefault returns the mean of the items, or defaultValue[0] (0 when
// omitted) when c is nil or empty.
func AverageOrDefault[T numeric.Number](c *Collection[T], defaultValue ...float64) float64 {
	if c == nil {
		return numeric.AverageOrDefault[T](nil, defaultValue...)
	}
	return numeric.AverageOrDefault(c.Values(), defaultValue...)
}

// MinOrDefault returns the smallest item, or defaultValue[0] (the zero value
// when omitted) when c is nil or empty.
func MinOrDefault[T cmp.Ordered](c *Collection[T], defaultValue ...T) T {
	if c == nil {
		return numeric.MinOrDefault[T](nil, defaultValue...)
	}
	return numeric.MinOrDefault(c.Values(), defaultValue...)
}

// MaxOrDefault returns the largest item, or defaultValue[0] (the zero value
// when omitted) when c is nil or empty.
func MaxOrDefault[T cmp.Ordered](c *Collection[T], defaultValue ...T) T {
	if c == nil {
		return numeric.MaxOrDefault[T](nil, defaultValue...)
	}
	return numeric.MaxOrDefault(c.Values(), defaultValue...)
}
