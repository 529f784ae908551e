package numeric

import (
	"cmp"
	"iter"

	"github.com/hasbyte1/go-enumerable-utils/guard"
)

// ─────────────────────────────────────────────────────────────────────────────
// OrDefault reducers
// ─────────────────────────────────────────────────────────────────────────────

// AverageOrDefault returns the arithmetic mean of source, or defaultValue[0]
// (0 when omitted) if source is nil or empty.
func AverageOrDefault[T Number](source iter.Seq[T], defaultValue ...float64) float64 {
	if source == nil {
		return orDefault(defaultValue)
	}
	if avg, ok := mean(source); ok {
		return avg
	}
	return orDefault(defaultValue)
}

// MinOrDefault returns the smallest element of source, or defaultValue[0]
// (the zero value when omitted) if source is nil or empty.
func MinOrDefault[T cmp.Ordered](source iter.Seq[T], defaultValue ...T) T {
	return reduceOrDefault(source, less[T], defaultValue)
}

// MaxOrDefault returns the largest element of source, or defaultValue[0]
// (the zero value when omitted) if source is nil or empty.
func MaxOrDefault[T cmp.Ordered](source iter.Seq[T], defaultValue ...T) T {
	return reduceOrDefault(source, greater[T], defaultValue)
}

// AverageOrDefaultBy is [AverageOrDefault] over selector(item) for every item
// of source. A nil source returns the default without calling selector.
func AverageOrDefaultBy[T any, R Number](source iter.Seq[T], selector func(T) R, defaultValue ...float64) (float64, error) {
	if err := checkSelector(source, selector); err != nil {
		return 0, err
	}
	if source == nil {
		return orDefault(defaultValue), nil
	}
	return AverageOrDefault(project(source, selector), defaultValue...), nil
}

// MinOrDefaultBy is [MinOrDefault] over selector(item) for every item of
// source.
func MinOrDefaultBy[T any, R cmp.Ordered](source iter.Seq[T], selector func(T) R, defaultValue ...R) (R, error) {
	if err := checkSelector(source, selector); err != nil {
		var zero R
		return zero, err
	}
	if source == nil {
		return orDefault(defaultValue), nil
	}
	return MinOrDefault(project(source, selector), defaultValue...), nil
}

// MaxOrDefaultBy is [MaxOrDefault] over selector(item) for every item of
// source.
func MaxOrDefaultBy[T any, R cmp.Ordered](source iter.Seq[T], selector func(T) R, defaultValue ...R) (R, error) {
	if err := checkSelector(source, selector); err != nil {
		var zero R
		return zero, err
	}
	if source == nil {
		return orDefault(defaultValue), nil
	}
	return MaxOrDefault(project(source, selector), defaultValue...), nil
}

func reduceOrDefault[T any](source iter.Seq[T], better func(a, b T) bool, defaultValue []T) T {
	if source == nil {
		return orDefault(defaultValue)
	}
	if v, ok := pick(source, better); ok {
		return v
	}
	return orDefault(defaultValue)
}

// checkSelector rejects a nil selector. The source is only reported alongside
// it: a nil source on its own is an expected absence of data.
func checkSelector[T, R any](source iter.Seq[T], selector func(T) R) error {
	if selector != nil {
		return nil
	}
	return guard.Begin().
		IsNotNil(source, "source").
		IsNotNil(selector, "selector").
		Check()
}
