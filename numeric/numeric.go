package numeric

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is the set of types an average can be computed over.
type Number interface {
	constraints.Integer | constraints.Float
}

// mean returns the float64 mean of seq and whether seq yielded anything.
func mean[T Number](seq iter.Seq[T]) (float64, bool) {
	var sum float64
	n := 0
	for v := range seq {
		sum += float64(v)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// pick folds seq keeping the value for which better(candidate, current)
// holds. It reports false when seq is empty.
func pick[T any](seq iter.Seq[T], better func(a, b T) bool) (T, bool) {
	var best T
	found := false
	for v := range seq {
		if !found || better(v, best) {
			best = v
			found = true
		}
	}
	return best, found
}

func less[T cmp.Ordered](a, b T) bool    { return cmp.Compare(a, b) < 0 }
func greater[T cmp.Ordered](a, b T) bool { return cmp.Compare(a, b) > 0 }

// project maps seq through selector.
func project[T, R any](seq iter.Seq[T], selector func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(selector(v)) {
				return
			}
		}
	}
}

// present yields the values behind the non-nil pointers of seq.
func present[T any](seq iter.Seq[*T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range seq {
			if p == nil {
				continue
			}
			if !yield(*p) {
				return
			}
		}
	}
}

func orDefault[T any](defaultValue []T) T {
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	var zero T
	return zero
}
