package numeric

import (
	"cmp"
	"iter"

	"github.com/samber/lo"
)

// ─────────────────────────────────────────────────────────────────────────────
// OrNil reducers
// ─────────────────────────────────────────────────────────────────────────────

// AverageOrNil returns the mean of the non-nil elements of source, or nil
// when source is nil or holds no non-nil element.
func AverageOrNil[T Number](source iter.Seq[*T]) *float64 {
	if source == nil {
		return nil
	}
	avg, ok := mean(present(source))
	if !ok {
		return nil
	}
	return lo.ToPtr(avg)
}

// MinOrNil returns the smallest non-nil element of source, or nil when there
// is none.
func MinOrNil[T cmp.Ordered](source iter.Seq[*T]) *T {
	return reduceOrNil(source, less[T])
}

// MaxOrNil returns the largest non-nil element of source, or nil when there
// is none.
func MaxOrNil[T cmp.Ordered](source iter.Seq[*T]) *T {
	return reduceOrNil(source, greater[T])
}

// AverageOrNilBy is [AverageOrNil] over selector(item). Items whose selector
// result is nil are skipped.
func AverageOrNilBy[T any, R Number](source iter.Seq[T], selector func(T) *R) (*float64, error) {
	if err := checkSelector(source, selector); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, nil
	}
	return AverageOrNil(project(source, selector)), nil
}

// MinOrNilBy is [MinOrNil] over selector(item).
func MinOrNilBy[T any, R cmp.Ordered](source iter.Seq[T], selector func(T) *R) (*R, error) {
	if err := checkSelector(source, selector); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, nil
	}
	return MinOrNil(project(source, selector)), nil
}

// MaxOrNilBy is [MaxOrNil] over selector(item).
func MaxOrNilBy[T any, R cmp.Ordered](source iter.Seq[T], selector func(T) *R) (*R, error) {
	if err := checkSelector(source, selector); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, nil
	}
	return MaxOrNil(project(source, selector)), nil
}

// ValueOr dereferences an OrNil result, substituting fallback for nil.
//
//	avg := numeric.ValueOr(numeric.AverageOrNil(seq), -1)
func ValueOr[T any](result *T, fallback T) T {
	return lo.FromPtrOr(result, fallback)
}

func reduceOrNil[T any](source iter.Seq[*T], better func(a, b T) bool) *T {
	if source == nil {
		return nil
	}
	v, ok := pick(present(source), better)
	if !ok {
		return nil
	}
	return &v
}
