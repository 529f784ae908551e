package enumerable

import (
	"iter"

	"github.com/hasbyte1/go-enumerable-utils/guard"
)

// DistinctBy returns the elements of source whose key has not been seen
// before. The first element with a given key wins and order is preserved.
func DistinctBy[T any, K comparable](source iter.Seq[T], key func(T) K) (iter.Seq[T], error) {
	if err := guard.Begin().
		IsNotNil(source, "source").
		IsNotNil(key, "key").
		Check(); err != nil {
		return nil, err
	}

	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range source {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}, nil
}

// DistinctByFunc is [DistinctBy] with a caller-supplied key comparer, for keys
// that are not comparable or need a looser notion of equality (for example
// case-insensitive strings). Each element is compared against every key kept
// so far.
func DistinctByFunc[T, K any](source iter.Seq[T], key func(T) K, equal func(a, b K) bool) (iter.Seq[T], error) {
	if err := guard.Begin().
		IsNotNil(source, "source").
		IsNotNil(key, "key").
		IsNotNil(equal, "equal").
		Check(); err != nil {
		return nil, err
	}

	return func(yield func(T) bool) {
		var kept []K
	next:
		for v := range source {
			k := key(v)
			for _, prev := range kept {
				if equal(prev, k) {
					continue next
				}
			}
			kept = append(kept, k)
			if !yield(v) {
				return
			}
		}
	}, nil
}
