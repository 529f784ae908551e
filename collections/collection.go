package collections

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/k0kubun/pp"
	"github.com/samber/lo"

	"github.com/hasbyte1/go-enumerable-utils/enumerable"
	"github.com/hasbyte1/go-enumerable-utils/guard"
	"github.com/hasbyte1/go-enumerable-utils/numeric"
)

// Collection is a generic, immutable wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Collect(maps.Keys(m))
//	c := collections.Empty[int]()
//
// # Method chaining
//
//	visible, err := collections.From(posts).
//	    ExcludeWhere(Post.IsDraft)
//	latest, err := visible.Max(func(p Post) float64 { return p.Score })
//
// Methods taking a callback validate it and return a guard error when it is
// nil.
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Collect drains seq into a new Collection. A nil seq gives an empty one.
func Collect[T any](seq iter.Seq[T]) *Collection[T] {
	if seq == nil {
		return Empty[T]()
	}
	items := slices.Collect(seq)
	if items == nil {
		items = []T{}
	}
	return &Collection[T]{items: items}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Values returns an iterator over the items in order.
func (c *Collection[T]) Values() iter.Seq[T] { return slices.Values(c.items) }

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// At returns the item at index. It panics when index is out of range, like a
// slice index; use [Collection.Get] for a checked lookup.
func (c *Collection[T]) At(index int) T { return c.items[index] }

// Get returns the item at index together with a presence flag.
func (c *Collection[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[index], true
}

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// Dump pretty-prints the items to stdout and returns c for chaining.
func (c *Collection[T]) Dump() *Collection[T] {
	pp.Println(c.items)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// ForEach calls action for every item, in order.
func (c *Collection[T]) ForEach(action func(T)) error {
	return enumerable.ForEach(c.Values(), action)
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which fn(item, index)
// returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	return &Collection[T]{items: lo.Filter(c.items, fn)}
}

// ExcludeWhere returns a new collection without the items for which fn
// returns true.
func (c *Collection[T]) ExcludeWhere(fn func(T) bool) (*Collection[T], error) {
	seq, err := enumerable.ExcludeFunc(c.Values(), fn)
	if err != nil {
		return nil, err
	}
	return Collect(seq), nil
}

// Diff returns the items of c whose key, as extracted by fn, does not occur
// among the keys of other.
func (c *Collection[T]) Diff(other Enumerable[T], fn func(T) any) (*Collection[T], error) {
	var others iter.Seq[T]
	if !lo.IsNil(other) {
		others = other.Values()
	}
	seq, err := enumerable.ExcludeAllBy(c.Values(), others, fn)
	if err != nil {
		return nil, err
	}
	return Collect(seq), nil
}

// Unique returns a new collection keeping the first item for each key.
// fn extracts the comparison key; pass nil to compare fmt.Sprintf("%v") of
// the items.
func (c *Collection[T]) Unique(fn func(T) any) *Collection[T] {
	if fn == nil {
		fn = func(item T) any { return fmt.Sprintf("%v", item) }
	}
	return Collect(lo.Must(enumerable.DistinctBy(c.Values(), fn)))
}

// UniqueFunc is [Collection.Unique] with a key comparer for keys that cannot
// be map keys.
func (c *Collection[T]) UniqueFunc(fn func(T) any, equal func(a, b any) bool) (*Collection[T], error) {
	seq, err := enumerable.DistinctByFunc(c.Values(), fn, equal)
	if err != nil {
		return nil, err
	}
	return Collect(seq), nil
}

// ReplaceWhere returns a new collection in which every item matching
// predicate is swapped for projection(item).
func (c *Collection[T]) ReplaceWhere(predicate func(T) bool, projection func(T) T) (*Collection[T], error) {
	if err := guard.Begin().
		IsNotNil(predicate, "predicate").
		IsNotNil(projection, "projection").
		Check(); err != nil {
		return nil, err
	}
	return &Collection[T]{items: lo.Map(c.items, func(item T, _ int) T {
		if predicate(item) {
			return projection(item)
		}
		return item
	})}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a new collection with the items in a uniformly random
// order drawn from r.
func (c *Collection[T]) Shuffle(r enumerable.Rand) (*Collection[T], error) {
	seq, err := enumerable.Shuffle(c.Values(), r)
	if err != nil {
		return nil, err
	}
	return Collect(seq), nil
}

// RandomElement returns one item chosen uniformly at random with a single
// draw from r. It returns [ErrEmptyCollection] when c is empty.
func (c *Collection[T]) RandomElement(r enumerable.Rand) (T, error) {
	v, err := enumerable.RandomIndexed(c, r)
	if errors.Is(err, enumerable.ErrEmptySequence) {
		return v, ErrEmptyCollection
	}
	return v, err
}

// Random returns n items chosen at random without replacement. If n >=
// Count(), a shuffled copy of the full collection is returned.
func (c *Collection[T]) Random(n int, r enumerable.Rand) (*Collection[T], error) {
	if err := guard.Begin().
		IsNonNegative(n, "n").
		IsNotNil(r, "random").
		Check(); err != nil {
		return nil, err
	}
	shuffled, err := enumerable.Shuffle(c.Values(), r)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, min(n, len(c.items)))
	for v := range shuffled {
		if len(out) == n {
			break
		}
		out = append(out, v)
	}
	return &Collection[T]{items: out}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────────────────────────────────────

// Push returns a new collection with items appended.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	return &Collection[T]{items: slices.Concat(c.items, items)}
}

// Append returns a new collection with item appended.
func (c *Collection[T]) Append(item T) *Collection[T] {
	return Collect(enumerable.Append(c.Values(), item))
}

// Prepend returns a new collection with item inserted at the front.
func (c *Collection[T]) Prepend(item T) *Collection[T] {
	return Collect(enumerable.Prepend(c.Values(), item))
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Average returns the mean of fn(item) over all items, or defaultValue[0]
// (0 when omitted) for an empty collection.
func (c *Collection[T]) Average(fn func(T) float64, defaultValue ...float64) (float64, error) {
	return numeric.AverageOrDefaultBy(c.Values(), fn, defaultValue...)
}

// Min returns the smallest fn(item), or defaultValue[0] (0 when omitted)
// for an empty collection.
func (c *Collection[T]) Min(fn func(T) float64, defaultValue ...float64) (float64, error) {
	return numeric.MinOrDefaultBy(c.Values(), fn, defaultValue...)
}

// Max returns the largest fn(item), or defaultValue[0] (0 when omitted)
// for an empty collection.
func (c *Collection[T]) Max(fn func(T) float64, defaultValue ...float64) (float64, error) {
	return numeric.MaxOrDefaultBy(c.Values(), fn, defaultValue...)
}

// ContainsExactly reports whether exactly n items satisfy fn.
func (c *Collection[T]) ContainsExactly(n int, fn func(T) bool) (bool, error) {
	return enumerable.ContainsExactly(c.Values(), n, fn)
}
