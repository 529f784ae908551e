package collections_test

import (
	"encoding/json"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-enumerable-utils/collections"
	"github.com/hasbyte1/go-enumerable-utils/enumerable"
	"github.com/hasbyte1/go-enumerable-utils/guard"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *collections.Collection[int] { return collections.New(ns...) }

func seeded(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed)) }

type product struct {
	SKU   string
	Price float64
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, collections.New(1, 2, 3).All())
}

func TestFrom_Copies(t *testing.T) {
	s := []string{"a", "b", "c"}
	c := collections.From(s)
	s[0] = "z"
	assert.Equal(t, "a", c.At(0), "From must copy the slice")
}

func TestCollect(t *testing.T) {
	c := collections.Collect(slices.Values([]int{4, 5}))
	assert.Equal(t, []int{4, 5}, c.All())

	assert.True(t, collections.Collect[int](nil).IsEmpty())
	assert.Equal(t, "[]", collections.Collect(slices.Values([]int{})).String())
}

func TestEmpty(t *testing.T) {
	c := collections.Empty[int]()
	assert.Zero(t, c.Count())
	assert.True(t, c.IsEmpty())
	assert.False(t, c.IsNotEmpty())
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestGet(t *testing.T) {
	c := ints(10, 20, 30)

	v, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 20, v)

	_, ok = c.Get(99)
	assert.False(t, ok)
	_, ok = c.Get(-1)
	assert.False(t, ok)
}

func TestAt(t *testing.T) {
	c := ints(10, 20, 30)
	assert.Equal(t, 30, c.At(2))
	assert.Panics(t, func() { c.At(3) })
}

func TestValues(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(ints(1, 2, 3).Values()))
}

func TestToJSON(t *testing.T) {
	b, err := ints(1, 2, 3).ToJSON()
	require.NoError(t, err)

	var got []int
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1,2,3]", ints(1, 2, 3).String())
}

func TestDump_ReturnsReceiver(t *testing.T) {
	c := ints(1)
	assert.Same(t, c, c.Dump())
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

func TestEach(t *testing.T) {
	sum := 0
	ints(1, 2, 3, 4).Each(func(n, i int) { sum += n * i })
	assert.Equal(t, 0+2+6+12, sum)
}

func TestForEach(t *testing.T) {
	var seen []int
	require.NoError(t, ints(3, 2).ForEach(func(n int) { seen = append(seen, n) }))
	assert.Equal(t, []int{3, 2}, seen)

	assert.ErrorIs(t, ints(1).ForEach(nil), guard.ErrRequired)
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

func TestFilter(t *testing.T) {
	c := ints(1, 2, 3, 4)
	evens := c.Filter(func(n, _ int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, evens.All())
	assert.Equal(t, []int{1, 2, 3, 4}, c.All(), "original must be unchanged")
}

func TestExcludeWhere(t *testing.T) {
	got, err := ints(1, 2, 3, 4, 5).ExcludeWhere(func(n int) bool { return n > 3 })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got.All())

	_, err = ints(1).ExcludeWhere(nil)
	assert.ErrorIs(t, err, guard.ErrValidation)
}

func TestDiff(t *testing.T) {
	a := collections.New(product{"a", 1}, product{"b", 2}, product{"c", 3})
	b := collections.New(product{"b", 99})

	got, err := a.Diff(b, func(p product) any { return p.SKU })
	require.NoError(t, err)
	assert.Equal(t, []product{{"a", 1}, {"c", 3}}, got.All())

	_, err = a.Diff(nil, func(p product) any { return p.SKU })
	var argErr *guard.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "others", argErr.Name)

	_, err = a.Diff(b, nil)
	assert.ErrorIs(t, err, guard.ErrRequired)
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ints(1, 2, 1, 3, 2).Unique(nil).All())

	byFirst := collections.New("apple", "avocado", "banana").
		Unique(func(s string) any { return s[0] })
	assert.Equal(t, []string{"apple", "banana"}, byFirst.All())
}

func TestUniqueFunc(t *testing.T) {
	c := collections.New("Go", "GO", "rust")
	got, err := c.UniqueFunc(
		func(s string) any { return s },
		func(a, b any) bool { return strings.EqualFold(a.(string), b.(string)) },
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "rust"}, got.All())

	_, err = c.UniqueFunc(nil, nil)
	var multi *guard.MultiError
	assert.ErrorAs(t, err, &multi)
}

func TestReplaceWhere(t *testing.T) {
	c := ints(1, -2, 3, -4)
	got, err := c.ReplaceWhere(func(n int) bool { return n < 0 }, func(n int) int { return -n })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got.All())
	assert.Equal(t, []int{1, -2, 3, -4}, c.All())

	_, err = c.ReplaceWhere(nil, nil)
	var multi *guard.MultiError
	require.ErrorAs(t, err, &multi)
	assert.Equal(t, 2, multi.Len())
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

func TestShuffle(t *testing.T) {
	c := ints(1, 2, 3, 4, 5, 6, 7, 8)

	a, err := c.Shuffle(seeded(42))
	require.NoError(t, err)
	b, err := c.Shuffle(seeded(42))
	require.NoError(t, err)

	assert.ElementsMatch(t, c.All(), a.All())
	assert.Equal(t, a.All(), b.All(), "equal seeds must give equal permutations")
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, c.All())

	_, err = c.Shuffle(nil)
	assert.ErrorIs(t, err, guard.ErrRequired)
}

// countingRand records how many numbers were drawn.
type countingRand struct {
	r     *rand.Rand
	draws int
}

func (c *countingRand) IntN(n int) int {
	c.draws++
	return c.r.IntN(n)
}

func TestRandomElement_IndexedPath(t *testing.T) {
	c := ints(10, 20, 30, 40, 50)
	r := &countingRand{r: seeded(5)}

	v, err := c.RandomElement(r)
	require.NoError(t, err)
	assert.Contains(t, c.All(), v)
	assert.Equal(t, 1, r.draws, "a sized collection needs a single draw")
}

func TestRandomElement_Errors(t *testing.T) {
	_, err := collections.Empty[int]().RandomElement(seeded(1))
	assert.ErrorIs(t, err, collections.ErrEmptyCollection)
	assert.ErrorIs(t, err, enumerable.ErrEmptySequence)

	_, err = ints(1).RandomElement(nil)
	assert.ErrorIs(t, err, guard.ErrRequired)
}

func TestRandom(t *testing.T) {
	c := ints(1, 2, 3, 4, 5)

	got, err := c.Random(3, seeded(8))
	require.NoError(t, err)
	assert.Equal(t, 3, got.Count())
	assert.Subset(t, c.All(), got.All())
	assert.Len(t, got.Unique(nil).All(), 3, "drawn without replacement")

	all, err := c.Random(10, seeded(8))
	require.NoError(t, err)
	assert.ElementsMatch(t, c.All(), all.All())

	none, err := c.Random(0, seeded(8))
	require.NoError(t, err)
	assert.True(t, none.IsEmpty())

	_, err = c.Random(-1, nil)
	var multi *guard.MultiError
	require.ErrorAs(t, err, &multi)
	assert.Equal(t, 2, multi.Len())
}

// ─────────────────────────────────────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────────────────────────────────────

func TestPushAppendPrepend(t *testing.T) {
	c := ints(2, 3)
	assert.Equal(t, []int{2, 3, 4, 5}, c.Push(4, 5).All())
	assert.Equal(t, []int{2, 3, 4}, c.Append(4).All())
	assert.Equal(t, []int{1, 2, 3}, c.Prepend(1).All())
	assert.Equal(t, []int{2, 3}, c.All())
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

func TestAggregation(t *testing.T) {
	price := func(p product) float64 { return p.Price }
	c := collections.New(product{"a", 4}, product{"b", 1}, product{"c", 7})

	avg, err := c.Average(price)
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg)

	lowest, err := c.Min(price)
	require.NoError(t, err)
	assert.Equal(t, 1.0, lowest)

	highest, err := c.Max(price)
	require.NoError(t, err)
	assert.Equal(t, 7.0, highest)
}

func TestAggregation_EmptyUsesDefault(t *testing.T) {
	price := func(p product) float64 { return p.Price }
	c := collections.Empty[product]()

	avg, err := c.Average(price)
	require.NoError(t, err)
	assert.Zero(t, avg)

	lowest, err := c.Min(price, -1)
	require.NoError(t, err)
	assert.Equal(t, -1.0, lowest)

	highest, err := c.Max(price, 100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, highest)

	_, err = c.Max(nil)
	assert.ErrorIs(t, err, guard.ErrRequired)
}

func TestContainsExactly(t *testing.T) {
	ok, err := ints(1, 2, 2, 3).ContainsExactly(2, func(n int) bool { return n == 2 })
	require.NoError(t, err)
	assert.True(t, ok)
}
