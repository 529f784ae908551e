// Package collections provides Collection[T], an immutable, countable wrapper
// around a slice that exposes the enumerable, numeric and guard helpers of
// this module as a fluent API.
//
// # Overview
//
//	r := rand.New(rand.NewPCG(1, 2))
//	players, err := collections.New("ann", "bob", "cy").
//	    ExcludeWhere(func(name string) bool { return name == "bob" })
//	if err != nil {
//	    return err
//	}
//	winner, err := players.RandomElement(r)
//
// Because a Collection knows its length, [Collection.RandomElement] draws a
// single index instead of sampling a full pass; a Collection can be handed to
// any function accepting [enumerable.Indexed].
//
// # Immutability
//
// Every transforming method returns a *new* Collection and leaves the
// original untouched, so a Collection may be read from several goroutines
// without locking.
//
// # Type-constrained operations
//
// Methods cannot add type parameters or tighten the constraint on T, so
// operations that need comparable or numeric elements are package-level
// functions:
//
//	collections.Exclude(c, "bob")
//	collections.MaxOrDefault(scores, -1)
//	collections.Map(c, func(s string, _ int) int { return len(s) })
//
// Package-level functions: [Map], [Exclude], [ExcludeAll], [Replace],
// [ReplaceFunc], [AverageOrDefault], [MinOrDefault], [MaxOrDefault].
package collections
