// Package enumerable provides generic helpers over Go iterator sequences
// ([iter.Seq]).
//
// # Overview
//
// Helpers that transform a sequence are lazy: nothing runs until the caller
// ranges over the result, and the work happens on the ranging goroutine.
//
//	visible, _ := enumerable.ExcludeFunc(slices.Values(posts), Post.IsDraft)
//	for p := range enumerable.Append(visible, pinned) {
//	    render(p)
//	}
//
// Helpers that take no collaborator (Exclude, ExcludeAll, Replace, Append,
// Prepend, IsEmpty) treat a nil sequence as empty, following the nil-slice
// convention. Helpers that need a predicate, selector, action or random
// source validate all required arguments up front with package guard and
// return the error before any element is pulled.
//
// # Randomness
//
// [RandomElement] and [Shuffle] draw from a caller-supplied [Rand], so a
// seeded source gives reproducible output:
//
//	r := rand.New(rand.NewPCG(42, 42))
//	deck, _ := enumerable.Shuffle(slices.Values(cards), r)
//
// When the length of the source is known up front, use [RandomIndexed]: it
// draws one number and indexes directly instead of sampling a full pass.
//
// # Errors
//
// Missing arguments are reported as guard errors ([guard.ErrValidation]).
// Conditions only discovered while enumerating, such as picking from an
// empty sequence, are reported with the sentinels in this package.
package enumerable
