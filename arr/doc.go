// Package arr provides eager helpers for plain Go slices.
//
// Every helper takes a []T and returns a fresh []T; the input is never
// modified and nil behaves like an empty slice. The functions are thin
// slice-shaped front ends for the lazy operators in package enumerable and
// the reducers in package numeric:
//
//	tags := arr.Exclude([]string{"go", "draft", "rust"}, "draft") // → [go rust]
//	ids  := arr.DistinctBy(users, func(u User) int { return u.ID })
//	avg  := arr.AverageOrDefault(scores, -1)
//
// Randomised helpers take an explicit [enumerable.Rand] so results are
// reproducible under a seeded source:
//
//	r := rand.New(rand.NewPCG(1, 2))
//	hand, err := arr.Random(deck, 5, r)
package arr
