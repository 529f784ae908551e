// Package numeric provides null-safe average, minimum and maximum reducers
// over iterator sequences.
//
// Every reducer treats a nil sequence and an empty sequence the same way: it
// returns a fallback instead of failing, so reducers compose inside larger
// expressions without an explicit emptiness check at each call site.
//
//	avg := numeric.AverageOrDefault(slices.Values(scores))        // 0 when empty
//	low := numeric.MinOrDefault(slices.Values(prices), 9.99)      // 9.99 when empty
//	top, err := numeric.MaxOrDefaultBy(slices.Values(users),
//	    func(u User) int { return u.Age })
//
// # Families
//
//   - OrDefault reducers return the reduced value, or the optional default
//     argument (the zero value when omitted) for nil/empty input.
//   - OrNil reducers return a pointer that is nil when there is no data,
//     which distinguishes "no data" from "data whose result is zero". The
//     pointer-element variants skip nil elements.
//   - The By variants apply a selector to each element first. A nil selector
//     is a programming error reported through package guard.
//
// # Arithmetic
//
// Averages are computed in float64 for every [Number] type. Minimum and
// maximum use [cmp.Compare], so for floating-point input a NaN is the
// minimum and is ignored by the maximum unless every value is NaN.
package numeric
