// Package guard provides a fluent, allocation-free-until-it-fails argument
// validator for library entry points.
//
// # Overview
//
// A validation chain starts with [Begin], which returns a nil
// [*Validation]. Every check method accepts a nil receiver, so a chain in
// which nothing fails never allocates:
//
//	if err := guard.Begin().
//	    IsNotNil(source, "source").
//	    IsNotNil(selector, "selector").
//	    Check(); err != nil {
//	    return zero, err
//	}
//
// # Failure shapes
//
// [Validation.Check] is the terminal call:
//
//   - no failed check → nil
//   - exactly one failed check → the [*ArgumentError] itself
//   - two or more failed checks → a [*MultiError] listing every failure in
//     the order the checks ran
//
// Both shapes match [ErrValidation] with [errors.Is]. Use [errors.As] to tell
// them apart and to reach the parameter name:
//
//	var argErr *guard.ArgumentError
//	if errors.As(err, &argErr) {
//	    fmt.Println(argErr.Name)
//	}
//
// # Caveat
//
// A chain that never reaches Check discards its failures. Always end the
// chain with Check and return its result.
package guard
