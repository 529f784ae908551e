package guard

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors describing why a single check failed.
//
// Use [errors.Is] for comparisons:
//
//	err := guard.Begin().IsNotNil(fn, "fn").Check()
//	if errors.Is(err, guard.ErrRequired) {
//	    // fn was nil
//	}
var (
	// ErrValidation matches every error produced by [Validation.Check],
	// whether it carries one failure or several.
	ErrValidation = errors.New("guard: validation failed")

	// ErrRequired is the reason recorded by [Validation.IsNotNil] when the
	// value is nil.
	ErrRequired = errors.New("guard: argument is required")

	// ErrNegative is the reason recorded by [Validation.IsNonNegative].
	ErrNegative = errors.New("guard: argument must not be negative")

	// ErrNotPositive is the reason recorded by [Validation.IsPositive].
	ErrNotPositive = errors.New("guard: argument must be greater than zero")

	// ErrEmpty is the reason recorded by [Validation.IsNotEmpty].
	ErrEmpty = errors.New("guard: argument must not be empty")
)

// ArgumentError is a single failed check: the offending parameter's name and
// the reason it was rejected.
type ArgumentError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Name)
}

// Unwrap exposes the reason so that errors.Is(err, ErrRequired) works.
func (e *ArgumentError) Unwrap() error { return e.Err }

// Is reports true for [ErrValidation], tagging the error as a single
// validation failure.
func (e *ArgumentError) Is(target error) bool { return target == ErrValidation }

// MultiError is returned by [Validation.Check] when more than one check in the
// chain failed.
type MultiError struct {
	errs []error
}

// Errors returns the individual failures in the order they were recorded.
func (e *MultiError) Errors() []error {
	out := make([]error, len(e.errs))
	copy(out, e.errs)
	return out
}

// Len returns the number of failures carried by e.
func (e *MultiError) Len() int { return len(e.errs) }

// Error implements the error interface.
func (e *MultiError) Error() string {
	msgs := make([]string, len(e.errs))
	for i, err := range e.errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("guard: %d validation failures: %s", len(e.errs), strings.Join(msgs, "; "))
}

// Unwrap returns the failures so that errors.Is and errors.As look through a
// MultiError.
func (e *MultiError) Unwrap() []error { return e.errs }

// Is reports true for [ErrValidation], tagging the error as a multiple
// validation failure.
func (e *MultiError) Is(target error) bool { return target == ErrValidation }
