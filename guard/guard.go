package guard

import (
	"reflect"

	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// Validation accumulates failed argument checks.
//
// The zero value of *Validation is nil and represents "nothing has failed
// yet". All methods are safe to call on a nil receiver; the first failing
// check allocates the accumulator and every later check appends to it.
//
// A Validation is local to one call chain and is not safe for concurrent use.
type Validation struct {
	err error
}

// Begin starts a validation chain. It returns nil.
func Begin() *Validation { return nil }

// IsNotNil records [ErrRequired] for name when value is nil. Typed nil
// pointers, slices, maps, funcs and channels count as nil.
func (v *Validation) IsNotNil(value any, name string) *Validation {
	if lo.IsNil(value) {
		return v.add(name, ErrRequired)
	}
	return v
}

// IsNonNegative records [ErrNegative] for name when value < 0.
func (v *Validation) IsNonNegative(value int, name string) *Validation {
	if value < 0 {
		return v.add(name, ErrNegative)
	}
	return v
}

// IsPositive records [ErrNotPositive] for name when value <= 0.
func (v *Validation) IsPositive(value int, name string) *Validation {
	if value <= 0 {
		return v.add(name, ErrNotPositive)
	}
	return v
}

// IsNotEmpty records [ErrEmpty] for name when value is a string, slice,
// array, map or channel of length zero. A nil value is reported as
// [ErrRequired] instead. Other kinds always pass.
func (v *Validation) IsNotEmpty(value any, name string) *Validation {
	if lo.IsNil(value) {
		return v.add(name, ErrRequired)
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		if rv.Len() == 0 {
			return v.add(name, ErrEmpty)
		}
	}
	return v
}

// IsTrue records reason for name when condition is false. It is the escape
// hatch for checks the package does not provide. A nil reason is recorded as
// [ErrValidation].
func (v *Validation) IsTrue(condition bool, name string, reason error) *Validation {
	if !condition {
		return v.add(name, lo.Ternary(reason == nil, ErrValidation, reason))
	}
	return v
}

// Len returns the number of failures recorded so far.
func (v *Validation) Len() int {
	if v == nil {
		return 0
	}
	return len(multierr.Errors(v.err))
}

// Check ends the chain. It returns nil when every check passed, the single
// [*ArgumentError] when exactly one failed, and a [*MultiError] otherwise.
func (v *Validation) Check() error {
	if v == nil || v.err == nil {
		return nil
	}
	errs := multierr.Errors(v.err)
	if len(errs) == 1 {
		return errs[0]
	}
	return &MultiError{errs: errs}
}

func (v *Validation) add(name string, reason error) *Validation {
	if v == nil {
		v = &Validation{}
	}
	v.err = multierr.Append(v.err, &ArgumentError{Name: name, Err: reason})
	return v
}
