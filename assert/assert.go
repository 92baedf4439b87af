// Package assert provides precondition and type assertion utilities.
//
// The boolean assertions (True, False, Nil, NotNil) panic when violated and
// can be compiled out with the assertions_disabled build tag. They are meant
// for programmer errors that must surface at the call site, not for
// recoverable failures.
package assert

import (
	"fmt"

	"github.com/gevorghari/jcabi/errors"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error indicating the mismatch.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}
