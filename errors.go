package coil

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec reports a coil specification, or a path, that cannot
// describe a measurable coil. All validation errors returned by this
// package wrap it and can be matched with [errors.Is].
var ErrInvalidSpec = errors.New("invalid coil specification")

func invalidSpecf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSpec, fmt.Sprintf(format, args...))
}
