package design

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is wrapped by errors returned for filter families whose
// prototype generator does not exist yet (elliptic, Bessel-Thomson).
var ErrNotImplemented = errors.New("design: not implemented")

// InvalidArgError reports a single argument violating a documented
// constraint.
type InvalidArgError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgError) Error() string {
	return fmt.Sprintf("design: invalid argument %q: %s", e.Arg, e.Reason)
}

// ConflictingArgsError reports two or more individually valid arguments
// that are mutually inconsistent.
type ConflictingArgsError struct {
	Reason string
}

func (e *ConflictingArgsError) Error() string {
	return fmt.Sprintf("design: conflicting arguments: %s", e.Reason)
}
