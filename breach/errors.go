package breach

import (
	"errors"
	"fmt"
)

var ErrUnavailable = errors.New("breach service unavailable")

type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("breach service responded with status %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrUnavailable
}

// UnavailableError is a lookup that failed before a status was seen. It is
// ErrUnavailable to errors.Is and unwraps to the underlying cause, so a
// context deadline stays visible.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnavailable, e.Err)
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
