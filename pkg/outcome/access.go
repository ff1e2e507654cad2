package outcome

import (
	"errors"
	"fmt"
)

// ErrAccess is wrapped by every *AccessError.
var ErrAccess = errors.New("outcome: inactive payload accessed")

// State names the side an Outcome was on when it was misused.
type State string

const (
	StateSuccess State = "success"
	StateFailure State = "failure"
)

// AccessError reports a read of the payload that is not active, such as
// Value on a failure.
type AccessError struct {
	Op    string
	State State
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("outcome: %s called on %s", e.Op, e.State)
}

func (e *AccessError) Unwrap() error {
	return ErrAccess
}

// IsAccessError reports whether err is or wraps an *AccessError.
func IsAccessError(err error) bool {
	var ae *AccessError
	return errors.As(err, &ae)
}

// Must returns the success payload of o, panicking with the error payload
// itself when o is a failure.
func Must[T any, E error](o Outcome[T, E]) T {
	if !o.isSuccess {
		panic(o.err)
	}
	return o.value
}

// Catch runs f and turns a panic into a failure. A panic value that is an
// error is kept as is; anything else is formatted into one.
func Catch[T any](f func() T) (out Outcome[T, error]) {
	defer func() {
		if r := recover(); r != nil {
			out = Failure[T](panicError(r))
		}
	}()
	return Success[error](f())
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("outcome: panic: %v", r)
}
