package outcome

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Outcome holds either a success payload of type T or an error payload of
// type E. Only the active side is ever written.
//
// The zero Outcome is a failure carrying the zero E; IsZero reports it.
type Outcome[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
}

func Success[E, T any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](e E) Outcome[T, E] {
	return Outcome[T, E]{
		err:       e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// failureFrom re-types a failure, keeping the error and its provenance.
func failureFrom[U, T, E any](from Outcome[T, E]) Outcome[U, E] {
	return Outcome[U, E]{
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// successFrom re-types a success, keeping the value and its provenance.
func successFrom[F, T, E any](from Outcome[T, E]) Outcome[T, F] {
	return Outcome[T, F]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T, E]) IsFailure() bool {
	return !o.isSuccess
}

// IsZero reports whether o was declared without going through a factory.
func (o Outcome[T, E]) IsZero() bool {
	return o.id == uuid.Nil && !o.isSuccess
}

// Value returns the success payload. It panics with an *AccessError if o is
// a failure.
func (o Outcome[T, E]) Value() T {
	if !o.isSuccess {
		panic(&AccessError{Op: "Value", State: StateFailure})
	}
	return o.value
}

// Error returns the error payload. It panics with an *AccessError if o is a
// success.
func (o Outcome[T, E]) Error() E {
	if o.isSuccess {
		panic(&AccessError{Op: "Error", State: StateSuccess})
	}
	return o.err
}

// TryValue is Value without the panic.
func (o Outcome[T, E]) TryValue() (T, error) {
	if !o.isSuccess {
		var zero T
		return zero, &AccessError{Op: "Value", State: StateFailure}
	}
	return o.value, nil
}

// TryError is Error without the panic.
func (o Outcome[T, E]) TryError() (E, error) {
	if o.isSuccess {
		var zero E
		return zero, &AccessError{Op: "Error", State: StateSuccess}
	}
	return o.err, nil
}

// Get returns the success payload and true, or the zero T and false.
func (o Outcome[T, E]) Get() (T, bool) {
	if !o.isSuccess {
		var zero T
		return zero, false
	}
	return o.value, true
}

func (o Outcome[T, E]) ValueOr(fallback T) T {
	if o.isSuccess {
		return o.value
	}
	return fallback
}

// ValueOrElse calls fallback only when o is a failure.
func (o Outcome[T, E]) ValueOrElse(fallback func() T) T {
	if o.isSuccess {
		return o.value
	}
	return fallback()
}

// Take moves the success payload out of o, leaving the zero T in its place.
// o stays a success. It panics like Value on a failure.
func (o *Outcome[T, E]) Take() T {
	if !o.isSuccess {
		panic(&AccessError{Op: "Take", State: StateFailure})
	}
	v := o.value
	var zero T
	o.value = zero
	return v
}

// TakeOr moves the success payload out of o, or returns fallback when o is a
// failure. It never panics.
func (o *Outcome[T, E]) TakeOr(fallback T) T {
	if !o.isSuccess {
		return fallback
	}
	return o.Take()
}

// TakeError moves the error payload out of o, leaving the zero E in its
// place. o stays a failure.
func (o *Outcome[T, E]) TakeError() E {
	if o.isSuccess {
		panic(&AccessError{Op: "TakeError", State: StateSuccess})
	}
	e := o.err
	var zero E
	o.err = zero
	return e
}

func (o Outcome[T, E]) ID() uuid.UUID {
	return o.id
}

// CreatedAt time creation (UTC)
func (o Outcome[T, E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T, E]) String() string {
	if o.isSuccess {
		if _, ok := any(o.value).(Unit); ok {
			return "Success"
		}
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Failure(%v)", o.err)
}

// Format writes String for every verb. It takes precedence over Error,
// which an Outcome with E = string would otherwise expose to fmt.
func (o Outcome[T, E]) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, o.String())
}
