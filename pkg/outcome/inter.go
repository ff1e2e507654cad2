package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Discriminated is anything that reports which side it is on.
type Discriminated interface {
	// IsSuccess returns true if the success payload is active
	IsSuccess() bool
	// IsFailure returns true if the error payload is active
	IsFailure() bool
}

// ValueProvider exposes the success side.
type ValueProvider[T any] interface {
	Discriminated
	// Value returns the success payload, panicking on a failure
	Value() T
	// ValueOr returns the success payload or the fallback
	ValueOr(fallback T) T
}

// ErrorProvider exposes the error side.
type ErrorProvider[E any] interface {
	Discriminated
	// Error returns the error payload, panicking on a success
	Error() E
}

// Provider is the full read-only surface of an Outcome.
type Provider[T, E any] interface {
	ValueProvider[T]
	ErrorProvider[E]
	// ID identifies the outcome; re-typing keeps it
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var _ Provider[int, error] = Outcome[int, error]{}
