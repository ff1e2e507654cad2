package outcome

import "reflect"

type equatable[T any] interface {
	// Equal reports whether the receiver and the other values are equal.
	Equal(other T) bool
}

// Equal reports whether a and b are on the same side with equal active
// payloads. Two failures with equal errors are equal. Payloads are compared
// with their Equal(T) bool method when they have one, else with == when the
// dynamic values are comparable; anything else is unequal. ID and CreatedAt
// are ignored.
func Equal[T, E any](a, b Outcome[T, E]) bool {
	return EqualFunc(a, b, payloadEqual[T], payloadEqual[E])
}

// EqualFunc is Equal with caller-supplied comparers.
func EqualFunc[T, E any](a, b Outcome[T, E], eqValue func(T, T) bool, eqErr func(E, E) bool) bool {
	if a.isSuccess != b.isSuccess {
		return false
	}
	if a.isSuccess {
		return eqValue(a.value, b.value)
	}
	return eqErr(a.err, b.err)
}

func (o Outcome[T, E]) Equal(other Outcome[T, E]) bool {
	return Equal(o, other)
}

func payloadEqual[V any](a, b V) bool {
	if eq, ok := any(a).(equatable[V]); ok {
		return eq.Equal(b)
	}
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}
	if !reflect.ValueOf(av).Comparable() || !reflect.ValueOf(bv).Comparable() {
		return false
	}
	return av == bv
}
