package outcome

// SuccessTag marks a value as the success side before it becomes an
// Outcome. It is needed when T and E are the same type.
type SuccessTag[T any] struct {
	value T
}

// ErrorTag marks a value as the error side before it becomes an Outcome.
type ErrorTag[E any] struct {
	err E
}

func MakeSuccess[T any](v T) SuccessTag[T] {
	return SuccessTag[T]{value: v}
}

func MakeError[E any](e E) ErrorTag[E] {
	return ErrorTag[E]{err: e}
}

// FromSuccess consumes a success tag.
func FromSuccess[E, T any](tag SuccessTag[T]) Outcome[T, E] {
	return Success[E](tag.value)
}

// FromError consumes an error tag.
func FromError[T, E any](tag ErrorTag[E]) Outcome[T, E] {
	return Failure[T](tag.err)
}

// WidenError retags a narrower error as E. It reports false, and leaves the
// returned tag empty, when the tagged value cannot be assigned to E, which
// happens when E is a concrete type other than U or an interface U does not
// implement.
func WidenError[E, U any](tag ErrorTag[U]) (ErrorTag[E], bool) {
	e, ok := any(tag.err).(E)
	if !ok {
		return ErrorTag[E]{}, false
	}
	return ErrorTag[E]{err: e}, true
}
