package outcome

// Unit is the success payload of an outcome that carries no data.
type Unit struct{}

// Status is an Outcome whose success side carries nothing.
type Status[E any] = Outcome[Unit, E]

// Ok returns a successful Status.
func Ok[E any]() Status[E] {
	return Success[E](Unit{})
}

// Fail returns a failed Status.
func Fail[E any](e E) Status[E] {
	return Failure[Unit](e)
}

// StatusOf converts a Go error: nil is success, anything else a failure.
func StatusOf(err error) Status[error] {
	if err != nil {
		return Fail(err)
	}
	return Ok[error]()
}

// Then is AndThen for a Status: f takes no argument and runs only on
// success.
func Then[U, E any](s Status[E], f func() Outcome[U, E]) Outcome[U, E] {
	if !s.isSuccess {
		return failureFrom[U](s)
	}
	return f()
}

// Err returns the error of a Status[error], or nil on success. It never
// panics.
func Err(s Status[error]) error {
	if s.isSuccess {
		return nil
	}
	return s.err
}
