package outcome

// FromTuple adapts the usual (value, error) return pair.
func FromTuple[T any](v T, err error) Outcome[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[error](v)
}

// Unpack is the inverse of FromTuple. A failure yields the zero T.
func Unpack[T any](o Outcome[T, error]) (T, error) {
	if !o.isSuccess {
		var zero T
		return zero, o.err
	}
	return o.value, nil
}
