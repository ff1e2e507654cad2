package outcome

// Transform applies f to the success payload. A failure is re-typed with the
// same error and f is not called.
func Transform[U, T, E any](o Outcome[T, E], f func(T) U) Outcome[U, E] {
	if !o.isSuccess {
		return failureFrom[U](o)
	}
	return Success[E](f(o.value))
}

// TransformError applies f to the error payload. A success passes through
// unchanged and f is not called.
func TransformError[F, T, E any](o Outcome[T, E], f func(E) F) Outcome[T, F] {
	if o.isSuccess {
		return successFrom[F](o)
	}
	return Failure[T](f(o.err))
}

// AndThen hands the success payload to f and returns whatever f returns. A
// failure short-circuits without calling f.
func AndThen[U, T, E any](o Outcome[T, E], f func(T) Outcome[U, E]) Outcome[U, E] {
	if !o.isSuccess {
		return failureFrom[U](o)
	}
	return f(o.value)
}

// OrElse hands the error payload to f and returns whatever f returns. A
// success short-circuits without calling f.
func OrElse[F, T, E any](o Outcome[T, E], f func(E) Outcome[T, F]) Outcome[T, F] {
	if o.isSuccess {
		return successFrom[F](o)
	}
	return f(o.err)
}

// Match collapses o into a single value.
func Match[R, T, E any](o Outcome[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	if o.isSuccess {
		return onSuccess(o.value)
	}
	return onFailure(o.err)
}

// Flatten removes one level of nesting.
func Flatten[T, E any](o Outcome[Outcome[T, E], E]) Outcome[T, E] {
	if !o.isSuccess {
		return failureFrom[T](o)
	}
	return o.value
}

// Inspect calls onSuccess or onFailure for its side effects and returns o.
// Either callback may be nil.
func (o Outcome[T, E]) Inspect(onSuccess func(T), onFailure func(E)) Outcome[T, E] {
	if o.isSuccess {
		if onSuccess != nil {
			onSuccess(o.value)
		}
	} else if onFailure != nil {
		onFailure(o.err)
	}
	return o
}

// Collect turns a slice of outcomes into an outcome of a slice, stopping at
// the first failure.
func Collect[T, E any](outs []Outcome[T, E]) Outcome[[]T, E] {
	values := make([]T, 0, len(outs))
	for _, o := range outs {
		if !o.isSuccess {
			return failureFrom[[]T](o)
		}
		values = append(values, o.value)
	}
	return Success[E](values)
}
