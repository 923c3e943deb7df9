package deflow

// SafeResult is the never-failing tagged union returned by pipe.RunSafe.
// Exactly one of Value/Err is meaningful, selected by Ok.
type SafeResult[T any] struct {
	Ok    bool
	Value T
	Err   error
}

func SafeSuccess[T any](v T) SafeResult[T] {
	return SafeResult[T]{Ok: true, Value: v}
}

func SafeFailure[T any](err error) SafeResult[T] {
	return SafeResult[T]{Ok: false, Err: err}
}

// Unwrap converts back to the usual (value, error) pair.
func (s SafeResult[T]) Unwrap() (T, error) {
	return s.Value, s.Err
}
