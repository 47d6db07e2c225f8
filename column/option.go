package column

// option is a value that may be absent.
type option[T any] struct {
	v  T
	ok bool
}

func some[T any](v T) option[T] {
	return option[T]{v: v, ok: true}
}

func (o option[T]) get() (T, bool) {
	return o.v, o.ok
}
