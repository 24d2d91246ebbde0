package cursor

// Sequence is an indexable source. At reports false for indices it cannot
// resolve instead of panicking.
type Sequence[T any] interface {
	At(i int) (T, bool)
	Len() int
	Items() []T
}

// Slice is a plain, bounded sequence.
type Slice[T any] []T

func (s Slice[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s) {
		var zero T
		return zero, false
	}
	return s[i], true
}

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) Items() []T {
	res := make([]T, len(s))
	copy(res, s)
	return res
}

// Cyclic resolves every index modulo its length, so reads never fail as long
// as it is not empty.
type Cyclic[T any] []T

func (c Cyclic[T]) At(i int) (T, bool) {
	if len(c) == 0 {
		var zero T
		return zero, false
	}
	i %= len(c)
	if i < 0 {
		i += len(c)
	}
	return c[i], true
}

func (c Cyclic[T]) Len() int {
	return len(c)
}

func (c Cyclic[T]) Items() []T {
	return Slice[T](c).Items()
}
