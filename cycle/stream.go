package cycle

// Stream is a pull-based lazy sequence. Next returns false once exhausted.
type Stream[T any] interface {
	Next() (T, bool)
}

// FuncStream adapts a function to the Stream interface.
type FuncStream[T any] func() (T, bool)

// Next calls f.
func (f FuncStream[T]) Next() (T, bool) { return f() }

// SliceStream yields the elements of a slice in order.
type SliceStream[T any] struct {
	items []T
	pos   int
}

// FromSlice returns a stream over items.
func FromSlice[T any](items []T) *SliceStream[T] {
	return &SliceStream[T]{items: items}
}

// Next returns the next element of the slice.
func (s *SliceStream[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	s.pos++
	return s.items[s.pos-1], true
}
