package cycle

import "iter"

// Finder forwards elements of an inner stream until the first repeat.
type Finder[T comparable] struct {
	inner Stream[T]
	seen  map[T]struct{}
	done  bool
}

// New wraps inner in a Finder.
func New[T comparable](inner Stream[T]) *Finder[T] {
	return &Finder[T]{inner: inner, seen: make(map[T]struct{})}
}

// Next returns the next element of the inner stream, or false once the
// inner stream is exhausted or an element repeats. A finished Finder never
// pulls from the inner stream again.
func (f *Finder[T]) Next() (T, bool) {
	var zero T
	if f.done {
		return zero, false
	}
	v, ok := f.inner.Next()
	if !ok {
		f.done = true
		return zero, false
	}
	if _, repeat := f.seen[v]; repeat {
		f.done = true
		return zero, false
	}
	f.seen[v] = struct{}{}

	return v, true
}

// Seen reports how many distinct elements have been emitted.
func (f *Finder[T]) Seen() int { return len(f.seen) }

// Find adapts seq so that iteration stops at the first repeated element.
func Find[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return FindBy(seq, func(v T) T { return v })
}

// FindBy is like Find but detects repeats on key(v) rather than v itself.
func FindBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, repeat := seen[k]; repeat {
				return
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains a Stream into a slice.
func Collect[T any](s Stream[T]) []T {
	var out []T
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		out = append(out, v)
	}
	return out
}
