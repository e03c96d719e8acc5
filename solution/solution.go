package solution

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented marks a part the solver chose not to compute.
	ErrNotImplemented = errors.New("solution: part not implemented")
	// ErrMalformedInput marks input that violates the day's format.
	ErrMalformedInput = errors.New("solution: malformed input")
	// ErrBadPart is returned by Day.Solve for a part outside 1..3.
	ErrBadPart = errors.New("solution: part must be 1, 2 or 3")
)

// Solution is implemented by each day with its answer type T.
type Solution[T any] interface {
	Day() int
	Part1(input string) (T, error)
	Part2(input string) (T, error)
	Part3(input string) (T, error)
}

// Day is a type-erased Solution.
type Day interface {
	Number() int
	Solve(part int, input string) (string, error)
}

type erased[T any] struct {
	s Solution[T]
}

// Erase wraps s as a Day whose answers are rendered with fmt.Sprint.
func Erase[T any](s Solution[T]) Day {
	return erased[T]{s: s}
}

func (e erased[T]) Number() int { return e.s.Day() }

func (e erased[T]) Solve(part int, input string) (string, error) {
	var fn func(string) (T, error)
	switch part {
	case 1:
		fn = e.s.Part1
	case 2:
		fn = e.s.Part2
	case 3:
		fn = e.s.Part3
	default:
		return "", fmt.Errorf("%w: got %d", ErrBadPart, part)
	}

	v, err := fn(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}
