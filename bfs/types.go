package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for nodes that were never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Graph is an implicit graph: it yields the successors of a node on demand.
// Nodes must be comparable so they can key the visited set and the
// precursor table. Duplicates and self-loops in the returned slice are harmless.
type Graph[N comparable] interface {
	Successors(n N) []N
}

// GraphFunc adapts an ordinary function to the Graph interface.
type GraphFunc[N comparable] func(n N) []N

// Successors calls f(n).
func (f GraphFunc[N]) Successors(n N) []N { return f(n) }

// Option configures Walk behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Walk is invoked.
type Option[N comparable] func(*Options[N])

// Options holds parameters and callbacks to customize Walk.
type Options[N comparable] struct {
	// OnVisit is called when a node is dequeued. If it returns an error,
	// Walk aborts and propagates that error.
	OnVisit func(n N, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterSuccessor can skip edges by returning false.
	FilterSuccessor func(curr, next N) bool

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and a
// no-op visit hook.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		OnVisit:         func(N, int) error { return nil },
		FilterSuccessor: func(_, _ N) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit[N comparable](fn func(n N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[N comparable](d int) Option[N] {
	return func(o *Options[N]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterSuccessor skips successors when fn returns false.
func WithFilterSuccessor[N comparable](fn func(curr, next N) bool) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.FilterSuccessor = fn
		}
	}
}

// Result holds the outcome of a Walk:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node to its distance (in edges) from the start.
//   - Parent: map from node to its predecessor in the BFS tree.
type Result[N comparable] struct {
	Start  N
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// Reached reports whether n was discovered by the walk.
func (r *Result[N]) Reached(n N) bool {
	_, ok := r.Depth[n]
	return ok
}

// PathTo reconstructs the path from the start node to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}

	return buildPath(dest, r.Start, r.Parent), nil
}
