// Package solution defines the contract every day solver implements.
//
// A solver is a stateless value exposing its day number and three pure
// functions, one per part, from raw input text to an answer of a declared
// type (int, string, ...). A part that the solver does not provide returns
// ErrNotImplemented; input that violates the day's format returns an error
// wrapping ErrMalformedInput.
//
// Erase hides the answer type behind the Day interface so the harness can
// hold heterogeneous solvers in one registry.
package solution
