// Package cycle detects the first repeated state of a lazy stream.
//
// A Finder wraps any stream and forwards its elements verbatim until it
// observes a value it has already emitted; from then on it yields nothing,
// permanently. Over a deterministic system this emits exactly one copy of
// every state up to (but not including) the start of the cycle.
//
// Two shapes are provided:
//
//   - Finder, a pull object with Next(), for callers that drive a Stream
//     by hand.
//   - Find and FindBy, adapters over iter.Seq for use with range-over-func.
//     FindBy keys the seen-set through a caller-supplied function, so states
//     that are not comparable (slices, maps) can be hashed structurally.
//
// The element (or key) must identify the full dynamical state: emitting
// only an output scalar when several states share it would signal a false
// cycle.
//
// Complexity: O(1) amortised per element, O(n) memory for the seen-set.
package cycle
