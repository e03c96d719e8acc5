// Package grid models the 2-D character maps that puzzle inputs are drawn in.
//
// What:
//
//   - Grid wraps a block of text lines as a rectangle of runes. Ragged right
//     edges are padded with a fill rune (space by default) up to the longest
//     line, so every row has the same Width.
//   - Point addresses a cell in screen coordinates: X grows to the right,
//     Y grows downward, (0,0) is the top-left character.
//   - Conn4 and Conn8 select orthogonal or orthogonal+diagonal neighbours.
//   - Direction is a compass heading (N, E, S, W) with 90° rotation.
//
// Coordinates are screen-oriented. A y-up world convention with the origin
// at the bottom-left is the same walk mirrored vertically: "north" is a step
// toward row 0 in both.
//
// Complexity:
//
//   - Parse: O(W×H) time and memory.
//   - At, InBounds, Neighbors: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: the input has no non-empty line.
package grid
