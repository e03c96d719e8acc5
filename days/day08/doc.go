// Package day08 grows a stepped pyramid row by row until it uses up a
// given number of blocks.
//
// Three growth rules are provided:
//
//   - Thin: every row is one block thick and two blocks wider than the last.
//   - Thick: row thickness is last·priests mod acolytes.
//   - Hollow: row thickness is (last·priests mod acolytes) + acolytes, and
//     every interior column has (priests·baseWidth·height) mod acolytes
//     blocks removed. The two outermost columns are always solid.
//
// The pyramid is mirror-symmetric, so only the half-profile of column
// heights (axis first, then outward) is stored.
//
// Block counts use 128-bit unsigned arithmetic.
package day08
