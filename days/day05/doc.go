// Package day05 simulates four columns of dancers passing a clapper around.
//
// Each round the head of the active column becomes the clapper. The next
// column (cyclically) becomes active and the clapper walks down its left
// side and back up its right side, clapper mod 2·len steps, and joins the
// column where it stops. After every round the four heads, read left to
// right, form the shout.
//
// The world is deterministic with a finite state space, so the largest shout
// ever heard is found by running until the full state repeats.
package day05
