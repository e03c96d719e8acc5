// Package day07 simulates chariots racing on a looped instruction track.
//
// Each chariot starts with power 10 and a cyclic plan of instructions
// (+ raise, - lower, = maintain). Every tick the track segment under the
// field supplies an external instruction; + and - override every chariot's
// plan, = (and the start marker S) lets each chariot follow its own plan.
// Power never drops below zero. After acting, a chariot adds its power to
// the essence it has collected.
//
// The track is drawn as an ASCII loop starting at the top-left cell. It is
// walked clockwise from that cell heading east, preferring a right turn,
// then straight on, then a left turn, until the walker is back at the start.
//
// Chariots do not influence each other, so World.Run advances each chariot
// independently and skips whole periods (lcm of track and plan length) in
// closed form whenever power cannot saturate within the period.
package day07
