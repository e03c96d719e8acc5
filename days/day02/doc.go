// Package day02 finds runic words in inscriptions.
//
// The first line lists the words (WORDS:THE,OWE,...); after a blank line
// come the inscriptions. A cell is a rune when it belongs to an occurrence
// of some word read forward or backward. Lines are either linear (the ends
// are real ends) or rings (the last cell is followed by the first); in the
// grid variant rows are rings and columns are linear.
package day02
