// Package parse holds the text helpers shared by the day solvers: input
// normalisation, blank-line blocks, whitespace-separated integers, and a
// small participle grammar for "LABEL:item,item,..." lines (chariot plans,
// rune word headers).
package parse
