// Package everybodycodes collects solvers for the Everybody Codes 2024
// puzzle event together with the small kernels they share.
//
// Layout:
//
//	bfs/        breadth-first search and traversal over implicit graphs
//	dijkstra/   weighted shortest paths over implicit graphs
//	cycle/      stop a lazy stream at its first repeated state
//	grid/       character maps, neighbours and headings
//	parse/      shared input parsing
//	solution/   the contract every day implements
//	harness/    input loading, dispatch and answer lines
//	days/dayNN/ one package per puzzle day
//	cmd/everybodycodes the command-line runner
//
// Inputs live in input/DD_pP.txt; run
//
//	go run ./cmd/everybodycodes 7 8
//
// to solve days 7 and 8.
package everybodycodes
