// Package harness dispatches puzzle inputs to registered day solvers and
// renders one line per part:
//
//	Day D Part P: <answer> - elapsed: <duration>
//	Day D Part P: No solution     (the solver returned solution.ErrNotImplemented)
//	Day D Part P: No input        (input/DD_pP.txt is absent)
//	Day D Part P: Failed: <error> (any other solver or read error)
//
// A failing part does not stop the run; Run reports ErrFailed at the end so
// the caller can exit non-zero.
//
// Inputs are read through an fs.FS rooted at Config.InputDir. Text is
// normalised (CRLF to LF, trailing newlines trimmed) before it reaches the
// solver.
//
// Configuration is a small YAML document:
//
//	input_dir: input
//	days: [7, 8]
//	parts: [1, 2, 3]
//
// Empty lists mean "all".
package harness
