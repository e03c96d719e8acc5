// Package day04 levels nails with the fewest hammer strikes.
//
// Parts 1 and 2 may only strike nails down, so every nail is brought to the
// shortest one. Part 3 may pull nails up as well; the cheapest common
// height is the median.
package day04

import (
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/Taxel/everybody-codes-2024/grid"
	"github.com/Taxel/everybody-codes-2024/parse"
	"github.com/Taxel/everybody-codes-2024/solution"
)

// Strikes is the total distance from every nail to level.
func Strikes[T constraints.Integer](nails []T, level T) T {
	var sum T
	for _, n := range nails {
		sum += grid.AbsDiff(n, level)
	}
	return sum
}

// Median returns the lower median of nails. nails must be non-empty.
func Median[T constraints.Integer](nails []T) T {
	sorted := slices.Clone(nails)
	slices.Sort(sorted)
	return sorted[(len(sorted)-1)/2]
}

func parseNails(input string) ([]int, error) {
	nails, err := parse.Ints(input)
	if err != nil {
		return nil, errors.Wrap(solution.ErrMalformedInput, err.Error())
	}
	if len(nails) == 0 {
		return nil, errors.Wrap(solution.ErrMalformedInput, "no nails")
	}
	return nails, nil
}

// Solver implements solution.Solution for day 4.
type Solver struct{}

var _ solution.Solution[int] = Solver{}

func (Solver) Day() int { return 4 }

func (s Solver) Part1(input string) (int, error) {
	nails, err := parseNails(input)
	if err != nil {
		return 0, err
	}
	return Strikes(nails, slices.Min(nails)), nil
}

func (s Solver) Part2(input string) (int, error) { return s.Part1(input) }

func (Solver) Part3(input string) (int, error) {
	nails, err := parseNails(input)
	if err != nil {
		return 0, err
	}
	return Strikes(nails, Median(nails)), nil
}
