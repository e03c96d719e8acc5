package day02

import (
	"strings"

	"github.com/Taxel/everybody-codes-2024/solution"
)

// Solver implements solution.Solution for day 2.
type Solver struct{}

var _ solution.Solution[int] = Solver{}

func (Solver) Day() int { return 2 }

// Part1 counts non-overlapping forward occurrences of every word.
func (Solver) Part1(input string) (int, error) {
	ins, err := Parse(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, w := range ins.Words {
		n += strings.Count(ins.Text, w)
	}
	return n, nil
}

// Part2 counts rune cells, lines being linear.
func (Solver) Part2(input string) (int, error) {
	ins, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return CountLinear(ins.Text, ins.Words), nil
}

// Part3 counts rune cells in the scale armour grid.
func (Solver) Part3(input string) (int, error) {
	ins, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return CountGrid(ins.Text, ins.Words)
}
