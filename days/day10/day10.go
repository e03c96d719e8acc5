// Package day10 reads runic words out of shrine grids.
//
// A grid is 8×8: rows 0, 1, 6 and 7 hold four column symbols each at x 2..5,
// and columns 0, 1, 6 and 7 hold four row symbols each at y 2..5. The inner
// 4×4 cell (x, y) takes the one symbol its row and column have in common.
// Several grids may be tiled with a one-cell gap.
package day10

import (
	"slices"
	"strconv"

	"github.com/pkg/errors"

	"github.com/Taxel/everybody-codes-2024/grid"
	"github.com/Taxel/everybody-codes-2024/solution"
)

const (
	size   = 8
	stride = size + 1
)

// unknown fills a cell whose row and column share no symbol.
const unknown = '?'

// Word reads the runic word of the grid whose top-left corner is at origin.
func Word(g *grid.Grid, origin grid.Point) string {
	at := func(x, y int) rune { return g.At(origin.Add(grid.Point{X: x, Y: y})) }
	outer := []int{0, 1, 6, 7}

	word := make([]rune, 0, 16)
	for y := 2; y < 6; y++ {
		row := make([]rune, 0, 4)
		for _, x := range outer {
			row = append(row, at(x, y))
		}
		for x := 2; x < 6; x++ {
			r := unknown
			for _, yy := range outer {
				if c := at(x, yy); c != unknown && slices.Contains(row, c) {
					r = c
					break
				}
			}
			word = append(word, r)
		}
	}
	return string(word)
}

// Power is the sum of letter values (A=1) times their 1-based position.
// A word with an unknown cell has no power.
func Power(word string) int {
	p := 0
	for i, r := range word {
		if r < 'A' || r > 'Z' {
			return 0
		}
		p += int(r-'A'+1) * (i + 1)
	}
	return p
}

func parseGrid(input string) (*grid.Grid, error) {
	g, err := grid.Parse(input, grid.WithFill('.'))
	if err != nil {
		return nil, errors.Wrap(solution.ErrMalformedInput, err.Error())
	}
	if g.Width < size || g.Height < size {
		return nil, errors.Wrapf(solution.ErrMalformedInput, "grid is %dx%d, need at least %dx%d", g.Width, g.Height, size, size)
	}
	return g, nil
}

// Solver implements solution.Solution for day 10.
type Solver struct{}

var _ solution.Solution[string] = Solver{}

func (Solver) Day() int { return 10 }

// Part1 is the word of a single grid.
func (Solver) Part1(input string) (string, error) {
	g, err := parseGrid(input)
	if err != nil {
		return "", err
	}
	return Word(g, grid.Point{}), nil
}

// Part2 sums the power of every tiled grid.
func (Solver) Part2(input string) (string, error) {
	g, err := parseGrid(input)
	if err != nil {
		return "", err
	}
	total := 0
	for y := 0; y+size <= g.Height; y += stride {
		for x := 0; x+size <= g.Width; x += stride {
			total += Power(Word(g, grid.Point{X: x, Y: y}))
		}
	}
	return strconv.Itoa(total), nil
}

// Part3 needs overlapping grids with partially unknown symbols.
func (Solver) Part3(string) (string, error) {
	return "", solution.ErrNotImplemented
}
