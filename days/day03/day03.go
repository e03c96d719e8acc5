// Package day03 measures how deep earth blocks can be dug.
//
// Every '#' cell of the map can be dug to one more than the shallowest of
// its neighbours; anything that is not '#' (including the area around the
// map) has depth zero. Parts 1 and 2 use orthogonal neighbours, part 3 adds
// the diagonals. The answer is the total depth over all cells.
//
// Depths are computed in a single breadth-first walk from a virtual node
// standing for "all ground at once".
package day03

import (
	"math"

	"github.com/pkg/errors"

	"github.com/Taxel/everybody-codes-2024/bfs"
	"github.com/Taxel/everybody-codes-2024/grid"
	"github.com/Taxel/everybody-codes-2024/solution"
)

const earth = '#'

// ground is the virtual source adjacent to every zero-depth cell.
var ground = grid.Point{X: math.MinInt, Y: math.MinInt}

// mine is the map as an implicit graph for bfs.Walk.
type mine struct {
	g    *grid.Grid
	conn grid.Connectivity
}

func (m mine) Successors(p grid.Point) []grid.Point {
	if p == ground {
		return m.surface()
	}
	var out []grid.Point
	for _, q := range m.g.Neighbors(p, m.conn) {
		if m.g.At(q) == earth {
			out = append(out, q)
		}
	}
	return out
}

// surface lists every zero-depth cell: open cells inside the map and the
// ring just outside it.
func (m mine) surface() []grid.Point {
	var out []grid.Point
	for _, p := range m.g.Points() {
		if m.g.At(p) != earth {
			out = append(out, p)
		}
	}
	for x := -1; x <= m.g.Width; x++ {
		out = append(out, grid.Point{X: x, Y: -1}, grid.Point{X: x, Y: m.g.Height})
	}
	for y := 0; y < m.g.Height; y++ {
		out = append(out, grid.Point{X: -1, Y: y}, grid.Point{X: m.g.Width, Y: y})
	}
	return out
}

// Depths returns the dig depth of every '#' cell.
func Depths(text string, conn grid.Connectivity) (map[grid.Point]int, error) {
	g, err := grid.Parse(text, grid.WithFill('.'))
	if err != nil {
		return nil, errors.Wrap(solution.ErrMalformedInput, err.Error())
	}
	for _, p := range g.Points() {
		if r := g.At(p); r != earth && r != '.' {
			return nil, errors.Wrapf(solution.ErrMalformedInput, "cell %v: %q", p, r)
		}
	}

	res, err := bfs.Walk[grid.Point](mine{g: g, conn: conn}, ground)
	if err != nil {
		return nil, err
	}
	depths := make(map[grid.Point]int)
	for _, p := range g.Points() {
		if g.At(p) == earth {
			// ground cells sit at walk depth 1
			depths[p] = res.Depth[p] - 1
		}
	}
	return depths, nil
}

// Total sums the dig depths.
func Total(text string, conn grid.Connectivity) (int, error) {
	depths, err := Depths(text, conn)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, d := range depths {
		sum += d
	}
	return sum, nil
}

// Solver implements solution.Solution for day 3.
type Solver struct{}

var _ solution.Solution[int] = Solver{}

func (Solver) Day() int { return 3 }

func (Solver) Part1(input string) (int, error) { return Total(input, grid.Conn4) }

func (Solver) Part2(input string) (int, error) { return Total(input, grid.Conn4) }

func (Solver) Part3(input string) (int, error) { return Total(input, grid.Conn8) }
