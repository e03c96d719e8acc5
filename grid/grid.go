package grid

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Grid is an immutable rectangle of runes.
type Grid struct {
	Width, Height int
	cells         [][]rune
	fill          rune
}

// Option customises Parse.
type Option func(*Grid)

// WithFill sets the rune used to pad ragged lines and returned by At for
// cells outside the grid. Default is ' '.
func WithFill(r rune) Option {
	return func(g *Grid) { g.fill = r }
}

// Parse builds a Grid from newline-separated text. Trailing blank lines are
// ignored; short lines are padded on the right.
func Parse(text string, opts ...Option) (*Grid, error) {
	g := &Grid{fill: ' '}
	for _, o := range opts {
		o(g)
	}

	lines := strings.Split(strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n"), "\n")
	for _, l := range lines {
		g.Width = max(g.Width, len([]rune(l)))
	}
	if g.Width == 0 {
		return nil, ErrEmptyGrid
	}
	g.Height = len(lines)

	g.cells = make([][]rune, g.Height)
	for y, l := range lines {
		row := make([]rune, g.Width)
		n := copy(row, []rune(l))
		for x := n; x < g.Width; x++ {
			row[x] = g.fill
		}
		g.cells[y] = row
	}

	return g, nil
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the rune at p, or the fill rune when p is out of bounds.
func (g *Grid) At(p Point) rune {
	if !g.InBounds(p) {
		return g.fill
	}
	return g.cells[p.Y][p.X]
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []rune {
	return append([]rune(nil), g.cells[y]...)
}

// Column returns a copy of column x, top to bottom.
func (g *Grid) Column(x int) []rune {
	col := make([]rune, g.Height)
	for y := range col {
		col[y] = g.cells[y][x]
	}
	return col
}

// Neighbors returns the in-bounds neighbours of p in clockwise order from north.
func (g *Grid) Neighbors(p Point, c Connectivity) []Point {
	out := make([]Point, 0, 8)
	for _, d := range c.Offsets() {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Points yields every cell in row-major order.
func (g *Grid) Points() []Point {
	pts := make([]Point, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			pts = append(pts, Point{x, y})
		}
	}
	return pts
}

// String renders the grid, padding included.
func (g *Grid) String() string {
	var sb strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AbsDiff returns |a-b| without overflowing unsigned types.
func AbsDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Manhattan returns the taxicab distance between p and q.
func Manhattan(p, q Point) int {
	return AbsDiff(p.X, q.X) + AbsDiff(p.Y, q.Y)
}
