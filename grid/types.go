package grid

import "errors"

// ErrEmptyGrid indicates the text to parse contains no cells.
var ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

// Point is a cell position in screen coordinates.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{p.X + d.X, p.Y + d.Y} }

// Connectivity selects neighbour connectivity.
type Connectivity int

const (
	// Conn4 uses N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

var (
	offsets4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbour deltas for c, clockwise from north.
// The returned slice must not be modified.
func (c Connectivity) Offsets() []Point {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Direction is a compass heading.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Clockwise turns d right by 90°.
func (d Direction) Clockwise() Direction { return (d + 1) % 4 }

// CounterClockwise turns d left by 90°.
func (d Direction) CounterClockwise() Direction { return (d + 3) % 4 }

// Delta is the one-step move for d.
func (d Direction) Delta() Point { return offsets4[d] }

func (d Direction) String() string {
	return [...]string{"N", "E", "S", "W"}[d]
}
