package day07

import (
	"github.com/pkg/errors"

	"github.com/Taxel/everybody-codes-2024/grid"
	"github.com/Taxel/everybody-codes-2024/solution"
)

// ParseTrack walks the ASCII loop and returns its instructions in driving
// order, ending with the start cell.
func ParseTrack(ascii string) ([]Instruction, error) {
	g, err := grid.Parse(ascii)
	if err != nil {
		return nil, errors.Wrap(solution.ErrMalformedInput, err.Error())
	}

	onTrack := func(p grid.Point) bool { return g.At(p) != ' ' }
	start := grid.Point{X: 0, Y: 0}
	heading := grid.East
	pos := start.Add(heading.Delta())
	if !onTrack(pos) {
		return nil, errors.Wrap(solution.ErrMalformedInput, "track: no segment east of start")
	}

	limit := g.Width * g.Height
	var track []Instruction
	for pos != start {
		if len(track) >= limit {
			return nil, errors.Wrapf(solution.ErrMalformedInput, "track: loop does not close within %d cells", limit)
		}
		ins, err := ParseInstruction(g.At(pos))
		if err != nil {
			return nil, errors.Wrapf(err, "track at %v", pos)
		}
		track = append(track, ins)

		moved := false
		for _, d := range []grid.Direction{heading.Clockwise(), heading, heading.CounterClockwise()} {
			if next := pos.Add(d.Delta()); onTrack(next) {
				heading, pos, moved = d, next, true
				break
			}
		}
		if !moved {
			return nil, errors.Wrapf(solution.ErrMalformedInput, "track: dead end at %v", pos)
		}
	}

	return append(track, Maintain), nil
}
