package day07

import (
	"cmp"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/Taxel/everybody-codes-2024/parse"
	"github.com/Taxel/everybody-codes-2024/solution"
)

// World is the set of chariots plus an optional track.
type World struct {
	Chariots []*Chariot
	Track    []Instruction
	segment  int
}

// ParseWorld reads the chariot block and, if present, the track block.
func ParseWorld(input string) (*World, error) {
	blocks := parse.Blocks(input)
	if len(blocks) == 0 {
		return nil, errors.Wrap(solution.ErrMalformedInput, "no chariots")
	}

	w := &World{}
	for _, line := range parse.Lines(blocks[0]) {
		c, err := ParseChariot(line)
		if err != nil {
			return nil, err
		}
		w.Chariots = append(w.Chariots, c)
	}
	if len(blocks) > 1 {
		track, err := ParseTrack(blocks[1])
		if err != nil {
			return nil, err
		}
		w.Track = track
	}

	return w, nil
}

// external returns the track instruction under the field.
func (w *World) external() Instruction {
	if len(w.Track) == 0 {
		return Maintain
	}
	return w.Track[w.segment]
}

func (w *World) advance(ticks int) {
	if len(w.Track) > 0 {
		w.segment = (w.segment + ticks) % len(w.Track)
	}
}

// Step runs a single tick for every chariot.
func (w *World) Step() {
	ext := w.external()
	for _, c := range w.Chariots {
		c.apply(ext)
	}
	w.advance(1)
}

// Run advances the world by ticks. The result is identical to calling Step
// ticks times.
func (w *World) Run(ticks int) {
	for _, c := range w.Chariots {
		w.runChariot(c, ticks)
	}
	w.advance(ticks)
}

// Loops runs n full laps of the track, or n ticks when there is no track.
func (w *World) Loops(n int) {
	w.Run(n * max(len(w.Track), 1))
}

// period describes one full cycle of a chariot's effective instructions.
type period struct {
	length  int
	delta   int // net power change
	prefix  int // sum of power changes after each tick
	minimum int // lowest running change
	ops     []Instruction
}

func (w *World) periodFor(c *Chariot) period {
	trackLen := max(len(w.Track), 1)
	n := lcm(trackLen, len(c.Plan))
	p := period{length: n, ops: make([]Instruction, n)}
	run := 0
	for t := 0; t < n; t++ {
		ext := Maintain
		if len(w.Track) > 0 {
			ext = w.Track[(w.segment+t)%trackLen]
		}
		if ext == Maintain {
			ext = c.Plan[(c.next+t)%len(c.Plan)]
		}
		p.ops[t] = ext
		run += int(ext)
		p.prefix += run
		if t == 0 || run < p.minimum {
			p.minimum = run
		}
	}
	p.delta = run
	return p
}

func (w *World) runChariot(c *Chariot, ticks int) {
	p := w.periodFor(c)
	for ; ticks >= p.length; ticks -= p.length {
		if c.Power+p.minimum >= 0 {
			c.Essence += p.length*c.Power + p.prefix
			c.Power += p.delta
			continue
		}
		stepOps(c, p.ops)
	}
	stepOps(c, p.ops[:ticks])
}

// stepOps applies already-resolved instructions, keeping the plan cursor in step.
func stepOps(c *Chariot, ops []Instruction) {
	for _, ins := range ops {
		c.Power = max(c.Power+int(ins), 0)
		c.Essence += c.Power
	}
	c.next = (c.next + len(ops)) % len(c.Plan)
}

// Ranking returns chariot names by essence, highest first. Ties keep input order.
func (w *World) Ranking() string {
	ranked := slices.Clone(w.Chariots)
	slices.SortStableFunc(ranked, func(a, b *Chariot) int { return cmp.Compare(b.Essence, a.Essence) })
	var sb strings.Builder
	for _, c := range ranked {
		sb.WriteString(c.Name)
	}
	return sb.String()
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }
