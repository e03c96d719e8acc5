// Package day01 totals the potions needed to fight creatures.
//
// Creatures arrive in groups of 1 (part 1), 2 (part 2) or 3 (part 3). Each
// creature needs a fixed number of potions; x marks an empty slot. When n
// creatures share a group every one of them needs n-1 extra potions.
package day01

import (
	"github.com/pkg/errors"

	"github.com/Taxel/everybody-codes-2024/solution"
)

var potions = map[rune]int{'A': 0, 'B': 1, 'C': 3, 'D': 5}

const empty = 'x'

// Potions returns the potions needed for the battle in groups of size.
func Potions(input string, size int) (int, error) {
	var creatures []rune
	for _, r := range input {
		if r == '\n' || r == '\r' {
			continue
		}
		creatures = append(creatures, r)
	}
	if len(creatures)%size != 0 {
		return 0, errors.Wrapf(solution.ErrMalformedInput, "%d creatures do not split into groups of %d", len(creatures), size)
	}

	total := 0
	for i := 0; i < len(creatures); i += size {
		present := 0
		for _, r := range creatures[i : i+size] {
			if r == empty {
				continue
			}
			p, ok := potions[r]
			if !ok {
				return 0, errors.Wrapf(solution.ErrMalformedInput, "creature %q", r)
			}
			total += p
			present++
		}
		total += present * (present - 1)
	}
	return total, nil
}

// Solver implements solution.Solution for day 1.
type Solver struct{}

var _ solution.Solution[int] = Solver{}

func (Solver) Day() int { return 1 }

func (Solver) Part1(input string) (int, error) { return Potions(input, 1) }

func (Solver) Part2(input string) (int, error) { return Potions(input, 2) }

func (Solver) Part3(input string) (int, error) { return Potions(input, 3) }
