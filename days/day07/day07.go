package day07

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/Taxel/everybody-codes-2024/solution"
)

const (
	part1Ticks = 10
	part2Loops = 10
	part3Loops = 2024
)

// Solver implements solution.Solution for day 7.
type Solver struct{}

var _ solution.Solution[string] = Solver{}

func (Solver) Day() int { return 7 }

// Part1 ranks the chariots after ten ticks.
func (Solver) Part1(input string) (string, error) {
	w, err := ParseWorld(input)
	if err != nil {
		return "", err
	}
	w.Run(part1Ticks)
	return w.Ranking(), nil
}

// Part2 ranks the chariots after ten laps of the track.
func (Solver) Part2(input string) (string, error) {
	w, err := ParseWorld(input)
	if err != nil {
		return "", err
	}
	if len(w.Track) == 0 {
		return "", errors.Wrap(solution.ErrMalformedInput, "part 2 needs a track")
	}
	w.Loops(part2Loops)
	return w.Ranking(), nil
}

// Part3 counts the plans of five +, three - and three = that beat the first
// chariot over 2024 laps.
func (Solver) Part3(input string) (string, error) {
	n, err := CountWinningPlans(input, part3Loops)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// CountWinningPlans races every candidate plan against the first chariot
// for the given number of laps.
func CountWinningPlans(input string, loops int) (int, error) {
	w, err := ParseWorld(input)
	if err != nil {
		return 0, err
	}
	if len(w.Track) == 0 {
		return 0, errors.Wrap(solution.ErrMalformedInput, "part 3 needs a track")
	}
	rival := w.Chariots[0]
	for _, plan := range Plans(5, 3, 3) {
		w.Chariots = append(w.Chariots, NewChariot("S", plan))
	}
	klog.V(2).Infof("day07: racing %d chariots for %d laps of %d segments", len(w.Chariots), loops, len(w.Track))

	w.Loops(loops)
	wins := 0
	for _, c := range w.Chariots {
		if c.Essence > rival.Essence {
			wins++
		}
	}

	return wins, nil
}
