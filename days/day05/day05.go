package day05

import (
	"iter"

	"github.com/plan-systems/klog"
	"lukechampine.com/uint128"
	"tailscale.com/util/deephash"

	"github.com/Taxel/everybody-codes-2024/cycle"
	"github.com/Taxel/everybody-codes-2024/solution"
)

const (
	part1Rounds  = 10
	part2Repeats = 2024
)

// Solver implements solution.Solution for day 5.
type Solver struct{}

var _ solution.Solution[string] = Solver{}

func (Solver) Day() int { return 5 }

// Part1 is the shout after ten rounds.
func (Solver) Part1(input string) (string, error) {
	w, err := Parse(input)
	if err != nil {
		return "", err
	}
	var shout uint128.Uint128
	for i := 0; i < part1Rounds; i++ {
		shout = w.Dance()
	}
	return shout.String(), nil
}

// Part2 is the shout heard for the 2024th time multiplied by its round.
func (Solver) Part2(input string) (string, error) {
	w, err := Parse(input)
	if err != nil {
		return "", err
	}
	counts := make(map[uint128.Uint128]int)
	for round := uint64(1); ; round++ {
		shout := w.Dance()
		counts[shout]++
		if counts[shout] == part2Repeats {
			return shout.Mul64(round).String(), nil
		}
	}
}

// Part3 is the largest shout ever heard.
func (Solver) Part3(input string) (string, error) {
	w, err := Parse(input)
	if err != nil {
		return "", err
	}
	best, states := MaxShout(w)
	klog.V(2).Infof("day05: %d distinct states before the dance repeats", states)
	return best.String(), nil
}

// Step is one round of the dance: the state after the round and its shout.
type Step struct {
	Shout uint128.Uint128
	State Snapshot
}

// Rounds yields the dance round by round, forever.
func Rounds(w *World) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for {
			shout := w.Dance()
			if !yield(Step{Shout: shout, State: w.Snapshot()}) {
				return
			}
		}
	}
}

var hashSnapshot = deephash.HasherForType[Snapshot]()

func stepKey(s Step) deephash.Sum { return hashSnapshot(&s.State) }

// MaxShout runs w until its state repeats and returns the largest shout
// along with the number of distinct states visited.
func MaxShout(w *World) (uint128.Uint128, int) {
	var best uint128.Uint128
	n := 0
	for s := range cycle.FindBy(Rounds(w), stepKey) {
		if s.Shout.Cmp(best) > 0 {
			best = s.Shout
		}
		n++
	}
	return best, n
}

// MaxShoutSimulated runs a fixed number of rounds without cycle detection.
func MaxShoutSimulated(w *World, rounds int) uint128.Uint128 {
	var best uint128.Uint128
	for i := 0; i < rounds; i++ {
		if s := w.Dance(); s.Cmp(best) > 0 {
			best = s
		}
	}
	return best
}
