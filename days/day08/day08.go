package day08

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"lukechampine.com/uint128"

	"github.com/Taxel/everybody-codes-2024/solution"
)

const (
	part2Acolytes = 1111
	part2Target   = 20240000
	part3Acolytes = 10
	part3Target   = 202400000
)

// Solver implements solution.Solution for day 8.
type Solver struct{}

var _ solution.Solution[uint128.Uint128] = Solver{}

func (Solver) Day() int { return 8 }

func parseNumber(input string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(solution.ErrMalformedInput, "number %q", input)
	}
	return n, nil
}

// Part1 reads the available blocks.
func (Solver) Part1(input string) (uint128.Uint128, error) {
	n, err := parseNumber(input)
	if err != nil {
		return uint128.Zero, err
	}
	return Thin(n), nil
}

// Part2 reads the number of priests.
func (Solver) Part2(input string) (uint128.Uint128, error) {
	priests, err := parseNumber(input)
	if err != nil {
		return uint128.Zero, err
	}
	return Thick(priests, part2Acolytes, part2Target)
}

// Part3 reads the number of priests.
func (Solver) Part3(input string) (uint128.Uint128, error) {
	priests, err := parseNumber(input)
	if err != nil {
		return uint128.Zero, err
	}
	klog.V(2).Infof("day08: hollow pyramid for %d priests", priests)
	return Hollow(priests, part3Acolytes, part3Target), nil
}
