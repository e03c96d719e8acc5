package main

import (
	"lukechampine.com/uint128"

	"github.com/Taxel/everybody-codes-2024/days/day01"
	"github.com/Taxel/everybody-codes-2024/days/day02"
	"github.com/Taxel/everybody-codes-2024/days/day03"
	"github.com/Taxel/everybody-codes-2024/days/day04"
	"github.com/Taxel/everybody-codes-2024/days/day05"
	"github.com/Taxel/everybody-codes-2024/days/day07"
	"github.com/Taxel/everybody-codes-2024/days/day08"
	"github.com/Taxel/everybody-codes-2024/days/day10"
	"github.com/Taxel/everybody-codes-2024/solution"
)

// registry lists every implemented day. Days 6 and 9 have no solver.
func registry() []solution.Day {
	return []solution.Day{
		solution.Erase[int](day01.Solver{}),
		solution.Erase[int](day02.Solver{}),
		solution.Erase[int](day03.Solver{}),
		solution.Erase[int](day04.Solver{}),
		solution.Erase[string](day05.Solver{}),
		solution.Erase[string](day07.Solver{}),
		solution.Erase[uint128.Uint128](day08.Solver{}),
		solution.Erase[string](day10.Solver{}),
	}
}
