package day01_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taxel/everybody-codes-2024/days/day01"
	"github.com/Taxel/everybody-codes-2024/solution"
)

func TestParts_Sample(t *testing.T) {
	tests := []struct {
		name  string
		solve func(string) (int, error)
		in    string
		want  int
	}{
		{"part1", day01.Solver{}.Part1, "ABBAC", 5},
		{"part2", day01.Solver{}.Part2, "AxBCDDCAxD", 28},
		{"part3", day01.Solver{}.Part3, "xBxAAABCDxCC", 30},
		{"empty groups", day01.Solver{}.Part3, "xxx", 0},
		{"trailing newline", day01.Solver{}.Part1, "CC\n", 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.solve(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPotions_Malformed(t *testing.T) {
	_, err := day01.Potions("ABZ", 1)
	assert.ErrorIs(t, err, solution.ErrMalformedInput)
	_, err = day01.Potions("ABC", 2)
	assert.ErrorIs(t, err, solution.ErrMalformedInput)
}
