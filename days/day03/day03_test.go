package day03_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taxel/everybody-codes-2024/days/day03"
	"github.com/Taxel/everybody-codes-2024/grid"
	"github.com/Taxel/everybody-codes-2024/solution"
)

const sample = `..........
..###.##..
...####...
..######..
..######..
...####...
..........`

func TestParts_Sample(t *testing.T) {
	got, err := day03.Solver{}.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 35, got)

	got, err = day03.Solver{}.Part3(sample)
	require.NoError(t, err)
	assert.Equal(t, 29, got)
}

func TestDepths_EdgeCells(t *testing.T) {
	// cells on the border touch the outside and stay at depth 1
	depths, err := day03.Depths("###\n###\n###", grid.Conn4)
	require.NoError(t, err)
	assert.Equal(t, 2, depths[grid.Point{X: 1, Y: 1}])
	assert.Equal(t, 1, depths[grid.Point{X: 0, Y: 0}])
	assert.Len(t, depths, 9)

	total, err := day03.Total("#####\n#####\n#####\n#####\n#####", grid.Conn8)
	require.NoError(t, err)
	// 16 border + 8 ring at depth 2 + centre at 3
	assert.Equal(t, 16+16+3, total)
}

func TestDepths_Malformed(t *testing.T) {
	_, err := day03.Solver{}.Part1("..#\n.x.")
	assert.ErrorIs(t, err, solution.ErrMalformedInput)
	_, err = day03.Solver{}.Part1("")
	assert.ErrorIs(t, err, solution.ErrMalformedInput)
}
