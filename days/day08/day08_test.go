package day08_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/Taxel/everybody-codes-2024/days/day08"
	"github.com/Taxel/everybody-codes-2024/solution"
)

func TestPart1_Sample(t *testing.T) {
	got, err := day08.Solver{}.Part1("13\n")
	require.NoError(t, err)
	assert.Equal(t, "21", got.String())
}

func TestThick_Sample(t *testing.T) {
	got, err := day08.Thick(3, 5, 50)
	require.NoError(t, err)
	assert.Equal(t, uint128.From64(27), got)
}

func TestThick_Stalled(t *testing.T) {
	// a multiple of the acolyte count gives thickness 0 straight away
	_, err := day08.Thick(2222, 1111, 20240000)
	assert.ErrorIs(t, err, day08.ErrStalled)
}

func TestHollow_Sample(t *testing.T) {
	assert.Equal(t, uint128.From64(2), day08.Hollow(2, 5, 160))
}

func TestPyramid_ThinProfile(t *testing.T) {
	p := day08.New()
	for i := 0; i < 3; i++ {
		p.AddRow(1)
	}
	assert.Equal(t, uint64(7), p.Width())
	assert.Equal(t, uint128.From64(16), p.Sum)
	// full profile would be 1 2 3 4 3 2 1
	assert.Equal(t, []uint64{4, 3, 2, 1}, p.Heights)
}

func TestPyramid_Empty(t *testing.T) {
	p := day08.New()
	assert.True(t, p.Empty(2, 5).IsZero())

	p.AddRow(p.NextHollow(2, 5)) // thickness 2+5 = 7, heights [8 7]
	require.Equal(t, []uint64{8, 7}, p.Heights)
	// base 3, first line 6: only the axis is interior, (6*8) mod 5 = 3
	assert.Equal(t, uint128.From64(3), p.Empty(2, 5))

	p.AddRow(p.NextHollow(2, 5)) // thickness (7*2 mod 5)+5 = 9, heights [17 16 9]
	require.Equal(t, []uint64{17, 16, 9}, p.Heights)
	// base 5, first line 10: every product is a multiple of 5
	assert.True(t, p.Empty(2, 5).IsZero())
}

// TestPyramid_Monotonic checks that sums, widths and heights never shrink.
func TestPyramid_Monotonic(t *testing.T) {
	p := day08.New()
	prevSum, prevWidth := p.Sum, p.Width()
	prevHeights := append([]uint64(nil), p.Heights...)
	for i := 0; i < 50; i++ {
		p.AddRow(p.NextHollow(7, 10))
		assert.True(t, p.Sum.Cmp(prevSum) > 0)
		assert.Greater(t, p.Width(), prevWidth)
		for j, h := range prevHeights {
			assert.GreaterOrEqual(t, p.Heights[j], h)
		}
		prevSum, prevWidth = p.Sum, p.Width()
		prevHeights = append([]uint64(nil), p.Heights...)
	}
}

func TestParts_Malformed(t *testing.T) {
	for _, in := range []string{"", "x", "-3", "1 2"} {
		_, err := day08.Solver{}.Part1(in)
		assert.ErrorIs(t, err, solution.ErrMalformedInput, "input %q", in)
		_, err = day08.Solver{}.Part3(in)
		assert.ErrorIs(t, err, solution.ErrMalformedInput, "input %q", in)
	}
}

func TestErase_RendersDecimal(t *testing.T) {
	got, err := solution.Erase[uint128.Uint128](day08.Solver{}).Solve(1, "13")
	require.NoError(t, err)
	assert.Equal(t, "21", got)
}
