package day02

import (
	"github.com/pkg/errors"

	"github.com/Taxel/everybody-codes-2024/grid"
	"github.com/Taxel/everybody-codes-2024/parse"
	"github.com/Taxel/everybody-codes-2024/solution"
)

// Inscription is the parsed puzzle input.
type Inscription struct {
	Words []string
	Text  string
}

// Parse splits the header from the inscription text.
func Parse(input string) (*Inscription, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, errors.Wrapf(solution.ErrMalformedInput, "expected header and text, got %d blocks", len(blocks))
	}
	ll, err := parse.ParseLabeledList(blocks[0])
	if err != nil {
		return nil, errors.Wrap(solution.ErrMalformedInput, err.Error())
	}
	return &Inscription{Words: ll.Items, Text: blocks[1]}, nil
}

// Mark sets mask[i] for every cell of line covered by a word, forward or
// backward. With ring set, occurrences may wrap from the end to the start.
// line and mask must have the same length.
func Mark(line []rune, mask []bool, words [][]rune, ring bool) {
	n := len(line)
	starts := n
	for _, w := range words {
		k := len(w)
		if k == 0 || k > n {
			continue
		}
		if !ring {
			starts = n - k + 1
		}
		for i := 0; i < starts; i++ {
			if matchAt(line, i, w, false) || matchAt(line, i, w, true) {
				for j := 0; j < k; j++ {
					mask[(i+j)%n] = true
				}
			}
		}
	}
}

func matchAt(line []rune, i int, w []rune, reversed bool) bool {
	n, k := len(line), len(w)
	for j := 0; j < k; j++ {
		want := w[j]
		if reversed {
			want = w[k-1-j]
		}
		if line[(i+j)%n] != want {
			return false
		}
	}
	return true
}

func runeWords(words []string) [][]rune {
	out := make([][]rune, len(words))
	for i, w := range words {
		out[i] = []rune(w)
	}
	return out
}

func count(mask []bool) int {
	n := 0
	for _, m := range mask {
		if m {
			n++
		}
	}
	return n
}

// CountLinear counts rune cells over every line of text, lines being linear.
func CountLinear(text string, words []string) int {
	ws := runeWords(words)
	total := 0
	for _, l := range parse.Lines(text) {
		line := []rune(l)
		mask := make([]bool, len(line))
		Mark(line, mask, ws, false)
		total += count(mask)
	}
	return total
}

// CountGrid counts rune cells in a grid whose rows are rings and whose
// columns are linear.
func CountGrid(text string, words []string) (int, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return 0, errors.Wrap(solution.ErrMalformedInput, err.Error())
	}
	ws := runeWords(words)

	mask := make([][]bool, g.Height)
	for y := range mask {
		mask[y] = make([]bool, g.Width)
		Mark(g.Row(y), mask[y], ws, true)
	}
	col := make([]bool, g.Height)
	for x := 0; x < g.Width; x++ {
		clear(col)
		Mark(g.Column(x), col, ws, false)
		for y, m := range col {
			mask[y][x] = mask[y][x] || m
		}
	}

	total := 0
	for _, row := range mask {
		total += count(row)
	}
	return total, nil
}
