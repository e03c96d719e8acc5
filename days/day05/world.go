package day05

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/pkg/errors"
	"lukechampine.com/uint128"

	"github.com/Taxel/everybody-codes-2024/parse"
	"github.com/Taxel/everybody-codes-2024/solution"
)

// Columns is the number of dancer columns.
const Columns = 4

// World holds the columns and the index of the column that claps next.
type World struct {
	cols   [Columns]*arraylist.List
	active int
}

// Parse reads one row of four clappers per line.
func Parse(input string) (*World, error) {
	rows, err := parse.IntRows(input)
	if err != nil {
		return nil, errors.Wrap(solution.ErrMalformedInput, err.Error())
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(solution.ErrMalformedInput, "no dancers")
	}

	w := &World{}
	for c := range w.cols {
		w.cols[c] = arraylist.New()
	}
	for i, row := range rows {
		if len(row) != Columns {
			return nil, errors.Wrapf(solution.ErrMalformedInput, "row %d has %d clappers", i+1, len(row))
		}
		for c, n := range row {
			if n < 1 {
				return nil, errors.Wrapf(solution.ErrMalformedInput, "row %d: clapper %d", i+1, n)
			}
			w.cols[c].Add(n)
		}
	}

	return w, nil
}

// Dance plays one round and returns the shout.
func (w *World) Dance() uint128.Uint128 {
	src := w.cols[w.active]
	head, _ := src.Get(0)
	src.Remove(0)
	clapper := head.(int)

	w.active = (w.active + 1) % Columns
	dst := w.cols[w.active]
	dst.Insert(insertAt(clapper, dst.Size()), clapper)

	return w.Shout()
}

// insertAt is the index a clapper joins a column of length n at.
func insertAt(clapper, n int) int {
	if n == 0 {
		return 0
	}
	switch i := clapper % (2 * n); {
	case i == 0:
		return 1
	case i <= n:
		return i - 1
	default:
		return n - (i - n - 1)
	}
}

// Shout concatenates the column heads as a decimal number. Empty columns
// are skipped.
func (w *World) Shout() uint128.Uint128 {
	var shout uint128.Uint128
	for _, col := range w.cols {
		v, ok := col.Get(0)
		if !ok {
			continue
		}
		n := v.(int)
		for p := 10; p <= n; p *= 10 {
			shout = shout.Mul64(10)
		}
		shout = shout.Mul64(10).Add64(uint64(n))
	}
	return shout
}

// Snapshot is the full dynamical state of the world.
type Snapshot struct {
	Active  int
	Columns [Columns][]int
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{Active: w.active}
	for c, col := range w.cols {
		s.Columns[c] = make([]int, 0, col.Size())
		for _, v := range col.Values() {
			s.Columns[c] = append(s.Columns[c], v.(int))
		}
	}
	return s
}
