package day08

import (
	"github.com/pkg/errors"
	"lukechampine.com/uint128"
)

// ErrStalled is returned when rows stop adding blocks before the target is met.
var ErrStalled = errors.New("day08: pyramid stopped growing")

// Layer is a run of identical-width rows.
type Layer struct {
	Width     uint64
	Thickness uint64
}

// Pyramid is the structure built so far. The zero value is not usable;
// call New.
type Pyramid struct {
	Layers  []Layer
	Sum     uint128.Uint128
	Heights []uint64 // half-profile, axis first
	last    uint64
}

// New returns the single-block seed pyramid.
func New() *Pyramid {
	return &Pyramid{
		Layers:  []Layer{{Width: 1, Thickness: 1}},
		Sum:     uint128.From64(1),
		Heights: []uint64{1},
		last:    1,
	}
}

// Width is the width of the bottom row.
func (p *Pyramid) Width() uint64 { return p.Layers[len(p.Layers)-1].Width }

// AddRow adds a layer of the given thickness two blocks wider than the last.
func (p *Pyramid) AddRow(thickness uint64) {
	w := p.Width() + 2
	p.Sum = p.Sum.Add(uint128.From64(w).Mul64(thickness))
	p.Layers = append(p.Layers, Layer{Width: w, Thickness: thickness})
	p.last = thickness

	p.Heights = append(p.Heights, 0)
	for i := range p.Heights {
		p.Heights[i] += thickness
	}
}

// NextThick returns the thickness of the next row under the thick rule.
func (p *Pyramid) NextThick(priests, acolytes uint64) uint64 {
	return uint128.From64(p.last).Mul64(priests).Mod64(acolytes)
}

// NextHollow returns the thickness of the next row under the hollow rule.
func (p *Pyramid) NextHollow(priests, acolytes uint64) uint64 {
	return p.NextThick(priests, acolytes) + acolytes
}

// Empty is the number of blocks removed from the interior columns.
func (p *Pyramid) Empty(priests, acolytes uint64) uint128.Uint128 {
	base := uint64(2*len(p.Heights) - 1)
	if base == 1 {
		return uint128.Zero
	}
	firstLine := uint128.From64(base).Mul64(priests)
	removed := func(h uint64) uint64 { return firstLine.Mul64(h).Mod64(acolytes) }

	empty := uint128.From64(removed(p.Heights[0]))
	for _, h := range p.Heights[1 : len(p.Heights)-1] {
		empty = empty.Add64(2 * removed(h))
	}
	return empty
}

// Thin answers how many blocks are missing from target, times the base width,
// once a thin pyramid has at least target blocks.
func Thin(target uint64) uint128.Uint128 {
	p := New()
	for p.Sum.Cmp64(target) < 0 {
		p.AddRow(1)
	}
	return p.Sum.Sub64(target).Mul64(p.Width())
}

// Thick is Thin for the thick growth rule.
func Thick(priests, acolytes, target uint64) (uint128.Uint128, error) {
	p := New()
	for p.Sum.Cmp64(target) < 0 {
		t := p.NextThick(priests, acolytes)
		if t == 0 {
			return uint128.Zero, errors.Wrapf(ErrStalled, "priests %d acolytes %d", priests, acolytes)
		}
		p.AddRow(t)
	}
	return p.Sum.Sub64(target).Mul64(p.Width()), nil
}

// Hollow grows a hollow pyramid until its solid blocks reach target and
// returns the surplus.
func Hollow(priests, acolytes, target uint64) uint128.Uint128 {
	p := New()
	for p.Sum.Sub(p.Empty(priests, acolytes)).Cmp64(target) < 0 {
		p.AddRow(p.NextHollow(priests, acolytes))
	}
	return p.Sum.Sub(p.Empty(priests, acolytes)).Sub64(target)
}
