// seehuhn.de/go/quadrant - single-quadrant graph rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package stroke

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/quadrant/draw"
)

func drawnLength(rec *draw.Recorder) float64 {
	total := 0.0
	for _, seg := range rec.Segments() {
		total += seg.Length()
	}
	return total
}

func TestSolidPassThrough(t *testing.T) {
	rec := &draw.Recorder{}
	d := New(Solid)
	d.MoveTo(rec, 1, 2)
	d.LineTo(rec, 3, 4)
	d.CurveTo(rec, 5, 6, 7, 8)
	assert.Equal(t, []draw.Op{
		{Kind: draw.OpMoveTo, Args: [4]float64{1, 2}},
		{Kind: draw.OpLineTo, Args: [4]float64{3, 4}},
		{Kind: draw.OpCurveTo, Args: [4]float64{5, 6, 7, 8}},
	}, rec.Ops)
}

func TestParseStyle(t *testing.T) {
	assert.Equal(t, Dashed, ParseStyle("dashed"))
	assert.Equal(t, Dotted, ParseStyle("dotted"))
	assert.Equal(t, Solid, ParseStyle("solid"))
	assert.Equal(t, Solid, ParseStyle("wavy"))
	assert.Equal(t, Solid, New("wavy").Style())
}

func TestDashConservation(t *testing.T) {
	for _, L := range []float64{1, 5, 7.5, 8, 13, 20, 64, 100.25} {
		d := NewDashed()
		rec := &draw.Recorder{}
		d.MoveTo(rec, 0, 0)
		d.LineTo(rec, L, 0)

		// everything drawn lies on the segment and dashes do not overlap
		pos := 0.0
		drawn := 0.0
		for _, seg := range rec.Segments() {
			require.GreaterOrEqual(t, seg.A.X, pos-1e-9)
			assert.Zero(t, seg.A.Y)
			assert.Zero(t, seg.B.Y)
			assert.LessOrEqual(t, seg.Length(), float64(DefaultDnLength)+1e-9)
			drawn += seg.Length()
			pos = seg.B.X
		}
		assert.LessOrEqual(t, pos, L+1e-9)

		// the phase at the end of the segment follows from L mod 8
		r := math.Mod(L, DefaultUpLength+DefaultDnLength)
		cycles := math.Floor(L / (DefaultUpLength + DefaultDnLength))
		wantDrawn := cycles*DefaultDnLength + math.Min(r, DefaultDnLength)
		assert.InDelta(t, wantDrawn, drawn, 1e-9, "L=%g", L)
		switch {
		case r == 0:
			assert.True(t, d.drawing, "L=%g", L)
			assert.Zero(t, d.overflow, "L=%g", L)
		case r < DefaultDnLength:
			assert.True(t, d.drawing, "L=%g", L)
			assert.InDelta(t, DefaultDnLength-r, d.overflow, 1e-9, "L=%g", L)
		case r == DefaultDnLength:
			assert.False(t, d.drawing, "L=%g", L)
			assert.Zero(t, d.overflow, "L=%g", L)
		default:
			assert.False(t, d.drawing, "L=%g", L)
			assert.InDelta(t, DefaultUpLength+DefaultDnLength-r, d.overflow, 1e-9, "L=%g", L)
		}
		assert.InDelta(t, L-wantDrawn, L-drawn, 1e-9)
	}
}

func TestDashTwenty(t *testing.T) {
	d := NewDashed()
	rec := &draw.Recorder{}
	d.MoveTo(rec, 0, 0)
	d.LineTo(rec, 20, 0)
	assert.Equal(t, []draw.Segment{
		{A: vec.Vec2{X: 0}, B: vec.Vec2{X: 5}},
		{A: vec.Vec2{X: 8}, B: vec.Vec2{X: 13}},
		{A: vec.Vec2{X: 16}, B: vec.Vec2{X: 20}},
	}, rec.Segments())
	assert.True(t, d.drawing)
	assert.Equal(t, 1.0, d.overflow)

	// the dash in progress is finished on the next segment
	rec.Clear()
	d.LineTo(rec, 20, 10)
	assert.Equal(t, []draw.Segment{
		{A: vec.Vec2{X: 20, Y: 0}, B: vec.Vec2{X: 20, Y: 1}},
		{A: vec.Vec2{X: 20, Y: 4}, B: vec.Vec2{X: 20, Y: 9}},
	}, rec.Segments())
	assert.False(t, d.drawing)
	assert.Equal(t, 2.0, d.overflow)
}

func TestDashShortSegments(t *testing.T) {
	d := NewDashed()
	rec := &draw.Recorder{}
	d.MoveTo(rec, 0, 0)
	for x := 1.0; x <= 16; x++ {
		d.LineTo(rec, x, 0)
	}
	assert.InDelta(t, 10.0, drawnLength(rec), 1e-9)
	assert.True(t, d.drawing)
	assert.Zero(t, d.overflow)
}

func TestDashMoveToKeepsPhase(t *testing.T) {
	d := NewDashed()
	rec := &draw.Recorder{}
	d.MoveTo(rec, 0, 0)
	d.LineTo(rec, 2, 0)
	d.MoveTo(rec, 100, 0)
	rec.Clear()
	d.LineTo(rec, 110, 0)
	require.NotEmpty(t, rec.Segments())
	assert.Equal(t, draw.Segment{A: vec.Vec2{X: 100}, B: vec.Vec2{X: 103}}, rec.Segments()[0])

	d.Reset()
	assert.True(t, d.drawing)
	assert.Zero(t, d.overflow)
}

func TestDashLongSegment(t *testing.T) {
	d := NewDashed()
	rec := &draw.Recorder{}
	d.MoveTo(rec, 0, 0)
	d.LineTo(rec, 8e6+3, 0)

	segs := rec.Segments()
	require.Len(t, segs, MaxPatterns+1)
	assert.Equal(t, draw.Segment{A: vec.Vec2{X: 8e6}, B: vec.Vec2{X: 8e6 + 3}}, segs[len(segs)-1])
	assert.True(t, d.drawing)
	assert.InDelta(t, 2.0, d.overflow, 1e-9)

	// points which cannot be reached are ignored
	rec.Clear()
	d.LineTo(rec, math.NaN(), 0)
	d.LineTo(rec, math.Inf(1), 0)
	assert.Empty(t, rec.Ops)
	d.LineTo(rec, 8e6+13, 0)
	require.NotEmpty(t, rec.Segments())
	assert.Equal(t, draw.Segment{A: vec.Vec2{X: 8e6 + 3}, B: vec.Vec2{X: 8e6 + 5}}, rec.Segments()[0])
}

func TestDashParams(t *testing.T) {
	d := NewDashed()
	d.SetParams(Params{UpLength: 2.4, DnLength: math.NaN()})
	up, dn := d.Pattern()
	assert.Equal(t, 2.0, up)
	assert.Equal(t, float64(DefaultDnLength), dn)

	d.SetParams(Params{UpLength: -1, DnLength: 6.6})
	up, dn = d.Pattern()
	assert.Equal(t, 2.0, up)
	assert.Equal(t, 7.0, dn)
}

func TestDotSpacing(t *testing.T) {
	for _, L := range []float64{10, 30, 100} {
		d := NewDotted()
		d.SetParams(Params{Radius: 3, Spacing: 4})
		require.Equal(t, 10.0, d.Length())

		rec := &draw.Recorder{}
		d.MoveTo(rec, 0, 0)
		d.LineTo(rec, 0, L)
		n := int(L / 10)
		require.Equal(t, 1+n, rec.Count(draw.OpDrawCircle), "L=%g", L)
		for i, op := range rec.Ops {
			assert.Equal(t, [4]float64{0, 10 * float64(i), 3}, op.Args)
		}
		assert.Equal(t, vec.Vec2{X: 0, Y: L}, d.LastDot())
	}
}

func TestDotCarry(t *testing.T) {
	d := NewDotted()
	d.SetParams(Params{Radius: 3, Spacing: 4})
	rec := &draw.Recorder{}
	d.MoveTo(rec, 0, 0)
	d.LineTo(rec, 4, 0)
	d.LineTo(rec, 8, 0)
	assert.Equal(t, 1, rec.Count(draw.OpDrawCircle))

	d.LineTo(rec, 12, 0)
	require.Equal(t, 2, rec.Count(draw.OpDrawCircle))
	assert.Equal(t, [4]float64{10, 0, 3}, rec.Ops[1].Args)
	assert.InDelta(t, 2.0, d.carry, 1e-9)

	// a corner: distance is measured along the polyline
	d.LineTo(rec, 12, 10)
	require.Equal(t, 3, rec.Count(draw.OpDrawCircle))
	assert.InDelta(t, 12.0, rec.Ops[2].Args[0], 1e-9)
	assert.InDelta(t, 8.0, rec.Ops[2].Args[1], 1e-9)

	// MoveTo restarts the pattern
	d.MoveTo(rec, 50, 50)
	assert.Equal(t, vec.Vec2{X: 50, Y: 50}, d.LastDot())
	assert.Zero(t, d.carry)
}

func TestDotLongSegment(t *testing.T) {
	d := NewDotted()
	d.SetParams(Params{Radius: 3, Spacing: 4})
	rec := &draw.Recorder{}
	d.MoveTo(rec, 0, 0)
	d.LineTo(rec, 1e6+4, 0)
	assert.Equal(t, MaxPatterns+1, rec.Count(draw.OpDrawCircle))
	assert.InDelta(t, 4.0, d.carry, 1e-6)

	rec.Clear()
	d.LineTo(rec, math.NaN(), 0)
	assert.Empty(t, rec.Ops)
	d.LineTo(rec, 1e6+10, 0)
	require.Equal(t, 1, rec.Count(draw.OpDrawCircle))
	assert.InDelta(t, 1e6+10, d.LastDot().X, 1e-6)
}

func TestDotParams(t *testing.T) {
	d := NewDotted()
	d.SetParams(Params{Radius: 2.9, Spacing: 0.5})
	r, s := d.Pattern()
	assert.Equal(t, 2.0, r)
	assert.Equal(t, float64(DefaultSpacing), s)
	assert.Equal(t, 8.0, d.Length())
}

func TestFactoryGet(t *testing.T) {
	f := &Factory{}
	a := f.Get(Dashed)
	assert.Same(t, a, f.Get(Dashed))
	assert.Equal(t, Dotted, f.Get(Dotted).Style())
	assert.Equal(t, Solid, f.Get("zigzag").Style())

	f.SetParams(Dashed, Params{UpLength: 1, DnLength: 1})
	up, dn := a.(*Dash).Pattern()
	assert.Equal(t, []float64{1, 1}, []float64{up, dn})
}

func TestFactorySessions(t *testing.T) {
	f := &Factory{}
	f.SetParams(Dotted, Params{Radius: 2})

	a := f.Acquire(Dotted)
	b := f.Acquire(Dotted)
	require.NotSame(t, a, b)
	r, _ := a.(*Dot).Pattern()
	assert.Equal(t, 2.0, r)

	rec := &draw.Recorder{}
	a.MoveTo(rec, 0, 0)
	a.LineTo(rec, 3, 0)
	f.Release(a)

	c := f.Acquire(Dotted)
	assert.Same(t, a, c)
	assert.Zero(t, c.(*Dot).carry)

	f.Release(b)
	f.Release(c)
	f.Release(nil)
}

func TestFactoryReleaseRestoresParams(t *testing.T) {
	f := &Factory{}
	d := f.Acquire(Dashed)
	d.SetParams(Params{UpLength: 10, DnLength: 20})
	f.Release(d)

	d = f.Acquire(Dashed)
	up, dn := d.(*Dash).Pattern()
	assert.Equal(t, float64(DefaultUpLength), up)
	assert.Equal(t, float64(DefaultDnLength), dn)
}
