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

package axis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAxis(min, max, length float64) *Axis {
	a := &Axis{}
	a.SetMin(min)
	a.SetMax(max)
	a.SetLength(length)
	return a
}

func TestAxisRoundTrip(t *testing.T) {
	cases := []struct {
		min, max, length float64
	}{
		{0, 10, 100},
		{-3.5, 12.25, 487},
		{1e-3, 2e-3, 640},
		{100, 100000, 33},
	}
	for _, c := range cases {
		a := newAxis(c.min, c.max, c.length)
		require.Greater(t, a.PxPerUnit(), 0.0)

		for p := 0.0; p <= float64(a.Length()); p += float64(a.Length()) / 17 {
			assert.InDelta(t, p, a.Pixel(a.Value(p)), 1e-9*float64(a.Length()))
		}
		span := c.max - c.min
		for i := 0; i <= 20; i++ {
			v := c.min + span*float64(i)/20
			assert.InDelta(t, v, a.Value(a.Pixel(v)), 1e-9*span)
		}
	}
}

func TestAxisDegenerate(t *testing.T) {
	cases := map[string]*Axis{
		"zero length": newAxis(0, 10, 0),
		"equal":       newAxis(5, 5, 100),
		"inverted":    newAxis(10, 0, 100),
		"zero value":  {},
	}
	for name, a := range cases {
		a.SetMajorInc(1)
		a.SetMinorInc(0.5)
		assert.Zero(t, a.PxPerUnit(), name)
		for _, kind := range []Kind{Major, Minor} {
			assert.Empty(t, a.TicMarks(kind), "%s %s", name, kind)
			assert.Empty(t, a.TicCoordinates(kind), "%s %s", name, kind)
		}
	}
}

func TestAxisTicEnumeration(t *testing.T) {
	a := newAxis(0, 10, 200)
	a.SetMajorInc(2)

	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, a.TicValues(Major))
	assert.Equal(t, []string{"0", "2", "4", "6", "8", "10"}, a.TicMarks(Major))
	assert.Equal(t, []float64{0, 40, 80, 120, 160, 200}, a.TicCoordinates(Major))

	// no minor increment, no minor ticks
	assert.Empty(t, a.TicValues(Minor))

	a.SetMinorInc(0.5)
	assert.Len(t, a.TicValues(Minor), 21)
}

func TestAxisTicStart(t *testing.T) {
	a := newAxis(1.3, 4.1, 100)
	a.SetMajorInc(1)
	a.SetMinorInc(0.25)

	assert.Equal(t, []float64{2, 3, 4}, a.TicValues(Major))
	minor := a.TicValues(Minor)
	require.NotEmpty(t, minor)
	assert.InDelta(t, 1.5, minor[0], 1e-12)
	assert.InDelta(t, 4.0, minor[len(minor)-1], 1e-12)
	assert.Equal(t, []string{"1.50", "1.75", "2"}, a.TicMarks(Minor)[:3])
}

func TestAxisTicLimit(t *testing.T) {
	a := newAxis(0, 1, 100)
	a.SetMinorInc(1e-9)
	assert.Len(t, a.TicValues(Minor), MaxTics)
}

func TestAxisSetters(t *testing.T) {
	a := newAxis(0, 10, 100)
	a.SetMajorInc(2)

	a.SetMin(math.NaN())
	a.SetMax(math.Inf(1))
	a.SetLength(math.Inf(-1))
	assert.Equal(t, 0.0, a.Min())
	assert.Equal(t, 10.0, a.Max())
	assert.Equal(t, 100, a.Length())

	a.SetMajorInc(0)
	a.SetMajorInc(-1)
	a.SetMajorInc(math.NaN())
	assert.Equal(t, 2.0, a.MajorInc())

	a.SetLength(-49.6)
	assert.Equal(t, 50, a.Length())
	assert.Equal(t, 5.0, a.PxPerUnit())

	a.SetDecimals(-1)
	assert.Equal(t, DefaultDecimals, a.Decimals())
	a.SetDecimals(0)
	assert.Equal(t, 0, a.Decimals())
}

func TestAxisZoom(t *testing.T) {
	a := newAxis(0, 10, 100)

	a.Zoom(In, 2)
	assert.Equal(t, 2.5, a.Min())
	assert.Equal(t, 7.5, a.Max())
	assert.Equal(t, 20.0, a.PxPerUnit())

	a.Zoom(Out, 3.4) // rounds to 3
	assert.Equal(t, -2.5, a.Min())
	assert.Equal(t, 12.5, a.Max())

	a.Zoom(In, 0.4) // rounds to 0
	a.Zoom(Out, math.NaN())
	assert.Equal(t, -2.5, a.Min())
	assert.Equal(t, 12.5, a.Max())
}

func TestAxisShift(t *testing.T) {
	a := newAxis(0, 10, 100)
	a.Shift(25)
	assert.Equal(t, 2.5, a.Min())
	assert.Equal(t, 12.5, a.Max())
	assert.Equal(t, 10.0, a.PxPerUnit())
	assert.Equal(t, 100, a.Length())

	d := newAxis(0, 10, 0)
	d.Shift(25)
	assert.Equal(t, 0.0, d.Min())
}

func TestFormatTic(t *testing.T) {
	cases := []struct {
		v        float64
		decimals int
		want     string
	}{
		{0, 2, "0"},
		{math.Copysign(0, -1), 2, "0"},
		{10, 2, "10"},
		{-4, 3, "-4"},
		{0.5, 2, "0.50"},
		{1.23456, 3, "1.235"},
		{-0.001, 2, "0.00"},
		{2.5, 0, "2"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatTic(c.v, c.decimals), "FormatTic(%g, %d)", c.v, c.decimals)
	}
}
