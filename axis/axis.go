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

// Package axis implements the geometry of graph axes: the linear mapping
// between data values and pixels, the enumeration of tick marks, and the
// drawing commands for axis lines, arrowheads, tick marks and grid lines.
package axis

import (
	"math"
	"strconv"
)

// Kind selects between major and minor tick marks.
type Kind int

// These are the supported tick mark kinds.
const (
	Major Kind = iota
	Minor
)

func (k Kind) String() string {
	switch k {
	case Major:
		return "major"
	case Minor:
		return "minor"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Direction selects whether Zoom contracts or expands the interval.
type Direction int

// These are the zoom directions.
const (
	In Direction = iota
	Out
)

// MaxTics limits the number of tick marks enumerated for a single axis.
const MaxTics = 10000

// DefaultDecimals is the number of decimals used for non-integral tick labels.
const DefaultDecimals = 2

// Axis is a one-dimensional linear mapping between the data interval
// [min, max] and the pixel range [0, length].
//
// The zero value is a degenerate axis: all pixel positions are 0 and no tick
// marks are produced.  Invalid updates are ignored and leave the previous
// state in place.
type Axis struct {
	min, max  float64
	length    int
	pxPerUnit float64

	majorInc, minorInc float64

	decimals    int
	decimalsSet bool
}

// Min returns the lower bound of the data interval.
func (a *Axis) Min() float64 { return a.min }

// Max returns the upper bound of the data interval.
func (a *Axis) Max() float64 { return a.max }

// Length returns the pixel length of the axis.
func (a *Axis) Length() int { return a.length }

// PxPerUnit returns the number of pixels per data unit, or 0 if the mapping
// is degenerate.
func (a *Axis) PxPerUnit() float64 { return a.pxPerUnit }

// MajorInc returns the spacing of major tick marks; 0 means none.
func (a *Axis) MajorInc() float64 { return a.majorInc }

// MinorInc returns the spacing of minor tick marks; 0 means none.
func (a *Axis) MinorInc() float64 { return a.minorInc }

// Decimals returns the number of decimals used for non-integral tick labels.
func (a *Axis) Decimals() int {
	if !a.decimalsSet {
		return DefaultDecimals
	}
	return a.decimals
}

// SetMin sets the lower bound.  Non-finite values are ignored.
// The bounds are not checked against each other; inverted bounds give a
// degenerate mapping.
func (a *Axis) SetMin(v float64) {
	if !isFinite(v) {
		return
	}
	a.min = v
	a.update()
}

// SetMax sets the upper bound.  Non-finite values are ignored.
func (a *Axis) SetMax(v float64) {
	if !isFinite(v) {
		return
	}
	a.max = v
	a.update()
}

// SetLength sets the pixel length, rounded to the nearest integer.
// Negative lengths are replaced by their magnitude.
func (a *Axis) SetLength(px float64) {
	if !isFinite(px) {
		return
	}
	a.length = int(math.Round(math.Abs(px)))
	a.update()
}

// SetMajorInc sets the spacing of major tick marks.
// Values which are not strictly positive are ignored.
func (a *Axis) SetMajorInc(v float64) {
	if !isFinite(v) || v <= 0 {
		return
	}
	a.majorInc = v
}

// SetMinorInc sets the spacing of minor tick marks.
// Values which are not strictly positive are ignored.
func (a *Axis) SetMinorInc(v float64) {
	if !isFinite(v) || v <= 0 {
		return
	}
	a.minorInc = v
}

// SetDecimals sets the number of decimals for non-integral tick labels.
// Negative values are ignored.
func (a *Axis) SetDecimals(n int) {
	if n < 0 {
		return
	}
	a.decimals = n
	a.decimalsSet = true
}

func (a *Axis) update() {
	span := a.max - a.min
	if a.length > 0 && span > 0 {
		a.pxPerUnit = float64(a.length) / span
	} else {
		a.pxPerUnit = 0
	}
}

// Pixel converts a data value to a pixel offset from the start of the axis.
func (a *Axis) Pixel(v float64) float64 {
	return (v - a.min) * a.pxPerUnit
}

// Value converts a pixel offset from the start of the axis to a data value.
// For a zero-length axis, the lower bound is returned.
func (a *Axis) Value(px float64) float64 {
	if a.length == 0 {
		return a.min
	}
	return a.min + px/float64(a.length)*(a.max-a.min)
}

func (a *Axis) inc(kind Kind) float64 {
	switch kind {
	case Major:
		return a.majorInc
	case Minor:
		return a.minorInc
	default:
		return 0
	}
}

// TicValues returns the data values of all tick marks of the given kind,
// in increasing order.  These are the multiples of the increment which lie
// in [min, max].  The result is empty if the mapping is degenerate or no
// increment is set.
func (a *Axis) TicValues(kind Kind) []float64 {
	inc := a.inc(kind)
	if a.pxPerUnit == 0 || inc <= 0 {
		return nil
	}

	// slack for the upper bound absorbs rounding in start+i*inc
	slack := inc * 1e-9
	start := math.Ceil(a.min/inc) * inc
	var tics []float64
	for i := 0; i < MaxTics; i++ {
		tic := start + float64(i)*inc
		if tic > a.max+slack {
			break
		}
		tics = append(tics, tic)
	}
	return tics
}

// TicCoordinates returns the pixel offsets of all tick marks of the given
// kind.
func (a *Axis) TicCoordinates(kind Kind) []float64 {
	tics := a.TicValues(kind)
	for i, tic := range tics {
		tics[i] = a.Pixel(tic)
	}
	return tics
}

// TicMarks returns the labels of all tick marks of the given kind.
func (a *Axis) TicMarks(kind Kind) []string {
	tics := a.TicValues(kind)
	if tics == nil {
		return nil
	}
	decimals := a.Decimals()
	labels := make([]string, len(tics))
	for i, tic := range tics {
		labels[i] = FormatTic(tic, decimals)
	}
	return labels
}

// Zoom contracts (In) or expands (Out) the data interval around its
// midpoint by the given factor.  The factor is rounded to an integer;
// factors below 1 are ignored.
func (a *Axis) Zoom(dir Direction, factor float64) {
	if !isFinite(factor) {
		return
	}
	f := math.Round(factor)
	if f < 1 {
		return
	}

	mid := (a.min + a.max) / 2
	half := (a.max - a.min) / 2
	switch dir {
	case In:
		half /= f
	case Out:
		half *= f
	default:
		return
	}
	a.min = mid - half
	a.max = mid + half
	a.update()
}

// Shift translates the data interval by the given number of pixels.
// The pixel length and scale are unchanged.  Shift is a no-op if the
// mapping is degenerate.
func (a *Axis) Shift(px float64) {
	if a.pxPerUnit == 0 || !isFinite(px) {
		return
	}
	d := px / a.pxPerUnit
	a.min += d
	a.max += d
}

// FormatTic formats a tick value.  Integral values are printed without
// decimals, all other values with the given number of decimals.
func FormatTic(v float64, decimals int) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		if v == 0 {
			v = 0 // drop the sign of negative zero
		}
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', max(decimals, 0), 64)
	if s[0] == '-' && isZeroDigits(s[1:]) {
		s = s[1:]
	}
	return s
}

func isZeroDigits(s string) bool {
	for _, c := range s {
		if c != '0' && c != '.' {
			return false
		}
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
