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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/quadrant/draw"
)

// Default dash pattern, in pixels.
const (
	DefaultUpLength = 3
	DefaultDnLength = 5
)

// Dash is a decorator which draws dashes of DnLength pixels separated by
// gaps of UpLength pixels.
//
// The position within the pattern is kept across LineTo calls, and also
// across MoveTo: lifting the pen in the middle of a dash continues that
// dash on the next subpath.  Only Reset starts the pattern afresh.
type Dash struct {
	up, dn float64

	pen      vec.Vec2
	overflow float64
	drawing  bool
}

// NewDashed returns a dash decorator with the default pattern.
func NewDashed() *Dash {
	d := &Dash{up: DefaultUpLength, dn: DefaultDnLength}
	d.Reset()
	return d
}

// Style implements [Decorator].
func (d *Dash) Style() Style { return Dashed }

// Pattern returns the gap and dash lengths.
func (d *Dash) Pattern() (up, dn float64) { return d.up, d.dn }

// SetParams implements [Decorator].  Lengths are rounded to whole pixels.
func (d *Dash) SetParams(p Params) {
	if v := math.Round(patternLength(p.UpLength)); v > 0 {
		d.up = v
	}
	if v := math.Round(patternLength(p.DnLength)); v > 0 {
		d.dn = v
	}
}

// Reset implements [Decorator].
func (d *Dash) Reset() {
	d.pen = vec.Vec2{}
	d.overflow = 0
	d.drawing = true
}

// MoveTo implements [Decorator].
func (d *Dash) MoveTo(s draw.Sink, x, y float64) {
	d.pen = vec.Vec2{X: x, Y: y}
	s.MoveTo(x, y)
}

// CurveTo implements [Decorator].
func (d *Dash) CurveTo(s draw.Sink, cx, cy, x, y float64) {
	d.pen = vec.Vec2{X: x, Y: y}
	s.CurveTo(cx, cy, x, y)
}

// LineTo implements [Decorator].
func (d *Dash) LineTo(s draw.Sink, x, y float64) {
	end := vec.Vec2{X: x, Y: y}
	rem, ok := segmentLength(d.pen, end)
	if !ok {
		return
	}
	delta := end.Sub(d.pen)
	dir := vec.Vec2{X: delta.X / rem, Y: delta.Y / rem}

	// finish the phase left over from the previous segment
	if d.overflow > 0 {
		step := math.Min(d.overflow, rem)
		d.advance(s, dir, step, d.drawing)
		d.overflow -= step
		rem -= step
		if d.overflow > eps {
			d.pen = end
			return
		}
		d.overflow = 0
		d.drawing = !d.drawing
		if rem <= eps {
			d.pen = end
			return
		}
	}

	// whole cycles leave the phase unchanged
	cycle := d.up + d.dn
	first, second := d.dn, d.up
	if !d.drawing {
		first, second = d.up, d.dn
	}
	n := math.Floor(rem/cycle + eps)
	shown := int(min(n, MaxPatterns))
	for range shown {
		d.advance(s, dir, first, d.drawing)
		d.advance(s, dir, second, !d.drawing)
	}
	if skip := n - float64(shown); skip > 0 {
		d.advance(s, dir, skip*cycle, false)
	}
	rem -= n * cycle

	// partial cycle
	if rem > eps {
		if rem > first+eps {
			d.advance(s, dir, first, d.drawing)
			d.advance(s, dir, rem-first, !d.drawing)
			d.overflow = second - (rem - first)
			d.drawing = !d.drawing
		} else {
			d.advance(s, dir, rem, d.drawing)
			if math.Abs(rem-first) <= eps {
				d.drawing = !d.drawing
			} else {
				d.overflow = first - rem
			}
		}
	}
	d.pen = end
}

// advance moves the pen by length along dir, drawing if on is set.
func (d *Dash) advance(s draw.Sink, dir vec.Vec2, length float64, on bool) {
	next := d.pen.Add(dir.Mul(length))
	if on {
		s.MoveTo(d.pen.X, d.pen.Y)
		s.LineTo(next.X, next.Y)
	}
	d.pen = next
}
