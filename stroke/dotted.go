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

// Default dot pattern, in pixels.
const (
	DefaultRadius  = 1
	DefaultSpacing = 4
)

// Dot is a decorator which replaces lines by a row of filled dots.
//
// Dot centres are 2*Radius+Spacing pixels apart, measured along the
// polyline.  Distance which is too short for the next dot is carried over
// into the following LineTo call.
type Dot struct {
	radius, spacing float64

	ref   vec.Vec2
	last  vec.Vec2
	carry float64
}

// NewDotted returns a dot decorator with the default pattern.
func NewDotted() *Dot {
	return &Dot{radius: DefaultRadius, spacing: DefaultSpacing}
}

// Style implements [Decorator].
func (d *Dot) Style() Style { return Dotted }

// Pattern returns the dot radius and the free space between dots.
func (d *Dot) Pattern() (radius, spacing float64) { return d.radius, d.spacing }

// Length returns the distance between neighbouring dot centres.
func (d *Dot) Length() float64 { return 2*d.radius + d.spacing }

// LastDot returns the centre of the most recently placed dot.
func (d *Dot) LastDot() vec.Vec2 { return d.last }

// SetParams implements [Decorator].  Values are truncated to whole pixels.
func (d *Dot) SetParams(p Params) {
	if v := math.Floor(patternLength(p.Radius)); v > 0 {
		d.radius = v
	}
	if v := math.Floor(patternLength(p.Spacing)); v > 0 {
		d.spacing = v
	}
}

// Reset implements [Decorator].
func (d *Dot) Reset() {
	d.ref = vec.Vec2{}
	d.last = vec.Vec2{}
	d.carry = 0
}

// MoveTo implements [Decorator].  A dot is placed at the new position.
func (d *Dot) MoveTo(s draw.Sink, x, y float64) {
	p := vec.Vec2{X: x, Y: y}
	d.ref = p
	d.carry = 0
	d.dot(s, p)
}

// CurveTo implements [Decorator].
func (d *Dot) CurveTo(s draw.Sink, cx, cy, x, y float64) {
	d.ref = vec.Vec2{X: x, Y: y}
	s.CurveTo(cx, cy, x, y)
}

// LineTo implements [Decorator].
func (d *Dot) LineTo(s draw.Sink, x, y float64) {
	end := vec.Vec2{X: x, Y: y}
	segLen, ok := segmentLength(d.ref, end)
	if !ok {
		return
	}
	delta := end.Sub(d.ref)
	length := d.Length()

	if d.carry+segLen < length-eps {
		d.carry += segLen
		d.ref = end
		return
	}

	dir := vec.Vec2{X: delta.X / segLen, Y: delta.Y / segLen}
	offset := length - d.carry
	d.dot(s, d.ref.Add(dir.Mul(offset)))

	n := math.Floor((segLen-offset)/length + eps)
	shown := int(min(n, MaxPatterns-1))
	for i := 1; i <= shown; i++ {
		d.dot(s, d.ref.Add(dir.Mul(offset+float64(i)*length)))
	}
	d.carry = math.Max(segLen-offset-n*length, 0)
	d.ref = end
}

func (d *Dot) dot(s draw.Sink, p vec.Vec2) {
	s.DrawCircle(p.X, p.Y, d.radius)
	d.last = p
}
