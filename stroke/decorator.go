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

// Package stroke implements stroke-pattern decorators.
//
// A decorator sits between a producer of line geometry and a drawing sink.
// It consumes MoveTo/LineTo calls and re-emits them so that the result is a
// solid, dashed or dotted stroke.  Dashed and dotted decorators keep pattern
// state between calls, so that a pattern continues smoothly over the
// segments of a polyline.
package stroke

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/quadrant/draw"
)

// Style names a stroke pattern.
type Style string

// These are the supported stroke patterns.
const (
	Solid  Style = "solid"
	Dashed Style = "dashed"
	Dotted Style = "dotted"
)

// ParseStyle returns the style with the given name.
// Unknown names give Solid.
func ParseStyle(name string) Style {
	switch s := Style(name); s {
	case Dashed, Dotted:
		return s
	default:
		return Solid
	}
}

// Params holds pattern parameters, in pixels.  Fields which are zero,
// negative or not finite leave the corresponding parameter unchanged.
type Params struct {
	// UpLength and DnLength are the lengths of the gaps and of the dashes
	// of a dashed stroke.
	UpLength float64 `toml:"up" yaml:"up"`
	DnLength float64 `toml:"down" yaml:"down"`

	// Radius is the dot radius of a dotted stroke, and Spacing the free
	// space between neighbouring dots.
	Radius  float64 `toml:"radius" yaml:"radius"`
	Spacing float64 `toml:"spacing" yaml:"spacing"`
}

// DefaultParams returns the default pattern parameters.
func DefaultParams() Params {
	return Params{
		UpLength: DefaultUpLength,
		DnLength: DefaultDnLength,
		Radius:   DefaultRadius,
		Spacing:  DefaultSpacing,
	}
}

// A Decorator turns line geometry into a patterned stroke on a sink.
//
// A Decorator is stateful and not safe for concurrent use; use one decorator
// per stroke session, see [Factory.Acquire].
type Decorator interface {
	// Style returns the pattern implemented by the decorator.
	Style() Style

	MoveTo(s draw.Sink, x, y float64)
	LineTo(s draw.Sink, x, y float64)

	// CurveTo passes the curve on to the sink unchanged; curves are not
	// patterned.
	CurveTo(s draw.Sink, cx, cy, x, y float64)

	// Reset clears all pattern and pen state.
	Reset()

	// SetParams updates the pattern parameters.
	SetParams(p Params)
}

// New returns a new decorator for the given style with default parameters.
// Unknown styles give a solid decorator.
func New(style Style) Decorator {
	switch style {
	case Dashed:
		return NewDashed()
	case Dotted:
		return NewDotted()
	default:
		return solid{}
	}
}

// solid passes everything through unchanged.
type solid struct{}

func (solid) Style() Style { return Solid }
func (solid) MoveTo(s draw.Sink, x, y float64) { s.MoveTo(x, y) }
func (solid) LineTo(s draw.Sink, x, y float64) { s.LineTo(x, y) }
func (solid) CurveTo(s draw.Sink, cx, cy, x, y float64) { s.CurveTo(cx, cy, x, y) }
func (solid) Reset() {}
func (solid) SetParams(Params) {}

// Bind returns a Pather which sends MoveTo and LineTo through d to s.
func Bind(d Decorator, s draw.Sink) draw.Pather {
	return bound{d: d, s: s}
}

type bound struct {
	d Decorator
	s draw.Sink
}

func (b bound) MoveTo(x, y float64) { b.d.MoveTo(b.s, x, y) }
func (b bound) LineTo(x, y float64) { b.d.LineTo(b.s, x, y) }

// patternLength returns v if it is a usable pattern length, and 0 otherwise.
func patternLength(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}

// eps absorbs rounding when comparing lengths along a stroke.
const eps = 1e-9

// MaxPatterns limits the number of dashes or dots emitted for a single
// LineTo call.  The pattern position still advances along the whole
// segment, so the part of a very long segment beyond the limit is left
// empty.
const MaxPatterns = 10000

// segmentLength returns the length of the segment from a to b, and false
// if the segment has no usable length.
func segmentLength(a, b vec.Vec2) (float64, bool) {
	l := b.Sub(a).Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return 0, false
	}
	return l, true
}
