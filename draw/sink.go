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

// Package draw defines the drawing capability the graph engine renders
// through, together with a display list which records drawing commands and
// replays them onto another surface.
//
// All coordinates are in pixels, with the origin in the top-left corner and
// the y-axis pointing down.
package draw

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Pather receives the line geometry of a stroke.
type Pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
}

// Sink is a drawing surface.
//
// MoveTo, LineTo and CurveTo accumulate a path which is painted by Stroke,
// using the current stroke style.  FillPolygon and DrawCircle paint
// immediately, using the current fill color.
//
// A Sink is not safe for concurrent use.
type Sink interface {
	Pather

	// CurveTo appends a quadratic Bézier curve with control point (cx, cy)
	// ending at (x, y).
	CurveTo(cx, cy, x, y float64)

	// SetStroke sets the style used by subsequent Stroke calls.
	SetStroke(style StrokeStyle)

	// SetFill sets the color used by FillPolygon and DrawCircle.
	// Alpha ranges from 0 (transparent) to 1 (opaque).
	SetFill(c color.Color, alpha float64)

	// Stroke paints the current path and starts a new, empty one.
	Stroke()

	// FillPolygon fills the closed polygon with the given vertices.
	FillPolygon(pts []vec.Vec2)

	// DrawCircle fills a circle of radius r centered at (x, y).
	DrawCircle(x, y, r float64)

	// Clear erases everything drawn so far.
	Clear()
}

// TextSink is a Sink which can also draw text.
type TextSink interface {
	Sink

	// DrawText draws a single line of text.  The anchor selects the point
	// of the text's bounding box which is placed at (x, y).
	DrawText(x, y float64, text string, style TextStyle, anchor Anchor)
}

// StrokeStyle describes how paths are stroked.
type StrokeStyle struct {
	Width float64     // line width in pixels
	Color color.Color // nil means black
	Alpha float64     // opacity, 0..1
}

// TextStyle describes how text is drawn.
type TextStyle struct {
	Font  string      // font name, interpretation is up to the sink
	Size  float64     // font size in pixels, 0 selects the sink's default
	Color color.Color // nil means black
}

// Anchor is a point in a text's bounding box, given as fractions of the box
// width and height measured from its top-left corner.
type Anchor struct {
	X, Y float64
}

// Frequently used anchors.
var (
	TopLeft     = Anchor{X: 0, Y: 0}
	TopCenter   = Anchor{X: 0.5, Y: 0}
	MiddleLeft  = Anchor{X: 0, Y: 0.5}
	MiddleRight = Anchor{X: 1, Y: 0.5}
	Center      = Anchor{X: 0.5, Y: 0.5}
)

// Fade returns c as a non-premultiplied color, with its opacity multiplied
// by alpha.  Alpha is clamped to [0, 1]; a nil color is treated as black.
func Fade(c color.Color, alpha float64) color.NRGBA {
	if c == nil {
		c = color.Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if math.IsNaN(alpha) {
		alpha = 0
	}
	alpha = max(0, min(1, alpha))
	n.A = uint8(math.Round(float64(n.A) * alpha))
	return n
}
