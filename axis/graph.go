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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/quadrant/draw"
)

// Orientation is the direction of a graph axis on the page.
type Orientation int

// These are the supported orientations.
const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Default sizes of the decorations, in pixels.
const (
	DefaultMajorTicSize = 8
	DefaultMinorTicSize = 4
	DefaultArrowLength  = 10
	DefaultArrowWidth   = 4
)

// GraphAxis is one axis of a two-dimensional graph.
//
// A GraphAxis knows the full drawing box, given by its data bounds and its
// pixel size, and owns the Axis which maps the bounds matching its
// orientation onto pixels: left/right onto the box length for a horizontal
// axis, bottom/top onto the box height for a vertical one.
//
// Drawing happens in box-local pixel coordinates: the origin is the top-left
// corner of the box and y grows downwards.
type GraphAxis struct {
	// MajorTicSize and MinorTicSize are the lengths of the tick marks,
	// perpendicular to the axis.
	MajorTicSize, MinorTicSize float64

	// ArrowLength is the distance from the end of the axis line to the tip
	// of the arrowhead, ArrowWidth is half the width of its base.
	ArrowLength, ArrowWidth float64

	orientation Orientation

	left, top, right, bottom float64
	length, height           float64

	axis Axis
}

// NewGraphAxis returns a GraphAxis with the given orientation and default
// decoration sizes.  The orientation cannot be changed later.
func NewGraphAxis(o Orientation) *GraphAxis {
	return &GraphAxis{
		MajorTicSize: DefaultMajorTicSize,
		MinorTicSize: DefaultMinorTicSize,
		ArrowLength:  DefaultArrowLength,
		ArrowWidth:   DefaultArrowWidth,
		orientation:  o,
	}
}

// Orientation returns the orientation of the axis.
func (g *GraphAxis) Orientation() Orientation { return g.orientation }

// Axis returns the one-dimensional mapping owned by g.
func (g *GraphAxis) Axis() *Axis { return &g.axis }

// Bounds returns the data bounds of the drawing box.
func (g *GraphAxis) Bounds() (left, top, right, bottom float64) {
	return g.left, g.top, g.right, g.bottom
}

// Size returns the pixel size of the drawing box.
func (g *GraphAxis) Size() (length, height float64) {
	return g.length, g.height
}

// SetBounds updates the drawing box.  The left/right pair is only applied
// if right > left, the top/bottom pair only if top > bottom, and each pixel
// dimension only if it is positive.  The owned Axis is then updated from
// the pair which matches the orientation.
func (g *GraphAxis) SetBounds(left, top, right, bottom, length, height float64) {
	if right > left && isFinite(left) && isFinite(right) {
		g.left, g.right = left, right
	}
	if top > bottom && isFinite(top) && isFinite(bottom) {
		g.top, g.bottom = top, bottom
	}
	if length > 0 && isFinite(length) {
		g.length = length
	}
	if height > 0 && isFinite(height) {
		g.height = height
	}

	switch g.orientation {
	case Horizontal:
		g.axis.SetMin(g.left)
		g.axis.SetMax(g.right)
		g.axis.SetLength(g.length)
	case Vertical:
		g.axis.SetMin(g.bottom)
		g.axis.SetMax(g.top)
		g.axis.SetLength(g.height)
	}
}

// SetIncrements sets the spacing of the major and minor tick marks.
// Values which are not strictly positive are ignored.
func (g *GraphAxis) SetIncrements(major, minor float64) {
	g.axis.SetMajorInc(major)
	g.axis.SetMinorInc(minor)
}

// IsVisible reports whether the zero line of the axis lies inside the
// drawing box, i.e. whether the orthogonal bounds straddle zero.
func (g *GraphAxis) IsVisible() bool {
	if g.orientation == Horizontal {
		return !(g.top < 0 || g.bottom > 0)
	}
	return !(g.left > 0 || g.right < 0)
}

// AxisOffset returns the position of the axis line across the box: the y
// coordinate for a horizontal axis, the x coordinate for a vertical one.
//
// Without override this is the position of the zero line.  With override
// the axis is pinned to the edge of the box: a horizontal axis to the
// bottom edge, a vertical axis to the left edge.
func (g *GraphAxis) AxisOffset(override bool) float64 {
	if g.orientation == Horizontal {
		if override {
			return g.height
		}
		span := g.top - g.bottom
		if span <= 0 {
			return 0
		}
		return g.height / span * math.Abs(g.top)
	}

	if override {
		return 0
	}
	span := g.right - g.left
	if span <= 0 {
		return 0
	}
	return g.length / span * math.Abs(g.left)
}

// point converts an offset along the axis and an offset across the axis
// into box-local coordinates.
func (g *GraphAxis) point(along, across float64) (x, y float64) {
	if g.orientation == Horizontal {
		return along, across
	}
	return across, float64(g.axis.Length()) - along
}

func (g *GraphAxis) hidden(override bool) bool {
	return g.axis.Length() == 0 || (!override && !g.IsVisible())
}

// DrawAxis emits the axis line, from the start of the mapped interval to
// its end.
func (g *GraphAxis) DrawAxis(p draw.Pather, override bool) {
	if g.hidden(override) {
		return
	}
	offset := g.AxisOffset(override)
	p.MoveTo(g.point(0, offset))
	p.LineTo(g.point(float64(g.axis.Length()), offset))
}

// DrawArrows emits a filled arrowhead at the positive end of the axis.
func (g *GraphAxis) DrawArrows(s draw.Sink, override bool) {
	if g.hidden(override) {
		return
	}
	offset := g.AxisOffset(override)
	end := float64(g.axis.Length())

	tipX, tipY := g.point(end+g.ArrowLength, offset)
	aX, aY := g.point(end, offset-g.ArrowWidth)
	bX, bY := g.point(end, offset+g.ArrowWidth)
	s.FillPolygon([]vec.Vec2{
		{X: tipX, Y: tipY},
		{X: aX, Y: aY},
		{X: bX, Y: bY},
	})
}

// DrawMajorTicMarks emits a short segment across the axis line at every
// major tick.
func (g *GraphAxis) DrawMajorTicMarks(p draw.Pather, override bool) {
	g.drawTicMarks(p, Major, g.MajorTicSize, override)
}

// DrawMinorTicMarks emits a short segment across the axis line at every
// minor tick.
func (g *GraphAxis) DrawMinorTicMarks(p draw.Pather, override bool) {
	g.drawTicMarks(p, Minor, g.MinorTicSize, override)
}

func (g *GraphAxis) drawTicMarks(p draw.Pather, kind Kind, size float64, override bool) {
	if g.hidden(override) {
		return
	}
	offset := g.AxisOffset(override)
	for _, c := range g.axis.TicCoordinates(kind) {
		p.MoveTo(g.point(c, offset-size/2))
		p.LineTo(g.point(c, offset+size/2))
	}
}

// DrawGrid emits a line across the whole box at every major tick.  This
// does not depend on the visibility of the axis.  A horizontal axis gives
// vertical grid lines, drawn bottom to top; a vertical axis gives
// horizontal grid lines, drawn left to right.
func (g *GraphAxis) DrawGrid(p draw.Pather) {
	var across float64
	if g.orientation == Horizontal {
		across = g.height
	} else {
		across = g.length
	}
	for _, c := range g.axis.TicCoordinates(Major) {
		if g.orientation == Horizontal {
			p.MoveTo(g.point(c, across))
			p.LineTo(g.point(c, 0))
		} else {
			p.MoveTo(g.point(c, 0))
			p.LineTo(g.point(c, across))
		}
	}
}

// TicMarkLabels returns the labels of the tick marks of the given kind.
func (g *GraphAxis) TicMarkLabels(kind Kind) []string {
	return g.axis.TicMarks(kind)
}

// TicCoordinates returns the pixel offsets of the tick marks of the given
// kind, measured along the axis from its start.
func (g *GraphAxis) TicCoordinates(kind Kind) []float64 {
	return g.axis.TicCoordinates(kind)
}

// TicPositions returns the box-local positions of the tick marks of the
// given kind on the axis line.
func (g *GraphAxis) TicPositions(kind Kind, override bool) []vec.Vec2 {
	coords := g.axis.TicCoordinates(kind)
	if coords == nil {
		return nil
	}
	offset := g.AxisOffset(override)
	pts := make([]vec.Vec2, len(coords))
	for i, c := range coords {
		x, y := g.point(c, offset)
		pts[i] = vec.Vec2{X: x, Y: y}
	}
	return pts
}
