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

package quadrant

import (
	"image/color"

	"seehuhn.de/go/quadrant/draw"
	"seehuhn.de/go/quadrant/stroke"
)

// AxisProps describes how one axis of the graph is drawn.
type AxisProps struct {
	Thickness float64
	Color     color.Color
	Alpha     float64

	// Arrows selects whether an arrowhead is drawn at the positive end of
	// the axis.
	Arrows bool

	// MinorTics selects whether minor tick marks are drawn.
	MinorTics bool
}

// DrawProps holds the properties of the graph frame: grid, axes and tick
// labels.
type DrawProps struct {
	ShowGrid      bool
	GridThickness float64
	GridColor     color.Color
	GridAlpha     float64
	GridStyle     stroke.Style
	GridPattern   stroke.Params

	XAxis, YAxis AxisProps

	// TicLabel is the style of the tick labels.  Tick labels are only drawn
	// on sinks which implement [draw.TextSink].
	TicLabel draw.TextStyle

	// Decimals is the number of decimals for non-integral tick labels.
	Decimals int

	// The offsets are the margins between the drawing box and the edges of
	// the painted surface, in pixels.
	OffsetLeft, OffsetTop, OffsetRight, OffsetBottom float64
}

// DefaultDrawProps returns the properties used by a new Quadrant.
func DefaultDrawProps() DrawProps {
	axisProps := AxisProps{
		Thickness: 1.5,
		Color:     color.Black,
		Alpha:     1,
		Arrows:    true,
		MinorTics: true,
	}
	return DrawProps{
		ShowGrid:      true,
		GridThickness: 1,
		GridColor:     color.Gray{Y: 0xA0},
		GridAlpha:     1,
		GridStyle:     stroke.Dotted,
		XAxis:         axisProps,
		YAxis:         axisProps,
		TicLabel: draw.TextStyle{
			Size:  11,
			Color: color.Black,
		},
		Decimals:     2,
		OffsetLeft:   48,
		OffsetTop:    24,
		OffsetRight:  24,
		OffsetBottom: 32,
	}
}

// LayerProps describes how a function layer is drawn.
type LayerProps struct {
	Thickness float64
	Color     color.Color
	Alpha     float64

	ShowLine bool
	ShowDot  bool

	// DotRadius is the radius of the point markers.  Values below
	// MinDotRadius are raised to MinDotRadius.
	DotRadius float64

	// Style selects the stroke pattern of the polyline.  The zero value
	// gives a solid line.
	Style   stroke.Style
	Pattern stroke.Params
}

// MinDotRadius is the smallest radius used for point markers.
const MinDotRadius = 2

// DefaultLayerProps returns properties for a solid black polyline without
// point markers.
func DefaultLayerProps() LayerProps {
	return LayerProps{
		Thickness: 1,
		Color:     color.Black,
		Alpha:     1,
		ShowLine:  true,
		DotRadius: MinDotRadius,
		Style:     stroke.Solid,
	}
}

// LabelProps describes how the text of a label layer is drawn.
type LabelProps struct {
	Font  string
	Size  float64
	Color color.Color
}

func (p LabelProps) textStyle() draw.TextStyle {
	return draw.TextStyle{Font: p.Font, Size: p.Size, Color: p.Color}
}
