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

// Package quadrant renders single-quadrant Cartesian graphs.
//
// A [Quadrant] maps a rectangle of data coordinates onto a box of pixels and
// draws a frame consisting of an optional grid, two axes with tick marks and
// tick labels.  Data is drawn in named function layers (polylines and point
// markers) and label layers (text at data positions).  All output is
// collected in display lists and painted onto a [draw.Sink] by
// [Quadrant.Paint].
//
// Invalid input never causes an error: updates which do not make sense are
// ignored, keeping the previous state, and are reported on the debug level
// of the Quadrant's logger.
package quadrant

import (
	"log/slog"
	"math"

	"cogentcore.org/core/base/keylist"

	"seehuhn.de/go/quadrant/axis"
	"seehuhn.de/go/quadrant/draw"
	"seehuhn.de/go/quadrant/stroke"
)

// Quadrant is the graph engine.
//
// Pixel coordinates are relative to the top-left corner of the drawing box,
// with y pointing down.  Data coordinates increase to the right and
// upwards.
//
// A Quadrant is not safe for concurrent use.
type Quadrant struct {
	logger  *slog.Logger
	factory *stroke.Factory

	props DrawProps

	left, top, right, bottom float64
	xLen, yLen               float64
	pxPerUnitX, pxPerUnitY   float64

	xAxis, yAxis *axis.GraphAxis

	functions keylist.List[string, *functionLayer]
	labels    keylist.List[string, *labelLayer]

	grid      draw.Recorder
	frame     draw.Recorder
	ticLabels []TicLabel

	gridValid, labelsValid bool
}

// Option configures a Quadrant.
type Option func(*Quadrant)

// WithLogger sets the logger used to report ignored updates.
func WithLogger(logger *slog.Logger) Option {
	return func(q *Quadrant) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// WithFactory sets the factory which supplies the stroke decorators.
func WithFactory(f *stroke.Factory) Option {
	return func(q *Quadrant) {
		if f != nil {
			q.factory = f
		}
	}
}

// New returns an empty Quadrant with the default draw properties.
// Until [Quadrant.SetGraphBounds] is called, the mapping is degenerate and
// every data point maps to the top-left corner.
func New(opts ...Option) *Quadrant {
	q := &Quadrant{
		logger:  slog.New(slog.DiscardHandler),
		factory: stroke.Default,
		props:   DefaultDrawProps(),
		xAxis:   axis.NewGraphAxis(axis.Horizontal),
		yAxis:   axis.NewGraphAxis(axis.Vertical),
		xLen:    1,
		yLen:    1,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.applyDecimals()
	return q
}

// SetGraphBounds sets the data rectangle and the pixel size of the drawing
// box.
//
// The bounds are only changed if right > left and top > bottom.  The pixel
// size is always applied, rounded and raised to at least one pixel.
func (q *Quadrant) SetGraphBounds(left, top, right, bottom, xLen, yLen float64) {
	if right > left && top > bottom && allFinite(left, top, right, bottom) {
		q.left, q.top, q.right, q.bottom = left, top, right, bottom
	} else {
		q.logger.Debug("graph bounds ignored",
			"left", left, "top", top, "right", right, "bottom", bottom)
	}
	q.xLen = pixelLength(xLen)
	q.yLen = pixelLength(yLen)

	q.pxPerUnitX, q.pxPerUnitY = 0, 0
	if q.right > q.left {
		q.pxPerUnitX = q.xLen / (q.right - q.left)
	}
	if q.top > q.bottom {
		q.pxPerUnitY = q.yLen / (q.top - q.bottom)
	}

	q.xAxis.SetBounds(q.left, q.top, q.right, q.bottom, q.xLen, q.yLen)
	q.yAxis.SetBounds(q.left, q.top, q.right, q.bottom, q.xLen, q.yLen)
	q.invalidate()
}

// SetIncrements sets the tick spacing of one axis.  Values which are not
// strictly positive leave the corresponding increment unchanged.
func (q *Quadrant) SetIncrements(o axis.Orientation, major, minor float64) {
	if !(major > 0) || !(minor >= 0) {
		q.logger.Debug("tick increment ignored",
			"axis", o, "major", major, "minor", minor)
	}
	q.graphAxis(o).SetIncrements(major, minor)
	q.invalidate()
}

// SetDrawProps replaces all draw properties of the frame.
func (q *Quadrant) SetDrawProps(props DrawProps) {
	props.GridStyle = stroke.ParseStyle(string(props.GridStyle))
	if props.Decimals < 0 {
		q.logger.Debug("negative decimals ignored", "decimals", props.Decimals)
		props.Decimals = q.props.Decimals
	}
	q.props = props
	q.applyDecimals()
	q.invalidate()
}

// DrawProps returns the current draw properties.
func (q *Quadrant) DrawProps() DrawProps {
	return q.props
}

// Bounds returns the data rectangle.
func (q *Quadrant) Bounds() (left, top, right, bottom float64) {
	return q.left, q.top, q.right, q.bottom
}

// BoxSize returns the pixel size of the drawing box.
func (q *Quadrant) BoxSize() (width, height float64) {
	return q.xLen, q.yLen
}

// Size returns the size of the surface required by [Quadrant.Paint]: the
// drawing box enlarged by the offsets.
func (q *Quadrant) Size() (width, height float64) {
	p := &q.props
	return p.OffsetLeft + q.xLen + p.OffsetRight, p.OffsetTop + q.yLen + p.OffsetBottom
}

// PxPerUnit returns the scale factors of the two axes.
func (q *Quadrant) PxPerUnit() (x, y float64) {
	return q.pxPerUnitX, q.pxPerUnitY
}

// ToPixel converts a data point into pixel coordinates within the drawing
// box.  The result is rounded to whole pixels.
func (q *Quadrant) ToPixel(x, y float64) (px, py float64) {
	px = math.Round((x - q.left) * q.pxPerUnitX)
	py = math.Round((q.top - y) * q.pxPerUnitY)
	return px, py
}

// Axis returns the graph axis with the given orientation.
func (q *Quadrant) Axis(o axis.Orientation) *axis.GraphAxis {
	return q.graphAxis(o)
}

func (q *Quadrant) graphAxis(o axis.Orientation) *axis.GraphAxis {
	if o == axis.Vertical {
		return q.yAxis
	}
	return q.xAxis
}

// Redraw recomputes the grid, the axes and the tick labels, and redraws all
// function layers from their cached data.
func (q *Quadrant) Redraw() {
	q.drawGrid()
	q.drawFrame()
	q.layoutTicLabels()
	q.gridValid = true
	q.labelsValid = true

	for _, name := range q.functions.Keys {
		q.GraphLayer(name, nil, nil)
	}
}

// Clear erases the drawings of all function layers and removes all labels
// from the label layers.  The layers themselves, together with their
// properties and cached data, are kept.
func (q *Quadrant) Clear() {
	for _, l := range q.functions.Values {
		l.content.Clear()
	}
	for _, l := range q.labels.Values {
		l.children = l.children[:0]
	}
}

// Paint draws the graph onto s.  The drawing box is placed at the left and
// top offsets of the draw properties.  Text is only drawn if s implements
// [draw.TextSink].
func (q *Quadrant) Paint(s draw.Sink) {
	if !q.gridValid {
		q.drawGrid()
		q.gridValid = true
	}
	if !q.labelsValid {
		q.drawFrame()
		q.layoutTicLabels()
		q.labelsValid = true
	}

	t := draw.Translate(s, q.props.OffsetLeft, q.props.OffsetTop)
	q.grid.Replay(t)
	for _, l := range q.functions.Values {
		l.content.Replay(t)
	}
	q.frame.Replay(t)
	for i := range q.ticLabels {
		l := &q.ticLabels[i]
		if l.Visible {
			t.DrawText(l.X, l.Y, l.Text, q.props.TicLabel, l.Anchor)
		}
	}
	for _, l := range q.labels.Values {
		style := l.props.textStyle()
		for _, c := range l.children {
			t.DrawText(c.X, c.Y, c.Text, style, draw.MiddleLeft)
		}
	}
}

func (q *Quadrant) invalidate() {
	q.gridValid = false
	q.labelsValid = false
}

func (q *Quadrant) applyDecimals() {
	q.xAxis.Axis().SetDecimals(q.props.Decimals)
	q.yAxis.Axis().SetDecimals(q.props.Decimals)
}

// drawGrid fills the grid display list.  Each grid direction is one stroke
// session.
func (q *Quadrant) drawGrid() {
	q.grid.Clear()
	p := &q.props
	if !p.ShowGrid {
		return
	}

	q.grid.SetStroke(draw.StrokeStyle{Width: p.GridThickness, Color: p.GridColor, Alpha: p.GridAlpha})
	q.grid.SetFill(p.GridColor, p.GridAlpha)
	for _, g := range []*axis.GraphAxis{q.xAxis, q.yAxis} {
		d := q.factory.Acquire(p.GridStyle)
		d.SetParams(p.GridPattern)
		g.DrawGrid(stroke.Bind(d, &q.grid))
		q.factory.Release(d)
	}
	q.grid.Stroke()
}

// drawFrame fills the display list for both axes.  Axes are always drawn
// pinned to the edges of the box.
func (q *Quadrant) drawFrame() {
	q.frame.Clear()
	for _, o := range []axis.Orientation{axis.Horizontal, axis.Vertical} {
		g := q.graphAxis(o)
		ap := &q.props.XAxis
		if o == axis.Vertical {
			ap = &q.props.YAxis
		}

		q.frame.SetStroke(draw.StrokeStyle{Width: ap.Thickness, Color: ap.Color, Alpha: ap.Alpha})
		g.DrawAxis(&q.frame, true)
		g.DrawMajorTicMarks(&q.frame, true)
		if ap.MinorTics {
			g.DrawMinorTicMarks(&q.frame, true)
		}
		q.frame.Stroke()

		if ap.Arrows {
			q.frame.SetFill(ap.Color, ap.Alpha)
			g.DrawArrows(&q.frame, true)
		}
	}
}

func allFinite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func pixelLength(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	return max(1, math.Round(v))
}
