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
	"slices"

	"seehuhn.de/go/quadrant/draw"
	"seehuhn.de/go/quadrant/stroke"
)

type functionLayer struct {
	props   LayerProps
	xs, ys  []float64
	content draw.Recorder
}

// AddFunctionLayer registers a function layer.  If a layer of the same name
// exists, its properties are replaced and its data is kept.
func (q *Quadrant) AddFunctionLayer(name string, props LayerProps) {
	props.Style = stroke.ParseStyle(string(props.Style))
	if l, ok := q.functions.AtTry(name); ok {
		l.props = props
		return
	}
	q.functions.Set(name, &functionLayer{props: props})
}

// AddFunctionLayerData replaces the cached data of a function layer.
// The call is ignored if the layer does not exist or if xs and ys have
// different lengths.
func (q *Quadrant) AddFunctionLayerData(name string, xs, ys []float64) {
	l, ok := q.functions.AtTry(name)
	if !ok {
		q.logger.Debug("data for unknown function layer ignored", "layer", name)
		return
	}
	if len(xs) != len(ys) {
		q.logger.Debug("mismatched layer data ignored",
			"layer", name, "xs", len(xs), "ys", len(ys))
		return
	}
	l.xs = slices.Clone(xs)
	l.ys = slices.Clone(ys)
}

// GraphLayer draws a function layer.  If xs and ys are both nil, the cached
// data is used; otherwise the data replaces the cached data first, as for
// [Quadrant.AddFunctionLayerData].  Previous drawings of the layer are
// discarded.
//
// The polyline is drawn if the layer's ShowLine is set, and a dot for each
// point if ShowDot is set.  Points with a non-finite coordinate are not
// drawn and split the polyline.
func (q *Quadrant) GraphLayer(name string, xs, ys []float64) {
	l, ok := q.functions.AtTry(name)
	if !ok {
		q.logger.Debug("unknown function layer", "layer", name)
		return
	}
	if xs != nil || ys != nil {
		if len(xs) != len(ys) {
			q.logger.Debug("mismatched layer data ignored",
				"layer", name, "xs", len(xs), "ys", len(ys))
			return
		}
		l.xs = slices.Clone(xs)
		l.ys = slices.Clone(ys)
	}

	rec := &l.content
	rec.Clear()
	if len(l.xs) == 0 {
		return
	}
	p := &l.props

	if p.ShowLine {
		rec.SetStroke(draw.StrokeStyle{Width: p.Thickness, Color: p.Color, Alpha: p.Alpha})
		rec.SetFill(p.Color, p.Alpha)
		d := q.factory.Acquire(p.Style)
		d.SetParams(p.Pattern)
		penDown := false
		for i := range l.xs {
			x, y, ok := q.dataPixel(l.xs[i], l.ys[i])
			if !ok {
				// the line restarts after a gap in the data
				penDown = false
				continue
			}
			if penDown {
				d.LineTo(rec, x, y)
			} else {
				d.MoveTo(rec, x, y)
				penDown = true
			}
		}
		q.factory.Release(d)
		rec.Stroke()
	}

	if p.ShowDot {
		r := max(p.DotRadius, MinDotRadius)
		rec.SetFill(p.Color, p.Alpha)
		for i := range l.xs {
			if x, y, ok := q.dataPixel(l.xs[i], l.ys[i]); ok {
				rec.DrawCircle(x, y, r)
			}
		}
	}
}

// dataPixel is like [Quadrant.ToPixel], but reports whether the point can
// be drawn.  Points with non-finite data or pixel coordinates are skipped.
func (q *Quadrant) dataPixel(x, y float64) (px, py float64, ok bool) {
	if !allFinite(x, y) {
		return 0, 0, false
	}
	px, py = q.ToPixel(x, y)
	return px, py, allFinite(px, py)
}

// FunctionLayers returns the names of the function layers, in the order
// they were added.
func (q *Quadrant) FunctionLayers() []string {
	return slices.Clone(q.functions.Keys)
}

// LayerData returns the cached data of a function layer.
func (q *Quadrant) LayerData(name string) (xs, ys []float64, ok bool) {
	l, ok := q.functions.AtTry(name)
	if !ok {
		return nil, nil, false
	}
	return slices.Clone(l.xs), slices.Clone(l.ys), true
}

// LayerOps returns the drawing commands of a function layer, in box-local
// pixel coordinates.
func (q *Quadrant) LayerOps(name string) []draw.Op {
	l, ok := q.functions.AtTry(name)
	if !ok {
		return nil
	}
	return slices.Clone(l.content.Ops)
}

// Label is a piece of text at a position within the drawing box.
type Label struct {
	X, Y float64
	Text string
}

type labelLayer struct {
	props    LabelProps
	children []Label
}

// AddLabelLayer registers a label layer.  If a layer of the same name
// exists, its properties are replaced and its labels are kept.
func (q *Quadrant) AddLabelLayer(name string, props LabelProps) {
	if l, ok := q.labels.AtTry(name); ok {
		l.props = props
		return
	}
	q.labels.Set(name, &labelLayer{props: props})
}

// GraphLabelLayer adds one label per data point to a label layer.  Labels
// are placed at the pixel position of their data point.  The call is ignored
// if the layer does not exist or if the slices have different lengths.
// Labels at non-finite positions are dropped.
func (q *Quadrant) GraphLabelLayer(name string, xs, ys []float64, labels []string) {
	l, ok := q.labels.AtTry(name)
	if !ok {
		q.logger.Debug("unknown label layer", "layer", name)
		return
	}
	if len(xs) != len(ys) || len(xs) != len(labels) {
		q.logger.Debug("mismatched label data ignored", "layer", name,
			"xs", len(xs), "ys", len(ys), "labels", len(labels))
		return
	}
	for i, text := range labels {
		x, y, ok := q.dataPixel(xs[i], ys[i])
		if !ok {
			q.logger.Debug("non-finite label position ignored",
				"layer", name, "text", text)
			continue
		}
		l.children = append(l.children, Label{X: x, Y: y, Text: text})
	}
}

// LabelLayers returns the names of the label layers, in the order they were
// added.
func (q *Quadrant) LabelLayers() []string {
	return slices.Clone(q.labels.Keys)
}

// Labels returns the labels of a label layer.
func (q *Quadrant) Labels(name string) []Label {
	l, ok := q.labels.AtTry(name)
	if !ok {
		return nil
	}
	return slices.Clone(l.children)
}
