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

package draw

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// OpKind identifies a recorded drawing command.
type OpKind uint8

// These are the drawing commands a Recorder stores.
const (
	OpMoveTo OpKind = iota
	OpLineTo
	OpCurveTo
	OpSetStroke
	OpSetFill
	OpStroke
	OpFillPolygon
	OpDrawCircle
	OpDrawText
)

func (k OpKind) String() string {
	switch k {
	case OpMoveTo:
		return "moveto"
	case OpLineTo:
		return "lineto"
	case OpCurveTo:
		return "curveto"
	case OpSetStroke:
		return "setstroke"
	case OpSetFill:
		return "setfill"
	case OpStroke:
		return "stroke"
	case OpFillPolygon:
		return "fillpolygon"
	case OpDrawCircle:
		return "drawcircle"
	case OpDrawText:
		return "drawtext"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k OpKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Op is a single recorded drawing command.
// Which fields are used depends on Kind.
type Op struct {
	Kind OpKind

	// Args holds the coordinates: x, y for OpMoveTo and OpLineTo;
	// cx, cy, x, y for OpCurveTo; x, y, r for OpDrawCircle;
	// x, y for OpDrawText.
	Args [4]float64

	Points []vec.Vec2
	Stroke StrokeStyle
	Fill   color.Color
	Alpha  float64
	Text   string
	Style  TextStyle
	Anchor Anchor
}

// Recorder is a TextSink which stores all drawing commands in memory.
// The zero value is an empty display list, ready to use.
type Recorder struct {
	Ops []Op
}

var _ TextSink = (*Recorder)(nil)

// MoveTo implements the Sink interface.
func (r *Recorder) MoveTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpMoveTo, Args: [4]float64{x, y}})
}

// LineTo implements the Sink interface.
func (r *Recorder) LineTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLineTo, Args: [4]float64{x, y}})
}

// CurveTo implements the Sink interface.
func (r *Recorder) CurveTo(cx, cy, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpCurveTo, Args: [4]float64{cx, cy, x, y}})
}

// SetStroke implements the Sink interface.
func (r *Recorder) SetStroke(style StrokeStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpSetStroke, Stroke: style})
}

// SetFill implements the Sink interface.
func (r *Recorder) SetFill(c color.Color, alpha float64) {
	r.Ops = append(r.Ops, Op{Kind: OpSetFill, Fill: c, Alpha: alpha})
}

// Stroke implements the Sink interface.
func (r *Recorder) Stroke() {
	r.Ops = append(r.Ops, Op{Kind: OpStroke})
}

// FillPolygon implements the Sink interface.
// The vertices are copied.
func (r *Recorder) FillPolygon(pts []vec.Vec2) {
	r.Ops = append(r.Ops, Op{Kind: OpFillPolygon, Points: append([]vec.Vec2(nil), pts...)})
}

// DrawCircle implements the Sink interface.
func (r *Recorder) DrawCircle(x, y, radius float64) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawCircle, Args: [4]float64{x, y, radius}})
}

// DrawText implements the TextSink interface.
func (r *Recorder) DrawText(x, y float64, text string, style TextStyle, anchor Anchor) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpDrawText,
		Args:   [4]float64{x, y},
		Text:   text,
		Style:  style,
		Anchor: anchor,
	})
}

// Clear discards all recorded commands, keeping the allocated storage.
func (r *Recorder) Clear() {
	clear(r.Ops)
	r.Ops = r.Ops[:0]
}

// Empty reports whether nothing has been recorded.
func (r *Recorder) Empty() bool {
	return len(r.Ops) == 0
}

// Replay sends all recorded commands to s, in order.
// Text is only drawn if s is a TextSink.
func (r *Recorder) Replay(s Sink) {
	ts, hasText := s.(TextSink)
	for i := range r.Ops {
		op := &r.Ops[i]
		switch op.Kind {
		case OpMoveTo:
			s.MoveTo(op.Args[0], op.Args[1])
		case OpLineTo:
			s.LineTo(op.Args[0], op.Args[1])
		case OpCurveTo:
			s.CurveTo(op.Args[0], op.Args[1], op.Args[2], op.Args[3])
		case OpSetStroke:
			s.SetStroke(op.Stroke)
		case OpSetFill:
			s.SetFill(op.Fill, op.Alpha)
		case OpStroke:
			s.Stroke()
		case OpFillPolygon:
			s.FillPolygon(op.Points)
		case OpDrawCircle:
			s.DrawCircle(op.Args[0], op.Args[1], op.Args[2])
		case OpDrawText:
			if hasText {
				ts.DrawText(op.Args[0], op.Args[1], op.Text, op.Style, op.Anchor)
			}
		}
	}
}

// Segment is a straight line piece of a recorded path.
type Segment struct {
	A, B vec.Vec2
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// Segments returns the straight line pieces of all recorded paths, in the
// order they were drawn.  Curves are represented by the chord between
// their end points.
func (r *Recorder) Segments() []Segment {
	var segs []Segment
	var current vec.Vec2
	for i := range r.Ops {
		op := &r.Ops[i]
		switch op.Kind {
		case OpMoveTo:
			current = vec.Vec2{X: op.Args[0], Y: op.Args[1]}
		case OpLineTo:
			next := vec.Vec2{X: op.Args[0], Y: op.Args[1]}
			segs = append(segs, Segment{A: current, B: next})
			current = next
		case OpCurveTo:
			next := vec.Vec2{X: op.Args[2], Y: op.Args[3]}
			segs = append(segs, Segment{A: current, B: next})
			current = next
		}
	}
	return segs
}

// Count returns the number of recorded commands of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for i := range r.Ops {
		if r.Ops[i].Kind == kind {
			n++
		}
	}
	return n
}
