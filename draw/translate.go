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

import "seehuhn.de/go/geom/vec"

// Translate returns a TextSink which shifts all coordinates by (dx, dy)
// before passing them on to s.  Text is dropped if s is not a TextSink.
func Translate(s Sink, dx, dy float64) TextSink {
	if dx == 0 && dy == 0 {
		if ts, ok := s.(TextSink); ok {
			return ts
		}
	}
	t := &translated{Sink: s, dx: dx, dy: dy}
	t.text, _ = s.(TextSink)
	return t
}

type translated struct {
	Sink
	text   TextSink
	dx, dy float64
	buf    []vec.Vec2
}

func (t *translated) MoveTo(x, y float64) {
	t.Sink.MoveTo(x+t.dx, y+t.dy)
}

func (t *translated) LineTo(x, y float64) {
	t.Sink.LineTo(x+t.dx, y+t.dy)
}

func (t *translated) CurveTo(cx, cy, x, y float64) {
	t.Sink.CurveTo(cx+t.dx, cy+t.dy, x+t.dx, y+t.dy)
}

func (t *translated) FillPolygon(pts []vec.Vec2) {
	t.buf = t.buf[:0]
	shift := vec.Vec2{X: t.dx, Y: t.dy}
	for _, p := range pts {
		t.buf = append(t.buf, p.Add(shift))
	}
	t.Sink.FillPolygon(t.buf)
}

func (t *translated) DrawCircle(x, y, r float64) {
	t.Sink.DrawCircle(x+t.dx, y+t.dy, r)
}

func (t *translated) DrawText(x, y float64, text string, style TextStyle, anchor Anchor) {
	if t.text == nil {
		return
	}
	t.text.DrawText(x+t.dx, y+t.dy, text, style, anchor)
}
