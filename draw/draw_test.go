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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func sample(s TextSink) {
	s.SetStroke(StrokeStyle{Width: 2, Color: color.White, Alpha: 0.5})
	s.MoveTo(1, 2)
	s.LineTo(3, 4)
	s.CurveTo(5, 6, 7, 8)
	s.Stroke()
	s.SetFill(color.Black, 1)
	s.FillPolygon([]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	s.DrawCircle(4, 4, 1)
	s.DrawText(9, 9, "label", TextStyle{Size: 10}, Center)
}

func TestReplay(t *testing.T) {
	a := &Recorder{}
	sample(a)
	require.Len(t, a.Ops, 9)

	b := &Recorder{}
	a.Replay(b)
	assert.Equal(t, a.Ops, b.Ops)

	assert.Equal(t, []Segment{
		{A: vec.Vec2{X: 1, Y: 2}, B: vec.Vec2{X: 3, Y: 4}},
		{A: vec.Vec2{X: 3, Y: 4}, B: vec.Vec2{X: 7, Y: 8}},
	}, a.Segments())
	assert.Equal(t, 1, a.Count(OpDrawText))

	a.Clear()
	assert.True(t, a.Empty())
	assert.False(t, b.Empty())
}

func TestRecorderCopiesPoints(t *testing.T) {
	r := &Recorder{}
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	r.FillPolygon(pts)
	pts[0].X = 5
	assert.Equal(t, 0.0, r.Ops[0].Points[0].X)
}

// geometry hides the DrawText method of the wrapped sink.
type geometry struct {
	Sink
}

func TestReplayWithoutText(t *testing.T) {
	a := &Recorder{}
	sample(a)
	b := &Recorder{}
	a.Replay(geometry{b})
	assert.Len(t, b.Ops, len(a.Ops)-1)
	assert.Zero(t, b.Count(OpDrawText))
}

func TestTranslate(t *testing.T) {
	rec := &Recorder{}
	sample(Translate(rec, 10, 20))

	assert.Equal(t, [4]float64{11, 22}, rec.Ops[1].Args)
	assert.Equal(t, [4]float64{15, 26, 17, 28}, rec.Ops[3].Args)
	assert.Equal(t, []vec.Vec2{{X: 10, Y: 20}, {X: 11, Y: 20}, {X: 10, Y: 21}}, rec.Ops[6].Points)
	assert.Equal(t, [4]float64{14, 24, 1}, rec.Ops[7].Args)
	assert.Equal(t, [4]float64{19, 29}, rec.Ops[8].Args)

	// no offset passes the sink through
	assert.Same(t, TextSink(rec), Translate(rec, 0, 0))

	plain := &Recorder{}
	sample(Translate(geometry{plain}, 1, 1))
	assert.Zero(t, plain.Count(OpDrawText))
}

func TestFade(t *testing.T) {
	assert.Equal(t, color.NRGBA{A: 255}, Fade(nil, 1))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 128}, Fade(color.White, 0.5))
	assert.Equal(t, uint8(0), Fade(color.White, -1).A)
	assert.Equal(t, uint8(255), Fade(color.White, 7).A)
	assert.Equal(t, uint8(0), Fade(color.White, math.NaN()).A)
}

func TestOpKindText(t *testing.T) {
	text, err := OpFillPolygon.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "fillpolygon", string(text))
	assert.Equal(t, "unknown", OpKind(99).String())
}
