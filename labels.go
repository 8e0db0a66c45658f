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
	"seehuhn.de/go/quadrant/axis"
	"seehuhn.de/go/quadrant/draw"
)

// TicLabel is the text of one major tick mark.
type TicLabel struct {
	Axis    axis.Orientation
	X, Y    float64
	Text    string
	Anchor  draw.Anchor
	Visible bool
}

// ticLabelGap is the distance between a tick label and the end of its tick
// mark, in pixels.
const ticLabelGap = 2

// layoutTicLabels places a label at every major tick of both axes.
// Label slots are reused between calls; slots which are not needed are
// hidden.
func (q *Quadrant) layoutTicLabels() {
	n := 0
	place := func(o axis.Orientation, x, y float64, text string, anchor draw.Anchor) {
		if n == len(q.ticLabels) {
			q.ticLabels = append(q.ticLabels, TicLabel{})
		}
		q.ticLabels[n] = TicLabel{
			Axis:    o,
			X:       x,
			Y:       y,
			Text:    text,
			Anchor:  anchor,
			Visible: true,
		}
		n++
	}

	x := q.xAxis
	dy := x.MajorTicSize/2 + ticLabelGap
	texts := x.TicMarkLabels(axis.Major)
	for i, pos := range x.TicPositions(axis.Major, true) {
		place(axis.Horizontal, pos.X, pos.Y+dy, texts[i], draw.TopCenter)
	}

	y := q.yAxis
	dx := y.MajorTicSize/2 + ticLabelGap
	texts = y.TicMarkLabels(axis.Major)
	for i, pos := range y.TicPositions(axis.Major, true) {
		place(axis.Vertical, pos.X-dx, pos.Y, texts[i], draw.MiddleRight)
	}

	for i := n; i < len(q.ticLabels); i++ {
		q.ticLabels[i].Visible = false
	}
}

// TicLabels returns the visible tick labels, in box-local pixel
// coordinates.
func (q *Quadrant) TicLabels() []TicLabel {
	if !q.labelsValid {
		q.drawFrame()
		q.layoutTicLabels()
		q.labelsValid = true
	}
	var res []TicLabel
	for _, l := range q.ticLabels {
		if l.Visible {
			res = append(res, l)
		}
	}
	return res
}
