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

// Package pdfsink implements a drawing sink which writes a single-page PDF
// file.
//
// Colors are written in the DeviceRGB color space, blended against the white
// page according to their opacity.  Text is not supported.
package pdfsink

import (
	stdcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/quadrant/draw"
)

// Page is a [draw.Sink] which paints onto a PDF page.  Coordinates are in
// PDF points, with the origin in the top-left corner of the page.
type Page struct {
	page          *document.Page
	width, height float64

	cur     vec.Vec2
	hasPath bool
	fill    color.Color
}

var _ draw.Sink = (*Page)(nil)

// Create starts a new PDF file with a single page of the given size.
// The page must be finished by calling Close.
func Create(fileName string, width, height float64) (*Page, error) {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	// PDF user space has y pointing up
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	p := &Page{
		page:   page,
		width:  width,
		height: height,
		fill:   color.DeviceRGB{0, 0, 0},
	}
	page.SetFillColor(p.fill)
	return p, nil
}

// Close writes the page and closes the file.
func (p *Page) Close() error {
	return p.page.Close()
}

// MoveTo implements [draw.Sink].
func (p *Page) MoveTo(x, y float64) {
	p.page.MoveTo(x, y)
	p.cur = vec.Vec2{X: x, Y: y}
	p.hasPath = true
}

// LineTo implements [draw.Sink].
func (p *Page) LineTo(x, y float64) {
	if !p.hasPath {
		p.MoveTo(x, y)
		return
	}
	p.page.LineTo(x, y)
	p.cur = vec.Vec2{X: x, Y: y}
}

// CurveTo implements [draw.Sink].  PDF has no quadratic curves, so the
// curve is converted to the equivalent cubic one.
func (p *Page) CurveTo(cx, cy, x, y float64) {
	if !p.hasPath {
		p.MoveTo(cx, cy)
	}
	ctrl := vec.Vec2{X: cx, Y: cy}
	end := vec.Vec2{X: x, Y: y}
	c1 := p.cur.Add(ctrl.Sub(p.cur).Mul(2.0 / 3))
	c2 := end.Add(ctrl.Sub(end).Mul(2.0 / 3))
	p.page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, x, y)
	p.cur = end
}

// SetStroke implements [draw.Sink].
func (p *Page) SetStroke(style draw.StrokeStyle) {
	p.page.SetLineWidth(style.Width)
	p.page.SetStrokeColor(rgb(style.Color, style.Alpha))
}

// SetFill implements [draw.Sink].
func (p *Page) SetFill(c stdcolor.Color, alpha float64) {
	p.fill = rgb(c, alpha)
	p.page.SetFillColor(p.fill)
}

// Stroke implements [draw.Sink].
func (p *Page) Stroke() {
	if !p.hasPath {
		return
	}
	p.page.Stroke()
	p.hasPath = false
}

// FillPolygon implements [draw.Sink].
func (p *Page) FillPolygon(pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	p.endPath()
	p.page.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.page.LineTo(pt.X, pt.Y)
	}
	p.page.ClosePath()
	p.page.Fill()
}

// circleKappa places the control points of a cubic Bézier quarter circle.
const circleKappa = 0.5522847498307936

// DrawCircle implements [draw.Sink].
func (p *Page) DrawCircle(x, y, r float64) {
	if !(r > 0) {
		return
	}
	p.endPath()
	k := circleKappa * r
	p.page.MoveTo(x+r, y)
	p.page.CurveTo(x+r, y+k, x+k, y+r, x, y+r)
	p.page.CurveTo(x-k, y+r, x-r, y+k, x-r, y)
	p.page.CurveTo(x-r, y-k, x-k, y-r, x, y-r)
	p.page.CurveTo(x+k, y-r, x+r, y-k, x+r, y)
	p.page.ClosePath()
	p.page.Fill()
}

// Clear implements [draw.Sink].  Since nothing can be removed from a PDF
// content stream, the page is painted over in white.
func (p *Page) Clear() {
	p.endPath()
	p.page.SetFillColor(color.DeviceRGB{1, 1, 1})
	p.page.Rectangle(0, 0, p.width, p.height)
	p.page.Fill()
	p.page.SetFillColor(p.fill)
}

// endPath strokes a pending path, so that fill operations do not absorb
// it.
func (p *Page) endPath() {
	if p.hasPath {
		p.Stroke()
	}
}

// rgb returns the color which c, painted with the given opacity, shows on
// a white page.
func rgb(c stdcolor.Color, alpha float64) color.DeviceRGB {
	n := draw.Fade(c, alpha)
	a := float64(n.A) / 255
	blend := func(v uint8) float64 {
		return 1 - a*(1-float64(v)/255)
	}
	return color.DeviceRGB{blend(n.R), blend(n.G), blend(n.B)}
}
