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

package raster

import (
	"image"
	"image/color"
	imgdraw "image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/quadrant/draw"
)

// Canvas is a [draw.TextSink] which paints onto an RGBA image.
//
// Text is drawn with a fixed 7x13 pixel bitmap font; the font name and size
// of the text style are ignored.
type Canvas struct {
	// Background is the color used by Clear.
	Background color.Color

	img   *image.RGBA
	r     *Rasterizer
	scale float64

	path    Path
	scratch Path
	pen     draw.StrokeStyle
	fill    color.NRGBA
	face    font.Face
}

var _ draw.TextSink = (*Canvas)(nil)

// NewCanvas returns a canvas of the given size in pixels, cleared to white.
// All coordinates passed to the canvas are multiplied by scale, which must
// be positive.
func NewCanvas(width, height int, scale float64) *Canvas {
	if !(scale > 0) {
		scale = 1
	}
	w := int(math.Ceil(float64(width) * scale))
	h := int(math.Ceil(float64(height) * scale))
	r := NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = matrix.Scale(scale, scale)
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound

	c := &Canvas{
		Background: color.White,
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		r:          r,
		scale:      scale,
		fill:       color.NRGBA{A: 255},
		pen:        draw.StrokeStyle{Width: 1, Alpha: 1},
		face:       basicfont.Face7x13,
	}
	c.Clear()
	return c
}

// Image returns the image the canvas paints on.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// SetCapJoin changes the line cap and join styles.  The default is round
// caps and round joins.
func (c *Canvas) SetCapJoin(lineCap graphics.LineCapStyle, join graphics.LineJoinStyle) {
	c.r.Cap = lineCap
	c.r.Join = join
}

// MoveTo implements [draw.Sink].
func (c *Canvas) MoveTo(x, y float64) {
	c.path.MoveTo(vec.Vec2{X: x, Y: y})
}

// LineTo implements [draw.Sink].
func (c *Canvas) LineTo(x, y float64) {
	if c.path.Empty() {
		c.path.MoveTo(vec.Vec2{X: x, Y: y})
		return
	}
	c.path.LineTo(vec.Vec2{X: x, Y: y})
}

// CurveTo implements [draw.Sink].
func (c *Canvas) CurveTo(cx, cy, x, y float64) {
	if c.path.Empty() {
		c.path.MoveTo(vec.Vec2{X: cx, Y: cy})
	}
	c.path.QuadTo(vec.Vec2{X: cx, Y: cy}, vec.Vec2{X: x, Y: y})
}

// SetStroke implements [draw.Sink].
func (c *Canvas) SetStroke(style draw.StrokeStyle) {
	c.pen = style
}

// SetFill implements [draw.Sink].
func (c *Canvas) SetFill(col color.Color, alpha float64) {
	c.fill = draw.Fade(col, alpha)
}

// Stroke implements [draw.Sink].
func (c *Canvas) Stroke() {
	if c.pen.Width > 0 {
		c.r.Width = c.pen.Width
		c.r.Stroke(c.path.All(), c.painter(draw.Fade(c.pen.Color, c.pen.Alpha)))
	}
	c.path.Reset()
}

// FillPolygon implements [draw.Sink].
func (c *Canvas) FillPolygon(pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	p := &c.scratch
	p.Reset()
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.Close()
	c.r.FillNonZero(p.All(), c.painter(c.fill))
}

// circleKappa places the control points of a cubic Bézier quarter circle.
const circleKappa = 0.5522847498307936

// DrawCircle implements [draw.Sink].
func (c *Canvas) DrawCircle(x, y, radius float64) {
	if !(radius > 0) {
		return
	}
	p := &c.scratch
	p.Reset()
	ctr := vec.Vec2{X: x, Y: y}
	k := circleKappa * radius
	p.MoveTo(ctr.Add(vec.Vec2{X: radius}))
	p.CubeTo(ctr.Add(vec.Vec2{X: radius, Y: k}), ctr.Add(vec.Vec2{X: k, Y: radius}), ctr.Add(vec.Vec2{Y: radius}))
	p.CubeTo(ctr.Add(vec.Vec2{X: -k, Y: radius}), ctr.Add(vec.Vec2{X: -radius, Y: k}), ctr.Add(vec.Vec2{X: -radius}))
	p.CubeTo(ctr.Add(vec.Vec2{X: -radius, Y: -k}), ctr.Add(vec.Vec2{X: -k, Y: -radius}), ctr.Add(vec.Vec2{Y: -radius}))
	p.CubeTo(ctr.Add(vec.Vec2{X: k, Y: -radius}), ctr.Add(vec.Vec2{X: radius, Y: -k}), ctr.Add(vec.Vec2{X: radius}))
	p.Close()
	c.r.FillNonZero(p.All(), c.painter(c.fill))
}

// DrawText implements [draw.TextSink].
func (c *Canvas) DrawText(x, y float64, text string, style draw.TextStyle, anchor draw.Anchor) {
	if text == "" {
		return
	}
	m := c.face.Metrics()
	width := float64(font.MeasureString(c.face, text)) / 64
	height := float64(m.Ascent+m.Descent) / 64
	ascent := float64(m.Ascent) / 64

	left := x*c.scale - anchor.X*width
	top := y*c.scale - anchor.Y*height
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(draw.Fade(style.Color, 1)),
		Face: c.face,
		Dot:  fixed.P(int(math.Round(left)), int(math.Round(top+ascent))),
	}
	d.DrawString(text)
}

// Clear implements [draw.Sink].
func (c *Canvas) Clear() {
	bg := c.Background
	if bg == nil {
		bg = color.Transparent
	}
	imgdraw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg), image.Point{}, imgdraw.Src)
	c.path.Reset()
}

// painter returns an EmitFunc which composites col onto the image, using
// the coverage values as additional opacity.
func (c *Canvas) painter(col color.NRGBA) EmitFunc {
	sr, sg, sb := float32(col.R), float32(col.G), float32(col.B)
	sa := float32(col.A) / 255
	return func(y, xMin int, coverage []float32) {
		off := c.img.PixOffset(xMin, y)
		pix := c.img.Pix[off : off+4*len(coverage)]
		for i, cov := range coverage {
			a := sa * cov
			if a <= 0 {
				continue
			}
			px := pix[4*i : 4*i+4 : 4*i+4]
			keep := 1 - a
			px[0] = uint8(sr*a + float32(px[0])*keep + 0.5)
			px[1] = uint8(sg*a + float32(px[1])*keep + 0.5)
			px[2] = uint8(sb*a + float32(px[2])*keep + 0.5)
			px[3] = uint8(255*a + float32(px[3])*keep + 0.5)
		}
	}
}
