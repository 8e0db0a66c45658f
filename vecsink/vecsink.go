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

// Package vecsink implements a drawing sink on top of tdewolff/canvas, for
// scalable SVG and PDF output with embedded Latin Modern fonts.
package vecsink

import (
	"errors"
	"image/color"
	"io"
	"strings"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/quadrant/draw"
)

// Format selects the output file format.
type Format int

// These are the supported output formats.
const (
	SVG Format = iota
	PDF
)

func (f Format) String() string {
	switch f {
	case SVG:
		return "svg"
	case PDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// ErrFormat is returned by WriteTo for unknown output formats.
var ErrFormat = errors.New("vecsink: unsupported output format")

// ptPerUnit converts pixel sizes to font sizes.  The canvas works in
// millimetres and we use one millimetre per pixel.
const ptPerUnit = 72 / 25.4

// DefaultFontSize is used for text styles without a size.
const DefaultFontSize = 11

// Surface is a [draw.TextSink] which records onto a tdewolff canvas.
type Surface struct {
	width, height float64

	c   *canvas.Canvas
	ctx *canvas.Context

	path     *canvas.Path
	pen      draw.StrokeStyle
	fill     color.NRGBA
	families map[string]*canvas.FontFamily
}

var _ draw.TextSink = (*Surface)(nil)

// New returns an empty surface of the given size.
func New(width, height float64) *Surface {
	s := &Surface{
		width:    width,
		height:   height,
		fill:     color.NRGBA{A: 255},
		pen:      draw.StrokeStyle{Width: 1, Alpha: 1},
		families: make(map[string]*canvas.FontFamily),
	}
	s.Clear()
	return s
}

// WriteTo renders the surface in the given format.
func (s *Surface) WriteTo(w io.Writer, format Format) error {
	switch format {
	case SVG:
		out := svg.New(w, s.width, s.height, nil)
		s.c.RenderTo(out)
		return out.Close()
	case PDF:
		out := pdf.New(w, s.width, s.height, nil)
		s.c.RenderTo(out)
		return out.Close()
	default:
		return ErrFormat
	}
}

// MoveTo implements [draw.Sink].
func (s *Surface) MoveTo(x, y float64) {
	s.path.MoveTo(x, y)
}

// LineTo implements [draw.Sink].
func (s *Surface) LineTo(x, y float64) {
	if s.path.Empty() {
		s.path.MoveTo(x, y)
		return
	}
	s.path.LineTo(x, y)
}

// CurveTo implements [draw.Sink].
func (s *Surface) CurveTo(cx, cy, x, y float64) {
	if s.path.Empty() {
		s.path.MoveTo(cx, cy)
	}
	s.path.QuadTo(cx, cy, x, y)
}

// SetStroke implements [draw.Sink].
func (s *Surface) SetStroke(style draw.StrokeStyle) {
	s.pen = style
}

// SetFill implements [draw.Sink].
func (s *Surface) SetFill(c color.Color, alpha float64) {
	s.fill = draw.Fade(c, alpha)
}

// Stroke implements [draw.Sink].
func (s *Surface) Stroke() {
	if !s.path.Empty() && s.pen.Width > 0 {
		s.ctx.SetFillColor(canvas.Transparent)
		s.ctx.SetStrokeColor(draw.Fade(s.pen.Color, s.pen.Alpha))
		s.ctx.SetStrokeWidth(s.pen.Width)
		s.ctx.DrawPath(0, 0, s.path)
	}
	s.path = &canvas.Path{}
}

// FillPolygon implements [draw.Sink].
func (s *Surface) FillPolygon(pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	p := &canvas.Path{}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	s.fillPath(0, 0, p)
}

// DrawCircle implements [draw.Sink].
func (s *Surface) DrawCircle(x, y, r float64) {
	if !(r > 0) {
		return
	}
	s.fillPath(x, y, canvas.Circle(r))
}

func (s *Surface) fillPath(x, y float64, p *canvas.Path) {
	s.ctx.SetStrokeColor(canvas.Transparent)
	s.ctx.SetFillColor(s.fill)
	s.ctx.DrawPath(x, y, p)
}

// DrawText implements [draw.TextSink].  The font name selects one of the
// Latin Modern families "roman" (the default), "sans" or "mono".
func (s *Surface) DrawText(x, y float64, text string, style draw.TextStyle, anchor draw.Anchor) {
	if text == "" {
		return
	}
	family, err := s.family(style.Font)
	if err != nil {
		return
	}
	size := style.Size
	if !(size > 0) {
		size = DefaultFontSize
	}
	face := family.Face(size*ptPerUnit, draw.Fade(style.Color, 1), canvas.FontRegular, canvas.FontNormal)

	align := canvas.Left
	switch {
	case anchor.X >= 0.75:
		align = canvas.Right
	case anchor.X >= 0.25:
		align = canvas.Center
	}
	m := face.Metrics()
	top := y - anchor.Y*(m.Ascent+m.Descent)
	s.ctx.DrawText(x, top+m.Ascent, canvas.NewTextLine(face, text, align))
}

// family returns the font family for the given name, loading it on first
// use.
func (s *Surface) family(name string) (*canvas.FontFamily, error) {
	name = strings.ToLower(name)
	var data []byte
	switch name {
	case "sans":
		data = lmsans10regular.TTF
	case "mono":
		data = lmmono10regular.TTF
	default:
		name = "roman"
		data = lmroman10regular.TTF
	}
	if f, ok := s.families[name]; ok {
		return f, nil
	}
	f := canvas.NewFontFamily("lm" + name)
	if err := f.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	s.families[name] = f
	return f, nil
}

// Clear implements [draw.Sink].
func (s *Surface) Clear() {
	s.c = canvas.New(s.width, s.height)
	s.ctx = canvas.NewContext(s.c)
	s.ctx.SetCoordSystem(canvas.CartesianIV)
	s.ctx.SetStrokeCapper(canvas.RoundCap)
	s.ctx.SetStrokeJoiner(canvas.RoundJoin)
	s.path = &canvas.Path{}
}
