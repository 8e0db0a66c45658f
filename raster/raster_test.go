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
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// coverageGrid collects the coverage values emitted for a w×h clip area.
type coverageGrid struct {
	w, h int
	cov  []float32
}

func newCoverageGrid(w, h int) *coverageGrid {
	return &coverageGrid{w: w, h: h, cov: make([]float32, w*h)}
}

func (g *coverageGrid) emit(y, xMin int, coverage []float32) {
	copy(g.cov[y*g.w+xMin:], coverage)
}

func (g *coverageGrid) at(x, y int) float64 {
	return float64(g.cov[y*g.w+x])
}

func (g *coverageGrid) sum() float64 {
	total := 0.0
	for _, c := range g.cov {
		total += float64(c)
	}
	return total
}

func clipRect(w, h int) rect.Rect {
	return rect.Rect{URx: float64(w), URy: float64(h)}
}

func rectangle(x1, y1, x2, y2 float64) *Path {
	return (&Path{}).
		MoveTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y2}).
		LineTo(vec.Vec2{X: x1, Y: y2}).
		Close()
}

// TestTriangleCoverage checks exact coverage values for a thin triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has the diagonal edge y = x/10,
// so pixel x is covered by (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	p := (&Path{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	g := newCoverageGrid(10, 1)
	NewRasterizer(clipRect(10, 1)).FillNonZero(p.All(), g.emit)

	for x := range 10 {
		want := float64(2*x+1) / 20
		if got := g.at(x, 0); math.Abs(got-want) > 1e-6 {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, want, got)
		}
	}
}

func TestPartialPixels(t *testing.T) {
	g := newCoverageGrid(4, 2)
	NewRasterizer(clipRect(4, 2)).FillNonZero(rectangle(0.5, 0, 2.5, 1.25).All(), g.emit)

	want := [][]float64{
		{0.5, 1, 0.5, 0},
		{0.125, 0.25, 0.125, 0},
	}
	for y, row := range want {
		for x, w := range row {
			if got := g.at(x, y); math.Abs(got-w) > 1e-6 {
				t.Errorf("pixel (%d,%d): expected %g, got %g", x, y, w, got)
			}
		}
	}
}

func TestFillRules(t *testing.T) {
	star := &Path{}
	order := []int{0, 2, 4, 1, 3}
	for i, k := range order {
		phi := float64(k)*2*math.Pi/5 - math.Pi/2
		pt := vec.Vec2{X: 32 + 25*math.Cos(phi), Y: 32 + 25*math.Sin(phi)}
		if i == 0 {
			star.MoveTo(pt)
		} else {
			star.LineTo(pt)
		}
	}
	star.Close()

	r := NewRasterizer(clipRect(64, 64))

	nz := newCoverageGrid(64, 64)
	r.FillNonZero(star.All(), nz.emit)
	if got := nz.at(32, 32); got != 1 {
		t.Errorf("nonzero: centre coverage %g, want 1", got)
	}

	eo := newCoverageGrid(64, 64)
	r.FillEvenOdd(star.All(), eo.emit)
	if got := eo.at(32, 32); got != 0 {
		t.Errorf("even-odd: centre coverage %g, want 0", got)
	}
	if nz.sum() <= eo.sum() {
		t.Errorf("nonzero area %g should exceed even-odd area %g", nz.sum(), eo.sum())
	}
}

func TestFillArea(t *testing.T) {
	cases := []struct {
		name string
		p    *Path
		want float64
	}{
		{"square", rectangle(10, 10, 44, 44), 34 * 34},
		{"offset", rectangle(10.3, 10.7, 20.1, 30.2), 9.8 * 19.5},
		{"clipped", rectangle(-10, -10, 10, 10), 100},
		{"outside", rectangle(70, 70, 80, 80), 0},
		{"quad", (&Path{}).
			MoveTo(vec.Vec2{X: 0, Y: 40}).
			QuadTo(vec.Vec2{X: 20, Y: 0}, vec.Vec2{X: 40, Y: 40}).
			Close(), 2.0 / 3 * 40 * 20},
	}
	r := NewRasterizer(clipRect(64, 64))
	for _, c := range cases {
		g := newCoverageGrid(64, 64)
		r.FillNonZero(c.p.All(), g.emit)
		if got := g.sum(); math.Abs(got-c.want) > 0.01*max(c.want, 1) {
			t.Errorf("%s: area %g, want %g", c.name, got, c.want)
		}
	}
}

// octagonArea is the area of the polygon used for round caps and joins of
// small radius at the default flatness.
func octagonArea(radius float64) float64 {
	return 2 * math.Sqrt2 * radius * radius
}

func TestStrokeArea(t *testing.T) {
	line := (&Path{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 30, Y: 10})
	corner := (&Path{}).
		MoveTo(vec.Vec2{X: 0, Y: 10}).
		LineTo(vec.Vec2{X: 20, Y: 10}).
		LineTo(vec.Vec2{X: 20, Y: 30})

	cases := []struct {
		name  string
		p     *Path
		width float64
		cap   graphics.LineCapStyle
		join  graphics.LineJoinStyle
		want  float64
		tol   float64
	}{
		{"butt", line, 4, graphics.LineCapButt, graphics.LineJoinMiter, 80, 1e-3},
		{"square", line, 4, graphics.LineCapSquare, graphics.LineJoinMiter, 96, 1e-3},
		{"round", line, 4, graphics.LineCapRound, graphics.LineJoinMiter, 80 + octagonArea(2), 1e-3},
		{"miter", corner, 2, graphics.LineCapButt, graphics.LineJoinMiter, 80, 1e-3},
		{"bevel", corner, 2, graphics.LineCapButt, graphics.LineJoinBevel, 79.5, 1e-3},
		{"roundjoin", corner, 2, graphics.LineCapButt, graphics.LineJoinRound, 79 + octagonArea(1)/4, 1e-3},
	}

	r := NewRasterizer(clipRect(64, 64))
	for _, c := range cases {
		r.Width = c.width
		r.Cap = c.cap
		r.Join = c.join
		g := newCoverageGrid(64, 64)
		r.Stroke(c.p.All(), g.emit)
		if got := g.sum(); math.Abs(got-c.want) > c.tol {
			t.Errorf("%s: stroke area %g, want %g", c.name, got, c.want)
		}
	}
}

func TestStrokeClosed(t *testing.T) {
	r := NewRasterizer(clipRect(64, 64))
	r.Width = 2
	g := newCoverageGrid(64, 64)
	r.Stroke(rectangle(10, 10, 30, 30).All(), g.emit)

	// outer square 22×22 minus inner square 18×18
	if got, want := g.sum(), 22.0*22-18*18; math.Abs(got-want) > 1e-3 {
		t.Errorf("closed stroke area %g, want %g", got, want)
	}
	if got := g.at(20, 20); got != 0 {
		t.Errorf("interior coverage %g, want 0", got)
	}
}

func TestStrokeDegenerate(t *testing.T) {
	dot := (&Path{}).
		MoveTo(vec.Vec2{X: 20, Y: 20}).
		LineTo(vec.Vec2{X: 20, Y: 20})

	r := NewRasterizer(clipRect(64, 64))
	r.Width = 6

	g := newCoverageGrid(64, 64)
	r.Stroke(dot.All(), g.emit)
	if got := g.sum(); got != 0 {
		t.Errorf("butt cap: area %g, want 0", got)
	}

	r.Cap = graphics.LineCapRound
	g = newCoverageGrid(64, 64)
	r.Stroke(dot.All(), g.emit)
	if got, want := g.sum(), octagonArea(3); math.Abs(got-want) > 1e-3 {
		t.Errorf("round cap: area %g, want %g", got, want)
	}

	r.Width = 0
	g = newCoverageGrid(64, 64)
	r.Stroke(dot.All(), g.emit)
	if got := g.sum(); got != 0 {
		t.Errorf("zero width: area %g, want 0", got)
	}
}

func TestCTM(t *testing.T) {
	r := NewRasterizer(clipRect(64, 64))
	r.CTM = matrix.Scale(2, 3)
	g := newCoverageGrid(64, 64)
	r.FillNonZero(rectangle(1, 1, 5, 5).All(), g.emit)
	if got, want := g.sum(), 4.0*4*6; math.Abs(got-want) > 1e-3 {
		t.Errorf("scaled area %g, want %g", got, want)
	}
	if got := g.at(2, 3); got != 1 {
		t.Errorf("pixel (2,3): coverage %g, want 1", got)
	}
	if got := g.at(1, 3); got != 0 {
		t.Errorf("pixel (1,3): coverage %g, want 0", got)
	}
}

func TestReset(t *testing.T) {
	r := NewRasterizer(clipRect(16, 16))
	g := newCoverageGrid(16, 16)
	r.FillNonZero(rectangle(2, 2, 6, 6).All(), g.emit)
	r.Reset()

	h := newCoverageGrid(16, 16)
	r.FillNonZero(rectangle(2, 2, 6, 6).All(), h.emit)
	if g.sum() != h.sum() {
		t.Errorf("coverage changed after Reset: %g != %g", g.sum(), h.sum())
	}
}

func TestPathAll(t *testing.T) {
	p := (&Path{}).
		MoveTo(vec.Vec2{X: 1, Y: 2}).
		QuadTo(vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 5, Y: 6}).
		CubeTo(vec.Vec2{X: 7}, vec.Vec2{X: 8}, vec.Vec2{X: 9}).
		Close()

	var lens []int
	var last vec.Vec2
	for _, pts := range p.All() {
		lens = append(lens, len(pts))
		if len(pts) > 0 {
			last = pts[len(pts)-1]
		}
	}
	if want := []int{1, 2, 3, 0}; !slices.Equal(lens, want) {
		t.Errorf("point counts %v, want %v", lens, want)
	}
	if last != (vec.Vec2{X: 9}) {
		t.Errorf("last point %v", last)
	}

	p.Reset()
	if !p.Empty() {
		t.Error("path not empty after Reset")
	}
}

// TestFillTransformed checks that paths produced by the geom path helpers
// can be filled directly.
func TestFillTransformed(t *testing.T) {
	g := newCoverageGrid(8, 8)
	p := rectangle(0, 0, 2, 2).All().Transform(matrix.Translate(3, 4))
	NewRasterizer(clipRect(8, 8)).FillNonZero(p, g.emit)
	if s := g.sum(); math.Abs(s-4) > 1e-5 {
		t.Errorf("covered area %g, want 4", s)
	}
	if c := g.at(3, 4); math.Abs(c-1) > 1e-6 {
		t.Errorf("coverage at (3,4) is %g", c)
	}
}
