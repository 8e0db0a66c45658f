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

// Package raster converts paths into anti-aliased pixel coverage and
// provides [Canvas], a drawing sink backed by an RGBA image.
//
// Coverage is computed exactly, as the signed area of the path within each
// pixel, using the usual cover/area accumulation: every edge adds its
// vertical extent ("cover") to the pixel column it crosses, weighted by the
// horizontal position of the crossing ("area"), and a left-to-right prefix
// sum over each scanline turns these into coverage values.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline, for the pixels starting at
// xMin.  Coverage values range from 0 (outside) to 1 (inside).  The slice is
// only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasterizer turns paths into coverage values.  Internal buffers are kept
// between calls, so a single Rasterizer should be reused for many paths.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  It must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this device-space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap and Join select the shape of line ends and corners.
	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to the width.
	MiterLimit float64

	edges            []edge
	devXMin, devXMax float64
	devYMin, devYMax float64
	cover, area      []float32
	rowUsed          []bool
	run, clean, poly []vec.Vec2
}

// edge is a non-horizontal line segment in device space.
type edge struct {
	x0, y0, x1, y1 float64
	dxdy           float64
}

func (e *edge) xAt(y float64) float64 { return e.x0 + e.dxdy*(y-e.y0) }

// NewRasterizer returns a Rasterizer for the given clip rectangle, with an
// identity transformation and a one unit wide stroke with butt caps and
// miter joins.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Reset releases the internal buffers.
func (r *Rasterizer) Reset() {
	r.edges = nil
	r.cover = nil
	r.area = nil
	r.rowUsed = nil
	r.run, r.clean, r.poly = nil, nil, nil
}

// FillNonZero fills p using the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillNonZero(p path.Path, emit EmitFunc) {
	r.startEdges()
	r.walk(p, r.addFillPolygon)
	r.fill(nonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillEvenOdd(p path.Path, emit EmitFunc) {
	r.startEdges()
	r.walk(p, r.addFillPolygon)
	r.fill(evenOdd, emit)
}

func (r *Rasterizer) addFillPolygon(pts []vec.Vec2, _ bool) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		r.addEdge(pts[i-1], pts[i])
	}
	r.addEdge(pts[len(pts)-1], pts[0])
}

// walk flattens p and calls fn once for every subpath, with the vertices of
// the subpath's polygonal approximation.
func (r *Rasterizer) walk(p path.Path, fn func(pts []vec.Vec2, closed bool)) {
	r.run = r.run[:0]
	var start vec.Vec2
	appendPt := func(_, to vec.Vec2) { r.run = append(r.run, to) }
	current := func() vec.Vec2 {
		if len(r.run) == 0 {
			r.run = append(r.run, start)
		}
		return r.run[len(r.run)-1]
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if len(r.run) > 0 {
				fn(r.run, false)
			}
			start = pts[0]
			r.run = append(r.run[:0], start)
		case path.CmdLineTo:
			current()
			r.run = append(r.run, pts[0])
		case path.CmdQuadTo:
			r.flattenQuadratic(current(), pts[0], pts[1], appendPt)
		case path.CmdCubeTo:
			r.flattenCubic(current(), pts[0], pts[1], pts[2], appendPt)
		case path.CmdClose:
			if len(r.run) > 0 {
				fn(r.run, true)
			}
			r.run = r.run[:0]
		}
	}
	if len(r.run) > 0 {
		fn(r.run, false)
	}
}

// devScale returns the linear part of the CTM applied to v.
func (r *Rasterizer) devScale(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	dev := r.devScale(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.devScale(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.devScale(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		// Wang's formula
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) startEdges() {
	r.edges = r.edges[:0]
}

// addEdge transforms a user-space segment to device space and adds it to
// the edge list.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	if len(r.edges) == 0 {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
	} else {
		r.devXMin = min(r.devXMin, x0, x1)
		r.devXMax = max(r.devXMax, x0, x1)
		r.devYMin = min(r.devYMin, y0, y1)
		r.devYMax = max(r.devYMax, y0, y1)
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})
}

type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

// fill rasterizes the current edge list.
func (r *Rasterizer) fill(rule fillRule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	w, h := xMax-xMin, yMax-yMin

	r.cover = slices.Grow(r.cover[:0], w*h)[:w*h]
	r.area = slices.Grow(r.area[:0], w*h)[:w*h]
	r.rowUsed = slices.Grow(r.rowUsed[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		lo := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		hi := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * w
			accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin)
			r.rowUsed[row] = true
		}
	}

	for row := range h {
		if !r.rowUsed[row] {
			continue
		}
		off := row * w
		cov := r.cover[off : off+w]
		integrate(cov, r.area[off:off+w], rule)
		if span, offset := trimZeros(cov); span != nil {
			emit(yMin+row, xMin+offset, span)
		}
	}
}

// accumulate adds the contribution of the part of e which lies in scanline
// y.  Index 0 of cover and area corresponds to pixel column x0.  Edge parts
// left of x0 contribute full coverage to the first column.
func accumulate(e *edge, y int, cover, area []float32, x0 int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	add := func(pix int, dy, xMid float64) {
		c := sign * float32(dy)
		if pix < x0 {
			cover[0] += c
			area[0] += c
			return
		}
		i := pix - x0
		if i >= len(cover) {
			return
		}
		cover[i] += c
		area[i] += c * float32(float64(pix+1)-xMid)
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	if xa > xb {
		xa, xb = xb, xa
	}
	pa, pb := int(math.Floor(xa)), int(math.Floor(xb))
	if pa == pb {
		add(pa, yBot-yTop, (xa+xb)/2)
		return
	}
	slope := (yBot - yTop) / (xb - xa)
	for pix := pa; pix <= pb; pix++ {
		u := max(xa, float64(pix))
		v := min(xb, float64(pix+1))
		if v > u {
			add(pix, (v-u)*slope, (u+v)/2)
		}
	}
}

// integrate turns the accumulated cover and area values of one scanline
// into coverage, in place.
func integrate(cover, area []float32, rule fillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == evenOdd {
			raw -= 2 * float32(int(raw/2))
			if raw > 1 {
				raw = 2 - raw
			}
		} else if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, together with its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6
)
