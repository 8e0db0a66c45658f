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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke paints the outline of p using Width, Cap, Join and MiterLimit.
//
// The outline is the union of one rectangle per line segment, one join
// shape per corner and one cap shape per open end.  All shapes are added
// with the same orientation and filled with the nonzero rule, so that
// overlaps are painted once.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	d := r.Width / 2
	if !(d > 0) {
		return
	}
	r.startEdges()
	r.walk(p, func(pts []vec.Vec2, closed bool) {
		r.strokeSubpath(pts, closed, d)
	})
	r.fill(nonZero, emit)
}

// strokeSubpath adds the outline of one flattened subpath, with half width
// d, to the edge list.
func (r *Rasterizer) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	r.clean = r.clean[:0]
	for _, pt := range pts {
		if n := len(r.clean); n > 0 && pt.Sub(r.clean[n-1]).Length() < zeroLengthThreshold {
			continue
		}
		r.clean = append(r.clean, pt)
	}
	if closed && len(r.clean) > 2 && r.clean[0].Sub(r.clean[len(r.clean)-1]).Length() < zeroLengthThreshold {
		r.clean = r.clean[:len(r.clean)-1]
	}
	pts = r.clean

	if len(pts) < 2 {
		// a subpath without orientation is only visible with round caps
		if len(pts) == 1 && r.Cap == graphics.LineCapRound {
			r.addDisc(pts[0], d)
		}
		return
	}

	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	for i := range n {
		a, b := pts[i], pts[(i+1)%len(pts)]
		t := unit(b.Sub(a))
		if !closed && r.Cap == graphics.LineCapSquare {
			if i == 0 {
				a = a.Sub(t.Mul(d))
			}
			if i == n-1 {
				b = b.Add(t.Mul(d))
			}
		}
		nv := normal(t).Mul(d)
		r.addPolygon(a.Add(nv), b.Add(nv), b.Sub(nv), a.Sub(nv))
	}

	// joins at the interior vertices, and at the start of a closed path
	first, last := 1, len(pts)-1
	if closed {
		first, last = 0, len(pts)
	}
	for i := first; i < last; i++ {
		prev := pts[(i-1+len(pts))%len(pts)]
		cur := pts[i]
		next := pts[(i+1)%len(pts)]
		r.addJoin(cur, unit(cur.Sub(prev)), unit(next.Sub(cur)), d)
	}

	if !closed && r.Cap == graphics.LineCapRound {
		r.addDisc(pts[0], d)
		r.addDisc(pts[len(pts)-1], d)
	}
}

// addJoin fills the gap on the outer side of a corner at p, where the
// direction changes from t1 to t2.
func (r *Rasterizer) addJoin(p, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(cross) < collinearityThreshold && t1.Dot(t2) > 0 {
		return
	}
	if r.Join == graphics.LineJoinRound {
		r.addDisc(p, d)
		return
	}

	side := d
	if cross > 0 {
		side = -d
	}
	n1, n2 := normal(t1), normal(t2)
	a, b := p.Add(n1.Mul(side)), p.Add(n2.Mul(side))

	if r.Join == graphics.LineJoinMiter {
		sum := n1.Add(n2)
		if l2 := sum.Dot(sum); l2 > collinearityThreshold && 2/math.Sqrt(l2) <= r.MiterLimit {
			tip := p.Add(sum.Mul(2 * side / l2))
			r.addPolygon(p, a, tip, b)
			return
		}
	}
	r.addPolygon(p, a, b)
}

// addDisc adds a filled circle of radius rad centred at c.
func (r *Rasterizer) addDisc(c vec.Vec2, rad float64) {
	devRad := rad * math.Sqrt(math.Abs(r.CTM[0]*r.CTM[3]-r.CTM[1]*r.CTM[2]))
	n := 8
	if devRad > r.Flatness {
		n = max(n, int(math.Ceil(math.Pi/math.Acos(1-r.Flatness/devRad))))
	}
	r.poly = r.poly[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.poly = append(r.poly, c.Add(vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}.Mul(rad)))
	}
	r.addPolygon(r.poly...)
}

// addPolygon adds the edges of a closed polygon, in clockwise order with
// respect to y pointing up.  Degenerate polygons are skipped.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	switch {
	case math.Abs(area) < zeroLengthThreshold:
		return
	case area < 0:
		for i := range pts {
			r.addEdge(pts[i], pts[(i+1)%len(pts)])
		}
	default:
		for i := len(pts) - 1; i >= 0; i-- {
			r.addEdge(pts[(i+1)%len(pts)], pts[i])
		}
	}
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	return vec.Vec2{X: v.X / l, Y: v.Y / l}
}

// normal returns v rotated by 90 degrees counterclockwise.
func normal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}
