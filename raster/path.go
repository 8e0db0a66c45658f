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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Path stores a sequence of path segments.  The building methods return
// the path, so that calls can be chained.  The zero value is an empty path.
type Path struct {
	Cmds   []path.Command
	Coords []vec.Vec2
}

// MoveTo starts a new subpath at a.
func (p *Path) MoveTo(a vec.Vec2) *Path {
	p.Cmds = append(p.Cmds, path.CmdMoveTo)
	p.Coords = append(p.Coords, a)
	return p
}

// LineTo appends a straight line to a.
func (p *Path) LineTo(a vec.Vec2) *Path {
	p.Cmds = append(p.Cmds, path.CmdLineTo)
	p.Coords = append(p.Coords, a)
	return p
}

// QuadTo appends a quadratic Bézier curve with control point c and end
// point a.
func (p *Path) QuadTo(c, a vec.Vec2) *Path {
	p.Cmds = append(p.Cmds, path.CmdQuadTo)
	p.Coords = append(p.Coords, c, a)
	return p
}

// CubeTo appends a cubic Bézier curve with control points c1, c2 and end
// point a.
func (p *Path) CubeTo(c1, c2, a vec.Vec2) *Path {
	p.Cmds = append(p.Cmds, path.CmdCubeTo)
	p.Coords = append(p.Coords, c1, c2, a)
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.Cmds = append(p.Cmds, path.CmdClose)
	return p
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	return len(p.Cmds) == 0
}

// Reset removes all segments, keeping the allocated storage.
func (p *Path) Reset() {
	p.Cmds = p.Cmds[:0]
	p.Coords = p.Coords[:0]
}

// All iterates over the segments of the path.
func (p *Path) All() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		k := 0
		for _, cmd := range p.Cmds {
			var n int
			switch cmd {
			case path.CmdMoveTo, path.CmdLineTo:
				n = 1
			case path.CmdQuadTo:
				n = 2
			case path.CmdCubeTo:
				n = 3
			}
			if !yield(cmd, p.Coords[k:k+n]) {
				return
			}
			k += n
		}
	}
}
