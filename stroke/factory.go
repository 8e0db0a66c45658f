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

package stroke

import "sync"

// A Factory hands out decorators by style name.
//
// Get returns one shared instance per style, for callers which run a single
// stroke at a time.  Acquire and Release implement stroke sessions: an
// acquired decorator is reset and belongs to the caller until it is released,
// so that overlapping strokes of the same style never share pattern state.
//
// A Factory is safe for concurrent use.
type Factory struct {
	mu     sync.Mutex
	shared map[Style]Decorator
	free   map[Style][]Decorator
	params map[Style]Params
}

// Default is the factory used when no other factory is specified.
var Default = &Factory{}

// normalize maps unknown styles to Solid.
func normalize(style Style) Style {
	return ParseStyle(string(style))
}

// Get returns the shared decorator for the given style.  Repeated calls with
// the same style return the same instance.  Unknown styles give the solid
// decorator.
func (f *Factory) Get(style Style) Decorator {
	style = normalize(style)

	f.mu.Lock()
	defer f.mu.Unlock()

	if d, ok := f.shared[style]; ok {
		return d
	}
	if f.shared == nil {
		f.shared = make(map[Style]Decorator)
	}
	d := f.newLocked(style)
	f.shared[style] = d
	return d
}

// SetParams sets the pattern parameters for all decorators of the given
// style which are created or acquired from now on, and updates the shared
// instance.
func (f *Factory) SetParams(style Style, p Params) {
	style = normalize(style)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.params == nil {
		f.params = make(map[Style]Params)
	}
	f.params[style] = p
	if d, ok := f.shared[style]; ok {
		d.SetParams(p)
	}
}

// Acquire returns a decorator of the given style for exclusive use by the
// caller.  The decorator is reset and carries the parameters set with
// [Factory.SetParams].  Return it with [Factory.Release] when the stroke is
// complete.
func (f *Factory) Acquire(style Style) Decorator {
	style = normalize(style)

	f.mu.Lock()
	defer f.mu.Unlock()

	var d Decorator
	if pool := f.free[style]; len(pool) > 0 {
		d = pool[len(pool)-1]
		f.free[style] = pool[:len(pool)-1]
		f.applyLocked(d, style)
	} else {
		d = f.newLocked(style)
	}
	d.Reset()
	return d
}

// Release returns a decorator obtained from [Factory.Acquire] to the pool.
// d must not be used after this call.
func (f *Factory) Release(d Decorator) {
	if d == nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.free == nil {
		f.free = make(map[Style][]Decorator)
	}
	f.free[d.Style()] = append(f.free[d.Style()], d)
}

func (f *Factory) newLocked(style Style) Decorator {
	d := New(style)
	f.applyLocked(d, style)
	return d
}

// applyLocked restores the factory parameters of d, undoing changes a
// previous session made.
func (f *Factory) applyLocked(d Decorator, style Style) {
	d.SetParams(DefaultParams())
	if p, ok := f.params[style]; ok {
		d.SetParams(p)
	}
}
