// seehuhn.de/go/love - constants for the LÖVE graphics API
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

// Package swatch provides reference geometry for the shape-related LÖVE
// constants.
//
// The shapes use the engine's conventions: the y axis points down and
// angles are measured in radians, clockwise on screen, starting at the
// positive x axis.
package swatch

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/love"
)

// Arc returns the outline of a circular arc around c with radius r, from
// angle a1 to angle a2. A span of a full turn or more gives a closed
// circle for every arc type, and an empty span gives an empty path.
//
// In fill mode, open arcs are drawn like closed arcs.
func Arc(t love.ArcType, mode love.DrawMode, c vec.Vec2, r, a1, a2 float64) *path.Data {
	span := a2 - a1
	p := &path.Data{}
	switch {
	case span == 0:
		return p
	case span >= 2*math.Pi:
		span = 2 * math.Pi
		t = love.ArcClosed
	case span <= -2*math.Pi:
		span = -2 * math.Pi
		t = love.ArcClosed
	}
	if t == love.ArcOpen && mode == love.DrawFill {
		t = love.ArcClosed
	}

	start := polar(c, r, a1)
	if t == love.ArcPie {
		p = p.MoveTo(c).LineTo(start)
	} else {
		p = p.MoveTo(start)
	}
	p = appendArc(p, c, r, a1, span)
	if t != love.ArcOpen {
		p = p.Close()
	}
	return p
}

// appendArc adds cubic Bézier segments of at most 90° each, approximating
// the arc which starts at angle a and turns by span. The current point
// must be the start of the arc.
func appendArc(p *path.Data, c vec.Vec2, r, a, span float64) *path.Data {
	n := int(math.Ceil(math.Abs(span) / maxArcStep))
	if n == 0 {
		return p
	}
	step := span / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * r

	for i := range n {
		a0 := a + float64(i)*step
		a1 := a0 + step
		p0 := polar(c, r, a0)
		p3 := polar(c, r, a1)
		p1 := p0.Add(tangent(a0).Mul(k))
		p2 := p3.Sub(tangent(a1).Mul(k))
		p = p.CubeTo(p1, p2, p3)
	}
	return p
}

// polar returns the point at angle a on the circle around c with radius r.
func polar(c vec.Vec2, r, a float64) vec.Vec2 {
	return vec.Vec2{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
}

// tangent returns the unit tangent of the circle at angle a, pointing in
// the direction of increasing angles.
func tangent(a float64) vec.Vec2 {
	return vec.Vec2{X: -math.Sin(a), Y: math.Cos(a)}
}

// Corner returns the polyline a→b→c. For LineJoinNone the two segments
// are separate subpaths, so that no join is drawn at b.
func Corner(j love.LineJoin, a, b, c vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(a).LineTo(b)
	if j == love.LineJoinNone {
		p = p.MoveTo(b)
	}
	return p.LineTo(c)
}

// JoinStyle returns the PDF line join style for j. LineJoinNone has no
// PDF equivalent; the function then returns LineJoinMiter and false, and
// the caller must split the path instead, as [Corner] does.
func JoinStyle(j love.LineJoin) (graphics.LineJoinStyle, bool) {
	switch j {
	case love.LineJoinMiter:
		return graphics.LineJoinMiter, true
	case love.LineJoinBevel:
		return graphics.LineJoinBevel, true
	default:
		return graphics.LineJoinMiter, false
	}
}

// Rect returns the outline of r as a closed path.
func Rect(r rect.Rect) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
}

// maxArcStep is the largest angle which is approximated by a single
// Bézier segment.
const maxArcStep = math.Pi / 2
