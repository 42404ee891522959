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

package swatch

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/love"
)

// Layout of the reference sheet.
const (
	CellSize = 80.0 // width and height of one cell
	Columns  = 3
	Rows     = 4

	cellMargin = 14.0
	arcWidth   = 3.0
	joinWidth  = 10.0
)

// Swatch is one cell of the reference sheet.
type Swatch struct {
	Name  string        // e.g. "arc_pie_fill"
	Cell  rect.Rect     // the area reserved for the swatch
	Path  *path.Data    // the shape, in sheet coordinates
	Mode  love.DrawMode // outline or fill
	Join  love.LineJoin // join style for outlines
	Width float64       // line width for outlines
}

// Bounds returns the area covered by the sheet.
func Bounds() rect.Rect {
	return rect.Rect{URx: Columns * CellSize, URy: Rows * CellSize}
}

// Sheet returns all swatches of the reference sheet:
//
//   - rows 0 and 1: the arc types, drawn as lines and filled,
//   - row 2: the line joins,
//   - row 3: a rectangle in both draw modes.
func Sheet() []Swatch {
	var res []Swatch

	for row, mode := range love.DrawModeValues() {
		for col, t := range love.ArcTypeValues() {
			cell := cellAt(col, row)
			c := center(cell)
			r := CellSize/2 - cellMargin
			res = append(res, Swatch{
				Name:  "arc_" + t.String() + "_" + mode.String(),
				Cell:  cell,
				Path:  Arc(t, mode, c, r, math.Pi/6, 11*math.Pi/6),
				Mode:  mode,
				Join:  love.LineJoinMiter,
				Width: arcWidth,
			})
		}
	}

	for col, j := range love.LineJoinValues() {
		cell := cellAt(col, 2)
		a := vec.Vec2{X: cell.LLx + cellMargin, Y: cell.URy - cellMargin}
		b := vec.Vec2{X: cell.LLx + CellSize/2, Y: cell.LLy + cellMargin + joinWidth/2}
		c := vec.Vec2{X: cell.URx - cellMargin, Y: cell.URy - cellMargin}
		res = append(res, Swatch{
			Name:  "join_" + j.String(),
			Cell:  cell,
			Path:  Corner(j, a, b, c),
			Mode:  love.DrawLine,
			Join:  j,
			Width: joinWidth,
		})
	}

	for col, mode := range love.DrawModeValues() {
		cell := cellAt(col, 3)
		box := rect.Rect{
			LLx: cell.LLx + cellMargin,
			LLy: cell.LLy + cellMargin,
			URx: cell.URx - cellMargin,
			URy: cell.URy - cellMargin,
		}
		res = append(res, Swatch{
			Name:  "rectangle_" + mode.String(),
			Cell:  cell,
			Path:  Rect(box),
			Mode:  mode,
			Join:  love.LineJoinMiter,
			Width: arcWidth,
		})
	}

	return res
}

// cellAt returns the cell in the given column and row. Row 0 is at the
// top.
func cellAt(col, row int) rect.Rect {
	x := float64(col) * CellSize
	y := float64(row) * CellSize
	return rect.Rect{LLx: x, LLy: y, URx: x + CellSize, URy: y + CellSize}
}

func center(r rect.Rect) vec.Vec2 {
	return vec.Vec2{X: (r.LLx + r.URx) / 2, Y: (r.LLy + r.URy) / 2}
}
