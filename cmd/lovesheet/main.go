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

// Command lovesheet writes a one-page PDF showing the LÖVE arc types,
// line joins and draw modes.
package main

import (
	"flag"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/love"
	"seehuhn.de/go/love/swatch"
)

func main() {
	out := flag.String("o", "love-sheet.pdf", "output file")
	flag.Parse()

	if err := writeSheet(*out, swatch.Sheet()); err != nil {
		panic(fmt.Errorf("%s: %w", *out, err))
	}
}

func writeSheet(fname string, sheet []swatch.Swatch) error {
	bounds := swatch.Bounds()

	// Page size in points; one sheet unit is one point.
	paper := &pdf.Rectangle{
		URx: bounds.URx,
		URy: bounds.URy,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the swatches use the engine's
	// top-left origin.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, bounds.URy})

	// PDF has no quadratic curves, so these are converted to cubics.
	emit := func(p *path.Data) {
		for cmd, pts := range p.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	for i, s := range sheet {
		// alternate the cell background, so that the grid is visible
		bg := 1.0
		if i%2 == 1 {
			bg = 0.92
		}
		page.SetFillColor(color.DeviceGray(bg))
		page.Rectangle(s.Cell.LLx, s.Cell.LLy, s.Cell.URx-s.Cell.LLx, s.Cell.URy-s.Cell.LLy)
		page.Fill()

		page.SetFillColor(color.DeviceGray(0))
		page.SetStrokeColor(color.DeviceGray(0))

		// Set stroke parameters before path construction (PDF requirement)
		if s.Mode == love.DrawLine {
			join, _ := swatch.JoinStyle(s.Join)
			page.SetLineWidth(s.Width)
			page.SetLineCap(graphics.LineCapButt)
			page.SetLineJoin(join)
			page.SetMiterLimit(10)
		}

		emit(s.Path)

		switch s.Mode {
		case love.DrawFill:
			page.Fill()
		default:
			page.Stroke()
		}
	}

	return page.Close()
}
