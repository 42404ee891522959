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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/love"
	"seehuhn.de/go/love/swatch"
)

func TestWriteSheet(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "sheet.pdf")
	if err := writeSheet(fname, swatch.Sheet()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.7")) {
		t.Errorf("output does not start with a PDF-1.7 header: %.16q", data)
	}
}

// TestWriteQuadratic checks that paths with quadratic segments, which PDF
// cannot represent directly, are written.
func TestWriteQuadratic(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 70}).
		QuadTo(vec.Vec2{X: 40, Y: 10}, vec.Vec2{X: 70, Y: 70}).
		Close()
	sheet := []swatch.Swatch{
		{
			Name:  "quadratic_line",
			Cell:  rect.Rect{URx: 80, URy: 80},
			Path:  p,
			Mode:  love.DrawLine,
			Join:  love.LineJoinBevel,
			Width: 2,
		},
		{
			Name: "quadratic_fill",
			Cell: rect.Rect{LLx: 80, URx: 160, URy: 80},
			Path: p,
			Mode: love.DrawFill,
		},
	}

	fname := filepath.Join(t.TempDir(), "quadratic.pdf")
	if err := writeSheet(fname, sheet); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(fname)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty output file")
	}
}
