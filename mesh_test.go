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

package love

import "testing"

func TestMeshPrimitives(t *testing.T) {
	cases := []struct {
		mode MeshDrawMode
		n    int
		want int
	}{
		{MeshTriangles, 0, 0},
		{MeshTriangles, 2, 0},
		{MeshTriangles, 3, 1},
		{MeshTriangles, 7, 2},
		{MeshStrip, 3, 1},
		{MeshStrip, 6, 4},
		{MeshFan, 2, 0},
		{MeshFan, 5, 3},
		{MeshPoints, 0, 0},
		{MeshPoints, 1, 1},
		{MeshPoints, 9, 9},
		{MeshDrawMode(8), 9, 0},
	}
	for _, c := range cases {
		if got := c.mode.Primitives(c.n); got != c.want {
			t.Errorf("%s with %d vertices: got %d primitives, want %d",
				c.mode, c.n, got, c.want)
		}
	}
}
