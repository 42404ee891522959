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

// SpriteBatchUsage is the expected update frequency of the vertex data of
// a SpriteBatch or Mesh. The engine uses it to choose a buffer type.
type SpriteBatchUsage int32

const (
	UsageStream  SpriteBatchUsage = iota // changes between every draw
	UsageDynamic                         // changes occasionally
	UsageStatic                          // not modified after creation
)

var spriteBatchUsageNames = [...]string{
	UsageStream:  "stream",
	UsageDynamic: "dynamic",
	UsageStatic:  "static",
}

func (u SpriteBatchUsage) String() string {
	return enumString("SpriteBatchUsage", spriteBatchUsageNames[:], u)
}

// IsValid reports whether u is one of the declared usage hints.
func (u SpriteBatchUsage) IsValid() bool { return inRange(spriteBatchUsageNames[:], u) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (u SpriteBatchUsage) MarshalText() ([]byte, error) {
	return marshalName("SpriteBatchUsage", spriteBatchUsageNames[:], u)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (u *SpriteBatchUsage) UnmarshalText(text []byte) error {
	return unmarshalName("SpriteBatchUsage", spriteBatchUsageNames[:], u, text)
}

// ParseSpriteBatchUsage returns the usage hint with the given LÖVE name.
func ParseSpriteBatchUsage(s string) (SpriteBatchUsage, error) {
	return parseName[SpriteBatchUsage]("SpriteBatchUsage", spriteBatchUsageNames[:], s)
}

// SpriteBatchUsageValues returns all usage hints in declaration order.
func SpriteBatchUsageValues() []SpriteBatchUsage {
	return values[SpriteBatchUsage](spriteBatchUsageNames[:])
}

// MeshDrawMode is the way the vertices of a Mesh are assembled into
// primitives.
type MeshDrawMode int32

const (
	// MeshTriangles draws every group of three vertices as a separate
	// triangle.
	MeshTriangles MeshDrawMode = iota

	// MeshStrip draws connected triangles using vertices 1, 2, 3, then
	// 3, 2, 4 (note the order), then 3, 4, 5 and so on.
	MeshStrip

	// MeshFan draws a fan of triangles with the first vertex as the hub.
	// Simple convex polygons can be drawn this way.
	MeshFan

	// MeshPoints draws every vertex as an unconnected point.
	MeshPoints
)

// MeshTrangles is the name this constant had in earlier bindings.
//
// Deprecated: use [MeshTriangles].
const MeshTrangles = MeshTriangles

var meshDrawModeNames = [...]string{
	MeshTriangles: "triangles",
	MeshStrip:     "strip",
	MeshFan:       "fan",
	MeshPoints:    "points",
}

func (m MeshDrawMode) String() string { return enumString("MeshDrawMode", meshDrawModeNames[:], m) }

// IsValid reports whether m is one of the declared mesh draw modes.
func (m MeshDrawMode) IsValid() bool { return inRange(meshDrawModeNames[:], m) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m MeshDrawMode) MarshalText() ([]byte, error) {
	return marshalName("MeshDrawMode", meshDrawModeNames[:], m)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *MeshDrawMode) UnmarshalText(text []byte) error {
	return unmarshalName("MeshDrawMode", meshDrawModeNames[:], m, text)
}

// ParseMeshDrawMode returns the mesh draw mode with the given LÖVE name.
func ParseMeshDrawMode(s string) (MeshDrawMode, error) {
	return parseName[MeshDrawMode]("MeshDrawMode", meshDrawModeNames[:], s)
}

// MeshDrawModeValues returns all mesh draw modes in declaration order.
func MeshDrawModeValues() []MeshDrawMode { return values[MeshDrawMode](meshDrawModeNames[:]) }

// MinVertices returns the smallest vertex count which produces a primitive.
// It returns 0 for invalid modes.
func (m MeshDrawMode) MinVertices() int {
	switch m {
	case MeshTriangles, MeshStrip, MeshFan:
		return 3
	case MeshPoints:
		return 1
	default:
		return 0
	}
}

// Primitives returns the number of primitives drawn from n vertices:
// triangles for the triangle modes, points for MeshPoints. Vertices which
// do not complete a triangle are ignored.
func (m MeshDrawMode) Primitives(n int) int {
	if n < m.MinVertices() || n <= 0 {
		return 0
	}
	switch m {
	case MeshTriangles:
		return n / 3
	case MeshStrip, MeshFan:
		return n - 2
	case MeshPoints:
		return n
	default:
		return 0
	}
}
