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

// Member is one named constant of a category.
type Member struct {
	Name  string // LÖVE name
	Value int32  // native encoding
}

// Category lists the members of one constant type.
type Category struct {
	Name    string // Go type name, e.g. "BlendMode"
	Members []Member
}

// categories is the order in which Table reports the constant types.
var categories = []struct {
	name  string
	names []string
}{
	{"ArcType", arcTypeNames[:]},
	{"BlendMode", blendModeNames[:]},
	{"BlendAlphaMode", blendAlphaModeNames[:]},
	{"LineStyle", lineStyleNames[:]},
	{"LineJoin", lineJoinNames[:]},
	{"StencilAction", stencilActionNames[:]},
	{"CompareMode", compareModeNames[:]},
	{"Feature", featureNames[:]},
	{"AreaSpreadDistribution", areaSpreadNames[:]},
	{"DrawMode", drawModeNames[:]},
	{"SpriteBatchUsage", spriteBatchUsageNames[:]},
	{"MeshDrawMode", meshDrawModeNames[:]},
	{"PixelFormat", pixelFormatNames},
	{"CanvasMipmapMode", canvasMipmapModeNames[:]},
	{"TextureType", textureTypeNames[:]},
}

// Table returns all constant categories with their members, in
// declaration order. The result is a fresh copy and may be modified by
// the caller.
func Table() []Category {
	res := make([]Category, len(categories))
	for i, c := range categories {
		members := make([]Member, len(c.names))
		for j, name := range c.names {
			members[j] = Member{Name: name, Value: int32(j)}
		}
		res[i] = Category{Name: c.name, Members: members}
	}
	return res
}

// Lookup returns the native value of the constant with the given LÖVE
// name in the given category.
func Lookup(category, name string) (int32, bool) {
	for _, c := range categories {
		if c.name != category {
			continue
		}
		v, err := parseName[int32](c.name, c.names, name)
		return v, err == nil
	}
	return 0, false
}
