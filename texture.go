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

// CanvasMipmapMode is the mipmap policy of a Canvas.
type CanvasMipmapMode int32

const (
	MipmapsNone   CanvasMipmapMode = iota // the Canvas has no mipmaps
	MipmapsManual                         // mipmaps are generated on request
	MipmapsAuto                           // mipmaps are regenerated after drawing
)

var canvasMipmapModeNames = [...]string{
	MipmapsNone:   "none",
	MipmapsManual: "manual",
	MipmapsAuto:   "auto",
}

func (m CanvasMipmapMode) String() string {
	return enumString("CanvasMipmapMode", canvasMipmapModeNames[:], m)
}

// IsValid reports whether m is one of the declared mipmap modes.
func (m CanvasMipmapMode) IsValid() bool { return inRange(canvasMipmapModeNames[:], m) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m CanvasMipmapMode) MarshalText() ([]byte, error) {
	return marshalName("CanvasMipmapMode", canvasMipmapModeNames[:], m)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *CanvasMipmapMode) UnmarshalText(text []byte) error {
	return unmarshalName("CanvasMipmapMode", canvasMipmapModeNames[:], m, text)
}

// ParseCanvasMipmapMode returns the mipmap mode with the given LÖVE name.
func ParseCanvasMipmapMode(s string) (CanvasMipmapMode, error) {
	return parseName[CanvasMipmapMode]("CanvasMipmapMode", canvasMipmapModeNames[:], s)
}

// CanvasMipmapModeValues returns all mipmap modes in declaration order.
func CanvasMipmapModeValues() []CanvasMipmapMode {
	return values[CanvasMipmapMode](canvasMipmapModeNames[:])
}

// TextureType is the dimensionality of a texture.
type TextureType int32

const (
	// Texture2D is a regular 2D texture with a width and a height.
	Texture2D TextureType = iota

	// TextureVolume is a 3D texture with width, height and depth. It
	// needs a custom shader, and filtering applies along all three axes.
	TextureVolume

	// Texture2DArray holds several 2D textures of the same size in one
	// object. Unlike a texture atlas, the layers do not bleed into each
	// other.
	Texture2DArray

	// TextureCube is a cubemap with six faces. It needs a custom shader,
	// and is sampled with a 3D direction vector instead of texture
	// coordinates.
	TextureCube
)

var textureTypeNames = [...]string{
	Texture2D:      "2d",
	TextureVolume:  "volume",
	Texture2DArray: "array",
	TextureCube:    "cube",
}

func (t TextureType) String() string { return enumString("TextureType", textureTypeNames[:], t) }

// IsValid reports whether t is one of the declared texture types.
func (t TextureType) IsValid() bool { return inRange(textureTypeNames[:], t) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (t TextureType) MarshalText() ([]byte, error) {
	return marshalName("TextureType", textureTypeNames[:], t)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (t *TextureType) UnmarshalText(text []byte) error {
	return unmarshalName("TextureType", textureTypeNames[:], t, text)
}

// ParseTextureType returns the texture type with the given LÖVE name.
func ParseTextureType(s string) (TextureType, error) {
	return parseName[TextureType]("TextureType", textureTypeNames[:], s)
}

// TextureTypeValues returns all texture types in declaration order.
func TextureTypeValues() []TextureType { return values[TextureType](textureTypeNames[:]) }
