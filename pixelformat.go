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

import (
	"image/color"
	"math"
)

// PixelFormat is the memory layout of Textures, ImageData and
// CompressedImageData.
type PixelFormat int32

const (
	PixelFormatUnknown PixelFormat = iota

	// The engine converts these two to a concrete format, see
	// [PixelFormat.Resolve].
	PixelFormatNormal
	PixelFormatHDR

	// "regular" formats
	PixelFormatR8
	PixelFormatRG8
	PixelFormatRGBA8
	PixelFormatSRGBA8
	PixelFormatR16
	PixelFormatRG16
	PixelFormatRGBA16
	PixelFormatR16F
	PixelFormatRG16F
	PixelFormatRGBA16F
	PixelFormatR32F
	PixelFormatRG32F
	PixelFormatRGBA32F

	PixelFormatLA8 // stored like RG8, read as (L, L, L, A)

	// packed formats
	PixelFormatRGBA4
	PixelFormatRGB5A1
	PixelFormatRGB565
	PixelFormatRGB10A2
	PixelFormatRG11B10F

	// depth/stencil formats
	PixelFormatStencil8
	PixelFormatDepth16
	PixelFormatDepth24
	PixelFormatDepth32F
	PixelFormatDepth24Stencil8
	PixelFormatDepth32FStencil8

	// compressed formats
	PixelFormatDXT1
	PixelFormatDXT3
	PixelFormatDXT5
	PixelFormatBC4
	PixelFormatBC4S
	PixelFormatBC5
	PixelFormatBC5S
	PixelFormatBC6H
	PixelFormatBC6HS
	PixelFormatBC7
	PixelFormatPVR1RGB2
	PixelFormatPVR1RGB4
	PixelFormatPVR1RGBA2
	PixelFormatPVR1RGBA4
	PixelFormatETC1
	PixelFormatETC2RGB
	PixelFormatETC2RGBA
	PixelFormatETC2RGBA1
	PixelFormatEACR
	PixelFormatEACRS
	PixelFormatEACRG
	PixelFormatEACRGS
	PixelFormatASTC4x4
	PixelFormatASTC5x4
	PixelFormatASTC5x5
	PixelFormatASTC6x5
	PixelFormatASTC6x6
	PixelFormatASTC8x5
	PixelFormatASTC8x6
	PixelFormatASTC8x8
	PixelFormatASTC10x5
	PixelFormatASTC10x6
	PixelFormatASTC10x8
	PixelFormatASTC10x10
	PixelFormatASTC12x10
	PixelFormatASTC12x12
)

// pixelFormatFlags describe the storage class of a pixel format.
type pixelFormatFlags uint8

const (
	pfCompressed pixelFormatFlags = 1 << iota
	pfDepth
	pfStencil
	pfSRGB
	pfFloat
	pfSigned
)

type pixelFormatInfo struct {
	name       string
	components int
	blockW     int // block width in pixels
	blockH     int // block height in pixels
	blockBytes int // bytes per block
	flags      pixelFormatFlags
}

// pixelFormats is indexed by PixelFormat. Uncompressed formats use 1x1
// blocks, so that blockBytes is the size of one pixel.
var pixelFormats = [...]pixelFormatInfo{
	PixelFormatUnknown: {name: "unknown"},
	PixelFormatNormal:  {name: "normal"},
	PixelFormatHDR:     {name: "hdr"},

	PixelFormatR8:      {"r8", 1, 1, 1, 1, 0},
	PixelFormatRG8:     {"rg8", 2, 1, 1, 2, 0},
	PixelFormatRGBA8:   {"rgba8", 4, 1, 1, 4, 0},
	PixelFormatSRGBA8:  {"srgba8", 4, 1, 1, 4, pfSRGB},
	PixelFormatR16:     {"r16", 1, 1, 1, 2, 0},
	PixelFormatRG16:    {"rg16", 2, 1, 1, 4, 0},
	PixelFormatRGBA16:  {"rgba16", 4, 1, 1, 8, 0},
	PixelFormatR16F:    {"r16f", 1, 1, 1, 2, pfFloat},
	PixelFormatRG16F:   {"rg16f", 2, 1, 1, 4, pfFloat},
	PixelFormatRGBA16F: {"rgba16f", 4, 1, 1, 8, pfFloat},
	PixelFormatR32F:    {"r32f", 1, 1, 1, 4, pfFloat},
	PixelFormatRG32F:   {"rg32f", 2, 1, 1, 8, pfFloat},
	PixelFormatRGBA32F: {"rgba32f", 4, 1, 1, 16, pfFloat},

	PixelFormatLA8: {"la8", 2, 1, 1, 2, 0},

	PixelFormatRGBA4:    {"rgba4", 4, 1, 1, 2, 0},
	PixelFormatRGB5A1:   {"rgb5a1", 4, 1, 1, 2, 0},
	PixelFormatRGB565:   {"rgb565", 3, 1, 1, 2, 0},
	PixelFormatRGB10A2:  {"rgb10a2", 4, 1, 1, 4, 0},
	PixelFormatRG11B10F: {"rg11b10f", 3, 1, 1, 4, pfFloat},

	PixelFormatStencil8:         {"stencil8", 1, 1, 1, 1, pfStencil},
	PixelFormatDepth16:          {"depth16", 1, 1, 1, 2, pfDepth},
	PixelFormatDepth24:          {"depth24", 1, 1, 1, 3, pfDepth},
	PixelFormatDepth32F:         {"depth32f", 1, 1, 1, 4, pfDepth | pfFloat},
	PixelFormatDepth24Stencil8:  {"depth24stencil8", 2, 1, 1, 4, pfDepth | pfStencil},
	PixelFormatDepth32FStencil8: {"depth32fstencil8", 2, 1, 1, 5, pfDepth | pfStencil | pfFloat},

	PixelFormatDXT1:  {"DXT1", 3, 4, 4, 8, pfCompressed},
	PixelFormatDXT3:  {"DXT3", 4, 4, 4, 16, pfCompressed},
	PixelFormatDXT5:  {"DXT5", 4, 4, 4, 16, pfCompressed},
	PixelFormatBC4:   {"BC4", 1, 4, 4, 8, pfCompressed},
	PixelFormatBC4S:  {"BC4s", 1, 4, 4, 8, pfCompressed | pfSigned},
	PixelFormatBC5:   {"BC5", 2, 4, 4, 16, pfCompressed},
	PixelFormatBC5S:  {"BC5s", 2, 4, 4, 16, pfCompressed | pfSigned},
	PixelFormatBC6H:  {"BC6h", 3, 4, 4, 16, pfCompressed | pfFloat},
	PixelFormatBC6HS: {"BC6hs", 3, 4, 4, 16, pfCompressed | pfFloat | pfSigned},
	PixelFormatBC7:   {"BC7", 4, 4, 4, 16, pfCompressed},

	PixelFormatPVR1RGB2:  {"PVR1rgb2", 3, 8, 4, 8, pfCompressed},
	PixelFormatPVR1RGB4:  {"PVR1rgb4", 3, 4, 4, 8, pfCompressed},
	PixelFormatPVR1RGBA2: {"PVR1rgba2", 4, 8, 4, 8, pfCompressed},
	PixelFormatPVR1RGBA4: {"PVR1rgba4", 4, 4, 4, 8, pfCompressed},

	PixelFormatETC1:      {"ETC1", 3, 4, 4, 8, pfCompressed},
	PixelFormatETC2RGB:   {"ETC2rgb", 3, 4, 4, 8, pfCompressed},
	PixelFormatETC2RGBA:  {"ETC2rgba", 4, 4, 4, 16, pfCompressed},
	PixelFormatETC2RGBA1: {"ETC2rgba1", 4, 4, 4, 8, pfCompressed},
	PixelFormatEACR:      {"EACr", 1, 4, 4, 8, pfCompressed},
	PixelFormatEACRS:     {"EACrs", 1, 4, 4, 8, pfCompressed | pfSigned},
	PixelFormatEACRG:     {"EACrg", 2, 4, 4, 16, pfCompressed},
	PixelFormatEACRGS:    {"EACrgs", 2, 4, 4, 16, pfCompressed | pfSigned},

	PixelFormatASTC4x4:   {"ASTC4x4", 4, 4, 4, 16, pfCompressed},
	PixelFormatASTC5x4:   {"ASTC5x4", 4, 5, 4, 16, pfCompressed},
	PixelFormatASTC5x5:   {"ASTC5x5", 4, 5, 5, 16, pfCompressed},
	PixelFormatASTC6x5:   {"ASTC6x5", 4, 6, 5, 16, pfCompressed},
	PixelFormatASTC6x6:   {"ASTC6x6", 4, 6, 6, 16, pfCompressed},
	PixelFormatASTC8x5:   {"ASTC8x5", 4, 8, 5, 16, pfCompressed},
	PixelFormatASTC8x6:   {"ASTC8x6", 4, 8, 6, 16, pfCompressed},
	PixelFormatASTC8x8:   {"ASTC8x8", 4, 8, 8, 16, pfCompressed},
	PixelFormatASTC10x5:  {"ASTC10x5", 4, 10, 5, 16, pfCompressed},
	PixelFormatASTC10x6:  {"ASTC10x6", 4, 10, 6, 16, pfCompressed},
	PixelFormatASTC10x8:  {"ASTC10x8", 4, 10, 8, 16, pfCompressed},
	PixelFormatASTC10x10: {"ASTC10x10", 4, 10, 10, 16, pfCompressed},
	PixelFormatASTC12x10: {"ASTC12x10", 4, 12, 10, 16, pfCompressed},
	PixelFormatASTC12x12: {"ASTC12x12", 4, 12, 12, 16, pfCompressed},
}

// pixelFormatNames is derived from pixelFormats, for use with the shared
// name helpers.
var pixelFormatNames = func() []string {
	names := make([]string, len(pixelFormats))
	for i, info := range pixelFormats {
		names[i] = info.name
	}
	return names
}()

func (f PixelFormat) String() string { return enumString("PixelFormat", pixelFormatNames, f) }

// IsValid reports whether f is one of the declared pixel formats.
func (f PixelFormat) IsValid() bool { return inRange(pixelFormatNames, f) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (f PixelFormat) MarshalText() ([]byte, error) {
	return marshalName("PixelFormat", pixelFormatNames, f)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (f *PixelFormat) UnmarshalText(text []byte) error {
	return unmarshalName("PixelFormat", pixelFormatNames, f, text)
}

// ParsePixelFormat returns the pixel format with the given LÖVE name.
func ParsePixelFormat(s string) (PixelFormat, error) {
	return parseName[PixelFormat]("PixelFormat", pixelFormatNames, s)
}

// PixelFormatValues returns all pixel formats in declaration order.
func PixelFormatValues() []PixelFormat { return values[PixelFormat](pixelFormatNames) }

func (f PixelFormat) info() pixelFormatInfo {
	if !f.IsValid() {
		return pixelFormatInfo{}
	}
	return pixelFormats[f]
}

// IsCompressed reports whether f is a block-compressed format.
func (f PixelFormat) IsCompressed() bool { return f.info().flags&pfCompressed != 0 }

// IsDepth reports whether f has a depth component.
func (f PixelFormat) IsDepth() bool { return f.info().flags&pfDepth != 0 }

// IsStencil reports whether f has a stencil component.
func (f PixelFormat) IsStencil() bool { return f.info().flags&pfStencil != 0 }

// IsDepthStencil reports whether f has a depth or a stencil component.
func (f PixelFormat) IsDepthStencil() bool {
	return f.info().flags&(pfDepth|pfStencil) != 0
}

// IsSRGB reports whether the colour values of f are sRGB encoded.
func (f PixelFormat) IsSRGB() bool { return f.info().flags&pfSRGB != 0 }

// IsFloat reports whether f stores floating point values.
func (f PixelFormat) IsFloat() bool { return f.info().flags&pfFloat != 0 }

// IsSigned reports whether f is one of the signed compressed formats.
func (f PixelFormat) IsSigned() bool { return f.info().flags&pfSigned != 0 }

// Components returns the number of channels stored by f.
// Depth and stencil count as one channel each.
func (f PixelFormat) Components() int { return f.info().components }

// BlockSize returns the width and height, in pixels, of one storage block.
// This is 1x1 for uncompressed formats and 0x0 for the placeholder
// formats unknown, normal and hdr.
func (f PixelFormat) BlockSize() (width, height int) {
	info := f.info()
	return info.blockW, info.blockH
}

// BlockBytes returns the size of one storage block in bytes.
func (f PixelFormat) BlockBytes() int { return f.info().blockBytes }

// DataSize returns the number of bytes needed to store a single image of
// the given size, rounding partial blocks up to full blocks.
// The minimum sizes some drivers impose on PVRTC textures are not taken
// into account.
//
// If the size does not fit into an int, DataSize returns 0.
func (f PixelFormat) DataSize(width, height int) int {
	info := f.info()
	if info.blockBytes == 0 || width <= 0 || height <= 0 {
		return 0
	}
	bx := width / info.blockW
	if width%info.blockW != 0 {
		bx++
	}
	by := height / info.blockH
	if height%info.blockH != 0 {
		by++
	}
	if bx > math.MaxInt/by/info.blockBytes {
		return 0
	}
	return bx * by * info.blockBytes
}

// Resolve converts the placeholder formats normal and hdr into the
// concrete format the engine uses for them. All other formats are
// returned unchanged.
func (f PixelFormat) Resolve(gammaCorrect bool) PixelFormat {
	switch f {
	case PixelFormatNormal:
		if gammaCorrect {
			return PixelFormatSRGBA8
		}
		return PixelFormatRGBA8
	case PixelFormatHDR:
		return PixelFormatRGBA16F
	default:
		return f
	}
}

// ColorModel returns the Go colour model matching the pixel layout of f,
// or nil if the standard library has no such model. ImageData in LÖVE is
// not premultiplied, so the non-premultiplied models are used.
func (f PixelFormat) ColorModel() color.Model {
	switch f {
	case PixelFormatRGBA8, PixelFormatSRGBA8:
		return color.NRGBAModel
	case PixelFormatRGBA16:
		return color.NRGBA64Model
	default:
		return nil
	}
}
