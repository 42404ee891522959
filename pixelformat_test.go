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
	"testing"
)

func TestPixelFormatCount(t *testing.T) {
	if n := len(PixelFormatValues()); n != 64 {
		t.Errorf("got %d pixel formats, want 64", n)
	}
}

func TestPixelFormatClasses(t *testing.T) {
	for _, f := range PixelFormatValues() {
		compressed := f >= PixelFormatDXT1
		if f.IsCompressed() != compressed {
			t.Errorf("%s: IsCompressed() = %t", f, f.IsCompressed())
		}
		depthStencil := f >= PixelFormatStencil8 && f <= PixelFormatDepth32FStencil8
		if f.IsDepthStencil() != depthStencil {
			t.Errorf("%s: IsDepthStencil() = %t", f, f.IsDepthStencil())
		}
		if f.IsDepthStencil() != (f.IsDepth() || f.IsStencil()) {
			t.Errorf("%s: inconsistent depth/stencil flags", f)
		}

		w, h := f.BlockSize()
		placeholder := f <= PixelFormatHDR
		if placeholder {
			if w != 0 || h != 0 || f.BlockBytes() != 0 || f.Components() != 0 {
				t.Errorf("%s: placeholder has size %dx%d/%d", f, w, h, f.BlockBytes())
			}
			continue
		}
		if !compressed && (w != 1 || h != 1) {
			t.Errorf("%s: uncompressed format has %dx%d blocks", f, w, h)
		}
		if f.BlockBytes() <= 0 || f.Components() <= 0 || f.Components() > 4 {
			t.Errorf("%s: bad metadata %d bytes, %d components",
				f, f.BlockBytes(), f.Components())
		}
	}
}

func TestPixelFormatFlags(t *testing.T) {
	cases := []struct {
		f       PixelFormat
		depth   bool
		stencil bool
		srgb    bool
		flt     bool
		signed  bool
	}{
		{f: PixelFormatRGBA8},
		{f: PixelFormatSRGBA8, srgb: true},
		{f: PixelFormatRGBA16F, flt: true},
		{f: PixelFormatRG11B10F, flt: true},
		{f: PixelFormatStencil8, stencil: true},
		{f: PixelFormatDepth24, depth: true},
		{f: PixelFormatDepth32F, depth: true, flt: true},
		{f: PixelFormatDepth24Stencil8, depth: true, stencil: true},
		{f: PixelFormatBC4S, signed: true},
		{f: PixelFormatBC6HS, flt: true, signed: true},
		{f: PixelFormatEACRGS, signed: true},
		{f: PixelFormatASTC8x8},
	}
	for _, c := range cases {
		t.Run(c.f.String(), func(t *testing.T) {
			if c.f.IsDepth() != c.depth {
				t.Errorf("IsDepth() = %t", c.f.IsDepth())
			}
			if c.f.IsStencil() != c.stencil {
				t.Errorf("IsStencil() = %t", c.f.IsStencil())
			}
			if c.f.IsSRGB() != c.srgb {
				t.Errorf("IsSRGB() = %t", c.f.IsSRGB())
			}
			if c.f.IsFloat() != c.flt {
				t.Errorf("IsFloat() = %t", c.f.IsFloat())
			}
			if c.f.IsSigned() != c.signed {
				t.Errorf("IsSigned() = %t", c.f.IsSigned())
			}
		})
	}
}

func TestPixelFormatDataSize(t *testing.T) {
	cases := []struct {
		f    PixelFormat
		w, h int
		want int
	}{
		{PixelFormatRGBA8, 16, 16, 1024},
		{PixelFormatR8, 3, 5, 15},
		{PixelFormatRGBA32F, 2, 2, 64},
		{PixelFormatDepth24, 10, 1, 30},
		{PixelFormatDXT1, 4, 4, 8},
		{PixelFormatDXT1, 5, 5, 32},   // 2x2 blocks
		{PixelFormatDXT5, 16, 8, 128}, // 4x2 blocks
		{PixelFormatPVR1RGB2, 16, 16, 64},
		{PixelFormatASTC12x12, 13, 1, 32},
		{PixelFormatASTC10x5, 20, 10, 64},
		{PixelFormatNormal, 16, 16, 0},
		{PixelFormatRGBA8, 0, 16, 0},
		{PixelFormatRGBA8, -1, 16, 0},
		{PixelFormat(99), 16, 16, 0},

		// sizes close to the limit of int
		{PixelFormatR8, math.MaxInt, 1, math.MaxInt},
		{PixelFormatRGBA8, math.MaxInt / 4, 1, math.MaxInt / 4 * 4},
		{PixelFormatRGBA8, math.MaxInt/4 + 1, 1, 0},
		{PixelFormatRGBA8, math.MaxInt, math.MaxInt, 0},
		{PixelFormatDXT1, math.MaxInt, math.MaxInt, 0},
		{PixelFormatASTC12x12, math.MaxInt / 16, 12, (math.MaxInt/16/12 + 1) * 16},
		{PixelFormatASTC12x12, math.MaxInt, 12, 0},
	}
	for _, c := range cases {
		if got := c.f.DataSize(c.w, c.h); got != c.want {
			t.Errorf("%s %dx%d: got %d bytes, want %d", c.f, c.w, c.h, got, c.want)
		}
	}
}

func TestPixelFormatASTCBlocks(t *testing.T) {
	cases := []struct {
		f    PixelFormat
		w, h int
	}{
		{PixelFormatASTC4x4, 4, 4},
		{PixelFormatASTC5x4, 5, 4},
		{PixelFormatASTC5x5, 5, 5},
		{PixelFormatASTC6x5, 6, 5},
		{PixelFormatASTC6x6, 6, 6},
		{PixelFormatASTC8x5, 8, 5},
		{PixelFormatASTC8x6, 8, 6},
		{PixelFormatASTC8x8, 8, 8},
		{PixelFormatASTC10x5, 10, 5},
		{PixelFormatASTC10x6, 10, 6},
		{PixelFormatASTC10x8, 10, 8},
		{PixelFormatASTC10x10, 10, 10},
		{PixelFormatASTC12x10, 12, 10},
		{PixelFormatASTC12x12, 12, 12},
	}
	for _, c := range cases {
		w, h := c.f.BlockSize()
		if w != c.w || h != c.h {
			t.Errorf("%s: got %dx%d blocks, want %dx%d", c.f, w, h, c.w, c.h)
		}
		if c.f.BlockBytes() != 16 {
			t.Errorf("%s: got %d bytes per block", c.f, c.f.BlockBytes())
		}
	}
}

func TestPixelFormatResolve(t *testing.T) {
	cases := []struct {
		f     PixelFormat
		gamma bool
		want  PixelFormat
	}{
		{PixelFormatNormal, false, PixelFormatRGBA8},
		{PixelFormatNormal, true, PixelFormatSRGBA8},
		{PixelFormatHDR, false, PixelFormatRGBA16F},
		{PixelFormatHDR, true, PixelFormatRGBA16F},
		{PixelFormatDXT5, true, PixelFormatDXT5},
		{PixelFormatUnknown, false, PixelFormatUnknown},
	}
	for _, c := range cases {
		if got := c.f.Resolve(c.gamma); got != c.want {
			t.Errorf("%s.Resolve(%t) = %s, want %s", c.f, c.gamma, got, c.want)
		}
	}
}

func TestPixelFormatColorModel(t *testing.T) {
	if PixelFormatRGBA8.ColorModel() != color.NRGBAModel {
		t.Error("rgba8 should use color.NRGBAModel")
	}
	if PixelFormatRGBA16.ColorModel() != color.NRGBA64Model {
		t.Error("rgba16 should use color.NRGBA64Model")
	}
	if m := PixelFormatBC7.ColorModel(); m != nil {
		t.Errorf("BC7 has colour model %v", m)
	}
}
