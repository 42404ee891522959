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
	"fmt"
	"strings"
)

// Feature is an optional capability of the graphics driver, as reported by
// love.graphics.getSupported.
type Feature int32

const (
	// FeatureMultiCanvasFormats: Canvases with different formats can be
	// used together in one setCanvas call.
	FeatureMultiCanvasFormats Feature = iota

	// FeatureClampZero: the "clampzero" wrap mode is available. Where it
	// is missing, "clamp" is used instead.
	FeatureClampZero

	// FeatureLighten: the lighten and darken blend modes are available.
	FeatureLighten

	// FeatureFullNPOT: textures with non-power-of-two sizes can use
	// mipmaps and the "repeat" wrap mode.
	FeatureFullNPOT

	// FeaturePixelShaderHighp: pixel shaders can use 32 bit "highp"
	// floating point numbers.
	FeaturePixelShaderHighp

	// FeatureShaderDerivatives: pixel shaders can use the derivative
	// functions dFdx, dFdy and fwidth.
	FeatureShaderDerivatives

	// FeatureGLSL3: GLSL 3 shaders can be used.
	FeatureGLSL3

	// FeatureInstancing: instanced mesh drawing is available.
	FeatureInstancing
)

var featureNames = [...]string{
	FeatureMultiCanvasFormats: "multicanvasformats",
	FeatureClampZero:          "clampzero",
	FeatureLighten:            "lighten",
	FeatureFullNPOT:           "fullnpot",
	FeaturePixelShaderHighp:   "pixelshaderhighp",
	FeatureShaderDerivatives:  "shaderderivatives",
	FeatureGLSL3:              "glsl3",
	FeatureInstancing:         "instancing",
}

func (f Feature) String() string { return enumString("Feature", featureNames[:], f) }

// IsValid reports whether f is one of the declared features.
func (f Feature) IsValid() bool { return inRange(featureNames[:], f) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (f Feature) MarshalText() ([]byte, error) {
	return marshalName("Feature", featureNames[:], f)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (f *Feature) UnmarshalText(text []byte) error {
	return unmarshalName("Feature", featureNames[:], f, text)
}

// ParseFeature returns the feature with the given LÖVE name.
func ParseFeature(s string) (Feature, error) {
	return parseName[Feature]("Feature", featureNames[:], s)
}

// FeatureValues returns all features in declaration order.
func FeatureValues() []Feature { return values[Feature](featureNames[:]) }

// Features is a set of graphics features. Bit i is set if the feature
// with value i is present.
type Features uint32

// FeaturesOf returns the set containing the given features. Invalid
// features are ignored.
func FeaturesOf(feats ...Feature) Features {
	var fs Features
	for _, f := range feats {
		fs = fs.With(f)
	}
	return fs
}

// ParseFeatures converts a table of the form returned by
// love.graphics.getSupported into a feature set. Names which are not
// known to this package, for example features added by newer engine
// versions, are ignored.
func ParseFeatures(supported map[string]bool) Features {
	var fs Features
	for name, ok := range supported {
		if !ok {
			continue
		}
		if f, err := ParseFeature(name); err == nil {
			fs = fs.With(f)
		}
	}
	return fs
}

// Has reports whether f is in the set.
func (fs Features) Has(f Feature) bool {
	return f.IsValid() && fs&(1<<uint(f)) != 0
}

// With returns the set with f added.
func (fs Features) With(f Feature) Features {
	if !f.IsValid() {
		return fs
	}
	return fs | 1<<uint(f)
}

// Slice returns the features in the set, in declaration order.
func (fs Features) Slice() []Feature {
	var res []Feature
	for f := range Feature(len(featureNames)) {
		if fs.Has(f) {
			res = append(res, f)
		}
	}
	return res
}

func (fs Features) String() string {
	feats := fs.Slice()
	names := make([]string, len(feats))
	for i, f := range feats {
		names[i] = f.String()
	}
	return fmt.Sprintf("{%s}", strings.Join(names, ","))
}
