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
	"slices"
	"testing"
)

func TestFeatures(t *testing.T) {
	fs := FeaturesOf(FeatureGLSL3, FeatureClampZero, Feature(40))
	if !fs.Has(FeatureGLSL3) || !fs.Has(FeatureClampZero) {
		t.Errorf("%s: missing features", fs)
	}
	if fs.Has(FeatureInstancing) || fs.Has(Feature(40)) {
		t.Errorf("%s: unexpected features", fs)
	}

	want := []Feature{FeatureClampZero, FeatureGLSL3}
	if got := fs.Slice(); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if s := fs.String(); s != "{clampzero,glsl3}" {
		t.Errorf("got %q", s)
	}
	if s := Features(0).String(); s != "{}" {
		t.Errorf("empty set: got %q", s)
	}
}

func TestParseFeatures(t *testing.T) {
	fs := ParseFeatures(map[string]bool{
		"multicanvasformats": true,
		"clampzero":          false,
		"lighten":            true,
		"instancing":         true,
		"raytracing":         true,
		"Lighten":            false,
	})
	want := FeaturesOf(FeatureMultiCanvasFormats, FeatureLighten, FeatureInstancing)
	if fs != want {
		t.Errorf("got %s, want %s", fs, want)
	}

	if fs := ParseFeatures(map[string]bool{"raytracing": true}); fs != 0 {
		t.Errorf("unknown feature: got %s, want {}", fs)
	}
	if fs := ParseFeatures(nil); fs != 0 {
		t.Errorf("nil table: got %s, want {}", fs)
	}
}
