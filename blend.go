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
	"errors"
	"fmt"

	"golang.org/x/image/draw"
)

// ErrBlendAlphaMode is returned by [ValidateBlend] for blend modes which
// the engine only accepts together with [BlendAlphaPremultiplied].
var ErrBlendAlphaMode = errors.New("blend mode requires premultiplied alpha")

// ValidateBlend checks whether the engine accepts the given combination of
// blend mode and alpha mode.
func ValidateBlend(mode BlendMode, alpha BlendAlphaMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("BlendMode %d: %w", int32(mode), ErrInvalidValue)
	}
	if !alpha.IsValid() {
		return fmt.Errorf("BlendAlphaMode %d: %w", int32(alpha), ErrInvalidValue)
	}
	if alpha == BlendAlphaMultiply && (mode == BlendLighten || mode == BlendDarken) {
		return fmt.Errorf("%s with %s: %w", mode, alpha, ErrBlendAlphaMode)
	}
	return nil
}

// RequiredFeature returns the graphics feature the host must support for
// the blend mode to be usable. The second return value is false if the
// blend mode is available everywhere.
func (m BlendMode) RequiredFeature() (Feature, bool) {
	switch m {
	case BlendLighten, BlendDarken:
		return FeatureLighten, true
	default:
		return 0, false
	}
}

// DrawOp returns the Porter-Duff operator from the Go image/draw packages
// which composites the same way as m, if there is one.
func (m BlendMode) DrawOp() (draw.Op, bool) {
	switch m {
	case BlendAlpha:
		return draw.Over, true
	case BlendReplace:
		return draw.Src, true
	default:
		return 0, false
	}
}
