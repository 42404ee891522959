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

// StencilAction is the way a stencil function changes the stencil value
// of each pixel it touches.
type StencilAction int32

const (
	// StencilReplace sets the stencil value to the reference value.
	StencilReplace StencilAction = iota

	// StencilIncrement adds 1 for each object touching the pixel,
	// saturating at 255.
	StencilIncrement

	// StencilDecrement subtracts 1 for each object touching the pixel,
	// saturating at 0.
	StencilDecrement

	// StencilIncrementWrap adds 1 for each object touching the pixel.
	// Incrementing 255 gives 0.
	StencilIncrementWrap

	// StencilDecrementWrap subtracts 1 for each object touching the pixel.
	// Decrementing 0 gives 255.
	StencilDecrementWrap

	// StencilInvert inverts all bits of the stencil value for each object
	// touching the pixel, so that 0 becomes 255.
	StencilInvert
)

var stencilActionNames = [...]string{
	StencilReplace:       "replace",
	StencilIncrement:     "increment",
	StencilDecrement:     "decrement",
	StencilIncrementWrap: "incrementwrap",
	StencilDecrementWrap: "decrementwrap",
	StencilInvert:        "invert",
}

func (a StencilAction) String() string {
	return enumString("StencilAction", stencilActionNames[:], a)
}

// IsValid reports whether a is one of the declared stencil actions.
func (a StencilAction) IsValid() bool { return inRange(stencilActionNames[:], a) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (a StencilAction) MarshalText() ([]byte, error) {
	return marshalName("StencilAction", stencilActionNames[:], a)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (a *StencilAction) UnmarshalText(text []byte) error {
	return unmarshalName("StencilAction", stencilActionNames[:], a, text)
}

// ParseStencilAction returns the stencil action with the given LÖVE name.
func ParseStencilAction(s string) (StencilAction, error) {
	return parseName[StencilAction]("StencilAction", stencilActionNames[:], s)
}

// StencilActionValues returns all stencil actions in declaration order.
func StencilActionValues() []StencilAction {
	return values[StencilAction](stencilActionNames[:])
}

// CompareMode is the per-pixel comparison of a stencil test. An object's
// pixel is drawn if comparing the pixel's stencil value to the reference
// value succeeds.
type CompareMode int32

const (
	CompareLess     CompareMode = iota // stencil < reference
	CompareLEqual                      // stencil <= reference
	CompareEqual                       // stencil == reference
	CompareGEqual                      // stencil >= reference
	CompareGreater                     // stencil > reference
	CompareNotEqual                    // stencil != reference
	CompareAlways                      // the test always passes
)

var compareModeNames = [...]string{
	CompareLess:     "less",
	CompareLEqual:   "lequal",
	CompareEqual:    "equal",
	CompareGEqual:   "gequal",
	CompareGreater:  "greater",
	CompareNotEqual: "notequal",
	CompareAlways:   "always",
}

func (m CompareMode) String() string { return enumString("CompareMode", compareModeNames[:], m) }

// IsValid reports whether m is one of the declared compare modes.
func (m CompareMode) IsValid() bool { return inRange(compareModeNames[:], m) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m CompareMode) MarshalText() ([]byte, error) {
	return marshalName("CompareMode", compareModeNames[:], m)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *CompareMode) UnmarshalText(text []byte) error {
	return unmarshalName("CompareMode", compareModeNames[:], m, text)
}

// ParseCompareMode returns the compare mode with the given LÖVE name.
func ParseCompareMode(s string) (CompareMode, error) {
	return parseName[CompareMode]("CompareMode", compareModeNames[:], s)
}

// CompareModeValues returns all compare modes in declaration order.
func CompareModeValues() []CompareMode { return values[CompareMode](compareModeNames[:]) }
