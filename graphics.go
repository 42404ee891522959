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

// ArcType selects how the end-points of an arc are connected.
type ArcType int32

const (
	// ArcOpen leaves the two end-points unconnected when the arc is drawn
	// as a line. In fill mode it is drawn like ArcClosed.
	ArcOpen ArcType = iota

	// ArcClosed connects the two end-points with a straight line.
	ArcClosed

	// ArcPie connects both end-points to the centre of the circle, giving
	// a slice of pie.
	ArcPie
)

var arcTypeNames = [...]string{
	ArcOpen:   "open",
	ArcClosed: "closed",
	ArcPie:    "pie",
}

func (t ArcType) String() string { return enumString("ArcType", arcTypeNames[:], t) }

// IsValid reports whether t is one of the declared arc types.
func (t ArcType) IsValid() bool { return inRange(arcTypeNames[:], t) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (t ArcType) MarshalText() ([]byte, error) {
	return marshalName("ArcType", arcTypeNames[:], t)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (t *ArcType) UnmarshalText(text []byte) error {
	return unmarshalName("ArcType", arcTypeNames[:], t, text)
}

// ParseArcType returns the arc type with the given LÖVE name.
func ParseArcType(s string) (ArcType, error) {
	return parseName[ArcType]("ArcType", arcTypeNames[:], s)
}

// ArcTypeValues returns all arc types in declaration order.
func ArcTypeValues() []ArcType { return values[ArcType](arcTypeNames[:]) }

// BlendMode is the function used to combine the colour of drawn pixels
// with the colour already in the framebuffer.
type BlendMode int32

const (
	// BlendAlpha is normal alpha blending. The alpha of what is drawn
	// determines its opacity.
	BlendAlpha BlendMode = iota

	// BlendAdd adds the drawn colour to the screen colour. The alpha of
	// the screen is left unchanged.
	BlendAdd

	// BlendSubtract subtracts the drawn colour from the screen colour.
	// The alpha of the screen is left unchanged.
	BlendSubtract

	// BlendMultiply multiplies the drawn colour with the screen colour,
	// darkening it. The alpha of drawn objects is multiplied with the
	// screen alpha, even with BlendAlphaPremultiplied.
	BlendMultiply

	// BlendLighten keeps the larger of the drawn and the screen value for
	// each colour component. Requires BlendAlphaPremultiplied.
	BlendLighten

	// BlendDarken keeps the smaller of the drawn and the screen value for
	// each colour component. Requires BlendAlphaPremultiplied.
	BlendDarken

	// BlendScreen is "screen" blending.
	BlendScreen

	// BlendReplace replaces the screen colour by the drawn colour. The
	// alpha mode still applies.
	BlendReplace
)

var blendModeNames = [...]string{
	BlendAlpha:    "alpha",
	BlendAdd:      "add",
	BlendSubtract: "subtract",
	BlendMultiply: "multiply",
	BlendLighten:  "lighten",
	BlendDarken:   "darken",
	BlendScreen:   "screen",
	BlendReplace:  "replace",
}

func (m BlendMode) String() string { return enumString("BlendMode", blendModeNames[:], m) }

// IsValid reports whether m is one of the declared blend modes.
func (m BlendMode) IsValid() bool { return inRange(blendModeNames[:], m) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m BlendMode) MarshalText() ([]byte, error) {
	return marshalName("BlendMode", blendModeNames[:], m)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *BlendMode) UnmarshalText(text []byte) error {
	return unmarshalName("BlendMode", blendModeNames[:], m, text)
}

// ParseBlendMode returns the blend mode with the given LÖVE name.
func ParseBlendMode(s string) (BlendMode, error) {
	return parseName[BlendMode]("BlendMode", blendModeNames[:], s)
}

// BlendModeValues returns all blend modes in declaration order.
func BlendModeValues() []BlendMode { return values[BlendMode](blendModeNames[:]) }

// BlendAlphaMode controls whether the RGB values of drawn pixels are
// multiplied by their alpha during blending.
//
// BlendAlphaPremultiplied should be used when drawing a Canvas to the
// screen, since rendering into the Canvas has already multiplied its
// colours by alpha.
type BlendAlphaMode int32

const (
	// BlendAlphaMultiply multiplies the RGB values of what is drawn by
	// its alpha. This is the default.
	BlendAlphaMultiply BlendAlphaMode = iota

	// BlendAlphaPremultiplied uses the RGB values unchanged. Colours must
	// have been multiplied by alpha beforehand.
	BlendAlphaPremultiplied
)

var blendAlphaModeNames = [...]string{
	BlendAlphaMultiply:      "alphamultiply",
	BlendAlphaPremultiplied: "premultiplied",
}

func (m BlendAlphaMode) String() string {
	return enumString("BlendAlphaMode", blendAlphaModeNames[:], m)
}

// IsValid reports whether m is one of the declared alpha modes.
func (m BlendAlphaMode) IsValid() bool { return inRange(blendAlphaModeNames[:], m) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m BlendAlphaMode) MarshalText() ([]byte, error) {
	return marshalName("BlendAlphaMode", blendAlphaModeNames[:], m)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *BlendAlphaMode) UnmarshalText(text []byte) error {
	return unmarshalName("BlendAlphaMode", blendAlphaModeNames[:], m, text)
}

// ParseBlendAlphaMode returns the alpha mode with the given LÖVE name.
func ParseBlendAlphaMode(s string) (BlendAlphaMode, error) {
	return parseName[BlendAlphaMode]("BlendAlphaMode", blendAlphaModeNames[:], s)
}

// BlendAlphaModeValues returns all alpha modes in declaration order.
func BlendAlphaModeValues() []BlendAlphaMode {
	return values[BlendAlphaMode](blendAlphaModeNames[:])
}

// LineStyle is the rasterization quality of lines.
type LineStyle int32

const (
	LineRough  LineStyle = iota // aliased
	LineSmooth                  // anti-aliased
)

var lineStyleNames = [...]string{
	LineRough:  "rough",
	LineSmooth: "smooth",
}

func (s LineStyle) String() string { return enumString("LineStyle", lineStyleNames[:], s) }

// IsValid reports whether s is one of the declared line styles.
func (s LineStyle) IsValid() bool { return inRange(lineStyleNames[:], s) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s LineStyle) MarshalText() ([]byte, error) {
	return marshalName("LineStyle", lineStyleNames[:], s)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (s *LineStyle) UnmarshalText(text []byte) error {
	return unmarshalName("LineStyle", lineStyleNames[:], s, text)
}

// ParseLineStyle returns the line style with the given LÖVE name.
func ParseLineStyle(s string) (LineStyle, error) {
	return parseName[LineStyle]("LineStyle", lineStyleNames[:], s)
}

// LineStyleValues returns all line styles in declaration order.
func LineStyleValues() []LineStyle { return values[LineStyle](lineStyleNames[:]) }

// LineJoin is the geometry drawn where two line segments meet.
type LineJoin int32

const (
	// LineJoinNone applies no join. The segments end flat and overlap.
	LineJoinNone LineJoin = iota

	// LineJoinMiter extends the outer edges of the segments until they
	// meet in a point.
	LineJoinMiter

	// LineJoinBevel cuts off the corner where the segments meet.
	LineJoinBevel
)

var lineJoinNames = [...]string{
	LineJoinNone:  "none",
	LineJoinMiter: "miter",
	LineJoinBevel: "bevel",
}

func (j LineJoin) String() string { return enumString("LineJoin", lineJoinNames[:], j) }

// IsValid reports whether j is one of the declared line joins.
func (j LineJoin) IsValid() bool { return inRange(lineJoinNames[:], j) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (j LineJoin) MarshalText() ([]byte, error) {
	return marshalName("LineJoin", lineJoinNames[:], j)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (j *LineJoin) UnmarshalText(text []byte) error {
	return unmarshalName("LineJoin", lineJoinNames[:], j, text)
}

// ParseLineJoin returns the line join with the given LÖVE name.
func ParseLineJoin(s string) (LineJoin, error) {
	return parseName[LineJoin]("LineJoin", lineJoinNames[:], s)
}

// LineJoinValues returns all line joins in declaration order.
func LineJoinValues() []LineJoin { return values[LineJoin](lineJoinNames[:]) }

// DrawMode selects whether shapes are outlined or filled.
type DrawMode int32

const (
	DrawLine DrawMode = iota // outline
	DrawFill                 // filled interior
)

var drawModeNames = [...]string{
	DrawLine: "line",
	DrawFill: "fill",
}

func (m DrawMode) String() string { return enumString("DrawMode", drawModeNames[:], m) }

// IsValid reports whether m is one of the declared draw modes.
func (m DrawMode) IsValid() bool { return inRange(drawModeNames[:], m) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m DrawMode) MarshalText() ([]byte, error) {
	return marshalName("DrawMode", drawModeNames[:], m)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *DrawMode) UnmarshalText(text []byte) error {
	return unmarshalName("DrawMode", drawModeNames[:], m, text)
}

// ParseDrawMode returns the draw mode with the given LÖVE name.
func ParseDrawMode(s string) (DrawMode, error) {
	return parseName[DrawMode]("DrawMode", drawModeNames[:], s)
}

// DrawModeValues returns all draw modes in declaration order.
func DrawModeValues() []DrawMode { return values[DrawMode](drawModeNames[:]) }
