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

// AreaSpreadDistribution is the distribution from which a particle system
// draws the emission positions of new particles.
type AreaSpreadDistribution int32

const (
	// SpreadNone emits all particles at the emitter position.
	SpreadNone AreaSpreadDistribution = iota

	// SpreadUniform spreads particles uniformly over a rectangle.
	SpreadUniform

	// SpreadNormal uses a normal (Gaussian) distribution.
	SpreadNormal

	// SpreadEllipse spreads particles uniformly over an ellipse.
	SpreadEllipse

	// SpreadBorderEllipse emits particles on the edge of an ellipse.
	SpreadBorderEllipse

	// SpreadBorderRectangle emits particles on the edge of a rectangle.
	SpreadBorderRectangle
)

var areaSpreadNames = [...]string{
	SpreadNone:            "none",
	SpreadUniform:         "uniform",
	SpreadNormal:          "normal",
	SpreadEllipse:         "ellipse",
	SpreadBorderEllipse:   "borderellipse",
	SpreadBorderRectangle: "borderrectangle",
}

func (d AreaSpreadDistribution) String() string {
	return enumString("AreaSpreadDistribution", areaSpreadNames[:], d)
}

// IsValid reports whether d is one of the declared distributions.
func (d AreaSpreadDistribution) IsValid() bool { return inRange(areaSpreadNames[:], d) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (d AreaSpreadDistribution) MarshalText() ([]byte, error) {
	return marshalName("AreaSpreadDistribution", areaSpreadNames[:], d)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (d *AreaSpreadDistribution) UnmarshalText(text []byte) error {
	return unmarshalName("AreaSpreadDistribution", areaSpreadNames[:], d, text)
}

// ParseAreaSpreadDistribution returns the distribution with the given
// LÖVE name.
func ParseAreaSpreadDistribution(s string) (AreaSpreadDistribution, error) {
	return parseName[AreaSpreadDistribution]("AreaSpreadDistribution", areaSpreadNames[:], s)
}

// AreaSpreadDistributionValues returns all distributions in declaration
// order.
func AreaSpreadDistributionValues() []AreaSpreadDistribution {
	return values[AreaSpreadDistribution](areaSpreadNames[:])
}
