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

// Package love defines the enumerated constants of the LÖVE graphics and
// particle APIs.
//
// Every category is a distinct integer type whose values match the
// encoding the native engine expects at its C boundary: members are
// numbered from zero in declaration order, without gaps. A value can
// therefore be passed across the boundary as-is, by converting it to
// int32.
//
// In addition to the constants, each type provides its LÖVE name via
// String, a Parse function for the reverse direction, and text
// marshalling. [Table] lists all categories at run time.
//
// The package does not render anything. The behaviour described in the
// doc comments is implemented by the engine.
package love

//go:generate go run ./cmd/loveenum -o testdata/enums.json
