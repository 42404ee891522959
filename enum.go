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
)

var (
	// ErrUnknownName is returned when parsing a name which is not a member
	// of the requested category.
	ErrUnknownName = errors.New("unknown constant name")

	// ErrInvalidValue is returned when marshalling a value outside the
	// declared range of its category.
	ErrInvalidValue = errors.New("invalid constant value")
)

// enum is the set of integer types used for the constants in this package.
type enum interface {
	~int32
}

// enumString returns names[v], or "kind(v)" if v is out of range.
func enumString[T enum](kind string, names []string, v T) string {
	if v >= 0 && int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", kind, int32(v))
}

func inRange[T enum](names []string, v T) bool {
	return v >= 0 && int(v) < len(names)
}

// parseName looks up s in names. The match is exact, the same way the
// engine's string maps work.
func parseName[T enum](kind string, names []string, s string) (T, error) {
	for i, name := range names {
		if name == s {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%s %q: %w", kind, s, ErrUnknownName)
}

func marshalName[T enum](kind string, names []string, v T) ([]byte, error) {
	if !inRange(names, v) {
		return nil, fmt.Errorf("%s %d: %w", kind, int32(v), ErrInvalidValue)
	}
	return []byte(names[v]), nil
}

func unmarshalName[T enum](kind string, names []string, v *T, text []byte) error {
	x, err := parseName[T](kind, names, string(text))
	if err != nil {
		return err
	}
	*v = x
	return nil
}

// values returns all members of a category, in declaration order.
func values[T enum](names []string) []T {
	res := make([]T, len(names))
	for i := range res {
		res[i] = T(i)
	}
	return res
}
