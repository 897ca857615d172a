/*
Copyright © 2018 the InMAP authors.
This file is part of the InMAP angle library.

This library is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This library is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this library.  If not, see <http://www.gnu.org/licenses/>.
*/

package angle

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Direction is implemented by Angle and Azimuth. The two types are
// numerically interchangeable only through an explicit ToAngle or
// ToAzimuth conversion; Direction exists so that the comparison
// functions can see which convention an operand follows.
type Direction interface {
	// IsAzimuth reports whether the value follows the
	// clockwise-from-north convention.
	IsAzimuth() bool
	// IsScalar reports whether the value is scalar rather than
	// array-valued.
	IsScalar() bool

	rad() values
}

// Tolerances for approximate equality, matching the conventional
// floating-point closeness test |a−b| ≤ atol + rtol·|b|.
const (
	equalRelTol = 1e-5
	equalAbsTol = 1e-8
)

// Equal reports whether a and b are approximately equal element-wise.
// An Angle and an Azimuth are unequal by definition regardless of
// numeric closeness; convert explicitly before comparing across the
// two conventions. Array operands must have matching shapes.
func Equal(a, b Direction) bool {
	if a.IsAzimuth() != b.IsAzimuth() {
		return false
	}
	av, bv := a.rad(), b.rad()
	if av.scalar != bv.scalar || len(av.v) != len(bv.v) {
		return false
	}
	for i, x := range av.v {
		if !floats.EqualWithinAbsOrRel(x, bv.v[i], equalAbsTol, equalRelTol) {
			return false
		}
	}
	return true
}

// NotEqual is the negation of Equal; it is true whenever the operands
// are of different concrete types.
func NotEqual(a, b Direction) bool { return !Equal(a, b) }

// Compare returns the sign of a − b: −1 if a < b, +1 if a > b, and 0
// otherwise. Ordering is defined only between scalar operands of the
// same concrete type; Compare panics for an Angle ordered against an
// Azimuth or for array operands.
func Compare(a, b Direction) int {
	if a.IsAzimuth() != b.IsAzimuth() {
		panic(fmt.Errorf("angle: cannot order %s against %s", kindName(a), kindName(b)))
	}
	x := a.rad().scalarVal(kindName(a), "Compare")
	y := b.rad().scalarVal(kindName(b), "Compare")
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Less reports whether a < b. See Compare for the ordering contract.
func Less(a, b Direction) bool { return Compare(a, b) < 0 }

// LessEqual reports whether a ≤ b. See Compare for the ordering contract.
func LessEqual(a, b Direction) bool { return Compare(a, b) <= 0 }

// Greater reports whether a > b. See Compare for the ordering contract.
func Greater(a, b Direction) bool { return Compare(a, b) > 0 }

// GreaterEqual reports whether a ≥ b. See Compare for the ordering contract.
func GreaterEqual(a, b Direction) bool { return Compare(a, b) >= 0 }

// Cmp compares a scalar instance against a plain radian value,
// returning the sign of the difference.
func (a Angle) Cmp(x float64) int { return cmpScalar(a.val.scalarVal("Angle", "Cmp"), x) }

// Cmp compares a scalar instance against a plain radian value,
// returning the sign of the difference.
func (z Azimuth) Cmp(x float64) int { return cmpScalar(z.val.scalarVal("Azimuth", "Cmp"), x) }

func cmpScalar(v, x float64) int {
	switch {
	case v < x:
		return -1
	case v > x:
		return 1
	default:
		return 0
	}
}

func kindName(d Direction) string {
	if d.IsAzimuth() {
		return "Azimuth"
	}
	return "Angle"
}
