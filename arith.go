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

import "math"

// Arithmetic on Angle and Azimuth. The operand is always a plain
// radian-equivalent float, broadcast over an array-valued receiver;
// an Angle or Azimuth operand is passed as other.Rad(), converted
// with ToAngle/ToAzimuth first when the conventions differ. Every
// result is a new instance constrained to the receiver's domain.
// Division by zero follows IEEE semantics: no error is raised and
// NaN/Inf propagate into the constrained result.

// Add returns a + x.
func (a Angle) Add(x float64) Angle {
	return newAngle(a.val.each(func(v float64) float64 { return v + x }))
}

// Sub returns a − x.
func (a Angle) Sub(x float64) Angle {
	return newAngle(a.val.each(func(v float64) float64 { return v - x }))
}

// SubFrom returns x − a.
func (a Angle) SubFrom(x float64) Angle {
	return newAngle(a.val.each(func(v float64) float64 { return x - v }))
}

// Mul returns a × x.
func (a Angle) Mul(x float64) Angle {
	return newAngle(a.val.each(func(v float64) float64 { return v * x }))
}

// Div returns a / x.
func (a Angle) Div(x float64) Angle {
	return newAngle(a.val.each(func(v float64) float64 { return v / x }))
}

// DivFrom returns x / a.
func (a Angle) DivFrom(x float64) Angle {
	return newAngle(a.val.each(func(v float64) float64 { return x / v }))
}

// FloorDiv returns a // x, the floored quotient.
func (a Angle) FloorDiv(x float64) Angle {
	return newAngle(a.val.each(func(v float64) float64 { return math.Floor(v / x) }))
}

// FloorDivFrom returns x // a, the floored quotient.
func (a Angle) FloorDivFrom(x float64) Angle {
	return newAngle(a.val.each(func(v float64) float64 { return math.Floor(x / v) }))
}

// Mod returns a mod x, with the sign of the divisor.
func (a Angle) Mod(x float64) Angle {
	return newAngle(a.val.each(func(v float64) float64 { return remainder(v, x) }))
}

// ModFrom returns x mod a, with the sign of the divisor.
func (a Angle) ModFrom(x float64) Angle {
	return newAngle(a.val.each(func(v float64) float64 { return remainder(x, v) }))
}

// PowTo returns a raised to the power x as a constrained Angle.
// Pow returns the same quantity as a plain float.
func (a Angle) PowTo(x float64) Angle {
	return newAngle(a.val.each(func(v float64) float64 { return math.Pow(v, x) }))
}

// PowFrom returns x raised to the power a as a constrained Angle.
func (a Angle) PowFrom(x float64) Angle {
	return newAngle(a.val.each(func(v float64) float64 { return math.Pow(x, v) }))
}

// DivMod returns the floored quotient of a scalar instance by x as a
// plain float, and the remainder as a constrained Angle.
func (a Angle) DivMod(x float64) (float64, Angle) {
	v := a.val.scalarVal("Angle", "DivMod")
	return math.Floor(v / x), newAngle(scalarValues(remainder(v, x)))
}

// DivModSlice is the array form of DivMod: the element-wise floored
// quotients as a plain slice, and the remainders as a constrained Angle.
func (a Angle) DivModSlice(x float64) ([]float64, Angle) {
	q := mapSlice(a.val.v, func(v float64) float64 { return math.Floor(v / x) })
	return q, newAngle(a.val.each(func(v float64) float64 { return remainder(v, x) }))
}

// Neg returns −a.
func (a Angle) Neg() Angle {
	return newAngle(a.val.each(func(v float64) float64 { return -v }))
}

// Abs returns |a|.
func (a Angle) Abs() Angle {
	return newAngle(a.val.each(math.Abs))
}

// Add returns z + x.
func (z Azimuth) Add(x float64) Azimuth {
	return newAzimuth(z.val.each(func(v float64) float64 { return v + x }))
}

// Sub returns z − x.
func (z Azimuth) Sub(x float64) Azimuth {
	return newAzimuth(z.val.each(func(v float64) float64 { return v - x }))
}

// SubFrom returns x − z.
func (z Azimuth) SubFrom(x float64) Azimuth {
	return newAzimuth(z.val.each(func(v float64) float64 { return x - v }))
}

// Mul returns z × x.
func (z Azimuth) Mul(x float64) Azimuth {
	return newAzimuth(z.val.each(func(v float64) float64 { return v * x }))
}

// Div returns z / x.
func (z Azimuth) Div(x float64) Azimuth {
	return newAzimuth(z.val.each(func(v float64) float64 { return v / x }))
}

// DivFrom returns x / z.
func (z Azimuth) DivFrom(x float64) Azimuth {
	return newAzimuth(z.val.each(func(v float64) float64 { return x / v }))
}

// FloorDiv returns z // x, the floored quotient.
func (z Azimuth) FloorDiv(x float64) Azimuth {
	return newAzimuth(z.val.each(func(v float64) float64 { return math.Floor(v / x) }))
}

// FloorDivFrom returns x // z, the floored quotient.
func (z Azimuth) FloorDivFrom(x float64) Azimuth {
	return newAzimuth(z.val.each(func(v float64) float64 { return math.Floor(x / v) }))
}

// Mod returns z mod x, with the sign of the divisor.
func (z Azimuth) Mod(x float64) Azimuth {
	return newAzimuth(z.val.each(func(v float64) float64 { return remainder(v, x) }))
}

// ModFrom returns x mod z, with the sign of the divisor.
func (z Azimuth) ModFrom(x float64) Azimuth {
	return newAzimuth(z.val.each(func(v float64) float64 { return remainder(x, v) }))
}

// PowTo returns z raised to the power x as a constrained Azimuth.
func (z Azimuth) PowTo(x float64) Azimuth {
	return newAzimuth(z.val.each(func(v float64) float64 { return math.Pow(v, x) }))
}

// PowFrom returns x raised to the power z as a constrained Azimuth.
func (z Azimuth) PowFrom(x float64) Azimuth {
	return newAzimuth(z.val.each(func(v float64) float64 { return math.Pow(x, v) }))
}

// DivMod returns the floored quotient of a scalar instance by x as a
// plain float, and the remainder as a constrained Azimuth.
func (z Azimuth) DivMod(x float64) (float64, Azimuth) {
	v := z.val.scalarVal("Azimuth", "DivMod")
	return math.Floor(v / x), newAzimuth(scalarValues(remainder(v, x)))
}

// DivModSlice is the array form of DivMod.
func (z Azimuth) DivModSlice(x float64) ([]float64, Azimuth) {
	q := mapSlice(z.val.v, func(v float64) float64 { return math.Floor(v / x) })
	return q, newAzimuth(z.val.each(func(v float64) float64 { return remainder(v, x) }))
}

// Neg returns −z, constrained back into [0, 2π).
func (z Azimuth) Neg() Azimuth {
	return newAzimuth(z.val.each(func(v float64) float64 { return -v }))
}

// Abs returns |z|. Azimuth values are already non-negative, so this is
// a constrained copy.
func (z Azimuth) Abs() Azimuth {
	return newAzimuth(z.val.each(math.Abs))
}
