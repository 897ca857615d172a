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

// Package angle provides value types for directional quantities:
// Angle, measured counterclockwise from the positive x-axis and held
// in the domain (−π, π], and Azimuth, measured clockwise from
// geographic north and held in [0, 2π). Values are stored internally
// as radians and may be scalar or array-valued; every operation on an
// array-valued instance applies element-wise. All derivations return
// freshly constructed instances re-constrained to the owning type's
// domain, so results are always canonical.
package angle

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
)

// Version is the library version number.
const Version = "0.1.0"

// Angle is a directional quantity measured counterclockwise from the
// positive x-axis, held in the domain (−π, π].
type Angle struct {
	val values
}

// New creates an Angle from a value in one of the scalar notations
// (rad, deg, gon, or mil). Values in the dms and dm tuple notations go
// through NewDMS and NewDM.
func New(v float64, f Format) (Angle, error) {
	r, err := toRad(v, f)
	if err != nil {
		return Angle{}, err
	}
	return newAngle(scalarValues(r)), nil
}

// NewRad creates an Angle from a value in radians.
func NewRad(v float64) Angle { return newAngle(scalarValues(v)) }

// NewSlice creates an array-valued Angle from values in one of the
// scalar notations. The input slice is copied, not retained.
func NewSlice(v []float64, f Format) (Angle, error) {
	r, err := toRadSlice(v, f)
	if err != nil {
		return Angle{}, err
	}
	return newAngle(values{v: r}), nil
}

// NewRadSlice creates an array-valued Angle from values in radians.
func NewRadSlice(v []float64) Angle { return newAngle(sliceValues(v)) }

// NewDMS creates an Angle from a (degree, minute, second) tuple.
func NewDMS(d, m, s float64) Angle { return newAngle(scalarValues(DMSToRad(d, m, s))) }

// NewDMSSlice creates an array-valued Angle from parallel slices of
// degree, minute, and second components.
func NewDMSSlice(d, m, s []float64) (Angle, error) {
	if len(m) != len(d) || len(s) != len(d) {
		return Angle{}, fmt.Errorf("angle: mismatched dms component lengths %d, %d, %d", len(d), len(m), len(s))
	}
	v := make([]float64, len(d))
	for i := range d {
		v[i] = DMSToRad(d[i], m[i], s[i])
	}
	return newAngle(values{v: v}), nil
}

// NewDM creates an Angle from a (degree, decimal minute) tuple.
func NewDM(d, m float64) Angle { return newAngle(scalarValues(DMToRad(d, m))) }

// NewDMSlice creates an array-valued Angle from parallel slices of
// degree and decimal-minute components.
func NewDMSlice(d, m []float64) (Angle, error) {
	if len(m) != len(d) {
		return Angle{}, fmt.Errorf("angle: mismatched dm component lengths %d, %d", len(d), len(m))
	}
	v := make([]float64, len(d))
	for i := range d {
		v[i] = DMToRad(d[i], m[i])
	}
	return newAngle(values{v: v}), nil
}

// newAngle is the factory all Angle results go through: it applies the
// (−π, π] domain constraint so every instance is canonical on creation.
func newAngle(v values) Angle {
	v.wrap180()
	return Angle{val: v}
}

// IsAzimuth reports whether the instance follows the clockwise-from-
// north convention. It is false for Angle.
func (a Angle) IsAzimuth() bool { return false }

// IsScalar reports whether the instance holds a single value rather
// than an array.
func (a Angle) IsScalar() bool { return a.val.scalar }

func (a Angle) rad() values { return a.val }

// Len returns the number of elements in an array-valued instance.
// It panics if the instance is scalar.
func (a Angle) Len() int {
	if a.val.scalar {
		panic(fmt.Errorf("angle: scalar Angle has no length"))
	}
	return len(a.val.v)
}

// At returns element i of an array-valued instance as a new scalar
// Angle. It panics if the instance is scalar.
func (a Angle) At(i int) Angle {
	if a.val.scalar {
		panic(fmt.Errorf("angle: scalar Angle does not support indexing"))
	}
	return newAngle(scalarValues(a.val.v[i]))
}

// Slice returns elements [lo, hi) of an array-valued instance as a new
// array-valued Angle. It panics if the instance is scalar.
func (a Angle) Slice(lo, hi int) Angle {
	if a.val.scalar {
		panic(fmt.Errorf("angle: scalar Angle does not support slicing"))
	}
	return newAngle(sliceValues(a.val.v[lo:hi]))
}

// Clone returns a deep copy of the receiver.
func (a Angle) Clone() Angle { return Angle{val: a.val.clone()} }

// Constrain360 reduces the value into [0, 2π) in place.
func (a *Angle) Constrain360() { a.val.wrap360() }

// Constrain180 reduces the value into (−π, π] in place. This is the
// constraint applied after every Angle construction.
func (a *Angle) Constrain180() { a.val.wrap180() }

// Rad returns the value of a scalar instance in radians.
func (a Angle) Rad() float64 { return a.val.scalarVal("Angle", "Rad") }

// Deg returns the value of a scalar instance in degrees.
func (a Angle) Deg() float64 { return RadToDeg(a.val.scalarVal("Angle", "Deg")) }

// Gon returns the value of a scalar instance in gons.
func (a Angle) Gon() float64 { return RadToGon(a.val.scalarVal("Angle", "Gon")) }

// Mil returns the value of a scalar instance in mils.
func (a Angle) Mil() float64 { return RadToMil(a.val.scalarVal("Angle", "Mil")) }

// DMS returns the value of a scalar instance as a
// (degree, minute, second) tuple.
func (a Angle) DMS() (d, m, s float64) { return RadToDMS(a.val.scalarVal("Angle", "DMS")) }

// DM returns the value of a scalar instance as a
// (degree, decimal minute) tuple.
func (a Angle) DM() (d, m float64) { return RadToDM(a.val.scalarVal("Angle", "DM")) }

// RoundDeg returns the value of a scalar instance rounded to the
// nearest integer degree, with ties rounding to even.
func (a Angle) RoundDeg() int64 {
	return int64(math.RoundToEven(RadToDeg(a.val.scalarVal("Angle", "RoundDeg"))))
}

// RadSlice returns the values in radians as a new slice. It accepts
// both scalar and array-valued instances.
func (a Angle) RadSlice() []float64 {
	out := make([]float64, len(a.val.v))
	copy(out, a.val.v)
	return out
}

// DegSlice returns the values in degrees as a new slice.
func (a Angle) DegSlice() []float64 { return RadToDegSlice(a.val.v) }

// GonSlice returns the values in gons as a new slice.
func (a Angle) GonSlice() []float64 { return RadToGonSlice(a.val.v) }

// MilSlice returns the values in mils as a new slice.
func (a Angle) MilSlice() []float64 { return RadToMilSlice(a.val.v) }

// DMSSlice returns the values as parallel slices of degree, minute,
// and second components.
func (a Angle) DMSSlice() (d, m, s []float64) {
	n := len(a.val.v)
	d, m, s = make([]float64, n), make([]float64, n), make([]float64, n)
	for i, x := range a.val.v {
		d[i], m[i], s[i] = RadToDMS(x)
	}
	return d, m, s
}

// DMSlice returns the values as parallel slices of degree and
// decimal-minute components.
func (a Angle) DMSlice() (d, m []float64) {
	n := len(a.val.v)
	d, m = make([]float64, n), make([]float64, n)
	for i, x := range a.val.v {
		d[i], m[i] = RadToDM(x)
	}
	return d, m
}

// RoundDegSlice returns the values rounded to the nearest integer
// degree, with ties rounding to even, as a new slice.
func (a Angle) RoundDegSlice() []int64 {
	out := make([]int64, len(a.val.v))
	for i, x := range a.val.v {
		out[i] = int64(math.RoundToEven(RadToDeg(x)))
	}
	return out
}

// Complement returns π/2 − a as a new, re-constrained Angle.
func (a Angle) Complement() Angle {
	return newAngle(a.val.each(func(x float64) float64 { return math.Pi/2 - x }))
}

// Supplement returns π − a as a new, re-constrained Angle.
func (a Angle) Supplement() Angle {
	return newAngle(a.val.each(func(x float64) float64 { return math.Pi - x }))
}

// Reverse returns a + π, the opposite direction, as a new,
// re-constrained Angle.
func (a Angle) Reverse() Angle {
	return newAngle(a.val.each(func(x float64) float64 { return x + math.Pi }))
}

// ToAzimuth converts the counterclockwise-from-east angle to the
// clockwise-from-north convention. The two conventions are
// complementary with respect to 90 degrees.
func (a Angle) ToAzimuth() Azimuth {
	return newAzimuth(a.val.each(func(x float64) float64 { return math.Pi/2 - x }))
}

// ToAngle returns a copy of the receiver; an Angle is already in the
// counterclockwise-from-east convention.
func (a Angle) ToAngle() Angle { return a.Clone() }

// Sin returns the sine of a scalar instance.
func (a Angle) Sin() float64 { return math.Sin(a.val.scalarVal("Angle", "Sin")) }

// Cos returns the cosine of a scalar instance.
func (a Angle) Cos() float64 { return math.Cos(a.val.scalarVal("Angle", "Cos")) }

// Tan returns the tangent of a scalar instance.
func (a Angle) Tan() float64 { return math.Tan(a.val.scalarVal("Angle", "Tan")) }

// Sqrt returns the square root of the radian value of a scalar instance.
func (a Angle) Sqrt() float64 { return math.Sqrt(a.val.scalarVal("Angle", "Sqrt")) }

// Log returns the natural logarithm of the radian value of a scalar
// instance.
func (a Angle) Log() float64 { return math.Log(a.val.scalarVal("Angle", "Log")) }

// Log10 returns the base-10 logarithm of the radian value of a scalar
// instance.
func (a Angle) Log10() float64 { return math.Log10(a.val.scalarVal("Angle", "Log10")) }

// Pow returns the radian value of a scalar instance raised to the
// power y.
func (a Angle) Pow(y float64) float64 { return math.Pow(a.val.scalarVal("Angle", "Pow"), y) }

// SinSlice returns the element-wise sine as a new slice.
func (a Angle) SinSlice() []float64 { return mapSlice(a.val.v, math.Sin) }

// CosSlice returns the element-wise cosine as a new slice.
func (a Angle) CosSlice() []float64 { return mapSlice(a.val.v, math.Cos) }

// TanSlice returns the element-wise tangent as a new slice.
func (a Angle) TanSlice() []float64 { return mapSlice(a.val.v, math.Tan) }

// SqrtSlice returns the element-wise square root of the radian values
// as a new slice.
func (a Angle) SqrtSlice() []float64 { return mapSlice(a.val.v, math.Sqrt) }

// LogSlice returns the element-wise natural logarithm of the radian
// values as a new slice.
func (a Angle) LogSlice() []float64 { return mapSlice(a.val.v, math.Log) }

// Log10Slice returns the element-wise base-10 logarithm of the radian
// values as a new slice.
func (a Angle) Log10Slice() []float64 { return mapSlice(a.val.v, math.Log10) }

// PowSlice returns the element-wise radian values raised to the power
// y as a new slice.
func (a Angle) PowSlice(y float64) []float64 {
	return mapSlice(a.val.v, func(x float64) float64 { return math.Pow(x, y) })
}

// UnitVector returns the 2-D direction vector (cos a, sin a) of a
// scalar instance.
func (a Angle) UnitVector() geom.Point {
	x := a.val.scalarVal("Angle", "UnitVector")
	return geom.Point{X: math.Cos(x), Y: math.Sin(x)}
}

// UnitVectorSlice returns the element-wise 2-D direction vectors.
func (a Angle) UnitVectorSlice() []geom.Point {
	out := make([]geom.Point, len(a.val.v))
	for i, x := range a.val.v {
		out[i] = geom.Point{X: math.Cos(x), Y: math.Sin(x)}
	}
	return out
}

// EnclosedAngle returns the enclosed angle between a and o: the
// smaller of the two arcs between the two directions, element-wise.
// The result is non-negative and never exceeds π. Azimuth operands
// must be converted with ToAngle first.
func (a Angle) EnclosedAngle(o Angle) Angle {
	d1 := newAngle(a.val.zip(o.val, func(x, y float64) float64 { return x - y }))
	d2 := newAngle(o.val.zip(a.val, func(x, y float64) float64 { return x - y }))
	return newAngle(d1.val.zip(d2.val, func(x, y float64) float64 {
		return math.Min(math.Abs(x), math.Abs(y))
	}))
}

func (a Angle) String() string {
	if a.val.scalar {
		return fmt.Sprintf("%v rad", a.val.v[0])
	}
	return fmt.Sprintf("%v rad", a.val.v)
}

func mapSlice(v []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = f(x)
	}
	return out
}
