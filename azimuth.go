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
	"math"

	"github.com/ctessum/geom"
)

// Azimuth is a directional quantity measured clockwise from geographic
// north, held in the domain [0, 2π). It supports the same operations
// as Angle with the Azimuth domain applied to every result.
type Azimuth struct {
	val values
}

// NewAzimuth creates an Azimuth from a value in one of the scalar
// notations (rad, deg, gon, or mil). Values in the dms and dm tuple
// notations go through NewAzimuthDMS and NewAzimuthDM.
func NewAzimuth(v float64, f Format) (Azimuth, error) {
	r, err := toRad(v, f)
	if err != nil {
		return Azimuth{}, err
	}
	return newAzimuth(scalarValues(r)), nil
}

// NewAzimuthRad creates an Azimuth from a value in radians.
func NewAzimuthRad(v float64) Azimuth { return newAzimuth(scalarValues(v)) }

// NewAzimuthSlice creates an array-valued Azimuth from values in one
// of the scalar notations. The input slice is copied, not retained.
func NewAzimuthSlice(v []float64, f Format) (Azimuth, error) {
	r, err := toRadSlice(v, f)
	if err != nil {
		return Azimuth{}, err
	}
	return newAzimuth(values{v: r}), nil
}

// NewAzimuthRadSlice creates an array-valued Azimuth from values in
// radians.
func NewAzimuthRadSlice(v []float64) Azimuth { return newAzimuth(sliceValues(v)) }

// NewAzimuthDMS creates an Azimuth from a (degree, minute, second) tuple.
func NewAzimuthDMS(d, m, s float64) Azimuth {
	return newAzimuth(scalarValues(DMSToRad(d, m, s)))
}

// NewAzimuthDMSSlice creates an array-valued Azimuth from parallel
// slices of degree, minute, and second components.
func NewAzimuthDMSSlice(d, m, s []float64) (Azimuth, error) {
	a, err := NewDMSSlice(d, m, s)
	if err != nil {
		return Azimuth{}, err
	}
	return newAzimuth(a.val), nil
}

// NewAzimuthDM creates an Azimuth from a (degree, decimal minute) tuple.
func NewAzimuthDM(d, m float64) Azimuth { return newAzimuth(scalarValues(DMToRad(d, m))) }

// NewAzimuthDMSlice creates an array-valued Azimuth from parallel
// slices of degree and decimal-minute components.
func NewAzimuthDMSlice(d, m []float64) (Azimuth, error) {
	a, err := NewDMSlice(d, m)
	if err != nil {
		return Azimuth{}, err
	}
	return newAzimuth(a.val), nil
}

// newAzimuth is the factory all Azimuth results go through: it applies
// the [0, 2π) domain constraint so every instance is canonical on
// creation.
func newAzimuth(v values) Azimuth {
	v.wrap360()
	return Azimuth{val: v}
}

// IsAzimuth reports whether the instance follows the clockwise-from-
// north convention. It is true for Azimuth.
func (z Azimuth) IsAzimuth() bool { return true }

// IsScalar reports whether the instance holds a single value rather
// than an array.
func (z Azimuth) IsScalar() bool { return z.val.scalar }

func (z Azimuth) rad() values { return z.val }

// Len returns the number of elements in an array-valued instance.
// It panics if the instance is scalar.
func (z Azimuth) Len() int {
	if z.val.scalar {
		panic(fmt.Errorf("angle: scalar Azimuth has no length"))
	}
	return len(z.val.v)
}

// At returns element i of an array-valued instance as a new scalar
// Azimuth. It panics if the instance is scalar.
func (z Azimuth) At(i int) Azimuth {
	if z.val.scalar {
		panic(fmt.Errorf("angle: scalar Azimuth does not support indexing"))
	}
	return newAzimuth(scalarValues(z.val.v[i]))
}

// Slice returns elements [lo, hi) of an array-valued instance as a new
// array-valued Azimuth. It panics if the instance is scalar.
func (z Azimuth) Slice(lo, hi int) Azimuth {
	if z.val.scalar {
		panic(fmt.Errorf("angle: scalar Azimuth does not support slicing"))
	}
	return newAzimuth(sliceValues(z.val.v[lo:hi]))
}

// Clone returns a deep copy of the receiver.
func (z Azimuth) Clone() Azimuth { return Azimuth{val: z.val.clone()} }

// Constrain360 reduces the value into [0, 2π) in place. This is the
// constraint applied after every Azimuth construction.
func (z *Azimuth) Constrain360() { z.val.wrap360() }

// Constrain180 reduces the value into (−π, π] in place. The next
// deriving operation will constrain the result back into [0, 2π).
func (z *Azimuth) Constrain180() { z.val.wrap180() }

// Rad returns the value of a scalar instance in radians.
func (z Azimuth) Rad() float64 { return z.val.scalarVal("Azimuth", "Rad") }

// Deg returns the value of a scalar instance in degrees.
func (z Azimuth) Deg() float64 { return RadToDeg(z.val.scalarVal("Azimuth", "Deg")) }

// Gon returns the value of a scalar instance in gons.
func (z Azimuth) Gon() float64 { return RadToGon(z.val.scalarVal("Azimuth", "Gon")) }

// Mil returns the value of a scalar instance in mils.
func (z Azimuth) Mil() float64 { return RadToMil(z.val.scalarVal("Azimuth", "Mil")) }

// DMS returns the value of a scalar instance as a
// (degree, minute, second) tuple.
func (z Azimuth) DMS() (d, m, s float64) { return RadToDMS(z.val.scalarVal("Azimuth", "DMS")) }

// DM returns the value of a scalar instance as a
// (degree, decimal minute) tuple.
func (z Azimuth) DM() (d, m float64) { return RadToDM(z.val.scalarVal("Azimuth", "DM")) }

// RoundDeg returns the value of a scalar instance rounded to the
// nearest integer degree, with ties rounding to even.
func (z Azimuth) RoundDeg() int64 {
	return int64(math.RoundToEven(RadToDeg(z.val.scalarVal("Azimuth", "RoundDeg"))))
}

// RadSlice returns the values in radians as a new slice. It accepts
// both scalar and array-valued instances.
func (z Azimuth) RadSlice() []float64 {
	out := make([]float64, len(z.val.v))
	copy(out, z.val.v)
	return out
}

// DegSlice returns the values in degrees as a new slice.
func (z Azimuth) DegSlice() []float64 { return RadToDegSlice(z.val.v) }

// GonSlice returns the values in gons as a new slice.
func (z Azimuth) GonSlice() []float64 { return RadToGonSlice(z.val.v) }

// MilSlice returns the values in mils as a new slice.
func (z Azimuth) MilSlice() []float64 { return RadToMilSlice(z.val.v) }

// DMSSlice returns the values as parallel slices of degree, minute,
// and second components.
func (z Azimuth) DMSSlice() (d, m, s []float64) {
	return Angle{val: z.val}.DMSSlice()
}

// DMSlice returns the values as parallel slices of degree and
// decimal-minute components.
func (z Azimuth) DMSlice() (d, m []float64) {
	return Angle{val: z.val}.DMSlice()
}

// RoundDegSlice returns the values rounded to the nearest integer
// degree as a new slice.
func (z Azimuth) RoundDegSlice() []int64 {
	return Angle{val: z.val}.RoundDegSlice()
}

// Complement returns π/2 − z as a new, re-constrained Azimuth.
func (z Azimuth) Complement() Azimuth {
	return newAzimuth(z.val.each(func(x float64) float64 { return math.Pi/2 - x }))
}

// Supplement returns π − z as a new, re-constrained Azimuth.
func (z Azimuth) Supplement() Azimuth {
	return newAzimuth(z.val.each(func(x float64) float64 { return math.Pi - x }))
}

// Reverse returns z + π, the opposite direction, as a new,
// re-constrained Azimuth.
func (z Azimuth) Reverse() Azimuth {
	return newAzimuth(z.val.each(func(x float64) float64 { return x + math.Pi }))
}

// ToAzimuth returns a copy of the receiver; an Azimuth is already in
// the clockwise-from-north convention.
func (z Azimuth) ToAzimuth() Azimuth { return z.Clone() }

// ToAngle converts the clockwise-from-north azimuth to the
// counterclockwise-from-east convention via the same 90-degree
// complement relation used by Angle.ToAzimuth.
func (z Azimuth) ToAngle() Angle {
	return newAngle(z.val.each(func(x float64) float64 { return math.Pi/2 - x }))
}

// EastFacing folds a bidirectional line orientation into its
// eastward-pointing representative: azimuths beyond π (the western
// half-plane) are replaced by their complement.
func (z Azimuth) EastFacing() Azimuth {
	return newAzimuth(z.val.each(func(x float64) float64 {
		if x > math.Pi {
			return math.Pi/2 - x
		}
		return x
	}))
}

// Sin returns the sine of a scalar instance.
func (z Azimuth) Sin() float64 { return math.Sin(z.val.scalarVal("Azimuth", "Sin")) }

// Cos returns the cosine of a scalar instance.
func (z Azimuth) Cos() float64 { return math.Cos(z.val.scalarVal("Azimuth", "Cos")) }

// Tan returns the tangent of a scalar instance.
func (z Azimuth) Tan() float64 { return math.Tan(z.val.scalarVal("Azimuth", "Tan")) }

// Sqrt returns the square root of the radian value of a scalar instance.
func (z Azimuth) Sqrt() float64 { return math.Sqrt(z.val.scalarVal("Azimuth", "Sqrt")) }

// Log returns the natural logarithm of the radian value of a scalar
// instance.
func (z Azimuth) Log() float64 { return math.Log(z.val.scalarVal("Azimuth", "Log")) }

// Log10 returns the base-10 logarithm of the radian value of a scalar
// instance.
func (z Azimuth) Log10() float64 { return math.Log10(z.val.scalarVal("Azimuth", "Log10")) }

// Pow returns the radian value of a scalar instance raised to the
// power y.
func (z Azimuth) Pow(y float64) float64 { return math.Pow(z.val.scalarVal("Azimuth", "Pow"), y) }

// SinSlice returns the element-wise sine as a new slice.
func (z Azimuth) SinSlice() []float64 { return mapSlice(z.val.v, math.Sin) }

// CosSlice returns the element-wise cosine as a new slice.
func (z Azimuth) CosSlice() []float64 { return mapSlice(z.val.v, math.Cos) }

// TanSlice returns the element-wise tangent as a new slice.
func (z Azimuth) TanSlice() []float64 { return mapSlice(z.val.v, math.Tan) }

// SqrtSlice returns the element-wise square root of the radian values
// as a new slice.
func (z Azimuth) SqrtSlice() []float64 { return mapSlice(z.val.v, math.Sqrt) }

// LogSlice returns the element-wise natural logarithm of the radian
// values as a new slice.
func (z Azimuth) LogSlice() []float64 { return mapSlice(z.val.v, math.Log) }

// Log10Slice returns the element-wise base-10 logarithm of the radian
// values as a new slice.
func (z Azimuth) Log10Slice() []float64 { return mapSlice(z.val.v, math.Log10) }

// PowSlice returns the element-wise radian values raised to the power
// y as a new slice.
func (z Azimuth) PowSlice(y float64) []float64 {
	return mapSlice(z.val.v, func(x float64) float64 { return math.Pow(x, y) })
}

// UnitVector returns the 2-D direction vector (cos z, sin z) of a
// scalar instance, in the radian frame of the stored value.
func (z Azimuth) UnitVector() geom.Point {
	x := z.val.scalarVal("Azimuth", "UnitVector")
	return geom.Point{X: math.Cos(x), Y: math.Sin(x)}
}

// UnitVectorSlice returns the element-wise 2-D direction vectors.
func (z Azimuth) UnitVectorSlice() []geom.Point {
	return Angle{val: z.val}.UnitVectorSlice()
}

// EnclosedAngle returns the enclosed angle between z and o: the
// smaller of the two arcs between the two directions, element-wise.
// The result is non-negative and never exceeds π. Angle operands must
// be converted with ToAzimuth first.
func (z Azimuth) EnclosedAngle(o Azimuth) Azimuth {
	d1 := newAzimuth(z.val.zip(o.val, func(x, y float64) float64 { return x - y }))
	d2 := newAzimuth(o.val.zip(z.val, func(x, y float64) float64 { return x - y }))
	return newAzimuth(d1.val.zip(d2.val, func(x, y float64) float64 {
		return math.Min(math.Abs(x), math.Abs(y))
	}))
}

func (z Azimuth) String() string {
	if z.val.scalar {
		return fmt.Sprintf("%v rad", z.val.v[0])
	}
	return fmt.Sprintf("%v rad", z.val.v)
}

// CardinalDirection maps a scalar azimuth to one of the sixteen named
// 22.5-degree compass sectors. The sector bounds alternate between
// open and closed endpoints going around the compass; anything not
// matched, including the wraparound sector about 0/360 degrees, is N.
func (z Azimuth) CardinalDirection() string {
	return cardinal(RadToDeg(z.val.scalarVal("Azimuth", "CardinalDirection")))
}

// CardinalDirectionSlice maps every element of an array-valued azimuth
// to its compass sector.
func (z Azimuth) CardinalDirectionSlice() []string {
	out := make([]string, len(z.val.v))
	for i, x := range z.val.v {
		out[i] = cardinal(RadToDeg(x))
	}
	return out
}

func cardinal(deg float64) string {
	switch {
	case 11.25 < deg && deg < 33.75:
		return "NNE"
	case 33.75 <= deg && deg <= 56.25:
		return "NE"
	case 56.25 < deg && deg < 78.75:
		return "ENE"
	case 78.75 <= deg && deg <= 101.25:
		return "E"
	case 101.25 < deg && deg < 123.75:
		return "ESE"
	case 123.75 <= deg && deg <= 146.25:
		return "SE"
	case 146.25 < deg && deg < 168.75:
		return "SSE"
	case 168.75 <= deg && deg <= 191.25:
		return "S"
	case 191.25 < deg && deg < 213.75:
		return "SSW"
	case 213.75 <= deg && deg <= 236.25:
		return "SW"
	case 236.25 < deg && deg < 258.75:
		return "WSW"
	case 258.75 <= deg && deg <= 291.25:
		return "W"
	case 291.25 < deg && deg < 303.75:
		return "WNW"
	case 303.75 <= deg && deg <= 326.25:
		return "NW"
	case 326.25 < deg && deg < 348.75:
		return "NNW"
	default:
		return "N"
	}
}
