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
)

// values holds radian values as either a single scalar or an owned
// array. Every instance owns its backing slice: the constructors copy
// their inputs, so no two instances ever share storage.
type values struct {
	v      []float64
	scalar bool
}

func scalarValues(x float64) values {
	return values{v: []float64{x}, scalar: true}
}

func sliceValues(x []float64) values {
	v := make([]float64, len(x))
	copy(v, x)
	return values{v: v}
}

func (a values) clone() values {
	v := make([]float64, len(a.v))
	copy(v, a.v)
	return values{v: v, scalar: a.scalar}
}

// scalarVal returns the single held value. typ and op name the caller
// in the panic message when the instance is array-valued.
func (a values) scalarVal(typ, op string) float64 {
	if !a.scalar {
		panic(fmt.Errorf("angle: %s requires a scalar %s", op, typ))
	}
	return a.v[0]
}

// each applies f element-wise and returns a new values of the same shape.
func (a values) each(f func(float64) float64) values {
	v := make([]float64, len(a.v))
	for i, x := range a.v {
		v[i] = f(x)
	}
	return values{v: v, scalar: a.scalar}
}

// zip combines two values element-wise, broadcasting a scalar operand
// over an array one. Panics if both are arrays of different lengths.
func (a values) zip(b values, f func(x, y float64) float64) values {
	switch {
	case a.scalar && b.scalar:
		return scalarValues(f(a.v[0], b.v[0]))
	case a.scalar:
		x := a.v[0]
		return b.each(func(y float64) float64 { return f(x, y) })
	case b.scalar:
		y := b.v[0]
		return a.each(func(x float64) float64 { return f(x, y) })
	default:
		if len(a.v) != len(b.v) {
			panic(fmt.Errorf("angle: length mismatch %d != %d", len(a.v), len(b.v)))
		}
		v := make([]float64, len(a.v))
		for i, x := range a.v {
			v[i] = f(x, b.v[i])
		}
		return values{v: v}
	}
}

// remainder is the modulus with the sign of the divisor, so that
// remainder(x, 2π) of a negative x lands in [0, 2π). math.Mod keeps
// the sign of the dividend instead.
func remainder(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}

// wrap360 reduces every element into [0, 2π) in place.
func (a *values) wrap360() {
	for i, x := range a.v {
		a.v[i] = remainder(x, 2*math.Pi)
	}
}

// wrap180 reduces every element into (−π, π] in place.
func (a *values) wrap180() {
	a.wrap360()
	for i, x := range a.v {
		if x > math.Pi {
			a.v[i] = x - 2*math.Pi
		}
	}
}
