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

// Free inverse-trigonometric constructors. Each returns a constrained
// Angle; out-of-domain inputs propagate NaN per IEEE semantics.

// Asin returns the Angle whose sine is x.
func Asin(x float64) Angle { return NewRad(math.Asin(x)) }

// Acos returns the Angle whose cosine is x.
func Acos(x float64) Angle { return NewRad(math.Acos(x)) }

// Atan returns the Angle whose tangent is x.
func Atan(x float64) Angle { return NewRad(math.Atan(x)) }

// Atan2 returns the Angle of the vector (x, y), using the signs of
// both components to pick the quadrant.
func Atan2(y, x float64) Angle { return NewRad(math.Atan2(y, x)) }

// AsinSlice is the element-wise form of Asin.
func AsinSlice(x []float64) Angle { return newAngle(values{v: mapSlice(x, math.Asin)}) }

// AcosSlice is the element-wise form of Acos.
func AcosSlice(x []float64) Angle { return newAngle(values{v: mapSlice(x, math.Acos)}) }

// AtanSlice is the element-wise form of Atan.
func AtanSlice(x []float64) Angle { return newAngle(values{v: mapSlice(x, math.Atan)}) }

// Atan2Slice is the element-wise form of Atan2. It returns an error if
// the component slices have different lengths.
func Atan2Slice(y, x []float64) (Angle, error) {
	if len(y) != len(x) {
		return Angle{}, fmt.Errorf("angle: mismatched component lengths %d, %d", len(y), len(x))
	}
	v := make([]float64, len(y))
	for i := range y {
		v[i] = math.Atan2(y[i], x[i])
	}
	return newAngle(values{v: v}), nil
}
