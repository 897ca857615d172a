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

import "gonum.org/v1/gonum/stat"

// Circular statistics. Directional data cannot be averaged
// arithmetically: the mean of 359 and 1 degrees is 0, not 180. The
// mean direction is instead recovered from the two-argument arctangent
// of the averaged sine and cosine components.

// Mean returns the weighted circular mean of the elements as a new
// scalar Angle. A nil weights slice means uniform weighting; otherwise
// weights must have one entry per element.
func (a Angle) Mean(weights []float64) Angle {
	return newAngle(scalarValues(stat.CircularMean(a.val.v, weights)))
}

// DegMean returns the weighted circular mean of the elements in
// degrees.
func (a Angle) DegMean(weights []float64) float64 {
	return a.Mean(weights).Deg()
}

// Mean returns the weighted circular mean of the elements as a new
// scalar Azimuth. A nil weights slice means uniform weighting;
// otherwise weights must have one entry per element.
func (z Azimuth) Mean(weights []float64) Azimuth {
	return newAzimuth(scalarValues(stat.CircularMean(z.val.v, weights)))
}

// DegMean returns the weighted circular mean of the elements in
// degrees.
func (z Azimuth) DegMean(weights []float64) float64 {
	return z.Mean(weights).Deg()
}
