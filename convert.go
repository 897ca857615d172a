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

	"gonum.org/v1/gonum/floats"
)

// Format identifies the angular notation of a raw value passed to one
// of the constructors.
type Format string

// The recognized angular notations. A full circle is 2π radians,
// 360 degrees, 400 gons, or 6400 mils. DMS and DM are the sexagesimal
// (degree, minute, second) and (degree, decimal minute) tuple notations;
// values in those formats go through the tuple constructors.
const (
	Rad Format = "rad"
	Deg Format = "deg"
	Gon Format = "gon"
	Mil Format = "mil"
	DMS Format = "dms"
	DM  Format = "dm"
)

// ParseFormat converts s to a Format, returning an error if s is not
// one of the recognized notation tags.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Rad, Deg, Gon, Mil, DMS, DM:
		return f, nil
	default:
		return "", fmt.Errorf("angle: unrecognized format %q", s)
	}
}

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// GonToRad converts an angle in gons to radians.
func GonToRad(gon float64) float64 { return gon * math.Pi / 200 }

// RadToGon converts an angle in radians to gons.
func RadToGon(rad float64) float64 { return rad * 200 / math.Pi }

// MilToRad converts an angle in mils to radians.
func MilToRad(mil float64) float64 { return mil * math.Pi / 3200 }

// RadToMil converts an angle in radians to mils.
func RadToMil(rad float64) float64 { return rad * 3200 / math.Pi }

// DMSToRad converts an angle given as (degree, minute, second) to
// radians. The sign is taken from the degree component only; minutes
// and seconds are treated as unsigned magnitudes.
func DMSToRad(d, m, s float64) float64 {
	sign := 0.0
	if d > 0 {
		sign = 1
	} else if d < 0 {
		sign = -1
	}
	return sign * (math.Abs(d) + m/60 + s/3600) * math.Pi / 180
}

// DMToRad converts an angle given as (degree, decimal minute) to radians.
func DMToRad(d, m float64) float64 { return DMSToRad(d, m, 0) }

// RadToDM decomposes an angle in radians into (degree, decimal minute).
// The decomposition is display-oriented and lossy: the degree part is
// the floor of the degree value and the minutes are the unsigned
// fractional remainder.
func RadToDM(rad float64) (d, m float64) {
	deg := RadToDeg(rad)
	d = math.Floor(deg)
	m = math.Abs(deg*100-d*100) * (60. / 100.)
	return d, m
}

// RadToDMS decomposes an angle in radians into (degree, minute, second),
// continuing the RadToDM decomposition into the seconds place.
func RadToDMS(rad float64) (d, m, s float64) {
	d, ms := RadToDM(rad)
	m = math.Floor(ms)
	s = (ms - m) * 60
	return d, m, s
}

// toRad dispatches the scalar notations. The tuple notations are
// rejected here because a single float cannot carry them.
func toRad(x float64, f Format) (float64, error) {
	switch f {
	case Rad:
		return x, nil
	case Deg:
		return DegToRad(x), nil
	case Gon:
		return GonToRad(x), nil
	case Mil:
		return MilToRad(x), nil
	case DMS, DM:
		return 0, fmt.Errorf("angle: format %q takes component tuples; use the DMS/DM constructors", f)
	default:
		return 0, fmt.Errorf("angle: unrecognized format %q", f)
	}
}

func scaledSlice(x []float64, c float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	floats.Scale(c, out)
	return out
}

// DegToRadSlice converts angles in degrees to radians element-wise,
// returning a new slice.
func DegToRadSlice(deg []float64) []float64 { return scaledSlice(deg, math.Pi/180) }

// RadToDegSlice converts angles in radians to degrees element-wise,
// returning a new slice.
func RadToDegSlice(rad []float64) []float64 { return scaledSlice(rad, 180/math.Pi) }

// GonToRadSlice converts angles in gons to radians element-wise,
// returning a new slice.
func GonToRadSlice(gon []float64) []float64 { return scaledSlice(gon, math.Pi/200) }

// RadToGonSlice converts angles in radians to gons element-wise,
// returning a new slice.
func RadToGonSlice(rad []float64) []float64 { return scaledSlice(rad, 200/math.Pi) }

// MilToRadSlice converts angles in mils to radians element-wise,
// returning a new slice.
func MilToRadSlice(mil []float64) []float64 { return scaledSlice(mil, math.Pi/3200) }

// RadToMilSlice converts angles in radians to mils element-wise,
// returning a new slice.
func RadToMilSlice(rad []float64) []float64 { return scaledSlice(rad, 3200/math.Pi) }

func toRadSlice(x []float64, f Format) ([]float64, error) {
	switch f {
	case Rad:
		out := make([]float64, len(x))
		copy(out, x)
		return out, nil
	case Deg:
		return DegToRadSlice(x), nil
	case Gon:
		return GonToRadSlice(x), nil
	case Mil:
		return MilToRadSlice(x), nil
	case DMS, DM:
		return nil, fmt.Errorf("angle: format %q takes component tuples; use the DMS/DM constructors", f)
	default:
		return nil, fmt.Errorf("angle: unrecognized format %q", f)
	}
}
