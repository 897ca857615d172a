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

package angleutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/spf13/cast"

	"github.com/spatialmodel/angle"
)

// parseValue reads one command-line value in format f. The tuple
// formats take colon-separated components (e.g. 10:30:0 for 10°30′0″).
func parseValue(arg string, f angle.Format) (angle.Angle, error) {
	switch f {
	case angle.DMS, angle.DM:
		parts := strings.Split(arg, ":")
		want := 3
		if f == angle.DM {
			want = 2
		}
		if len(parts) != want {
			return angle.Angle{}, fmt.Errorf("angle: %q is not a %d-component %q value", arg, want, f)
		}
		c := make([]float64, len(parts))
		for i, p := range parts {
			v, err := cast.ToFloat64E(strings.TrimSpace(p))
			if err != nil {
				return angle.Angle{}, fmt.Errorf("angle: parsing %q: %v", arg, err)
			}
			c[i] = v
		}
		if f == angle.DM {
			return angle.NewDM(c[0], c[1]), nil
		}
		return angle.NewDMS(c[0], c[1], c[2]), nil
	default:
		v, err := cast.ToFloat64E(arg)
		if err != nil {
			return angle.Angle{}, fmt.Errorf("angle: parsing %q: %v", arg, err)
		}
		return angle.New(v, f)
	}
}

// scalarAccessor is the subset of the angle.Angle and angle.Azimuth
// accessors that renderValue needs; the numeric domain comes from the
// concrete type behind it.
type scalarAccessor interface {
	Rad() float64
	Deg() float64
	Gon() float64
	Mil() float64
	DMS() (d, m, s float64)
	DM() (d, m float64)
}

// renderValue writes a in format f, using colon-separated components
// for the tuple formats.
func renderValue(a scalarAccessor, f angle.Format) (string, error) {
	g := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	switch f {
	case angle.Rad:
		return g(a.Rad()), nil
	case angle.Deg:
		return g(a.Deg()), nil
	case angle.Gon:
		return g(a.Gon()), nil
	case angle.Mil:
		return g(a.Mil()), nil
	case angle.DMS:
		d, m, s := a.DMS()
		return fmt.Sprintf("%s:%s:%s", g(d), g(m), g(s)), nil
	case angle.DM:
		d, m := a.DM()
		return fmt.Sprintf("%s:%s", g(d), g(m)), nil
	default:
		return "", fmt.Errorf("angle: unrecognized format %q", f)
	}
}

// Convert converts each argument from one angular notation to another.
// Results are normalized to the canonical domain: (−180°, 180°] for
// angles, [0°, 360°) with asAzimuth.
func Convert(args []string, from, to angle.Format, asAzimuth bool) ([]string, error) {
	out := make([]string, len(args))
	for i, arg := range args {
		a, err := parseValue(arg, from)
		if err != nil {
			return nil, err
		}
		if asAzimuth {
			out[i], err = renderValue(angle.NewAzimuthRad(a.Rad()), to)
		} else {
			out[i], err = renderValue(a, to)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Compass classifies each azimuth argument, given in format f, into
// one of the sixteen named compass sectors.
func Compass(args []string, f angle.Format) ([]string, error) {
	out := make([]string, len(args))
	for i, arg := range args {
		a, err := parseValue(arg, f)
		if err != nil {
			return nil, err
		}
		out[i] = angle.NewAzimuthRad(a.Rad()).CardinalDirection()
	}
	return out, nil
}

// Mean computes the circular mean of the arguments, given in format f,
// optionally weighted. It returns the mean in degrees, normalized to
// [0°, 360°) when asAzimuth is set and (−180°, 180°] otherwise.
func Mean(args, weights []string, f angle.Format, asAzimuth bool) (float64, error) {
	if len(weights) != 0 && len(weights) != len(args) {
		return 0, fmt.Errorf("angle: %d weights for %d values", len(weights), len(args))
	}
	rads := make([]float64, len(args))
	for i, arg := range args {
		a, err := parseValue(arg, f)
		if err != nil {
			return 0, err
		}
		rads[i] = a.Rad()
	}
	var w []float64
	if len(weights) != 0 {
		w = make([]float64, len(weights))
		for i, s := range weights {
			v, err := cast.ToFloat64E(s)
			if err != nil {
				return 0, fmt.Errorf("angle: parsing weight %q: %v", s, err)
			}
			w[i] = v
		}
	}
	if asAzimuth {
		return angle.NewAzimuthRadSlice(rads).DegMean(w), nil
	}
	return angle.NewRadSlice(rads).DegMean(w), nil
}

// Vectors projects each argument, given in format f, onto its 2-D unit
// direction vector.
func Vectors(args []string, f angle.Format) ([]geom.Point, error) {
	out := make([]geom.Point, len(args))
	for i, arg := range args {
		a, err := parseValue(arg, f)
		if err != nil {
			return nil, err
		}
		out[i] = a.UnitVector()
	}
	return out, nil
}
