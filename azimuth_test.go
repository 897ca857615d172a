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
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestAzimuthDomain(t *testing.T) {
	tests := []struct {
		in, want float64 // degrees
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{359.5, 359.5},
		{360, 0},
		{-90, 270},
		{720, 0},
		{-350, 10},
	}
	for _, tt := range tests {
		z, err := NewAzimuth(tt.in, Deg)
		if err != nil {
			t.Fatal(err)
		}
		if got := z.Deg(); !floats.EqualWithinAbsOrRel(got, tt.want, 1e-9, 1e-9) {
			t.Errorf("deg %g: want %g, got %g", tt.in, tt.want, got)
		}
		if r := z.Rad(); r < 0 || r >= 2*math.Pi {
			t.Errorf("deg %g: %g rad outside [0, 2π)", tt.in, r)
		}
	}
}

func TestAzimuthToAngle(t *testing.T) {
	z, err := NewAzimuth(80, Deg)
	if err != nil {
		t.Fatal(err)
	}
	// An 80° azimuth is a 10° mathematical angle.
	if got := z.ToAngle().Deg(); !floats.EqualWithinAbsOrRel(got, 10, 1e-9, 1e-9) {
		t.Errorf("want 10, got %g", got)
	}
	// Round trip through both conversions.
	for _, x := range []float64{0, 45, 90, 180, 270, 359} {
		z, err := NewAzimuth(x, Deg)
		if err != nil {
			t.Fatal(err)
		}
		back := z.ToAngle().ToAzimuth()
		if got := back.Deg(); !floats.EqualWithinAbsOrRel(got, x, 1e-9, 1e-9) {
			t.Errorf("deg %g: got %g", x, got)
		}
	}
}

func TestAzimuthDerived(t *testing.T) {
	z, err := NewAzimuth(30, Deg)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		got  Azimuth
		want float64 // degrees
	}{
		{"complement", z.Complement(), 60},
		{"supplement", z.Supplement(), 150},
		{"reverse", z.Reverse(), 210},
	}
	for _, tt := range tests {
		if got := tt.got.Deg(); !floats.EqualWithinAbsOrRel(got, tt.want, 1e-9, 1e-9) {
			t.Errorf("%s: want %g, got %g", tt.name, tt.want, got)
		}
		if r := tt.got.Rad(); r < 0 || r >= 2*math.Pi {
			t.Errorf("%s: result %g outside [0, 2π)", tt.name, r)
		}
	}
}

func TestEastFacing(t *testing.T) {
	tests := []struct {
		in, want float64 // degrees
	}{
		{90, 90},   // already eastward
		{180, 180}, // boundary stays put
		{270, 180}, // complement of 270 wraps to 180
		{350, 100},
	}
	for _, tt := range tests {
		z, err := NewAzimuth(tt.in, Deg)
		if err != nil {
			t.Fatal(err)
		}
		if got := z.EastFacing().Deg(); !floats.EqualWithinAbsOrRel(got, tt.want, 1e-9, 1e-9) {
			t.Errorf("deg %g: want %g, got %g", tt.in, tt.want, got)
		}
	}
}

func TestCardinalDirection(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{0, "N"},
		{5, "N"},
		{11.25, "N"}, // open lower bound of NNE
		{20, "NNE"},
		{33.74, "NNE"},
		{33.75, "NE"}, // closed lower bound
		{45, "NE"},
		{56.25, "NE"}, // closed upper bound
		{60, "ENE"},
		{78.75, "E"},
		{90, "E"},
		{101.25, "E"},
		{110, "ESE"},
		{123.75, "SE"},
		{135, "SE"},
		{150, "SSE"},
		{168.75, "S"},
		{180, "S"},
		{191.25, "S"},
		{200, "SSW"},
		{213.75, "SW"},
		{225, "SW"},
		{240, "WSW"},
		{258.75, "W"},
		{270, "W"},
		{291.25, "W"}, // the W sector is wider than its neighbors
		{291.26, "WNW"},
		{300, "WNW"},
		{303.75, "NW"},
		{315, "NW"},
		{326.25, "NW"},
		{330, "NNW"},
		{348.75, "N"},
		{355, "N"},
		{359.9, "N"},
	}
	for _, tt := range tests {
		z, err := NewAzimuth(tt.deg, Deg)
		if err != nil {
			t.Fatal(err)
		}
		if got := z.CardinalDirection(); got != tt.want {
			t.Errorf("%g°: want %s, got %s", tt.deg, tt.want, got)
		}
	}
}

func TestCardinalDirectionSlice(t *testing.T) {
	z, err := NewAzimuthSlice([]float64{0, 45, 90, 180, 270}, Deg)
	if err != nil {
		t.Fatal(err)
	}
	got := z.CardinalDirectionSlice()
	want := []string{"N", "NE", "E", "S", "W"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: want %s, got %s", i, want[i], got[i])
		}
	}
	mustPanic(t, "CardinalDirection on array", func() { z.CardinalDirection() })
}

func TestAzimuthShape(t *testing.T) {
	z, err := NewAzimuthSlice([]float64{-90, 450}, Deg)
	if err != nil {
		t.Fatal(err)
	}
	if z.Len() != 2 {
		t.Errorf("Len: want 2, got %d", z.Len())
	}
	at := z.At(0)
	if !at.IsScalar() || !at.IsAzimuth() {
		t.Error("At result has wrong type or shape")
	}
	if got := at.Deg(); !floats.EqualWithinAbsOrRel(got, 270, 1e-9, 1e-9) {
		t.Errorf("At(0): want 270, got %g", got)
	}
	sl := z.Slice(1, 2)
	if got := sl.DegSlice()[0]; !floats.EqualWithinAbsOrRel(got, 90, 1e-9, 1e-9) {
		t.Errorf("Slice: want 90, got %g", got)
	}
	s := NewAzimuthRad(1)
	mustPanic(t, "Len", func() { s.Len() })
	mustPanic(t, "At", func() { s.At(0) })
}

func TestAzimuthEnclosedAngle(t *testing.T) {
	a, err := NewAzimuth(350, Deg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewAzimuth(10, Deg)
	if err != nil {
		t.Fatal(err)
	}
	if got := a.EnclosedAngle(b).Deg(); !floats.EqualWithinAbsOrRel(got, 20, 1e-9, 1e-9) {
		t.Errorf("want 20, got %g", got)
	}
	if !Equal(a.EnclosedAngle(b), b.EnclosedAngle(a)) {
		t.Error("enclosed angle is not symmetric")
	}
}

func TestAzimuthTupleConstructors(t *testing.T) {
	z := NewAzimuthDMS(-10, 30, 0)
	if got := z.Deg(); !floats.EqualWithinAbsOrRel(got, 349.5, 1e-9, 1e-9) {
		t.Errorf("want 349.5, got %g", got)
	}
	z = NewAzimuthDM(350, 30)
	if got := z.Deg(); !floats.EqualWithinAbsOrRel(got, 350.5, 1e-9, 1e-9) {
		t.Errorf("want 350.5, got %g", got)
	}
}
