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

// Averaging across the wraparound: the mean of 350° and 10° is 0°,
// not 180°.
func TestMeanWraparound(t *testing.T) {
	a, err := NewSlice([]float64{350, 10}, Deg)
	if err != nil {
		t.Fatal(err)
	}
	m := a.Mean(nil)
	if !m.IsScalar() {
		t.Error("mean should be scalar")
	}
	if got := m.Deg(); !floats.EqualWithinAbsOrRel(got, 0, 1e-9, 1e-9) {
		t.Errorf("want 0, got %g", got)
	}
	if got := a.DegMean(nil); !floats.EqualWithinAbsOrRel(got, 0, 1e-9, 1e-9) {
		t.Errorf("DegMean: want 0, got %g", got)
	}
}

func TestMeanSimple(t *testing.T) {
	z, err := NewAzimuthSlice([]float64{20, 40}, Deg)
	if err != nil {
		t.Fatal(err)
	}
	m := z.Mean(nil)
	if !m.IsAzimuth() {
		t.Error("Azimuth mean should be an Azimuth")
	}
	if got := m.Deg(); !floats.EqualWithinAbsOrRel(got, 30, 1e-9, 1e-9) {
		t.Errorf("want 30, got %g", got)
	}
	if r := m.Rad(); r < 0 || r >= 2*math.Pi {
		t.Errorf("mean %g outside [0, 2π)", r)
	}
}

func TestMeanWeighted(t *testing.T) {
	z, err := NewAzimuthSlice([]float64{0, 90}, Deg)
	if err != nil {
		t.Fatal(err)
	}
	// atan2((3·sin0 + 1·sin90)/4, (3·cos0 + 1·cos90)/4) = atan2(1, 3).
	want := RadToDeg(math.Atan2(1, 3))
	if got := z.DegMean([]float64{3, 1}); !floats.EqualWithinAbsOrRel(got, want, 1e-9, 1e-9) {
		t.Errorf("want %g, got %g", want, got)
	}
	// Uniform weights match the unweighted mean.
	got := z.DegMean([]float64{1, 1})
	unweighted := z.DegMean(nil)
	if !floats.EqualWithinAbsOrRel(got, unweighted, 1e-12, 1e-12) {
		t.Errorf("uniform weights: want %g, got %g", unweighted, got)
	}
}

func TestMeanScalar(t *testing.T) {
	a, err := New(45, Deg)
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Mean(nil).Deg(); !floats.EqualWithinAbsOrRel(got, 45, 1e-9, 1e-9) {
		t.Errorf("want 45, got %g", got)
	}
}
