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
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/spatialmodel/angle"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		from, to  angle.Format
		asAzimuth bool
		want      []string
	}{
		{"gon to deg", []string{"200"}, angle.Gon, angle.Deg, false, []string{"180"}},
		{"deg to gon", []string{"90"}, angle.Deg, angle.Gon, false, []string{"100"}},
		{"dms to deg", []string{"10:30:0"}, angle.DMS, angle.Deg, false, []string{"10.5"}},
		{"deg to dm", []string{"10.5"}, angle.Deg, angle.DM, false, []string{"10:30"}},
		{"azimuth normalization", []string{"-90"}, angle.Deg, angle.Deg, true, []string{"270"}},
		{"azimuth to dms", []string{"-90"}, angle.Deg, angle.DMS, true, []string{"270:0:0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.args, tt.from, tt.to, tt.asAzimuth)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("want %d results, got %d", len(tt.want), len(got))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("result %d: want %s, got %s", i, tt.want[i], got[i])
				}
			}
		})
	}
	if _, err := Convert([]string{"ninety"}, angle.Deg, angle.Rad, false); err == nil {
		t.Error("expected error for unparseable value")
	}
	if _, err := Convert([]string{"10:30"}, angle.DMS, angle.Rad, false); err == nil {
		t.Error("expected error for wrong tuple size")
	}
}

func TestCompass(t *testing.T) {
	got, err := Compass([]string{"0", "45", "33.75", "33.74", "270"}, angle.Deg)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"N", "NE", "NE", "NNE", "W"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result %d: want %s, got %s", i, want[i], got[i])
		}
	}
}

func TestMeanOp(t *testing.T) {
	got, err := Mean([]string{"350", "10"}, nil, angle.Deg, false)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbsOrRel(got, 0, 1e-9, 1e-9) {
		t.Errorf("want 0, got %g", got)
	}
	got, err = Mean([]string{"20", "40"}, []string{"1", "1"}, angle.Deg, true)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbsOrRel(got, 30, 1e-9, 1e-9) {
		t.Errorf("want 30, got %g", got)
	}
	if _, err := Mean([]string{"1", "2"}, []string{"1"}, angle.Deg, false); err == nil {
		t.Error("expected error for mismatched weights")
	}
}

func TestVectors(t *testing.T) {
	got, err := Vectors([]string{"0", "90"}, angle.Deg)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbsOrRel(got[0].X, 1, 1e-12, 1e-12) ||
		!floats.EqualWithinAbsOrRel(got[0].Y, 0, 1e-12, 1e-12) {
		t.Errorf("0°: want (1, 0), got (%g, %g)", got[0].X, got[0].Y)
	}
	if !floats.EqualWithinAbsOrRel(got[1].X, 0, 1e-12, 1e-12) ||
		!floats.EqualWithinAbsOrRel(got[1].Y, 1, 1e-12, 1e-12) {
		t.Errorf("90°: want (0, 1), got (%g, %g)", got[1].X, got[1].Y)
	}
}
