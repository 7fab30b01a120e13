/*
 * weight_test.go, part of solprep.
 *
 *
 * Copyright 2024 Manuel Ferrada <mferrada{at}protonDOTme>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package solprep

import (
	"math"
	"testing"
)

func TestWaterWeight(Te *testing.T) {
	mw, err := MolecularWeight("H2O")
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(mw-18.015) > 1e-9 {
		Te.Errorf("MW of water: %v, want 18.015", mw)
	}
}

func TestHydrateWeight(Te *testing.T) {
	//copper sulfate pentahydrate: the x5 applies to the water only
	mw, err := MolecularWeight("CuSO4·5H2O")
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(mw-249.68) > 0.01 {
		Te.Errorf("MW of CuSO4·5H2O: %v, want 249.68", mw)
	}
}

func TestSaltWeight(Te *testing.T) {
	mw, err := MolecularWeight("NaCl")
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(mw-58.44) > 0.01 {
		Te.Errorf("MW of NaCl: %v, want 58.44", mw)
	}
}

func TestFormatVolume(Te *testing.T) {
	cases := []struct {
		liters float64
		want   string
	}{
		{5e-7, "500 nL"},
		{1.5e-5, "15 µL"},
		{0.0025, "2.5 mL"},
		{0.1, "100 mL"},
		{2, "2 L"},
		{1.2345678, "1.235 L"},
	}
	for _, v := range cases {
		if got := FormatVolume(v.liters); got != v.want {
			Te.Errorf("FormatVolume(%v) = %q, want %q", v.liters, got, v.want)
		}
	}
}

func TestFormatMass(Te *testing.T) {
	cases := []struct {
		grams float64
		want  string
	}{
		{5e-7, "500 ng"},
		{2.5e-5, "25 µg"},
		{0.0585, "58.5 mg"},
		{58.44, "58.44 g"},
		{2.0001, "2 g"},
	}
	for _, v := range cases {
		if got := FormatMass(v.grams); got != v.want {
			Te.Errorf("FormatMass(%v) = %q, want %q", v.grams, got, v.want)
		}
	}
}

func TestFormatConcentration(Te *testing.T) {
	cases := []struct {
		value float64
		unit  Unit
		want  string
	}{
		{1.23456, Molar, "1.235 M"},
		{50.04, MilliMolar, "50 mM"},
		{0.456, PercentWV, "0.46 %w/v"},
		{3.14159, GramPerL, "3.142 g/L"},
		{10.24, Fold, "10.2 x"},
		{1.5, Unit("furlongs"), "1.5 furlongs"}, //unknown units pass the raw number through
	}
	for _, v := range cases {
		if got := FormatConcentration(v.value, v.unit); got != v.want {
			Te.Errorf("FormatConcentration(%v, %q) = %q, want %q", v.value, v.unit, got, v.want)
		}
	}
}

//Formatting a value and re-parsing the number must reproduce it within the
//rounding precision of the chosen scale.
func TestFormatRoundTrip(Te *testing.T) {
	for _, liters := range []float64{2.5e-8, 3.3e-5, 0.0025, 0.75, 12.5} {
		s := FormatVolume(liters)
		q, err := ParseQuantity(s)
		if err != nil {
			Te.Fatalf("re-parsing %q: %v", s, err)
		}
		back, err := q.Liters()
		if err != nil {
			Te.Fatal(err)
		}
		if math.Abs(back-liters)/liters > 1e-3 {
			Te.Errorf("round trip of %v L through %q gave %v L", liters, s, back)
		}
	}
}
