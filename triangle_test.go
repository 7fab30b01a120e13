/*
 * triangle_test.go, part of solprep.
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

func TestTriangleMass(Te *testing.T) {
	t := &Triangle{
		MW:      58.44,
		Conc:    &Quantity{1, Molar},
		Volume:  &Quantity{1, Liter},
		Unknown: UnknownMass,
	}
	m, ok, err := t.Solve()
	if err != nil || !ok {
		Te.Fatalf("ok=%v err=%v", ok, err)
	}
	if math.Abs(m-58.44) > 1e-9 {
		Te.Errorf("mass %v g, want 58.44", m)
	}
}

func TestTriangleVolume(Te *testing.T) {
	t := &Triangle{
		MW:      58.44,
		Mass:    &Quantity{29.22, Gram},
		Conc:    &Quantity{1, Molar},
		Unknown: UnknownVolume,
	}
	v, ok, err := t.Solve()
	if err != nil || !ok {
		Te.Fatalf("ok=%v err=%v", ok, err)
	}
	if math.Abs(v-0.5) > 1e-12 {
		Te.Errorf("volume %v L, want 0.5", v)
	}
}

func TestTriangleConcentration(Te *testing.T) {
	t := &Triangle{
		MW:      180.16, //glucose
		Mass:    &Quantity{9.008, Gram},
		Volume:  &Quantity{500, MilliLiter},
		Unknown: UnknownConcentration,
	}
	c, ok, err := t.Solve()
	if err != nil || !ok {
		Te.Fatalf("ok=%v err=%v", ok, err)
	}
	if math.Abs(c-0.1) > 1e-6 {
		Te.Errorf("concentration %v M, want 0.1", c)
	}
}

func TestTriangleMW(Te *testing.T) {
	t := &Triangle{
		Mass:    &Quantity{58.44, Gram},
		Volume:  &Quantity{1, Liter},
		Conc:    &Quantity{1, Molar},
		Unknown: UnknownMW,
	}
	mw, ok, err := t.Solve()
	if err != nil || !ok {
		Te.Fatalf("ok=%v err=%v", ok, err)
	}
	if math.Abs(mw-58.44) > 1e-9 {
		Te.Errorf("MW %v, want 58.44", mw)
	}
}

//A known that is simply absent is "nothing to compute yet", not an error.
func TestTriangleIncomplete(Te *testing.T) {
	t := &Triangle{
		MW:      58.44,
		Conc:    &Quantity{1, Molar},
		Unknown: UnknownMass, //volume not entered
	}
	_, ok, err := t.Solve()
	if err != nil {
		Te.Fatalf("incomplete input reported as error: %v", err)
	}
	if ok {
		Te.Error("Solve claimed success with a missing known")
	}
}

//Input that is present but unusable is an error, unlike absent input.
func TestTriangleInvalid(Te *testing.T) {
	t := &Triangle{
		MW:      58.44,
		Conc:    &Quantity{-1, Molar},
		Volume:  &Quantity{1, Liter},
		Unknown: UnknownMass,
	}
	_, ok, err := t.Solve()
	if err == nil || ok {
		Te.Error("negative concentration must be a typed error")
	}
}

//With a mass-domain concentration MW cancels out of mass = C x V, so it is
//not needed for mass or volume, and not derivable as an unknown.
func TestTriangleMassDomain(Te *testing.T) {
	t := &Triangle{
		Conc:    &Quantity{5, GramPerL},
		Volume:  &Quantity{200, MilliLiter},
		Unknown: UnknownMass, //no MW set, and none needed
	}
	m, ok, err := t.Solve()
	if err != nil || !ok {
		Te.Fatalf("ok=%v err=%v", ok, err)
	}
	if math.Abs(m-1.0) > 1e-12 {
		Te.Errorf("mass %v g, want 1", m)
	}
	t = &Triangle{
		Mass:    &Quantity{1, Gram},
		Volume:  &Quantity{200, MilliLiter},
		Conc:    &Quantity{5, GramPerL},
		Unknown: UnknownMW,
	}
	_, _, err = t.Solve()
	if KindOf(err) != ErrMissingMW {
		Te.Errorf("got %v, want ErrMissingMW", err)
	}
}

//Switching the designated unknown is an explicit transition; the old result
//plays no part in the new derivation.
func TestTriangleSwitchUnknown(Te *testing.T) {
	t := &Triangle{
		MW:      58.44,
		Conc:    &Quantity{1, Molar},
		Volume:  &Quantity{1, Liter},
		Unknown: UnknownMass,
	}
	m, ok, err := t.Solve()
	if err != nil || !ok {
		Te.Fatal(err)
	}
	t.Mass = &Quantity{m, Gram}
	t.Unknown = UnknownConcentration
	t.Conc = nil
	c, ok, err := t.Solve()
	if err != nil || !ok {
		Te.Fatalf("ok=%v err=%v", ok, err)
	}
	if math.Abs(c-1) > 1e-9 {
		Te.Errorf("concentration %v M, want 1", c)
	}
}
