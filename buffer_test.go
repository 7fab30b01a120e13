/*
 * buffer_test.go, part of solprep.
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
	"fmt"
	"math"
	"strings"
	"testing"
)

func trisSystem() *ConjugateSystem {
	return &ConjugateSystem{
		Name: "Tris",
		PKa:  8.06,
		Acid: &Reagent{Name: "Tris-HCl", Formula: "C4H11NO3·HCl", MW: 157.60},
		Base: &Reagent{Name: "Tris base", Formula: "C4H11NO3", MW: 121.14},
	}
}

//At pH equal to pKa the Henderson-Hasselbalch ratio is exactly 1 and the
//total splits evenly between the two species.
func TestBufferEvenSplit(Te *testing.T) {
	r, err := SolveBufferRecipe(trisSystem(), 8.06, Quantity{100, MilliMolar}, Quantity{1, Liter}, SaltMix, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(r.AcidConc-0.05) > 1e-12 || math.Abs(r.BaseConc-0.05) > 1e-12 {
		Te.Errorf("split at pH = pKa: acid %v M, base %v M; want 0.05 each", r.AcidConc, r.BaseConc)
	}
	if math.Abs(r.AcidMass-0.05*157.60) > 1e-9 {
		Te.Errorf("acid mass %v g, want %v", r.AcidMass, 0.05*157.60)
	}
	if math.Abs(r.BaseMass-0.05*121.14) > 1e-9 {
		Te.Errorf("base mass %v g, want %v", r.BaseMass, 0.05*121.14)
	}
	if r.Advisory != "" {
		Te.Errorf("unexpected advisory at pH = pKa: %q", r.Advisory)
	}
	fmt.Println(r.Text())
}

func TestBufferSplitSkewed(Te *testing.T) {
	//one unit above pKa: ratio 10, so 1/11 acid and 10/11 base
	r, err := SolveBufferRecipe(trisSystem(), 9.06, Quantity{110, MilliMolar}, Quantity{1, Liter}, SaltMix, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(r.AcidConc-0.01) > 1e-9 || math.Abs(r.BaseConc-0.10) > 1e-9 {
		Te.Errorf("split at pKa+1: acid %v M, base %v M; want 0.01 and 0.10", r.AcidConc, r.BaseConc)
	}
}

func TestBufferTitration(Te *testing.T) {
	hcl := &StockAdjuster{Name: "HCl", Molarity: 1, Polarity: AcidAdjuster}
	r, err := SolveBufferRecipe(trisSystem(), 8.06, Quantity{100, MilliMolar}, Quantity{1, Liter}, Titration, hcl)
	if err != nil {
		Te.Fatal(err)
	}
	//an acid titrant starts from the base powder and converts half of it
	if r.Powder == nil || r.Powder.Name != "Tris base" {
		Te.Fatalf("powder is %v, want Tris base", r.Powder)
	}
	if math.Abs(r.PowderMass-0.1*121.14) > 1e-9 {
		Te.Errorf("powder mass %v g, want %v", r.PowderMass, 0.1*121.14)
	}
	//acid fraction is 0.05 M over 1 L, with a 1 M titrant
	if math.Abs(r.AdjusterVol-0.05) > 1e-12 {
		Te.Errorf("adjuster volume %v L, want 0.05", r.AdjusterVol)
	}
}

func TestBufferTitrationWithBase(Te *testing.T) {
	naoh := &StockAdjuster{Name: "NaOH", Molarity: 10, Polarity: BaseAdjuster}
	r, err := SolveBufferRecipe(trisSystem(), 8.06, Quantity{100, MilliMolar}, Quantity{1, Liter}, Titration, naoh)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Powder.Name != "Tris-HCl" {
		Te.Errorf("powder is %q, want Tris-HCl", r.Powder.Name)
	}
	if math.Abs(r.AdjusterVol-0.005) > 1e-12 {
		Te.Errorf("adjuster volume %v L, want 0.005", r.AdjusterVol)
	}
}

func TestIncompatibleAdjuster(Te *testing.T) {
	//a system with no weighable acid form cannot be titrated downward with a base
	sys := &ConjugateSystem{
		Name: "carbonate",
		PKa:  10.33,
		Base: &Reagent{Name: "sodium carbonate", Formula: "Na2CO3", MW: 105.99},
	}
	naoh := &StockAdjuster{Name: "NaOH", Molarity: 1, Polarity: BaseAdjuster}
	_, err := SolveBufferRecipe(sys, 10.0, Quantity{100, MilliMolar}, Quantity{1, Liter}, Titration, naoh)
	if KindOf(err) != ErrIncompatibleAdjuster {
		Te.Errorf("got %v, want ErrIncompatibleAdjuster", err)
	}
	//with an acid titrant the base powder suffices
	hcl := &StockAdjuster{Name: "HCl", Molarity: 1, Polarity: AcidAdjuster}
	if _, err := SolveBufferRecipe(sys, 10.0, Quantity{100, MilliMolar}, Quantity{1, Liter}, Titration, hcl); err != nil {
		Te.Errorf("acid titration of a base-only system failed: %v", err)
	}
}

func TestSaltMixNeedsBothForms(Te *testing.T) {
	sys := &ConjugateSystem{
		Name: "glycine",
		PKa:  9.6,
		Acid: &Reagent{Name: "glycine", Formula: "C2H5NO2", MW: 75.07},
	}
	_, err := SolveBufferRecipe(sys, 9.6, Quantity{100, MilliMolar}, Quantity{1, Liter}, SaltMix, nil)
	if KindOf(err) != ErrMissingReagent {
		Te.Errorf("got %v, want ErrMissingReagent", err)
	}
}

//A pH far from pKa is an advisory on the recipe, never an error: the recipe
//must still be fully computed.
func TestBufferAdvisory(Te *testing.T) {
	r, err := SolveBufferRecipe(trisSystem(), 5.0, Quantity{100, MilliMolar}, Quantity{1, Liter}, SaltMix, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Advisory == "" {
		Te.Error("no advisory for pH 5 on a pKa 8.06 system")
	}
	if !strings.Contains(r.Text(), "note:") {
		Te.Error("advisory missing from recipe text")
	}
	if r.AcidMass <= 0 || r.BaseMass <= 0 {
		Te.Error("advisory recipe was not computed")
	}
}
