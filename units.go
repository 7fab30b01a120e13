/*
 * units.go, part of solprep.
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
	"strconv"
	"strings"
)

//Unit is a unit tag. A tag belongs to exactly one family: molar
//concentration, mass concentration, plain volume or plain mass.
//The micro prefix is spelled with the micro sign (U+00B5); ParseUnit
//accepts the Greek mu and the plain "u" as aliases.
type Unit string

const (
	Molar      Unit = "M"
	MilliMolar Unit = "mM"
	MicroMolar Unit = "µM"

	GramPerL  Unit = "g/L"
	MgPerML   Unit = "mg/mL"
	MgPerL    Unit = "mg/L"
	UgPerML   Unit = "µg/mL"
	NgPerUL   Unit = "ng/µL"
	PercentWV Unit = "%w/v"

	Liter      Unit = "L"
	MilliLiter Unit = "mL"
	MicroLiter Unit = "µL"
	NanoLiter  Unit = "nL"

	KiloGram  Unit = "kg"
	Gram      Unit = "g"
	MilliGram Unit = "mg"
	MicroGram Unit = "µg"
	NanoGram  Unit = "ng"

	Fold Unit = "x" //dilution factor. Display only, it has no base scale.
)

//Domain says whether a concentration counts particles (moles) or mass.
//Converting between the two requires a molecular weight.
type Domain int

const (
	DomainNone Domain = iota //not a concentration unit
	DomainMolar
	DomainMass
)

func (d Domain) String() string {
	switch d {
	case DomainMolar:
		return "molar"
	case DomainMass:
		return "mass"
	}
	return "none"
}

//Scale factors to each family's base unit: M for molar concentrations,
//g/L for mass concentrations, L for volumes and g for masses.
//%w/v is g per 100 mL, i.e. 10 g/L. mg/mL is numerically identical to g/L.
var molarScale = map[Unit]float64{Molar: 1, MilliMolar: 1e-3, MicroMolar: 1e-6}
var massConcScale = map[Unit]float64{GramPerL: 1, MgPerML: 1, MgPerL: 1e-3, UgPerML: 1e-3, NgPerUL: 1e-3, PercentWV: 10}
var volumeScale = map[Unit]float64{Liter: 1, MilliLiter: 1e-3, MicroLiter: 1e-6, NanoLiter: 1e-9}
var massScale = map[Unit]float64{KiloGram: 1e3, Gram: 1, MilliGram: 1e-3, MicroGram: 1e-6, NanoGram: 1e-9}

//ConcDomain classifies a unit tag as a molar concentration, a mass
//concentration, or neither. Plain volume and mass tags have no domain.
func (u Unit) ConcDomain() Domain {
	if _, ok := molarScale[u]; ok {
		return DomainMolar
	}
	if _, ok := massConcScale[u]; ok {
		return DomainMass
	}
	return DomainNone
}

func (u Unit) known() bool {
	if u == Fold {
		return true
	}
	if u.ConcDomain() != DomainNone {
		return true
	}
	if _, ok := volumeScale[u]; ok {
		return true
	}
	_, ok := massScale[u]
	return ok
}

var unitAlias = map[string]Unit{
	"uM":     MicroMolar,
	"μM":     MicroMolar,
	"ug/mL":  UgPerML,
	"μg/mL":  UgPerML,
	"ng/uL":  NgPerUL,
	"ng/μL":  NgPerUL,
	"uL":     MicroLiter,
	"μL":     MicroLiter,
	"ug":     MicroGram,
	"μg":     MicroGram,
	"%":      PercentWV,
	"g/l":    GramPerL,
	"mg/ml":  MgPerML,
	"mg/l":   MgPerL,
	"X":      Fold,
}

//ParseUnit turns user-typed text into a Unit tag, accepting the common
//spellings of the micro prefix.
func ParseUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if u, ok := unitAlias[s]; ok {
		return u, nil
	}
	u := Unit(s)
	if u.known() {
		return u, nil
	}
	return "", NewError(ErrSyntax, "solprep: unrecognized unit %q", s)
}

//Quantity is a numeric value together with its unit tag.
type Quantity struct {
	Value float64
	Unit  Unit
}

//ParseQuantity parses text like "100 mM", "2.5mL" or "1e-3 M" into a
//Quantity. The number and the unit may or may not be separated by spaces.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	best := -1
	for i := 1; i <= len(s); i++ {
		if _, err := strconv.ParseFloat(s[:i], 64); err == nil {
			best = i
		}
	}
	if best < 0 {
		return Quantity{}, NewError(ErrSyntax, "solprep: no number at the start of quantity %q", s)
	}
	v, err := strconv.ParseFloat(s[:best], 64)
	if err != nil {
		return Quantity{}, NewError(ErrSyntax, "solprep: bad number in quantity %q", s)
	}
	u, err := ParseUnit(s[best:])
	if err != nil {
		return Quantity{}, errDecorate(err, "ParseQuantity")
	}
	return Quantity{Value: v, Unit: u}, nil
}

func (q Quantity) String() string {
	return strconv.FormatFloat(q.Value, 'g', -1, 64) + " " + string(q.Unit)
}

//BaseConc normalizes a concentration quantity to its domain's base unit
//(M or g/L) and reports the domain.
func (q Quantity) BaseConc() (float64, Domain, error) {
	if f, ok := molarScale[q.Unit]; ok {
		return q.Value * f, DomainMolar, nil
	}
	if f, ok := massConcScale[q.Unit]; ok {
		return q.Value * f, DomainMass, nil
	}
	return 0, DomainNone, NewError(ErrSyntax, "solprep: %q is not a concentration unit", q.Unit)
}

//Liters normalizes a plain volume quantity to liters.
func (q Quantity) Liters() (float64, error) {
	f, ok := volumeScale[q.Unit]
	if !ok {
		return 0, NewError(ErrSyntax, "solprep: %q is not a volume unit", q.Unit)
	}
	return q.Value * f, nil
}

//Grams normalizes a plain mass quantity to grams.
func (q Quantity) Grams() (float64, error) {
	f, ok := massScale[q.Unit]
	if !ok {
		return 0, NewError(ErrSyntax, "solprep: %q is not a mass unit", q.Unit)
	}
	return q.Value * f, nil
}

//BridgeConc converts a base-unit concentration between the molar and mass
//domains through the molecular weight: g/L divided by g/mol is mol/L, and
//the other way around. A missing or non-positive MW is a typed failure,
//never a silent pass-through.
func BridgeConc(value float64, from, to Domain, mw float64) (float64, error) {
	if from == to {
		return value, nil
	}
	if from == DomainNone || to == DomainNone {
		return 0, NewError(ErrSyntax, "solprep: cannot bridge to or from a non-concentration domain")
	}
	if mw <= 0 || math.IsNaN(mw) || math.IsInf(mw, 0) {
		return 0, NewError(ErrMissingMW, "solprep: converting between molar and mass concentrations needs a positive molecular weight, got %v", mw)
	}
	if from == DomainMass {
		return value / mw, nil
	}
	return value * mw, nil
}

//ConvertConc converts a concentration quantity to the given unit, bridging
//between domains when needed. mw is only looked at when bridging happens.
func ConvertConc(q Quantity, to Unit, mw float64) (Quantity, error) {
	base, from, err := q.BaseConc()
	if err != nil {
		return Quantity{}, errDecorate(err, "ConvertConc")
	}
	toDom := to.ConcDomain()
	if toDom == DomainNone {
		return Quantity{}, NewError(ErrSyntax, "solprep: %q is not a concentration unit", to)
	}
	base, err = BridgeConc(base, from, toDom, mw)
	if err != nil {
		return Quantity{}, errDecorate(err, "ConvertConc")
	}
	var f float64
	if toDom == DomainMolar {
		f = molarScale[to]
	} else {
		f = massConcScale[to]
	}
	return Quantity{Value: base / f, Unit: to}, nil
}
