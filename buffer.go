/*
 * buffer.go, part of solprep.
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
)

//Reagent is a weighable form of a buffer species.
type Reagent struct {
	Name    string
	Formula string
	MW      float64 //g/mol
}

//ConjugateSystem describes an acid/base conjugate pair with its dissociation
//constant. Acid is the protonated form, Base the deprotonated one; either may
//be nil when no weighable reagent for that form exists, which restricts the
//preparation methods usable with the system.
type ConjugateSystem struct {
	Name string
	PKa  float64
	Acid *Reagent
	Base *Reagent
}

//Polarity tags a stock adjuster as a strong acid or a strong base.
type Polarity int

const (
	AcidAdjuster Polarity = iota + 1
	BaseAdjuster
)

func (p Polarity) String() string {
	if p == AcidAdjuster {
		return "acid"
	}
	return "base"
}

//StockAdjuster is a strong acid or base solution used by the titration
//preparation method.
type StockAdjuster struct {
	Name     string
	Molarity float64
	Polarity Polarity
}

//Method selects how a buffer is prepared: by weighing both conjugate forms,
//or by dissolving one and titrating with a strong acid or base.
type Method int

const (
	SaltMix Method = iota + 1
	Titration
)

//How far from pKa the target pH can wander before the recipe carries an
//advisory. Outside this band the recipe is still computed; buffering
//capacity degrades gradually, it doesn't fall off a cliff.
const bufferRange = 1.5

//BufferRecipe is a solved buffer preparation. AcidConc and BaseConc are the
//Henderson-Hasselbalch split of the total concentration, in M. For SaltMix
//the two masses are filled in; for Titration the single starting powder,
//its mass, and the adjuster volume are. Advisory is non-empty when the
//target pH sits far from the system's pKa.
type BufferRecipe struct {
	System   string
	Method   Method
	PH       float64
	PKa      float64
	Volume   float64 //liters
	AcidConc float64 //M
	BaseConc float64 //M

	AcidForm *Reagent //SaltMix
	AcidMass float64  //grams
	BaseForm *Reagent
	BaseMass float64

	Powder      *Reagent //Titration
	PowderMass  float64  //grams
	Adjuster    string
	AdjusterVol float64 //liters

	Advisory string
}

//Text renders the recipe as instructions for the bench.
func (r *BufferRecipe) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s buffer, pH %s, %s total:\n", r.System, fixed(r.PH, 2), FormatVolume(r.Volume))
	if r.Method == SaltMix {
		fmt.Fprintf(&b, "  weigh %s of %s\n", FormatMass(r.AcidMass), r.AcidForm.Name)
		fmt.Fprintf(&b, "  weigh %s of %s\n", FormatMass(r.BaseMass), r.BaseForm.Name)
		fmt.Fprintf(&b, "  dissolve and bring to %s\n", FormatVolume(r.Volume))
	} else {
		fmt.Fprintf(&b, "  weigh %s of %s\n", FormatMass(r.PowderMass), r.Powder.Name)
		fmt.Fprintf(&b, "  dissolve in most of the final volume, add %s of %s, bring to %s\n",
			FormatVolume(r.AdjusterVol), r.Adjuster, FormatVolume(r.Volume))
	}
	if r.Advisory != "" {
		fmt.Fprintf(&b, "  note: %s\n", r.Advisory)
	}
	return b.String()
}

//SolveBufferRecipe computes a preparation recipe for the conjugate system at
//the given target pH, total concentration and volume. total must be a molar
//concentration (the split is between species, so a mass concentration is
//ambiguous: the two forms weigh differently). adj is only looked at for the
//Titration method; its polarity decides which conjugate form must be
//available as a powder, and an adjuster whose complementary form is missing
//is an ErrIncompatibleAdjuster.
func SolveBufferRecipe(sys *ConjugateSystem, pH float64, total, vol Quantity, method Method, adj *StockAdjuster) (*BufferRecipe, error) {
	c, dom, err := total.BaseConc()
	if err != nil {
		return nil, errDecorate(err, "SolveBufferRecipe")
	}
	if dom != DomainMolar {
		return nil, NewError(ErrSyntax, "solprep: buffer concentration must be molar, got %q", total.Unit)
	}
	if c <= 0 || math.IsNaN(c) {
		return nil, NewError(ErrSyntax, "solprep: buffer concentration must be positive, got %v", total)
	}
	v, err := vol.Liters()
	if err != nil {
		return nil, errDecorate(err, "SolveBufferRecipe")
	}
	if v <= 0 {
		return nil, NewError(ErrSyntax, "solprep: buffer volume must be positive, got %v", vol)
	}
	//Henderson-Hasselbalch: ratio = [base]/[acid] at the target pH.
	ratio := math.Pow(10, pH-sys.PKa)
	acidConc := c / (1 + ratio)
	baseConc := c - acidConc
	r := &BufferRecipe{
		System:   sys.Name,
		Method:   method,
		PH:       pH,
		PKa:      sys.PKa,
		Volume:   v,
		AcidConc: acidConc,
		BaseConc: baseConc,
	}
	if math.Abs(pH-sys.PKa) > bufferRange {
		r.Advisory = fmt.Sprintf("pH %s is more than %.1f units from pKa %s; buffering capacity there will be poor",
			fixed(pH, 2), bufferRange, fixed(sys.PKa, 2))
	}
	switch method {
	case SaltMix:
		if sys.Acid == nil || sys.Base == nil {
			return nil, NewError(ErrMissingReagent,
				"solprep: salt-mix preparation of %s needs weighable acid and base forms", sys.Name)
		}
		r.AcidForm = sys.Acid
		r.BaseForm = sys.Base
		r.AcidMass = acidConc * v * sys.Acid.MW
		r.BaseMass = baseConc * v * sys.Base.MW
	case Titration:
		if adj == nil {
			return nil, NewError(ErrIncompatibleAdjuster, "solprep: titration preparation needs a stock adjuster")
		}
		if adj.Molarity <= 0 {
			return nil, NewError(ErrSyntax, "solprep: adjuster %s has a non-positive molarity", adj.Name)
		}
		//An acid adjuster converts dissolved base into the conjugate acid,
		//so the starting powder is the base form, and vice versa.
		var powder *Reagent
		var adjMoles float64
		if adj.Polarity == AcidAdjuster {
			powder = sys.Base
			adjMoles = acidConc * v
		} else {
			powder = sys.Acid
			adjMoles = baseConc * v
		}
		if powder == nil {
			return nil, NewError(ErrIncompatibleAdjuster,
				"solprep: %s (%v) needs the %s's %s form as starting powder, which the system lacks",
				adj.Name, adj.Polarity, sys.Name, oppositeForm(adj.Polarity))
		}
		r.Powder = powder
		r.PowderMass = c * v * powder.MW
		r.Adjuster = adj.Name
		r.AdjusterVol = adjMoles / adj.Molarity
	default:
		return nil, NewError(ErrSyntax, "solprep: unknown preparation method %d", method)
	}
	return r, nil
}

func oppositeForm(p Polarity) string {
	if p == AcidAdjuster {
		return "base"
	}
	return "acid"
}
