/*
 * triangle.go, part of solprep.
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

import "math"

//TriangleUnknown designates which of the four related quantities a Triangle
//derives. Switching the unknown is an explicit caller decision; nothing in
//this package ever changes it behind the caller's back.
type TriangleUnknown int

const (
	UnknownMass TriangleUnknown = iota + 1
	UnknownVolume
	UnknownConcentration
	UnknownMW
)

func (u TriangleUnknown) String() string {
	switch u {
	case UnknownMass:
		return "mass"
	case UnknownVolume:
		return "volume"
	case UnknownConcentration:
		return "concentration"
	case UnknownMW:
		return "molecular weight"
	}
	return "nothing"
}

//Triangle relates mass = concentration x volume x MW with one designated
//unknown. The three known quantities are set by the caller; a nil Quantity
//pointer means "not entered yet", which is a distinct state from "entered
//but invalid". The field corresponding to Unknown is never read, so a stale
//value left there while the caller edits it cannot leak into the result.
type Triangle struct {
	MW      float64 //g/mol; 0 means not entered
	Mass    *Quantity
	Volume  *Quantity
	Conc    *Quantity
	Unknown TriangleUnknown
}

//Solve derives the designated unknown from the other three quantities. The
//result is in base units: grams, liters, M, or g/mol depending on Unknown.
//ok is false with a nil error while any needed known is simply not entered
//yet; an error is returned only for input that is present but unusable
//(non-positive, non-finite, or a unit from the wrong family). Solve never
//mutates the Triangle: re-derivation happens exactly when the caller asks
//for it, there are no hidden triggers.
func (t *Triangle) Solve() (float64, bool, error) {
	if t.Unknown < UnknownMass || t.Unknown > UnknownMW {
		return 0, false, NewError(ErrSyntax, "solprep: no unknown designated for the triangle")
	}
	var mass, vol, conc float64 //grams, liters, M or g/L
	var dom Domain
	//gather whichever knowns this unknown needs, reporting "not yet" on
	//the first one missing.
	if t.Unknown != UnknownMass {
		if t.Mass == nil {
			return 0, false, nil
		}
		m, err := t.Mass.Grams()
		if err != nil {
			return 0, false, errDecorate(err, "Triangle.Solve")
		}
		if err := positive("mass", m); err != nil {
			return 0, false, err
		}
		mass = m
	}
	if t.Unknown != UnknownVolume {
		if t.Volume == nil {
			return 0, false, nil
		}
		v, err := t.Volume.Liters()
		if err != nil {
			return 0, false, errDecorate(err, "Triangle.Solve")
		}
		if err := positive("volume", v); err != nil {
			return 0, false, err
		}
		vol = v
	}
	if t.Unknown != UnknownConcentration {
		if t.Conc == nil {
			return 0, false, nil
		}
		c, d, err := t.Conc.BaseConc()
		if err != nil {
			return 0, false, errDecorate(err, "Triangle.Solve")
		}
		if err := positive("concentration", c); err != nil {
			return 0, false, err
		}
		conc, dom = c, d
	}
	needMW := t.Unknown != UnknownMW && !(dom == DomainMass && (t.Unknown == UnknownMass || t.Unknown == UnknownVolume))
	if needMW {
		if t.MW == 0 {
			return 0, false, nil
		}
		if err := positive("molecular weight", t.MW); err != nil {
			return 0, false, err
		}
	}
	switch t.Unknown {
	case UnknownMass:
		if dom == DomainMass {
			return conc * vol, true, nil //MW cancels: (g/L) x L
		}
		return conc * vol * t.MW, true, nil
	case UnknownVolume:
		if dom == DomainMass {
			return mass / conc, true, nil
		}
		return mass / (conc * t.MW), true, nil
	case UnknownConcentration:
		return mass / (vol * t.MW), true, nil
	case UnknownMW:
		if dom == DomainMass {
			//mass = (g/L) x L regardless of MW, so MW is not determined.
			return 0, false, NewError(ErrMissingMW,
				"solprep: molecular weight cannot be derived from a mass-based concentration (%q)", t.Conc.Unit)
		}
		return mass / (vol * conc), true, nil
	}
	return 0, false, NewError(ErrSyntax, "solprep: no unknown designated for the triangle")
}

func positive(what string, v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return NewError(ErrSyntax, "solprep: %s must be positive and finite, got %v", what, v)
	}
	return nil
}
