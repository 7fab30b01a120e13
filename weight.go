/*
 * weight.go, part of solprep.
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
	"strconv"
	"strings"
)

//Weight returns the molecular weight of the composition in g/mol.
//Compositions built by ParseFormula only contain symbols present in the
//atomic weight table, so no error is possible; symbols planted by hand into
//a Composition that are not in the table contribute zero.
func (c Composition) Weight() float64 {
	var w float64
	for sym, n := range c {
		w += symbolWeight[sym] * float64(n)
	}
	return w
}

//MolecularWeight parses formula and returns its molecular weight in g/mol.
func MolecularWeight(formula string) (float64, error) {
	c, err := ParseFormula(formula)
	if err != nil {
		return 0, errDecorate(err, "MolecularWeight")
	}
	return c.Weight(), nil
}

//fixed rounds v to prec decimals and strips trailing zeros, so 2.500
//renders as "2.5" and 2.000 as "2".
func fixed(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

//FormatVolume renders a volume given in liters at a human scale: nanoliters
//below a microliter, microliters below a milliliter, milliliters below a
//liter, liters above.
func FormatVolume(liters float64) string {
	switch {
	case liters < 1e-6:
		return fixed(liters*1e9, 1) + " nL"
	case liters < 1e-3:
		return fixed(liters*1e6, 1) + " µL"
	case liters < 1:
		return fixed(liters*1e3, 3) + " mL"
	default:
		return fixed(liters, 3) + " L"
	}
}

//FormatMass renders a mass given in grams at a human scale, with the same
//magnitude thresholds as FormatVolume.
func FormatMass(grams float64) string {
	switch {
	case grams < 1e-6:
		return fixed(grams*1e9, 1) + " ng"
	case grams < 1e-3:
		return fixed(grams*1e6, 1) + " µg"
	case grams < 1:
		return fixed(grams*1e3, 1) + " mg"
	default:
		return fixed(grams, 3) + " g"
	}
}

//FormatConcentration renders a concentration value with the display
//precision customary for its unit. A unit the function doesn't know keeps
//the raw numeric rendering, with no fixed rounding.
func FormatConcentration(value float64, unit Unit) string {
	var num string
	switch unit {
	case Molar, GramPerL:
		num = fixed(value, 3)
	case MilliMolar, MicroMolar, MgPerML, Fold:
		num = fixed(value, 1)
	case PercentWV, UgPerML, NgPerUL:
		num = fixed(value, 2)
	default:
		num = strconv.FormatFloat(value, 'g', -1, 64)
	}
	return num + " " + string(unit)
}
