/*
 * dilution.go, part of solprep.
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
)

//Dilution is the solved recipe for preparing a target solution from a stock:
//measure Stock liters of stock, add Solvent liters of diluent, for Final
//liters total. All three are in liters; use FormatVolume for display.
type Dilution struct {
	Stock   float64
	Solvent float64
	Final   float64
}

func (d *Dilution) String() string {
	return fmt.Sprintf("take %s of stock and add %s of diluent for %s total",
		FormatVolume(d.Stock), FormatVolume(d.Solvent), FormatVolume(d.Final))
}

//SolveDilution applies C1V1 = C2V2: given the stock concentration, the
//target concentration and the target volume, it returns the stock volume to
//measure and the solvent volume to add. When stock and target are expressed
//in different concentration domains (say g/L stock diluted to a mM target)
//the stock is bridged into the target's domain through mw; mw is ignored
//otherwise. A "dilution" that would need more stock than the final volume,
//or a non-positive or non-finite stock volume, is reported as
//ErrImpossibleDilution rather than returned as a number.
func SolveDilution(stock, target, finalVol Quantity, mw float64) (*Dilution, error) {
	c1, d1, err := stock.BaseConc()
	if err != nil {
		return nil, errDecorate(err, "SolveDilution")
	}
	c2, d2, err := target.BaseConc()
	if err != nil {
		return nil, errDecorate(err, "SolveDilution")
	}
	if d1 != d2 {
		c1, err = BridgeConc(c1, d1, d2, mw)
		if err != nil {
			return nil, errDecorate(err, "SolveDilution")
		}
	}
	v2, err := finalVol.Liters()
	if err != nil {
		return nil, errDecorate(err, "SolveDilution")
	}
	v1 := c2 * v2 / c1
	if math.IsNaN(v1) || math.IsInf(v1, 0) || v1 <= 0 || v1 > v2 {
		return nil, NewError(ErrImpossibleDilution,
			"solprep: cannot dilute a %v stock to %v: it would take %v L of stock for %v L of solution",
			stock, target, v1, v2)
	}
	return &Dilution{Stock: v1, Solvent: v2 - v1, Final: v2}, nil
}
