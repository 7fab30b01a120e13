/*
 * doc.go, part of solprep.
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

/*Package solprep computes the quantities needed to prepare laboratory
solutions: molecular weights from chemical formulas, dilutions, buffer
recipes and the mass/volume/concentration/MW relationship.


	**solprep capabilities**

    Parses chemical formulas with nested groups in round or square brackets
	and hydrate notation (CuSO4·5H2O), into elemental compositions.

    Computes molecular weights from a built-in table of IUPAC standard
	atomic weights.

    Classifies concentration units into the molar and mass domains,
	normalizes quantities to base units and converts between domains
	through the molecular weight.

    Solves C1V1 = C2V2 dilutions, including across concentration domains.

    Computes buffer recipes from a conjugate acid/base pair and a target pH
	via Henderson-Hasselbalch, either as a two-salt mix or as one powder
	plus a strong acid/base titrant.

    Solves mass = concentration x volume x MW for any one unknown.

    Formats volumes, masses and concentrations at bench-friendly
	magnitudes.

Everything in this package is a pure function over its inputs: no global
mutable state, no side effects, safe to call concurrently. Expected domain
failures (a typo in a formula, a dilution that cannot work) are returned as
typed errors implementing the Error interface, never panicked and never
replaced with placeholder numbers.

The resolve subpackage talks to a compound name-resolution service, the
buffers subpackage carries a library of common buffer systems, and the
solplot subpackage draws buffer behavior curves.
*/
package solprep
