//Package buffers carries a library of conjugate acid/base systems and strong
//acid/base stock adjusters for buffer preparation. The built-in library
//covers the usual bench buffers; laboratories with their own recipes can
//load a TOML file instead, or on top.
package buffers

import (
	"strings"

	"github.com/mferrada/solprep"
)

//Library is a named collection of buffer systems and adjusters. Lookups are
//case-insensitive.
type Library struct {
	Systems   []solprep.ConjugateSystem
	Adjusters []solprep.StockAdjuster
}

//System returns the system called name, or nil if the library has none.
func (l *Library) System(name string) *solprep.ConjugateSystem {
	for i := range l.Systems {
		if strings.EqualFold(l.Systems[i].Name, name) {
			return &l.Systems[i]
		}
	}
	return nil
}

//Adjuster returns the adjuster called name, or nil if the library has none.
func (l *Library) Adjuster(name string) *solprep.StockAdjuster {
	for i := range l.Adjusters {
		if strings.EqualFold(l.Adjusters[i].Name, name) {
			return &l.Adjusters[i]
		}
	}
	return nil
}

//Merge appends every system and adjuster of other to l.
func (l *Library) Merge(other *Library) {
	l.Systems = append(l.Systems, other.Systems...)
	l.Adjusters = append(l.Adjusters, other.Adjusters...)
}

//reagent builds a Reagent with its MW computed from the formula, so the
//library is always consistent with the parser's atomic weight table. The
//built-in formulas are constants; a typo in them is a programmer error,
//hence the panic.
func reagent(name, formula string) *solprep.Reagent {
	mw, err := solprep.MolecularWeight(formula)
	if err != nil {
		panic("buffers: bad built-in formula " + formula + ": " + err.Error())
	}
	return &solprep.Reagent{Name: name, Formula: formula, MW: mw}
}

//Builtin returns the stock library of common buffer systems and adjusters.
//pKa values are at 25 C. Systems with only one weighable form (glycine) can
//only be prepared by titration with the complementary adjuster.
func Builtin() *Library {
	return &Library{
		Systems: []solprep.ConjugateSystem{
			{
				Name: "Tris",
				PKa:  8.06,
				Acid: reagent("Tris-HCl", "C4H11NO3·HCl"),
				Base: reagent("Tris base", "C4H11NO3"),
			},
			{
				Name: "acetate",
				PKa:  4.76,
				Acid: reagent("glacial acetic acid", "C2H4O2"),
				Base: reagent("sodium acetate", "C2H3NaO2"),
			},
			{
				Name: "phosphate",
				PKa:  7.20, //pKa2, the H2PO4-/HPO4 2- pair
				Acid: reagent("monosodium phosphate", "NaH2PO4"),
				Base: reagent("disodium phosphate", "Na2HPO4"),
			},
			{
				Name: "HEPES",
				PKa:  7.48,
				Acid: reagent("HEPES free acid", "C8H18N2O4S"),
				Base: reagent("HEPES sodium salt", "C8H17N2NaO4S"),
			},
			{
				Name: "glycine",
				PKa:  9.6, //pKa2, the amino group
				Acid: reagent("glycine", "C2H5NO2"),
			},
			{
				Name: "carbonate",
				PKa:  10.33,
				Acid: reagent("sodium bicarbonate", "NaHCO3"),
				Base: reagent("sodium carbonate", "Na2CO3"),
			},
		},
		Adjusters: []solprep.StockAdjuster{
			{Name: "HCl 1M", Molarity: 1, Polarity: solprep.AcidAdjuster},
			{Name: "HCl 6M", Molarity: 6, Polarity: solprep.AcidAdjuster},
			{Name: "NaOH 1M", Molarity: 1, Polarity: solprep.BaseAdjuster},
			{Name: "NaOH 10M", Molarity: 10, Polarity: solprep.BaseAdjuster},
		},
	}
}
