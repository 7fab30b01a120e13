package buffers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mferrada/solprep"
)

//Wire format of a library file:
//
//	[[system]]
//	name = "Tris"
//	pka = 8.06
//	  [system.acid]
//	  name = "Tris-HCl"
//	  formula = "C4H11NO3·HCl"  # mw computed from the formula
//	  [system.base]
//	  name = "Tris base"
//	  mw = 121.14               # or given outright
//
//	[[adjuster]]
//	name = "HCl 1M"
//	molarity = 1.0
//	polarity = "acid"
type tomlLibrary struct {
	System   []tomlSystem   `toml:"system"`
	Adjuster []tomlAdjuster `toml:"adjuster"`
}

type tomlSystem struct {
	Name string       `toml:"name"`
	PKa  float64      `toml:"pka"`
	Acid *tomlReagent `toml:"acid"`
	Base *tomlReagent `toml:"base"`
}

type tomlReagent struct {
	Name    string  `toml:"name"`
	Formula string  `toml:"formula"`
	MW      float64 `toml:"mw"`
}

type tomlAdjuster struct {
	Name     string  `toml:"name"`
	Molarity float64 `toml:"molarity"`
	Polarity string  `toml:"polarity"`
}

//Load reads a TOML buffer library. A reagent without an explicit mw gets it
//computed from its formula; a system must carry at least one weighable form
//and an adjuster must have a positive molarity and an "acid" or "base"
//polarity.
func Load(r io.Reader) (*Library, error) {
	var t tomlLibrary
	if _, err := toml.NewDecoder(r).Decode(&t); err != nil {
		return nil, err
	}
	lib := new(Library)
	for _, s := range t.System {
		if s.Name == "" {
			return nil, fmt.Errorf("buffers: a system has no name")
		}
		if s.PKa == 0 {
			return nil, fmt.Errorf("buffers: system %s has no pka", s.Name)
		}
		sys := solprep.ConjugateSystem{Name: s.Name, PKa: s.PKa}
		var err error
		if sys.Acid, err = loadReagent(s.Acid); err != nil {
			return nil, fmt.Errorf("buffers: system %s: %w", s.Name, err)
		}
		if sys.Base, err = loadReagent(s.Base); err != nil {
			return nil, fmt.Errorf("buffers: system %s: %w", s.Name, err)
		}
		if sys.Acid == nil && sys.Base == nil {
			return nil, fmt.Errorf("buffers: system %s has no weighable form at all", s.Name)
		}
		lib.Systems = append(lib.Systems, sys)
	}
	for _, a := range t.Adjuster {
		var pol solprep.Polarity
		switch strings.ToLower(a.Polarity) {
		case "acid":
			pol = solprep.AcidAdjuster
		case "base":
			pol = solprep.BaseAdjuster
		default:
			return nil, fmt.Errorf("buffers: adjuster %s has polarity %q, want acid or base", a.Name, a.Polarity)
		}
		if a.Molarity <= 0 {
			return nil, fmt.Errorf("buffers: adjuster %s needs a positive molarity", a.Name)
		}
		lib.Adjusters = append(lib.Adjusters, solprep.StockAdjuster{Name: a.Name, Molarity: a.Molarity, Polarity: pol})
	}
	return lib, nil
}

func loadReagent(t *tomlReagent) (*solprep.Reagent, error) {
	if t == nil {
		return nil, nil
	}
	r := &solprep.Reagent{Name: t.Name, Formula: t.Formula, MW: t.MW}
	if r.MW == 0 {
		if r.Formula == "" {
			return nil, fmt.Errorf("reagent %s has neither mw nor formula", t.Name)
		}
		mw, err := solprep.MolecularWeight(r.Formula)
		if err != nil {
			return nil, err
		}
		r.MW = mw
	}
	if r.MW < 0 {
		return nil, fmt.Errorf("reagent %s has a negative mw", t.Name)
	}
	return r, nil
}

//LoadFile reads a TOML buffer library from a file.
func LoadFile(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
