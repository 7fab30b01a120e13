package main

import (
	"fmt"
	"sort"

	"github.com/mferrada/solprep"
	"github.com/spf13/cobra"
)

var mwCmd = &cobra.Command{
	Use:   "mw <formula>",
	Short: "Molecular weight and composition of a chemical formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		comp, err := solprep.ParseFormula(args[0])
		if err != nil {
			return err
		}
		symbols := make([]string, 0, len(comp))
		for sym := range comp {
			symbols = append(symbols, sym)
		}
		sort.Strings(symbols)
		for _, sym := range symbols {
			w, _ := solprep.AtomicWeight(sym)
			fmt.Printf("  %-2s x%-4d %10.3f\n", sym, comp[sym], w*float64(comp[sym]))
		}
		fmt.Printf("MW: %.3f g/mol\n", comp.Weight())
		return nil
	},
}

var diluteFlags struct {
	stock  string
	target string
	volume string
	mw     float64
}

var diluteCmd = &cobra.Command{
	Use:   "dilute",
	Short: "Solve C1V1 = C2V2 for the stock volume",
	RunE: func(cmd *cobra.Command, args []string) error {
		stock, err := solprep.ParseQuantity(diluteFlags.stock)
		if err != nil {
			return err
		}
		target, err := solprep.ParseQuantity(diluteFlags.target)
		if err != nil {
			return err
		}
		volume, err := solprep.ParseQuantity(diluteFlags.volume)
		if err != nil {
			return err
		}
		d, err := solprep.SolveDilution(stock, target, volume, diluteFlags.mw)
		if err != nil {
			return err
		}
		fmt.Println(d)
		return nil
	},
}

var triangleFlags struct {
	mass   string
	volume string
	conc   string
	mw     float64
	solve  string
}

var triangleCmd = &cobra.Command{
	Use:   "triangle",
	Short: "Solve mass = concentration x volume x MW for one unknown",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := &solprep.Triangle{MW: triangleFlags.mw}
		for _, v := range []struct {
			text string
			into **solprep.Quantity
		}{
			{triangleFlags.mass, &t.Mass},
			{triangleFlags.volume, &t.Volume},
			{triangleFlags.conc, &t.Conc},
		} {
			if v.text == "" {
				continue
			}
			q, err := solprep.ParseQuantity(v.text)
			if err != nil {
				return err
			}
			*v.into = &q
		}
		switch triangleFlags.solve {
		case "mass":
			t.Unknown = solprep.UnknownMass
		case "volume":
			t.Unknown = solprep.UnknownVolume
		case "conc", "concentration":
			t.Unknown = solprep.UnknownConcentration
		case "mw":
			t.Unknown = solprep.UnknownMW
		default:
			return fmt.Errorf("--for must be one of mass, volume, conc, mw; got %q", triangleFlags.solve)
		}
		val, ok, err := t.Solve()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("not enough knowns to solve for %v", t.Unknown)
		}
		switch t.Unknown {
		case solprep.UnknownMass:
			fmt.Println(solprep.FormatMass(val))
		case solprep.UnknownVolume:
			fmt.Println(solprep.FormatVolume(val))
		case solprep.UnknownConcentration:
			fmt.Println(solprep.FormatConcentration(val, solprep.Molar))
		case solprep.UnknownMW:
			fmt.Printf("%.3f g/mol\n", val)
		}
		return nil
	},
}

func init() {
	diluteCmd.Flags().StringVar(&diluteFlags.stock, "stock", "", "stock concentration, e.g. \"10 M\" or \"500 g/L\"")
	diluteCmd.Flags().StringVar(&diluteFlags.target, "target", "", "target concentration, e.g. \"50 mM\"")
	diluteCmd.Flags().StringVar(&diluteFlags.volume, "volume", "", "final volume, e.g. \"100 mL\"")
	diluteCmd.Flags().Float64Var(&diluteFlags.mw, "mw", 0, "molecular weight, needed only across domains")
	diluteCmd.MarkFlagRequired("stock")
	diluteCmd.MarkFlagRequired("target")
	diluteCmd.MarkFlagRequired("volume")

	triangleCmd.Flags().StringVar(&triangleFlags.mass, "mass", "", "known mass, e.g. \"29.22 g\"")
	triangleCmd.Flags().StringVar(&triangleFlags.volume, "volume", "", "known volume, e.g. \"500 mL\"")
	triangleCmd.Flags().StringVar(&triangleFlags.conc, "conc", "", "known concentration, e.g. \"1 M\"")
	triangleCmd.Flags().Float64Var(&triangleFlags.mw, "mw", 0, "known molecular weight in g/mol")
	triangleCmd.Flags().StringVar(&triangleFlags.solve, "for", "mass", "the unknown: mass, volume, conc or mw")

	rootCmd.AddCommand(mwCmd, diluteCmd, triangleCmd)
}
