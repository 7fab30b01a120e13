package main

import (
	"fmt"

	"github.com/mferrada/solprep"
	"github.com/mferrada/solprep/buffers"
	"github.com/mferrada/solprep/solplot"
	"github.com/spf13/cobra"
)

var bufferFlags struct {
	system   string
	ph       float64
	conc     string
	volume   string
	method   string
	adjuster string
	library  string
}

//library returns the built-in systems and adjusters, with the user's TOML
//file merged on top when one was given.
func library(file string) (*buffers.Library, error) {
	lib := buffers.Builtin()
	if file == "" {
		return lib, nil
	}
	extra, err := buffers.LoadFile(file)
	if err != nil {
		return nil, err
	}
	lib.Merge(extra)
	return lib, nil
}

var bufferCmd = &cobra.Command{
	Use:   "buffer",
	Short: "Prepare a buffer recipe by salt mixing or titration",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := library(bufferFlags.library)
		if err != nil {
			return err
		}
		sys := lib.System(bufferFlags.system)
		if sys == nil {
			return fmt.Errorf("no buffer system called %q; try tris, acetate, phosphate, HEPES, glycine or carbonate", bufferFlags.system)
		}
		total, err := solprep.ParseQuantity(bufferFlags.conc)
		if err != nil {
			return err
		}
		vol, err := solprep.ParseQuantity(bufferFlags.volume)
		if err != nil {
			return err
		}
		var method solprep.Method
		var adj *solprep.StockAdjuster
		switch bufferFlags.method {
		case "salt", "saltmix":
			method = solprep.SaltMix
		case "titrate", "titration":
			method = solprep.Titration
			adj = lib.Adjuster(bufferFlags.adjuster)
			if adj == nil {
				return fmt.Errorf("no adjuster called %q; try \"HCl 1M\" or \"NaOH 1M\"", bufferFlags.adjuster)
			}
		default:
			return fmt.Errorf("--method must be salt or titrate; got %q", bufferFlags.method)
		}
		recipe, err := solprep.SolveBufferRecipe(sys, bufferFlags.ph, total, vol, method, adj)
		if err != nil {
			return err
		}
		fmt.Print(recipe.Text())
		return nil
	},
}

var plotFlags struct {
	system   string
	conc     string
	capacity bool
	out      string
	library  string
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the species distribution or buffer capacity of a system",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := library(plotFlags.library)
		if err != nil {
			return err
		}
		sys := lib.System(plotFlags.system)
		if sys == nil {
			return fmt.Errorf("no buffer system called %q", plotFlags.system)
		}
		if !plotFlags.capacity {
			if err := solplot.FractionPlot(sys, plotFlags.out); err != nil {
				return err
			}
			fmt.Printf("wrote %s.png\n", plotFlags.out)
			return nil
		}
		total, err := solprep.ParseQuantity(plotFlags.conc)
		if err != nil {
			return err
		}
		molar, dom, err := total.BaseConc()
		if err != nil {
			return err
		}
		if dom != solprep.DomainMolar {
			return fmt.Errorf("capacity plots need a molar concentration, not %s", total.Unit)
		}
		if err := solplot.CapacityPlot(sys, molar, plotFlags.out); err != nil {
			return err
		}
		fmt.Printf("wrote %s.png\n", plotFlags.out)
		return nil
	},
}

func init() {
	bufferCmd.Flags().StringVar(&bufferFlags.system, "system", "", "buffer system name, e.g. tris")
	bufferCmd.Flags().Float64Var(&bufferFlags.ph, "ph", 0, "target pH")
	bufferCmd.Flags().StringVar(&bufferFlags.conc, "conc", "", "total buffer concentration, e.g. \"100 mM\"")
	bufferCmd.Flags().StringVar(&bufferFlags.volume, "volume", "", "final volume, e.g. \"1 L\"")
	bufferCmd.Flags().StringVar(&bufferFlags.method, "method", "salt", "preparation method: salt or titrate")
	bufferCmd.Flags().StringVar(&bufferFlags.adjuster, "adjuster", "", "titrant stock, e.g. \"HCl 1M\"")
	bufferCmd.Flags().StringVar(&bufferFlags.library, "library", "", "TOML file with extra systems and adjusters")
	bufferCmd.MarkFlagRequired("system")
	bufferCmd.MarkFlagRequired("ph")
	bufferCmd.MarkFlagRequired("conc")
	bufferCmd.MarkFlagRequired("volume")

	plotCmd.Flags().StringVar(&plotFlags.system, "system", "", "buffer system name")
	plotCmd.Flags().StringVar(&plotFlags.conc, "conc", "100 mM", "total concentration for capacity plots")
	plotCmd.Flags().BoolVar(&plotFlags.capacity, "capacity", false, "plot buffer capacity instead of species fractions")
	plotCmd.Flags().StringVar(&plotFlags.out, "out", "buffer", "output name; .png is appended")
	plotCmd.Flags().StringVar(&plotFlags.library, "library", "", "TOML file with extra systems")
	plotCmd.MarkFlagRequired("system")

	rootCmd.AddCommand(bufferCmd, plotCmd)
}
