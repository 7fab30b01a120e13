//solprep is a bench calculator: molecular weights, dilutions, buffer
//recipes and the mass/volume/concentration triangle.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "solprep",
	Short:         "Calculations for preparing laboratory solutions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
