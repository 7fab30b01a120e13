package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mferrada/solprep/resolve"
	"github.com/spf13/cobra"
)

var resolveFlags struct {
	store   string
	timeout time.Duration
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>...",
	Short: "Look up compound names on PubChem",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), resolveFlags.timeout)
		defer cancel()
		var store *resolve.StoreW
		if resolveFlags.store != "" {
			var err error
			store, err = resolve.NewStore(resolveFlags.store)
			if err != nil {
				return err
			}
			defer store.Close()
		}
		pc := resolve.NewPubChem()
		for _, name := range args {
			rec, err := pc.Resolve(ctx, name)
			if err != nil {
				return err
			}
			fmt.Printf("%s (CID %d)\n", rec.Name, rec.CID)
			fmt.Printf("  formula: %s\n", rec.Formula)
			fmt.Printf("  MW:      %.3f g/mol (PubChem reports %.2f)\n", rec.MW, rec.ReportedMW)
			if len(rec.Synonyms) > 0 {
				n := len(rec.Synonyms)
				if n > 5 {
					n = 5
				}
				fmt.Printf("  aka:     %s\n", strings.Join(rec.Synonyms[:n], ", "))
			}
			if store != nil {
				if err := store.Put(rec); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveFlags.store, "store", "", "write resolved records to this store file")
	resolveCmd.Flags().DurationVar(&resolveFlags.timeout, "timeout", 30*time.Second, "overall deadline for the lookups")
	rootCmd.AddCommand(resolveCmd)
}
