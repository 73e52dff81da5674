package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/annotate"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/fasta"
)

func newOverlapCmd() *cobra.Command {
	var methylases []string
	var dnd bool

	cmd := &cobra.Command{
		Use:   "overlap <reference.fa> <restriction-site>",
		Short: "Report methylase motifs overlapping a restriction site",
		Long: `Locates every occurrence of a restriction-enzyme recognition site in the
reference, widens each occurrence to the window a methylase motif could
straddle, and reports which methylase motifs match inside the window on
either strand.`,
		Example: `  epijinn overlap plasmid.fa GGATCC
  epijinn overlap -m EcoKDam plasmid.fa GGTCTC`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := resolveCatalog(methylases, dnd)
			if err != nil {
				return err
			}

			record, err := fasta.ReadOne(args[0])
			if err != nil {
				return err
			}

			mt, err := annotate.NewMethylator(record.Seq, args[1], catalog)
			if err != nil {
				return err
			}
			if len(mt.Regions()) == 0 {
				fmt.Fprintf(os.Stderr, "No occurrence of %s in %s\n", args[1], record.ID)
				return nil
			}

			_, err = os.Stdout.WriteString(mt.Report())
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&methylases, "methylases", "m", nil, "Methylases to test (default: full catalog)")
	cmd.Flags().BoolVar(&dnd, "dnd", false, "Also test Dnd phosphorothioation motifs")

	return cmd
}
