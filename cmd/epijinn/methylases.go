package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
)

func newMethylasesCmd() *cobra.Command {
	var dnd bool

	cmd := &cobra.Command{
		Use:   "methylases",
		Short: "List the built-in methylase catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := motif.Catalog()
			if dnd {
				catalog = append(catalog, motif.DndCatalog()...)
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSEQUENCE\tINDEX+\tINDEX-\tCATEGORY")
			for _, m := range catalog {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
					m.Name, m.Sequence, m.IndexPos, formatIndex(m.IndexNeg), m.Category)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&dnd, "dnd", false, "Include Dnd phosphorothioation motifs")

	return cmd
}

func formatIndex(index int) string {
	if index == motif.NoIndex {
		return "-"
	}
	return strconv.Itoa(index)
}
