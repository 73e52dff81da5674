package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/annotate"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/fasta"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/report"
)

func newScanCmd() *cobra.Command {
	var (
		methylases []string
		dnd        bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "scan [flags] <reference.fa>",
		Short: "Predict modification sites on a reference sequence",
		Example: `  epijinn scan plasmid.fa
  epijinn scan -m EcoKDam,EcoKDcm plasmid.fa
  epijinn scan --dnd plasmid.fa`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := resolveCatalog(methylases, dnd)
			if err != nil {
				return err
			}

			records, err := fasta.Read(args[0])
			if err != nil {
				return err
			}

			out := os.Stdout
			if outputFile != "" {
				out, err = os.Create(outputFile)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer out.Close()
			}

			annotator := annotate.NewAnnotator(catalog)
			annotator.SetLogger(logger)

			sw := report.NewSiteWriter(out)
			if err := sw.WriteHeader(); err != nil {
				return err
			}
			for _, record := range records {
				for _, site := range annotator.Annotate(record.Seq) {
					if err := sw.Write(record.ID, site); err != nil {
						return err
					}
				}
			}
			return sw.Flush()
		},
	}

	cmd.Flags().StringSliceVarP(&methylases, "methylases", "m", nil, "Methylases to scan for (default: full catalog)")
	cmd.Flags().BoolVar(&dnd, "dnd", false, "Also scan for Dnd phosphorothioation motifs")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func resolveCatalog(names []string, dnd bool) ([]*motif.Methylase, error) {
	if len(names) == 0 {
		catalog := motif.Catalog()
		if dnd {
			catalog = append(catalog, motif.DndCatalog()...)
		}
		return catalog, nil
	}

	catalog := make([]*motif.Methylase, 0, len(names))
	for _, name := range names {
		m, ok := motif.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown methylase %q", name)
		}
		catalog = append(catalog, m)
	}
	return catalog, nil
}
