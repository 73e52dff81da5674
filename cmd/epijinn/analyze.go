package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/report"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/sample"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/store"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		fastaDir       string
		bedDir         string
		parameterSheet string
		outputDir      string
		dbPath         string
		project        string
		methylases     []string
		workers        int
	)

	cmd := &cobra.Command{
		Use:   "analyze [flags] <sample-sheet.csv>",
		Short: "Analyze the samples of a sample sheet and write a project report",
		Example: `  epijinn analyze samples.csv
  epijinn analyze --parameters params.csv --fasta-dir refs --bed-dir beds samples.csv
  epijinn analyze --db results.duckdb samples.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := sample.DefaultParams()
			params.MethylatedCutoff = viper.GetFloat64("cutoffs.methylated")
			params.UnmethylatedCutoff = viper.GetFloat64("cutoffs.unmethylated")

			if parameterSheet != "" {
				var err error
				params, err = sample.ReadParameterSheet(parameterSheet)
				if err != nil {
					return err
				}
			}
			if project != "" {
				params.ProjectName = project
			}
			if len(methylases) > 0 {
				params.Methylases = methylases
			}

			group, err := sample.ReadSampleSheet(args[0], fastaDir, bedDir, params)
			if err != nil {
				return err
			}
			group.SetLogger(logger)

			if err := group.RunAll(workers); err != nil {
				return err
			}

			if err := writeReports(group, outputDir); err != nil {
				return err
			}

			if dbPath != "" {
				s, err := store.Open(dbPath)
				if err != nil {
					return err
				}
				defer s.Close()
				if err := s.WriteResults(group.Params.ProjectName, group.Items); err != nil {
					return err
				}
				summary, err := s.ProjectSummary(group.Params.ProjectName)
				if err != nil {
					return err
				}
				logger.Info("stored classified calls",
					zap.String("db", dbPath),
					zap.Int("methylated", summary.Methylated),
					zap.Int("unmethylated", summary.Unmethylated),
					zap.Int("undetermined", summary.Undetermined))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&fastaDir, "fasta-dir", "", "Directory of the reference FASTA files")
	cmd.Flags().StringVar(&bedDir, "bed-dir", "", "Directory of the bedmethyl files")
	cmd.Flags().StringVar(&parameterSheet, "parameters", "", "Parameter sheet CSV (Parameter,Value header)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Output directory for reports")
	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB file to store classified calls (optional)")
	cmd.Flags().StringVar(&project, "project", "", "Project name (overrides sheet values)")
	cmd.Flags().StringSliceVarP(&methylases, "methylases", "m", nil, "Methylases to test (default: full catalog)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of parallel sample workers (0 = NumCPU)")

	return cmd
}

// writeReports renders the HTML project report plus one TSV per non-empty
// classified table.
func writeReports(group *sample.Group, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	htmlPath := filepath.Join(outputDir, safeName(group.Params.ProjectName)+".html")
	f, err := os.Create(htmlPath)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.WriteHTML(f, group, viper.GetInt("report.feature_cutoff")); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("report written", zap.String("path", htmlPath))

	for _, item := range group.Items {
		for _, r := range item.Results {
			if len(r.Table) == 0 {
				continue
			}
			name := fmt.Sprintf("%s_%s_%s_%s.tsv",
				safeName(group.Params.ProjectName), safeName(r.Sample),
				safeName(r.Methylase.Name), safeName(r.Modification))
			if err := writeTable(filepath.Join(outputDir, name), r); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTable(path string, r sample.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	defer f.Close()

	tw := report.NewTableWriter(f)
	if err := tw.WriteHeader(); err != nil {
		return err
	}
	for _, c := range r.Table {
		if err := tw.Write(c); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func safeName(name string) string {
	if name == "" {
		return "project"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '_'
		}
		return r
	}, name)
}
