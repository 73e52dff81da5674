// Package main provides the epijinn command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// logger is initialized by the root command before any subcommand runs.
var logger = zap.NewNop()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "epijinn",
		Short:   "Annotate DNA methylation motifs and analyze bedmethyl tables",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Long: `epijinn locates methylase and restriction-enzyme recognition motifs in
reference sequences and reconciles them against per-base modification
calls from a nanopore sequencing pipeline (modkit bedmethyl tables).`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()
			var err error
			logger, err = newLogger(verbose)
			return err
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newOverlapCmd())
	cmd.AddCommand(newMethylasesCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// initConfig loads ~/.epijinn.yaml if present and sets the defaults.
func initConfig() {
	viper.SetConfigName(".epijinn")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetDefault("cutoffs.methylated", 0.7)
	viper.SetDefault("cutoffs.unmethylated", 0.3)
	viper.SetDefault("report.feature_cutoff", 50)

	// A missing config file is fine; only report real read failures.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: could not read config: %v\n", err)
		}
	}
}
