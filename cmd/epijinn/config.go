package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change persistent settings",
		Long: `Persistent settings live in ~/.epijinn.yaml and seed the defaults of
every run (classification cutoffs, report limits). Without a subcommand
the full configuration is printed as YAML.`,
		Example: `  epijinn config
  epijinn config get cutoffs.methylated
  epijinn config set cutoffs.unmethylated 0.25`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := viper.AllSettings()
			if len(settings) == 0 {
				fmt.Println("# empty configuration (~/.epijinn.yaml)")
				return nil
			}
			out, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("render config: %w", err)
			}
			fmt.Print(string(out))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			val := viper.Get(args[0])
			if val == nil {
				return fmt.Errorf("no value set for %q", args[0])
			}
			fmt.Println(val)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storeConfigValue(args[0], args[1])
		},
	})

	return cmd
}

// storeConfigValue writes a single key into ~/.epijinn.yaml, creating the
// file when none exists yet. Values are coerced so that cutoffs come back
// as floats and switches as booleans rather than strings.
func storeConfigValue(key, value string) error {
	switch value {
	case "true", "yes", "on":
		viper.Set(key, true)
	case "false", "no", "off":
		viper.Set(key, false)
	default:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			viper.Set(key, f)
		} else {
			viper.Set(key, value)
		}
	}

	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		cfgFile = filepath.Join(home, ".epijinn.yaml")
	}
	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("%s = %s (%s)\n", key, value, cfgFile)
	return nil
}
