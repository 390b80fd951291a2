// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bibdiff CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bibdiff/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the bibdiff CLI. Run without a
// subcommand it behaves like "bibdiff compare".
var rootCmd = &cobra.Command{
	Use:   "bibdiff",
	Short: "Reconcile two BibTeX publication lists",
	Long: `bibdiff parses two BibTeX files, renders every entry as a canonical
citation string, and reports the publications that appear in only one of
the two lists.

With no subcommand it compares list1.bib and list2.bib in the current
directory. Input paths, the journal macro table, and the author limit can
be set in bibdiff.yaml or through BIBDIFF_* environment variables.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runCompare,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./bibdiff.yaml or ~/.config/bibdiff/bibdiff.yaml)")
	flags.Int("max-authors", types.DefaultMaxAuthors, "authors listed before \", et al.\"")
	flags.Bool("nonstandard-types", false, "keep entries of nonstandard types such as @software")
	flags.BoolP("verbose", "v", false, "report per-file entry counts on stderr")

	_ = viper.BindPFlag("max_authors", flags.Lookup("max-authors"))
	_ = viper.BindPFlag("nonstandard_types", flags.Lookup("nonstandard-types"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
}

func initConfig() {
	viper.SetDefault("left", types.DefaultLeft)
	viper.SetDefault("right", types.DefaultRight)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bibdiff")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bibdiff"))
		}
	}

	viper.SetEnvPrefix("BIBDIFF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: could not read config %s: %v\n", cfgFile, err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
