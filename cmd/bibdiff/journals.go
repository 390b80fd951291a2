// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bibdiff/internal/citation"
)

var journalsCmd = &cobra.Command{
	Use:   "journals",
	Short: "List the journal macros expanded in titles and venues",
	Long: `Journals prints the effective macro table: the built-in astronomy
journal abbreviations merged with any "journals" map from the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := compareConfig(nil)
		if err != nil {
			return err
		}
		return writeJournals(cmd.OutOrStdout(), cfg.Journals)
	},
}

func init() {
	rootCmd.AddCommand(journalsCmd)
}

func writeJournals(w io.Writer, journals map[string]string) error {
	for _, k := range citation.SortedMacros(journals) {
		if _, err := fmt.Fprintf(w, "%-10s %s\n", k, journals[k]); err != nil {
			return err
		}
	}
	return nil
}
