// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bibdiff/internal/bibtex"
	"github.com/pdiddy/bibdiff/internal/citation"
	"github.com/pdiddy/bibdiff/pkg/types"
)

var formatCmd = &cobra.Command{
	Use:   "format FILE",
	Short: "Print the canonical citations of one BibTeX file",
	Long: `Format parses a single BibTeX file and prints every entry as the
canonical citation string that compare uses as its identity key, newest
first. Use it to see why two entries that look alike do not match.

With --csl the entries are written as CSL-YAML instead, in file order,
for use with Pandoc or a reference manager.`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().Bool("csl", false, "write CSL-YAML instead of citation strings")

	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := compareConfig(nil)
	if err != nil {
		return err
	}

	entries, err := bibtex.ParseFile(args[0], bibtex.Options{
		AllowNonstandardTypes: cfg.AllowNonstandardTypes,
	})
	if err != nil {
		return err
	}

	f := citation.NewFormatter(cfg)
	if csl, _ := cmd.Flags().GetBool("csl"); csl {
		return f.WriteCSL(cmd.OutOrStdout(), entries)
	}
	return writeCitations(cmd.OutOrStdout(), f.FormatAll(entries))
}

// writeCitations prints publications as a numbered list.
func writeCitations(w io.Writer, pubs []types.Publication) error {
	for i, p := range pubs {
		if _, err := fmt.Fprintf(w, "%3d. %s\n", i+1, p.Text); err != nil {
			return err
		}
	}
	return nil
}
