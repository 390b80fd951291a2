// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bibdiff/internal/compare"
)

var compareCmd = &cobra.Command{
	Use:   "compare [LEFT RIGHT]",
	Short: "Report publications present in only one of two BibTeX files",
	Long: `Compare parses both files, renders each entry as a canonical citation,
and prints two numbered lists: citations found only in LEFT and citations
found only in RIGHT. Publications present in both are not reported, and a
citation repeated within one file is listed once.

Citations are ordered newest first. The exit status is 0 whenever both
files parse, regardless of how many differences are found.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := compareConfig(args)
	if err != nil {
		return err
	}

	var progress io.Writer
	if viper.GetBool("verbose") {
		progress = cmd.ErrOrStderr()
	}

	_, err = compare.Run(cfg, cmd.OutOrStdout(), progress)
	return err
}
