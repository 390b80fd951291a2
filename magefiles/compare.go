//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Compare builds the CLI and compares list1.bib with list2.bib in the
// working directory.
func Compare() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "compare", "--verbose")
}

// Format builds the CLI and prints the canonical citations of FILE
// (default list1.bib).
func Format() error {
	mg.Deps(Build)
	file := "list1.bib"
	if f := os.Getenv("FILE"); f != "" {
		file = f
	}
	return sh.RunV(filepath.Join(binDir, binName), "format", file)
}
