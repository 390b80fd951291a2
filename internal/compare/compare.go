// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compare reconciles two bibliographies. Each file is parsed,
// rendered to canonical citations, and reduced to a set; the report lists
// the citations that appear on only one side.
package compare

import (
	"fmt"
	"io"

	"github.com/pdiddy/bibdiff/internal/bibtex"
	"github.com/pdiddy/bibdiff/internal/citation"
	"github.com/pdiddy/bibdiff/pkg/types"
)

// Result holds both halves of the symmetric difference. Publications
// present in both inputs are never included.
type Result struct {
	// OnlyLeft lists citations in the left file and not in the right.
	OnlyLeft []types.Publication

	// OnlyRight lists citations in the right file and not in the left.
	OnlyRight []types.Publication
}

// Diff treats left and right as sets keyed by canonical text and returns
// their differences. Repeated citations within one side collapse to one.
// Each half keeps the order of its input.
func Diff(left, right []types.Publication) Result {
	return Result{
		OnlyLeft:  missingFrom(left, right),
		OnlyRight: missingFrom(right, left),
	}
}

// missingFrom returns the distinct members of src that other lacks.
func missingFrom(src, other []types.Publication) []types.Publication {
	exclude := make(map[string]bool, len(other))
	for _, p := range other {
		exclude[p.Text] = true
	}
	seen := make(map[string]bool, len(src))
	var out []types.Publication
	for _, p := range src {
		if exclude[p.Text] || seen[p.Text] {
			continue
		}
		seen[p.Text] = true
		out = append(out, p)
	}
	return out
}

// Load parses one bibliography file and returns its publications newest first.
func Load(path string, cfg types.CompareConfig, f *citation.Formatter) ([]types.Publication, error) {
	entries, err := bibtex.ParseFile(path, bibtex.Options{
		AllowNonstandardTypes: cfg.AllowNonstandardTypes,
	})
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return f.FormatAll(entries), nil
}

// Run executes the whole pipeline for cfg and writes the report to w.
// Both files are loaded before anything is written, so a failure on either
// side produces no partial report. When progress is non-nil, per-file
// counts are written to it.
func Run(cfg types.CompareConfig, w, progress io.Writer) (Result, error) {
	f := citation.NewFormatter(cfg)

	left, err := Load(cfg.Left, cfg, f)
	if err != nil {
		return Result{}, err
	}
	if progress != nil {
		fmt.Fprintf(progress, "%s: %d entries\n", cfg.Left, len(left))
	}

	right, err := Load(cfg.Right, cfg, f)
	if err != nil {
		return Result{}, err
	}
	if progress != nil {
		fmt.Fprintf(progress, "%s: %d entries\n", cfg.Right, len(right))
	}

	res := Diff(left, right)
	if err := WriteReport(w, res, cfg.Left, cfg.Right); err != nil {
		return res, fmt.Errorf("writing report: %w", err)
	}
	return res, nil
}
