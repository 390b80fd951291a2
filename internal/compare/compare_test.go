// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compare

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bibdiff/internal/bibtex"
	"github.com/pdiddy/bibdiff/pkg/types"
)

func pubs(texts ...string) []types.Publication {
	out := make([]types.Publication, len(texts))
	for i, s := range texts {
		out[i] = types.Publication{Text: s}
	}
	return out
}

func texts(ps []types.Publication) []string {
	var out []string
	for _, p := range ps {
		out = append(out, p.Text)
	}
	return out
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name      string
		left      []types.Publication
		right     []types.Publication
		wantLeft  []string
		wantRight []string
	}{
		{
			name:      "symmetric difference excludes shared",
			left:      pubs("X", "Y"),
			right:     pubs("Y", "Z"),
			wantLeft:  []string{"X"},
			wantRight: []string{"Z"},
		},
		{
			name:      "identical inputs",
			left:      pubs("A", "B"),
			right:     pubs("B", "A"),
			wantLeft:  nil,
			wantRight: nil,
		},
		{
			name:      "duplicates collapse",
			left:      pubs("A", "A", "B"),
			right:     pubs("C", "C"),
			wantLeft:  []string{"A", "B"},
			wantRight: []string{"C"},
		},
		{
			name:      "comparison is exact",
			left:      pubs("Title"),
			right:     pubs("title", "Title "),
			wantLeft:  []string{"Title"},
			wantRight: []string{"title", "Title "},
		},
		{
			name:      "empty side",
			left:      nil,
			right:     pubs("A"),
			wantLeft:  nil,
			wantRight: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Diff(tt.left, tt.right)
			assert.Equal(t, tt.wantLeft, texts(res.OnlyLeft))
			assert.Equal(t, tt.wantRight, texts(res.OnlyRight))
		})
	}
}

func TestDiffKeepsInputOrder(t *testing.T) {
	left := []types.Publication{
		{Year: 2022, Text: "new"},
		{Year: 2015, Text: "shared"},
		{Year: 2010, Text: "mid"},
		{Year: 0, Text: "undated"},
	}
	right := []types.Publication{{Year: 2015, Text: "shared"}}

	res := Diff(left, right)
	assert.Equal(t, []string{"new", "mid", "undated"}, texts(res.OnlyLeft))
	assert.Empty(t, res.OnlyRight)
}

func TestWriteReport(t *testing.T) {
	res := Result{
		OnlyLeft:  pubs("X one", "X two"),
		OnlyRight: nil,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, res, "list1.bib", "list2.bib"))

	div := strings.Repeat("-", 64)
	want := "\n" + div + "\n\n" +
		"\n" + div + "\n\n" +
		"\nA total of 2 publications in list1.bib but not in list2.bib:\n" +
		"\n 1. X one\n" +
		"\n 2. X two\n" +
		"\n" + div + "\n\n" +
		"\n" + div + "\n\n" +
		"\nA total of 0 publications in list2.bib but not in list1.bib:\n" +
		"\n\n"
	assert.Equal(t, want, buf.String())
}

const list1 = `
@article{x,
  author = {Alpha, A. and Beta, B. and Gamma, G. and Delta, D.},
  title = {{X} only in the first list},
  journal = {\apj},
  year = {2018},
  volume = {12}, number = {3}, pages = {45-50}
}
@article{y,
  author = {Shared, S.},
  title = {Shared paper},
  journal = {\mnras},
  year = {2021}
}
@article{y-again,
  author = {Shared, S.},
  title = {Shared paper},
  journal = {\mnras},
  year = {2021}
}
`

const list2 = `
@article{y,
  author = {Shared, S.},
  title = {Shared paper},
  journal = {\mnras},
  year = {2021}
}
@inproceedings{z,
  author = {Zeta, Z.},
  title = {Z only in the second list},
  year = {in press},
  pages = {10-20}
}
`

func writeBib(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := types.CompareConfig{
		Left:  writeBib(t, dir, "list1.bib", list1),
		Right: writeBib(t, dir, "list2.bib", list2),
	}

	var out, progress bytes.Buffer
	res, err := Run(cfg, &out, &progress)
	require.NoError(t, err)

	require.Len(t, res.OnlyLeft, 1)
	assert.Equal(t, 2018, res.OnlyLeft[0].Year)
	assert.Equal(t,
		`Alpha, A., Beta, B., Gamma, G., et al.: "\textit{X only in the first list}." \textit{Astrophysical Journal}, 2018, vol. 12, no. 3, pp. 45-50`,
		res.OnlyLeft[0].Text)

	require.Len(t, res.OnlyRight, 1)
	assert.Equal(t, 0, res.OnlyRight[0].Year)
	assert.Equal(t,
		`Zeta, Z.: "\textit{Z only in the second list}." \textit{No venue listed}, in press, pp. 10-20`,
		res.OnlyRight[0].Text)

	report := out.String()
	assert.Contains(t, report, "A total of 1 publications in "+cfg.Left+" but not in "+cfg.Right+":")
	assert.Contains(t, report, "A total of 1 publications in "+cfg.Right+" but not in "+cfg.Left+":")
	assert.NotContains(t, report, "Shared paper")
	assert.Contains(t, progress.String(), cfg.Left+": 3 entries")
	assert.Contains(t, progress.String(), cfg.Right+": 2 entries")
}

func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := types.CompareConfig{
		Left:  writeBib(t, dir, "a.bib", list1),
		Right: writeBib(t, dir, "b.bib", list2),
	}

	var first, second bytes.Buffer
	_, err := Run(cfg, &first, nil)
	require.NoError(t, err)
	_, err = Run(cfg, &second, nil)
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())
}

func TestRunFailsWithoutPartialOutput(t *testing.T) {
	dir := t.TempDir()
	good := writeBib(t, dir, "good.bib", list1)
	bad := writeBib(t, dir, "bad.bib", "@article{k,\n title = {unterminated\n")

	tests := []struct {
		name   string
		cfg    types.CompareConfig
		assert func(t *testing.T, err error)
	}{
		{
			name: "malformed right file",
			cfg:  types.CompareConfig{Left: good, Right: bad},
			assert: func(t *testing.T, err error) {
				var synErr *bibtex.SyntaxError
				assert.True(t, errors.As(err, &synErr))
			},
		},
		{
			name: "missing left file",
			cfg:  types.CompareConfig{Left: filepath.Join(dir, "nope.bib"), Right: good},
			assert: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, os.ErrNotExist))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := Run(tt.cfg, &out, nil)
			require.Error(t, err)
			tt.assert(t, err)
			assert.Empty(t, out.String())
		})
	}
}
