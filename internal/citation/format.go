// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation renders raw BibTeX entries into canonical citation
// strings. The canonical text is the identity key used when two
// bibliographies are compared, so its layout must stay byte-stable.
package citation

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/bibdiff/pkg/types"
)

const (
	noTitle = "No title"
	noVenue = "No venue listed"
	noYear  = "n.d."
	etAl    = ", et al."
)

// macroRe matches a LaTeX control word such as \apj or \mnras.
var macroRe = regexp.MustCompile(`\\[a-zA-Z]+`)

// braceStripper removes grouping braces left over after macro expansion.
var braceStripper = strings.NewReplacer("{", "", "}", "")

// Formatter turns BibEntry values into Publications.
type Formatter struct {
	journals   map[string]string
	maxAuthors int
}

// NewFormatter builds a Formatter from the compare configuration. A nil
// journal table falls back to DefaultJournals; a non-positive author limit
// falls back to types.DefaultMaxAuthors.
func NewFormatter(cfg types.CompareConfig) *Formatter {
	journals := cfg.Journals
	if journals == nil {
		journals = DefaultJournals()
	}
	maxAuthors := cfg.MaxAuthors
	if maxAuthors <= 0 {
		maxAuthors = types.DefaultMaxAuthors
	}
	return &Formatter{journals: journals, maxAuthors: maxAuthors}
}

// Format renders one entry. The canonical text layout is
//
//	{authors}: "\textit{{title}}." \textit{{venue}}, {year}{details}
func (f *Formatter) Format(e types.BibEntry) types.Publication {
	authors := FormatAuthors(e.Field("author"), f.maxAuthors)

	title, ok := e.Get("title")
	if !ok {
		title = noTitle
	}
	title = f.Clean(title)
	venue := f.Clean(venueOf(e))

	yearText, ok := e.Get("year")
	if !ok {
		yearText = noYear
	}

	text := fmt.Sprintf(`%s: "\textit{%s}." \textit{%s}, %s%s`,
		authors, title, venue, yearText, details(e))

	return types.Publication{
		Year: yearKey(yearText),
		Text: text,
	}
}

// FormatAll renders entries and orders them newest first.
func (f *Formatter) FormatAll(entries []types.BibEntry) []types.Publication {
	pubs := make([]types.Publication, len(entries))
	for i, e := range entries {
		pubs[i] = f.Format(e)
	}
	SortByYear(pubs)
	return pubs
}

// Clean trims s, expands known journal macros, and strips all braces.
// Unknown macros keep their backslash.
func (f *Formatter) Clean(s string) string {
	s = strings.TrimSpace(s)
	s = macroRe.ReplaceAllStringFunc(s, func(m string) string {
		if name, ok := f.journals[m]; ok {
			return name
		}
		return m
	})
	return braceStripper.Replace(s)
}

// FormatAuthors splits a BibTeX author list on " and " and joins the names
// with ", ". Lists longer than limit keep the first limit names and end with
// ", et al.".
func FormatAuthors(field string, limit int) string {
	field = strings.ReplaceAll(field, "\r\n", " ")
	field = strings.ReplaceAll(field, "\n", " ")
	names := strings.Split(field, " and ")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	if len(names) > limit {
		return strings.Join(names[:limit], ", ") + etAl
	}
	return strings.Join(names, ", ")
}

// SortByYear orders publications by descending year. Equal years keep
// their relative order.
func SortByYear(pubs []types.Publication) {
	sort.SliceStable(pubs, func(i, j int) bool {
		return pubs[i].Year > pubs[j].Year
	})
}

// venueOf prefers journal, then booktitle. Empty fields count as absent.
func venueOf(e types.BibEntry) string {
	if v := e.Field("journal"); v != "" {
		return v
	}
	if v := e.Field("booktitle"); v != "" {
		return v
	}
	return noVenue
}

// details renders ", vol. V, no. N, pp. P" from the fields present.
func details(e types.BibEntry) string {
	var parts []string
	if v := e.Field("volume"); v != "" {
		parts = append(parts, "vol. "+v)
	}
	if v := e.Field("number"); v != "" {
		parts = append(parts, "no. "+v)
	}
	if v := e.Field("pages"); v != "" {
		parts = append(parts, "pp. "+v)
	}
	if len(parts) == 0 {
		return ""
	}
	return ", " + strings.Join(parts, ", ")
}

// yearKey returns the numeric year when s is all ASCII digits, else 0.
func yearKey(s string) int {
	if s == "" {
		return 0
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
