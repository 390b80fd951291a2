// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bibdiff/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Author         []CSLName `yaml:"author,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	Page           string    `yaml:"page,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// cslTypes maps BibTeX entry types to CSL item types.
var cslTypes = map[string]string{
	"article":       "article-journal",
	"book":          "book",
	"booklet":       "pamphlet",
	"conference":    "paper-conference",
	"inbook":        "chapter",
	"incollection":  "chapter",
	"inproceedings": "paper-conference",
	"manual":        "report",
	"mastersthesis": "thesis",
	"phdthesis":     "thesis",
	"proceedings":   "book",
	"techreport":    "report",
	"unpublished":   "manuscript",
	"software":      "software",
	"dataset":       "dataset",
}

// WriteCSL writes entries as a CSL-YAML list to w, in input order.
func (f *Formatter) WriteCSL(w io.Writer, entries []types.BibEntry) error {
	items := make([]CSLItem, len(entries))
	for i, e := range entries {
		items[i] = f.toCSLItem(e)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a BibEntry to a CSLItem. Text fields go through the
// same cleanup as the canonical citation.
func (f *Formatter) toCSLItem(e types.BibEntry) CSLItem {
	typ, ok := cslTypes[e.Type]
	if !ok {
		typ = "document"
	}
	item := CSLItem{
		ID:     e.Key,
		Type:   typ,
		Title:  f.Clean(e.Field("title")),
		Volume: e.Field("volume"),
		Issue:  e.Field("number"),
		Page:   e.Field("pages"),
	}
	if v := venueOf(e); v != noVenue {
		item.ContainerTitle = f.Clean(v)
	}

	if authors := e.Field("author"); authors != "" {
		authors = strings.ReplaceAll(authors, "\n", " ")
		for _, a := range strings.Split(authors, " and ") {
			if n := parseAuthorName(braceStripper.Replace(a)); n != (CSLName{}) {
				item.Author = append(item.Author, n)
			}
		}
	}

	if y := yearKey(e.Field("year")); y > 0 {
		item.Issued = &CSLDate{DateParts: [][]int{{y}}}
	}
	return item
}

// parseAuthorName splits a BibTeX name into CSL family/given parts.
// "Family, Given" splits on the first comma; "Given Family" splits on the
// last space. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	if idx := strings.Index(name, ","); idx >= 0 {
		return CSLName{
			Family: strings.TrimSpace(name[:idx]),
			Given:  strings.TrimSpace(name[idx+1:]),
		}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  strings.TrimSpace(name[:idx]),
		Family: name[idx+1:],
	}
}
