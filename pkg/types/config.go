// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

const (
	// DefaultLeft and DefaultRight are the input files used when neither
	// flags, arguments, nor a config file name them.
	DefaultLeft  = "list1.bib"
	DefaultRight = "list2.bib"

	// DefaultMaxAuthors is the number of authors shown before ", et al.".
	DefaultMaxAuthors = 3
)

// CompareConfig holds settings for one compare run.
type CompareConfig struct {
	// Left and Right are the two bibliography files to reconcile.
	Left  string `json:"left" yaml:"left"`
	Right string `json:"right" yaml:"right"`

	// Journals maps a LaTeX journal macro (e.g. `\apj`) to its full name.
	Journals map[string]string `json:"journals" yaml:"journals"`

	// MaxAuthors is the number of authors listed before truncation.
	MaxAuthors int `json:"max_authors" yaml:"max_authors"`

	// AllowNonstandardTypes keeps entries such as @software or @dataset
	// that are otherwise skipped by the parser.
	AllowNonstandardTypes bool `json:"nonstandard_types" yaml:"nonstandard_types"`
}
