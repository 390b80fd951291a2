// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Publication is a BibEntry rendered into its canonical citation text.
// Two publications are the same publication iff their Text is identical.
type Publication struct {
	// Year is the sort key: the numeric year, or 0 when the year field is
	// missing or not purely digits.
	Year int `json:"year" yaml:"year"`

	// Text is the canonical citation string used as the comparison key.
	Text string `json:"text" yaml:"text"`
}
