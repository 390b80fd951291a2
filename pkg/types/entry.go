// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the bibdiff pipeline:
// raw BibTeX entries, formatted publications, and the compare configuration.
package types

import "strings"

// Field is one name/value pair of a BibTeX entry. Name is lowercased.
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// BibEntry is a raw record parsed from a bibliography file. Fields keep
// source order; a field repeated within one entry keeps only its last value.
type BibEntry struct {
	// Type is the lowercased entry type (e.g. "article", "inproceedings").
	Type string `json:"type" yaml:"type"`

	// Key is the citation key as written in the source file.
	Key string `json:"key" yaml:"key"`

	// Line is the 1-based line of the '@' that starts the entry.
	Line int `json:"line" yaml:"line"`

	Fields []Field `json:"fields" yaml:"fields"`
}

// Get returns the value of the named field and whether it is present.
func (e BibEntry) Get(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, f := range e.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Field returns the value of the named field, or "" when absent.
func (e BibEntry) Field(name string) string {
	v, _ := e.Get(name)
	return v
}

// Set stores a field value, replacing any earlier value with the same name.
func (e *BibEntry) Set(name, value string) {
	name = strings.ToLower(name)
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			e.Fields[i].Value = value
			return
		}
	}
	e.Fields = append(e.Fields, Field{Name: name, Value: value})
}
