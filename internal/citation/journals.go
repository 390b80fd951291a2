// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"sort"
	"strings"
)

// DefaultJournals returns a fresh copy of the built-in macro table for the
// astronomy journals used by ADS BibTeX exports.
func DefaultJournals() map[string]string {
	return map[string]string{
		`\aap`:    "Astronomy & Astrophysics",
		`\apj`:    "Astrophysical Journal",
		`\apjl`:   "Astrophysical Journal Letters",
		`\apjs`:   "Astrophysical Journal Supplement Series",
		`\mnras`:  "Monthly Notices of the Royal Astronomical Society",
		`\aj`:     "Astronomical Journal",
		`\nat`:    "Nature",
		`\araa`:   "Annual Review of Astronomy and Astrophysics",
		`\pasp`:   "Publications of the Astronomical Society of the Pacific",
		`\icarus`: "Icarus",
		`\ssr`:    "Space Science Reviews",
	}
}

// MergeJournals returns a copy of base with overrides applied. Override
// keys may be written with or without the leading backslash.
func MergeJournals(base, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		merged[MacroKey(k)] = v
	}
	for k, v := range overrides {
		merged[MacroKey(k)] = v
	}
	return merged
}

// MacroKey normalizes a macro name to its backslash form ("apj" -> `\apj`).
func MacroKey(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, `\`) {
		return name
	}
	return `\` + name
}

// SortedMacros returns the keys of a journal table in lexical order.
func SortedMacros(journals map[string]string) []string {
	keys := make([]string, 0, len(journals))
	for k := range journals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
