// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultJournalsIsCopy(t *testing.T) {
	a := DefaultJournals()
	a[`\apj`] = "changed"
	assert.Equal(t, "Astrophysical Journal", DefaultJournals()[`\apj`])
	assert.Len(t, DefaultJournals(), 11)
}

func TestMergeJournals(t *testing.T) {
	base := DefaultJournals()
	merged := MergeJournals(base, map[string]string{
		"rnaas": "Research Notes of the AAS",
		`\apj`:  "The Astrophysical Journal",
		" aj ":  "The Astronomical Journal",
	})

	assert.Equal(t, "Research Notes of the AAS", merged[`\rnaas`])
	assert.Equal(t, "The Astrophysical Journal", merged[`\apj`])
	assert.Equal(t, "The Astronomical Journal", merged[`\aj`])
	assert.Equal(t, "Nature", merged[`\nat`])
	assert.Equal(t, "Astrophysical Journal", base[`\apj`], "base is not modified")
}

func TestMacroKey(t *testing.T) {
	assert.Equal(t, `\apj`, MacroKey("apj"))
	assert.Equal(t, `\apj`, MacroKey(`\apj`))
}

func TestSortedMacros(t *testing.T) {
	keys := SortedMacros(map[string]string{`\b`: "", `\a`: "", `\c`: ""})
	assert.Equal(t, []string{`\a`, `\b`, `\c`}, keys)
}
