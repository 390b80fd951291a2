// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compare

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/bibdiff/pkg/types"
)

var divider = strings.Repeat("-", 64)

// WriteReport writes the plain-text report: one block for each direction,
// each opened by two divider lines and a count header, followed by the
// citations numbered from 1.
func WriteReport(w io.Writer, res Result, leftName, rightName string) error {
	var b strings.Builder
	writeBlock(&b, res.OnlyLeft, leftName, rightName)
	writeBlock(&b, res.OnlyRight, rightName, leftName)
	b.WriteString("\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeBlock(b *strings.Builder, pubs []types.Publication, in, notIn string) {
	for n := 0; n < 2; n++ {
		fmt.Fprintf(b, "\n%s\n\n", divider)
	}
	fmt.Fprintf(b, "\nA total of %d publications in %s but not in %s:\n", len(pubs), in, notIn)
	for i, p := range pubs {
		fmt.Fprintf(b, "\n %d. %s\n", i+1, p.Text)
	}
}
