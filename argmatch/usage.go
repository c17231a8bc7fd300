// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argmatch

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteUsage writes a usage summary for the declared arguments: a
// synthesized usage line with the positionals in fill order, then a
// table of positionals and a table of flags with their help text.
func (p *Parser) WriteUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage:\n  %s", program)
	for _, index := range p.positionals {
		fmt.Fprintf(w, " <%s>", p.specs[index].Name)
	}
	if len(p.specs) > len(p.positionals) {
		fmt.Fprint(w, " [flags]")
	}
	fmt.Fprintln(w)

	if len(p.positionals) > 0 {
		fmt.Fprintf(w, "\nArguments:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, index := range p.positionals {
			spec := p.specs[index]
			fmt.Fprintf(tw, "  %s\t%s\n", spec.Name, spec.Help)
		}
		tw.Flush()
	}

	hasFlags := false
	for _, spec := range p.specs {
		if spec.Kind != KindPositional {
			hasFlags = true
			break
		}
	}
	if hasFlags {
		fmt.Fprintf(w, "\nFlags:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, spec := range p.specs {
			if spec.Kind == KindPositional {
				continue
			}
			fmt.Fprintf(tw, "  %s\t%s\n", flagColumn(spec), spec.Help)
		}
		tw.Flush()
	}
}

// flagColumn renders the identifier column for one flag or switch, in
// the "-x, --xxx value" shape. Rows without a short form are padded so
// the long forms line up.
func flagColumn(spec Spec) string {
	var column strings.Builder
	switch {
	case spec.Short != "" && spec.Long != "":
		column.WriteString("-" + spec.Short + ", --" + spec.Long)
	case spec.Short != "":
		column.WriteString("-" + spec.Short)
	default:
		column.WriteString("    --" + spec.Long)
	}
	if spec.Kind == KindFlag {
		column.WriteString(" value")
	}
	return column.String()
}
