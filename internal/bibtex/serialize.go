// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibtex serializes article entries to BibTeX text and reads them
// back.
package bibtex

import (
	"sort"
	"strings"

	"github.com/pdiddy/csv2bib/pkg/types"
)

// fieldOrder is the canonical emission order. Fields outside this list are
// appended alphabetically, so output is deterministic for any mapping.
var fieldOrder = []string{
	"author", "title", "journal", "year", "volume", "number", "pages", "doi", "url",
}

// escaper rewrites BibTeX-significant characters in field values. Values
// are brace-wrapped by the serializer, so braces, percent, ampersand, hash
// and backslash are the characters that would break a reader if left raw.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`%`, `\%`,
	`&`, `\&`,
	`#`, `\#`,
)

// unescaper inverts escaper. Longer patterns come first so the
// textbackslash form is not misread as an escaped brace.
var unescaper = strings.NewReplacer(
	`\textbackslash{}`, `\`,
	`\{`, `{`,
	`\}`, `}`,
	`\%`, `%`,
	`\&`, `&`,
	`\#`, `#`,
)

// FormatEntry renders one entry as a BibTeX block:
//
//	@article{key,
//	  field = {value},
//	}
func FormatEntry(e types.Entry) string {
	var b strings.Builder
	b.WriteString("@article{")
	b.WriteString(e.Key)
	b.WriteString(",\n")
	for _, f := range orderedFields(e.Fields) {
		b.WriteString("  ")
		b.WriteString(f)
		b.WriteString(" = {")
		b.WriteString(escaper.Replace(e.Fields[f]))
		b.WriteString("},\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// Format renders a sequence of entries, blocks separated by one blank line,
// with a trailing newline after the last block. Zero entries produce "".
func Format(entries []types.Entry) string {
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = FormatEntry(e)
	}
	return strings.Join(blocks, "\n")
}

// orderedFields returns the field names present in fields, canonical ones
// first in fixed order, any others alphabetical after them.
func orderedFields(fields map[string]string) []string {
	var out []string
	canonical := make(map[string]bool, len(fieldOrder))
	for _, f := range fieldOrder {
		canonical[f] = true
		if _, ok := fields[f]; ok {
			out = append(out, f)
		}
	}
	var extra []string
	for f := range fields {
		if !canonical[f] {
			extra = append(extra, f)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
