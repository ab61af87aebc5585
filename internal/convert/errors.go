// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"
)

// SchemaError indicates the input header lacks a column required for
// citation-key generation. It aborts the run before any row is processed.
type SchemaError struct {
	// Missing lists the BibTeX fields no header column maps to.
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input header has no column mapped to required field(s): %s",
		strings.Join(e.Missing, ", "))
}

// RowError describes a data row whose cell count disagrees with the header.
// In strict mode the first RowError aborts the run; in best-effort mode the
// row is skipped and reported in the summary.
type RowError struct {
	// Line is the 1-based line number of the row in the source file.
	Line int

	// Cells is the cell count the row had.
	Cells int

	// Want is the cell count the header declares.
	Want int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %d cell(s), header declares %d", e.Line, e.Cells, e.Want)
}
