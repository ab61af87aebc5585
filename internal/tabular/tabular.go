// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tabular reads bibliographic tables from CSV and XLSX files into a
// common header-keyed row representation.
package tabular

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/csv2bib/pkg/types"
)

// Format identifies an input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Malformed records a data row whose cell count disagrees with the header.
// The reader keeps such rows out of Table.Rows; the converter decides
// whether they abort the run or are skipped with a warning.
type Malformed struct {
	// Line is the 1-based line (or sheet row) of the offending record.
	Line int

	// Cells is the number of cells the record actually had.
	Cells int
}

// Table is a parsed input file: the header, the well-formed data rows in
// source order, and the malformed rows encountered along the way.
type Table struct {
	// Source is the path the table was read from.
	Source string

	// Headers are the column names from the header row, trimmed, in
	// source order.
	Headers []string

	// Rows are the well-formed data rows.
	Rows []types.Row

	// Malformed lists data rows whose cell count did not match the
	// header, in source order.
	Malformed []Malformed
}

// HasColumn reports whether the header declares the named column.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Read parses the file at path, detecting the format from its extension
// when format is empty. The sheet argument applies to XLSX input only; ""
// selects the first sheet. The opts argument carries CSV reader settings.
func Read(path string, format Format, sheet string, opts CSVOptions) (*Table, error) {
	if format == "" {
		format = DetectFormat(path)
	}
	switch format {
	case FormatCSV:
		return ReadCSV(path, opts)
	case FormatXLSX:
		return ReadXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
}

// DetectFormat guesses the input format from the file extension,
// defaulting to CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// rowFromCells builds a Row from a record whose length matches headers.
// Cell values are trimmed; the header keeps its source-order association.
func rowFromCells(line int, headers, cells []string) types.Row {
	fields := make(map[string]string, len(headers))
	for i, h := range headers {
		fields[h] = strings.TrimSpace(cells[i])
	}
	return types.Row{Line: line, Fields: fields}
}

// cleanHeaders trims header cells and strips a UTF-8 BOM from the first
// one. Scopus exports are written with a BOM.
func cleanHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		headers[i] = strings.TrimSpace(h)
	}
	return headers
}

// isBlank reports whether every cell in the record is empty after
// trimming. Blank separator rows are common in hand-edited sheets and are
// not data.
func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
