// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the csv2bib converter.
package types

import "sort"

// Row is one record read from an input table: the 1-based line (or sheet
// row) it came from, and its cells keyed by column header. Cell values are
// trimmed of surrounding whitespace by the reader. Rows are not mutated
// after creation.
type Row struct {
	// Line is the 1-based position of the row in the source file. The
	// header occupies line 1, so the first data row is line 2.
	Line int `json:"line" yaml:"line"`

	// Fields maps column header to cell value. Missing cells are absent
	// rather than empty.
	Fields map[string]string `json:"fields" yaml:"fields"`
}

// Get returns the cell value for a column, or "" if the column is absent.
func (r Row) Get(column string) string {
	return r.Fields[column]
}

// Entry is one BibTeX article record: a citation key unique within the
// conversion run, and field values keyed by BibTeX field name. Fields with
// empty source values are omitted.
type Entry struct {
	// Key is the citation key following "@article{".
	Key string `json:"key" yaml:"key"`

	// Fields maps BibTeX field name (author, title, journal, ...) to value.
	Fields map[string]string `json:"fields" yaml:"fields"`
}

// SkippedRow records a data row the converter could not use, for the
// best-effort summary.
type SkippedRow struct {
	// Line is the 1-based line number of the offending row.
	Line int `json:"line" yaml:"line"`

	// Reason is a short human-readable description of the defect.
	Reason string `json:"reason" yaml:"reason"`
}

// Report summarizes one conversion run.
type Report struct {
	// Converted is the number of entries produced.
	Converted int `json:"converted" yaml:"converted"`

	// Skipped lists rows dropped in best-effort mode, in input order.
	Skipped []SkippedRow `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Total returns the total number of data rows processed.
func (r Report) Total() int {
	return r.Converted + len(r.Skipped)
}

// HasSkipped reports whether any rows were dropped.
func (r Report) HasSkipped() bool {
	return len(r.Skipped) > 0
}

// SkippedLines returns the line numbers of dropped rows in ascending order.
func (r Report) SkippedLines() []int {
	lines := make([]int, len(r.Skipped))
	for i, s := range r.Skipped {
		lines[i] = s.Line
	}
	sort.Ints(lines)
	return lines
}
