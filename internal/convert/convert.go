// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert maps tabular bibliographic rows to BibTeX article entries.
// The conversion is a pure, single-pass transformation: all I/O belongs to
// the caller, and all state (notably the key-collision table) is scoped to
// one Run call.
package convert

import (
	"fmt"

	"github.com/pdiddy/csv2bib/internal/tabular"
	"github.com/pdiddy/csv2bib/pkg/types"
)

// Default column names combined into the pages field when no mapped column
// supplies one directly.
const (
	defaultPageStartColumn = "Page start"
	defaultPageEndColumn   = "Page end"
)

// Run converts every well-formed row of table into an article entry, in
// input order. The header must contain at least one column mapped to
// "author" and one mapped to "year" (key generation needs both); otherwise
// Run fails with *SchemaError before touching any row. Malformed rows abort
// the run with *RowError in strict mode; in best-effort mode they are
// skipped and listed in the report.
func Run(table *tabular.Table, cfg types.ConvertConfig) ([]types.Entry, types.Report, error) {
	cfg = withDefaults(cfg)

	if err := checkSchema(table.Headers, cfg.Mapping); err != nil {
		return nil, types.Report{}, err
	}

	var report types.Report
	if len(table.Malformed) > 0 {
		if cfg.Strict {
			m := table.Malformed[0]
			return nil, types.Report{}, &RowError{Line: m.Line, Cells: m.Cells, Want: len(table.Headers)}
		}
		for _, m := range table.Malformed {
			report.Skipped = append(report.Skipped, types.SkippedRow{
				Line:   m.Line,
				Reason: fmt.Sprintf("%d cell(s), header declares %d", m.Cells, len(table.Headers)),
			})
		}
	}

	keys := make(keySet)
	entries := make([]types.Entry, 0, len(table.Rows))
	for _, row := range table.Rows {
		fields := mapRow(row, table.Headers, cfg)
		base := baseKey(columnValue(row, table.Headers, cfg.Mapping, "author"),
			columnValue(row, table.Headers, cfg.Mapping, "year"),
			cfg.AuthorDelimiter)
		entries = append(entries, types.Entry{
			Key:    keys.issue(base),
			Fields: fields,
		})
	}

	report.Converted = len(entries)
	return entries, report, nil
}

// withDefaults fills zero-valued settings.
func withDefaults(cfg types.ConvertConfig) types.ConvertConfig {
	if cfg.Mapping == nil {
		cfg.Mapping = types.DefaultMapping()
	}
	if cfg.AuthorDelimiter == "" {
		cfg.AuthorDelimiter = DefaultAuthorDelimiter
	}
	if cfg.PageStartColumn == "" {
		cfg.PageStartColumn = defaultPageStartColumn
	}
	if cfg.PageEndColumn == "" {
		cfg.PageEndColumn = defaultPageEndColumn
	}
	return cfg
}

// checkSchema verifies the header declares the columns key generation
// depends on.
func checkSchema(headers []string, mapping types.FieldMapping) error {
	present := make(map[string]bool)
	for _, h := range headers {
		if f, ok := mapping[h]; ok {
			present[f] = true
		}
	}
	var missing []string
	for _, f := range []string{"author", "year"} {
		if !present[f] {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// mapRow applies the field mapping to one row. Headers are walked in
// source order so output is deterministic; when several columns feed the
// same field the first non-empty value wins. Empty values are omitted.
func mapRow(row types.Row, headers []string, cfg types.ConvertConfig) map[string]string {
	fields := make(map[string]string)
	for _, h := range headers {
		field, ok := cfg.Mapping[h]
		if !ok {
			continue
		}
		value := row.Get(h)
		if value == "" || fields[field] != "" {
			continue
		}
		if field == "author" {
			value = NormalizeAuthors(value, cfg.AuthorDelimiter)
		}
		fields[field] = value
	}
	if fields["pages"] == "" {
		if pages := combinePages(row.Get(cfg.PageStartColumn), row.Get(cfg.PageEndColumn)); pages != "" {
			fields["pages"] = pages
		}
	}
	return fields
}

// combinePages joins a page range as "start--end". A lone start page is
// used as-is; a lone end page is unusable.
func combinePages(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + "--" + end
	case start != "":
		return start
	default:
		return ""
	}
}

// columnValue returns the row's value for the first header column mapped
// to the given BibTeX field, or "" when no such column has a value.
func columnValue(row types.Row, headers []string, mapping types.FieldMapping, field string) string {
	for _, h := range headers {
		if mapping[h] == field {
			if v := row.Get(h); v != "" {
				return v
			}
		}
	}
	return ""
}
