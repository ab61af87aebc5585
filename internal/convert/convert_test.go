// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pdiddy/csv2bib/internal/tabular"
	"github.com/pdiddy/csv2bib/pkg/types"
)

// row builds a types.Row for a line number and alternating column/value pairs.
func row(line int, pairs ...string) types.Row {
	fields := make(map[string]string)
	for i := 0; i+1 < len(pairs); i += 2 {
		fields[pairs[i]] = pairs[i+1]
	}
	return types.Row{Line: line, Fields: fields}
}

func TestRun(t *testing.T) {
	headers := []string{"Authors", "Title", "Journal", "Year"}

	tests := []struct {
		name        string
		table       *tabular.Table
		cfg         types.ConvertConfig
		wantEntries []types.Entry
		wantSkipped []int
	}{
		{
			name: "single row maps columns to fields",
			table: &tabular.Table{
				Headers: headers,
				Rows: []types.Row{
					row(2, "Authors", "Smith, J; Doe, A", "Title", "On Widgets", "Journal", "J. Widgets", "Year", "2020"),
				},
			},
			wantEntries: []types.Entry{
				{Key: "smith2020", Fields: map[string]string{
					"author":  "Smith, J. and Doe, A.",
					"title":   "On Widgets",
					"journal": "J. Widgets",
					"year":    "2020",
				}},
			},
		},
		{
			name:        "zero data rows produce zero entries",
			table:       &tabular.Table{Headers: headers},
			wantEntries: []types.Entry{},
		},
		{
			name: "empty cells are omitted from the entry",
			table: &tabular.Table{
				Headers: headers,
				Rows: []types.Row{
					row(2, "Authors", "Smith, J", "Title", "", "Journal", "", "Year", "2020"),
				},
			},
			wantEntries: []types.Entry{
				{Key: "smith2020", Fields: map[string]string{
					"author": "Smith, J.",
					"year":   "2020",
				}},
			},
		},
		{
			name: "colliding keys get letter suffixes in row order",
			table: &tabular.Table{
				Headers: headers,
				Rows: []types.Row{
					row(2, "Authors", "Smith, J", "Title", "First", "Year", "2020"),
					row(3, "Authors", "Smith, K", "Title", "Second", "Year", "2020"),
					row(4, "Authors", "Smith, L", "Title", "Third", "Year", "2020"),
					row(5, "Authors", "Smith, M", "Title", "Fourth", "Year", "2020"),
				},
			},
			wantEntries: []types.Entry{
				{Key: "smith2020", Fields: map[string]string{"author": "Smith, J.", "title": "First", "year": "2020"}},
				{Key: "smith2020a", Fields: map[string]string{"author": "Smith, K.", "title": "Second", "year": "2020"}},
				{Key: "smith2020b", Fields: map[string]string{"author": "Smith, L.", "title": "Third", "year": "2020"}},
				{Key: "smith2020c", Fields: map[string]string{"author": "Smith, M.", "title": "Fourth", "year": "2020"}},
			},
		},
		{
			name: "first non-empty column wins for a shared field",
			table: &tabular.Table{
				Headers: []string{"Authors", "Year", "Journal", "Source title"},
				Rows: []types.Row{
					row(2, "Authors", "Doe, A", "Year", "2019", "Journal", "", "Source title", "J. Things"),
					row(3, "Authors", "Doe, B", "Year", "2019", "Journal", "J. Stuff", "Source title", "Ignored"),
				},
			},
			wantEntries: []types.Entry{
				{Key: "doe2019", Fields: map[string]string{"author": "Doe, A.", "year": "2019", "journal": "J. Things"}},
				{Key: "doe2019a", Fields: map[string]string{"author": "Doe, B.", "year": "2019", "journal": "J. Stuff"}},
			},
		},
		{
			name: "page start and end combine when no pages column",
			table: &tabular.Table{
				Headers: []string{"Authors", "Year", "Page start", "Page end"},
				Rows: []types.Row{
					row(2, "Authors", "Doe, A", "Year", "2021", "Page start", "101", "Page end", "120"),
					row(3, "Authors", "Doe, B", "Year", "2021", "Page start", "7", "Page end", ""),
				},
			},
			wantEntries: []types.Entry{
				{Key: "doe2021", Fields: map[string]string{"author": "Doe, A.", "year": "2021", "pages": "101--120"}},
				{Key: "doe2021a", Fields: map[string]string{"author": "Doe, B.", "year": "2021", "pages": "7"}},
			},
		},
		{
			name: "malformed rows skipped in best-effort mode",
			table: &tabular.Table{
				Headers: headers,
				Rows: []types.Row{
					row(2, "Authors", "Smith, J", "Year", "2020"),
					row(5, "Authors", "Doe, A", "Year", "2021"),
				},
				Malformed: []tabular.Malformed{
					{Line: 3, Cells: 2},
					{Line: 4, Cells: 6},
				},
			},
			wantEntries: []types.Entry{
				{Key: "smith2020", Fields: map[string]string{"author": "Smith, J.", "year": "2020"}},
				{Key: "doe2021", Fields: map[string]string{"author": "Doe, A.", "year": "2021"}},
			},
			wantSkipped: []int{3, 4},
		},
		{
			name: "missing author and year fall back in the key",
			table: &tabular.Table{
				Headers: headers,
				Rows: []types.Row{
					row(2, "Title", "Anonymous Note"),
				},
			},
			wantEntries: []types.Entry{
				{Key: "unknownnd", Fields: map[string]string{"title": "Anonymous Note"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, report, err := Run(tt.table, tt.cfg)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if len(entries) != len(tt.wantEntries) {
				t.Fatalf("got %d entries, want %d", len(entries), len(tt.wantEntries))
			}
			for i, want := range tt.wantEntries {
				if entries[i].Key != want.Key {
					t.Errorf("entry %d key = %q, want %q", i, entries[i].Key, want.Key)
				}
				if !reflect.DeepEqual(entries[i].Fields, want.Fields) {
					t.Errorf("entry %d fields = %v, want %v", i, entries[i].Fields, want.Fields)
				}
			}
			if report.Converted != len(tt.wantEntries) {
				t.Errorf("report.Converted = %d, want %d", report.Converted, len(tt.wantEntries))
			}
			if tt.wantSkipped == nil {
				if report.HasSkipped() {
					t.Errorf("report.Skipped = %v, want none", report.Skipped)
				}
			} else if !reflect.DeepEqual(report.SkippedLines(), tt.wantSkipped) {
				t.Errorf("report.SkippedLines() = %v, want %v", report.SkippedLines(), tt.wantSkipped)
			}
		})
	}
}

func TestRunSchemaError(t *testing.T) {
	tests := []struct {
		name        string
		headers     []string
		wantMissing []string
	}{
		{
			name:        "no author column",
			headers:     []string{"Title", "Year"},
			wantMissing: []string{"author"},
		},
		{
			name:        "no year column",
			headers:     []string{"Authors", "Title"},
			wantMissing: []string{"year"},
		},
		{
			name:        "empty header",
			headers:     nil,
			wantMissing: []string{"author", "year"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &tabular.Table{Headers: tt.headers}
			_, _, err := Run(table, types.ConvertConfig{})

			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("Run() error = %v, want *SchemaError", err)
			}
			if !reflect.DeepEqual(schemaErr.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", schemaErr.Missing, tt.wantMissing)
			}
		})
	}
}

func TestRunStrict(t *testing.T) {
	table := &tabular.Table{
		Headers: []string{"Authors", "Title", "Year"},
		Rows: []types.Row{
			row(2, "Authors", "Smith, J", "Year", "2020"),
		},
		Malformed: []tabular.Malformed{{Line: 4, Cells: 2}},
	}

	entries, _, err := Run(table, types.ConvertConfig{Strict: true})

	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("Run() error = %v, want *RowError", err)
	}
	if rowErr.Line != 4 {
		t.Errorf("RowError.Line = %d, want 4", rowErr.Line)
	}
	if rowErr.Want != 3 {
		t.Errorf("RowError.Want = %d, want 3", rowErr.Want)
	}
	if len(entries) != 0 {
		t.Errorf("strict abort returned %d entries, want 0", len(entries))
	}
}

func TestRunCustomDelimiterAndMapping(t *testing.T) {
	table := &tabular.Table{
		Headers: []string{"Who", "When"},
		Rows: []types.Row{
			row(2, "Who", "Curie, M | Joliot, F", "When", "1935"),
		},
	}
	cfg := types.ConvertConfig{
		Mapping:         types.FieldMapping{"Who": "author", "When": "year"},
		AuthorDelimiter: "|",
	}

	entries, _, err := Run(table, cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if got := entries[0].Key; got != "curie1935" {
		t.Errorf("key = %q, want %q", got, "curie1935")
	}
	if got := entries[0].Fields["author"]; got != "Curie, M. and Joliot, F." {
		t.Errorf("author = %q, want %q", got, "Curie, M. and Joliot, F.")
	}
}

// Identical input must produce identical output across runs: collision
// state lives inside one Run call.
func TestRunDeterministic(t *testing.T) {
	table := &tabular.Table{
		Headers: []string{"Authors", "Title", "Year"},
		Rows: []types.Row{
			row(2, "Authors", "Smith, J", "Title", "A", "Year", "2020"),
			row(3, "Authors", "Smith, K", "Title", "B", "Year", "2020"),
		},
	}

	first, _, err := Run(table, types.ConvertConfig{})
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := Run(table, types.ConvertConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs differ:\n%v\n%v", first, second)
	}
}
