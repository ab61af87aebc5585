// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses one sheet of an XLSX workbook into a Table. An empty
// sheet name selects the first sheet. Row semantics match ReadCSV, with
// one difference: excelize drops trailing empty cells, so rows shorter
// than the header are padded with empty cells rather than flagged as
// malformed. Rows longer than the header are still malformed.
func ReadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return &Table{Source: path}, nil
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &Table{Source: path}, nil
	}

	headers := cleanHeaders(rows[0])
	t := &Table{Source: path, Headers: headers}

	for i, record := range rows[1:] {
		line := i + 2 // sheet rows are 1-based; row 1 is the header

		if isBlank(record) {
			continue
		}
		if len(record) > len(headers) {
			t.Malformed = append(t.Malformed, Malformed{Line: line, Cells: len(record)})
			continue
		}
		if len(record) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, record)
			record = padded
		}
		t.Rows = append(t.Rows, rowFromCells(line, headers, record))
	}
	return t, nil
}
