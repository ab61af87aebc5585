// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabular

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// CSVOptions configures the CSV reader.
type CSVOptions struct {
	// Delimiter is the cell separator. Zero means comma.
	Delimiter rune
}

// ReadCSV parses a CSV file with a header row into a Table. Data rows whose
// cell count disagrees with the header are recorded in Table.Malformed with
// their 1-based line numbers; well-formed rows land in Table.Rows with cells
// trimmed. Rows that are entirely blank are dropped.
func ReadCSV(path string, opts CSVOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	t, err := readCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t.Source = path
	return t, nil
}

func readCSV(r io.Reader, opts CSVOptions) (*Table, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	// Cell-count mismatches are the converter's business, not a parse
	// failure: read every record and compare lengths here.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	headers := cleanHeaders(header)

	t := &Table{Headers: headers}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		if isBlank(record) {
			continue
		}
		if len(record) != len(headers) {
			t.Malformed = append(t.Malformed, Malformed{Line: line, Cells: len(record)})
			continue
		}
		t.Rows = append(t.Rows, rowFromCells(line, headers, record))
	}
	return t, nil
}
