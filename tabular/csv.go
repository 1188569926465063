// Package tabular converts tabular files into row payloads for bulk
// loading. The first record of every source is treated as the header row;
// each later record becomes one sheetson.Row keyed by the header. Cell
// values stay strings: the library passes data through, the backing sheet
// decides how to interpret it.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"sheetson"
)

// ReadCSV decodes CSV data into rows. Short records omit the missing
// fields; cells beyond the header are dropped. Empty input, or input with
// only a header, yields an empty slice.
func ReadCSV(r io.Reader) ([]sheetson.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []sheetson.Row{}, nil
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var rows []sheetson.Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		rows = append(rows, recordToRow(header, record))
	}

	if rows == nil {
		rows = []sheetson.Row{}
	}
	return rows, nil
}

func recordToRow(header, record []string) sheetson.Row {
	row := make(sheetson.Row, len(header))
	for i, field := range header {
		if i >= len(record) {
			break
		}
		row[field] = record[i]
	}
	return row
}
