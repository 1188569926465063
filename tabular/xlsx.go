package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sheetson"
)

// ReadXLSX decodes one worksheet of an Excel workbook into rows, using the
// same header convention as ReadCSV. An empty sheetName selects the
// workbook's first sheet.
func ReadXLSX(path, sheetName string) ([]sheetson.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}

	records, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	if len(records) == 0 {
		return []sheetson.Row{}, nil
	}

	header := records[0]
	rows := make([]sheetson.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, recordToRow(header, record))
	}

	return rows, nil
}
