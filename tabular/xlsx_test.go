package tabular

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a small test workbook on disk
func writeWorkbook(t *testing.T, sheetName string, records [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheetName != "Sheet1" {
		if _, err := f.NewSheet(sheetName); err != nil {
			t.Fatalf("Failed to create sheet: %v", err)
		}
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("Failed to compute cell name: %v", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &record); err != nil {
			t.Fatalf("Failed to write row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"name", "country", "population"},
		{"Tokyo", "Japan", "14000000"},
		{"Paris", "France", "2161000"},
	})

	rows, err := ReadXLSX(path, "Sheet1")
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0]["name"] != "Tokyo" || rows[0]["population"] != "14000000" {
		t.Errorf("Unexpected first row: %v", rows[0])
	}
	if rows[1]["country"] != "France" {
		t.Errorf("Unexpected second row: %v", rows[1])
	}
}

func TestReadXLSXDefaultSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"name"},
		{"Tokyo"},
	})

	// Empty sheet name selects the workbook's first sheet
	rows, err := ReadXLSX(path, "")
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}
	if len(rows) != 1 || rows[0]["name"] != "Tokyo" {
		t.Errorf("Unexpected rows: %v", rows)
	}
}

func TestReadXLSXMissingSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{{"name"}})

	if _, err := ReadXLSX(path, "DoesNotExist"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestReadXLSXMissingFile(t *testing.T) {
	if _, err := ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"), ""); err == nil {
		t.Error("Expected error for missing file")
	}
}
