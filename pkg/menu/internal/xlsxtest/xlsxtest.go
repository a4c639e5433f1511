// Package xlsxtest builds workbook fixtures for tests.
package xlsxtest

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is a fixture sheet; each row is written from column A.
type Sheet struct {
	Name string
	Rows [][]any
}

// Write saves sheets, in order, to a workbook in t.TempDir and returns its path.
func Write(t *testing.T, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				t.Fatalf("Failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("Failed to create sheet %q: %v", s.Name, err)
		}
		for r, row := range s.Rows {
			if len(row) == 0 {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			values := row
			if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
				t.Fatalf("Failed to write row %d of %q: %v", r+1, s.Name, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "menu.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

// Open writes sheets and reopens the workbook for reading.
func Open(t *testing.T, sheets ...Sheet) *excelize.File {
	t.Helper()

	f, err := excelize.OpenFile(Write(t, sheets...))
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}
