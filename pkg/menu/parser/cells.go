package parser

import (
	"github.com/ealfonsov89/menu-maker/pkg/menu/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads the used range of a sheet into a grid of typed cells.
// Leading empty rows and columns are dropped, so the header is the first
// used row whatever cell the table starts at. Values are read raw, so number
// formats are not applied to numeric cells. Every row is padded to the
// width of the used range.
func ReadSheet(f *excelize.File, sheetName string) (*models.Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	top, left, right := usedRange(rows)
	sheet := &models.Sheet{
		Name:      sheetName,
		Rows:      make([][]models.Cell, 0, len(rows)-top),
		Width:     right - left,
		RowOffset: top,
		ColOffset: left,
	}
	for rowIdx := top; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cells := make([]models.Cell, sheet.Width)
		for colIdx := left; colIdx < len(row); colIdx++ {
			raw := row[colIdx]
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cell, err := readCell(f, sheetName, cellName, raw)
			if err != nil {
				return nil, err
			}
			cells[colIdx-left] = cell
		}
		sheet.Rows = append(sheet.Rows, cells)
	}

	return sheet, nil
}

// usedRange returns the first used row, the first used column and one past
// the last used column of rows. An empty grid yields a zero-width range.
func usedRange(rows [][]string) (top, left, right int) {
	top, left = -1, -1
	for r, row := range rows {
		for c, raw := range row {
			if raw == "" {
				continue
			}
			if top < 0 {
				top = r
			}
			if left < 0 || c < left {
				left = c
			}
			if c+1 > right {
				right = c + 1
			}
		}
	}
	if top < 0 {
		return len(rows), 0, 0
	}
	return top, left, right
}

// readCell tags a raw value with its kind. Bool and date cells are
// replaced by their formatted text.
func readCell(f *excelize.File, sheetName, cellName, raw string) (models.Cell, error) {
	typ, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.Cell{}, err
	}

	switch typ {
	case excelize.CellTypeNumber:
		return models.Number(raw), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.Cell{Kind: models.CellText, Value: raw}, nil
	case excelize.CellTypeError:
		return models.Cell{Kind: models.CellError, Value: raw}, nil
	case excelize.CellTypeBool, excelize.CellTypeDate:
		kind := models.CellBool
		if typ == excelize.CellTypeDate {
			kind = models.CellDate
		}
		formatted, err := f.GetCellValue(sheetName, cellName)
		if err != nil {
			return models.Cell{}, err
		}
		return models.Cell{Kind: kind, Value: formatted}, nil
	}

	// Cells without an explicit type attribute are numbers unless the value says otherwise.
	if _, err := parseDecimal(raw); err == nil {
		return models.Number(raw), nil
	}
	return models.Cell{Kind: models.CellText, Value: raw}, nil
}

// firstNonBlankRow returns the first row holding a non-blank cell.
func firstNonBlankRow(rows [][]models.Cell) []models.Cell {
	for _, row := range rows {
		for _, cell := range row {
			if !cell.IsBlank() {
				return row
			}
		}
	}
	return nil
}

// cellAt returns the cell at col, or an empty cell past the end of row.
func cellAt(row []models.Cell, col int) models.Cell {
	if col < len(row) {
		return row[col]
	}
	return models.Cell{}
}
