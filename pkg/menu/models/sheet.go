package models

// Sheet is the used range of one named worksheet. Row 0 is the header row.
type Sheet struct {
	// Name is the sheet name as shown on its tab.
	Name string `json:"name"`
	// Rows holds every row of the used range, each padded to Width.
	Rows [][]Cell `json:"rows"`
	// Width is the number of columns in the used range.
	Width int `json:"width"`
	// RowOffset and ColOffset locate Rows[0][0] in the worksheet, zero
	// based, so a range starting at B2 has offsets 1 and 1.
	RowOffset int `json:"row_offset"`
	ColOffset int `json:"col_offset"`
}

// Header returns the first row of the sheet, or nil for an empty sheet.
func (s *Sheet) Header() []Cell {
	if len(s.Rows) == 0 {
		return nil
	}
	return s.Rows[0]
}

// DataRows returns every row after the header.
func (s *Sheet) DataRows() [][]Cell {
	if len(s.Rows) < 2 {
		return nil
	}
	return s.Rows[1:]
}

// SheetRow returns the 1-based worksheet row number of Rows[i].
func (s *Sheet) SheetRow(i int) int {
	return s.RowOffset + i + 1
}

// SheetCol returns the 1-based worksheet column number of column col.
func (s *Sheet) SheetCol(col int) int {
	return s.ColOffset + col + 1
}
