package parser

import "github.com/ealfonsov89/menu-maker/pkg/menu/models"

// Classify returns the variant identified by the first two header cells.
// Comparison is exact: no trimming and no case folding. A header with fewer
// than two columns is a *SchemaError; a header matching no schema is
// Unclassified.
func Classify(sheetName string, header []models.Cell) (models.Variant, error) {
	if len(header) < 2 {
		return models.Unclassified, &SchemaError{SheetName: sheetName, Columns: len(header)}
	}
	for _, schema := range models.Schemas {
		if header[0].String() == schema.Columns[0] && header[1].String() == schema.Columns[1] {
			return schema.Variant, nil
		}
	}
	return models.Unclassified, nil
}
