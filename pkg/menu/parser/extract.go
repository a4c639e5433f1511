package parser

import (
	"fmt"
	"strings"

	"github.com/ealfonsov89/menu-maker/pkg/menu/logging"
	"github.com/ealfonsov89/menu-maker/pkg/menu/models"
	"github.com/xuri/excelize/v2"
)

// Extractor turns classified sheets into component records.
type Extractor struct {
	Prices Prices
	Logger logging.Logger
}

// NewExtractor creates an Extractor. A nil logger discards records.
func NewExtractor(prices Prices, logger logging.Logger) *Extractor {
	return &Extractor{Prices: prices, Logger: logging.OrNop(logger)}
}

// Extract builds the record for a sheet classified as variant.
func (x *Extractor) Extract(sheet *models.Sheet, variant models.Variant) (models.Component, error) {
	switch variant {
	case models.ProductPriceTable:
		return x.PriceTable(sheet)
	case models.OfferCard:
		return x.OfferCard(sheet), nil
	case models.Unclassified:
		return nil, fmt.Errorf("sheet %q is unclassified", sheet.Name)
	}
	return nil, fmt.Errorf("unknown variant %d for sheet %q", variant, sheet.Name)
}

// PriceTable decodes every data row as a name/price pair. A row without a
// name fails the whole table with a *RowDecodeError. Prices that are blank
// or not numeric become zero.
func (x *Extractor) PriceTable(sheet *models.Sheet) (*models.PriceTable, error) {
	rows := sheet.DataRows()
	table := &models.PriceTable{
		Title: sheet.Name,
		Items: make([]models.LineItem, 0, len(rows)),
	}

	for i, row := range rows {
		rowNum := sheet.SheetRow(i + 1)
		name, rawPrice, err := decodePair(sheet, rowNum, row)
		if err != nil {
			return nil, err
		}

		price, err := x.Prices.Normalize(rawPrice, FallbackZero)
		if err != nil {
			x.Logger.Log(logging.LevelWarn, "price is not numeric, using zero",
				"sheet", sheet.Name, "row", rowNum, "value", rawPrice)
		}
		table.Items = append(table.Items, models.LineItem{Name: name, Price: price})
	}

	return table, nil
}

// OfferCard takes the first non-blank data row as price and description.
// A sheet without such a row yields a card with empty price and description.
func (x *Extractor) OfferCard(sheet *models.Sheet) *models.OfferCardRecord {
	card := &models.OfferCardRecord{Name: sheet.Name}

	row := firstNonBlankRow(sheet.DataRows())
	if row == nil {
		x.Logger.Log(logging.LevelWarn, "no data row found", "sheet", sheet.Name)
		return card
	}

	rawPrice := cellAt(row, 0).String()
	price, err := x.Prices.Normalize(rawPrice, FallbackRaw)
	if err != nil && strings.TrimSpace(rawPrice) != "" {
		x.Logger.Log(logging.LevelWarn, "price is not numeric, keeping text",
			"sheet", sheet.Name, "value", rawPrice)
	}
	card.Price = price
	card.Description = cellAt(row, 1).String()
	return card
}

// decodePair reads the name and price columns of a table row. rowNum is the
// worksheet row number. A blank price is returned as "".
func decodePair(sheet *models.Sheet, rowNum int, row []models.Cell) (name, price string, err error) {
	fail := func(col int, reason error) error {
		cellName, _ := excelize.CoordinatesToCellName(sheet.SheetCol(col), rowNum)
		return &RowDecodeError{SheetName: sheet.Name, Row: rowNum, Cell: cellName, Err: reason}
	}

	for col := 2; col < len(row); col++ {
		if row[col].Kind != models.CellEmpty {
			return "", "", fail(col, ErrExtraColumn)
		}
	}

	nameCell, priceCell := cellAt(row, 0), cellAt(row, 1)
	switch {
	case nameCell.Kind == models.CellEmpty:
		return "", "", fail(0, ErrMissingValue)
	case nameCell.Kind == models.CellError:
		return "", "", fail(0, fmt.Errorf("%w: %s", ErrCellError, nameCell.Value))
	case priceCell.Kind == models.CellError:
		return "", "", fail(1, fmt.Errorf("%w: %s", ErrCellError, priceCell.Value))
	}
	return nameCell.String(), priceCell.String(), nil
}
