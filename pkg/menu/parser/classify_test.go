package parser

import (
	"errors"
	"testing"

	"github.com/ealfonsov89/menu-maker/pkg/menu/models"
)

func header(values ...string) []models.Cell {
	cells := make([]models.Cell, len(values))
	for i, v := range values {
		cells[i] = models.Text(v)
	}
	return cells
}

func TestClassify(t *testing.T) {
	tests := []struct {
		header   []models.Cell
		expected models.Variant
	}{
		{header("product", "price"), models.ProductPriceTable},
		{header("product", "price", "notes"), models.ProductPriceTable},
		{header("price", "description"), models.OfferCard},
		{header("price", "description", ""), models.OfferCard},
		{header("Product", "price"), models.Unclassified},
		{header("product ", "price"), models.Unclassified},
		{header("price", "product"), models.Unclassified},
		{header("", ""), models.Unclassified},
		{header("product", ""), models.Unclassified},
	}

	for _, tt := range tests {
		variant, err := Classify("Hoja", tt.header)
		if err != nil {
			t.Errorf("Classify(%v) unexpected error: %v", tt.header, err)
			continue
		}
		if variant != tt.expected {
			t.Errorf("Classify(%v) = %s, expected %s", tt.header, variant, tt.expected)
		}
	}
}

func TestClassifyMissingHeaders(t *testing.T) {
	for _, h := range [][]models.Cell{nil, header("product")} {
		_, err := Classify("Hoja", h)
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("Classify(%v) error = %v, expected *SchemaError", h, err)
		}
		if schemaErr.SheetName != "Hoja" || schemaErr.Columns != len(h) {
			t.Errorf("Unexpected SchemaError fields: %+v", schemaErr)
		}
	}
}

func TestClassifyNumericHeader(t *testing.T) {
	h := []models.Cell{models.Number("1"), models.Number("2")}
	variant, err := Classify("Hoja", h)
	if err != nil || variant != models.Unclassified {
		t.Errorf("Classify numeric header = %s, %v; expected unclassified", variant, err)
	}
}
