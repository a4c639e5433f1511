package models

// Variant is the structural schema a sheet was recognized as.
type Variant int

const (
	// Unclassified sheets match no known header and are skipped.
	Unclassified Variant = iota
	// ProductPriceTable sheets list product/price pairs.
	ProductPriceTable
	// OfferCard sheets carry a single price/description pair.
	OfferCard
)

func (v Variant) String() string {
	switch v {
	case ProductPriceTable:
		return "product_price_table"
	case OfferCard:
		return "offer_card"
	default:
		return "unclassified"
	}
}

// Schema binds a header pattern to the variant it identifies.
type Schema struct {
	// Variant is the variant selected when the header matches.
	Variant Variant
	// Columns are the exact values expected in the first header cells.
	Columns [2]string
}

// Schemas lists the recognized header patterns in priority order.
var Schemas = []Schema{
	{Variant: ProductPriceTable, Columns: [2]string{"product", "price"}},
	{Variant: OfferCard, Columns: [2]string{"price", "description"}},
}
