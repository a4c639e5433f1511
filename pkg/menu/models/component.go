package models

// Component is the record extracted from a classified sheet.
// Context returns the key/value map handed to the variant's template.
type Component interface {
	Variant() Variant
	Context() map[string]any
}

// LineItem is one row of a price table.
type LineItem struct {
	// Name is the product name.
	Name string `json:"name"`
	// Price is the formatted price, e.g. "2.50€".
	Price string `json:"price"`
}

// Context returns the template view of the item.
func (li LineItem) Context() map[string]any {
	return map[string]any{
		"name":  li.Name,
		"price": li.Price,
	}
}

// PriceTable is the record of a ProductPriceTable sheet.
type PriceTable struct {
	// Title is the sheet name, rendered as the table type.
	Title string `json:"type"`
	// Items are the table rows in sheet order.
	Items []LineItem `json:"items"`
}

// Variant implements Component.
func (t *PriceTable) Variant() Variant { return ProductPriceTable }

// Context implements Component.
func (t *PriceTable) Context() map[string]any {
	items := make([]map[string]any, 0, len(t.Items))
	for _, item := range t.Items {
		items = append(items, item.Context())
	}
	return map[string]any{
		"type":  t.Title,
		"items": items,
	}
}

// OfferCardRecord is the record of an OfferCard sheet.
type OfferCardRecord struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Price is the formatted price or the raw cell text.
	Price string `json:"price"`
	// Description is the raw description text.
	Description string `json:"description"`
}

// Variant implements Component.
func (c *OfferCardRecord) Variant() Variant { return OfferCard }

// Context implements Component.
func (c *OfferCardRecord) Context() map[string]any {
	return map[string]any{
		"name":        c.Name,
		"price":       c.Price,
		"description": c.Description,
	}
}
