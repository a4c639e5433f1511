package models

// Fragment is the rendered markup of one classified sheet.
type Fragment struct {
	// Sheet is the name of the sheet the fragment was built from.
	Sheet string `json:"sheet"`
	// Variant is the variant the sheet was classified as.
	Variant Variant `json:"variant"`
	// HTML is the rendered markup.
	HTML string `json:"html"`
}

// Document is the composed menu.
type Document struct {
	// HTML is the rendered top-level document.
	HTML string `json:"html"`
	// Fragments are the composed fragments in sheet order.
	Fragments []Fragment `json:"fragments"`
}
