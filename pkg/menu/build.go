package menu

import (
	"github.com/ealfonsov89/menu-maker/pkg/menu/logging"
	"github.com/ealfonsov89/menu-maker/pkg/menu/models"
	"github.com/ealfonsov89/menu-maker/pkg/menu/parser"
	"github.com/xuri/excelize/v2"
)

// Build reads the workbook at path and composes the menu document.
// Sheets are visited in workbook order; each classified sheet contributes
// one fragment and unclassified sheets are skipped. Any other failure
// aborts the build.
func Build(path string, opts Options) (*models.Document, error) {
	log := logging.OrNop(opts.Logger)

	set, err := opts.templates()
	if err != nil {
		return nil, err
	}

	log.Log(logging.LevelInfo, "opening workbook", "path", path)
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &SourceAccessError{Path: path, Err: err}
	}
	defer f.Close()

	prices := parser.DefaultPrices()
	if opts.Currency != "" {
		prices.Symbol = opts.Currency
	}
	extractor := parser.NewExtractor(prices, log)

	var fragments []models.Fragment
	for _, sheetName := range f.GetSheetList() {
		sheet, err := parser.ReadSheet(f, sheetName)
		if err != nil {
			return nil, &SourceAccessError{Path: path, SheetName: sheetName, Err: err}
		}

		variant, err := parser.Classify(sheetName, sheet.Header())
		if err != nil {
			return nil, err
		}
		if variant == models.Unclassified {
			log.Log(logging.LevelDebug, "skipping unclassified sheet", "sheet", sheetName)
			continue
		}

		log.Log(logging.LevelInfo, "building component", "sheet", sheetName, "variant", variant.String())
		component, err := extractor.Extract(sheet, variant)
		if err != nil {
			return nil, err
		}

		fragment, err := set.Render(sheetName, component)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fragment)
	}

	doc, err := set.Compose(fragments)
	if err != nil {
		return nil, err
	}
	log.Log(logging.LevelInfo, "menu composed", "fragments", len(fragments))
	return doc, nil
}
