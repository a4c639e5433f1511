// Package menu builds an HTML menu from a workbook of price tables and
// offer cards.
package menu

import (
	"github.com/ealfonsov89/menu-maker/pkg/menu/logging"
	"github.com/ealfonsov89/menu-maker/pkg/menu/parser"
	"github.com/ealfonsov89/menu-maker/pkg/menu/render"
)

// Options configures a build.
type Options struct {
	// Templates renders fragments and the document. If nil, the set is
	// loaded from TemplateGlob with TemplateNames.
	Templates *render.Set
	// TemplateGlob matches the template files.
	TemplateGlob string
	// TemplateNames binds variants to templates.
	TemplateNames render.Names
	// Currency is appended to formatted prices.
	Currency string
	// Logger receives pipeline records. If nil, records are discarded.
	Logger logging.Logger
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	return Options{
		TemplateGlob:  "template/*.html",
		TemplateNames: render.DefaultNames(),
		Currency:      parser.DefaultCurrency,
	}
}

// templates returns the configured template set, loading it if needed.
func (o Options) templates() (*render.Set, error) {
	if o.Templates != nil {
		return o.Templates, nil
	}
	names := o.TemplateNames
	if names == (render.Names{}) {
		names = render.DefaultNames()
	}
	return render.Load(o.TemplateGlob, names)
}
