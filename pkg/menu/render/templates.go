// Package render turns component records into HTML fragments and composes
// them into the menu document.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/ealfonsov89/menu-maker/pkg/menu/models"
)

// ErrTemplateNotFound indicates a required template is not in the set.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateError indicates a template is missing, fails to compile or fails
// to execute with its context.
type TemplateError struct {
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %q: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// Names binds each variant, and the top-level document, to a template name.
type Names struct {
	// Table renders ProductPriceTable records.
	Table string `yaml:"table"`
	// OfferCard renders OfferCard records.
	OfferCard string `yaml:"offer_card"`
	// Menu renders the composed document.
	Menu string `yaml:"menu"`
}

// DefaultNames returns the template names shipped in template/.
func DefaultNames() Names {
	return Names{
		Table:     "price_table_template.html",
		OfferCard: "offer_card_template.html",
		Menu:      "menu_template.html",
	}
}

// ForVariant returns the template bound to v.
func (n Names) ForVariant(v models.Variant) (string, bool) {
	switch v {
	case models.ProductPriceTable:
		return n.Table, true
	case models.OfferCard:
		return n.OfferCard, true
	}
	return "", false
}

// Set is a read-only collection of parsed templates.
type Set struct {
	tmpl  *template.Template
	names Names
}

// Load parses every file matching glob. Templates are named after their
// file base name. Executing a template with a context that lacks a key it
// references fails.
func Load(glob string, names Names) (*Set, error) {
	tmpl, err := template.New("").Option("missingkey=error").ParseGlob(glob)
	if err != nil {
		return nil, &TemplateError{Template: glob, Err: err}
	}

	for _, name := range []string{names.Table, names.OfferCard, names.Menu} {
		if tmpl.Lookup(name) == nil {
			return nil, &TemplateError{Template: name, Err: ErrTemplateNotFound}
		}
	}

	return &Set{tmpl: tmpl, names: names}, nil
}

// Names returns the template names the set was loaded with.
func (s *Set) Names() Names {
	return s.names
}

// Execute renders the named template with data.
func (s *Set) Execute(name string, data any) (string, error) {
	if s.tmpl.Lookup(name) == nil {
		return "", &TemplateError{Template: name, Err: ErrTemplateNotFound}
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", &TemplateError{Template: name, Err: err}
	}
	return buf.String(), nil
}
