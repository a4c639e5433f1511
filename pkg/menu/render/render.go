package render

import (
	"fmt"
	"html/template"

	"github.com/ealfonsov89/menu-maker/pkg/menu/models"
)

// Render renders a component record with the template bound to its variant.
func (s *Set) Render(sheetName string, c models.Component) (models.Fragment, error) {
	name, ok := s.names.ForVariant(c.Variant())
	if !ok {
		return models.Fragment{}, &TemplateError{
			Template: c.Variant().String(),
			Err:      fmt.Errorf("%w for variant", ErrTemplateNotFound),
		}
	}

	html, err := s.Execute(name, c.Context())
	if err != nil {
		return models.Fragment{}, err
	}

	return models.Fragment{
		Sheet:   sheetName,
		Variant: c.Variant(),
		HTML:    html,
	}, nil
}

// Compose renders the menu template with the fragments, in order, under the
// "price_tables" key. Fragment markup is inserted without escaping.
func (s *Set) Compose(fragments []models.Fragment) (*models.Document, error) {
	tables := make([]template.HTML, 0, len(fragments))
	for _, f := range fragments {
		tables = append(tables, template.HTML(f.HTML))
	}

	html, err := s.Execute(s.names.Menu, map[string]any{
		"price_tables": tables,
	})
	if err != nil {
		return nil, err
	}

	return &models.Document{
		HTML:      html,
		Fragments: fragments,
	}, nil
}
