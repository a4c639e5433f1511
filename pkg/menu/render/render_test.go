package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/ealfonsov89/menu-maker/pkg/menu/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shippedTemplates is the template directory at the repository root.
const shippedTemplates = "../../../template/*.html"

func writeTemplates(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	return filepath.Join(dir, "*.html")
}

func minimalTemplates() map[string]string {
	return map[string]string{
		"price_table_template.html": `<table data-type="{{.type}}">{{range .items}}<tr><td>{{.name}}</td><td>{{.price}}</td></tr>{{end}}</table>`,
		"offer_card_template.html":  `<div class="card">{{.name}}|{{.price}}|{{.description}}</div>`,
		"menu_template.html":        `<body>{{range .price_tables}}{{.}}{{else}}empty{{end}}</body>`,
	}
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderPriceTable(t *testing.T) {
	set, err := Load(shippedTemplates, DefaultNames())
	require.NoError(t, err)

	table := &models.PriceTable{
		Title: "Bebidas",
		Items: []models.LineItem{
			{Name: "Café", Price: "2.50€"},
			{Name: "Té", Price: "2.00€"},
		},
	}
	frag, err := set.Render("Bebidas", table)
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", frag.Sheet)
	assert.Equal(t, models.ProductPriceTable, frag.Variant)

	doc := parse(t, frag.HTML)
	assert.Equal(t, "Bebidas", doc.Find(".price-table__title").Text())
	var names, prices []string
	doc.Find(".price-table__item").Each(func(i int, s *goquery.Selection) {
		names = append(names, s.Find(".price-table__name").Text())
		prices = append(prices, s.Find(".price-table__price").Text())
	})
	assert.Equal(t, []string{"Café", "Té"}, names)
	assert.Equal(t, []string{"2.50€", "2.00€"}, prices)
}

func TestRenderOfferCard(t *testing.T) {
	set, err := Load(shippedTemplates, DefaultNames())
	require.NoError(t, err)

	card := &models.OfferCardRecord{Name: "Especial", Price: "9.90€", Description: "Menú del día"}
	frag, err := set.Render("Especial", card)
	require.NoError(t, err)

	doc := parse(t, frag.HTML)
	assert.Equal(t, "Especial", doc.Find(".offer-card__name").Text())
	assert.Equal(t, "9.90€", doc.Find(".offer-card__price").Text())
	assert.Equal(t, "Menú del día", doc.Find(".offer-card__description").Text())
}

func TestRenderEscapesText(t *testing.T) {
	set, err := Load(writeTemplates(t, minimalTemplates()), DefaultNames())
	require.NoError(t, err)

	frag, err := set.Render("X", &models.OfferCardRecord{Name: "<b>X</b>", Price: "1", Description: "a & b"})
	require.NoError(t, err)
	assert.Contains(t, frag.HTML, "&lt;b&gt;X&lt;/b&gt;")
	assert.Contains(t, frag.HTML, "a &amp; b")
}

func TestComposeKeepsOrder(t *testing.T) {
	set, err := Load(shippedTemplates, DefaultNames())
	require.NoError(t, err)

	a, err := set.Render("A", &models.PriceTable{Title: "A", Items: []models.LineItem{{Name: "x", Price: "1.00€"}}})
	require.NoError(t, err)
	c, err := set.Render("C", &models.OfferCardRecord{Name: "C", Price: "2.00€", Description: "d"})
	require.NoError(t, err)

	menu, err := set.Compose([]models.Fragment{a, c})
	require.NoError(t, err)
	require.Len(t, menu.Fragments, 2)

	doc := parse(t, menu.HTML)
	blocks := doc.Find(".menu").Children()
	require.Equal(t, 2, blocks.Length())
	assert.True(t, blocks.Eq(0).HasClass("price-table"))
	assert.True(t, blocks.Eq(1).HasClass("offer-card"))
	assert.Equal(t, 0, doc.Find(".menu__empty").Length())
}

func TestComposeEmpty(t *testing.T) {
	set, err := Load(writeTemplates(t, minimalTemplates()), DefaultNames())
	require.NoError(t, err)

	menu, err := set.Compose(nil)
	require.NoError(t, err)
	assert.Equal(t, "<body>empty</body>", menu.HTML)
	assert.Empty(t, menu.Fragments)
}

func TestComposeDoesNotEscapeFragments(t *testing.T) {
	set, err := Load(writeTemplates(t, minimalTemplates()), DefaultNames())
	require.NoError(t, err)

	menu, err := set.Compose([]models.Fragment{{HTML: "<p>uno</p>"}, {HTML: "<p>dos</p>"}})
	require.NoError(t, err)
	assert.Equal(t, "<body><p>uno</p><p>dos</p></body>", menu.HTML)
}

func TestLoadErrors(t *testing.T) {
	t.Run("no files", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "*.html"), DefaultNames())
		var tmplErr *TemplateError
		assert.ErrorAs(t, err, &tmplErr)
	})

	t.Run("missing named template", func(t *testing.T) {
		files := minimalTemplates()
		delete(files, "offer_card_template.html")
		_, err := Load(writeTemplates(t, files), DefaultNames())
		var tmplErr *TemplateError
		require.ErrorAs(t, err, &tmplErr)
		assert.Equal(t, "offer_card_template.html", tmplErr.Template)
		assert.True(t, errors.Is(err, ErrTemplateNotFound))
	})

	t.Run("does not compile", func(t *testing.T) {
		files := minimalTemplates()
		files["menu_template.html"] = `{{range .price_tables}}`
		_, err := Load(writeTemplates(t, files), DefaultNames())
		var tmplErr *TemplateError
		assert.ErrorAs(t, err, &tmplErr)
	})
}

func TestRenderMissingKey(t *testing.T) {
	files := minimalTemplates()
	files["offer_card_template.html"] = `<div>{{.name}} {{.subtitle}}</div>`
	set, err := Load(writeTemplates(t, files), DefaultNames())
	require.NoError(t, err)

	_, err = set.Render("Especial", &models.OfferCardRecord{Name: "Especial"})
	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
	assert.Equal(t, "offer_card_template.html", tmplErr.Template)
}

func TestCustomNames(t *testing.T) {
	names := Names{Table: "t.html", OfferCard: "o.html", Menu: "m.html"}
	set, err := Load(writeTemplates(t, map[string]string{
		"t.html": `T:{{.type}}`,
		"o.html": `O:{{.name}}`,
		"m.html": `{{range .price_tables}}[{{.}}]{{end}}`,
	}), names)
	require.NoError(t, err)
	assert.Equal(t, names, set.Names())

	frag, err := set.Render("Vinos", &models.PriceTable{Title: "Vinos"})
	require.NoError(t, err)
	menu, err := set.Compose([]models.Fragment{frag})
	require.NoError(t, err)
	assert.Equal(t, "[T:Vinos]", menu.HTML)
}
