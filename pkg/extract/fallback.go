package extract

import (
	"strings"

	"github.com/Sebv03/captura/pkg/page"
	"github.com/Sebv03/captura/pkg/price"
	"github.com/Sebv03/captura/pkg/product"
)

var (
	fallbackTitleSelectors = []string{
		"h1", "h2", `[class*="title"]`, `[class*="product-name"]`, `[itemprop="name"]`,
		`[data-testid*="product"]`, `[class*="Product"]`, `[class*="titulo"]`,
	}
	fallbackPriceSelectors = []string{
		`[class*="price"]`, `[class*="Price"]`, `[itemprop="price"]`,
		`[class*="precio"]`, `[class*="valor"]`, "[data-price]",
	}
	fallbackImageSelectors = []string{
		`img[src*="product"], img[src*="Product"], img[class*="product"], img[class*="gallery"], main img`,
	}
	fallbackDescSelectors = []string{
		`[itemprop="description"]`, `[class*="descripcion"]`, `[class*="description"]`,
	}
)

// Fallback is the last strategy in the chain: generic title
// selectors or the document title, price from the whole-page scan.
// Produces a low-confidence record whenever the page yields any
// usable signal; a page with no title, no price and no image is
// left to the URL-slug synthesis.
type Fallback struct{}

// Name implements Strategy.
func (s *Fallback) Name() string { return "fallback" }

// Extract implements Strategy.
func (s *Fallback) Extract(p *page.Page) *product.Product {
	main := p.MainContent()

	// A banner-looking title is kept when the URL has a usable slug:
	// the chain's cross-check replaces it with the slug-derived name
	// and tags the strategy. Without a slug there is nothing to
	// recover from, so fall through to the document title here.
	name := page.FirstMatch(main, fallbackTitleSelectors, page.Text, true)
	if name == "" {
		name = docTitle(p)
	}
	if name != "" && page.LooksLikeSiteName(name) && p.NameFromSlug() == "" {
		if t := docTitle(p); t != "" && !page.LooksLikeSiteName(t) {
			name = t
		} else {
			name = "Producto sin nombre"
		}
	}

	n, havePrice := price.Parse(page.FirstMatch(main, fallbackPriceSelectors, page.Text, false))
	if !havePrice || n <= 0 {
		n, havePrice = price.Scan(main)
	}

	image := firstImage(p, main, fallbackImageSelectors)
	if image == "" {
		image = firstImage(p, p.Doc().Selection, []string{`img[src*="product"], img[src*="Product"]`})
	}

	if name == "" {
		if (!havePrice || n <= 0) && image == "" {
			return nil
		}
		name = "Producto sin nombre"
	}

	rec := newRecord(p, s.Name(), product.ConfidenceLow)
	setName(rec, name)
	setDescription(rec, page.FirstMatch(main, fallbackDescSelectors, descriptionText, false))
	if havePrice && n > 0 {
		rec.Price = n
	}
	rec.Image = image
	return rec
}

// docTitle returns the <title> text up to the first "|" separator,
// which usually splits product name from store branding.
func docTitle(p *page.Page) string {
	title := strings.TrimSpace(p.Doc().Find("title").First().Text())
	if i := strings.IndexByte(title, '|'); i >= 0 {
		title = strings.TrimSpace(title[:i])
	}
	return title
}
