package extract

import (
	"github.com/Sebv03/captura/pkg/page"
	"github.com/Sebv03/captura/pkg/price"
	"github.com/Sebv03/captura/pkg/product"
)

// Generic class and attribute patterns shared by many e-commerce
// layouts, ordered from most to least specific.
var (
	commonTitleSelectors = []string{
		`h1[class*="product"]`, `[class*="product-name"]`, `[class*="product-title"]`,
		`[class*="productName"]`, `[class*="ProductName"]`,
		`[itemprop="name"]`, `[data-testid*="product"] h1`,
		`[class*="pdp"] h1`, `[class*="detail"] h1`,
		"h1", `h2[class*="product"]`, `[class*="titulo"]`,
	}
	commonPriceSelectors = []string{
		`[class*="price"] [class*="current"]`, `[class*="price-current"]`, `[class*="price-now"]`,
		`[class*="price-sale"]`, `[class*="precio"]`, `[class*="Precio"]`,
		`[itemprop="price"]`, `[data-testid*="price"]`, "[data-price]", "[data-precio]",
		`[class*="price"]`, `[class*="Price"]`, `[class*="value"]`,
		`span[class*="amount"]`, `[class*="valor"]`, `[class*="Valor"]`,
		".woocommerce-Price-amount", ".price .amount", "ins .amount",
	}
	commonImageSelectors = []string{
		`[class*="product-image"] img`, `[class*="main-image"] img`, `[itemprop="image"]`,
		`img[class*="product"]`, `[class*="gallery"] img`, `img[class*="Product"]`,
		`[class*="carousel"] img`, `[class*="pdp"] img`, "main img[src]",
	}
	commonDescSelectors = []string{
		`[class*="product-description"]`, `[class*="productDescription"]`,
		`[itemprop="description"]`, `[class*="descripcion"]`,
		`[class*="description"]`, `[class*="detail"] p`,
	}
)

// CommonSelectors tries the generic selector heuristics. A candidate
// is accepted only with a plausible name plus at least a price or an
// image; a bare title is too weak a signal on its own.
type CommonSelectors struct{}

// Name implements Strategy.
func (s *CommonSelectors) Name() string { return "selectors" }

// Extract implements Strategy.
func (s *CommonSelectors) Extract(p *page.Page) *product.Product {
	main := p.MainContent()

	name := page.FirstMatch(main, commonTitleSelectors, page.Text, true)
	if name == "" || page.LooksLikeSiteName(name) {
		return nil
	}

	n, havePrice := price.Parse(page.FirstMatch(main, commonPriceSelectors, page.Text, false))
	if !havePrice || n <= 0 {
		n, havePrice = price.Scan(main)
	}

	image := firstImage(p, main, commonImageSelectors)
	if (!havePrice || n <= 0) && image == "" {
		return nil
	}

	rec := newRecord(p, s.Name(), product.ConfidenceMedium)
	setName(rec, name)
	setDescription(rec, page.FirstMatch(main, commonDescSelectors, descriptionText, false))
	if havePrice && n > 0 {
		rec.Price = n
	}
	rec.Image = image
	return rec
}
