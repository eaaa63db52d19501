package extract

import (
	"regexp"

	"github.com/Sebv03/captura/pkg/page"
)

// productURLPatterns match the path shapes e-commerce sites use for
// product detail pages.
var productURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)/product/`),
	regexp.MustCompile(`(?i)/p/`),
	regexp.MustCompile(`(?i)/item/`),
	regexp.MustCompile(`(?i)/pd/`),
	regexp.MustCompile(`(?i)-p-\d+`),
	regexp.MustCompile(`(?i)/ip/`),
	regexp.MustCompile(`(?i)/catalogo/product/`),
	regexp.MustCompile(`(?i)/producto/`),
	regexp.MustCompile(`(?i)/prod/`),
}

var pricedTextPattern = regexp.MustCompile(`\$\s*[\d.,]+`)

// IsProductPage reports whether the page plausibly shows a single
// product: a product-shaped URL, a JSON-LD Product node, or an h1
// together with a price signal.
func IsProductPage(p *page.Page) bool {
	u := p.URL()
	for _, re := range productURLPatterns {
		if re.MatchString(u) {
			return true
		}
	}
	if hasProductNode(p) {
		return true
	}
	body := p.Body()
	if page.Find(body, "h1").Length() == 0 {
		return false
	}
	if page.Find(body, `[class*="price"], [itemprop="price"]`).Length() > 0 {
		return true
	}
	return pricedTextPattern.MatchString(body.Text())
}
