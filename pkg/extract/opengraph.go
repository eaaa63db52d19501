package extract

import (
	"strings"

	"github.com/Sebv03/captura/pkg/page"
	"github.com/Sebv03/captura/pkg/price"
	"github.com/Sebv03/captura/pkg/product"
)

// OpenGraph reads og: meta tags. OG blocks are often site-wide rather
// than product-specific, so the candidate is rejected when the og:url
// does not correspond to the current page or the title or description
// reads like a site banner.
type OpenGraph struct{}

// Name implements Strategy.
func (s *OpenGraph) Name() string { return "open-graph" }

// Extract implements Strategy.
func (s *OpenGraph) Extract(p *page.Page) *product.Product {
	title := p.Meta("og:title")
	if title == "" || page.LooksLikeSiteName(title) {
		return nil
	}

	if ogURL := p.Meta("og:url"); ogURL != "" {
		full := p.ResolveURL(ogURL)
		if full != "" {
			current := p.URL()
			if !strings.HasPrefix(current, stripQuery(full)) && !strings.Contains(full, stripQuery(current)) {
				// Generic homepage OG block, not this product.
				return nil
			}
		}
	}

	desc := p.Meta("og:description")
	if desc != "" && page.LooksLikeSiteName(desc) {
		return nil
	}

	raw := p.Meta("og:price:amount")
	if raw == "" {
		raw = p.Meta("product:price:amount")
	}
	n, havePrice := price.Parse(raw)
	if !havePrice || n <= 0 {
		n, havePrice = price.Scan(p.MainContent())
	}

	rec := newRecord(p, s.Name(), product.ConfidenceMedium)
	setName(rec, title)
	setDescription(rec, desc)
	if havePrice && n > 0 {
		rec.Price = n
	}
	rec.Image = p.ResolveURL(p.Meta("og:image"))
	return rec
}
