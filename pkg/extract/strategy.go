// Package extract implements the universal product extractor: a fixed
// ordered chain of independent strategies, each trying to produce a
// complete product record from the current page. The first strategy
// that returns a usable, name-bearing result wins.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Sebv03/captura/pkg/page"
	"github.com/Sebv03/captura/pkg/product"
)

// Strategy is one self-contained extraction attempt. Extract returns
// nil when the strategy cannot produce a candidate; it never errors
// and never mutates the page.
type Strategy interface {
	Name() string
	Extract(p *page.Page) *product.Product
}

// newRecord builds a record with the page-derived fields filled in
// and length caps applied.
func newRecord(p *page.Page, strategy string, confidence product.Confidence) *product.Product {
	return &product.Product{
		SourceURL:  p.URL(),
		SiteHost:   p.Host(),
		Strategy:   strategy,
		Confidence: confidence,
	}
}

// setName applies the name length cap.
func setName(rec *product.Product, name string) {
	rec.Name = product.Truncate(strings.TrimSpace(name), product.MaxNameLen)
}

// setDescription applies the description length cap.
func setDescription(rec *product.Product, desc string) {
	rec.Description = product.Truncate(strings.TrimSpace(desc), product.MaxDescriptionLen)
}

// descriptionText is a FirstMatch extractor for description blocks.
func descriptionText(el *goquery.Selection) string {
	return product.Truncate(strings.TrimSpace(el.Text()), product.MaxDescriptionLen)
}

// firstImage returns the resolved URL of the first element matching
// any selector that carries a usable image source.
func firstImage(p *page.Page, root *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		result := ""
		page.Find(root, sel).EachWithBreak(func(_ int, el *goquery.Selection) bool {
			if !page.HasImageSource(el) {
				return true
			}
			if u := p.ResolveImage(el); u != "" {
				result = u
				return false
			}
			return true
		})
		if result != "" {
			return result
		}
	}
	return ""
}
