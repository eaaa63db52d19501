package extract

import (
	"github.com/Sebv03/captura/pkg/page"
	"github.com/Sebv03/captura/pkg/price"
	"github.com/Sebv03/captura/pkg/product"
)

// Microdata reads itemscope/itemprop markup, the inline counterpart
// of JSON-LD.
type Microdata struct{}

// Name implements Strategy.
func (s *Microdata) Name() string { return "microdata" }

// Extract implements Strategy.
func (s *Microdata) Extract(p *page.Page) *product.Product {
	scope := page.Find(p.Doc().Selection, `[itemscope][itemtype*="Product"]`).First()
	if scope.Length() == 0 {
		return nil
	}
	name := page.Itemprop(scope, "name")
	if name == "" {
		return nil
	}

	n, havePrice := price.Parse(page.Itemprop(scope, "price"))
	if !havePrice || n <= 0 {
		n, havePrice = price.Scan(p.MainContent())
	}

	image := ""
	if imgEl := page.Find(scope, `[itemprop="image"]`).First(); imgEl.Length() > 0 {
		image = p.ResolveImage(imgEl)
	}
	if image == "" {
		image = p.ResolveURL(page.Itemprop(scope, "image"))
	}

	rec := newRecord(p, s.Name(), product.ConfidenceMedium)
	setName(rec, name)
	setDescription(rec, page.Itemprop(scope, "description"))
	if havePrice && n > 0 {
		rec.Price = n
	}
	rec.Image = image
	rec.SKU = page.Itemprop(scope, "sku")
	rec.Brand = page.Itemprop(scope, "brand")
	return rec
}
