package extract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Sebv03/captura/pkg/page"
	"github.com/Sebv03/captura/pkg/price"
	"github.com/Sebv03/captura/pkg/product"
)

// SiteSelectors lists CSS-selector candidates for one host, each
// group in priority order.
type SiteSelectors struct {
	Title []string `yaml:"title"`
	Price []string `yaml:"price"`
	Image []string `yaml:"image"`
}

// SiteMap maps normalized hostnames (no "www.") to their selector
// overrides.
type SiteMap map[string]SiteSelectors

// DefaultSiteMap returns the built-in overrides for known problematic
// Chilean storefronts, where the generic heuristics misfire.
func DefaultSiteMap() SiteMap {
	return SiteMap{
		"lider.cl": {
			Title: []string{`h1[class*="product"], [class*="product-name"]`, `[class*="ProductName"]`, "h1"},
			Price: []string{`[class*="price"]`, `[class*="Price"]`, "[data-price]", `[class*="precio"]`, `span[class*="amount"]`},
			Image: []string{`[class*="product-image"] img`, `[class*="gallery"] img`, `[class*="carousel"] img`, `img[class*="product"]`, "main img", `[class*="pdp"] img`},
		},
		"centralmayorista.cl": {
			Title: []string{"h1", `[class*="product-title"]`, `[class*="product-name"]`, `[class*="titulo"]`},
			Price: []string{`[class*="price"]`, `[class*="precio"]`, `[class*="valor"]`, `[itemprop="price"]`, "[data-price]"},
			Image: []string{`[class*="product"] img`, `[class*="gallery"] img`, `[class*="image"] img`, `img[src*="product"], img[src*="Product"]`},
		},
		"laoferta.cl": {
			Title: []string{"h1", ".product_title", `[class*="product-title"]`, `[class*="product-name"]`},
			Price: []string{".price", `[class*="price"]`, ".amount", `[itemprop="price"]`, "ins .amount", ".woocommerce-Price-amount"},
			Image: []string{".woocommerce-product-gallery img", `[class*="product"] img`, "img.attachment-woocommerce_single"},
		},
		"distribuidoranico.cl": {
			Title: []string{"h1", ".product_title", `[class*="product-title"]`, `[class*="product-name"]`, ".entry-title"},
			Price: []string{".summary .price bdi", ".summary .price .amount", ".price ins bdi", ".price ins .amount", ".price bdi", ".price .woocommerce-Price-amount", ".price .amount", "p.price bdi", "p.price", ".summary .price", `[itemprop="price"]`},
			Image: []string{".woocommerce-product-gallery img", ".product img", `[class*="gallery"] img`, "img.attachment-woocommerce_single"},
		},
	}
}

// LoadSiteMap reads selector overrides from a YAML file and merges
// them over the built-in map. File entries win on host collision.
func LoadSiteMap(path string) (SiteMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site map: %w", err)
	}
	var overrides SiteMap
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse site map: %w", err)
	}
	merged := DefaultSiteMap()
	for host, sel := range overrides {
		merged[host] = sel
	}
	return merged, nil
}

// SiteSpecific applies per-host selector overrides. Only engaged when
// the current host has an entry; highest priority in the chain.
type SiteSpecific struct {
	Sites SiteMap
}

// Name implements Strategy.
func (s *SiteSpecific) Name() string { return "site-specific" }

// Extract implements Strategy.
func (s *SiteSpecific) Extract(p *page.Page) *product.Product {
	cfg, ok := s.Sites[p.Host()]
	if !ok {
		return nil
	}
	main := p.MainContent()

	name := page.FirstMatch(main, cfg.Title, page.Text, true)
	if name == "" || page.LooksLikeSiteName(name) {
		return nil
	}

	n, havePrice := price.Parse(page.FirstMatch(main, cfg.Price, page.Text, false))
	if !havePrice || n <= 0 {
		n, havePrice = price.FromWooCommerce(main)
	}
	if !havePrice {
		n, havePrice = price.FromSummary(main)
	}
	if !havePrice {
		n, havePrice = price.FirstInDOM(main)
	}
	if !havePrice {
		n, havePrice = price.Scan(main)
	}
	if !havePrice || n <= 0 {
		// Narrow once more to the product block before giving up on
		// the page scan.
		block := page.Find(main, ".product, .single-product, [class*='product-detail']").First()
		if block.Length() == 0 {
			block = main
		}
		n, havePrice = price.Scan(block)
	}
	if !havePrice || n <= 0 {
		n, havePrice = jsonLDPrice(p)
	}

	rec := newRecord(p, s.Name(), product.ConfidenceHigh)
	setName(rec, name)
	setDescription(rec, page.FirstMatch(main, []string{`[class*="description"]`, `[class*="descripcion"]`, `[itemprop="description"]`}, descriptionText, false))
	if havePrice && n > 0 {
		rec.Price = n
	}
	rec.Image = firstImage(p, main, cfg.Image)
	return rec
}
