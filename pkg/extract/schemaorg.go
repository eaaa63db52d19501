package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Sebv03/captura/pkg/page"
	"github.com/Sebv03/captura/pkg/price"
	"github.com/Sebv03/captura/pkg/product"
)

// SchemaOrg extracts from schema.org JSON-LD blocks. Structured data
// is the most reliable signal a page offers, so this runs right after
// the site-specific overrides.
type SchemaOrg struct{}

// Name implements Strategy.
func (s *SchemaOrg) Name() string { return "schema.org" }

// Extract implements Strategy.
func (s *SchemaOrg) Extract(p *page.Page) *product.Product {
	node := findProductNode(p)
	if node == nil {
		return nil
	}
	name := node.str("name")
	if name == "" {
		return nil
	}

	rec := newRecord(p, s.Name(), product.ConfidenceHigh)
	setName(rec, name)
	setDescription(rec, node.str("description"))
	rec.SKU = node.str("sku")
	rec.Brand = node.brand()
	rec.Category = node.str("category")

	if n, ok := node.price(); ok {
		rec.Price = n
	} else if n, ok := price.Scan(p.MainContent()); ok {
		rec.Price = n
	}

	if img := node.image(); img != "" {
		rec.Image = p.ResolveURL(img)
	}
	return rec
}

// jsonLDPrice returns the price of the page's matched Product node,
// if any. Used as a late fallback by the site-specific strategy.
func jsonLDPrice(p *page.Page) (float64, bool) {
	node := findProductNode(p)
	if node == nil {
		return 0, false
	}
	if n, ok := node.price(); ok && price.Plausible(n) {
		return n, true
	}
	return 0, false
}

// hasProductNode reports whether any JSON-LD block on the page
// declares a Product. Used by product-page detection.
func hasProductNode(p *page.Page) bool {
	return findProductNode(p) != nil
}

// schemaNode is a decoded JSON-LD object.
type schemaNode map[string]any

// findProductNode scans all ld+json script blocks for Product nodes.
// With multiple candidates it prefers the one whose URL or identifier
// matches the current page, else the first found. Malformed blocks
// are skipped.
func findProductNode(p *page.Page) schemaNode {
	var products []schemaNode
	p.Doc().Find(`script[type="application/ld+json"]`).Each(func(_ int, el *goquery.Selection) {
		var data any
		if err := json.Unmarshal([]byte(el.Text()), &data); err != nil {
			return
		}
		collectProducts(data, &products)
	})
	if len(products) == 0 {
		return nil
	}

	currentURL := p.URL()
	base := stripQuery(currentURL)
	for _, prod := range products {
		prodURL := prod.str("url")
		if prodURL == "" {
			if offers, ok := prod["offers"].(map[string]any); ok {
				prodURL, _ = offers["url"].(string)
			}
		}
		if prodURL == "" {
			prodURL = prod.str("identifier")
		}
		if prodURL != "" && (strings.Contains(currentURL, prodURL) || strings.Contains(prodURL, base)) {
			return prod
		}
	}
	return products[0]
}

// collectProducts walks a decoded JSON-LD value recursively, gathering
// every object typed Product.
func collectProducts(data any, out *[]schemaNode) {
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			collectProducts(item, out)
		}
	case map[string]any:
		if isProductType(v["@type"]) || isProductType(v["type"]) {
			*out = append(*out, schemaNode(v))
			return
		}
		for _, val := range v {
			switch val.(type) {
			case map[string]any, []any:
				collectProducts(val, out)
			}
		}
	}
}

// isProductType accepts "Product" as a string or inside a type array.
func isProductType(v any) bool {
	switch t := v.(type) {
	case string:
		return t == "Product"
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == "Product" {
				return true
			}
		}
	}
	return false
}

func stripQuery(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		return u[:i]
	}
	return u
}

// str reads a string field, tolerating absence.
func (n schemaNode) str(key string) string {
	s, _ := n[key].(string)
	return strings.TrimSpace(s)
}

// price reads offers.price, offers.lowPrice, or a top-level price.
// Offers may be an object or an array of objects; numbers appear both
// as JSON numbers and as strings in the wild.
func (n schemaNode) price() (float64, bool) {
	offers := n["offers"]
	if arr, ok := offers.([]any); ok && len(arr) > 0 {
		offers = arr[0]
	}
	if m, ok := offers.(map[string]any); ok {
		for _, key := range []string{"price", "lowPrice"} {
			if v, ok := numeric(m[key]); ok && v > 0 {
				return v, true
			}
		}
	}
	if v, ok := numeric(n["price"]); ok && v > 0 {
		return v, true
	}
	return 0, false
}

func numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		return price.Parse(t)
	}
	return 0, false
}

// image reads the image field: a plain URL string, an ImageObject
// with a url, or the first entry of an array of either.
func (n schemaNode) image() string {
	return imageFrom(n["image"])
}

func imageFrom(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		s, _ := t["url"].(string)
		return strings.TrimSpace(s)
	case []any:
		if len(t) > 0 {
			return imageFrom(t[0])
		}
	}
	return ""
}

// brand reads the brand field: a bare string or a Brand object.
func (n schemaNode) brand() string {
	switch t := n["brand"].(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		s, _ := t["name"].(string)
		return strings.TrimSpace(s)
	}
	return ""
}
