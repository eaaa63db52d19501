// Package page provides a read-only view of a fetched HTML page.
//
// Extraction strategies receive a Page instead of reaching for
// ambient globals, which keeps the whole pipeline testable against
// synthetic fixtures. Every lookup is best-effort: absent elements
// and invalid selectors yield empty results, never errors.
package page

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// mainSelectors identify the container judged to hold the primary
// product. Ordered from semantic markup down to store-specific class
// patterns; the first usable match wins.
var mainSelectors = []string{
	"main", "[role='main']", "article",
	"[class*='product-detail']", "[class*='productDetail']", "[class*='ProductDetail']",
	"[class*='product-page']", "[class*='productPage']",
	"[id*='product']", "[id*='Product']",
	".product-page", "#main", "#content",
	"[class*='pdp']", "[class*='PDP']",
	"[class*='item-detail']", "[class*='articulo']",
	".single-product", ".product", "[class*='producto']",
	"#product", "[class*='product-content']",
	".type-product", ".product.type-product",
}

// headerSelector matches page chrome regions whose titles must not be
// mistaken for product names.
const headerSelector = "header, nav, [role='banner'], [class*='header'], [class*='Header'], [id*='header']"

// Page is an immutable context for one extraction call: the parsed
// document plus the URL it was fetched from.
type Page struct {
	doc  *goquery.Document
	url  *url.URL
	main *goquery.Selection
}

// New parses HTML and builds a Page for the given source URL.
func New(html, pageURL string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, err
	}
	return &Page{doc: doc, url: u}, nil
}

// URL returns the page URL at extraction time.
func (p *Page) URL() string {
	return p.url.String()
}

// Host returns the page hostname with a leading "www." stripped.
func (p *Page) Host() string {
	return strings.TrimPrefix(p.url.Hostname(), "www.")
}

// Doc exposes the whole document for callers that need to scan
// outside the main-content scope (structured data lives in <head>).
func (p *Page) Doc() *goquery.Document {
	return p.doc
}

// Body returns the document body, or the document root if the parser
// produced no body element.
func (p *Page) Body() *goquery.Selection {
	body := p.doc.Find("body")
	if body.Length() > 0 {
		return body
	}
	return p.doc.Selection
}

// Find runs a CSS selector against a root, tolerating selectors that
// do not compile. A bad selector is identical to one that matches
// nothing.
func Find(root *goquery.Selection, selector string) *goquery.Selection {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return root.Slice(0, 0)
	}
	return root.FindMatcher(m)
}

// MainContent narrows the search root to the primary product
// container, so that related-product carousels outside it cannot
// pollute title and price matches. Falls back to the body when no
// container qualifies. The result is memoized per Page.
func (p *Page) MainContent() *goquery.Selection {
	if p.main != nil {
		return p.main
	}
	for _, sel := range mainSelectors {
		el := Find(p.doc.Selection, sel).First()
		if el.Length() > 0 && usableContainer(el) {
			p.main = el
			return el
		}
	}
	p.main = p.Body()
	return p.main
}

// usableContainer approximates the browser-side "visible and wider
// than 200px" check for parsed HTML: the element must not be hidden
// and must carry enough content to plausibly hold a product block.
func usableContainer(el *goquery.Selection) bool {
	if hidden(el) {
		return false
	}
	if el.Find("img").Length() > 0 {
		return true
	}
	return len(strings.TrimSpace(el.Text())) >= 80
}

// hidden reports whether the element is explicitly hidden via the
// hidden attribute or inline style.
func hidden(el *goquery.Selection) bool {
	if _, ok := el.Attr("hidden"); ok {
		return true
	}
	style, ok := el.Attr("style")
	if !ok {
		return false
	}
	style = strings.ReplaceAll(strings.ToLower(style), " ", "")
	return strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden")
}

// InHeader reports whether the element sits inside a header, nav or
// banner region.
func InHeader(el *goquery.Selection) bool {
	return el.Closest(headerSelector).Length() > 0
}

// FirstMatch tries selectors in order against root and returns the
// first non-empty value produced by extract. When skipHeader is set,
// a first pass ignores matches inside header regions; header matches
// are only consulted if nothing else matched.
func FirstMatch(root *goquery.Selection, selectors []string, extract func(*goquery.Selection) string, skipHeader bool) string {
	if skipHeader {
		for _, sel := range selectors {
			result := ""
			Find(root, sel).EachWithBreak(func(_ int, el *goquery.Selection) bool {
				if InHeader(el) {
					return true
				}
				if v := strings.TrimSpace(extract(el)); v != "" {
					result = v
					return false
				}
				return true
			})
			if result != "" {
				return result
			}
		}
	}
	for _, sel := range selectors {
		result := ""
		Find(root, sel).EachWithBreak(func(_ int, el *goquery.Selection) bool {
			if v := strings.TrimSpace(extract(el)); v != "" {
				result = v
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

// Text extracts trimmed element text. Convenience for FirstMatch.
func Text(el *goquery.Selection) string {
	return strings.TrimSpace(el.Text())
}

// Meta returns the content of a meta tag matched by property or name.
func (p *Page) Meta(property string) string {
	sel := "meta[property='" + property + "'], meta[name='" + property + "']"
	content, _ := Find(p.doc.Selection, sel).First().Attr("content")
	return strings.TrimSpace(content)
}

// Itemprop returns the value of an itemprop inside scope: element
// text first, then the content attribute (meta-style microdata).
func Itemprop(scope *goquery.Selection, prop string) string {
	el := Find(scope, "[itemprop='"+prop+"']").First()
	if el.Length() == 0 {
		return ""
	}
	if text := strings.TrimSpace(el.Text()); text != "" {
		return text
	}
	content, _ := el.Attr("content")
	return strings.TrimSpace(content)
}

// ResolveURL resolves a possibly relative or protocol-relative URL
// against the page origin. Returns "" for unparseable input.
func (p *Page) ResolveURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return p.url.ResolveReference(ref).String()
}
