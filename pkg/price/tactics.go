package price

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Sebv03/captura/pkg/page"
)

// wooSelector matches WooCommerce price markup, sale price (<ins>)
// first so discounted pages report the price a buyer actually pays.
const wooSelector = ".price ins .woocommerce-Price-amount, .price ins .amount, .price .woocommerce-Price-amount, .price .amount, p.price"

// summarySelectors are containers presumed to hold the single
// authoritative product block, keeping related-product prices out of
// the summary scan.
var summarySelectors = []string{
	".summary", ".product-summary", ".product .summary",
	".woocommerce-product-details__short-description",
	"[class*='product-details']", ".single-product .summary",
	".product", ".product-details", "[class*='single-product']",
}

// domOrderSelectors feed the first-price-in-DOM-order tactic, most
// specific markup first.
var domOrderSelectors = []string{
	".price ins .woocommerce-Price-amount", ".price ins .amount",
	".price .woocommerce-Price-amount", ".price .amount",
	"p.price", ".summary .price", "[class*='price']", "[itemprop='price']",
}

// FromWooCommerce reads the WooCommerce price structure under root.
func FromWooCommerce(root *goquery.Selection) (float64, bool) {
	el := page.Find(root, wooSelector).First()
	if el.Length() == 0 {
		return 0, false
	}
	return parsePositive(el.Text())
}

// FromSummary scans the main product summary block for a price. It
// tries the pattern table against the block's collapsed text, then
// falls back to price-tagged elements directly inside the block.
// Restricting the search to summary containers is what keeps
// related-product prices elsewhere on the page out of the result.
func FromSummary(root *goquery.Selection) (float64, bool) {
	for _, sel := range summarySelectors {
		summary := page.Find(root, sel).First()
		if summary.Length() == 0 {
			continue
		}
		text := strings.Join(strings.Fields(summary.Text()), " ")
		for _, re := range summaryPatterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			frag := m[0]
			if len(m) > 1 && m[1] != "" {
				frag = m[1]
			}
			if n, ok := Parse(frag); ok && n > 0 && n < maxScoped {
				return n, true
			}
		}
		found := 0.0
		page.Find(summary, ".price, [class*='price'], [itemprop='price'], bdi, .amount").EachWithBreak(func(_ int, el *goquery.Selection) bool {
			txt := strings.TrimSpace(el.Text())
			if txt == "" || len(txt) >= 20 || !strings.ContainsAny(txt, "0123456789") {
				return true
			}
			if n, ok := parsePositive(txt); ok {
				found = n
				return false
			}
			return true
		})
		if found > 0 {
			return found, true
		}
	}
	return 0, false
}

// FirstInDOM returns the first plausible price in document order.
// Useful when the main product legitimately appears before any
// related-product prices in the source.
func FirstInDOM(root *goquery.Selection) (float64, bool) {
	for _, sel := range domOrderSelectors {
		found := 0.0
		page.Find(root, sel).EachWithBreak(func(_ int, el *goquery.Selection) bool {
			if n, ok := Parse(el.Text()); ok && n > 0 && n < maxScoped {
				found = n
				return false
			}
			return true
		})
		if found > 0 {
			return found, true
		}
	}
	return 0, false
}

// Scan applies the full pattern table across the scanned region's
// text and markup, collects every plausible match, and returns the
// smallest. On a product page the primary price is typically the
// smallest one mentioned, next to inflated "original price" or bundle
// totals. Known trade-off: a cheaper accessory listed before the main
// item can win; the scoped tactics run first for that reason.
func Scan(root *goquery.Selection) (float64, bool) {
	text := root.Text()
	html, _ := goquery.OuterHtml(root)

	seen := make(map[float64]struct{})
	for _, p := range pagePatterns {
		src := text
		if p.source == sourceHTML {
			src = html
		}
		for _, m := range p.re.FindAllStringSubmatch(src, -1) {
			frag := m[0]
			if len(m) > 1 && m[1] != "" {
				frag = m[1]
			}
			if n, ok := Parse(frag); ok && Plausible(n) {
				seen[n] = struct{}{}
			}
		}
	}

	page.Find(root, "[data-price], [data-value], [data-precio]").Each(func(_ int, el *goquery.Selection) {
		val := el.AttrOr("data-price", el.AttrOr("data-value", el.AttrOr("data-precio", "")))
		if n, ok := Parse(val); ok && Plausible(n) {
			seen[n] = struct{}{}
		}
	})

	if len(seen) == 0 {
		return 0, false
	}
	prices := make([]float64, 0, len(seen))
	for n := range seen {
		prices = append(prices, n)
	}
	sort.Float64s(prices)
	return prices[0], true
}
