package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// lazyAttrs are attribute names checked for an image URL, in priority
// order. Lazy-loaded galleries park the real URL in data-* attributes
// while src holds a placeholder.
var lazyAttrs = []string{"src", "data-src", "data-lazy-src", "data-original", "data-zoom-image", "data-srcset"}

// ResolveImage resolves the final absolute URL of a candidate image
// element. The first attribute yielding a usable URL wins; srcset is
// consulted last, taking the first candidate before any descriptor.
// Returns "" when no attribute yields a URL.
func (p *Page) ResolveImage(el *goquery.Selection) string {
	if el == nil || el.Length() == 0 {
		return ""
	}
	for _, attr := range lazyAttrs {
		if u := p.imageURL(el.AttrOr(attr, "")); u != "" {
			return u
		}
	}
	if u := p.imageURL(el.AttrOr("srcset", "")); u != "" {
		return u
	}
	return ""
}

// HasImageSource reports whether the element carries any usable image
// attribute. Used to skip placeholder <img> tags during selection.
func HasImageSource(el *goquery.Selection) bool {
	for _, attr := range lazyAttrs {
		if strings.TrimSpace(el.AttrOr(attr, "")) != "" {
			return true
		}
	}
	return strings.TrimSpace(el.AttrOr("srcset", "")) != ""
}

// imageURL extracts and absolutizes the first URL from an attribute
// value, handling srcset-style "url descriptor, url descriptor"
// lists.
func (p *Page) imageURL(val string) string {
	val = strings.TrimSpace(val)
	if val == "" {
		return ""
	}
	first := strings.TrimSpace(strings.SplitN(val, ",", 2)[0])
	if fields := strings.Fields(first); len(fields) > 0 {
		first = fields[0]
	}
	switch {
	case first == "":
		return ""
	case strings.HasPrefix(first, "http"):
		return first
	case strings.HasPrefix(first, "//"):
		return p.url.Scheme + ":" + first
	case strings.HasPrefix(first, "/"):
		return p.url.Scheme + "://" + p.url.Host + first
	}
	return ""
}
