package page

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// bannerPatterns flag site chrome: domain suffixes, welcome and
	// home banners, marketing taglines.
	bannerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\.cl\b`),
		regexp.MustCompile(`(?i)\.com\b`),
		regexp.MustCompile(`(?i)te conviene`),
		regexp.MustCompile(`(?i)bienvenido`),
		regexp.MustCompile(`(?i)bienvenida`),
		regexp.MustCompile(`(?i)home\s*[-|]`),
	}

	// taglinePattern matches short all-letter strings. Real product
	// names almost always carry digits, units or punctuation; a short
	// run of bare words is more likely a brand tagline.
	taglinePattern = regexp.MustCompile(`^[A-Za-z\s.]+$`)

	gramsPattern = regexp.MustCompile(`(?i)(\d+)\s*g\b`)
	kilosPattern = regexp.MustCompile(`(?i)(\d+)\s*kg\b`)

	titleCaser = cases.Title(language.Spanish)
)

// LooksLikeSiteName reports whether text is page chrome rather than a
// product name: too short, a banner pattern, or a short bare-letter
// tagline.
func LooksLikeSiteName(text string) bool {
	text = strings.TrimSpace(text)
	if len(text) < 3 {
		return true
	}
	for _, p := range bannerPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	if len(text) < 25 && taglinePattern.MatchString(text) {
		return true
	}
	return false
}

// NameFromSlug derives a product name from the last URL path segment:
// hyphens become spaces, words are capitalized, and bare g/kg unit
// suffixes get separated from their quantity. Returns "" when the
// path yields no usable slug.
func (p *Page) NameFromSlug() string {
	segments := strings.FieldsFunc(p.url.Path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return ""
	}
	slug := segments[len(segments)-1]
	if i := strings.IndexByte(slug, '?'); i >= 0 {
		slug = slug[:i]
	}
	if len(slug) < 3 {
		return ""
	}
	name := titleCaser.String(strings.ReplaceAll(slug, "-", " "))
	name = gramsPattern.ReplaceAllString(name, "$1 g")
	name = kilosPattern.ReplaceAllString(name, "$1 kg")
	name = strings.Join(strings.Fields(name), " ")
	if len(name) <= 4 {
		return ""
	}
	return name
}

// SlugMatches reports whether a DOM-derived name shares at least one
// significant word (longer than 2 chars) with the URL slug. A page
// without a usable slug matches anything, so the check never rejects
// on missing information.
func (p *Page) SlugMatches(name string) bool {
	urlName := p.NameFromSlug()
	if urlName == "" || name == "" {
		return true
	}
	urlWords := significantWords(urlName)
	domWords := significantWords(name)
	for _, uw := range urlWords {
		for _, dw := range domWords {
			if strings.Contains(dw, uw) || strings.Contains(uw, dw) {
				return true
			}
		}
	}
	return false
}

func significantWords(s string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}
