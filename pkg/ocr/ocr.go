// Package ocr parses free-text OCR transcripts of product photos into
// a name and price. It is a simplified sibling of the page extractor:
// the same numeric conventions, far fewer fallback tactics.
package ocr

import (
	"regexp"
	"strings"

	"github.com/Sebv03/captura/pkg/price"
	"github.com/Sebv03/captura/pkg/product"
)

// transcriptPatterns is the reduced pattern set for transcripts:
// currency prefix, CLP suffix, labelled price, bare thousands-grouped
// number.
var transcriptPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*([\d.,\s]+)`),
	regexp.MustCompile(`(?i)(\d{1,3}(?:\.\d{3})*(?:,\d+)?)\s*CLP`),
	regexp.MustCompile(`(?i)precio[:\s]*\$?\s*([\d.,\s]+)`),
	regexp.MustCompile(`(\d{1,3}(?:\.\d{3})+(?:,\d+)?)`),
}

var barePrice = regexp.MustCompile(`^\$[\d.,\s]+$`)
var allDigits = regexp.MustCompile(`^\d+$`)

// ParsePrice finds the first plausible price in a transcript, using
// the same normalization rules as the page extractor.
func ParsePrice(text string) (float64, bool) {
	for _, re := range transcriptPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		frag := m[0]
		if len(m) > 1 && m[1] != "" {
			frag = m[1]
		}
		if n, ok := price.Parse(frag); ok && price.Plausible(n) {
			return n, true
		}
	}
	return 0, false
}

// ParseName picks the most name-like transcript line: the first line
// of reasonable length that is not a bare number or a bare price.
// Falls back to the first non-trivial line.
func ParseName(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 3 {
			lines = append(lines, line)
		}
	}
	for _, line := range lines {
		if len(line) > 5 && len(line) < 120 && !allDigits.MatchString(line) && !barePrice.MatchString(line) {
			return product.Truncate(line, product.MaxNameLen)
		}
	}
	if len(lines) > 0 {
		return product.Truncate(lines[0], product.MaxNameLen)
	}
	return ""
}

// ParseTranscript extracts both fields in one call. Price 0 means no
// price was detected, matching the page extractor's convention.
func ParseTranscript(text string) (name string, n float64) {
	name = ParseName(text)
	if v, ok := ParsePrice(text); ok {
		n = v
	}
	return name, n
}
