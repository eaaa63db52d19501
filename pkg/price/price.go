// Package price converts raw page text into validated numeric prices.
//
// Numbers are read with the Chilean convention: "." as thousands
// separator, "," as decimal separator ($49.990 is forty-nine thousand
// nine hundred ninety pesos). The inverse convention is tolerated when
// no comma is present.
package price

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxPlausible is the upper bound for a consumer-product price in CLP.
// Values at or above it are noise: phone numbers, SKUs, timestamps.
const MaxPlausible = 100_000_000

// maxScoped is the tighter bound used by the summary and DOM-order
// tactics, which scan free-form text where large garbage numbers are
// more common.
const maxScoped = 50_000_000

var (
	nonNumeric      = regexp.MustCompile(`[^\d,.]`)
	thousandsSuffix = regexp.MustCompile(`\.\d{3}$`)
)

// Parse converts a raw price fragment into a number.
//
// Rules, in order: strip everything but digits, commas and periods;
// with a comma present, periods are thousands separators and the
// comma is the decimal point; without one, a trailing ".ddd" group or
// multiple periods mark the periods as thousands separators. Returns
// ok=false when nothing numeric survives. Zero parses as (0, true);
// plausibility is the caller's concern.
func Parse(raw string) (float64, bool) {
	cleaned := nonNumeric.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0, false
	}
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	} else if thousandsSuffix.MatchString(cleaned) || strings.Count(cleaned, ".") > 1 {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Plausible reports whether n is a believable consumer-product price.
func Plausible(n float64) bool {
	return n > 0 && n < MaxPlausible
}

// parsePositive parses raw and accepts only positive results.
func parsePositive(raw string) (float64, bool) {
	n, ok := Parse(raw)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}
