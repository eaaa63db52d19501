package price

import "regexp"

// patternSource says what a pattern is matched against: rendered text
// or raw HTML. Attribute patterns only exist in markup.
type patternSource int

const (
	sourceText patternSource = iota
	sourceHTML
)

// pattern pairs a compiled regex with its source. The first capture
// group, when present, is the numeric fragment.
type pattern struct {
	re     *regexp.Regexp
	source patternSource
}

// pagePatterns is the ordered table driving the whole-page scan:
// currency-prefixed numbers, CLP-suffixed numbers, labelled prices,
// and data-/itemprop attributes embedded in markup.
var pagePatterns = []pattern{
	{regexp.MustCompile(`\$\s*([\d.,\s]+)`), sourceText},
	{regexp.MustCompile(`(?i)(\d{1,3}(?:[.\s]\d{3})*(?:,\d+)?)\s*CLP`), sourceText},
	{regexp.MustCompile(`(?i)precio[:\s]*\$?\s*([\d.,\s]+)`), sourceText},
	{regexp.MustCompile(`(?i)valor[:\s]*\$?\s*([\d.,\s]+)`), sourceText},
	{regexp.MustCompile(`(?i)precio\s+actual[:\s]*\$?\s*([\d.,\s]+)`), sourceText},
	{regexp.MustCompile(`(?i)precio\s+internet[:\s]*\$?\s*([\d.,\s]+)`), sourceText},
	{regexp.MustCompile(`(?i)data-price=["']([\d.,]+)["']`), sourceHTML},
	{regexp.MustCompile(`(?i)data-value=["']([\d.,]+)["']`), sourceHTML},
	{regexp.MustCompile(`(?i)data-precio=["']([\d.,]+)["']`), sourceHTML},
	{regexp.MustCompile(`(?i)content=["']([\d.,]+)["'][^>]*itemprop=["']price["']`), sourceHTML},
	{regexp.MustCompile(`(?i)(?:precio|valor|total)[:\s]*(\d{1,3}(?:[.\s]\d{3})*(?:,\d+)?)`), sourceText},
}

// summaryPatterns is the shorter table used by the product-summary
// scan, where the text is already scoped to the main product block.
var summaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*([\d.,\s]+)`),
	regexp.MustCompile(`(?i)(\d{1,3}(?:[.\s]\d{3})*(?:,\d+)?)\s*CLP`),
	regexp.MustCompile(`(?i)precio[:\s]*\$?\s*([\d.,\s]+)`),
	regexp.MustCompile(`(?i)valor[:\s]*\$?\s*([\d.,\s]+)`),
	regexp.MustCompile(`(\d{1,3}(?:\.\d{3})+(?:,\d+)?)`),
	regexp.MustCompile(`(\d{2,}\s*\d{3})`),
}
