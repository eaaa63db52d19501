package extract

import (
	"github.com/Sebv03/captura/internal/logger"
	"github.com/Sebv03/captura/pkg/page"
	"github.com/Sebv03/captura/pkg/price"
	"github.com/Sebv03/captura/pkg/product"
)

// Chain runs strategies in fixed priority order and returns the first
// name-bearing candidate, cross-checked against the URL slug.
type Chain struct {
	strategies []Strategy
}

// Option configures a Chain.
type Option func(*config)

type config struct {
	siteMap SiteMap
}

// WithSiteMap replaces the built-in site-specific selector map.
func WithSiteMap(m SiteMap) Option {
	return func(c *config) {
		c.siteMap = m
	}
}

// NewChain builds the extractor with the standard strategy order:
// site-specific selectors, schema.org JSON-LD, common CSS selectors,
// microdata, Open Graph, then the generic fallback.
func NewChain(opts ...Option) *Chain {
	cfg := config{siteMap: DefaultSiteMap()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Chain{
		strategies: []Strategy{
			&SiteSpecific{Sites: cfg.siteMap},
			&SchemaOrg{},
			&CommonSelectors{},
			&Microdata{},
			&OpenGraph{},
			&Fallback{},
		},
	}
}

// Extract runs the chain once against the page. It returns nil only
// when every strategy fails and the URL yields no usable slug.
//
// A winning candidate's name is cross-checked against the URL slug:
// a name that looks like a site banner, or that shares no significant
// word with the slug, is overridden by the slug-derived name and the
// strategy label gains a "+url" tag. This defends against strategies
// picking up navigation or related-product titles.
func (c *Chain) Extract(p *page.Page) *product.Product {
	for _, s := range c.strategies {
		rec := s.Extract(p)
		if rec == nil || rec.Name == "" {
			continue
		}
		if urlName := p.NameFromSlug(); urlName != "" {
			if page.LooksLikeSiteName(rec.Name) || !p.SlugMatches(rec.Name) {
				setName(rec, urlName)
				rec.Strategy += "+url"
			}
		}
		logger.Debug("product extracted",
			"strategy", rec.Strategy,
			"confidence", rec.Confidence,
			"host", rec.SiteHost,
			"price", rec.Price)
		return rec
	}

	// Last resort: synthesize from the URL slug alone.
	urlName := p.NameFromSlug()
	if urlName == "" {
		logger.Debug("no product detected", "url", p.URL())
		return nil
	}
	rec := newRecord(p, "url-only", product.ConfidenceLow)
	setName(rec, urlName)
	if n, ok := price.Scan(p.MainContent()); ok {
		rec.Price = n
	}
	logger.Debug("product synthesized from url", "host", rec.SiteHost, "price", rec.Price)
	return rec
}
