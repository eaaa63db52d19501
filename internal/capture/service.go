// Package capture orchestrates one product capture: fetch the page,
// run the extraction chain, and hand the record to the capture API.
package capture

import (
	"context"
	"time"

	"github.com/Sebv03/captura/internal/logger"
	"github.com/Sebv03/captura/pkg/extract"
	"github.com/Sebv03/captura/pkg/fetcher"
	"github.com/Sebv03/captura/pkg/page"
	"github.com/Sebv03/captura/pkg/product"
)

// DefaultRetryDelay is how long to wait before the single re-fetch
// when a first pass finds neither price nor image. SPA storefronts
// often hydrate prices a moment after first paint.
const DefaultRetryDelay = 1500 * time.Millisecond

// Config holds capture service settings.
type Config struct {
	RetryDelay  time.Duration   // Delay before the one-shot retry (default 1.5s)
	RequireGate bool            // Skip pages that don't look like product pages
	FetchOpts   fetcher.Options // Passed through to the fetcher
}

// Service runs extractions against live pages.
type Service struct {
	fetcher fetcher.Fetcher
	chain   *extract.Chain
	config  Config
}

// NewService creates a capture service.
func NewService(f fetcher.Fetcher, chain *extract.Chain, cfg Config) *Service {
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	return &Service{fetcher: f, chain: chain, config: cfg}
}

// Capture fetches url and extracts a product record. Returns nil with
// a nil error when no product is detected; that is the neutral "no
// product" outcome, not a failure.
//
// If the first pass yields a record with neither price nor image, the
// page likely had not finished rendering: the service waits the
// configured delay, fetches once more, and re-runs the full chain.
// One retry only.
func (s *Service) Capture(ctx context.Context, url string) (*product.Product, error) {
	rec, err := s.runOnce(ctx, url)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Price > 0 || rec.Image != "" {
		return rec, nil
	}

	logger.Debug("record incomplete, retrying once",
		"url", url,
		"delay", s.config.RetryDelay)

	select {
	case <-ctx.Done():
		return rec, ctx.Err()
	case <-time.After(s.config.RetryDelay):
	}

	retried, err := s.runOnce(ctx, url)
	if err != nil || retried == nil {
		// Keep the first-pass record over a failed retry.
		return rec, nil
	}
	return retried, nil
}

// Extract runs the chain against already-fetched HTML. Used by tests
// and by the CLI's local-file mode; no retry, since there is nothing
// to re-fetch.
func (s *Service) Extract(html, url string) (*product.Product, error) {
	p, err := page.New(html, url)
	if err != nil {
		return nil, err
	}
	if s.config.RequireGate && !extract.IsProductPage(p) {
		logger.Debug("not a product page", "url", url)
		return nil, nil
	}
	return s.chain.Extract(p), nil
}

func (s *Service) runOnce(ctx context.Context, url string) (*product.Product, error) {
	content, err := s.fetcher.Fetch(ctx, url, s.config.FetchOpts)
	if err != nil {
		return nil, err
	}
	return s.Extract(content.HTML, url)
}
