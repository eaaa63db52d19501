package fetcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// Static uses Colly for plain HTML fetching.
type Static struct {
	config Config
}

// Config holds fetcher construction settings.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// NewStatic creates a new static fetcher.
func NewStatic(cfg Config) *Static {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Static{config: cfg}
}

// Fetch retrieves page content using Colly.
func (f *Static) Fetch(ctx context.Context, targetURL string, opts Options) (Content, error) {
	result := Content{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	// Fresh collector per request; no shared crawl state.
	c := colly.NewCollector(
		colly.UserAgent(coalesce(opts.UserAgent, f.config.UserAgent)),
	)

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = f.config.Timeout
	}
	c.SetRequestTimeout(timeout)

	if len(opts.Headers) > 0 {
		c.OnRequest(func(r *colly.Request) {
			for k, v := range opts.Headers {
				r.Headers.Set(k, v)
			}
		})
	}

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		result.ContentType = r.Headers.Get("Content-Type")
		result.HTML = string(r.Body)
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			result.StatusCode = r.StatusCode
		}
		fetchErr = fmt.Errorf("fetch error: %w", err)
	})

	if err := c.Visit(targetURL); err != nil {
		return result, fmt.Errorf("failed to visit URL: %w", err)
	}

	if fetchErr != nil {
		return result, fetchErr
	}

	if result.HTML != "" {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML)); err == nil {
			result.Title = strings.TrimSpace(doc.Find("title").First().Text())
		}
	}

	return result, nil
}

// Close releases resources.
func (f *Static) Close() error {
	return nil
}

// Type returns the fetcher type.
func (f *Static) Type() string {
	return "static"
}
