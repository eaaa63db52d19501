// Package fetcher retrieves product pages for extraction. The static
// fetcher covers server-rendered storefronts; the dynamic fetcher
// drives a headless browser for single-page apps whose prices only
// exist after hydration.
package fetcher

import (
	"context"
	"time"
)

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves page content from a URL.
	Fetch(ctx context.Context, url string, opts Options) (Content, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns a string identifying the fetcher type ("static", "dynamic").
	Type() string
}

// Options controls fetching behavior.
type Options struct {
	UserAgent       string
	Timeout         time.Duration
	WaitForSelector string            // CSS selector to wait for (dynamic fetcher)
	WaitDuration    time.Duration     // Additional wait after load
	Headers         map[string]string // Extra request headers (static fetcher)
}

// Content represents fetched page data.
type Content struct {
	URL         string
	HTML        string
	Title       string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = 30 * time.Second

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
