package fetcher

import (
	"time"

	"resty.dev/v3"
)

const (
	defaultTimeout = 30 * time.Second

	// Yahoo serves a consent interstitial to clients without a browser-like
	// user agent.
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Option configures the HTTP transport.
type Option func(c *resty.Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) {
		c.SetTimeout(d)
	}
}

// WithProxy routes requests through the given proxy URL.
func WithProxy(proxyURL string) Option {
	return func(c *resty.Client) {
		c.SetProxy(proxyURL)
	}
}

// WithUserAgent overrides the default browser-like user agent.
func WithUserAgent(ua string) Option {
	return func(c *resty.Client) {
		c.SetHeader("User-Agent", ua)
	}
}

// NewHTTPClient creates the resty client shared by page fetching and symbol
// lookup. There is no retry or backoff; a failed request fails once.
func NewHTTPClient(opts ...Option) *resty.Client {
	client := resty.New().
		SetTimeout(defaultTimeout).
		SetHeader("User-Agent", defaultUserAgent).
		SetHeader("Accept", "text/html,application/json")

	for _, opt := range opts {
		opt(client)
	}

	return client
}
