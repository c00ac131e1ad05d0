// Package fetcher retrieves raw summary pages over HTTP.
package fetcher

import (
	"context"
	"errors"
	"log/slog"

	"resty.dev/v3"
)

// Client wraps the HTTP transport used for page downloads. It reports the
// response status instead of turning non-success statuses into errors, so
// callers decide whether a missing page is fatal.
type Client struct {
	http *resty.Client
}

// NewClient creates a page fetch client. opts configure the underlying
// transport (timeout, proxy, user agent).
func NewClient(opts ...Option) *Client {
	return &Client{http: NewHTTPClient(opts...)}
}

// Get downloads one page. A non-2xx status yields a Response with OK=false,
// not an error; errors are reserved for transport failures.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, NewTimeoutError(err)
		}
		return nil, NewNetworkError(err)
	}

	slog.Debug("fetched page",
		"url", url,
		"status_code", resp.StatusCode())

	return &Response{
		OK:         resp.IsSuccess(),
		StatusCode: resp.StatusCode(),
		Body:       resp.String(),
	}, nil
}
