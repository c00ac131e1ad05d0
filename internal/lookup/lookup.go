// Package lookup resolves free-text queries (company names, partial tickers)
// to canonical ticker symbols via the symbol search endpoint.
package lookup

import (
	"context"
	"log/slog"
	"strings"

	"resty.dev/v3"

	"summaryfetcher/internal/fetcher"
)

// Match is one symbol search result.
type Match struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"shortname"`
	Exchange  string `json:"exchange"`
	QuoteType string `json:"quoteType"`
}

// AssetType of a Match, derived from its quote type.
func (m Match) AssetType() AssetType {
	return assetTypeForQuoteType(m.QuoteType)
}

type searchResponse struct {
	Quotes []Match `json:"quotes"`
}

// Client queries the symbol search endpoint.
type Client struct {
	http       *resty.Client
	assetTypes []AssetType
}

// ClientOption configures a lookup Client.
type ClientOption func(c *Client)

// WithAssetTypes restricts matches to the given asset types. Without this
// option every valid asset type matches.
func WithAssetTypes(types ...AssetType) ClientOption {
	return func(c *Client) {
		c.assetTypes = types
	}
}

// NewClient creates a symbol search client against baseURL. Transport
// options (timeout, proxy, user agent) follow the page fetcher's.
func NewClient(baseURL string, transportOpts []fetcher.Option, opts ...ClientOption) *Client {
	c := &Client{
		http: fetcher.NewHTTPClient(transportOpts...).SetBaseURL(baseURL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search returns every match for the query, filtered to the client's asset
// types. An empty result is not an error.
func (c *Client) Search(ctx context.Context, query string) ([]Match, error) {
	var result searchResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":           strings.TrimSpace(query),
			"quotesCount": "10",
			"newsCount":   "0",
		}).
		SetResult(&result).
		Get("")

	if err != nil {
		return nil, fetcher.NewNetworkError(err)
	}

	if !resp.IsSuccess() {
		return nil, fetcher.ClassifyHTTPError(resp.StatusCode())
	}

	matches := make([]Match, 0, len(result.Quotes))
	for _, m := range result.Quotes {
		if m.Symbol == "" || !c.allows(m.AssetType()) {
			continue
		}
		matches = append(matches, m)
	}

	slog.Debug("symbol search",
		"query", query,
		"matches", len(matches))

	return matches, nil
}

// Resolve returns the first match for the query, or nil when the query
// resolves to nothing.
func (c *Client) Resolve(ctx context.Context, query string) (*Match, error) {
	matches, err := c.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (c *Client) allows(t AssetType) bool {
	if len(c.assetTypes) == 0 {
		return IsValidAssetType(t)
	}
	for _, allowed := range c.assetTypes {
		if t == allowed {
			return true
		}
	}
	return false
}
