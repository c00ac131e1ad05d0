package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"summaryfetcher/internal/fetcher"
	"summaryfetcher/internal/scrape"
)

// Loader downloads and builds one summary page per symbol.
type Loader struct {
	client  *fetcher.Client
	baseURL string
}

// NewLoader creates a Loader fetching pages from baseURL, e.g.
// "https://finance.yahoo.com/quote".
func NewLoader(client *fetcher.Client, baseURL string) *Loader {
	return &Loader{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// URL returns the canonical summary page URL for a symbol.
func (l *Loader) URL(symbol string) string {
	return fmt.Sprintf("%s/%s?p=%s", l.baseURL, symbol, symbol)
}

// Load fetches, parses and builds the summary page for one symbol. A failed
// request or a page without parseable fragments yields a PageNotFoundError;
// transport failures are returned as-is.
func (l *Loader) Load(ctx context.Context, symbol string) (*Page, error) {
	resp, err := l.client.Get(ctx, l.URL(symbol))
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, &PageNotFoundError{Symbol: symbol}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.Body))
	if err != nil {
		return nil, &PageNotFoundError{Symbol: symbol}
	}

	header := scrape.ParseQuoteHeader(doc)
	table := scrape.ParseSummaryTable(doc)

	return Build(symbol, header, table)
}
