// Package testutil provides mocks and page fixtures shared by tests.
package testutil

import (
	"context"
	"fmt"
	"strings"

	"summaryfetcher/internal/lookup"
	"summaryfetcher/internal/summary"
)

// MockResolver is a mock symbol resolver for testing
type MockResolver struct {
	ResolveFunc func(ctx context.Context, query string) (*lookup.Match, error)
}

// Resolve implements the coordinator.Resolver interface
func (m *MockResolver) Resolve(ctx context.Context, query string) (*lookup.Match, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, query)
	}
	return nil, nil
}

// NewMockResolver creates a resolver backed by a query → canonical symbol
// table. Queries missing from the table resolve to nothing.
func NewMockResolver(table map[string]string) *MockResolver {
	return &MockResolver{
		ResolveFunc: func(_ context.Context, query string) (*lookup.Match, error) {
			symbol, ok := table[query]
			if !ok {
				return nil, nil
			}
			return &lookup.Match{Symbol: symbol, QuoteType: "EQUITY"}, nil
		},
	}
}

// MockLoader is a mock summary page loader for testing
type MockLoader struct {
	LoadFunc func(ctx context.Context, symbol string) (*summary.Page, error)
}

// Load implements the coordinator.Loader interface
func (m *MockLoader) Load(ctx context.Context, symbol string) (*summary.Page, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, symbol)
	}
	return nil, &summary.PageNotFoundError{Symbol: symbol}
}

// NewMockLoader creates a loader that serves the given pages by symbol and
// reports not-found for everything else.
func NewMockLoader(pages map[string]*summary.Page) *MockLoader {
	return &MockLoader{
		LoadFunc: func(_ context.Context, symbol string) (*summary.Page, error) {
			page, ok := pages[symbol]
			if !ok {
				return nil, &summary.PageNotFoundError{Symbol: symbol}
			}
			return page, nil
		},
	}
}

// Page builds a minimal valid summary page record for tests.
func Page(symbol string) *summary.Page {
	return &summary.Page{
		Symbol: strings.ToUpper(symbol),
		Name:   symbol + " Inc.",
	}
}

// SummaryHTML renders a summary page document with a quote header and a
// summary table, in the markup shape the scraper expects. fields are table
// rows keyed by their on-page label, e.g. "Day's Range": "210.00 - 215.00".
func SummaryHTML(symbol, name, price string, fields map[string]string) string {
	var rows strings.Builder
	for label, value := range fields {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td></tr>", label, value)
	}

	return fmt.Sprintf(`<html><body>
<div id="quote-header-info">
  <h1>%s (%s)</h1>
  <fin-streamer data-field="regularMarketPrice">%s</fin-streamer>
  <fin-streamer data-field="regularMarketChange">+1.20</fin-streamer>
  <fin-streamer data-field="regularMarketChangePercent">(+0.57%%)</fin-streamer>
</div>
<div id="quote-summary">
  <table><tbody>%s</tbody></table>
</div>
</body></html>`, name, symbol, price, rows.String())
}
