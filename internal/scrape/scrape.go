// Package scrape extracts the quote header and summary table fragments from
// a summary page document. Both parsers return a flat map of canonical field
// keys to raw values, or nil when the fragment is absent from the page.
package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// labelKeys maps the human-readable summary table labels to canonical field
// keys. Labels not listed here fall back to a generic snake_case conversion.
var labelKeys = map[string]string{
	"Previous Close":           "previous_close",
	"Open":                     "open",
	"Bid":                      "bid",
	"Ask":                      "ask",
	"Day's Range":              "days_range",
	"52 Week Range":            "fifty_two_week_range",
	"Volume":                   "volume",
	"Avg. Volume":              "avg_volume",
	"Market Cap":               "market_cap",
	"Beta (5Y Monthly)":        "beta_five_year_monthly",
	"PE Ratio (TTM)":           "pe_ratio_ttm",
	"EPS (TTM)":                "eps_ttm",
	"Earnings Date":            "earnings_date",
	"Forward Dividend & Yield": "forward_dividend_yield",
	"Ex-Dividend Date":         "exdividend_date",
	"1y Target Est":            "one_year_target_est",
}

// CanonicalKey converts a summary table label to its canonical field key.
func CanonicalKey(label string) string {
	label = strings.TrimSpace(label)
	if key, ok := labelKeys[label]; ok {
		return key
	}
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}

// ParseQuoteHeader extracts the quote header fragment: name, last price,
// change and percent change. Returns nil when the header section is missing.
func ParseQuoteHeader(doc *goquery.Document) map[string]string {
	header := doc.Find("div#quote-header-info").First()
	if header.Length() == 0 {
		return nil
	}

	fields := map[string]string{}

	// The h1 holds "Company Name (SYMBOL)".
	title := strings.TrimSpace(header.Find("h1").First().Text())
	if open := strings.LastIndex(title, "("); open > 0 {
		fields["name"] = strings.TrimSpace(title[:open])
	} else if title != "" {
		fields["name"] = title
	}

	for selector, key := range map[string]string{
		`fin-streamer[data-field="regularMarketPrice"]`:         "close",
		`fin-streamer[data-field="regularMarketChange"]`:        "change",
		`fin-streamer[data-field="regularMarketChangePercent"]`: "percent_change",
	} {
		if v := strings.TrimSpace(header.Find(selector).First().Text()); v != "" {
			fields[key] = v
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// ParseSummaryTable extracts the summary table fragment: one entry per table
// row, keyed by canonical field key. Returns nil when the quote-summary
// section is missing or holds no rows.
func ParseSummaryTable(doc *goquery.Document) map[string]string {
	section := doc.Find("div#quote-summary").First()
	if section.Length() == 0 {
		return nil
	}

	fields := map[string]string{}
	section.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		key := CanonicalKey(cells.Eq(0).Text())
		value := strings.TrimSpace(cells.Eq(1).Text())
		if key != "" && value != "" {
			fields[key] = value
		}
	})

	if len(fields) == 0 {
		return nil
	}
	return fields
}
