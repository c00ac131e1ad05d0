package summary

import (
	"strings"

	"summaryfetcher/internal/clean"
)

// fieldRules is the fixed table feeding typed fields from raw source values.
// Two rules may share a source key to split packed values like a
// "low - high" range or a "price x size" pair into separate fields.
var fieldRules = []struct {
	source string
	apply  func(p *Page, raw string)
}{
	{"open", func(p *Page, raw string) { p.Open = clean.Float(raw) }},
	{"close", func(p *Page, raw string) { p.Close = clean.Float(raw) }},
	{"change", func(p *Page, raw string) { p.Change = clean.Float(raw) }},
	{"percent_change", func(p *Page, raw string) { p.PercentChange = clean.Float(raw) }},
	{"previous_close", func(p *Page, raw string) { p.PreviousClose = clean.Float(raw) }},

	{"days_range", func(p *Page, raw string) { p.High = clean.Float(clean.FirstOfDash(raw)) }},
	{"days_range", func(p *Page, raw string) { p.Low = clean.Float(clean.SecondOfDash(raw)) }},
	{"fifty_two_week_range", func(p *Page, raw string) { p.FiftyTwoWeekHigh = clean.Float(clean.FirstOfDash(raw)) }},
	{"fifty_two_week_range", func(p *Page, raw string) { p.FiftyTwoWeekLow = clean.Float(clean.SecondOfDash(raw)) }},

	{"bid", func(p *Page, raw string) { p.BidPrice = clean.Float(clean.FirstOfX(raw)) }},
	{"bid", func(p *Page, raw string) { p.BidSize = clean.Int(clean.SecondOfX(raw)) }},
	{"ask", func(p *Page, raw string) { p.AskPrice = clean.Float(clean.FirstOfX(raw)) }},
	{"ask", func(p *Page, raw string) { p.AskSize = clean.Int(clean.SecondOfX(raw)) }},

	{"volume", func(p *Page, raw string) { p.Volume = clean.Int(raw) }},
	{"avg_volume", func(p *Page, raw string) { p.AverageVolume = clean.Int(raw) }},
	{"market_cap", func(p *Page, raw string) { p.MarketCap = clean.Int(raw) }},

	{"beta_five_year_monthly", func(p *Page, raw string) { p.BetaFiveYearMonthly = clean.Float(raw) }},
	{"pe_ratio_ttm", func(p *Page, raw string) { p.PERatioTTM = clean.Float(raw) }},
	{"eps_ttm", func(p *Page, raw string) { p.EPSTTM = clean.Float(raw) }},

	{"earnings_date", func(p *Page, raw string) { p.EarningsDate = clean.Date(raw) }},
	{"exdividend_date", func(p *Page, raw string) { p.ExDividendDate = clean.Date(raw) }},

	{"forward_dividend_yield", func(p *Page, raw string) { p.ForwardDividendYield = clean.Float(clean.FirstOfSpace(raw)) }},
	{"forward_dividend_yield", func(p *Page, raw string) { p.ForwardDividendYieldPercentage = clean.Float(clean.SecondOfSpace(raw)) }},

	{"one_year_target_est", func(p *Page, raw string) { p.OneYearTargetEst = clean.Float(raw) }},
}

// Build merges the quote header and summary table fragments into one Page.
// Both fragments must be present; a missing fragment means the page held no
// summary data for the symbol and building signals not-found rather than
// producing a mostly-nil record. Header values win over table values for
// overlapping keys.
func Build(symbol string, header, table map[string]string) (*Page, error) {
	symbol = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(symbol), "$"))
	if len(header) == 0 || len(table) == 0 {
		return nil, &PageNotFoundError{Symbol: symbol}
	}

	merged := make(map[string]string, len(header)+len(table))
	for k, v := range table {
		merged[k] = v
	}
	for k, v := range header {
		merged[k] = v
	}

	page := &Page{
		Symbol: symbol,
		Name:   merged["name"],
		Quote: Quote{
			Name:          header["name"],
			Price:         clean.Float(header["close"]),
			Change:        clean.Float(header["change"]),
			PercentChange: clean.Float(header["percent_change"]),
		},
	}

	for _, rule := range fieldRules {
		if raw, ok := merged[rule.source]; ok {
			rule.apply(page, raw)
		}
	}

	return page, nil
}
