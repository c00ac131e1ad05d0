package summary

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"
)

// PageGroup is an ordered, appendable collection of summary pages. Duplicate
// symbols are allowed; order is append order until Sort is called.
type PageGroup struct {
	pages []*Page
}

// NewPageGroup returns an empty group.
func NewPageGroup() *PageGroup {
	return &PageGroup{}
}

// Append adds a page to the group. Nil pages and pages without a symbol are
// rejected with ErrInvalidAppend: those indicate a caller bug, not bad data.
func (g *PageGroup) Append(page *Page) error {
	if page == nil || page.Symbol == "" {
		return ErrInvalidAppend
	}
	g.pages = append(g.pages, page)
	return nil
}

// Len returns the number of pages in the group.
func (g *PageGroup) Len() int {
	return len(g.pages)
}

// Pages returns the pages in their current order.
func (g *PageGroup) Pages() []*Page {
	return g.pages
}

// bySymbol is the comparator used for every symbol ordering in the group.
func bySymbol(a, b *Page) bool {
	return a.Symbol < b.Symbol
}

// Sort orders the group by symbol, lexicographic ascending, in place.
func (g *PageGroup) Sort() {
	sort.SliceStable(g.pages, func(i, j int) bool {
		return bySymbol(g.pages[i], g.pages[j])
	})
}

// Symbols returns the symbols of all pages in their current order.
func (g *PageGroup) Symbols() []string {
	symbols := make([]string, len(g.pages))
	for i, p := range g.pages {
		symbols[i] = p.Symbol
	}
	return symbols
}

// MarshalJSON serializes the group as {"pages": [...]}.
func (g *PageGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Pages []*Page `json:"pages"`
	}{Pages: g.pages})
}

// Table is the tabular projection of a PageGroup: one row per page indexed
// by symbol, one column per flat record field. The nested quote sub-record
// is excluded.
type Table struct {
	Columns []string
	Rows    [][]string
}

// tableColumns in projection order; the first column is the symbol index.
var tableColumns = []string{
	"symbol",
	"name",
	"open",
	"high",
	"low",
	"close",
	"change",
	"percent_change",
	"previous_close",
	"bid_price",
	"bid_size",
	"ask_price",
	"ask_size",
	"fifty_two_week_low",
	"fifty_two_week_high",
	"volume",
	"average_volume",
	"market_cap",
	"beta_five_year_monthly",
	"pe_ratio_ttm",
	"eps_ttm",
	"earnings_date",
	"forward_dividend_yield",
	"forward_dividend_yield_percentage",
	"exdividend_date",
	"one_year_target_est",
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatDate(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format("2006-01-02")
}

// Table projects the group into rows sorted by symbol. The group itself is
// not reordered. Returns nil for an empty group.
func (g *PageGroup) Table() *Table {
	if len(g.pages) == 0 {
		return nil
	}

	pages := make([]*Page, len(g.pages))
	copy(pages, g.pages)
	sort.SliceStable(pages, func(i, j int) bool {
		return bySymbol(pages[i], pages[j])
	})

	rows := make([][]string, 0, len(pages))
	for _, p := range pages {
		rows = append(rows, []string{
			p.Symbol,
			p.Name,
			formatFloat(p.Open),
			formatFloat(p.High),
			formatFloat(p.Low),
			formatFloat(p.Close),
			formatFloat(p.Change),
			formatFloat(p.PercentChange),
			formatFloat(p.PreviousClose),
			formatFloat(p.BidPrice),
			formatInt(p.BidSize),
			formatFloat(p.AskPrice),
			formatInt(p.AskSize),
			formatFloat(p.FiftyTwoWeekLow),
			formatFloat(p.FiftyTwoWeekHigh),
			formatInt(p.Volume),
			formatInt(p.AverageVolume),
			formatInt(p.MarketCap),
			formatFloat(p.BetaFiveYearMonthly),
			formatFloat(p.PERatioTTM),
			formatFloat(p.EPSTTM),
			formatDate(p.EarningsDate),
			formatFloat(p.ForwardDividendYield),
			formatFloat(p.ForwardDividendYieldPercentage),
			formatDate(p.ExDividendDate),
			formatFloat(p.OneYearTargetEst),
		})
	}

	return &Table{Columns: tableColumns, Rows: rows}
}
